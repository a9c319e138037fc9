package models

// Category groups expenses.
//
// Expenses reference categories by name only.
type Category struct {
	DefaultModel
	Name      string `json:"name" gorm:"not null" example:"Groceries"`             // Name of the category
	Icon      string `json:"icon" gorm:"not null" example:"fas fa-shopping-cart"` // Icon reference
	Color     string `json:"color" gorm:"not null" example:"text-green-600"`      // Color token
	IsDefault bool   `json:"isDefault" example:"true"`                            // Is this one of the built-in categories?
}
