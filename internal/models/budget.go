package models

import (
	"github.com/pocket-ledger/backend/internal/types"
	"gorm.io/gorm"
)

// BudgetType is the time span a budget covers.
type BudgetType string

const (
	BudgetTypeMonthly BudgetType = "monthly"
	BudgetTypeDaily   BudgetType = "daily"
)

// BudgetTypes are all valid budget types.
var BudgetTypes = []BudgetType{BudgetTypeMonthly, BudgetTypeDaily}

// Budget is a spending limit of a user.
//
// A user has at most one budget per type.
type Budget struct {
	DefaultModel
	UserID string       `json:"userId" gorm:"not null;uniqueIndex:idx_budgets_user_type" example:"auth0|6478e2b5c1"` // The user owning the budget
	Type   BudgetType   `json:"type" gorm:"not null;uniqueIndex:idx_budgets_user_type" example:"monthly"`          // monthly or daily
	Amount types.Amount `json:"amount" gorm:"type:DECIMAL(10,2);not null" example:"5000.00"`                       // The limit

	// CategoryBudgets is a serialized JSON object mapping category names to
	// their sub-limit. It is always replaced as a whole.
	CategoryBudgets string `json:"categoryBudgets" gorm:"not null" example:"{\"Groceries\":\"1500.00\"}"`
	Timestamps
}

// BeforeSave makes sure the category budgets are always a JSON object.
func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	if b.CategoryBudgets == "" {
		b.CategoryBudgets = "{}"
	}
	return nil
}
