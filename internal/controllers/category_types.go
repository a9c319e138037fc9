package controllers

import (
	"github.com/pocket-ledger/backend/internal/display"
	"github.com/pocket-ledger/backend/internal/models"
)

// CategoryEditable contains the fields of a category that can be set by clients.
type CategoryEditable struct {
	Name      string `json:"name" binding:"required,max=255" example:"Rent"`        // Name of the category
	Icon      string `json:"icon" binding:"max=255" example:"fas fa-house"`          // Icon reference. Defaults to the icon for the name
	Color     string `json:"color" binding:"max=255" example:"text-gray-600"`        // Color token. Defaults to the color for the name
	IsDefault bool   `json:"isDefault" example:"false"`                              // Is this one of the built-in categories?
}

func (editable CategoryEditable) model() models.Category {
	style := display.CategoryStyle(editable.Name)

	category := models.Category{
		Name:      editable.Name,
		Icon:      editable.Icon,
		Color:     editable.Color,
		IsDefault: editable.IsDefault,
	}

	if category.Icon == "" {
		category.Icon = style.Icon
	}

	if category.Color == "" {
		category.Color = style.Color
	}

	return category
}

type CategoryResponse struct {
	Data models.Category `json:"data"` // Data for the category
}

type CategoryListResponse struct {
	Data []models.Category `json:"data"` // List of categories
}
