package controllers

import (
	"encoding/json"

	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/storage"
	"github.com/pocket-ledger/backend/internal/types"
)

// BudgetEditable contains the fields of a budget that can be set by clients.
type BudgetEditable struct {
	Type            models.BudgetType `json:"type" binding:"required,oneof=monthly daily" example:"monthly"`                    // monthly or daily
	Amount          *types.Amount     `json:"amount" binding:"required" swaggertype:"string" example:"5000.00"`               // The limit
	CategoryBudgets *string           `json:"categoryBudgets" binding:"omitempty,json" example:"{\"Groceries\":\"1500.00\"}"` // Sub-limits per category as serialized JSON object
}

func (editable BudgetEditable) Validate() []httputil.FieldError {
	return validateBudget(editable.Amount, editable.CategoryBudgets)
}

func (editable BudgetEditable) model(userID string) models.Budget {
	budget := models.Budget{
		UserID: userID,
		Type:   editable.Type,
		Amount: *editable.Amount,
	}

	if editable.CategoryBudgets != nil {
		budget.CategoryBudgets = *editable.CategoryBudgets
	}

	return budget
}

// BudgetPatch contains the fields of a budget that can be updated. All fields are optional.
type BudgetPatch struct {
	Type            *models.BudgetType `json:"type" binding:"omitempty,oneof=monthly daily" example:"daily"`             // monthly or daily
	Amount          *types.Amount      `json:"amount" swaggertype:"string" example:"6000.00"`                         // The limit
	CategoryBudgets *string            `json:"categoryBudgets" binding:"omitempty,json" example:"{\"Health\":\"300\"}"` // Replaces all sub-limits
}

func (patch BudgetPatch) Validate() []httputil.FieldError {
	return validateBudget(patch.Amount, patch.CategoryBudgets)
}

func (patch BudgetPatch) update() storage.BudgetUpdate {
	return storage.BudgetUpdate{
		Type:            patch.Type,
		Amount:          patch.Amount,
		CategoryBudgets: patch.CategoryBudgets,
	}
}

func validateBudget(amount *types.Amount, categoryBudgets *string) []httputil.FieldError {
	var fields []httputil.FieldError

	if amount != nil {
		if amount.IsNegative() {
			fields = append(fields, httputil.FieldError{Field: "amount", Message: "amount must not be negative"})
		} else if !amount.HasValidScale() {
			fields = append(fields, errAmountScale)
		}
	}

	if categoryBudgets != nil && *categoryBudgets != "" {
		var m map[string]any
		if err := json.Unmarshal([]byte(*categoryBudgets), &m); err != nil || m == nil {
			fields = append(fields, httputil.FieldError{Field: "categoryBudgets", Message: "categoryBudgets must be a serialized JSON object"})
		}
	}

	return fields
}

var errAmountScale = httputil.FieldError{
	Field:   "amount",
	Message: "amount must have at most 2 decimal places and 8 digits before the decimal point",
}

type BudgetResponse struct {
	Data *models.Budget `json:"data"` // Data for the budget. null if the user has no budget
}
