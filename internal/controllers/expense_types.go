package controllers

import (
	"time"

	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
)

// ExpenseEditable contains the fields of an expense that can be set by clients.
type ExpenseEditable struct {
	Amount      *types.Amount        `json:"amount" binding:"required" swaggertype:"string" example:"250.00"`                            // The amount spent
	Category    string               `json:"category" binding:"required,max=255" example:"Groceries"`                                  // Name of the category
	Description *string              `json:"description" example:"Vegetables and milk"`                                                // Optional description
	Method      models.ExpenseMethod `json:"method" binding:"omitempty,oneof=manual voice receipt" example:"manual" default:"manual"`  // How the expense was recorded
	ReceiptURL  *string              `json:"receiptUrl" example:"https://example.com/r/1.jpg"`                                        // Receipt image, URL or data URL
	VoiceNote   *string              `json:"voiceNote" example:"two hundred fifty for groceries"`                                      // Transcript of a voice note
	Date        *types.Time          `json:"date" swaggertype:"string" format:"date-time" example:"2024-03-17T09:12:00Z"`              // When the money was spent, RFC 3339. Defaults to now
}

func (editable ExpenseEditable) Validate() []httputil.FieldError {
	if editable.Amount == nil {
		return nil
	}

	if !editable.Amount.IsPositive() {
		return []httputil.FieldError{{Field: "amount", Message: "amount must be greater than 0"}}
	}

	if !editable.Amount.HasValidScale() {
		return []httputil.FieldError{errAmountScale}
	}

	return nil
}

func (editable ExpenseEditable) model(userID string) models.Expense {
	expense := models.Expense{
		UserID:      userID,
		Amount:      *editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Method:      editable.Method,
		ReceiptURL:  editable.ReceiptURL,
		VoiceNote:   editable.VoiceNote,
	}

	if editable.Date != nil {
		expense.Date = editable.Date.Time
	}

	return expense
}

type ExpenseResponse struct {
	Data models.Expense `json:"data"` // Data for the expense
}

type ExpenseListResponse struct {
	Data []models.Expense `json:"data"` // List of expenses
}

// ExpenseQueryFilter contains the query parameters for expense lists.
type ExpenseQueryFilter struct {
	Limit int       // Maximum number of expenses to return, 0 for all
	Start time.Time // Only expenses at or after this time
	End   time.Time // Only expenses at or before this time
}
