package models

import (
	"time"

	"github.com/pocket-ledger/backend/internal/types"
	"gorm.io/gorm"
)

// ExpenseMethod is how an expense was recorded.
type ExpenseMethod string

const (
	ExpenseMethodManual  ExpenseMethod = "manual"
	ExpenseMethodVoice   ExpenseMethod = "voice"
	ExpenseMethodReceipt ExpenseMethod = "receipt"
)

// Expense is money spent by a user. Expenses are never changed after creation.
type Expense struct {
	DefaultModel
	UserID      string        `json:"userId" gorm:"not null;index:idx_expenses_user_date" example:"auth0|6478e2b5c1"` // The user who spent the money
	Amount      types.Amount  `json:"amount" gorm:"type:DECIMAL(10,2);not null" example:"250.00"`                     // The amount spent
	Category    string        `json:"category" gorm:"not null" example:"Groceries"`                                   // Name of the category
	Description *string       `json:"description" example:"Vegetables and milk"`                                      // Optional description
	Method      ExpenseMethod `json:"method" gorm:"not null" example:"manual"`                                        // manual, voice or receipt
	ReceiptURL  *string       `json:"receiptUrl" gorm:"column:receipt_url" example:"https://example.com/r/1.jpg"`     // Receipt image, URL or data URL
	VoiceNote   *string       `json:"voiceNote" example:"two hundred fifty for groceries"`                            // Transcript of a voice note
	Date        time.Time     `json:"date" gorm:"not null;index:idx_expenses_user_date" example:"2024-03-17T09:12:00Z"` // When the money was spent
	CreatedAt   time.Time     `json:"createdAt" example:"2024-03-17T09:12:03.491514Z"`                                // Time the resource was created
}

// BeforeSave sets defaults and stores the date in UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	if e.Method == "" {
		e.Method = ExpenseMethodManual
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind returns all times in UTC.
func (e *Expense) AfterFind(_ *gorm.DB) (err error) {
	e.Date = e.Date.In(time.UTC)
	e.CreatedAt = e.CreatedAt.In(time.UTC)
	return nil
}
