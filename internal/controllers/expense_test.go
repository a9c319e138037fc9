package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	created := suite.createTestExpense(alice, map[string]any{
		"amount":   "250.00",
		"category": "Groceries",
		"method":   "manual",
	})

	suite.Assert().Equal(alice, created.Data.UserID)
	suite.Assert().Equal("250.00", created.Data.Amount.String())
	suite.Assert().Equal(models.ExpenseMethodManual, created.Data.Method)
	suite.Assert().WithinDuration(time.Now(), created.Data.Date, test.TOLERANCE)

	expenses := suite.listExpenses(alice, "/expenses")
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("250.00", expenses[0]["amount"])
	suite.Assert().Equal("Groceries", expenses[0]["category"])
}

func (suite *TestSuiteStandard) TestCreateExpenseDefaults() {
	created := suite.createTestExpense(alice, map[string]any{
		"amount":   "12.5",
		"category": "Transport",
	})

	suite.Assert().Equal(models.ExpenseMethodManual, created.Data.Method)
	suite.Assert().Equal("12.50", created.Data.Amount.String())
	suite.Assert().Nil(created.Data.Description)
}

func (suite *TestSuiteStandard) TestCreateExpenseVoiceAndReceipt() {
	voice := suite.createTestExpense(alice, map[string]any{
		"amount":    "80",
		"category":  "Petrol",
		"method":    "voice",
		"voiceNote": "eighty rupees petrol",
		"date":      "2024-03-17T09:12:00+05:30",
	})
	suite.Assert().Equal("eighty rupees petrol", *voice.Data.VoiceNote)
	suite.Assert().True(time.Date(2024, 3, 17, 3, 42, 0, 0, time.UTC).Equal(voice.Data.Date))

	receipt := suite.createTestExpense(alice, map[string]any{
		"amount":     "499.99",
		"category":   "Shopping",
		"method":     "receipt",
		"receiptUrl": "data:image/png;base64,iVBORw0KGgo=",
	})
	suite.Assert().Equal("data:image/png;base64,iVBORw0KGgo=", *receipt.Data.ReceiptURL)
}

func (suite *TestSuiteStandard) TestCreateExpenseValidation() {
	tests := []struct {
		name   string
		body   any
		fields []string
	}{
		{"Missing fields", map[string]any{}, []string{"amount", "category"}},
		{"Zero amount", map[string]any{"amount": "0", "category": "Groceries"}, []string{"amount"}},
		{"Negative amount", map[string]any{"amount": "-10", "category": "Groceries"}, []string{"amount"}},
		{"Number amount", `{"amount": 250, "category": "Groceries"}`, []string{"amount"}},
		{"Grouped amount", map[string]any{"amount": "1,250.00", "category": "Groceries"}, []string{"amount"}},
		{"Number description", `{"amount": "250", "category": "Groceries", "description": 5}`, []string{"description"}},
		{"Number date", `{"amount": "250", "category": "Groceries", "date": 5}`, []string{"date"}},
		{"Date without time", map[string]any{"amount": "250", "category": "Groceries", "date": "2024-03-17"}, []string{"date"}},
		{"Unknown method", map[string]any{"amount": "250", "category": "Groceries", "method": "telepathy"}, []string{"method"}},
		{"Server fields", map[string]any{"amount": "250", "category": "Groceries", "updatedAt": "2024-01-01T00:00:00Z"}, []string{"updatedAt"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/api/expenses", tt.body, test.User(t, alice))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			e := test.DecodeError(t, &r)
			assert.Equal(t, tt.fields, suite.fieldErrors(&e))
		})
	}

	suite.Assert().Len(suite.listExpenses(alice, "/expenses"), 0)
}

func (suite *TestSuiteStandard) TestGetExpensesScopedToUser() {
	_ = suite.createTestExpense(alice, map[string]any{"amount": "1", "category": "Groceries"})
	_ = suite.createTestExpense(bob, map[string]any{"amount": "2", "category": "Groceries"})

	expenses := suite.listExpenses(alice, "/expenses")
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("1.00", expenses[0]["amount"])
}

func (suite *TestSuiteStandard) TestGetExpensesLimit() {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, amount := range []string{"3", "1", "2"} {
		_ = suite.createTestExpense(alice, map[string]any{
			"amount":   amount,
			"category": "Groceries",
			"date":     base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
		})
	}

	expenses := suite.listExpenses(alice, "/expenses?limit=2")
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal("3.00", expenses[0]["amount"])
	suite.Assert().Equal("1.00", expenses[1]["amount"])

	// Invalid limits are ignored
	for _, limit := range []string{"0", "-1", "two"} {
		suite.Assert().Len(suite.listExpenses(alice, "/expenses?limit="+limit), 3, limit)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesDateRange() {
	for _, date := range []string{"2024-02-29T23:59:59Z", "2024-03-01T00:00:00Z", "2024-03-15T10:00:00Z", "2024-04-01T00:00:00Z"} {
		_ = suite.createTestExpense(alice, map[string]any{"amount": "10", "category": "Groceries", "date": date})
	}

	expenses := suite.listExpenses(alice, "/expenses?start=2024-03-01T00:00:00Z&end=2024-03-31T23:59:59Z")
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal("2024-03-01T00:00:00Z", expenses[0]["date"])
	suite.Assert().Equal("2024-03-15T10:00:00Z", expenses[1]["date"])

	expenses = suite.listExpenses(alice, "/expenses?end=2024-03-01T00:00:00Z")
	suite.Assert().Len(expenses, 2)

	expenses = suite.listExpenses(alice, "/expenses?start=2024-03-02T00:00:00Z")
	suite.Assert().Len(expenses, 2)
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidDates() {
	r := suite.request(alice, http.MethodGet, "/expenses?start=yesterday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(alice, http.MethodGet, "/expenses?start=2024-03-31T00:00:00Z&end=2024-03-01T00:00:00Z", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetExpensesByCategory() {
	_ = suite.createTestExpense(alice, map[string]any{"amount": "10", "category": "Food & Dining"})
	_ = suite.createTestExpense(alice, map[string]any{"amount": "20", "category": "Transport"})
	_ = suite.createTestExpense(bob, map[string]any{"amount": "30", "category": "Food & Dining"})

	expenses := suite.listExpenses(alice, "/expenses/category/Food%20&%20Dining")
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("10.00", expenses[0]["amount"])

	suite.Assert().Len(suite.listExpenses(alice, "/expenses/category/Health"), 0)
}

func (suite *TestSuiteStandard) TestExpensesUnauthorized() {
	r := suite.request("", http.MethodGet, "/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = suite.request("", http.MethodPost, "/expenses", map[string]any{"amount": "1", "category": "Groceries"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = suite.request("", http.MethodGet, "/expenses/category/Groceries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	r := suite.request(alice, http.MethodGet, "/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
