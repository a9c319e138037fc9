package storage

import (
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
)

// Sum returns the total amount of all expenses.
func Sum(expenses []models.Expense) types.Amount {
	total := types.Amount{}
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return total
}

// SumByCategory returns the total amount per category name. Only categories
// with at least one expense are present.
func SumByCategory(expenses []models.Expense) map[string]types.Amount {
	totals := make(map[string]types.Amount)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	return totals
}
