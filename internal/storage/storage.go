// Package storage is the only place that reads from and writes to the
// database. Everything else works against the Storage interface.
package storage

import (
	"context"
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
)

// Storage is the set of persistence operations the API needs.
type Storage interface {
	// GetUser returns the user or an error wrapping models.ErrResourceNotFound.
	GetUser(ctx context.Context, id string) (models.User, error)

	// UpsertUser creates the user or overwrites all non-nil fields of an
	// existing one in a single statement.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)

	// GetBudget returns the oldest budget of the user, optionally restricted
	// to a budget type. It returns nil if there is none.
	GetBudget(ctx context.Context, userID string, budgetType models.BudgetType) (*models.Budget, error)
	CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error)

	// UpdateBudget updates the budget GetBudget returns for the user.
	// It never creates a budget.
	UpdateBudget(ctx context.Context, userID string, update BudgetUpdate) (models.Budget, error)

	// GetExpenses returns the expenses of a user sorted by date, at most
	// limit rows if limit is positive.
	GetExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error)
	GetExpensesByCategory(ctx context.Context, userID, category string) ([]models.Expense, error)

	// GetExpensesByDateRange returns the expenses with start <= date <= end.
	GetExpensesByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Expense, error)
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)

	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)

	GetTotalSpentByCategory(ctx context.Context, userID string, start, end time.Time) (map[string]types.Amount, error)
	GetTotalSpent(ctx context.Context, userID string, start, end time.Time) (types.Amount, error)

	// Ping verifies that the database is reachable.
	Ping(ctx context.Context) error
}

// BudgetUpdate holds the fields of a partial budget update. Nil fields
// are left unchanged.
type BudgetUpdate struct {
	Type            *models.BudgetType
	Amount          *types.Amount
	CategoryBudgets *string
}
