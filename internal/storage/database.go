package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Database implements Storage with gorm.
type Database struct {
	db *gorm.DB
}

var _ Storage = (*Database)(nil)

// New returns a Database using the passed connection.
func New(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (s *Database) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *Database) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		return models.User{}, errEmptyUserID
	}

	// Only overwrite what the identity provider sent us
	columns := []string{"updated_at"}
	if user.Email != nil {
		columns = append(columns, "email")
	}
	if user.FirstName != nil {
		columns = append(columns, "first_name")
	}
	if user.LastName != nil {
		columns = append(columns, "last_name")
	}
	if user.ProfileImageURL != nil {
		columns = append(columns, "profile_image_url")
	}

	user.CreatedAt = time.Time{}
	user.UpdatedAt = time.Time{}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return s.GetUser(ctx, user.ID)
}

func (s *Database) GetBudget(ctx context.Context, userID string, budgetType models.BudgetType) (*models.Budget, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if budgetType != "" {
		q = q.Where("type = ?", budgetType)
	}

	var budget models.Budget
	err := q.Order("created_at ASC").First(&budget).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &budget, nil
}

func (s *Database) CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	err := s.db.WithContext(ctx).Create(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

func (s *Database) UpdateBudget(ctx context.Context, userID string, update BudgetUpdate) (models.Budget, error) {
	values := map[string]any{
		"updated_at": time.Now().In(time.UTC),
	}

	if update.Type != nil {
		values["type"] = *update.Type
	}
	if update.Amount != nil {
		values["amount"] = *update.Amount
	}
	if update.CategoryBudgets != nil {
		values["category_budgets"] = *update.CategoryBudgets
		if *update.CategoryBudgets == "" {
			values["category_budgets"] = "{}"
		}
	}

	var budget models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := New(tx).GetBudget(ctx, userID, "")
		if err != nil {
			return err
		}

		if current == nil {
			return errBudgetNotFound
		}

		result := tx.Model(&models.Budget{}).
			Where("id = ? AND user_id = ?", current.ID, userID).
			Updates(values)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errBudgetNotFound
		}

		return tx.Where("id = ?", current.ID).First(&budget).Error
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

func (s *Database) GetExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error) {
	q := s.expenses(ctx, userID)
	if limit > 0 {
		q = q.Limit(limit)
	}

	return find(q)
}

func (s *Database) GetExpensesByCategory(ctx context.Context, userID, category string) ([]models.Expense, error) {
	return find(s.expenses(ctx, userID).Where("category = ?", category))
}

func (s *Database) GetExpensesByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Expense, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	// Dates are stored in UTC
	return find(s.expenses(ctx, userID).Where("date >= ? AND date <= ?", start.In(time.UTC), end.In(time.UTC)))
}

func (s *Database) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	err := s.db.WithContext(ctx).Create(&expense).Error
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

func (s *Database) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := s.db.WithContext(ctx).Order("is_default DESC, name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *Database) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	err := s.db.WithContext(ctx).Create(&category).Error
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (s *Database) GetTotalSpentByCategory(ctx context.Context, userID string, start, end time.Time) (map[string]types.Amount, error) {
	expenses, err := s.GetExpensesByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return SumByCategory(expenses), nil
}

func (s *Database) GetTotalSpent(ctx context.Context, userID string, start, end time.Time) (types.Amount, error) {
	expenses, err := s.GetExpensesByDateRange(ctx, userID, start, end)
	if err != nil {
		return types.Amount{}, err
	}

	return Sum(expenses), nil
}

func (s *Database) Ping(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("SELECT 1").Error
}

// expenses is the base query for all expense listings of a user.
//
// The user filter is explicit so that an empty ID matches nothing.
func (s *Database) expenses(ctx context.Context, userID string) *gorm.DB {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC")
}

func find(q *gorm.DB) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	err := q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
