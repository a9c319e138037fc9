package storage_test

import (
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/storage"
)

func (suite *TestSuiteStandard) TestGetExpensesOrderAndLimit() {
	now := time.Now()
	suite.createTestExpense("u1", "30", "Transport", now.Add(-1*time.Hour))
	suite.createTestExpense("u1", "10", "Groceries", now.Add(-3*time.Hour))
	suite.createTestExpense("u1", "20", "Health", now.Add(-2*time.Hour))
	suite.createTestExpense("u2", "99", "Groceries", now.Add(-4*time.Hour))

	expenses, err := suite.store.GetExpenses(suite.ctx, "u1", 0)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 3)
	suite.Assert().Equal("10.00", expenses[0].Amount.String())
	suite.Assert().Equal("20.00", expenses[1].Amount.String())
	suite.Assert().Equal("30.00", expenses[2].Amount.String())

	expenses, err = suite.store.GetExpenses(suite.ctx, "u1", 2)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal("10.00", expenses[0].Amount.String())
}

func (suite *TestSuiteStandard) TestGetExpensesEmpty() {
	expenses, err := suite.store.GetExpenses(suite.ctx, "u1", 0)
	suite.Require().Nil(err)
	suite.Assert().NotNil(expenses)
	suite.Assert().Len(expenses, 0)
}

func (suite *TestSuiteStandard) TestGetExpensesByCategory() {
	now := time.Now()
	suite.createTestExpense("u1", "30", "Transport", now)
	suite.createTestExpense("u1", "10", "Groceries", now)
	suite.createTestExpense("u2", "99", "Groceries", now)

	expenses, err := suite.store.GetExpensesByCategory(suite.ctx, "u1", "Groceries")
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("10.00", expenses[0].Amount.String())

	expenses, err = suite.store.GetExpensesByCategory(suite.ctx, "u1", "groceries")
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0, "Category names are compared exactly")
}

// Regression test: the date range must restrict the result on both ends.
func (suite *TestSuiteStandard) TestGetExpensesByDateRangeFilters() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	suite.createTestExpense("u1", "1", "Groceries", start.Add(-time.Second))
	suite.createTestExpense("u1", "2", "Groceries", start)
	suite.createTestExpense("u1", "3", "Groceries", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	suite.createTestExpense("u1", "4", "Groceries", end)
	suite.createTestExpense("u1", "5", "Groceries", end.Add(time.Second))

	expenses, err := suite.store.GetExpensesByDateRange(suite.ctx, "u1", start, end)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 3)
	suite.Assert().Equal("2.00", expenses[0].Amount.String())
	suite.Assert().Equal("3.00", expenses[1].Amount.String())
	suite.Assert().Equal("4.00", expenses[2].Amount.String())
}

func (suite *TestSuiteStandard) TestGetExpensesByDateRangeTimezones() {
	// 2024-03-01 01:00 in UTC+05:30 is still in February in UTC
	ist := time.FixedZone("IST", 5*60*60+30*60)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, ist)

	suite.createTestExpense("u1", "7", "Groceries", time.Date(2024, 3, 1, 1, 0, 0, 0, ist))
	suite.createTestExpense("u1", "8", "Groceries", time.Date(2024, 2, 29, 23, 0, 0, 0, ist))

	expenses, err := suite.store.GetExpensesByDateRange(suite.ctx, "u1", start, start.Add(24*time.Hour))
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("7.00", expenses[0].Amount.String())
}

func (suite *TestSuiteStandard) TestGetExpensesByDateRangeInvalid() {
	now := time.Now()
	_, err := suite.store.GetExpensesByDateRange(suite.ctx, "u1", now, now.Add(-time.Hour))
	suite.Assert().ErrorIs(err, storage.ErrInvalidDateRange)
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	date := time.Date(2024, 3, 17, 9, 12, 0, 0, time.UTC)
	expense := suite.createTestExpense("u1", "250.00", "Groceries", date)

	suite.Assert().NotEqual("00000000-0000-0000-0000-000000000000", expense.ID.String())
	suite.Assert().Equal(models.ExpenseMethodManual, expense.Method)
	suite.Assert().Equal(date, expense.Date)
}

func (suite *TestSuiteStandard) TestTotals() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	inside := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.createTestExpense("u1", "0.10", "Groceries", inside)
	suite.createTestExpense("u1", "0.20", "Groceries", inside)
	suite.createTestExpense("u1", "250.00", "Transport", inside)
	suite.createTestExpense("u1", "1000.00", "Transport", end.Add(time.Hour))
	suite.createTestExpense("u2", "5.00", "Groceries", inside)

	total, err := suite.store.GetTotalSpent(suite.ctx, "u1", start, end)
	suite.Require().Nil(err)
	suite.Assert().Equal("250.30", total.String())

	byCategory, err := suite.store.GetTotalSpentByCategory(suite.ctx, "u1", start, end)
	suite.Require().Nil(err)
	suite.Require().Len(byCategory, 2)
	suite.Assert().Equal("0.30", byCategory["Groceries"].String())
	suite.Assert().Equal("250.00", byCategory["Transport"].String())
}

func (suite *TestSuiteStandard) TestTotalsEmpty() {
	now := time.Now()

	total, err := suite.store.GetTotalSpent(suite.ctx, "u1", now.Add(-time.Hour), now)
	suite.Require().Nil(err)
	suite.Assert().Equal("0.00", total.String())

	byCategory, err := suite.store.GetTotalSpentByCategory(suite.ctx, "u1", now.Add(-time.Hour), now)
	suite.Require().Nil(err)
	suite.Assert().Len(byCategory, 0)
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	_, err := suite.store.GetExpenses(suite.ctx, "u1", 0)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.store.GetTotalSpent(suite.ctx, "u1", time.Now().Add(-time.Hour), time.Now())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
