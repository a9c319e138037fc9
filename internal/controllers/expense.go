package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.authenticated(), co.GetExpenses)
		r.POST("", co.authenticated(), co.CreateExpense)
	}

	// Expenses by category
	{
		r.OPTIONS("/category/:category", co.OptionsExpenseCategory)
		r.GET("/category/:category", co.authenticated(), co.GetExpensesByCategory)
	}
}

// OptionsExpenseList returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsExpenseCategory returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Param			category	path	string	true	"Name of the category"
//	@Router			/expenses/category/{category} [options]
func (co Controller) OptionsExpenseCategory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetExpenses returns the expenses of the user
//
//	@Summary		Get expenses
//	@Description	Returns the expenses of the user, oldest first
//	@Tags			Expenses
//	@Produce		json
//	@Success		200		{object}	ExpenseListResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			limit	query		int		false	"Maximum number of expenses to return. Ignored unless it is a positive number."
//	@Param			start	query		string	false	"Only expenses at or after this time (RFC 3339 or YYYY-MM-DD)"
//	@Param			end		query		string	false	"Only expenses at or before this time (RFC 3339 or YYYY-MM-DD). Defaults to now if start is set."
//	@Security		BearerAuth
//	@Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	filter, err := expenseFilter(c)
	if err != nil {
		httpError(c, err)
		return
	}

	userID := auth.UserID(c)

	var expenses []models.Expense
	if filter.Start.IsZero() && filter.End.IsZero() {
		expenses, err = co.Storage.GetExpenses(c.Request.Context(), userID, filter.Limit)
	} else {
		expenses, err = co.Storage.GetExpensesByDateRange(c.Request.Context(), userID, filter.Start, filter.End)
		if err == nil && filter.Limit > 0 && len(expenses) > filter.Limit {
			expenses = expenses[:filter.Limit]
		}
	}

	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// expenseFilter reads the query parameters for expense lists.
//
// If only one end of the date range is set, the other one defaults to
// the beginning of time or now.
func expenseFilter(c *gin.Context) (ExpenseQueryFilter, error) {
	start, err := httputil.Time(c, "start")
	if err != nil {
		return ExpenseQueryFilter{}, err
	}

	end, err := httputil.Time(c, "end")
	if err != nil {
		return ExpenseQueryFilter{}, err
	}

	if !start.IsZero() && end.IsZero() {
		end = time.Now()
	}

	if start.IsZero() && !end.IsZero() {
		start = time.Unix(0, 0)
	}

	return ExpenseQueryFilter{
		Limit: httputil.PositiveInt(c, "limit"),
		Start: start,
		End:   end,
	}, nil
}

// GetExpensesByCategory returns the expenses of the user in a category
//
//	@Summary		Get expenses by category
//	@Description	Returns the expenses of the user in the category, oldest first. Category names are matched exactly.
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	ExpenseListResponse
//	@Failure		401			{object}	httputil.HTTPError
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			category	path		string	true	"Name of the category"
//	@Security		BearerAuth
//	@Router			/expenses/category/{category} [get]
func (co Controller) GetExpensesByCategory(c *gin.Context) {
	expenses, err := co.Storage.GetExpensesByCategory(c.Request.Context(), auth.UserID(c), c.Param("category"))
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// CreateExpense creates an expense for the user
//
//	@Summary		Create expense
//	@Description	Creates an expense for the user
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	ExpenseResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Security		BearerAuth
//	@Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		httpError(c, err)
		return
	}

	expense, err := co.Storage.CreateExpense(c.Request.Context(), editable.model(auth.UserID(c)))
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}
