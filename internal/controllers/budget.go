package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for the budget with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBudget)
	r.GET("", co.authenticated(), co.GetBudget)
	r.POST("", co.authenticated(), co.CreateBudget)
	r.PUT("", co.authenticated(), co.UpdateBudget)
}

// OptionsBudget returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/budget [options]
func (co Controller) OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPostPut(c)
}

// GetBudget returns the budget of the user
//
//	@Summary		Get budget
//	@Description	Returns the oldest budget of the user. data is null if the user has no budget.
//	@Tags			Budget
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			type	query		string	false	"Only return the budget of this type"	Enums(monthly, daily)
//	@Security		BearerAuth
//	@Router			/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	budgetType := models.BudgetType(c.Query("type"))
	if budgetType != "" && !slices.Contains(models.BudgetTypes, budgetType) {
		httpError(c, errBudgetTypeInvalid)
		return
	}

	budget, err := co.Storage.GetBudget(c.Request.Context(), auth.UserID(c), budgetType)
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: budget})
}

// CreateBudget creates a budget for the user
//
//	@Summary		Create budget
//	@Description	Creates a budget for the user. There can be one budget per type.
//	@Tags			Budget
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	BudgetResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		409		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Security		BearerAuth
//	@Router			/budget [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		httpError(c, err)
		return
	}

	budget, err := co.Storage.CreateBudget(c.Request.Context(), editable.model(auth.UserID(c)))
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// UpdateBudget updates the budget of the user
//
//	@Summary		Update budget
//	@Description	Updates the oldest budget of the user. Only values to be updated need to be specified.
//	@Tags			Budget
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		404		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			budget	body		BudgetPatch	true	"Budget"
//	@Security		BearerAuth
//	@Router			/budget [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	var patch BudgetPatch
	err := httputil.BindData(c, &patch)
	if err != nil {
		httpError(c, err)
		return
	}

	budget, err := co.Storage.UpdateBudget(c.Request.Context(), auth.UserID(c), patch.update())
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}
