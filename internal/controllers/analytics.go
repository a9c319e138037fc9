package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/display"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/storage"
	"github.com/pocket-ledger/backend/internal/types"
)

// SpendingSummary is the spending of a user in a period.
type SpendingSummary struct {
	TotalSpent          types.Amount            `json:"totalSpent" swaggertype:"string" example:"1250.00"`                      // Sum of all expenses in the period
	TotalSpentFormatted string                  `json:"totalSpentFormatted" example:"₹1,250"`                                  // totalSpent formatted for display
	CategorySpending    map[string]types.Amount `json:"categorySpending" swaggertype:"object,string" example:"Groceries:250.00"` // Sum per category. Only categories with expenses are listed
	Period              types.Period            `json:"period" example:"month"`                                                 // The period used
	StartDate           time.Time               `json:"startDate" example:"2024-03-01T00:00:00+05:30"`                          // Start of the period
	EndDate             time.Time               `json:"endDate" example:"2024-03-17T09:12:00+05:30"`                            // Time of the request
}

type SpendingResponse struct {
	Data SpendingSummary `json:"data"` // Spending of the user
}

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/spending", co.OptionsSpending)
	r.GET("/spending", co.authenticated(), co.GetSpending)
}

// OptionsSpending returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Analytics
//	@Success		204
//	@Router			/analytics/spending [options]
func (co Controller) OptionsSpending(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetSpending returns the spending of the user in the current period
//
//	@Summary		Get spending
//	@Description	Returns the total spending and the spending per category from the start of the current day or month until now. Any period other than "day" is treated as "month".
//	@Tags			Analytics
//	@Produce		json
//	@Success		200		{object}	SpendingResponse
//	@Failure		401		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			period	query		string	false	"The period"	Enums(day, month)	default(month)
//	@Security		BearerAuth
//	@Router			/analytics/spending [get]
func (co Controller) GetSpending(c *gin.Context) {
	period := types.ParsePeriod(c.Query("period"))
	end := time.Now()
	start := period.Start(end)
	userID := auth.UserID(c)

	// Both totals are reduced from the same rows so that they always agree
	expenses, err := co.Storage.GetExpensesByDateRange(c.Request.Context(), userID, start, end)
	if err != nil {
		httpError(c, err)
		return
	}

	total := storage.Sum(expenses)

	c.JSON(http.StatusOK, SpendingResponse{
		Data: SpendingSummary{
			TotalSpent:          total,
			TotalSpentFormatted: display.FormatCurrency(total.Decimal()),
			CategorySpending:    storage.SumByCategory(expenses),
			Period:              period,
			StartDate:           start,
			EndDate:             end,
		},
	})
}
