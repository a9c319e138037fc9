package controllers_test

import (
	"net/http"

	"github.com/pocket-ledger/backend/internal/controllers"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/test"
)

const (
	alice = "auth0|alice"
	bob   = "auth0|bob"
)

func (suite *TestSuiteStandard) createTestBudget(subject string, body map[string]any) controllers.BudgetResponse {
	r := suite.request(subject, http.MethodPost, "/budget", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) createTestExpense(subject string, body map[string]any) controllers.ExpenseResponse {
	r := suite.request(subject, http.MethodPost, "/expenses", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) listExpenses(subject, path string) []map[string]any {
	r := suite.request(subject, http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data []map[string]any `json:"data"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

// fieldErrors returns the names of all fields with errors in the response.
func (suite *TestSuiteStandard) fieldErrors(r *httputil.HTTPError) []string {
	names := make([]string, 0)
	for _, f := range r.Errors {
		names = append(names, f.Field)
	}
	return names
}
