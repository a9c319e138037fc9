package controllers_test

import (
	"net/http"
	"testing"

	"github.com/pocket-ledger/backend/internal/controllers"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetBudgetNone() {
	r := suite.request(alice, http.MethodGet, "/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data":null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestCreateAndGetBudget() {
	created := suite.createTestBudget(alice, map[string]any{
		"type":            "monthly",
		"amount":          "5000",
		"categoryBudgets": `{"Groceries":"1500.00"}`,
	})

	suite.Require().NotNil(created.Data)
	suite.Assert().Equal(alice, created.Data.UserID)
	suite.Assert().Equal("5000.00", created.Data.Amount.String())
	suite.Assert().Equal(`{"Groceries":"1500.00"}`, created.Data.CategoryBudgets)

	r := suite.request(alice, http.MethodGet, "/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(created.Data.ID, response.Data.ID)

	// Amounts are strings on the wire
	suite.Assert().Contains(r.Body.String(), `"amount":"5000.00"`)

	// Other users do not see the budget
	r = suite.request(bob, http.MethodGet, "/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data":null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGetBudgetByType() {
	_ = suite.createTestBudget(alice, map[string]any{"type": "monthly", "amount": "5000"})
	daily := suite.createTestBudget(alice, map[string]any{"type": "daily", "amount": "200"})

	r := suite.request(alice, http.MethodGet, "/budget?type=daily", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(daily.Data.ID, response.Data.ID)

	r = suite.request(alice, http.MethodGet, "/budget?type=weekly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateBudgetUserIDFromToken() {
	created := suite.createTestBudget(alice, map[string]any{
		"type":   "monthly",
		"amount": "5000",
		"userId": bob,
	})

	suite.Assert().Equal(alice, created.Data.UserID)
}

func (suite *TestSuiteStandard) TestCreateBudgetDuplicate() {
	_ = suite.createTestBudget(alice, map[string]any{"type": "monthly", "amount": "5000"})

	r := suite.request(alice, http.MethodPost, "/budget", map[string]any{"type": "monthly", "amount": "100"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().Equal(models.ErrBudgetExists.Error(), test.DecodeError(suite.T(), &r).Error)
}

func (suite *TestSuiteStandard) TestCreateBudgetValidation() {
	tests := []struct {
		name   string
		body   any
		fields []string
	}{
		{"Missing fields", map[string]any{}, []string{"amount", "type"}},
		{"Unknown type", map[string]any{"type": "weekly", "amount": "10"}, []string{"type"}},
		{"Number amount", `{"type": "monthly", "amount": 5000}`, []string{"amount"}},
		{"Not a number", map[string]any{"type": "monthly", "amount": "five"}, []string{"amount"}},
		{"Negative amount", map[string]any{"type": "monthly", "amount": "-1"}, []string{"amount"}},
		{"Three decimals", map[string]any{"type": "monthly", "amount": "1.005"}, []string{"amount"}},
		{"Too large", map[string]any{"type": "monthly", "amount": "123456789"}, []string{"amount"}},
		{"Invalid category budgets", map[string]any{"type": "monthly", "amount": "10", "categoryBudgets": "{"}, []string{"categoryBudgets"}},
		{"Category budgets not an object", map[string]any{"type": "monthly", "amount": "10", "categoryBudgets": "[1]"}, []string{"categoryBudgets"}},
		{"Server fields", map[string]any{"type": "monthly", "amount": "10", "id": "x", "createdAt": "2024-01-01T00:00:00Z"}, []string{"createdAt", "id"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/api/budget", tt.body, test.User(t, alice))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			e := test.DecodeError(t, &r)
			assert.Equal(t, tt.fields, suite.fieldErrors(&e))
		})
	}

	// Nothing was created
	r := suite.request(alice, http.MethodGet, "/budget", "")
	suite.Assert().JSONEq(`{"data":null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestCreateBudgetZeroAmount() {
	created := suite.createTestBudget(alice, map[string]any{"type": "daily", "amount": "0"})
	suite.Assert().Equal("0.00", created.Data.Amount.String())
	suite.Assert().Equal("{}", created.Data.CategoryBudgets)
}

func (suite *TestSuiteStandard) TestCreateBudgetEmptyBody() {
	r := suite.request(alice, http.MethodPost, "/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	created := suite.createTestBudget(alice, map[string]any{
		"type":            "monthly",
		"amount":          "5000",
		"categoryBudgets": `{"Groceries":"1500.00"}`,
	})

	r := suite.request(alice, http.MethodPut, "/budget", map[string]any{"amount": "6000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal(created.Data.ID, response.Data.ID)
	suite.Assert().Equal("6000.00", response.Data.Amount.String())
	suite.Assert().Equal(models.BudgetTypeMonthly, response.Data.Type)
	suite.Assert().Equal(`{"Groceries":"1500.00"}`, response.Data.CategoryBudgets)
	suite.Assert().True(response.Data.UpdatedAt.After(created.Data.CreatedAt))
}

func (suite *TestSuiteStandard) TestUpdateBudgetNone() {
	r := suite.request(alice, http.MethodPut, "/budget", map[string]any{"amount": "6000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// No budget was created
	r = suite.request(alice, http.MethodGet, "/budget", "")
	suite.Assert().JSONEq(`{"data":null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestUpdateBudgetOtherUser() {
	_ = suite.createTestBudget(bob, map[string]any{"type": "monthly", "amount": "100"})

	r := suite.request(alice, http.MethodPut, "/budget", map[string]any{"amount": "6000"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(bob, http.MethodGet, "/budget", "")
	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("100.00", response.Data.Amount.String())
}

func (suite *TestSuiteStandard) TestUpdateBudgetValidation() {
	_ = suite.createTestBudget(alice, map[string]any{"type": "monthly", "amount": "5000"})

	r := suite.request(alice, http.MethodPut, "/budget", map[string]any{"amount": "-5", "type": "yearly"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	e := test.DecodeError(suite.T(), &r)
	suite.Assert().Equal([]string{"amount", "type"}, suite.fieldErrors(&e))
}

func (suite *TestSuiteStandard) TestUpdateBudgetNullBody() {
	created := suite.createTestBudget(alice, map[string]any{"type": "monthly", "amount": "5000"})

	r := suite.request(alice, http.MethodPut, "/budget", "null")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	e := test.DecodeError(suite.T(), &r)
	suite.Assert().Equal([]string{"body"}, suite.fieldErrors(&e))

	r = suite.request(alice, http.MethodGet, "/budget", "")
	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.UpdatedAt.After(created.Data.UpdatedAt), "the budget must not be touched")
}

func (suite *TestSuiteStandard) TestBudgetUnauthorized() {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
		r := suite.request("", method, "/budget", map[string]any{"type": "monthly", "amount": "10"})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	}
}

func (suite *TestSuiteStandard) TestBudgetDBClosed() {
	suite.CloseDB()

	r := suite.request(alice, http.MethodGet, "/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().NotContains(r.Body.String(), "sql")
}
