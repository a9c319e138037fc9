package controllers_test

import (
	"net/http"

	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/controllers"
	"github.com/pocket-ledger/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetUserUnauthorized() {
	r := suite.request("", http.MethodGet, "/auth/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	suite.Assert().Equal("Unauthorized", test.DecodeError(suite.T(), &r).Error)
}

func (suite *TestSuiteStandard) TestGetUserInvalidToken() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/auth/user", "", map[string]string{"Authorization": "Bearer garbage"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestGetUser() {
	email := "alice@example.com"
	first := "Alice"
	headers := test.Token(suite.T(), auth.Identity{Subject: alice, Email: &email, FirstName: &first})

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/auth/user", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(alice, response.Data.ID)
	suite.Assert().Equal("alice@example.com", *response.Data.Email)
	suite.Assert().Equal("Alice", *response.Data.FirstName)
	suite.Assert().Nil(response.Data.LastName)
}

func (suite *TestSuiteStandard) TestGetUserProfileUpdatedOnSignIn() {
	first := "Alice"
	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/auth/user", "", test.Token(suite.T(), auth.Identity{Subject: alice, FirstName: &first}))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	renamed := "Alicia"
	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/api/auth/user", "", test.Token(suite.T(), auth.Identity{Subject: alice, FirstName: &renamed}))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Alicia", *response.Data.FirstName)
}

func (suite *TestSuiteStandard) TestGetUserDBClosed() {
	suite.CloseDB()

	r := suite.request(alice, http.MethodGet, "/auth/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal("an error occurred on the server during your request", test.DecodeError(suite.T(), &r).Error)
}
