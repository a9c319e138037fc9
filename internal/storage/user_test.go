package storage_test

import (
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/test"
)

func (suite *TestSuiteStandard) TestUpsertUserCreates() {
	user, err := suite.store.UpsertUser(suite.ctx, models.User{
		ID:        "auth0|1",
		Email:     ptr("priya@example.com"),
		FirstName: ptr("Priya"),
	})
	suite.Require().Nil(err)

	suite.Assert().Equal("auth0|1", user.ID)
	suite.Assert().Equal("priya@example.com", *user.Email)
	suite.Assert().Equal("Priya", *user.FirstName)
	suite.Assert().Nil(user.LastName)
	suite.Assert().WithinDuration(time.Now(), user.CreatedAt, test.TOLERANCE)
}

func (suite *TestSuiteStandard) TestUpsertUserUpdatesProvidedFields() {
	created, err := suite.store.UpsertUser(suite.ctx, models.User{
		ID:        "auth0|1",
		Email:     ptr("priya@example.com"),
		FirstName: ptr("Priya"),
		LastName:  ptr("Sharma"),
	})
	suite.Require().Nil(err)

	updated, err := suite.store.UpsertUser(suite.ctx, models.User{
		ID:        "auth0|1",
		FirstName: ptr("Priyanka"),
	})
	suite.Require().Nil(err)

	suite.Assert().Equal("Priyanka", *updated.FirstName)
	suite.Assert().Equal("Sharma", *updated.LastName, "Fields that were not sent must not be overwritten")
	suite.Assert().Equal("priya@example.com", *updated.Email)
	suite.Assert().Equal(created.CreatedAt, updated.CreatedAt)
	suite.Assert().False(updated.UpdatedAt.Before(created.UpdatedAt))

	var count int64
	suite.Require().Nil(suite.db.Model(&models.User{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestUpsertUserEmptyID() {
	_, err := suite.store.UpsertUser(suite.ctx, models.User{})
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestGetUserNotFound() {
	_, err := suite.store.GetUser(suite.ctx, "nobody")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGetUser() {
	_, err := suite.store.UpsertUser(suite.ctx, models.User{ID: "auth0|2"})
	suite.Require().Nil(err)

	user, err := suite.store.GetUser(suite.ctx, "auth0|2")
	suite.Require().Nil(err)
	suite.Assert().Equal("auth0|2", user.ID)
	suite.Assert().Nil(user.Email)
}
