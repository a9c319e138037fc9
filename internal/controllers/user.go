package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

type UserResponse struct {
	Data models.User `json:"data"` // Data for the user
}

// RegisterUserRoutes registers the routes for the authenticated user.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/user", co.OptionsUser)
	r.GET("/user", co.authenticated(), co.GetUser)
}

// OptionsUser returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Users
//	@Success		204
//	@Router			/auth/user [options]
func (co Controller) OptionsUser(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetUser returns the authenticated user
//
//	@Summary		Get user
//	@Description	Returns the user the request is authenticated as
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	httputil.HTTPError
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Security		BearerAuth
//	@Router			/auth/user [get]
func (co Controller) GetUser(c *gin.Context) {
	user, err := co.Storage.GetUser(c.Request.Context(), auth.UserID(c))
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}
