// Package controllers implements the HTTP handlers of the API.
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/storage"
)

// Controller holds the collaborators all handlers need.
type Controller struct {
	Storage       storage.Storage
	Authenticator auth.Authenticator
}

// authenticated returns the middleware that rejects unauthenticated requests.
func (co Controller) authenticated() gin.HandlerFunc {
	return auth.Middleware(co.Authenticator, co.Storage)
}

// RegisterRoutes registers the routes for all resources with the
// RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterHealthzRoutes(r.Group("/healthz"))
	co.RegisterUserRoutes(r.Group("/auth"))
	co.RegisterBudgetRoutes(r.Group("/budget"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterAnalyticsRoutes(r.Group("/analytics"))
}
