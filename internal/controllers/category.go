package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategoryList)
	r.GET("", co.GetCategories)
	r.POST("", co.authenticated(), co.CreateCategory)
}

// OptionsCategoryList returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Router			/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// GetCategories returns all categories
//
//	@Summary		Get categories
//	@Description	Returns all categories, built-in categories first. Does not require authentication.
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Failure		500	{object}	httputil.HTTPError
//	@Router			/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.Storage.GetCategories(c.Request.Context())
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// CreateCategory creates a category
//
//	@Summary		Create category
//	@Description	Creates a new category. Icon and color default to the ones for the category name.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		201			{object}	CategoryResponse
//	@Failure		400			{object}	httputil.HTTPError
//	@Failure		401			{object}	httputil.HTTPError
//	@Failure		500			{object}	httputil.HTTPError
//	@Param			category	body		CategoryEditable	true	"Category"
//	@Security		BearerAuth
//	@Router			/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		httpError(c, err)
		return
	}

	category, err := co.Storage.CreateCategory(c.Request.Context(), editable.model())
	if err != nil {
		httpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: category})
}
