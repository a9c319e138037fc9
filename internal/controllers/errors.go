package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

var errBudgetTypeInvalid = errors.New("the type query parameter must be one of: monthly, daily")

// status returns the appropriate HTTP status for an error
func status(err error) int {
	var validationError httputil.ValidationError

	switch {
	case errors.As(err, &validationError),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrInvalidQuery),
		errors.Is(err, storage.ErrInvalidDateRange),
		errors.Is(err, errBudgetTypeInvalid):
		return http.StatusBadRequest

	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrBudgetExists):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// httpError writes the error response for err.
//
// Server errors are logged with the request ID and replaced with a
// generic message.
func httpError(c *gin.Context, err error) {
	code := status(err)

	response := httputil.HTTPError{
		Error: err.Error(),
	}

	var validationError httputil.ValidationError
	if errors.As(err, &validationError) {
		response.Errors = validationError.Fields
	}

	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		response.Error = models.ErrGeneral.Error()
	}

	c.JSON(code, response)
}
