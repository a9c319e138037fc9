package auth

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

const userIDKey = "pl-user-id"

// Middleware rejects all requests without a valid identity with
// HTTP 401. For all others, the user is created or updated from the
// identity and its ID is stored in the context.
func Middleware(a Authenticator, s storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := a.Authenticate(c.Request)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("Authentication")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.HTTPError{
				Error: "Unauthorized",
			})
			return
		}

		user, err := s.UpsertUser(c.Request.Context(), identity.User())
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, httputil.HTTPError{
				Error: models.ErrGeneral.Error(),
			})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
