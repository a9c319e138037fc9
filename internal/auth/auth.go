// Package auth resolves the identity of the caller of a request.
package auth

import (
	"errors"
	"net/http"

	"github.com/pocket-ledger/backend/internal/models"
)

var (
	ErrMissingToken = errors.New("the request does not contain a bearer token")
	ErrInvalidToken = errors.New("the bearer token is invalid")
)

// Identity is the caller as described by the identity provider.
type Identity struct {
	Subject         string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// User returns the user that is stored for the identity.
func (i Identity) User() models.User {
	return models.User{
		ID:              i.Subject,
		Email:           i.Email,
		FirstName:       i.FirstName,
		LastName:        i.LastName,
		ProfileImageURL: i.ProfileImageURL,
	}
}

// Authenticator either rejects a request or returns the identity of its caller.
type Authenticator interface {
	Authenticate(r *http.Request) (Identity, error)
}
