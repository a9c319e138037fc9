package test

import (
	"testing"
	"time"

	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/stretchr/testify/require"
)

// Secret is the signing secret for tokens used in tests.
const Secret = "pocket-ledger-test-secret"

// Authenticator returns the authenticator matching the tokens created
// by Token.
func Authenticator() *auth.JWT {
	return auth.NewJWT(Secret, "")
}

// Token returns the authorization header for a user with the given subject.
func Token(t *testing.T, identity auth.Identity) map[string]string {
	token, err := Authenticator().Sign(identity, time.Hour)
	require.Nil(t, err, "Token could not be signed")

	return map[string]string{"Authorization": "Bearer " + token}
}

// User returns the authorization header for a user that has only a subject.
func User(t *testing.T, subject string) map[string]string {
	return Token(t, auth.Identity{Subject: subject})
}
