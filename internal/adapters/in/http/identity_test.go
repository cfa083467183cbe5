package http_test

import (
	"testing"
	"time"

	httpadapter "careshare/internal/adapters/in/http"
	"careshare/internal/core/domain/model/kernel"
	"careshare/internal/core/domain/model/workflow"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestNewJWTIdentityProvider_RequiresSecret(t *testing.T) {
	_, err := httpadapter.NewJWTIdentityProvider("")
	require.Error(t, err)
}

func TestJWTIdentityProvider_RoundTrip(t *testing.T) {
	provider, err := httpadapter.NewJWTIdentityProvider(testSecret)
	require.NoError(t, err)

	for _, role := range []workflow.Role{workflow.User, workflow.Admin} {
		actor, err := workflow.NewActor(kernel.NewUUID(), role)
		require.NoError(t, err)

		token, err := provider.IssueToken(actor, time.Hour)
		require.NoError(t, err)

		resolved, err := provider.ResolveActor(t.Context(), token)
		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(resolved.ID()))
		assert.Equal(t, role, resolved.Role())
	}
}

func TestJWTIdentityProvider_RejectsBadTokens(t *testing.T) {
	provider, err := httpadapter.NewJWTIdentityProvider(testSecret)
	require.NoError(t, err)
	other, err := httpadapter.NewJWTIdentityProvider("another-secret")
	require.NoError(t, err)

	actor, err := workflow.NewActor(kernel.NewUUID(), workflow.User)
	require.NoError(t, err)

	foreign, err := other.IssueToken(actor, time.Hour)
	require.NoError(t, err)
	expired, err := provider.IssueToken(actor, -time.Minute)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, httpadapter.Claims{
		Role:             "ROOT",
		RegisteredClaims: jwt.RegisteredClaims{Subject: actor.ID().String()},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, httpadapter.Claims{
		Role:             "USER",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, httpadapter.Claims{
		Role:             "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{Subject: actor.ID().String()},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"expired":        expired,
		"unknown role":   badRole,
		"bad subject":    badSubject,
		"none algorithm": unsigned,
	}

	for name, token := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := provider.ResolveActor(t.Context(), token)
			require.ErrorIs(t, err, httpadapter.ErrInvalidToken)
		})
	}
}
