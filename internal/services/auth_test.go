package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-api/internal/auth"
	"studio-api/internal/logger"
	"studio-api/internal/storage"
)

func newTestAuthService() (*AuthService, *auth.Manager) {
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewAuthService(storage.NewInMemoryStore(), tokens, logger.NewLogger()), tokens
}

func TestLogin(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	assert.NotEqual(t, "s3cret-pass", user.HashedPassword)

	token, loggedIn, err := svc.Login(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)

	// Wrong password and unknown user look identical to the caller.
	_, _, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
