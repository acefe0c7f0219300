package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-care-api/internal/model"
	"pet-care-api/internal/repository"
	"pet-care-api/pkg/apierror"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	svc, err := NewAuthService("test-secret", time.Hour, repository.NewMemoryUserRepository())
	require.NoError(t, err)
	return svc
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "Bearer", result.TokenType)
	require.Equal(t, "alice", result.User.Username)

	// The registration token authenticates immediately.
	user, err := svc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, user.ID)

	// Login works by username and by email.
	byUsername, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, result.User.ID, byUsername.User.ID)

	byEmail, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, result.User.ID, byEmail.User.ID)
}

func TestAuthService_LoginFailuresAreGeneric(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice", "wrong-password")
	_, unknownUser := svc.Login(ctx, "nobody", "secret123")

	var apiErr1, apiErr2 *apierror.APIError
	require.ErrorAs(t, wrongPassword, &apiErr1)
	require.ErrorAs(t, unknownUser, &apiErr2)

	// Unknown account and wrong password must be indistinguishable.
	require.Equal(t, apiErr1.Message, apiErr2.Message)
	require.Equal(t, apiErr1.Code, apiErr2.Code)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "al", "alice@example.com", "secret123")
	require.Error(t, err)

	_, err = svc.Register(ctx, "alice", "not-an-email", "secret123")
	require.Error(t, err)

	_, err = svc.Register(ctx, "alice", "alice@example.com", "short")
	require.Error(t, err)
}

func TestAuthService_DuplicateAccounts(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "secret123")
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "ALREADY_EXISTS", apiErr.Code)
	require.Equal(t, "username", apiErr.Details)

	// Case-insensitive on both fields.
	_, err = svc.Register(ctx, "ALICE", "other@example.com", "secret123")
	require.Error(t, err)

	_, err = svc.Register(ctx, "bob", "Alice@Example.com", "secret123")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "email", apiErr.Details)
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rejects missing and malformed tokens", func(t *testing.T) {
		svc := newTestAuthService(t)

		_, err := svc.Authenticate(ctx, "")
		require.ErrorIs(t, err, model.ErrMissingToken)

		_, err = svc.Authenticate(ctx, "not-a-jwt")
		require.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		users := repository.NewMemoryUserRepository()
		svc, err := NewAuthService("test-secret", time.Millisecond, users)
		require.NoError(t, err)

		result, err := svc.Register(ctx, "alice", "alice@example.com", "secret123")
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		_, err = svc.Authenticate(ctx, result.Token)
		require.ErrorIs(t, err, model.ErrExpiredToken)
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		svc := newTestAuthService(t)
		other, err := NewAuthService("other-secret", time.Hour, repository.NewMemoryUserRepository())
		require.NoError(t, err)

		result, err := other.Register(ctx, "alice", "alice@example.com", "secret123")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, result.Token)
		require.ErrorIs(t, err, model.ErrInvalidToken)
	})
}

func TestAuthService_CheckUsername(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	available, err := svc.CheckUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, available)

	_, err = svc.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	available, err = svc.CheckUsername(ctx, "alice")
	require.NoError(t, err)
	require.False(t, available)

	_, err = svc.CheckUsername(ctx, "ab")
	require.Error(t, err)
	require.True(t, errors.As(err, new(*apierror.APIError)))
}
