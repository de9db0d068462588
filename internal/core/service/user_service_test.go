package service_test

import (
	"context"
	"testing"

	"github.com/martijn/inkwell/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	user := deps.registerUser(t, "Alice", "alice@example.com", "secret123")

	bio := "I write about Go."
	updated, err := deps.users.UpdateProfile(ctx, user, "Alice B.", &bio)
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)

	stored, err := deps.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", stored.Name)
	require.NotNil(t, stored.Bio)
	assert.Equal(t, bio, *stored.Bio)
}

func TestUpdateProfileKeepsBioWhenAbsent(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	user := deps.registerUser(t, "Alice", "alice@example.com", "secret123")

	bio := "Original bio"
	_, err := deps.users.UpdateProfile(ctx, user, "Alice", &bio)
	require.NoError(t, err)

	// A nil bio means the field was not supplied; the stored value stays.
	updated, err := deps.users.UpdateProfile(ctx, user, "Alice Renamed", nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)
}

func TestUpdateProfileNeverTouchesEmailOrPassword(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	user := deps.registerUser(t, "Alice", "alice@example.com", "secret123")

	_, err := deps.users.UpdateProfile(ctx, user, "Renamed", nil)
	require.NoError(t, err)

	stored, err := deps.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.True(t, deps.auth.VerifyPassword("secret123", stored.Password))
}

func TestUpdatePassword(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	user := deps.registerUser(t, "Alice", "alice@example.com", "secret123")

	err := deps.users.UpdatePassword(ctx, user, "secret123", "new-password")
	require.NoError(t, err)

	stored, err := deps.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, deps.auth.VerifyPassword("new-password", stored.Password))
	assert.False(t, deps.auth.VerifyPassword("secret123", stored.Password))
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	user := deps.registerUser(t, "Alice", "alice@example.com", "secret123")

	err := deps.users.UpdatePassword(ctx, user, "wrong-current", "new-password")
	require.ErrorIs(t, err, service.ErrIncorrectPassword)

	// The stored hash is unchanged.
	stored, err := deps.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, deps.auth.VerifyPassword("secret123", stored.Password))
}
