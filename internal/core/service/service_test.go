package service_test

import (
	"context"
	"testing"

	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/repository"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/internal/infrastructure/sqlite"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key"

type testDeps struct {
	db       *sqlite.DB
	userRepo repository.UserRepository
	blogRepo repository.BlogRepository
	auth     *service.AuthService
	users    *service.UserService
	blogs    *service.BlogService
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	blogRepo := sqlite.NewBlogRepository(db)
	auth := service.NewAuthService(userRepo, testJWTSecret, "HS256", 1)

	return &testDeps{
		db:       db,
		userRepo: userRepo,
		blogRepo: blogRepo,
		auth:     auth,
		users:    service.NewUserService(userRepo, auth),
		blogs:    service.NewBlogService(blogRepo),
	}
}

func (d *testDeps) registerUser(t *testing.T, name, email, password string) *domain.User {
	t.Helper()

	user, err := d.auth.Register(context.Background(), name, email, password)
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	return user
}
