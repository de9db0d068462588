package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/api/dto"
	"github.com/martijn/inkwell/internal/api/middleware"
	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/internal/infrastructure/sqlite"
)

// testEnv holds all test dependencies
type testEnv struct {
	db          *sqlite.DB
	router      *gin.Engine
	authService *service.AuthService
}

// setupTestEnv creates a test environment with in-memory SQLite database
// and the full route table, auth middleware included.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	blogRepo := sqlite.NewBlogRepository(db)

	authService := service.NewAuthService(userRepo, "test-secret", "HS256", 1)
	userService := service.NewUserService(userRepo, authService)
	blogService := service.NewBlogService(blogRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	blogHandler := NewBlogHandler(blogService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := router.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
	}

	authMiddleware := middleware.AuthMiddleware(authService)

	users := router.Group("/api/users")
	users.Use(authMiddleware)
	{
		users.GET("/profile", userHandler.GetProfile)
		users.PUT("/profile", userHandler.UpdateProfile)
		users.PUT("/password", userHandler.UpdatePassword)
	}

	blogs := router.Group("/api/blogs")
	blogs.Use(authMiddleware)
	{
		blogs.GET("", blogHandler.ListBlogs)
		blogs.GET("/recent", blogHandler.ListRecentBlogs)
		blogs.GET("/stats", blogHandler.GetBlogStats)
		blogs.GET("/:id", blogHandler.GetBlog)
		blogs.POST("", blogHandler.CreateBlog)
		blogs.PUT("/:id", blogHandler.UpdateBlog)
		blogs.DELETE("/:id", blogHandler.DeleteBlog)
	}

	return &testEnv{
		db:          db,
		router:      router,
		authService: authService,
	}
}

// signup registers a user directly through the service layer and
// returns a valid bearer token for it.
func (env *testEnv) signup(t *testing.T, name, email, password string) (*domain.User, string) {
	t.Helper()

	ctx := context.Background()
	if _, err := env.authService.Register(ctx, name, email, password); err != nil {
		t.Fatalf("failed to register user %s: %v", email, err)
	}

	token, user, err := env.authService.Authenticate(ctx, email, password)
	if err != nil {
		t.Fatalf("failed to authenticate user %s: %v", email, err)
	}
	return user, token
}

// makeRequest performs a request with an optional bearer token and JSON body
func (env *testEnv) makeRequest(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func parseUserResponse(t *testing.T, w *httptest.ResponseRecorder) dto.UserResponse {
	t.Helper()

	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseBlogResponse(t *testing.T, w *httptest.ResponseRecorder) dto.BlogResponse {
	t.Helper()

	var resp dto.BlogResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseBlogListResponse(t *testing.T, w *httptest.ResponseRecorder) []dto.BlogResponse {
	t.Helper()

	var resp []dto.BlogResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}
