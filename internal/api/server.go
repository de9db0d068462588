package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/martijn/inkwell/docs"
	"github.com/martijn/inkwell/internal/api/handler"
	"github.com/martijn/inkwell/internal/api/middleware"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/pkg/config"
	"github.com/martijn/inkwell/pkg/logger"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
	log    logger.Logger
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	log logger.Logger,
	authService *service.AuthService,
	userService *service.UserService,
	blogService *service.BlogService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware. ErrorHandlerMiddleware is the panic boundary,
	// so gin's own Recovery is not installed.
	router.Use(middleware.RequestIDMiddleware(log))
	router.Use(middleware.ErrorHandlerMiddleware(log))
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	blogHandler := handler.NewBlogHandler(blogService)

	// Public routes (no auth required)
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
	}

	// Protected routes (auth required)
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

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	server := &Server{
		router: router,
		config: cfg,
		log:    log,
	}

	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		s.log.Infof("starting HTTPS server on %s", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	s.log.Infof("starting HTTP server on %s", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
