package cli

import (
	"fmt"

	"github.com/martijn/inkwell/internal/core/repository"
	"github.com/martijn/inkwell/internal/core/service"
	"github.com/martijn/inkwell/internal/infrastructure/sqlite"
	"github.com/martijn/inkwell/pkg/config"
	"github.com/martijn/inkwell/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Inkwell - personal blogging backend",
	Long: `Inkwell is the backend for a personal blogging application.

It provides:
- Signup and login with JWT bearer tokens
- Profile and password management
- Per-user blog posts with draft/published state
- A REST API with Swagger documentation`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/inkwell/config.yml)")
}

// initServices initializes the database, repositories and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log := logger.New(cfg.LogLevel)

	userRepo := sqlite.NewUserRepository(db)
	blogRepo := sqlite.NewBlogRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecretKey, cfg.JWTAlgorithm, cfg.TokenTTLHours)
	userService := service.NewUserService(userRepo, authService)
	blogService := service.NewBlogService(blogRepo)

	return &Services{
		DB:          db,
		Log:         log,
		UserRepo:    userRepo,
		BlogRepo:    blogRepo,
		AuthService: authService,
		UserService: userService,
		BlogService: blogService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	Log         logger.Logger
	UserRepo    repository.UserRepository
	BlogRepo    repository.BlogRepository
	AuthService *service.AuthService
	UserService *service.UserService
	BlogService *service.BlogService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
