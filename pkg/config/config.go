package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required fields
	JWTSecretKey string `mapstructure:"jwt_secret_key"`

	// Optional API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Optional SSL settings
	SSLCert string `mapstructure:"ssl_cert"`
	SSLKey  string `mapstructure:"ssl_key"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional logging settings
	LogLevel string `mapstructure:"log_level"`

	// Optional JWT settings
	JWTAlgorithm  string `mapstructure:"jwt_algorithm"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`

	// Optional storage settings
	DBPath string `mapstructure:"db_path"`

	// Optional dev mode flag
	DevMode bool `mapstructure:"dev_mode"`

	ConfigPath string
}

const (
	DefaultConfigPath    = "/etc/inkwell/config.yml"
	DefaultDBPath        = "/var/lib/inkwell/db.sqlite3"
	DefaultAPIHost       = "0.0.0.0"
	DefaultAPIPort       = 8380
	DefaultLogLevel      = "info"
	DefaultJWTAlgorithm  = "HS256"
	DefaultTokenTTLHours = 24
)

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("api_host", DefaultAPIHost)
	viper.SetDefault("api_port", DefaultAPIPort)
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("jwt_algorithm", DefaultJWTAlgorithm)
	viper.SetDefault("token_ttl_hours", DefaultTokenTTLHours)
	viper.SetDefault("db_path", DefaultDBPath)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("INKWELL")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("jwt_secret_key is required")
	}

	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("jwt_algorithm must be one of HS256, HS384, HS512")
	}

	// Validate SSL config if provided
	if c.SSLCert != "" || c.SSLKey != "" {
		if c.SSLCert == "" || c.SSLKey == "" {
			return fmt.Errorf("both ssl_cert and ssl_key must be provided")
		}
		if _, err := os.Stat(c.SSLCert); os.IsNotExist(err) {
			return fmt.Errorf("ssl_cert does not exist: %s", c.SSLCert)
		}
		if _, err := os.Stat(c.SSLKey); os.IsNotExist(err) {
			return fmt.Errorf("ssl_key does not exist: %s", c.SSLKey)
		}
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return c.DevMode
}
