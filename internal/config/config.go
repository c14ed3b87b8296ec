package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// View caps shared by the aggregation service and its handlers. Each listing
// endpoint has a default page size and a hard cap that wins over any
// caller-supplied limit.
const (
	DefaultTechnologyLimit = 10
	MaxTechnologyLimit     = 20

	DefaultTrendingLimit = 10
	MaxTrendingLimit     = 15

	// RisingUsersLimit is fixed, not caller-controlled.
	RisingUsersLimit = 30
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	GitHub GitHubConfig
	Auth   AuthConfig
	Log    LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// GitHubConfig holds upstream GitHub API configuration
type GitHubConfig struct {
	// Token gates all authenticated upstream calls. An empty token does not
	// fall back to anonymous requests; affected endpoints report a
	// configuration error instead.
	Token   string
	BaseURL string
}

// AuthConfig holds local account token configuration
type AuthConfig struct {
	JWTSecret   string
	TokenTTLMin int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file is optional, so we don't return error if it doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
		},
		GitHub: GitHubConfig{
			Token:   githubToken(),
			BaseURL: getEnv("GITHUB_API_URL", "https://api.github.com"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			TokenTTLMin: getEnvAsInt("JWT_TTL_MINUTES", 60),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

// githubToken resolves the upstream access token, accepted under either of
// its historical names.
func githubToken() string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("GH_TOKEN")
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}
