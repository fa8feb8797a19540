// Package config loads exporter configuration from a .env file and the
// process environment. Credentials are required; everything else has a
// default that CLI flags may override.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingCredentials is returned when the API user name or token is absent.
var ErrMissingCredentials = errors.New("missing credentials")

// Environment variable names.
const (
	EnvUserName  = "CONFLUENCE_USER_NAME"
	EnvAPIToken  = "CONFLUENCE_API_TOKEN"
	EnvURLFile   = "URL_FILE"
	EnvOutputDir = "OUTPUT_DIR"
	EnvLogLevel  = "LOG_LEVEL"
)

// Config holds the resolved exporter configuration.
type Config struct {
	// UserName is the Confluence account email used for basic auth.
	UserName string

	// APIToken is the Confluence API token used for basic auth.
	APIToken string

	// URLFile is the path of the newline-delimited page URL list.
	URLFile string

	// OutputDir is the directory the output file is written into.
	OutputDir string

	// LogLevel is the minimum log level.
	LogLevel string
}

// Load reads envFile (ignored when absent, since credentials may come from
// the process environment directly) and resolves the configuration.
// Variables already present in the environment take precedence over the file.
// It fails before any network activity when credentials are missing.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{
		UserName:  os.Getenv(EnvUserName),
		APIToken:  os.Getenv(EnvAPIToken),
		URLFile:   getEnv(EnvURLFile, "urls.txt"),
		OutputDir: getEnv(EnvOutputDir, "./outputs"),
		LogLevel:  getEnv(EnvLogLevel, "info"),
	}

	if cfg.UserName == "" || cfg.APIToken == "" {
		return nil, fmt.Errorf("%w: set %s and %s in the environment or a .env file",
			ErrMissingCredentials, EnvUserName, EnvAPIToken)
	}

	return cfg, nil
}

// getEnv returns the value of key, or defaultValue when unset or empty.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
