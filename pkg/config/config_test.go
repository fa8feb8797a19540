package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets the exporter variables for the duration of the test.
// t.Setenv registers the restore, os.Unsetenv removes the value.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvUserName, EnvAPIToken, EnvURLFile, EnvOutputDir, EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUserName, "dev@example.com")
	t.Setenv(EnvAPIToken, "token-123")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UserName != "dev@example.com" {
		t.Errorf("UserName = %q, want %q", cfg.UserName, "dev@example.com")
	}
	if cfg.APIToken != "token-123" {
		t.Errorf("APIToken = %q, want %q", cfg.APIToken, "token-123")
	}
	if cfg.URLFile != "urls.txt" {
		t.Errorf("URLFile = %q, want default %q", cfg.URLFile, "urls.txt")
	}
	if cfg.OutputDir != "./outputs" {
		t.Errorf("OutputDir = %q, want default %q", cfg.OutputDir, "./outputs")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "info")
	}
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "CONFLUENCE_USER_NAME=file@example.com\n" +
		"CONFLUENCE_API_TOKEN=file-token\n" +
		"URL_FILE=pages.txt\n" +
		"OUTPUT_DIR=/tmp/out\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UserName != "file@example.com" {
		t.Errorf("UserName = %q, want %q", cfg.UserName, "file@example.com")
	}
	if cfg.APIToken != "file-token" {
		t.Errorf("APIToken = %q, want %q", cfg.APIToken, "file-token")
	}
	if cfg.URLFile != "pages.txt" {
		t.Errorf("URLFile = %q, want %q", cfg.URLFile, "pages.txt")
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/out")
	}
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUserName, "env@example.com")
	t.Setenv(EnvAPIToken, "env-token")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "CONFLUENCE_USER_NAME=file@example.com\nCONFLUENCE_API_TOKEN=file-token\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.UserName != "env@example.com" {
		t.Errorf("UserName = %q, want environment value", cfg.UserName)
	}
	if cfg.APIToken != "env-token" {
		t.Errorf("APIToken = %q, want environment value", cfg.APIToken)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		apiToken string
	}{
		{name: "both missing", userName: "", apiToken: ""},
		{name: "token missing", userName: "dev@example.com", apiToken: ""},
		{name: "user missing", userName: "", apiToken: "token-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.userName != "" {
				t.Setenv(EnvUserName, tt.userName)
			}
			if tt.apiToken != "" {
				t.Setenv(EnvAPIToken, tt.apiToken)
			}

			_, err := Load("")
			if !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("Load() error = %v, want ErrMissingCredentials", err)
			}
		})
	}
}

func TestLoad_MissingEnvFileIsNotFatal(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUserName, "dev@example.com")
	t.Setenv(EnvAPIToken, "token-123")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil when credentials come from the environment", err)
	}
	if cfg.UserName != "dev@example.com" {
		t.Errorf("UserName = %q, want %q", cfg.UserName, "dev@example.com")
	}
}
