package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/travelhub/travel-client/internal/client"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("TRAVEL_SESSION_DIR", t.TempDir())

	cfg, err := NewConfig("")
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if got := cfg.AdminBaseURL(); got != "http://localhost:8080/api/admin/v1" {
		t.Errorf("AdminBaseURL() = %q", got)
	}
	if got := cfg.UserBaseURL(); got != "http://localhost:8080/api/v1" {
		t.Errorf("UserBaseURL() = %q", got)
	}
	if got := cfg.AssetBaseURL(); got != "http://localhost:8080" {
		t.Errorf("AssetBaseURL() = %q", got)
	}
	if cfg.Policy() != client.PolicyReject {
		t.Errorf("Policy() = %v, want reject", cfg.Policy())
	}
}

func TestNewConfigFromDotenv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRAVEL_SESSION_DIR", dir)

	// registered so t.Setenv restores them after the file loader sets them
	t.Setenv("TRAVEL_SERVER_URL", "")
	t.Setenv("TRAVEL_SESSION_EXPIRED_POLICY", "")
	os.Unsetenv("TRAVEL_SERVER_URL")
	os.Unsetenv("TRAVEL_SESSION_EXPIRED_POLICY")

	dotenv := filepath.Join(dir, ".env")
	content := "TRAVEL_SERVER_URL=https://travel.example.com/\nTRAVEL_SESSION_EXPIRED_POLICY=resolve\n"
	if err := os.WriteFile(dotenv, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfig(dotenv)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	if got := cfg.UserBaseURL(); got != "https://travel.example.com/api/v1" {
		t.Errorf("UserBaseURL() = %q", got)
	}
	if cfg.Policy() != client.PolicyResolveEmpty {
		t.Errorf("Policy() = %v, want resolve", cfg.Policy())
	}
	if got := cfg.SessionFile("admin"); got != filepath.Join(dir, "admin-session.json") {
		t.Errorf("SessionFile() = %q", got)
	}
}

func TestMissingDotenvIsIgnored(t *testing.T) {
	t.Setenv("TRAVEL_SESSION_DIR", t.TempDir())
	if _, err := NewConfig(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("NewConfig() error = %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:          "dev",
			ServerURL:            "http://localhost:8080",
			RequestTimeout:       time.Second,
			SessionExpiredPolicy: "reject",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad environment", mutate: func(c *Config) { c.Environment = "qa" }, wantErr: true},
		{name: "relative server url", mutate: func(c *Config) { c.ServerURL = "/api" }, wantErr: true},
		{name: "bad asset url", mutate: func(c *Config) { c.AssetURL = "cdn" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: true},
		{name: "negative rate", mutate: func(c *Config) { c.RequestsPerSecond = -1 }, wantErr: true},
		{name: "unknown policy", mutate: func(c *Config) { c.SessionExpiredPolicy = "ignore" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
