package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"github.com/travelhub/travel-client/internal/client"
)

// Config for travelctl. Values come from the environment, optionally seeded from a .env file.
type Config struct {
	Environment string `env:"ENVIRONMENT,default=dev"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	// ServerURL is the backend origin; the two API roots are mounted under it
	ServerURL     string `env:"TRAVEL_SERVER_URL,default=http://localhost:8080"`
	AdminBasePath string `env:"TRAVEL_ADMIN_BASE_PATH,default=/api/admin/v1"`
	UserBasePath  string `env:"TRAVEL_USER_BASE_PATH,default=/api/v1"`
	AssetURL      string `env:"TRAVEL_ASSET_URL"`

	RequestTimeout       time.Duration `env:"TRAVEL_REQUEST_TIMEOUT,default=10s"`
	RequestsPerSecond    float64       `env:"TRAVEL_REQUESTS_PER_SECOND,default=0"`
	Burst                int           `env:"TRAVEL_BURST,default=1"`
	SessionExpiredPolicy string        `env:"TRAVEL_SESSION_EXPIRED_POLICY,default=reject"`
	Language             string        `env:"TRAVEL_LANGUAGE,default=en"`

	// UpgradeInsecureAssets applies to the portal surface only, matching the mini-program
	UpgradeInsecureAssets bool `env:"TRAVEL_UPGRADE_INSECURE_ASSETS,default=true"`

	// SessionDir holds one session file per surface
	SessionDir string `env:"TRAVEL_SESSION_DIR"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"staging": true,
	"prod":    true,
}

// NewConfig loads dotenvFile (when it exists) and then the environment.
// Variables already set in the environment win over the file.
func NewConfig(dotenvFile string) (*Config, error) {
	if dotenvFile != "" {
		if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotenvFile, err)
		}
	}

	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if cfg.SessionDir == "" {
		dir, err := defaultSessionDir()
		if err != nil {
			return nil, err
		}
		cfg.SessionDir = dir
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", cfg.Environment)
	}

	u, err := url.Parse(cfg.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("TRAVEL_SERVER_URL must be an absolute URL, got %q", cfg.ServerURL)
	}

	if cfg.AssetURL != "" {
		u, err := url.Parse(cfg.AssetURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("TRAVEL_ASSET_URL must be an absolute URL, got %q", cfg.AssetURL)
		}
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", cfg.RequestTimeout)
	}

	if cfg.RequestsPerSecond < 0 {
		return fmt.Errorf("requests per second cannot be negative, got %v", cfg.RequestsPerSecond)
	}

	if _, ok := client.ParseSessionExpiredPolicy(cfg.SessionExpiredPolicy); !ok {
		return fmt.Errorf("invalid session expired policy '%s'. Valid policies: reject, resolve", cfg.SessionExpiredPolicy)
	}

	return nil
}

// AdminBaseURL is the admin API root, e.g. http://localhost:8080/api/admin/v1
func (c *Config) AdminBaseURL() string {
	return joinURL(c.ServerURL, c.AdminBasePath)
}

// UserBaseURL is the end-user API root, e.g. http://localhost:8080/api/v1
func (c *Config) UserBaseURL() string {
	return joinURL(c.ServerURL, c.UserBasePath)
}

// AssetBaseURL is where relative image paths are resolved, the server origin unless TRAVEL_ASSET_URL is set
func (c *Config) AssetBaseURL() string {
	if c.AssetURL != "" {
		return strings.TrimRight(c.AssetURL, "/")
	}
	return strings.TrimRight(c.ServerURL, "/")
}

// SessionFile returns the session file for a surface ("admin" or "portal")
func (c *Config) SessionFile(surface string) string {
	return filepath.Join(c.SessionDir, surface+"-session.json")
}

// Policy returns the parsed session expired policy. The value was validated by NewConfig.
func (c *Config) Policy() client.SessionExpiredPolicy {
	p, _ := client.ParseSessionExpiredPolicy(c.SessionExpiredPolicy)
	return p
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func defaultSessionDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine session directory, set TRAVEL_SESSION_DIR: %w", err)
	}
	return filepath.Join(dir, "travelctl"), nil
}
