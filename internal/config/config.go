// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Filename string `yaml:"filename"`
}

type GeminiConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"-"` // Loaded from environment
}

type ThemesConfig struct {
	// DuplicatePolicy selects how save conflicts on theme names resolve:
	// "reject" surfaces a conflict error, "rename" auto-suffixes " (2)",
	// " (3)", ... until the insert succeeds. The two behaviors must never be
	// mixed silently.
	DuplicatePolicy string `yaml:"duplicate_policy"`
}

type LogConfig struct {
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

type Config struct {
	App struct {
		Name            string `yaml:"name"`
		Environment     string `yaml:"environment"`
		Port            int    `yaml:"port"`
		ShutdownTimeout int    `yaml:"shutdown_timeout_seconds"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Themes   ThemesConfig   `yaml:"themes"`
	Log      LogConfig      `yaml:"log"`
}

const (
	DuplicatePolicyReject = "reject"
	DuplicatePolicyRename = "rename"
)

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")

	if cfg.Themes.DuplicatePolicy == "" {
		cfg.Themes.DuplicatePolicy = DuplicatePolicyReject
	}
	if cfg.App.ShutdownTimeout == 0 {
		cfg.App.ShutdownTimeout = 30
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename is required")
	}
	switch c.Themes.DuplicatePolicy {
	case DuplicatePolicyReject, DuplicatePolicyRename:
	default:
		return fmt.Errorf("unsupported duplicate policy: %s", c.Themes.DuplicatePolicy)
	}
	return nil
}
