// ABOUTME: Configuration loading and validation for chatwoot-mcp
// ABOUTME: Environment-first via envdecode, with an optional YAML base layer

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Config represents the complete chatwoot-mcp configuration.
type Config struct {
	Chatwoot ChatwootConfig `yaml:"chatwoot"`
	Platform PlatformConfig `yaml:"platform"`
	Buckets  BucketConfig   `yaml:"buckets"`
	Server   ServerConfig   `yaml:"server"`
}

// ChatwootConfig holds the primary (account-scoped) API credentials.
type ChatwootConfig struct {
	BaseURL   string `yaml:"base_url" env:"CHATWOOT_BASE_URL"`
	AccountID int    `yaml:"account_id" env:"CHATWOOT_ACCOUNT_ID"`
	APIToken  string `yaml:"api_token" env:"CHATWOOT_API_TOKEN"`
}

// PlatformConfig holds the elevated platform API credential.
type PlatformConfig struct {
	APIToken string `yaml:"api_token" env:"CHATWOOT_PLATFORM_API_TOKEN"`
}

// BucketConfig holds per-bucket enable flags and the two safe-mode gates.
type BucketConfig struct {
	PublicAPI   bool `yaml:"public_api" env:"MCP_ENABLE_PUBLIC_API"`
	PlatformAPI bool `yaml:"platform_api" env:"MCP_ENABLE_PLATFORM_API"`
	Enterprise  bool `yaml:"enterprise" env:"MCP_ENABLE_ENTERPRISE"`
	HelpCenter  bool `yaml:"help_center" env:"MCP_ENABLE_HELP_CENTER"`

	// SafeMode gates destructive account-scoped tools. Off unless enabled.
	SafeMode bool `yaml:"safe_mode" env:"MCP_SAFE_MODE"`

	// PlatformSafeMode gates all platform write tools. On unless the
	// operator sets MCP_PLATFORM_SAFE_MODE=false. The polarity difference
	// with SafeMode is intentional; see the package documentation.
	PlatformSafeMode bool `yaml:"platform_safe_mode"`
}

// ServerConfig holds transport-mode and HTTP listener configuration.
type ServerConfig struct {
	Mode      string `yaml:"mode" env:"MCP_MODE"`
	Port      int    `yaml:"port" env:"PORT"`
	AuthToken string `yaml:"auth_token" env:"AUTH_TOKEN"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
}

// Load builds a Config from the optional MCP_CONFIG_FILE YAML layer plus the
// environment, applies defaults, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.Buckets.PlatformSafeMode = true

	if path := os.Getenv("MCP_CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decoding environment: %w", err)
	}

	cfg.Buckets.PlatformSafeMode = platformSafeModeFromEnv(cfg.Buckets.PlatformSafeMode)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// platformSafeModeFromEnv reads MCP_PLATFORM_SAFE_MODE directly rather than
// through an envdecode tag: the gate must stay closed for every value except
// the literal string "false", while envdecode's bool parsing would also
// accept "0", "f", and "FALSE" as open. Unset leaves the current value.
func platformSafeModeFromEnv(current bool) bool {
	v, ok := os.LookupEnv("MCP_PLATFORM_SAFE_MODE")
	if !ok {
		return current
	}
	return v != "false"
}

// loadFile reads a YAML config file into cfg. Environment variables in the
// format ${VAR_NAME} are expanded before parsing.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables expand to an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

func (c *Config) applyDefaults() {
	c.Chatwoot.BaseURL = strings.TrimRight(c.Chatwoot.BaseURL, "/")

	if c.Server.Mode == "" {
		c.Server.Mode = "stdio"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.LogFormat == "" {
		c.Server.LogFormat = "text"
	}
}

// Validate checks that all required configuration fields are present and
// valid. Returns an error describing the first validation failure.
func (c *Config) Validate() error {
	if c.Chatwoot.BaseURL == "" {
		return fmt.Errorf("CHATWOOT_BASE_URL is required")
	}
	if c.Chatwoot.APIToken == "" {
		return fmt.Errorf("CHATWOOT_API_TOKEN is required")
	}
	if c.Server.Mode != "stdio" && c.Server.Mode != "http" {
		return fmt.Errorf("MCP_MODE must be \"stdio\" or \"http\", got %q", c.Server.Mode)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}
