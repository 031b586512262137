package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Download DownloadConfig `toml:"download" yaml:"download"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
}

type LoggingConfig struct {
	Level      string   `toml:"level" yaml:"level"`             // "debug", "info", "warn", "error"
	Output     []string `toml:"output" yaml:"output"`           // "stdout", "file"
	File       string   `toml:"file" yaml:"file"`               // Log file path when "file" output is enabled
	TimeFormat string   `toml:"time_format" yaml:"time_format"` // Time format for logs (default: "15:04:05")
}

// DownloadConfig controls how remote images are retrieved
type DownloadConfig struct {
	Timeout      string  `toml:"timeout" yaml:"timeout" validate:"required"`            // e.g., "30s" - per-request timeout
	UserAgent    string  `toml:"user_agent" yaml:"user_agent"`                          // User-Agent header sent with each request
	MaxImageSize int64   `toml:"max_image_size" yaml:"max_image_size" validate:"gte=0"` // Bytes, 0 = unlimited
	RateLimit    float64 `toml:"rate_limit" yaml:"rate_limit" validate:"gte=0"`         // Requests per second, 0 = unlimited
}

// OutputConfig controls where localized artifacts are written
type OutputConfig struct {
	AssetsDir string `toml:"assets_dir" yaml:"assets_dir" validate:"required"` // Directory beside the document holding downloaded images
	Suffix    string `toml:"suffix" yaml:"suffix" validate:"required"`         // Appended to the input stem for the output file; never empty so the input is not overwritten
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			File:       "mdlocal.log",
			TimeFormat: "15:04:05",
		},
		Download: DownloadConfig{
			Timeout:      "30s",
			UserAgent:    "mdlocal/1.0 (+https://github.com/ternarybob/mdlocal)",
			MaxImageSize: 10 * 1024 * 1024, // 10MB
			RateLimit:    0,
		},
		Output: OutputConfig{
			AssetsDir: "assets",
			Suffix:    "_local",
		},
	}
}

// LoadFromFiles loads configuration with priority: defaults -> file1 -> file2 -> ... -> env.
// Files ending in .yaml or .yml are decoded as YAML, everything else as TOML.
// The result is not validated; call Validate after applying flag overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal into config (merges with existing values, later values override)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, config)
		default:
			err = toml.Unmarshal(data, config)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if level := os.Getenv("MDLOCAL_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if timeout := os.Getenv("MDLOCAL_DOWNLOAD_TIMEOUT"); timeout != "" {
		config.Download.Timeout = timeout
	}
	if userAgent := os.Getenv("MDLOCAL_USER_AGENT"); userAgent != "" {
		config.Download.UserAgent = userAgent
	}
	if limit := os.Getenv("MDLOCAL_RATE_LIMIT"); limit != "" {
		if rps, err := strconv.ParseFloat(limit, 64); err == nil {
			config.Download.RateLimit = rps
		}
	}
	if assetsDir := os.Getenv("MDLOCAL_ASSETS_DIR"); assetsDir != "" {
		config.Output.AssetsDir = assetsDir
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, logLevel string, assetsDir string) {
	if logLevel != "" {
		config.Logging.Level = logLevel
	}
	if assetsDir != "" {
		config.Output.AssetsDir = assetsDir
	}
}

// Validate checks the struct tags using go-playground/validator, then the
// values tags cannot express
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.Download.TimeoutDuration(); err != nil {
		return err
	}
	if filepath.IsAbs(c.Output.AssetsDir) {
		return fmt.Errorf("output.assets_dir must be a relative directory name, got %q", c.Output.AssetsDir)
	}
	return nil
}

// TimeoutDuration parses the configured per-request timeout
func (d DownloadConfig) TimeoutDuration() (time.Duration, error) {
	timeout, err := time.ParseDuration(d.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid download.timeout %q: %w", d.Timeout, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("download.timeout must be positive, got %s", timeout)
	}
	return timeout, nil
}
