// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-editor/internal/types"
)

// Config represents the editor configuration. It is assembled from defaults,
// environment variables, an optional JSON file and CLI flags, in that order
// of increasing precedence.
type Config struct {
	// Storage
	StoreBackend string `json:"store_backend,omitempty" validate:"omitempty,oneof=file memory redis postgres"`
	StorePath    string `json:"store_path,omitempty"` // File backend location
	StoreURL     string `json:"store_url,omitempty"`  // Redis or PostgreSQL URL
	StoreKey     string `json:"store_key,omitempty"`  // Key the résumé is stored under

	// Enrichment
	APIKey      string  `json:"api_key,omitempty"` // Gemini API key
	ModelTier   string  `json:"model_tier,omitempty" validate:"omitempty,oneof=lite standard advanced"`
	Temperature float32 `json:"temperature,omitempty" validate:"gte=0,lte=2"`

	// Rendering
	Template    string `json:"template,omitempty"`     // Default template key
	TeXTemplate string `json:"tex_template,omitempty"` // Path to a custom LaTeX template
	ChromePath  string `json:"chrome_path,omitempty"`  // Chrome binary for PDF export

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn warning error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`
	Verbose   bool   `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		StoreBackend: "file",
		StorePath:    ".resume-editor/store.json",
		StoreKey:     "resume",
		ModelTier:    "standard",
		Temperature:  0.7,
		Template:     types.DefaultTemplateKey,
		Port:         8080,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables through getenv
// (os.Getenv in production). Unset variables leave fields empty.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		StoreBackend: getenv("RESUME_STORE"),
		StorePath:    getenv("RESUME_STORE_PATH"),
		StoreURL:     getenv("RESUME_STORE_URL"),
		StoreKey:     getenv("RESUME_STORE_KEY"),
		APIKey:       getenv("GEMINI_API_KEY"),
		ModelTier:    getenv("GEMINI_MODEL_TIER"),
		Template:     getenv("RESUME_TEMPLATE"),
		TeXTemplate:  getenv("RESUME_TEX_TEMPLATE"),
		ChromePath:   getenv("CHROME_PATH"),
		LogLevel:     getenv("LOG_LEVEL"),
		LogFormat:    getenv("LOG_FORMAT"),
	}

	// Backend-specific URLs used when no explicit store URL is set
	if cfg.StoreURL == "" {
		switch cfg.StoreBackend {
		case "redis":
			cfg.StoreURL = getenv("REDIS_URL")
		case "postgres":
			cfg.StoreURL = getenv("DATABASE_URL")
		}
	}

	if port, err := strconv.Atoi(getenv("PORT")); err == nil {
		cfg.Port = port
	}
	if temp, err := strconv.ParseFloat(getenv("GEMINI_TEMPERATURE"), 32); err == nil {
		cfg.Temperature = float32(temp)
	}
	return cfg
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
// Required values (such as the API key) are checked by the commands that need them.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("'%s' failed '%s' check (got %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if (c.StoreBackend == "redis" || c.StoreBackend == "postgres") && c.StoreURL == "" {
		return fmt.Errorf("config error: 'store_url' is required for the %s backend", c.StoreBackend)
	}

	if c.Template != "" {
		if _, ok := types.LookupTemplate(c.Template); !ok {
			return fmt.Errorf("config error: unknown template: %s", c.Template)
		}
	}

	if c.TeXTemplate != "" {
		if _, err := os.Stat(c.TeXTemplate); os.IsNotExist(err) {
			return fmt.Errorf("config error: LaTeX template file not found: %s", c.TeXTemplate)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&result.StoreBackend, defaults.StoreBackend},
		{&result.StorePath, defaults.StorePath},
		{&result.StoreURL, defaults.StoreURL},
		{&result.StoreKey, defaults.StoreKey},
		{&result.APIKey, defaults.APIKey},
		{&result.ModelTier, defaults.ModelTier},
		{&result.Template, defaults.Template},
		{&result.TeXTemplate, defaults.TeXTemplate},
		{&result.ChromePath, defaults.ChromePath},
		{&result.LogLevel, defaults.LogLevel},
		{&result.LogFormat, defaults.LogFormat},
	} {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}

	// Numeric fields: use default if zero
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Resolve layers env over the built-in defaults and, when path is set, the
// JSON file over both. The result is validated.
func Resolve(path string, getenv func(string) string) (Config, error) {
	env := FromEnv(getenv)
	cfg := env.MergeWithDefaults(Defaults())

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = file.MergeWithDefaults(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
