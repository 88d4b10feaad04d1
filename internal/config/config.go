// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvServerURL = "RESUME_SERVER_URL"
	EnvUsername  = "RESUME_USERNAME"
	EnvPassword  = "RESUME_PASSWORD"
	EnvFormat    = "RESUME_FORMAT"
	EnvTimeout   = "RESUME_TIMEOUT_SECONDS"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional in the file; ServerURL must be set once all sources are merged.
type Config struct {
	ServerURL      string `json:"server_url,omitempty" validate:"required,url"`          // Resume endpoint
	Username       string `json:"username,omitempty"`                                    // Basic auth user
	Password       string `json:"password,omitempty"`                                    // Basic auth password
	Format         string `json:"format,omitempty" validate:"omitempty,oneof=text json"` // Output format
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0,lte=600"`    // HTTP timeout, 0 for default
	Verbose        bool   `json:"verbose,omitempty"`                                     // Debug logging
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

// FromEnv builds a Config from the process environment.
func FromEnv() (*Config, error) {
	return fromLookup(os.Getenv)
}

// FromEnvFile builds a Config from a dotenv file without touching the process environment.
func FromEnvFile(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return fromLookup(func(key string) string { return values[key] })
}

func fromLookup(get func(string) string) (*Config, error) {
	cfg := &Config{
		ServerURL: get(EnvServerURL),
		Username:  get(EnvUsername),
		Password:  get(EnvPassword),
		Format:    get(EnvFormat),
	}
	if raw := get(EnvTimeout); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config error: %s must be an integer: %w", EnvTimeout, err)
		}
		cfg.TimeoutSeconds = secs
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("config error: '%s' is required", fe.Field())
	case "url":
		return fmt.Errorf("config error: '%s' must be an absolute URL, got %q", fe.Field(), fe.Value())
	case "oneof":
		return fmt.Errorf("config error: '%s' must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Errorf("config error: '%s' failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Sources are layered by calling it from the highest precedence source down.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ServerURL == "" {
		result.ServerURL = defaults.ServerURL
	}
	if result.Username == "" {
		result.Username = defaults.Username
	}
	if result.Password == "" {
		result.Password = defaults.Password
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	// Int fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: a true anywhere wins
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
