package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkurecka/supadata-mcp/supadata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	FileName = "supadata-config.json"

	EnvAPIKey  = "SUPADATA_API_KEY"
	EnvBaseURL = "SUPADATA_BASE_URL"

	SourceEnv = "environment"
)

// Config is the resolved Supadata configuration. It is never mutated after Resolve.
type Config struct {
	APIKey  string `validate:"required"`
	BaseURL string `validate:"required,url"`
	// Source is either SourceEnv or the path of the file the values came from.
	Source string `validate:"-"`
}

var validate = validator.New()

// Resolver looks up configuration from the environment and then from a list
// of candidate JSON files.
type Resolver struct {
	Getenv func(string) string
	Paths  []string
}

// Load reads a .env file if present and resolves the configuration from the
// process environment and the default file locations. extraPath, when set, is
// checked before the defaults. A nil result means no configuration was found.
func Load(extraPath string) *Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded .env file")
	}

	paths := DefaultPaths()
	if extraPath != "" {
		paths = append([]string{extraPath}, paths...)
	}

	r := Resolver{Getenv: os.Getenv, Paths: paths}
	return r.Resolve()
}

// DefaultPaths returns the candidate config file locations in priority order:
// the working directory, then next to and one level above the executable.
func DefaultPaths() []string {
	var paths []string

	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, FileName))
	}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "..", FileName),
			filepath.Join(dir, FileName),
		)
	}

	return paths
}

// Resolve returns the first configuration found, or nil.
func (r Resolver) Resolve() *Config {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if apiKey := getenv(EnvAPIKey); apiKey != "" {
		cfg := &Config{
			APIKey:  apiKey,
			BaseURL: getEnv(getenv, EnvBaseURL, supadata.DefaultBaseURL),
			Source:  SourceEnv,
		}
		if err := validate.Struct(cfg); err != nil {
			log.Warn().Err(err).Msg("Ignoring invalid Supadata configuration from environment variables")
		} else {
			log.Info().Msg("Loaded Supadata configuration from environment variables")
			return cfg
		}
	}

	for _, path := range r.Paths {
		if !fileExists(path) {
			continue
		}

		cfg, err := ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to load Supadata config file")
			continue
		}

		log.Info().Str("path", path).Msg("Loaded Supadata configuration from file")
		return cfg
	}

	log.Warn().Msgf("No Supadata configuration found. Set the %s environment variable or create %s.", EnvAPIKey, FileName)
	return nil
}

// ReadFile parses a JSON config file of the form {"apiKey": "...", "baseUrl": "..."}.
func ReadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{
		APIKey:  v.GetString("apiKey"),
		BaseURL: v.GetString("baseUrl"),
		Source:  path,
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key is required in configuration")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = supadata.DefaultBaseURL
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func getEnv(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}
