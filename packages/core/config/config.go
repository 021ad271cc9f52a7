package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Every field can be overridden by a flag.
type Config struct {
	Timeout         int               `yaml:"timeout,omitempty"` // milliseconds
	FollowRedirects *bool             `yaml:"followRedirects,omitempty"`
	Headers         map[string]string `yaml:"headers,omitempty"`        // default headers for all requests
	BearerTokenEnv  string            `yaml:"bearerTokenEnv,omitempty"` // env var holding a bearer token
	Output          string            `yaml:"output,omitempty"`         // console or json
	NoColor         *bool             `yaml:"noColor,omitempty"`
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetFollowRedirects returns the follow redirects setting, defaulting to true
func (c *Config) GetFollowRedirects() bool {
	return getBool(c.FollowRedirects, true)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// BearerToken resolves the configured bearer token environment variable.
func (c *Config) BearerToken() string {
	if c.BearerTokenEnv == "" {
		return ""
	}
	return os.Getenv(c.BearerTokenEnv)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".areq.yaml",
	".areq.yml",
	"areq.yaml",
}

// LoadConfig loads configuration from the specified path or searches for
// config files in the current directory.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if config.Output != "" && config.Output != "console" && config.Output != "json" {
		return nil, fmt.Errorf("invalid output %q: must be console or json", config.Output)
	}

	return config, nil
}
