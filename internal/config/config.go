package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/artspace/artspace/internal/gallery"
)

// Config represents the artspace configuration
type Config struct {
	Catalog    []gallery.Artwork `yaml:"catalog,omitempty"`
	StartIndex int               `yaml:"start_index,omitempty"`
	LogFile    string            `yaml:"log_file,omitempty"`
}

// GetConfigDir returns the artspace config directory path
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// GetConfigPath returns the config file path, honoring ARTSPACE_CONFIG
func GetConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// Load reads the configuration file. A missing file yields an error
// satisfying errors.Is(err, fs.ErrNotExist).
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the configuration file, falling back to an empty
// configuration when none exists
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Save writes the configuration file
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// BuildCatalog returns the configured catalog, or the bundled one when the
// configuration lists no artworks
func (c *Config) BuildCatalog() (gallery.Catalog, error) {
	if len(c.Catalog) == 0 {
		return gallery.DefaultCatalog(), nil
	}

	for i, a := range c.Catalog {
		if a.Title == "" {
			return gallery.Catalog{}, fmt.Errorf("catalog entry %d: missing title", i)
		}
	}

	return gallery.NewCatalog(c.Catalog...)
}

// DebugLogFile returns the file debug logs should go to, or "" when logging is off
func (c *Config) DebugLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	if os.Getenv(EnvDebug) != "" {
		return DefaultLogFile
	}
	return ""
}
