package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Storage       StorageConfig       `mapstructure:"storage"`
	Directory     DirectoryConfig     `mapstructure:"directory"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type StorageConfig struct {
	// Path of the sqlite file backing the key/value store.
	Path string `mapstructure:"path"`
}

type DirectoryConfig struct {
	// ViewerRoleID is the role every dangling user reference falls back to.
	ViewerRoleID string `mapstructure:"viewer_role_id"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// LoadConfigFromEnv builds a Config entirely from environment variables,
// used when no config file is present (container deployments).
func LoadConfigFromEnv() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: getEnv("STORAGE_PATH", "portal.db"),
		},
		Directory: DirectoryConfig{
			ViewerRoleID: getEnv("DIRECTORY_VIEWER_ROLE_ID", "viewer"),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Directory.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("directory config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *StorageConfig) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return errors.New("path is required")
	}
	return nil
}

func (c *DirectoryConfig) Validate() error {
	if strings.TrimSpace(c.ViewerRoleID) == "" {
		return errors.New("viewer_role_id is required")
	}
	return nil
}
