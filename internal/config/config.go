package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/akarpov/tasktrack/internal/logging"
)

// Config is the process configuration. The storage path lives here and
// is handed to the store explicitly; nothing below the CLI resolves
// file locations on its own.
type Config struct {
	Storage *StorageConfig  `yaml:"storage"`
	Logging *logging.Config `yaml:"logging"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Storage: &StorageConfig{
			Path: filepath.Join(homeDir, ".tasktrack", "tasks.db"),
		},
		Logging: logging.DefaultConfig(),
	}
}

func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tasktrack", "config.yaml")
}

// Load reads the yaml file at path over the defaults. A missing file is
// not an error; the defaults stand.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Storage == nil || cfg.Storage.Path == "" {
		return nil, errors.New("config: storage.path must not be empty")
	}
	return cfg, nil
}
