package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is tried when CONFIG_PATH is unset; a missing file there is not
// an error.
const defaultPath = "./config.yaml"

// Load reads configuration from the YAML file named by CONFIG_PATH (or
// ./config.yaml when it exists) and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFrom(path)
	}

	if _, err := os.Stat(defaultPath); err == nil {
		return LoadFrom(defaultPath)
	}
	return LoadFrom("")
}

// LoadFrom reads configuration from path and environment variables. An empty
// path loads from ENV + defaults only; a non-empty path must exist.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	switch {
	case path == "":
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
