package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder settings. File and URL are mutually exclusive; when
// both are empty the bundled word list is used.
type Config struct {
	File   string `yaml:"file"    env:"SEEDER_FILE"`
	URL    string `yaml:"url"     env:"SEEDER_URL"`
	DryRun bool   `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations naming two sources.
func (c Config) Validate() error {
	if c.File != "" && c.URL != "" {
		return fmt.Errorf("seeder config: file and url are mutually exclusive")
	}
	return nil
}
