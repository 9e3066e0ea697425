package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load is LoadFrom with the path taken from CONFIG_PATH.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom builds the configuration from a YAML file overlaid with
// environment variables (ENV > YAML > env-default tags) and validates it.
//
// A non-empty path must exist. Otherwise the first existing file among
// ./config.yaml and <user config dir>/deck/config.yaml is used, and with
// neither present the configuration comes from the environment alone.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	file, err := resolveFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if file != "" {
		if err := cleanenv.ReadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// resolveFile returns the YAML file to read, or "" for environment-only.
func resolveFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	candidates := []string{"config.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "deck", "config.yaml"))
	}

	for _, c := range candidates {
		_, err := os.Stat(c)
		switch {
		case err == nil:
			return c, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("file %s: %w", c, err)
		}
	}
	return "", nil
}
