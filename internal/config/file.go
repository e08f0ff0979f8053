package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config lists the files to compare and how to read them.
type Config struct {
	Old        string   `yaml:"old"`
	New        []string `yaml:"new"`
	Encoding   string   `yaml:"encoding"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
}

// ErrNoOldFile is returned by Validate when no old file is configured.
var ErrNoOldFile = errors.New("no old file configured")

// Load reads a YAML config file. Environment references in paths are
// expanded and relative paths resolve against the config file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	cfg.Old = resolve(base, cfg.Old)
	newPaths := make([]string, 0, len(cfg.New))
	for _, p := range cfg.New {
		if p = resolve(base, p); p != "" {
			newPaths = append(newPaths, p)
		}
	}
	cfg.New = newPaths
	return cfg, nil
}

func resolve(base, p string) string {
	p = strings.TrimSpace(os.ExpandEnv(p))
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// WithArgs returns a copy of cfg where positional arguments, when present,
// replace the configured files: args[0] is the old file, the rest are new.
func (c Config) WithArgs(args []string) Config {
	if len(args) == 0 {
		return c
	}
	c.Old = args[0]
	c.New = append([]string(nil), args[1:]...)
	return c
}

// Validate checks the fields needed for a run.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Old) == "" {
		return ErrNoOldFile
	}
	return nil
}
