package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for assat.
type FileConfig struct {
	Extensions      []string `yaml:"extensions,omitempty"`
	Include         *string  `yaml:"include,omitempty"`
	Exclude         *string  `yaml:"exclude,omitempty"`
	MaxBytes        *int64   `yaml:"max_bytes,omitempty"`
	DefaultExcludes *bool    `yaml:"default_excludes,omitempty"`
	NoColor         *bool    `yaml:"no_color,omitempty"`
	Format          *string  `yaml:"format,omitempty"`
	Highlight       *bool    `yaml:"highlight,omitempty"`
	// Rules points at a YAML rule set used by --srules.
	Rules    *string `yaml:"rules,omitempty"`
	LogLevel *string `yaml:"log_level,omitempty"`
}

// LocalNames are the file names searched, in order, at the scan root.
var LocalNames = []string{".assat.yml", ".assat.yaml", "assat.yml", "assat.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the scan root.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// GlobalPath returns $XDG_CONFIG_HOME/assat/config.yml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func GlobalPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "", errors.New("no config dir")
	}
	return filepath.Join(base, "assat", "config.yml"), nil
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p, err := GlobalPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Marshal renders fc as YAML, omitting unset keys.
func (fc FileConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(&fc)
}
