package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.relhell/configs/relhell.{yaml,toml} ->
// ./configs/relhell.yaml -> embedded default -> DefaultConfig.
// Values missing from a file keep their defaults.
func Load(customPath string) (RelHellConfig, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	for _, name := range []string{"relhell.yaml", "relhell.toml"} {
		if p := userConfigPath(name); p != "" {
			if c, ok := tryFile(p); ok {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", "relhell.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRelHellYAML, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// tryFile loads an optional config file; unreadable or invalid files are skipped.
func tryFile(path string) (RelHellConfig, bool) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// decode picks the format from the file extension; YAML is the default.
func decode(path string, data []byte, cfg *RelHellConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".relhell", "configs", filename)
}
