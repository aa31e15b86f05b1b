package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChomp loads the game configuration.
// Search order: customPath -> ~/.chomp/config.yaml -> ./configs/chomp.yaml
// -> embedded default. The result is always validated; an invalid config is
// an error, never a silent fallback.
func LoadChomp(customPath string) (ChompConfig, error) {
	var cfg ChompConfig

	// An explicitly requested path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory.
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			if err := cfg.Validate(); err != nil {
				return cfg, fmt.Errorf("invalid config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	// Local configs directory.
	if data, err := os.ReadFile(filepath.Join("configs", "chomp.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse configs/chomp.yaml: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid configs/chomp.yaml: %w", err)
		}
		return cfg, nil
	}

	// Embedded default.
	if err := yaml.Unmarshal(defaultChompYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded default config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid embedded default config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chomp", filename)
}
