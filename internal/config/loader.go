package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no explicit
// config path is given.
const EnvConfigPath = "EGGHATCH_CONFIG"

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceEmbedded Source = "embedded default"
	SourceBuiltin  Source = "built-in default"
)

// Load loads the game configuration.
// Search order: customPath -> $EGGHATCH_CONFIG -> ~/.egghatch/config.yaml ->
// ./configs/egghatch.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func Load(customPath string) (Config, Source, error) {
	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}

	// An explicit path must exist and parse
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, Source(customPath), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, Source(userCfgPath), nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "egghatch.yaml")); err == nil {
		return cfg, Source("configs/egghatch.yaml"), nil
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads and validates a YAML file layered over the defaults.
func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".egghatch", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
