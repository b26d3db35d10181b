package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

var cfgFile = "isolation/config.yaml"

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("invalid embedded config: %v", err))
	}
	return cfg
}

// Load reads configuration layered over the defaults.
// Search order: customPath -> $XDG_CONFIG_HOME/isolation/config.yaml (and XDG_CONFIG_DIRS) -> embedded default
func Load(customPath string) (Config, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		if found, err := xdg.SearchConfigFile(cfgFile); err == nil {
			path = found
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := Parse(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg. Keys missing from data keep their current value.
func Parse(data []byte, cfg *Config) error {
	return yaml.Unmarshal(data, cfg)
}
