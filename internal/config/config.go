// Package config handles YAML configuration for prodscan.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkarring/prodscan/internal/groups"
)

// Config is the root configuration structure.
type Config struct {
	Version   string          `yaml:"version"`
	Filter    FilterConfig    `yaml:"filter"`
	Inventory InventoryConfig `yaml:"inventory"`
}

// FilterConfig holds settings for the filter-groups command.
type FilterConfig struct {
	Input          string   `yaml:"input"`
	Output         string   `yaml:"output"`
	ExcludeMarkers []string `yaml:"exclude_markers"`
}

// InventoryConfig holds settings for the inventory command.
type InventoryConfig struct {
	Targets []string `yaml:"targets"`
	Output  string   `yaml:"output"`
	Auth    string   `yaml:"auth"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: "1",
		Filter: FilterConfig{
			Input:          "samples/user_groups.csv",
			Output:         "samples/user_groups_prod.csv",
			ExcludeMarkers: groups.DefaultMarkers,
		},
		Inventory: InventoryConfig{
			Targets: []string{"ESS-PROD-C00-001", "SLProd", "SLSharedDR", "SLSharedProd"},
			Output:  "azure_resource_analysis_target_subs.json",
			Auth:    "browser",
		},
	}
}

// Load reads and parses a YAML config file. Fields left empty in the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate ensures the config is usable.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	if len(c.Filter.ExcludeMarkers) == 0 {
		return fmt.Errorf("filter.exclude_markers must not be empty")
	}
	switch c.Inventory.Auth {
	case "browser", "default":
	default:
		return fmt.Errorf("inventory.auth must be browser or default, got %q", c.Inventory.Auth)
	}
	return nil
}
