package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AuthConfig carries the portal credentials used when the log is fetched
// over HTTP. Cookie and bearer token are both optional.
type AuthConfig struct {
	CookieName  string `yaml:"cookie_name"`
	CookieValue string `yaml:"cookie_value"`
	BearerToken string `yaml:"bearer_token"`
}

type UIConfig struct {
	SidebarWidth int `yaml:"sidebar_width"`
}

type ChartConfig struct {
	MaxPoints       int `yaml:"max_points"`
	MaxPointsZoomed int `yaml:"max_points_zoomed"`
}

type Config struct {
	Auth  AuthConfig  `yaml:"auth"`
	UI    UIConfig    `yaml:"ui"`
	Chart ChartConfig `yaml:"chart"`
}

// DefaultConfig returns the built-in settings used when no config file is
// given.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{SidebarWidth: sidebarDefaultWidth},
		Chart: ChartConfig{
			MaxPoints:       maxPointsWide,
			MaxPointsZoomed: maxPointsZoomed,
		},
	}
}

// LoadConfig reads and parses an optional YAML config file. Unset fields
// fall back to the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.UI.SidebarWidth == 0 {
		cfg.UI.SidebarWidth = sidebarDefaultWidth
	}
	if cfg.Chart.MaxPoints == 0 {
		cfg.Chart.MaxPoints = maxPointsWide
	}
	if cfg.Chart.MaxPointsZoomed == 0 {
		cfg.Chart.MaxPointsZoomed = maxPointsZoomed
	}
	cfg.UI.SidebarWidth = clamp(cfg.UI.SidebarWidth, sidebarMinWidth, sidebarMaxWidth)
	return cfg, nil
}
