package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"menusurface/internal/surface"
)

// Config represents the application configuration
type Config struct {
	Version    int           `toml:"version"`
	Surface    SurfaceConfig `toml:"surface"`
	UISettings UISettings    `toml:"ui"`
}

// SurfaceConfig holds the menu surface defaults applied on startup
type SurfaceConfig struct {
	QuickOpen    bool    `toml:"quick_open"`
	AnchorCorner string  `toml:"anchor_corner"`
	MarginTop    float64 `toml:"margin_top"`
	MarginRight  float64 `toml:"margin_right"`
	MarginBottom float64 `toml:"margin_bottom"`
	MarginLeft   float64 `toml:"margin_left"`
	RTL          bool    `toml:"rtl"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowStatusBar  bool `toml:"show_status_bar"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// Corner parses the configured anchor corner.
func (sc SurfaceConfig) Corner() (surface.Corner, error) {
	return surface.ParseCorner(sc.AnchorCorner)
}

// Margin returns the configured anchor margins.
func (sc SurfaceConfig) Margin() surface.Margin {
	return surface.Margin{
		Top:    sc.MarginTop,
		Right:  sc.MarginRight,
		Bottom: sc.MarginBottom,
		Left:   sc.MarginLeft,
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "menusurface")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// Load loads the configuration from the default location
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.Surface.Corner(); err != nil {
		return nil, fmt.Errorf("invalid anchor_corner: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Surface: SurfaceConfig{
			QuickOpen:    false,
			AnchorCorner: surface.CornerTopStart.String(),
		},
		UISettings: UISettings{
			ShowStatusBar:  true,
			AutosaveOnExit: true,
		},
	}
}
