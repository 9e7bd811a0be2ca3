package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Source   SourceConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// SourceConfig selects where new records come from.
type SourceConfig struct {
	Kind     string // "catalog" or "pool"
	PoolPath string `mapstructure:"pool_path"` // TOML pool file, used when Kind is "pool"
	Shuffle  bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	HeatGlyph string `mapstructure:"heat_glyph"`
	ShowChart bool   `mapstructure:"show_chart"`
}

// Load reads configuration from file and env. Env var overrides use prefix SPICYLIST_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "spicylist", "spicylist.db"))
	v.SetDefault("source.kind", "catalog")
	v.SetDefault("source.pool_path", "")
	v.SetDefault("source.shuffle", false)
	v.SetDefault("ui.heat_glyph", "🌶")
	v.SetDefault("ui.show_chart", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPICYLIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "spicylist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPICYLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Source.Kind != "catalog" && c.Source.Kind != "pool" {
		return Config{}, fmt.Errorf("source.kind %q: want catalog or pool", c.Source.Kind)
	}
	if c.Source.Kind == "pool" && c.Source.PoolPath == "" {
		return Config{}, fmt.Errorf("source.kind pool requires source.pool_path")
	}
	return c, nil
}
