package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Inputs InputsConfig `mapstructure:"inputs"`
	Output OutputConfig `mapstructure:"output"`
	Map    MapConfig    `mapstructure:"map"`
	Log    LogConfig    `mapstructure:"log"`
}

type InputsConfig struct {
	Partners     string `mapstructure:"partners"`
	Boundary     string `mapstructure:"boundary"`
	BoundaryEPSG int    `mapstructure:"boundary_epsg"`
}

type OutputConfig struct {
	Path  string `mapstructure:"path"`
	Title string `mapstructure:"title"`
}

type MapConfig struct {
	TileURL         string  `mapstructure:"tile_url"`
	TileAttribution string  `mapstructure:"tile_attribution"`
	MaskColor       string  `mapstructure:"mask_color"`
	MaskOpacity     float64 `mapstructure:"mask_opacity"`
	OutlineColor    string  `mapstructure:"outline_color"`
	OutlineWeight   float64 `mapstructure:"outline_weight"`
	BufferMargin    float64 `mapstructure:"buffer_margin"`
	BoundsPad       float64 `mapstructure:"bounds_pad"`
	MinZoom         int     `mapstructure:"min_zoom"`
	MaxZoom         int     `mapstructure:"max_zoom"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("inputs.partners", "data/partners.csv")
	v.SetDefault("inputs.boundary", "data/boundary.geojson")
	v.SetDefault("inputs.boundary_epsg", 4326)
	v.SetDefault("output.path", "partner-map.html")
	v.SetDefault("output.title", "Partner Map")
	v.SetDefault("map.tile_url", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("map.tile_attribution", "&copy; OpenStreetMap contributors")
	v.SetDefault("map.mask_color", "#444444")
	v.SetDefault("map.mask_opacity", 0.45)
	v.SetDefault("map.outline_color", "#333333")
	v.SetDefault("map.outline_weight", 1.5)
	v.SetDefault("map.buffer_margin", 8.0)
	v.SetDefault("map.bounds_pad", 1.0)
	v.SetDefault("map.min_zoom", 6)
	v.SetDefault("map.max_zoom", 18)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: PARTNERMAP_INPUTS_PARTNERS → inputs.partners
	v.SetEnvPrefix("PARTNERMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Inputs.Partners == "" {
		errs = append(errs, "inputs.partners is required")
	}
	if c.Inputs.Boundary == "" {
		errs = append(errs, "inputs.boundary is required")
	}
	if c.Inputs.BoundaryEPSG <= 0 {
		errs = append(errs, fmt.Sprintf("inputs.boundary_epsg must be a positive EPSG code, got %d", c.Inputs.BoundaryEPSG))
	}
	if c.Output.Path == "" {
		errs = append(errs, "output.path is required")
	}
	if c.Map.TileURL == "" {
		errs = append(errs, "map.tile_url is required")
	}
	if c.Map.MaskOpacity < 0 || c.Map.MaskOpacity > 1 {
		errs = append(errs, fmt.Sprintf("map.mask_opacity must be 0-1, got %g", c.Map.MaskOpacity))
	}
	if c.Map.BufferMargin <= 0 {
		errs = append(errs, "map.buffer_margin must be positive")
	}
	if c.Map.BoundsPad < 0 {
		errs = append(errs, "map.bounds_pad must not be negative")
	}
	if c.Map.MinZoom < 0 || c.Map.MaxZoom < c.Map.MinZoom {
		errs = append(errs, fmt.Sprintf("zoom range %d-%d is not valid", c.Map.MinZoom, c.Map.MaxZoom))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
