// Package config holds the settings shared by the minard programs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds input, output and rendering settings.
type Config struct {
	DataDir    string `mapstructure:"data_dir"`
	OutDir     string `mapstructure:"out_dir"`
	DPI        int    `mapstructure:"dpi"`
	RouteFile  string `mapstructure:"route_file"`
	TempFile   string `mapstructure:"temp_file"`
	FigureFile string `mapstructure:"figure_file"`
	Show       bool   `mapstructure:"show"`
	Trend      bool   `mapstructure:"trend"`
}

// Load reads configuration from an optional TOML file and the environment.
// The file is $MINARD_CONFIG if set, otherwise minard.toml in the working
// directory. Env var overrides use the prefix MINARD_, e.g. MINARD_DPI.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", "ggplot2-minard-gallery")
	v.SetDefault("out_dir", ".")
	v.SetDefault("dpi", 300)
	v.SetDefault("route_file", "napoleon_march.svg")
	v.SetDefault("temp_file", "temperature_plot.svg")
	v.SetDefault("figure_file", "minard.png")
	v.SetDefault("show", true)
	v.SetDefault("trend", false)

	v.SetConfigType("toml")
	if path := os.Getenv("MINARD_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("minard")
	}

	v.SetEnvPrefix("MINARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate reports settings that cannot produce a chart.
func (c Config) Validate() error {
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if c.DataDir == "" {
		return errors.New("data directory is empty")
	}
	for name, f := range map[string]string{
		"route_file":  c.RouteFile,
		"temp_file":   c.TempFile,
		"figure_file": c.FigureFile,
	} {
		if f == "" {
			return fmt.Errorf("%s is empty", name)
		}
	}
	return nil
}

// Out returns name joined to the output directory.
func (c Config) Out(name string) string {
	return filepath.Join(c.OutDir, name)
}
