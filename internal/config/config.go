// Package config provides configuration management for sysdoc using Viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/internal/paths"
)

// SettingsName is the base name of the settings file (sysdoc.yaml).
const SettingsName = "sysdoc"

// EnvPrefix prefixes every environment variable read by sysdoc.
const EnvPrefix = "SYSDOC"

// Setting keys shared by viper, flags and the environment.
const (
	KeySystem     = "system"
	KeyCategories = "categories"
	KeyLogLevel   = "log_level"
	KeyParallel   = "parallel"
)

// DefaultCategories are the categories checked when none are selected.
var DefaultCategories = []string{"cpu", "filesystem", "memory", "network"}

// Settings is the application configuration resolved from defaults, the
// settings file, SYSDOC_* environment variables and flags.
type Settings struct {
	System     string   `mapstructure:"system" yaml:"system"`
	Categories []string `mapstructure:"categories" yaml:"categories"`
	LogLevel   string   `mapstructure:"log_level" yaml:"log_level"`
	Parallel   int      `mapstructure:"parallel" yaml:"parallel"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName(SettingsName)
	viper.SetConfigType("yaml")
	for _, dir := range paths.SearchPaths() {
		viper.AddConfigPath(dir)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeySystem, "")
	viper.SetDefault(KeyCategories, DefaultCategories)
	viper.SetDefault(KeyLogLevel, "warning")
	viper.SetDefault(KeyParallel, 0)
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}
	// A comma separated SYSDOC_CATEGORIES arrives as a single element.
	s.Categories = splitList(s.Categories)
	return &s, nil
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
