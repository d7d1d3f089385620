// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Data struct {
		AccommodationFile string `mapstructure:"accommodation_file" yaml:"accommodation_file"`
		TransportFile     string `mapstructure:"transport_file" yaml:"transport_file"`
		CacheEnabled      bool   `mapstructure:"cache_enabled" yaml:"cache_enabled"`
	} `mapstructure:"data" yaml:"data"`

	Trip struct {
		// Travelers is the per-person cost divisor. The source dashboard
		// hard-coded the assumption of two travelers; here it is a setting.
		Travelers int `mapstructure:"travelers" yaml:"travelers"`
	} `mapstructure:"trip" yaml:"trip"`

	Geo struct {
		OverridesFile string `mapstructure:"overrides_file" yaml:"overrides_file"`
	} `mapstructure:"geo" yaml:"geo"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.travel-stats")
	v.AddConfigPath(".travel-stats")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("TRAVEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
		// Missing or invalid config file is fine, defaults and env vars apply
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("data.accommodation_file", "travel_data.csv")
	v.SetDefault("data.transport_file", "data_transport.csv")
	v.SetDefault("data.cache_enabled", true)

	v.SetDefault("trip.travelers", 2)

	v.SetDefault("geo.overrides_file", "countries.yaml")
}

// validateConfig checks the configuration for invalid values
func validateConfig(config *Config) error {
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLevels[strings.ToLower(config.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	if config.Trip.Travelers < 1 {
		return fmt.Errorf("trip travelers must be at least 1, got %d", config.Trip.Travelers)
	}

	return nil
}
