package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	// Packages
	viper "github.com/spf13/viper"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds values read from the config file and APIFRAME_* environment
// variables. Command line flags take precedence over these.
type Config struct {
	ApiKey        string        `mapstructure:"api_key"`
	Endpoint      string        `mapstructure:"endpoint"`
	WebhookUrl    string        `mapstructure:"webhook_url"`
	WebhookSecret string        `mapstructure:"webhook_secret"`
	LogLevel      string        `mapstructure:"log_level"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	configDir  = "apiframe"
	configName = "config"
	configType = "yaml"
	envPrefix  = "APIFRAME"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// LoadConfig reads the config file at path, or config.yaml in the apiframe
// user config directory when path is empty. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configDir))
		}
	}

	// Environment variables
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Defaults, which also bind the keys to the environment
	v.SetDefault("api_key", "")
	v.SetDefault("endpoint", "")
	v.SetDefault("webhook_url", "")
	v.SetDefault("webhook_secret", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", time.Duration(0))

	// Read the file, ignore if it does not exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Unmarshal
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Return success
	return &config, nil
}
