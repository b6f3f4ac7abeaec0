// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers. It uses Viper for file/env/flag parsing and writes configuration
// files as YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName = "addressbook"
	// EnvPrefix is the prefix of environment variables read by LoadConfig,
	// e.g. ADDRESSBOOK_STORE_TYPE.
	EnvPrefix = "addressbook"
)

// Config is the application configuration.
type Config struct {
	Store    StoreConfig `mapstructure:"store" yaml:"store"`
	Language string      `mapstructure:"language" yaml:"language"`
	PageSize int         `mapstructure:"page-size" yaml:"page-size"`
	Log      LogConfig   `mapstructure:"log" yaml:"log"`
}

// StoreConfig selects where the address book is kept. Type is one of
// "file", "sqlite", "postgres" or "mysql"; Dsn is a file path for "file".
type StoreConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the default configuration values keyed by viper key.
func Defaults() map[string]any {
	return map[string]any{
		"store.type": "file",
		"store.dsn":  "./addressbook.bin.zst",
		"language":   "en",
		"page-size":  6,
		"log.level":  "warn",
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Addressbook")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// UserConfigPath is where WriteConfigFile stores the per-user configuration.
func UserConfigPath() (string, error) {
	return getConfigPath(false)
}

// LoadConfig merges, in increasing precedence: defaults, the first
// addressbook.yaml found in the user config dir, the system config dir or the
// working directory (or the explicit file at configPath), ADDRESSBOOK_*
// environment variables and the flags of cmd. A missing config file is
// reported as viper.ConfigFileNotFoundError alongside a fully populated config.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	if configPath != nil {
		v.SetConfigFile(*configPath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; the caller may want to write one.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, err
		}
		notFound = err
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile persists c as YAML in the user (or system) config location
// and returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
