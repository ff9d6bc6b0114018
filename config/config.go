// Package config wraps viper with the handful of settings the game
// reads. Precedence: command-line flags, then HANGMAN_* environment
// variables, then an optional config file, then defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configName = "config"

type Config struct {
	v  *viper.Viper
	fs *pflag.FlagSet

	configDir string
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()

	c.fs = pflag.NewFlagSet("hangman", pflag.ContinueOnError)
	c.fs.ParseErrorsWhitelist.UnknownFlags = true
	c.fs.Bool("debug", false, "debug logging")
	c.fs.Int("max-wrong", 6, "wrong guesses allowed per round")
	c.fs.String("word-file", "", "path to a YAML word bank; empty uses the built-in bank")
	c.fs.String("placeholder", "_", "character shown for unguessed letters")
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(c.fs); err != nil {
		return err
	}

	c.v.SetEnvPrefix("hangman")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	ucd, err := os.UserConfigDir()
	if err == nil {
		c.configDir = filepath.Join(ucd, "hangman")
		c.v.AddConfigPath(c.configDir)
		c.v.SetConfigName(configName)
		c.v.SetConfigType("yaml")
		if err := c.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config file: %w", err)
			}
		}
	}
	return nil
}

// Args returns the non-flag command-line arguments left after Load.
func (c *Config) Args() []string {
	return c.fs.Args()
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Write persists the current settings to the user config file,
// creating the directory on first use.
func (c *Config) Write() error {
	if c.configDir == "" {
		return errors.New("no user config directory available")
	}
	if err := os.MkdirAll(c.configDir, 0o755); err != nil {
		return err
	}
	return c.v.WriteConfigAs(filepath.Join(c.configDir, configName+".yaml"))
}

// SanitizedSettings renders the settings for the startup log line.
func (c *Config) SanitizedSettings() string {
	settings := c.v.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, settings[k]))
	}
	return strings.Join(parts, " ")
}
