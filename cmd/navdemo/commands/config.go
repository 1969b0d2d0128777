// Package commands implements the navdemo CLI commands.
package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".navdemo"

// envPrefix is the environment variable prefix for navdemo settings.
const envPrefix = "NAVDEMO"

// Defaults.
const (
	DefaultLanguage = "en"
	DefaultLogLevel = "warn"
)

// Config holds the navdemo settings resolved from flags, NAVDEMO_* variables,
// the config file and defaults, in that order.
type Config struct {
	Actions  string `mapstructure:"actions"`
	Language string `mapstructure:"lang"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	Metrics  bool   `mapstructure:"metrics"`
	NoColor  bool   `mapstructure:"no_color"`
}

var configPath string

// AddPersistentFlags adds the flags shared by every command.
func AddPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: .navdemo.yaml in CWD or $HOME)")
	flags.String("actions", "", "Action file to load (.toml, .yaml, .yml)")
	flags.String("lang", DefaultLanguage, "Output language (en, de)")
	flags.String("log-level", DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Also write logs to this file")
	flags.Bool("metrics", false, "Print execution metrics after running")
	flags.Bool("no-color", false, "Disable colored output")
}

// LoadConfig resolves the configuration for cmd. A missing config file is
// not an error.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetDefault("lang", DefaultLanguage)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"actions":   "actions",
		"lang":      "lang",
		"log_level": "log-level",
		"log_file":  "log-file",
		"metrics":   "metrics",
		"no_color":  "no-color",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
