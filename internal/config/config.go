// Package config resolves navcheck settings from flags, environment and
// an optional .navcheck.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appscodelabs/navcheck/pkg/sidebar"

	"github.com/spf13/viper"
)

const EnvPrefix = "NAVCHECK"

type Config struct {
	MaxDepth      int    `mapstructure:"max_depth"`
	ContentDir    string `mapstructure:"content_dir"`
	IncludeDrafts bool   `mapstructure:"include_drafts"`
	Output        string `mapstructure:"output"`
	LogLevel      string `mapstructure:"log_level"`
	LogJSON       bool   `mapstructure:"log_json"`
	WorkDir       string `mapstructure:"work_dir"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("max_depth", sidebar.DefaultMaxDepth)
	v.SetDefault("content_dir", "")
	v.SetDefault("include_drafts", false)
	v.SetDefault("output", "table")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("work_dir", ".navcheck/work")
}

// Load reads cfgFile, or .navcheck.yaml from the working directory when
// cfgFile is empty, and merges environment variables over it. A missing
// default config file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".navcheck")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
