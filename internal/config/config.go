// Package config provides configuration loading and validation for the CLI.
// Values resolve in the usual precedence: flags over environment variables
// (SCREENER_* prefix) over the optional YAML config file over defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SCREENER"

// Config is the runtime configuration of the screener CLI. Extraction and
// scoring stay pure; everything tunable lives here at the edge.
type Config struct {
	// AliasPath points to an external skills vocabulary CSV layered over the
	// embedded defaults. Empty means embedded defaults only.
	AliasPath string `mapstructure:"alias_path"`

	// TemplatesPath points to the job-profile templates YAML.
	TemplatesPath string `mapstructure:"templates_path"`

	// OutDir receives per-document JSON artifacts in batch mode.
	OutDir string `mapstructure:"out_dir"`

	// Workers bounds batch concurrency.
	Workers int `mapstructure:"workers" validate:"gte=1,lte=64"`

	Verbose  bool `mapstructure:"verbose"`
	JSONLogs bool `mapstructure:"json_logs"`
	Debug    bool `mapstructure:"debug"`
}

// Load reads the configuration: defaults, then the optional config file,
// then SCREENER_* environment variables, then any bound flags.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("workers", 4)
	v.SetDefault("out_dir", "out")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		// Flag names use dashes, config keys use underscores.
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks numeric ranges. Required paths are enforced per-command
// after flag merging, not here.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
