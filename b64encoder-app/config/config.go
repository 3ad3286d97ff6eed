package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/compose-network/b64encoder/log"
	"github.com/compose-network/b64encoder/x/textnorm"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "B64ENCODER"

// Config holds the complete application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log"       yaml:"log"`
	Normalize NormalizeConfig `mapstructure:"normalize" yaml:"normalize"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  env:"B64ENCODER_LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty" env:"B64ENCODER_LOG_PRETTY"`
}

// NormalizeConfig holds text normalization configuration
type NormalizeConfig struct {
	// LineEndings is one of auto, crlf, lf, lf-fallback
	LineEndings string `mapstructure:"line_endings" yaml:"line_endings" env:"B64ENCODER_NORMALIZE_LINE_ENDINGS"`
}

// Load loads configuration from the environment. There is no configuration file.
// The result is not validated, callers validate after applying flag overrides.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)

	v.SetDefault("normalize.line_endings", textnorm.PolicyAuto)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLog(); err != nil {
		return err
	}
	if err := c.validateNormalize(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLog() error {
	if !log.ValidLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be one of trace, debug, info, warn, error, fatal, panic, disabled; got %q",
			c.Log.Level)
	}
	return nil
}

func (c *Config) validateNormalize() error {
	if _, err := textnorm.ParsePolicy(c.Normalize.LineEndings); err != nil {
		return fmt.Errorf("normalize.line_endings: %w", err)
	}
	return nil
}

// LineEndingPolicy resolves the configured line-ending policy
func (c *Config) LineEndingPolicy() (textnorm.Policy, error) {
	return textnorm.ParsePolicy(c.Normalize.LineEndings)
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Pretty: false,
		},
		Normalize: NormalizeConfig{
			LineEndings: textnorm.PolicyAuto,
		},
	}
}
