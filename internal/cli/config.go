package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"reflectkit/fields"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// EnvPrefix prefixes the environment variables read by the configuration,
// e.g. REFLECTKIT_LOG_LEVEL.
const EnvPrefix = "REFLECTKIT"

var ErrUnknownFormat = errors.New("unknown output format")

// Config is the command line configuration.
type Config struct {
	Format  string    `mapstructure:"format"`
	Ignore  []string  `mapstructure:"ignore"`
	NoColor bool      `mapstructure:"no_color"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", FormatText)
	v.SetDefault("ignore", fields.DefaultIgnore())
	v.SetDefault("no_color", false)
	v.SetDefault("log.level", "warn")
}

// LoadConfig reads reflectkit.yaml from the working directory, or path when
// set, and applies environment overrides. A missing reflectkit.yaml is not an
// error; a missing explicit path is.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("reflectkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	c.Format = strings.ToLower(c.Format)
	if !slices.Contains([]string{FormatText, FormatYAML}, c.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	return nil
}
