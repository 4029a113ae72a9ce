package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nesting levels, so DECLINE_LOGGER__LEVEL sets logger.level.
const EnvPrefix = "DECLINE_"

var DefaultConfig = []byte(`
application: "decline-insights"

logger:
  level: "info"
  format: "json"

output:
  format: "text"

search:
  debounce: "200ms"
`)

type Config struct {
	Application string `koanf:"application"`
	Logger      Logger `koanf:"logger"`
	Output      Output `koanf:"output"`
	Search      Search `koanf:"search"`
}

type Logger struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type Output struct {
	Format string `koanf:"format"`
}

type Search struct {
	Debounce time.Duration `koanf:"debounce"`
}

var (
	logFormats    = []string{"json", "text"}
	outputFormats = []string{"text", "json", "dump"}
)

// Load layers the embedded defaults, the optional YAML file at path and
// DECLINE_ environment overrides, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(DefaultConfig), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := Config{}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Application == "" {
		errs = append(errs, errors.New("application: cannot be empty"))
	}
	if _, err := logrus.ParseLevel(c.Logger.Level); err != nil {
		errs = append(errs, fmt.Errorf("logger.level: %w", err))
	}
	if !slices.Contains(logFormats, c.Logger.Format) {
		errs = append(errs, fmt.Errorf("logger.format: %q is not one of %v", c.Logger.Format, logFormats))
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format: %q is not one of %v", c.Output.Format, outputFormats))
	}
	if c.Search.Debounce <= 0 {
		errs = append(errs, errors.New("search.debounce: must be positive"))
	}

	return errors.Join(errs...)
}
