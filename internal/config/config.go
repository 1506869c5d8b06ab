// Package config loads contrast settings from defaults, an optional file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/contrast/internal/cssvars"
	"github.com/opencode-ai/contrast/internal/report"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. CONTRAST_LOGGING_LEVEL.
const EnvPrefix = "CONTRAST"

// Config is the full set of runtime settings.
type Config struct {
	Paths       []string         `mapstructure:"paths"`
	Text        TextConfig       `mapstructure:"text"`
	Backgrounds []string         `mapstructure:"backgrounds"`
	Thresholds  ThresholdsConfig `mapstructure:"thresholds"`
	Logging     LoggingConfig    `mapstructure:"logging"`
	Output      OutputConfig     `mapstructure:"output"`
}

// TextConfig selects the text colors checked against each background.
type TextConfig struct {
	PrimaryVar   string       `mapstructure:"primary_var"`
	FallbackName string       `mapstructure:"fallback_name"`
	FallbackHex  string       `mapstructure:"fallback_hex"`
	Extra        []NamedColor `mapstructure:"extra"`
}

// NamedColor is a literal labeled color.
type NamedColor struct {
	Name string `mapstructure:"name"`
	Hex  string `mapstructure:"hex"`
}

// ThresholdsConfig holds the minimum contrast ratios.
type ThresholdsConfig struct {
	Normal float64 `mapstructure:"normal"`
	Large  float64 `mapstructure:"large"`
}

// LoggingConfig controls the stderr logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Color string `mapstructure:"color"`
	Theme string `mapstructure:"theme"`
}

// DefaultConfig returns the settings used when no file or override is present.
func DefaultConfig() *Config {
	opts := report.DefaultOptions()

	extra := make([]NamedColor, 0, len(opts.ExtraText))
	for _, sw := range opts.ExtraText {
		extra = append(extra, NamedColor{Name: sw.Name, Hex: sw.Hex})
	}

	return &Config{
		Paths: append([]string(nil), cssvars.DefaultPaths...),
		Text: TextConfig{
			PrimaryVar:   opts.TextPrimaryVar,
			FallbackName: opts.Fallback.Name,
			FallbackHex:  opts.Fallback.Hex,
			Extra:        extra,
		},
		Backgrounds: append([]string(nil), opts.Backgrounds...),
		Thresholds: ThresholdsConfig{
			Normal: opts.Thresholds.Normal,
			Large:  opts.Thresholds.Large,
		},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Output:  OutputConfig{Color: "auto", Theme: "default"},
	}
}

// SetDefaults registers DefaultConfig values on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("paths", d.Paths)
	v.SetDefault("text.primary_var", d.Text.PrimaryVar)
	v.SetDefault("text.fallback_name", d.Text.FallbackName)
	v.SetDefault("text.fallback_hex", d.Text.FallbackHex)
	extra := make([]map[string]string, 0, len(d.Text.Extra))
	for _, c := range d.Text.Extra {
		extra = append(extra, map[string]string{"name": c.Name, "hex": c.Hex})
	}
	v.SetDefault("text.extra", extra)
	v.SetDefault("backgrounds", d.Backgrounds)
	v.SetDefault("thresholds.normal", d.Thresholds.Normal)
	v.SetDefault("thresholds.large", d.Thresholds.Large)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("output.color", d.Output.Color)
	v.SetDefault("output.theme", d.Output.Theme)
}

// New returns a viper instance with defaults, search paths and env binding.
// An explicit file path replaces the search.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}

	// No SetConfigType here: it would also match an extensionless "contrast"
	// file, which is what the built binary is called.
	v.SetConfigName("contrast")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		v.AddConfigPath(filepath.Join(home, ".config", "contrast"))
	}
	return v
}

// Load reads the config file if present and decodes v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the checker cannot run with.
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return errors.New("config: at least one stylesheet path is required")
	}
	if strings.TrimSpace(c.Text.PrimaryVar) == "" {
		return errors.New("config: text.primary_var is required")
	}
	if c.Thresholds.Normal <= 0 || c.Thresholds.Large <= 0 {
		return fmt.Errorf("config: thresholds must be positive (normal %v, large %v)", c.Thresholds.Normal, c.Thresholds.Large)
	}
	if c.Thresholds.Large > c.Thresholds.Normal {
		return fmt.Errorf("config: large threshold %v exceeds normal threshold %v", c.Thresholds.Large, c.Thresholds.Normal)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: output.color must be auto, always or never, got %q", c.Output.Color)
	}
	return nil
}
