package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-uibuilder/pkg/builder"
	"github.com/goliatone/go-uibuilder/pkg/logging"
	"github.com/goliatone/go-uibuilder/pkg/model"
)

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// BuilderConfig configures the form builder.
type BuilderConfig struct {
	Policy       string `mapstructure:"policy" yaml:"policy"`               // abort or continue
	ColumnMarker string `mapstructure:"column_marker" yaml:"column_marker"` // substring a row key needs to be written
	TraceOptions bool   `mapstructure:"trace_options" yaml:"trace_options"`
}

// ImportConfig configures OpenAPI imports.
type ImportConfig struct {
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
}

// PreviewConfig configures HTML previews.
type PreviewConfig struct {
	ThemeFile string `mapstructure:"theme_file" yaml:"theme_file"` // YAML theme manifest
	Variant   string `mapstructure:"variant" yaml:"variant"`
}

// Config is the CLI configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Builder BuilderConfig `mapstructure:"builder" yaml:"builder"`
	Import  ImportConfig  `mapstructure:"import" yaml:"import"`
	Preview PreviewConfig `mapstructure:"preview" yaml:"preview"`
}

var defaults = map[string]any{
	"log.level":             "info",
	"log.development":       false,
	"builder.policy":        builder.AbortOnError.String(),
	"builder.column_marker": model.CustomFieldMarker,
	"builder.trace_options": false,
	"import.prefix":         "custpage_",
	"preview.theme_file":    "",
	"preview.variant":       "",
}

// envBindings maps config keys to the environment variables that can set them.
var envBindings = map[string][]string{
	"log.level":             {"UIBUILDER_LOG_LEVEL"},
	"log.development":       {"UIBUILDER_LOG_DEVELOPMENT"},
	"builder.policy":        {"UIBUILDER_POLICY"},
	"builder.column_marker": {"UIBUILDER_COLUMN_MARKER"},
	"builder.trace_options": {"UIBUILDER_TRACE_OPTIONS"},
	"import.prefix":         {"UIBUILDER_IMPORT_PREFIX"},
	"preview.theme_file":    {"UIBUILDER_THEME_FILE"},
	"preview.variant":       {"UIBUILDER_THEME_VARIANT"},
}

// Load reads filePath when it exists and overlays environment variables. An
// empty path loads defaults and the environment only.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", filePath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		if err := v.BindEnv(slices.Insert(envs, 0, key)...); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks values that cannot be caught by decoding.
func (c *Config) Validate() error {
	if _, err := builder.ParsePolicy(c.Builder.Policy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if strings.TrimSpace(c.Builder.ColumnMarker) == "" {
		return errors.New("config: builder.column_marker must not be empty")
	}
	return nil
}

// BuilderOptions turns the builder section into builder options.
func (c *Config) BuilderOptions(lggr logging.Logger) []builder.Option {
	policy, _ := builder.ParsePolicy(c.Builder.Policy)
	marker := c.Builder.ColumnMarker
	return []builder.Option{
		builder.WithLogger(lggr),
		builder.WithPolicy(policy),
		builder.WithOptionTrace(c.Builder.TraceOptions),
		builder.WithColumnMatcher(func(key string) bool {
			return strings.Contains(key, marker)
		}),
	}
}

// Logging returns the logging section as a logging.Config.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Development: c.Log.Development}
}
