package config

import (
	"errors"
	"log/slog"
	"net"
	"strings"

	"github.com/spf13/viper"

	clierrors "github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/render"
)

const (
	// ConfigFileName is the configuration file looked up in the working
	// directory, without extension.
	ConfigFileName = ".domify"

	// EnvPrefix prefixes environment overrides, e.g. DOMIFY_LOG_LEVEL.
	EnvPrefix = "DOMIFY"

	// DefaultAddr is the default preview server address.
	DefaultAddr = "localhost:8080"

	// DefaultIndent is the default pretty-print indentation.
	DefaultIndent = "  "
)

// Keys understood by Load.
const (
	KeyLogLevel = "log-level"
	KeyPretty   = "pretty"
	KeyIndent   = "indent"
	KeyStrict   = "strict"
	KeyAddr     = "addr"
	KeyNoColor  = "no-color"
)

// Config holds the CLI settings.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log-level"`

	// Pretty enables indented output.
	Pretty bool `mapstructure:"pretty"`

	// Indent is the indentation unit for pretty output.
	Indent string `mapstructure:"indent"`

	// Strict turns attribute warnings into a failing exit status.
	Strict bool `mapstructure:"strict"`

	// Addr is the preview server listen address.
	Addr string `mapstructure:"addr"`

	// NoColor disables ANSI colors in error output.
	NoColor bool `mapstructure:"no-color"`
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Indent:   DefaultIndent,
		Addr:     DefaultAddr,
	}
}

// SetDefaults registers the defaults with v so that environment variables
// are picked up for every key.
func SetDefaults(v *viper.Viper) {
	d := New()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyPretty, d.Pretty)
	v.SetDefault(KeyIndent, d.Indent)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyAddr, d.Addr)
	v.SetDefault(KeyNoColor, d.NoColor)
}

// NewViper returns a viper instance with defaults, environment binding and
// the config file loaded. cfgFile overrides the .domify.yaml lookup. A
// missing default file is not an error.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, clierrors.New("C003").Wrap(err).WithDetail(err.Error())
		}
	}
	return v, nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, clierrors.New("C003").Wrap(err).WithDetail(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return clierrors.New("C001").
			WithDetailf("%q is not a log level", c.LogLevel).
			WithSuggestion("use debug, info, warn or error")
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return clierrors.New("C002").
			WithDetailf("indent %q contains characters other than spaces and tabs", c.Indent)
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return clierrors.New("C004").Wrap(err).WithDetail(err.Error())
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// RendererConfig returns the renderer settings.
func (c *Config) RendererConfig() render.RendererConfig {
	return render.RendererConfig{
		Pretty: c.Pretty,
		Indent: c.Indent,
	}
}
