// Package config provides configuration management.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"expense-split/core/types"
	"expense-split/internal/errors"
	"expense-split/internal/logging"
)

// EnvPrefix is prepended to every environment override, e.g.
// EXPENSE_SPLIT_OUTPUT_CURRENCY=USD.
const EnvPrefix = "EXPENSE_SPLIT"

// Config is the main application configuration
type Config struct {
	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Flight contains flight split defaults
	Flight FlightConfig `json:"flight" mapstructure:"flight" yaml:"flight"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" mapstructure:"server" yaml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" mapstructure:"default_format" yaml:"default_format"`

	// Currency is the display currency
	Currency types.Currency `json:"currency" mapstructure:"currency" yaml:"currency"`

	// ShowZeroBands keeps empty bands in the human-readable breakdown
	ShowZeroBands bool `json:"show_zero_bands" mapstructure:"show_zero_bands" yaml:"show_zero_bands"`
}

// FlightConfig contains flight split defaults
type FlightConfig struct {
	// DefaultPreset is used when no preset flag is given
	DefaultPreset string `json:"default_preset" mapstructure:"default_preset" yaml:"default_preset"`

	// UpgradeCompanyPercent is the company share of a cabin upgrade
	UpgradeCompanyPercent float64 `json:"upgrade_company_percent" mapstructure:"upgrade_company_percent" yaml:"upgrade_company_percent"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr            string        `json:"addr" mapstructure:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `json:"read_timeout" mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	MetricsEnabled  bool          `json:"metrics_enabled" mapstructure:"metrics_enabled" yaml:"metrics_enabled"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: "cli",
			Currency:      types.CurrencyCNY,
			ShowZeroBands: false,
		},
		Flight: FlightConfig{
			DefaultPreset:         "upgrade75",
			UpgradeCompanyPercent: 75,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MetricsEnabled:  true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from path (JSON, YAML or TOML, by extension)
// layered over Default() and EXPENSE_SPLIT_* environment variables.
// An empty path or a missing file yields defaults plus environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !configNotFound(err) {
				return nil, errors.Config("read config "+path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("decode config", err)
	}
	cfg.Output.Currency = types.Currency(strings.ToUpper(strings.TrimSpace(string(cfg.Output.Currency))))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise surface as calculation errors
// far from their source.
func (c *Config) Validate() error {
	if !c.Output.Currency.Valid() {
		return errors.Newf(errors.TypeConfig, "unsupported currency %q", c.Output.Currency)
	}
	p := c.Flight.UpgradeCompanyPercent
	if p < 0 || p > 100 {
		return errors.Newf(errors.TypeConfig, "flight.upgrade_company_percent %v outside 0-100", p)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("output.default_format", d.Output.DefaultFormat)
	v.SetDefault("output.currency", string(d.Output.Currency))
	v.SetDefault("output.show_zero_bands", d.Output.ShowZeroBands)

	v.SetDefault("flight.default_preset", d.Flight.DefaultPreset)
	v.SetDefault("flight.upgrade_company_percent", d.Flight.UpgradeCompanyPercent)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.metrics_enabled", d.Server.MetricsEnabled)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)
}

// viper reports a missing explicit config file as an *fs.PathError rather
// than ConfigFileNotFoundError, so both are treated as "use defaults".
func configNotFound(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
