package app

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/soroswap/core/x/host"
	hosttypes "github.com/soroswap/core/x/host/types"
)

// EnvPrefix prefixes every environment override, e.g.
// SOROSWAP_NETWORK_PASSPHRASE or SOROSWAP_LEDGER_MAX_ENTRY_TTL.
const EnvPrefix = "SOROSWAP"

// NetworkConfig identifies the network contract addresses are derived for.
type NetworkConfig struct {
	Passphrase string `mapstructure:"passphrase"`
}

// TelemetryConfig controls invocation tracing.
type TelemetryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// Config is the application configuration.
type Config struct {
	Network   NetworkConfig       `mapstructure:"network"`
	Ledger    hosttypes.TTLPolicy `mapstructure:"ledger"`
	Telemetry TelemetryConfig     `mapstructure:"telemetry"`
}

// DefaultConfig returns the configuration of a local network.
func DefaultConfig() Config {
	return Config{
		Network: NetworkConfig{Passphrase: host.DefaultNetworkPassphrase},
		Ledger:  hosttypes.DefaultTTLPolicy(),
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "soroswap",
			SampleRate:  1,
		},
	}
}

// Validate rejects configurations the host cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Network.Passphrase) == "" {
		return fmt.Errorf("network passphrase is required")
	}
	if err := c.Ledger.Validate(); err != nil {
		return fmt.Errorf("invalid ledger config: %w", err)
	}
	if c.Telemetry.SampleRate < 0 || c.Telemetry.SampleRate > 1 {
		return fmt.Errorf("sample rate must be between 0 and 1")
	}
	if c.Telemetry.Enabled && c.Telemetry.ServiceName == "" {
		return fmt.Errorf("telemetry service name is required")
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("network.passphrase", cfg.Network.Passphrase)
	v.SetDefault("ledger.min_persistent_ttl", cfg.Ledger.MinPersistentTTL)
	v.SetDefault("ledger.min_temporary_ttl", cfg.Ledger.MinTemporaryTTL)
	v.SetDefault("ledger.max_entry_ttl", cfg.Ledger.MaxEntryTTL)
	v.SetDefault("telemetry.enabled", cfg.Telemetry.Enabled)
	v.SetDefault("telemetry.service_name", cfg.Telemetry.ServiceName)
	v.SetDefault("telemetry.sample_rate", cfg.Telemetry.SampleRate)
}

// LoadConfig reads the TOML file at path, if any, over the defaults and
// applies SOROSWAP_* environment overrides. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigType("toml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
