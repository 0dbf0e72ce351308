// Package config loads runtime configuration from flags, RPG_MECHANICS_* environment
// variables and an optional config file.
package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
)

// EnvPrefix is the prefix of environment overrides, e.g. RPG_MECHANICS_GRPC_PORT
const EnvPrefix = "RPG_MECHANICS"

// Catalog sources
const (
	CatalogSourceFile   = "file"
	CatalogSourceRedis  = "redis"
	CatalogSourceSQLite = "sqlite"
)

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	// Addrs is a comma separated list; more than one address selects cluster mode
	Addrs    string `mapstructure:"addrs"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AddrList splits Addrs into individual addresses
func (c RedisConfig) AddrList() []string {
	var out []string
	for _, addr := range strings.Split(c.Addrs, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// CatalogConfig selects where part catalogs are read from
type CatalogConfig struct {
	Source string `mapstructure:"source"`
	// Path is the JSON or TOML catalog file for the file source
	Path string `mapstructure:"path"`
	// Watch reloads the file source when it changes
	Watch      bool   `mapstructure:"watch"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// Config holds all runtime configuration of the service
type Config struct {
	GRPCPort int           `mapstructure:"grpc_port"`
	LogLevel string        `mapstructure:"log_level"`
	Redis    RedisConfig   `mapstructure:"redis"`
	Catalog  CatalogConfig `mapstructure:"catalog"`
}

// SetDefaults registers the built-in defaults on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("grpc_port", 50051)
	v.SetDefault("log_level", "info")
	v.SetDefault("redis.addrs", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("catalog.source", CatalogSourceFile)
	v.SetDefault("catalog.path", "catalog.toml")
	v.SetDefault("catalog.watch", true)
	v.SetDefault("catalog.sqlite_path", "mechanics.db")
}

// Load reads configuration from v, applying built-in defaults for any values not
// set by config file, environment or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot start with
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("catalog.source", c.Catalog.Source,
		[]string{CatalogSourceFile, CatalogSourceRedis, CatalogSourceSQLite}, vb)
	if len(c.Redis.AddrList()) == 0 {
		vb.RequiredField("redis.addrs")
	}

	switch c.Catalog.Source {
	case CatalogSourceFile:
		errors.ValidateRequired("catalog.path", c.Catalog.Path, vb)
	case CatalogSourceSQLite:
		errors.ValidateRequired("catalog.sqlite_path", c.Catalog.SQLitePath, vb)
	}

	if _, err := c.SlogLevel(); err != nil {
		vb.InvalidField("log_level", err.Error())
	}

	return vb.Build()
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
