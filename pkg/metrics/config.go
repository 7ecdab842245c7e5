package metrics

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages metric computation configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Metric parameters
	v.SetDefault("metrics.normalize", true)
	v.SetDefault("metrics.random_seed", time.Now().UnixNano())

	// Performance parameters
	v.SetDefault("performance.num_workers", runtime.NumCPU())

	// Logging parameters
	v.SetDefault("logging.level", "info")

	// Output parameters
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.prefix", "network")

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for metric parameters
func (c *Config) Normalize() bool    { return c.v.GetBool("metrics.normalize") }
func (c *Config) RandomSeed() int64  { return c.v.GetInt64("metrics.random_seed") }
func (c *Config) NumWorkers() int    { return c.v.GetInt("performance.num_workers") }
func (c *Config) LogLevel() string   { return c.v.GetString("logging.level") }
func (c *Config) OutputDir() string  { return c.v.GetString("output.dir") }
func (c *Config) OutputPrefix() string { return c.v.GetString("output.prefix") }

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "metrics").Logger()
}
