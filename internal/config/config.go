// Package config provides configuration management for QAi.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like SERVER_PORT, LOG_LEVEL)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Worker  WorkerConfig  `mapstructure:"worker"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// DatasetConfig controls the synthetic dataset generated at startup.
type DatasetConfig struct {
	BatchCount     int `mapstructure:"batch_count"`
	TimeSeriesDays int `mapstructure:"time_series_days"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize int `mapstructure:"general_pool_size"`
	ReportPoolSize  int `mapstructure:"report_pool_size"`
}

// CORSConfig contains CORS settings for the dashboard frontend.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix: SERVER_PORT, LOG_LEVEL,
// DATASET_BATCH_COUNT, and so on (nested keys map dot to underscore).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/qai")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Dataset.BatchCount <= 0 {
		return fmt.Errorf("dataset.batch_count must be positive")
	}
	if c.Dataset.TimeSeriesDays <= 0 {
		return fmt.Errorf("dataset.time_series_days must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Dataset: 500 batches over a 30 day window, matching the dashboard demo.
	v.SetDefault("dataset.batch_count", 500)
	v.SetDefault("dataset.time_series_days", 30)

	// Worker pool
	v.SetDefault("worker.general_pool_size", 50)
	v.SetDefault("worker.report_pool_size", 10)

	// CORS
	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})
}
