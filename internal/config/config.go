package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Dictionary DictionaryConfig
	Audit      AuditConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port           int   `mapstructure:"port"`
	TimeoutSeconds int   `mapstructure:"timeout_seconds"`
	RateLimit      int   `mapstructure:"rate_limit"`
	RateBurst      int   `mapstructure:"rate_burst"`
	MaxBodyBytes   int64 `mapstructure:"max_body_bytes"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	// URL enables rejection event publishing when set.
	URL string `mapstructure:"url"`
}

type DictionaryConfig struct {
	Path            string `mapstructure:"path"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

func (c DictionaryConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

type AuditConfig struct {
	RetentionDays        int `mapstructure:"retention_days"`
	CleanupIntervalHours int `mapstructure:"cleanup_interval_hours"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 10)
	viper.SetDefault("server.rate_limit", 100)
	viper.SetDefault("server.rate_burst", 200)
	viper.SetDefault("server.max_body_bytes", 1<<20)
	viper.SetDefault("dictionary.path", "/usr/share/dict/words")
	viper.SetDefault("dictionary.cache_ttl_seconds", 300)
	viper.SetDefault("audit.retention_days", 90)
	viper.SetDefault("audit.cleanup_interval_hours", 24)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
