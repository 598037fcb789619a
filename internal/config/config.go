package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	DataLayer DataLayerConfig `toml:"datalayer"`
	Redis     RedisConfig     `toml:"redis"`
	Cache     CacheConfig     `toml:"cache"`
	Rules     RulesConfig     `toml:"rules"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DataLayerConfig настройки клиента Data Layer
type DataLayerConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды, ограничивает каждый исходящий вызов
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// CacheConfig настройки кеша профилей пользователей
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLSeconds int  `toml:"ttl_seconds"`
}

// RulesConfig конфигурируемые бизнес-правила
type RulesConfig struct {
	SpecialDates []SpecialDate `toml:"special_dates"`
}

// SpecialDate особая дата календаря
// Blocked=true полностью запрещает резервации на эту дату
type SpecialDate struct {
	Date    string `toml:"date"` // "YYYY-MM-DD"
	Name    string `toml:"name"`
	Blocked bool   `toml:"blocked"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.DataLayer.URL == "" {
		return fmt.Errorf("config: datalayer.url is required")
	}
	if c.DataLayer.Timeout <= 0 {
		return fmt.Errorf("config: datalayer.timeout must be positive")
	}
	if c.Cache.Enabled && c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("config: cache.ttl_seconds must be positive when cache is enabled")
	}
	return nil
}
