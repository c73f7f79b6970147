package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML-файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Notifier NotifierConfig `toml:"notifier"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotifierConfig настройки клиента сервиса уведомлений
type NotifierConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig бизнес-параметры бронирования
// Недельный лимит и срок реакции на блокировку вынесены в конфигурацию
type BookingConfig struct {
	SlotDurationMinutes      int `toml:"slot_duration_minutes"`
	WeeklyCapMinutes         int `toml:"weekly_cap_minutes"`
	BlockGracePeriodHours    int `toml:"block_grace_period_hours"`
	ReconcileIntervalMinutes int `toml:"reconcile_interval_minutes"`
	ReconcileBatchSize       int `toml:"reconcile_batch_size"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "logs/booking-service.log"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "gms-booking-service"
	}
	if cfg.Booking.SlotDurationMinutes == 0 {
		cfg.Booking.SlotDurationMinutes = 30
	}
	if cfg.Booking.WeeklyCapMinutes == 0 {
		cfg.Booking.WeeklyCapMinutes = 2880 // 48 часов
	}
	if cfg.Booking.BlockGracePeriodHours == 0 {
		cfg.Booking.BlockGracePeriodHours = 24
	}
	if cfg.Booking.ReconcileIntervalMinutes == 0 {
		cfg.Booking.ReconcileIntervalMinutes = 60
	}
	if cfg.Booking.ReconcileBatchSize == 0 {
		cfg.Booking.ReconcileBatchSize = 100
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if cfg.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("config: slot_duration_minutes must be positive")
	}
	if cfg.Booking.ReconcileBatchSize <= 0 {
		return fmt.Errorf("config: reconcile_batch_size must be positive")
	}
	return nil
}
