package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	HotelAPI HotelAPIConfig `toml:"hotel_api"`
	Session  SessionConfig  `toml:"session"`
	Redis    RedisConfig    `toml:"redis"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Receipt  ReceiptConfig  `toml:"receipt"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HotelAPIConfig параметры backend-сервиса отеля
type HotelAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SessionConfig параметры хранения состояния страницы
type SessionConfig struct {
	Backend    string `toml:"backend"` // memory | redis
	CookieName string `toml:"cookie_name"`
	TTL        int    `toml:"ttl"` // секунды
	Secure     bool   `toml:"secure"`
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// AuthConfig параметры чтения учётных данных пользователя
type AuthConfig struct {
	CookieName string `toml:"cookie_name"`
	JWTSecret  string `toml:"jwt_secret"` // пусто = токен не проверяется, только разбирается
}

// ReceiptConfig статичные данные квитанции
type ReceiptConfig struct {
	LogoPath     string `toml:"logo_path"`
	Currency     string `toml:"currency"`
	SupportEmail string `toml:"support_email"`
	SupportPhone string `toml:"support_phone"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "profile-service",
		},
		HotelAPI: HotelAPIConfig{
			URL:     "http://localhost:8081",
			Timeout: 10,
		},
		Session: SessionConfig{
			Backend:    "memory",
			CookieName: "profile_session",
			TTL:        1800,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "profile:session:",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Auth: AuthConfig{CookieName: "access_token"},
		Receipt: ReceiptConfig{
			Currency:     "USD",
			SupportEmail: "LuxStay@support.com",
			SupportPhone: "+123 456 7890",
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Перед этим подгружает .env (если есть) и применяет переопределения из окружения.
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HOTEL_API_URL"); v != "" {
		cfg.HotelAPI.URL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.HotelAPI.URL == "" {
		return fmt.Errorf("%w: hotel_api.url is required", ErrInvalidConfig)
	}
	if c.HotelAPI.Timeout <= 0 {
		return fmt.Errorf("%w: hotel_api.timeout must be positive", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	switch c.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("%w: session.backend must be memory or redis, got %q", ErrInvalidConfig, c.Session.Backend)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("%w: session.ttl must be positive", ErrInvalidConfig)
	}
	if c.Session.CookieName == "" || c.Auth.CookieName == "" {
		return fmt.Errorf("%w: cookie names are required", ErrInvalidConfig)
	}
	return nil
}

// HotelAPITimeout таймаут вызовов hotel API
func (c *Config) HotelAPITimeout() time.Duration {
	return time.Duration(c.HotelAPI.Timeout) * time.Second
}

// SessionTTL время жизни сессии страницы
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTL) * time.Second
}
