package config

import (
	"fmt"
	"strings"
	"sync"

	"room-booking-api/core/constants"
	"room-booking-api/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Booking      BookingConfig
	CalendarFeed CalendarFeedConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret          string
	AccessTokenMinutes int
}

// BookingConfig controls slot granularity, the permitted scheduling
// window and the completion sweep cadence.
type BookingConfig struct {
	SlotMinutes          int
	DayStartHour         int
	DayEndHour           int
	SweepIntervalMinutes int
}

type CalendarFeedConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads configuration from environment variables (an optional .env
// file is honored for local development) and caches the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("Config:Load:NoDotEnv")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "roombooking")
	v.SetDefault("db.sslmode", constants.DatabaseSSLMode)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_token_minutes", 30)

	v.SetDefault("booking.slot_minutes", constants.DefaultSlotMinutes)
	v.SetDefault("booking.day_start_hour", constants.DefaultDayStartHour)
	v.SetDefault("booking.day_end_hour", constants.DefaultDayEndHour)
	v.SetDefault("booking.sweep_interval_minutes", 5)

	v.SetDefault("calendar_feed.base_url", "")
	v.SetDefault("calendar_feed.token_url", "")
	v.SetDefault("calendar_feed.client_id", "")
	v.SetDefault("calendar_feed.client_secret", "")

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWTSecret:          v.GetString("jwt.secret"),
			AccessTokenMinutes: v.GetInt("jwt.access_token_minutes"),
		},
		Booking: BookingConfig{
			SlotMinutes:          v.GetInt("booking.slot_minutes"),
			DayStartHour:         v.GetInt("booking.day_start_hour"),
			DayEndHour:           v.GetInt("booking.day_end_hour"),
			SweepIntervalMinutes: v.GetInt("booking.sweep_interval_minutes"),
		},
		CalendarFeed: CalendarFeedConfig{
			BaseURL:      v.GetString("calendar_feed.base_url"),
			TokenURL:     v.GetString("calendar_feed.token_url"),
			ClientID:     v.GetString("calendar_feed.client_id"),
			ClientSecret: v.GetString("calendar_feed.client_secret"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Booking.SlotMinutes <= 0 || 60%c.Booking.SlotMinutes != 0 {
		return fmt.Errorf("booking slot minutes must divide an hour, got %d", c.Booking.SlotMinutes)
	}
	if c.Booking.DayStartHour < 0 || c.Booking.DayEndHour > 24 || c.Booking.DayStartHour >= c.Booking.DayEndHour {
		return fmt.Errorf("invalid scheduling window %d-%d", c.Booking.DayStartHour, c.Booking.DayEndHour)
	}
	return nil
}

// Get returns the loaded configuration. Panics if Load was never called.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config not initialized, call config.Load first")
	}
	return instance
}

// GetSafe returns the configuration and whether it has been initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set replaces the cached configuration. Intended for tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}
