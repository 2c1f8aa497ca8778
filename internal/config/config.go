package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/CSE-4113-IP-Lab/booking-service/internal/domain"
	"github.com/CSE-4113-IP-Lab/booking-service/pkg/types"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Database         DatabaseConfig         `toml:"database"`
	DirectoryService DirectoryServiceConfig `toml:"directory_service"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	Booking          BookingConfig          `toml:"booking"`
}

// ServerConfig configures the HTTP server. Timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig configures the PostgreSQL connection pool.
type DatabaseConfig struct {
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

// DSN builds the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// DirectoryServiceConfig configures the portal user-directory client.
// Timeout is in seconds.
type DirectoryServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// LogsConfig configures logging output.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig is the campus-wide scheduling policy. The slot size, daily
// bookable window and booking horizon are deliberately configuration, not
// per-room attributes.
type BookingConfig struct {
	SlotMinutes int    `toml:"slot_minutes"`
	WindowOpen  string `toml:"window_open"`
	WindowClose string `toml:"window_close"`
	HorizonDays int    `toml:"horizon_days"`
	Timezone    string `toml:"timezone"`

	// CompletionSweepInterval is how often, in seconds, past bookings are
	// moved to the completed status.
	CompletionSweepInterval int `toml:"completion_sweep_interval"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		DirectoryService: DirectoryServiceConfig{
			Timeout: 5,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Booking: BookingConfig{
			SlotMinutes:             30,
			WindowOpen:              "08:00",
			WindowClose:             "20:00",
			HorizonDays:             7,
			Timezone:                "Asia/Dhaka",
			CompletionSweepInterval: 300,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}

	if c.Booking.SlotMinutes <= 0 || 24*60%c.Booking.SlotMinutes != 0 {
		return fmt.Errorf("config: booking.slot_minutes must divide a day evenly, got %d", c.Booking.SlotMinutes)
	}
	if c.Booking.HorizonDays <= 0 {
		return fmt.Errorf("config: booking.horizon_days must be positive, got %d", c.Booking.HorizonDays)
	}

	open, err := types.NewTimeStringFromString(c.Booking.WindowOpen)
	if err != nil {
		return fmt.Errorf("config: invalid booking.window_open: %w", err)
	}
	close, err := types.NewTimeStringFromString(c.Booking.WindowClose)
	if err != nil {
		return fmt.Errorf("config: invalid booking.window_close: %w", err)
	}
	if !open.IsBefore(close) {
		return fmt.Errorf("config: booking.window_open %s must be before booking.window_close %s", open, close)
	}

	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("config: invalid booking.timezone %q: %w", c.Booking.Timezone, err)
	}

	if c.Booking.CompletionSweepInterval <= 0 {
		return fmt.Errorf("config: booking.completion_sweep_interval must be positive, got %d", c.Booking.CompletionSweepInterval)
	}

	return nil
}

// SchedulePolicy materializes the validated booking policy.
func (c BookingConfig) SchedulePolicy() (domain.SchedulePolicy, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return domain.SchedulePolicy{}, fmt.Errorf("config: invalid booking.timezone %q: %w", c.Timezone, err)
	}

	return domain.SchedulePolicy{
		SlotMinutes: c.SlotMinutes,
		WindowOpen:  types.TimeString(c.WindowOpen),
		WindowClose: types.TimeString(c.WindowClose),
		HorizonDays: c.HorizonDays,
		Location:    location,
	}, nil
}
