package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the storage driver. Driver "mysql" uses the
// host/port/credential fields, driver "sqlite" (or "sqlite3") uses Path.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	// MigrationStrategy is "goose" (versioned scripts) or "gorm" (AutoMigrate).
	MigrationStrategy string `mapstructure:"migration_strategy"`
}

// IsSQLiteDriver reports whether driver names the sqlite backend, ignoring case.
func IsSQLiteDriver(driver string) bool {
	return strings.EqualFold(driver, "sqlite") || strings.EqualFold(driver, "sqlite3")
}

func (d *DatabaseConfig) IsSQLite() bool {
	return IsSQLiteDriver(d.Driver)
}

// GetDSN builds the driver DSN. MySQL reports matched rather than changed
// rows (clientFoundRows) so an update writing identical values still counts.
func (d *DatabaseConfig) GetDSN() string {
	if d.IsSQLite() {
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", d.Path)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC&clientFoundRows=true",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type SessionConfig struct {
	DefaultExpDays  int `mapstructure:"default_exp_days"`
	RememberExpDays int `mapstructure:"remember_exp_days"`
	// CleanupIntervalMinutes controls how often expired sessions are purged.
	CleanupIntervalMinutes int `mapstructure:"cleanup_interval_minutes"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Session  SessionConfig  `mapstructure:"session"`
	Cookie   CookieConfig   `mapstructure:"cookie"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig limits sign-in and sign-up attempts per client IP.
type RateLimitConfig struct {
	AuthRequestsPerMinute int `mapstructure:"auth_requests_per_minute"`
}

type FeedConfig struct {
	PageSize    int `mapstructure:"page_size"`
	MaxPageSize int `mapstructure:"max_page_size"`
}

type MediaConfig struct {
	Root        string `mapstructure:"root"`
	URLPrefix   string `mapstructure:"url_prefix"`
	MaxUploadMB int    `mapstructure:"max_upload_mb"`
}
