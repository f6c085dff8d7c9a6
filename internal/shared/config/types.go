package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	UploadDir      string   `mapstructure:"upload_dir"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// CacheConfig holds TTLs for the read-through ticket caches. Frequently
// changing views get short TTLs, reference data long ones.
type CacheConfig struct {
	TicketDetailTTLSeconds    int `mapstructure:"ticket_detail_ttl_seconds"`
	UserListTTLSeconds        int `mapstructure:"user_list_ttl_seconds"`
	AdminListTTLSeconds       int `mapstructure:"admin_list_ttl_seconds"`
	DashboardTTLSeconds       int `mapstructure:"dashboard_ttl_seconds"`
	CategoriesTTLSeconds      int `mapstructure:"categories_ttl_seconds"`
	AvailableAdminsTTLSeconds int `mapstructure:"available_admins_ttl_seconds"`
}

func (c *CacheConfig) TicketDetailTTL() time.Duration {
	return secondsOr(c.TicketDetailTTLSeconds, 2*time.Minute)
}

func (c *CacheConfig) UserListTTL() time.Duration {
	return secondsOr(c.UserListTTLSeconds, 3*time.Minute)
}

func (c *CacheConfig) AdminListTTL() time.Duration {
	return secondsOr(c.AdminListTTLSeconds, 5*time.Minute)
}

func (c *CacheConfig) DashboardTTL() time.Duration {
	return secondsOr(c.DashboardTTLSeconds, 3*time.Minute)
}

func (c *CacheConfig) CategoriesTTL() time.Duration {
	return secondsOr(c.CategoriesTTLSeconds, time.Hour)
}

func (c *CacheConfig) AvailableAdminsTTL() time.Duration {
	return secondsOr(c.AvailableAdminsTTLSeconds, 30*time.Minute)
}

func secondsOr(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
