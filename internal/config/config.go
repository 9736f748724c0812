package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса (config.toml + переменные окружения для секретов)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Uploads  UploadsConfig  `toml:"uploads"`
	Telegram TelegramConfig `toml:"telegram"`
	Mail     MailConfig     `toml:"mail"`
	Reminder ReminderConfig `toml:"reminder"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	AllowedOrigins  []string `toml:"allowed_origins"`
}

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

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AdminAccount struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	FullName string `toml:"full_name"`
}

type AuthConfig struct {
	JWTSecret     string         `toml:"jwt_secret"`
	TokenTTLHours int            `toml:"token_ttl_hours"`
	Admins        []AdminAccount `toml:"admins"`
}

type UploadsConfig struct {
	Dir       string `toml:"dir"`
	URLPrefix string `toml:"url_prefix"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

// MaxSizeBytes лимит размера загружаемого файла в байтах
func (c UploadsConfig) MaxSizeBytes() int64 {
	return int64(c.MaxSizeMB) << 20
}

type TelegramConfig struct {
	Enabled  bool   `toml:"enabled"`
	APIURL   string `toml:"api_url"`
	BotToken string `toml:"bot_token"`
	ChatID   string `toml:"chat_id"`
	Timeout  int    `toml:"timeout"` // секунды
}

type MailConfig struct {
	Enabled  bool     `toml:"enabled"`
	Host     string   `toml:"host"`
	Port     int      `toml:"port"`
	User     string   `toml:"user"`
	Password string   `toml:"password"`
	From     string   `toml:"from"`
	To       []string `toml:"to"`
}

type ReminderConfig struct {
	Enabled bool `toml:"enabled"`
	Hour    int  `toml:"hour"`
	Minute  int  `toml:"minute"`
	Limit   int  `toml:"limit"`
}

// Load читает config.toml, подгружает .env (если есть) и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет секреты из переменных окружения
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"DB_PASSWORD":        &c.Database.Password,
		"JWT_SECRET":         &c.Auth.JWTSecret,
		"TELEGRAM_BOT_TOKEN": &c.Telegram.BotToken,
		"TELEGRAM_CHAT_ID":   &c.Telegram.ChatID,
		"SMTP_PASSWORD":      &c.Mail.Password,
	}

	for env, target := range overrides {
		if value, ok := os.LookupEnv(env); ok && value != "" {
			*target = value
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 3000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "euroasia_booking"
	}
	if c.Auth.TokenTTLHours == 0 {
		c.Auth.TokenTTLHours = 24
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "uploads"
	}
	if c.Uploads.URLPrefix == "" {
		c.Uploads.URLPrefix = "/uploads"
	}
	c.Uploads.URLPrefix = "/" + strings.Trim(c.Uploads.URLPrefix, "/")
	if c.Uploads.MaxSizeMB == 0 {
		c.Uploads.MaxSizeMB = 5
	}
	if c.Telegram.APIURL == "" {
		c.Telegram.APIURL = "https://api.telegram.org"
	}
	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = 10
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.Reminder.Limit == 0 {
		c.Reminder.Limit = 5
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("config: database.host and database.dbname are required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret (or JWT_SECRET) is required")
	}
	for i, admin := range c.Auth.Admins {
		if admin.Username == "" || admin.Password == "" {
			return fmt.Errorf("config: auth.admins[%d] requires username and password", i)
		}
	}
	if c.Telegram.Enabled && (c.Telegram.BotToken == "" || c.Telegram.ChatID == "") {
		return errors.New("config: telegram enabled but bot_token/chat_id not set")
	}
	if c.Mail.Enabled && (c.Mail.Host == "" || len(c.Mail.To) == 0) {
		return errors.New("config: mail enabled but host/to not set")
	}
	if c.Reminder.Hour < 0 || c.Reminder.Hour > 23 || c.Reminder.Minute < 0 || c.Reminder.Minute > 59 {
		return fmt.Errorf("config: invalid reminder time %02d:%02d", c.Reminder.Hour, c.Reminder.Minute)
	}
	return nil
}
