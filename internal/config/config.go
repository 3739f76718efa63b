package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	SMTP     SMTPConfig
	Reminder ReminderConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port      int
	RateRPS   float64
	RateBurst int
}

// DatabaseConfig supports two modes: a single connection string (hosted
// deployments, TLS required but server certs unverified) or discrete
// host/port parameters for local development.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type ReminderConfig struct {
	Interval    time.Duration
	MetricsPort int
}

type LogConfig struct {
	Level   string
	Console bool
}

// Load reads configuration from the environment, with an optional
// config.yaml for local overrides. Environment keys follow the original
// deployment: DATABASE_URL, DB_HOST, DB_PORT, DB_USER, DB_PASSWORD,
// DB_NAME, JWT_SECRET, PORT.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 5000)
	v.SetDefault("rate_rps", 50.0)
	v.SetDefault("rate_burst", 100)
	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "crm_patient_db")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_expiry_minutes", 60)
	v.SetDefault("cors_allow_origins", "*")
	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_user", "")
	v.SetDefault("smtp_password", "")
	v.SetDefault("smtp_from", "reminders@clinic.local")
	v.SetDefault("reminder_interval_hours", 24)
	v.SetDefault("reminder_metrics_port", 9091)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_console", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      v.GetInt("port"),
			RateRPS:   v.GetFloat64("rate_rps"),
			RateBurst: v.GetInt("rate_burst"),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("database_url"),
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt_secret"),
			Expiry: time.Duration(v.GetInt("jwt_expiry_minutes")) * time.Minute,
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetStringSlice("cors_allow_origins"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp_host"),
			Port:     v.GetInt("smtp_port"),
			User:     v.GetString("smtp_user"),
			Password: v.GetString("smtp_password"),
			From:     v.GetString("smtp_from"),
		},
		Reminder: ReminderConfig{
			Interval:    time.Duration(v.GetInt("reminder_interval_hours")) * time.Hour,
			MetricsPort: v.GetInt("reminder_metrics_port"),
		},
		Log: LogConfig{
			Level:   v.GetString("log_level"),
			Console: v.GetBool("log_console"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}
