package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		UI
		Auth
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Auth struct {
		SessionSecret   string // hex-encoded; auto-generated at startup if empty
		SessionLifetime time.Duration
		BcryptCost      int
		SecureCookies   bool // set to false for local dev without HTTPS
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	_ = godotenv.Load() // optionally load environment file

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")

	// Auth defaults
	v.SetDefault("session_secret", "") // auto-generated if empty
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("bcrypt_cost", 12)
	v.SetDefault("secure_cookies", true)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Auth: Auth{
			SessionSecret:   v.GetString("SESSION_SECRET"),
			SessionLifetime: v.GetDuration("SESSION_LIFETIME"),
			BcryptCost:      v.GetInt("BCRYPT_COST"),
			SecureCookies:   v.GetBool("SECURE_COOKIES"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
