package config

import (
	"time"

	"github.com/spf13/viper"
)

// StorageMode selects the fairytale store backend.
type StorageMode string

const (
	StorageSQLite StorageMode = "sqlite" // persisted store (default)
	StorageMemory StorageMode = "memory" // in-memory fairytale store
)

const DefaultDatabasePath = "./taleshelf.db"

type (
	Config struct {
		HTTP
		Database
		UI
		Session
		CSRF
		Cleanup
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path    string
		Storage StorageMode
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Session struct {
		Lifetime      time.Duration
		SecureCookies bool
	}
	CSRF struct {
		Secret string // CSRF protection disabled when empty
	}
	Cleanup struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3003)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("storage", string(StorageSQLite))
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("session_secure_cookies", false)
	v.SetDefault("csrf_secret", "")
	v.SetDefault("cleanup_enabled", false)
	v.SetDefault("cleanup_schedule", "0 3 * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path:    v.GetString("DATABASE_PATH"),
			Storage: StorageMode(v.GetString("STORAGE")),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Session: Session{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SESSION_SECURE_COOKIES"),
		},
		CSRF: CSRF{
			Secret: v.GetString("CSRF_SECRET"),
		},
		Cleanup: Cleanup{
			Enabled:  v.GetBool("CLEANUP_ENABLED"),
			Schedule: v.GetString("CLEANUP_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
