package utils

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Store    StoreConfig
	Redis    RedisConfig
	Session  SessionConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// StoreConfig selects the review store backend.
type StoreConfig struct {
	Driver   string // "postgres" or "mongo"
	MongoURI string
	MongoDB  string
}

type RedisConfig struct {
	Addr         string
	Password     string
	FeedCacheTTL time.Duration
}

type SessionConfig struct {
	Secret string
}

type HTTPConfig struct {
	SubmitRatePerMinute int
	CORSOrigins         []string
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// DefaultSessionSecret is only fit for local development.
const DefaultSessionSecret = "cinereview-dev-session-secret"

// LoadConfig reads .env when present and lets real environment variables override it.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "cinereview")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("MONGO_DB", "cinereview")
	v.SetDefault("FEED_CACHE_TTL", "30s")
	v.SetDefault("SESSION_SECRET", DefaultSessionSecret)
	v.SetDefault("SUBMIT_RATE_PER_MINUTE", 10)
	v.SetDefault("CORS_ORIGINS", "*")

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Store: StoreConfig{
			Driver:   strings.ToLower(v.GetString("STORE_DRIVER")),
			MongoURI: v.GetString("MONGO_URI"),
			MongoDB:  v.GetString("MONGO_DB"),
		},
		Redis: RedisConfig{
			Addr:         v.GetString("REDIS_ADDR"),
			Password:     v.GetString("REDIS_PASSWORD"),
			FeedCacheTTL: v.GetDuration("FEED_CACHE_TTL"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
		},
		HTTP: HTTPConfig{
			SubmitRatePerMinute: v.GetInt("SUBMIT_RATE_PER_MINUTE"),
			CORSOrigins:         splitList(v.GetString("CORS_ORIGINS")),
		},
	}

	return config, nil
}

// UsesDefaultSessionSecret reports whether flash cookies are signed with the
// built-in development secret.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.Session.Secret == DefaultSessionSecret
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
