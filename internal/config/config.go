package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	CORSOrigins string
	LogJSON     bool
	LogDebug    bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment, with an optional .env file
// for local development. Redis and Gemini settings are optional so the server
// can start in degraded mode (cache bypass, advisor fallbacks).
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_name", "MentorMatch AI")
	v.SetDefault("app_env", "development")
	v.SetDefault("http_port", "8080")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("log_json", false)
	v.SetDefault("log_debug", false)

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_ssl_mode", "disable")

	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")

	v.SetDefault("gemini_model", "gemini-2.5-flash")

	cfg := Config{
		App: AppConfig{
			AppName:     v.GetString("app_name"),
			Environment: v.GetString("app_env"),
			HTTPPort:    v.GetString("http_port"),
			CORSOrigins: v.GetString("cors_origins"),
			LogJSON:     v.GetBool("log_json"),
			LogDebug:    v.GetBool("log_debug"),
		},
		Database: DatabaseConfig{
			DBHost:         v.GetString("db_host"),
			DBPort:         v.GetString("db_port"),
			DBName:         v.GetString("db_name"),
			DBUser:         v.GetString("db_user"),
			DBPassword:     v.GetString("db_password"),
			DBSSLMode:      v.GetString("db_ssl_mode"),
			ConnectTimeout: v.GetDuration("db_connect_timeout"),
			PoolMaxConns:   v.GetInt32("db_pool_max_conns"),
			PoolMinConns:   v.GetInt32("db_pool_min_conns"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis_host"),
			Port:     v.GetString("redis_port"),
			Password: v.GetString("redis_password"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("gemini_api_key"),
			Model:  v.GetString("gemini_model"),
		},
	}

	var missing []string
	if strings.TrimSpace(cfg.Database.DBName) == "" {
		missing = append(missing, "DB_NAME")
	}
	if strings.TrimSpace(cfg.Database.DBUser) == "" {
		missing = append(missing, "DB_USER")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// CORSOriginList splits the configured origins on commas, trimming blanks.
func (a AppConfig) CORSOriginList() []string {
	parts := strings.Split(a.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
