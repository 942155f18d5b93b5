package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Dashboard DashboardConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Port           string
	AppName        string
	AllowedOrigins []string
}

type AppConfig struct {
	LogLevel      string
	SeedData      bool
	AdminUsername string
	AdminPassword string
}

type DashboardConfig struct {
	TrendMonths int
}

type CacheConfig struct {
	Enabled             bool
	RedisURL            string
	RedisHost           string
	RedisPort           string
	RedisPassword       string
	RedisDB             int
	DashboardTTLSeconds int
}

// Load reads .env (when present) and the process environment. Each call
// builds its own viper instance so tests can load independent configs.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("APP_NAME", "Pharma BI Dashboard v1.0")
	v.SetDefault("SERVER_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("DASHBOARD_TREND_MONTHS", 9)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_DASHBOARD_TTL_SECONDS", 60)

	v.AutomaticEnv()

	trendMonths := v.GetInt("DASHBOARD_TREND_MONTHS")
	if trendMonths <= 0 {
		trendMonths = 9
	}

	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			AppName:        v.GetString("APP_NAME"),
			AllowedOrigins: splitList(v.GetString("SERVER_ALLOWED_ORIGINS")),
		},
		App: AppConfig{
			LogLevel:      v.GetString("LOG_LEVEL"),
			SeedData:      v.GetBool("SEED_DATA"),
			AdminUsername: v.GetString("ADMIN_USERNAME"),
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
		},
		Dashboard: DashboardConfig{
			TrendMonths: trendMonths,
		},
		Cache: CacheConfig{
			Enabled:             v.GetBool("CACHE_ENABLED"),
			RedisURL:            v.GetString("REDIS_URL"),
			RedisHost:           v.GetString("REDIS_HOST"),
			RedisPort:           v.GetString("REDIS_PORT"),
			RedisPassword:       v.GetString("REDIS_PASSWORD"),
			RedisDB:             v.GetInt("REDIS_DB"),
			DashboardTTLSeconds: v.GetInt("CACHE_DASHBOARD_TTL_SECONDS"),
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
