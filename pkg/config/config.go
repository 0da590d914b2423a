package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App   AppConfig
	Store StoreConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
	AI    AIConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig durable state location. Each collection is kept as one record
// in a single SQLite file; an empty path keeps everything in memory.
type StoreConfig struct {
	Path string
}

// JWTConfig session token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AIConfig settings for the external text-generation service. An empty API
// key disables the assistant; calls then return their local fallbacks.
type AIConfig struct {
	GeminiAPIKey  string
	GeminiModel   string // chat + drafting model
	AnalysisModel string // heavier model for the business analysis
	SearchModel   string // web-grounded trend search model
}

// Load reads configuration from environment variables (and optionally a
// file). Env vars take priority. Expected names: APP_ENV, HTTP_PORT,
// JWT_SECRET, STORE_PATH, GEMINI_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore if missing

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore if missing

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "eesaa-retail"),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "eesaa.db"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "eesaa-retail"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AI: AIConfig{
			GeminiAPIKey:  getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:   getString(v, "GEMINI_MODEL", "gemini-3-flash-preview"),
			AnalysisModel: getString(v, "GEMINI_ANALYSIS_MODEL", "gemini-3-pro-preview"),
			SearchModel:   getString(v, "GEMINI_SEARCH_MODEL", "gemini-3-flash-preview"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
