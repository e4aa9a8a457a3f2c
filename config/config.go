package config

import (
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	APIBaseURL      string
	DatabaseURL     string
	SessionSecret   string
	Env             string
	MetricsUser     string
	MetricsPass     string
	UpstreamTimeout time.Duration
	SessionTTL      time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int

	KakaoClientID    string
	KakaoRedirectURI string
}

const defaultSessionSecret = "change_me_in_production"

var ErrDefaultSecret = errors.New("SESSION_SECRET must be set in production")

// Load reads .env (if any) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	return cfg
}

// Validate rejects settings that are only acceptable in development.
func (c Config) Validate() error {
	if c.IsProduction() && c.SessionSecret == defaultSessionSecret {
		return ErrDefaultSecret
	}
	return nil
}

func FromEnv() Config {
	return Config{
		Port:            getEnv("PORT", "3333"),
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:8000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SessionSecret:   getEnv("SESSION_SECRET", defaultSessionSecret),
		Env:             getEnv("APP_ENV", "development"),
		MetricsUser:     os.Getenv("METRICS_USER"),
		MetricsPass:     os.Getenv("METRICS_PASS"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 5*time.Second),
		SessionTTL:      getDuration("SESSION_TTL", 7*24*time.Hour),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getInt("RATE_LIMIT_BURST", 30),

		KakaoClientID:    os.Getenv("KAKAO_CLIENT_ID"),
		KakaoRedirectURI: getEnv("KAKAO_REDIRECT_URI", "http://localhost:3333/auth/kakao/callback"),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// KakaoAuthorizeURL is where the kakao login button sends the browser.
func (c Config) KakaoAuthorizeURL() string {
	q := url.Values{}
	q.Set("client_id", c.KakaoClientID)
	q.Set("redirect_uri", c.KakaoRedirectURI)
	q.Set("response_type", "code")
	return "https://kauth.kakao.com/oauth/authorize?" + q.Encode()
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Config: invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Config: invalid %s %q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		log.Printf("Config: invalid %s %q, using %g", key, raw, fallback)
		return fallback
	}
	return f
}
