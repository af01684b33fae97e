package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	str2duration "github.com/xhit/go-str2duration/v2"
)

const (
	ProviderBackend = "backend"
	ProviderDemo    = "demo"
)

type Config struct {
	Provider          string
	APIBaseURL        string
	RequestTimeout    time.Duration
	DebounceDelay     time.Duration
	ErrorMessageTTL   time.Duration
	SuccessMessageTTL time.Duration
	DefaultMinROE     float64
	DefaultYears      int
	DefaultLimit      int
	DemoLatency       time.Duration
	Log               LogConfig
	Database          DatabaseConfig
}

type LogConfig struct {
	File           string
	Level          string
	TelegramOutput bool
	TelegramToken  string
	TelegramChatId string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads envFile into the process environment (a missing file is not an
// error) and builds the configuration from it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	r := envReader{}
	cfg := &Config{
		Provider:          r.string("provider", ProviderBackend),
		APIBaseURL:        r.string("apiBaseUrl", "http://localhost:8000"),
		RequestTimeout:    r.duration("requestTimeout", 0),
		DebounceDelay:     r.duration("debounceDelay", 800*time.Millisecond),
		ErrorMessageTTL:   r.duration("errorMessageTTL", 5*time.Second),
		SuccessMessageTTL: r.duration("successMessageTTL", 3*time.Second),
		DefaultMinROE:     r.float("defaultMinRoe", 15),
		DefaultYears:      r.int("defaultYears", 10),
		DefaultLimit:      r.int("defaultLimit", 20),
		DemoLatency:       r.duration("demoLatency", 0),
		Log: LogConfig{
			File:           r.string("logFile", ""),
			Level:          r.string("logLevel", "info"),
			TelegramOutput: r.bool("telegramOutput", false),
			TelegramToken:  r.string("telegramToken", ""),
			TelegramChatId: r.string("telegramChatId", ""),
		},
		Database: DatabaseConfig{
			Enabled:  r.bool("enableDatabaseRecording", false),
			Host:     r.string("databaseHost", "localhost"),
			Port:     r.string("databasePort", "3306"),
			Name:     r.string("databaseName", ""),
			User:     r.string("databaseUser", ""),
			Password: r.string("databasePassword", ""),
		},
	}
	if r.err != nil {
		return nil, r.err
	}
	return cfg, nil
}

// envReader keeps the first parse error so FromEnv can read every key in one go.
type envReader struct {
	err error
}

func (r *envReader) string(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := str2duration.ParseDuration(value)
	if err != nil {
		r.fail(key, value, err)
		return fallback
	}
	return parsed
}

func (r *envReader) float(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.fail(key, value, err)
		return fallback
	}
	return parsed
}

func (r *envReader) int(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		r.fail(key, value, err)
		return fallback
	}
	return parsed
}

func (r *envReader) bool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		r.fail(key, value, err)
		return fallback
	}
	return parsed
}

func (r *envReader) fail(key string, value string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
}
