package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	APIPrefix        string `yaml:"API_PREFIX"`
	RateLimitMax     string `yaml:"RATE_LIMIT_MAX"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Database configuration
	DatabaseURL    string `yaml:"DATABASE_URL"`
	DBHost         string `yaml:"DB_HOST"`
	DBPort         string `yaml:"DB_PORT"`
	DBUser         string `yaml:"DB_USER"`
	DBPassword     string `yaml:"DB_PASSWORD"`
	DBName         string `yaml:"DB_NAME"`
	DBSSLMode      string `yaml:"DB_SSLMODE"`
	DBTimeout      string `yaml:"DB_TIMEOUT"`
	DBMaxOpenConns string `yaml:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns string `yaml:"DB_MAX_IDLE_CONNS"`

	// Logging configuration
	LogLevel string `yaml:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:          "8000",
		APIPrefix:        "/api/v1",
		RateLimitMax:     "20",
		CORSAllowOrigins: "*",
		DBHost:           "localhost",
		DBPort:           "5432",
		DBUser:           "postgres",
		DBName:           "riocaja_smart",
		DBSSLMode:        "disable",
		DBTimeout:        "5s",
		DBMaxOpenConns:   "10",
		DBMaxIdleConns:   "5",
		LogLevel:         "info",
		LogFile:          "./logs/app.log",
	}
}

// LoadConfig resets the configuration to its defaults and layers, in order,
// the YAML file at path, a .env file in the working directory and the
// process environment on top. Missing files are not an error.
func LoadConfig(path string) {
	config = defaultConfig()

	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Infof("config file %s not found, using defaults and environment", path)
		case err != nil:
			log.Errorf("Error reading YAML file: %s", err)
		default:
			fromFile := Config{}
			if err := yaml.Unmarshal(file, &fromFile); err != nil {
				log.Errorf("Error parsing YAML file: %s", err)
			} else {
				merge(&config, fromFile)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Error loading .env file: %s", err)
	}

	for _, key := range configKeys {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*fieldFor(&config, key) = value
		}
	}
}

var configKeys = []string{
	"APP_PORT", "API_PREFIX", "RATE_LIMIT_MAX", "CORS_ALLOW_ORIGINS",
	"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_SSLMODE", "DB_TIMEOUT", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"LOG_LEVEL", "LOG_FILE",
}

func merge(dst *Config, src Config) {
	for _, key := range configKeys {
		if value := *fieldFor(&src, key); value != "" {
			*fieldFor(dst, key) = value
		}
	}
}

func fieldFor(c *Config, key string) *string {
	switch key {
	case "APP_PORT":
		return &c.AppPort
	case "API_PREFIX":
		return &c.APIPrefix
	case "RATE_LIMIT_MAX":
		return &c.RateLimitMax
	case "CORS_ALLOW_ORIGINS":
		return &c.CORSAllowOrigins
	case "DATABASE_URL":
		return &c.DatabaseURL
	case "DB_HOST":
		return &c.DBHost
	case "DB_PORT":
		return &c.DBPort
	case "DB_USER":
		return &c.DBUser
	case "DB_PASSWORD":
		return &c.DBPassword
	case "DB_NAME":
		return &c.DBName
	case "DB_SSLMODE":
		return &c.DBSSLMode
	case "DB_TIMEOUT":
		return &c.DBTimeout
	case "DB_MAX_OPEN_CONNS":
		return &c.DBMaxOpenConns
	case "DB_MAX_IDLE_CONNS":
		return &c.DBMaxIdleConns
	case "LOG_LEVEL":
		return &c.LogLevel
	case "LOG_FILE":
		return &c.LogFile
	default:
		return nil
	}
}

func GetConfig(key string) string {
	field := fieldFor(&config, key)
	if field == nil {
		return ""
	}
	return *field
}

// GetDurationConfig falls back to def when the value is missing or not a
// valid duration.
func GetDurationConfig(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(GetConfig(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func GetIntConfig(key string, def int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
