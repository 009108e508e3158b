package utils

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultConfigFile = "config.yaml"

type Config struct {
	// Application
	AppPort           string `yaml:"APP_PORT"`
	AppEnv            string `yaml:"APP_ENV"`
	CORSAllowOrigins  string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitPerSec   int    `yaml:"RATE_LIMIT_PER_SECOND"`
	AccessLogFilePath string `yaml:"ACCESS_LOG_FILE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:           "5000",
		AppEnv:            "development",
		CORSAllowOrigins:  "*",
		RateLimitPerSec:   10,
		AccessLogFilePath: "./logs/app.log",
		DBPort:            "5432",
		GeminiModel:       "gemini-2.5-flash",
	}
}

// LoadConfig reads .env (if present) and config.yaml, then lets environment
// variables override any YAML value.
func LoadConfig() {
	if err := LoadConfigFrom(DefaultConfigFile); err != nil {
		log.Printf("Error loading config: %s\n", err)
	}
}

func LoadConfigFrom(path string) error {
	_ = godotenv.Load()

	cfg := defaultConfig()
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return err
		}
	case errors.Is(err, os.ErrNotExist):
		// environment only
	default:
		return err
	}

	for key, field := range cfg.stringFields() {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}
	if value, ok := os.LookupEnv("RATE_LIMIT_PER_SECOND"); ok {
		if n, err := strconv.Atoi(value); err == nil {
			cfg.RateLimitPerSec = n
		}
	}

	config = cfg
	return nil
}

func (c *Config) stringFields() map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"APP_ENV":            &c.AppEnv,
		"CORS_ALLOW_ORIGINS": &c.CORSAllowOrigins,
		"ACCESS_LOG_FILE":    &c.AccessLogFilePath,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"JWT_SECRET":         &c.JWTSecret,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
		"GEMINI_API_KEY":     &c.GeminiAPIKey,
		"GEMINI_MODEL":       &c.GeminiModel,
	}
}

func GetConfig(key string) string {
	if key == "RATE_LIMIT_PER_SECOND" {
		return strconv.Itoa(config.RateLimitPerSec)
	}
	if field, ok := config.stringFields()[key]; ok {
		return *field
	}
	return ""
}

func GetRateLimit() int {
	if config.RateLimitPerSec <= 0 {
		return 10
	}
	return config.RateLimitPerSec
}
