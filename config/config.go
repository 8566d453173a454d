package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Credentials are the four strings the connection provider needs.
type Credentials struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type Config struct {
	DBDriver             string      `yaml:"driver"`
	DB                   Credentials `yaml:"db"`
	DBPort               int         `yaml:"port"`
	DBSSLMode            string      `yaml:"sslmode"`
	ServerPort           string      `yaml:"server_port"`
	JWTSecret            string      `yaml:"jwt_secret"`
	JWTExpiry            int         `yaml:"jwt_expiry"` // в часах
	OperatorEmail        string      `yaml:"operator_email"`
	OperatorPasswordHash string      `yaml:"operator_password_hash"`
	LogLevel             string      `yaml:"log_level"`
	LogFormat            string      `yaml:"log_format"`
}

func defaults() *Config {
	return &Config{
		DBDriver:      "postgres",
		DB:            Credentials{Host: "localhost", User: "max", Password: "123456", Database: "school"},
		DBSSLMode:     "disable",
		ServerPort:    "8080",
		JWTSecret:     "your-secret-key-change-in-production",
		JWTExpiry:     24,
		OperatorEmail: "admin@example.com",
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// Load builds the configuration from, in increasing precedence: defaults,
// the legacy HOST/USERNAME/PASSWORD variables, the YAML file at path
// (skipped when path is empty) and the DB_* and other variables. A .env
// file in the working directory fills the environment first.
func Load(path string) (*Config, error) {
	cfg := defaults()

	// .env не обязателен, переменные окружения важнее
	_ = godotenv.Load()

	// USERNAME есть в окружении Windows всегда, поэтому ниже YAML
	cfg.DB.Host = getEnv("HOST", cfg.DB.Host)
	cfg.DB.User = getEnv("USERNAME", cfg.DB.User)
	cfg.DB.Password = getEnv("PASSWORD", cfg.DB.Password)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
	}

	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DB.Host = getEnv("DB_HOST", cfg.DB.Host)
	cfg.DB.User = getEnv("DB_USER", cfg.DB.User)
	cfg.DB.Password = getEnv("DB_PASSWORD", cfg.DB.Password)
	cfg.DB.Database = getEnv("DB_NAME", cfg.DB.Database)
	cfg.DBPort = getEnvAsInt("DB_PORT", cfg.DBPort)
	cfg.DBSSLMode = getEnv("DB_SSLMODE", cfg.DBSSLMode)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTExpiry = getEnvAsInt("JWT_EXPIRY", cfg.JWTExpiry)
	cfg.OperatorEmail = getEnv("OPERATOR_EMAIL", cfg.OperatorEmail)
	cfg.OperatorPasswordHash = getEnv("OPERATOR_PASSWORD_HASH", cfg.OperatorPasswordHash)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
