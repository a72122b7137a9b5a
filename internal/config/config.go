package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port   string
	AppEnv string
	DB     DatabaseConfig
	Kafka  KafkaConfig
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the GORM/pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// KafkaConfig holds broker addresses and the consumer group prefix.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// Load reads configuration from the environment. A local .env file is
// loaded first when present so development setups need no exported vars.
func Load() (*ServiceConfig, error) {
	_ = godotenv.Load()

	cfg := &ServiceConfig{
		Port:   ":" + getEnv("SHAREIT_SERVICE_PORT", "8080"),
		AppEnv: getEnv("SHAREIT_APP_ENV", "development"),
		DB: DatabaseConfig{
			Host:     getEnv("SHAREIT_DB_HOST", "localhost"),
			Port:     getEnv("SHAREIT_DB_PORT", "5432"),
			User:     getEnv("SHAREIT_DB_USER", "postgres"),
			Password: os.Getenv("SHAREIT_DB_PASSWORD"),
			DBName:   getEnv("SHAREIT_DB_NAME", "shareit"),
			SSLMode:  getEnv("SHAREIT_DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers:     strings.Split(getEnv("SHAREIT_KAFKA_BROKERS", "localhost:9092"), ","),
			GroupPrefix: getEnv("SHAREIT_KAFKA_GROUP_PREFIX", "shareit-"),
		},
	}

	if cfg.AppEnv != "development" && cfg.DB.Password == "" {
		return nil, fmt.Errorf("SHAREIT_DB_PASSWORD is required outside development")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
