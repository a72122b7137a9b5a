package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("SHAREIT_APP_ENV", "development")
	t.Setenv("SHAREIT_DB_PASSWORD", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_RequiresPasswordOutsideDevelopment(t *testing.T) {
	t.Setenv("SHAREIT_APP_ENV", "production")
	t.Setenv("SHAREIT_DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_SplitsBrokerList(t *testing.T) {
	t.Setenv("SHAREIT_APP_ENV", "development")
	t.Setenv("SHAREIT_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", db.DSN())
}
