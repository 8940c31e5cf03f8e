package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "localhost", cfg.DB.Host)
	require.Equal(t, "flowercatalog", cfg.DB.Name)
	require.Equal(t, 25, cfg.DB.MaxOpenConns)
	require.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	require.Equal(t, 20, cfg.Seed.Orders)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "sekrit")
	t.Setenv("SEED_ORDERS", "50")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, "sekrit", cfg.Auth.JWTSecret)
	require.Equal(t, 50, cfg.Seed.Orders)
}

func TestDSN(t *testing.T) {
	db := DBConfig{
		Host: "localhost", Port: "5432", User: "postgres",
		Password: "pw", Name: "flowercatalog", SSLMode: "disable",
	}
	require.Equal(t,
		"host=localhost user=postgres password=pw dbname=flowercatalog port=5432 sslmode=disable",
		db.DSN())

	db.URL = "postgres://u:p@host:5432/db"
	require.Equal(t, "postgres://u:p@host:5432/db", db.DSN())
}
