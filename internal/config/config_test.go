package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.yaml")
	envPath := filepath.Join(dir, "app.env")

	if err := os.WriteFile(cfgPath, []byte("env: \"local\"\nhttp_server:\n  host: \"localhost\"\n  port: 8080\n  timeout: 4s\npostgres:\n  host: \"localhost\"\n  port: 5432\n  user: ${POSTGRES_USER}\n  password: ${POSTGRES_PASSWORD}\n  db: ${POSTGRES_DB}\nvault:\n  key: ${VAULT_KEY}\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := os.WriteFile(envPath, []byte("POSTGRES_USER=ghost_user\nPOSTGRES_PASSWORD=ghost_password\nPOSTGRES_DB=ghost_db\n"), 0o600); err != nil {
		t.Fatalf("failed to write env: %v", err)
	}

	t.Setenv("CONFIG_PATH", cfgPath)
	t.Setenv("CONFIG_PG_PATH", envPath)
	t.Setenv("POSTGRES_USER", "ghost_user")
	t.Setenv("POSTGRES_PASSWORD", "ghost_password")
	t.Setenv("POSTGRES_DB", "ghost_db")
	t.Setenv("VAULT_KEY", "0000000000000000000000000000000000000000000000000000000000000000")

	cfg := LoadConfig()

	assert.Equal(t, Config{
		Env: "local",
		Server: ServerConfig{
			Host:    "localhost",
			Port:    8080,
			Timeout: 4 * time.Second,
		},
		Pg: PgConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "ghost_user",
			Password: "ghost_password",
			Db:       "ghost_db",
		},
		Vault: VaultConfig{
			Key: "0000000000000000000000000000000000000000000000000000000000000000",
		},
	}, *cfg)
}
