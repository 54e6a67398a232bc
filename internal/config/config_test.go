package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_url": "postgres://localhost/taxonomy",
		"port": 9090,
		"reprocess_workers": 8,
		"verbose": true
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/taxonomy", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 8, cfg.ReprocessWorkers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := FromEnv()
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{ReprocessWorkers: -2}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://explicit/db"}
	merged := cfg.MergeWithDefaults(Config{
		DatabaseURL:      "postgres://default/db",
		APIKey:           "default-key",
		Port:             9000,
		ReprocessWorkers: 4,
	})

	assert.Equal(t, "postgres://explicit/db", merged.DatabaseURL)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, 4, merged.ReprocessWorkers)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "72")
	cfg, err = NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestAdminKeyRoundTrip(t *testing.T) {
	cfg := &AdminKeyConfig{BcryptCost: 10}
	hash, err := cfg.HashKey("super-secret-key")
	require.NoError(t, err)
	cfg.KeyHash = hash

	assert.True(t, cfg.VerifyKey("super-secret-key"))
	assert.False(t, cfg.VerifyKey("wrong-key"))
	assert.False(t, cfg.VerifyKey(""))
}

func TestNewAdminKeyConfig(t *testing.T) {
	t.Setenv("ADMIN_KEY_HASH", "")
	_, err := NewAdminKeyConfig()
	assert.Error(t, err)

	t.Setenv("ADMIN_KEY_HASH", "$2a$10$somethinghashed")
	t.Setenv("BCRYPT_COST", "")
	cfg, err := NewAdminKeyConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)

	t.Setenv("BCRYPT_COST", "9")
	_, err = NewAdminKeyConfig()
	assert.Error(t, err, "cost below range is rejected")
}
