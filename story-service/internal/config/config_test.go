package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"story-server/shared/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "story")
	t.Setenv("DB_NAME", "stories")
}

func useSecretsDir(t *testing.T, secrets map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, value := range secrets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(value+"\n"), 0o600))
	}
	prev := utils.SecretsDir
	utils.SecretsDir = dir
	t.Cleanup(func() { utils.SecretsDir = prev })
}

func TestLoadConfig_DefaultsAndSecretFiles(t *testing.T) {
	setRequiredEnv(t)
	useSecretsDir(t, map[string]string{"db_password": "pg-pass", "jwt_secret": "jwt-key"})

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, 5*time.Minute, cfg.DBIdleTimeout)
	assert.Equal(t, MediaBackendLocal, cfg.MediaBackend)
	assert.Equal(t, "story_events", cfg.StoryEventsExchange)
	assert.False(t, cfg.LogSampling)
	assert.True(t, cfg.OtelInsecure)
	assert.Equal(t, "pg-pass", cfg.DBPassword)
	assert.Equal(t, "jwt-key", cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.GetAllowedOrigins())

	db := cfg.Database()
	assert.Equal(t, "postgres://story:pg-pass@db:5432/stories?sslmode=disable", db.DSN())
}

func TestLoadConfig_SecretsFallBackToEnv(t *testing.T) {
	setRequiredEnv(t)
	useSecretsDir(t, nil)
	t.Setenv("DB_PASSWORD", "env-pass")
	t.Setenv("JWT_SECRET", "env-jwt")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env-pass", cfg.DBPassword)
	assert.Equal(t, "env-jwt", cfg.JWTSecret)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	setRequiredEnv(t)
	useSecretsDir(t, map[string]string{"db_password": "pg-pass"})
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	useSecretsDir(t, map[string]string{"db_password": "x", "jwt_secret": "y"})
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_NAME")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	useSecretsDir(t, map[string]string{"db_password": "x", "jwt_secret": "y"})
	// Registered so t restores them after godotenv sets them.
	for _, key := range []string{"DB_HOST", "DB_USER", "DB_NAME", "STORY_SERVER_PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DB_HOST=envfile-db\nDB_USER=u\nDB_NAME=n\nSTORY_SERVER_PORT=9090\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "envfile-db", cfg.DBHost)
	assert.Equal(t, "9090", cfg.Port)
}

func TestValidate(t *testing.T) {
	base := Config{MediaBackend: MediaBackendLocal, UploadDir: "./uploads", OtelSampleRatio: 1, MaxUploadBytes: 1}
	require.NoError(t, base.Validate())

	gcsMissingBucket := base
	gcsMissingBucket.MediaBackend = MediaBackendGCS
	assert.Error(t, gcsMissingBucket.Validate())

	gcs := gcsMissingBucket
	gcs.GCSBucket = "media"
	assert.NoError(t, gcs.Validate())

	unknown := base
	unknown.MediaBackend = "s3"
	assert.Error(t, unknown.Validate())

	badRatio := base
	badRatio.OtelSampleRatio = 1.5
	assert.Error(t, badRatio.Validate())
}

func TestGetAllowedOrigins(t *testing.T) {
	cfg := Config{CORSAllowedOrigins: "https://a.example, https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetAllowedOrigins())

	cfg.CORSAllowedOrigins = " "
	assert.Nil(t, cfg.GetAllowedOrigins())
}
