package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecretsDir(t *testing.T) string {
	dir := t.TempDir()
	old := SecretsDir
	SecretsDir = dir
	t.Cleanup(func() { SecretsDir = old })
	return dir
}

func TestReadSecret(t *testing.T) {
	dir := withSecretsDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("  s3cr3t\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), []byte(" \n"), 0o600))

	got, err := ReadSecret("jwt_secret")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", got)

	_, err = ReadSecret("empty")
	assert.Error(t, err)

	_, err = ReadSecret("missing")
	assert.Error(t, err)
}

func TestReadSecretOrEnv(t *testing.T) {
	dir := withSecretsDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("from-file"), 0o600))
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "jwt-from-env")

	got, err := ReadSecretOrEnv("db_password", "DB_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "from-file", got)

	got, err = ReadSecretOrEnv("jwt_secret", "JWT_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "jwt-from-env", got)

	t.Setenv("JWT_SECRET", "")
	_, err = ReadSecretOrEnv("jwt_secret", "JWT_SECRET")
	assert.Error(t, err)
}
