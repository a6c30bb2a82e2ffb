package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimal = `
db:
  driver: memory
supabase:
  url: https://demo.supabase.co
  anon_key: anon
`

func TestLoadAppliesDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 3000, c.App.HTTP.Port)
	assert.Equal(t, int64(1<<20), c.App.HTTP.MaxBodyBytes)
	assert.Equal(t, "memory", c.DB.Driver)
	assert.Equal(t, "anon", c.Supabase.AnonKey)
	assert.Equal(t, 10, c.Supabase.TimeoutSec)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("APP_APP_HTTP_PORT", "8088")
	t.Setenv("APP_SUPABASE_JWT_SECRET", "s3cret")

	c, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 8088, c.App.HTTP.Port)
	assert.Equal(t, "s3cret", c.Supabase.JWTSecret)
}

func TestLoadRejectsBadDriver(t *testing.T) {
	_, err := Load(writeConfig(t, `
db:
  driver: sqlite
supabase:
  url: https://demo.supabase.co
  anon_key: anon
`))
	assert.EqualError(t, err, `config: unsupported db.driver "sqlite"`)
}

func TestLoadRequiresDSN(t *testing.T) {
	_, err := Load(writeConfig(t, `
db:
  driver: postgres
supabase:
  url: https://demo.supabase.co
  anon_key: anon
`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
