package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnMissingFile_ShouldReturnDefaults(t *testing.T) {
	s, err := NewFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://www.cbr-xml-daily.ru/daily_json.js", s.Cbr().URL())
	assert.Equal(t, time.Duration(0), s.Cbr().Timeout())
	assert.Equal(t, float32(200), s.App().FieldWidth())
	assert.Equal(t, "sqlite3", s.Database().Driver())
	assert.Equal(t, "bicycle_shop.db", s.Database().Path())
	assert.Empty(t, s.Metrics().Addr())
}

func Test_OnPartialFile_ShouldOverrideOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
cbr:
  timeout: 15s
database:
  path: /tmp/shop.db
metrics:
  addr: 127.0.0.1:9100
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	s, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, s.Cbr().Timeout())
	assert.Equal(t, "https://www.cbr-xml-daily.ru/daily_json.js", s.Cbr().URL())
	assert.Equal(t, "/tmp/shop.db", s.Database().Path())
	assert.Equal(t, "sqlite3", s.Database().Driver())
	assert.Equal(t, "127.0.0.1:9100", s.Metrics().Addr())
}

func Test_OnBrokenYAML_ShouldFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cbr: [unclosed"), 0o600))

	_, err := NewFromFile(path)
	assert.Error(t, err)
}

func Test_OnConfigPathEnv_ShouldReadThatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  field-width: 320\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(configPathEnv, path)

	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, float32(320), s.App().FieldWidth())
}

func Test_OnShippedConfig_ShouldKeepRequestUnbounded(t *testing.T) {
	s, err := NewFromFile(filepath.Join("..", "..", configFile))
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), s.Cbr().Timeout())
	assert.Equal(t, "https://www.cbr-xml-daily.ru/daily_json.js", s.Cbr().URL())
	assert.Equal(t, "bicycle_shop.db", s.Database().Path())
	assert.Equal(t, float32(200), s.App().FieldWidth())
}

func Test_OnCurrencyKey_ShouldIgnoreIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  currency: EUR\n"), 0o600))

	s, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, AppConfig{Width: 200}, *s.App())
}
