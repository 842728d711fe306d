package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
common:
  log:
    level: debug
  report:
    locale: pt-BR
  seed:
    - name: Alice
      email: alice@email.com
      age: 28
    - name: Admin
      email: admin@email.com
      age: 40
      admin: true
    - name: NoAge
      email: noage@email.com
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func resetLoaded(t *testing.T) {
	t.Helper()
	_loaded = nil
	t.Cleanup(func() { _loaded = nil })
}

func TestGettersPanicBeforeLoad(t *testing.T) {
	resetLoaded(t)

	assert.Panics(t, func() { Logger() })
	assert.Panics(t, func() { Report() })
	assert.Panics(t, func() { Seed() })
	assert.Panics(t, func() { Get() })
}

func TestLoadDefault(t *testing.T) {
	resetLoaded(t)

	LoadDefault()

	assert.Equal(t, "info", Logger().Level)
	assert.Equal(t, "json", Logger().Format)
	assert.Equal(t, "en", Report().Locale)
	assert.Empty(t, Seed())
}

func TestLoadFromFile(t *testing.T) {
	t.Run("MergesOverDefaults", func(t *testing.T) {
		resetLoaded(t)

		require.NoError(t, LoadFromFile(writeConfig(t, sampleConfig)))

		assert.Equal(t, "debug", Logger().Level)
		assert.Equal(t, "json", Logger().Format)
		assert.Equal(t, "pt-BR", Report().Locale)

		seed := Seed()
		require.Len(t, seed, 3)
		assert.Equal(t, "Alice", seed[0].Name)
		require.NotNil(t, seed[0].Age)
		assert.Equal(t, 28, *seed[0].Age)
		assert.True(t, seed[1].Admin)
		assert.Nil(t, seed[2].Age)
	})

	t.Run("MissingFile", func(t *testing.T) {
		resetLoaded(t)

		err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.ErrorContains(t, err, "failed to read config file")
		assert.Nil(t, _loaded)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		resetLoaded(t)

		err := LoadFromFile(writeConfig(t, "common: [unterminated"))

		assert.ErrorContains(t, err, "failed to parse config file")
	})
}

func TestLoad(t *testing.T) {
	t.Run("FileThenEnv", func(t *testing.T) {
		resetLoaded(t)
		t.Setenv("ROSTER_CONFIG_FILE", writeConfig(t, sampleConfig))
		t.Setenv("ROSTER_LOCALE", "en")
		t.Setenv("ROSTER_LOG_FORMAT", "console")

		Load()

		assert.Equal(t, "debug", Logger().Level)
		assert.Equal(t, "console", Logger().Format)
		assert.Equal(t, "en", Report().Locale)
		assert.Len(t, Seed(), 3)
	})

	t.Run("MissingFileFallsBackToDefaults", func(t *testing.T) {
		resetLoaded(t)
		t.Setenv("ROSTER_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("ROSTER_LOG_LEVEL", "warn")

		Load()

		assert.Equal(t, "warn", Logger().Level)
		assert.Equal(t, "en", Report().Locale)
		assert.Empty(t, Seed())
	})
}
