package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "offerings", cfg.CatalogName)
	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, "wishlist.json", cfg.WishlistFile)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, "wishlist:attractions", cfg.RedisKey)
	assert.Equal(t, 5432, cfg.DBPort)
}

func TestLoad_FromEnvVars(t *testing.T) {
	t.Setenv("WISHLIST_STORE", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidStore(t *testing.T) {
	t.Setenv("WISHLIST_STORE", "sqlite")

	cfg, err := Load("")

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Store")
	assert.Contains(t, err.Error(), "must be one of: file redis postgres")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("DB_PORT", "70000")

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.DBPort")
}

func TestLoad_UnparsablePort(t *testing.T) {
	t.Setenv("REDIS_PORT", "not-a-number")

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CATALOG_NAME=museums\nDB_NAME=from_file\n"), 0o644))
	t.Setenv("DB_NAME", "from_env")
	t.Cleanup(func() { os.Unsetenv("CATALOG_NAME") })

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "museums", cfg.CatalogName)
	assert.Equal(t, "from_env", cfg.DBName)
}

func TestLoad_MissingDotenvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, err)
}

func TestConfig_WishlistPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WISHLIST_DATA_DIR", dir)

	cfg, err := Load("")
	require.NoError(t, err)

	path, err := cfg.WishlistPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wishlist.json"), path)
}

func TestConfig_ResolveDataDirDefaultsToUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("user config dir layout is linux specific")
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("HOME", home)

	cfg := &Config{}
	dir, err := cfg.ResolveDataDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config", appDirName), dir)
}

func TestConfig_ResolveDataDirFailure(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("user config dir layout is linux specific")
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	cfg := &Config{}
	_, err := cfg.ResolveDataDir()

	assert.Error(t, err)
}
