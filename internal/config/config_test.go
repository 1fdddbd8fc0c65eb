package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(BaseURLEnv, "")
	t.Setenv(EnvFileEnv, filepath.Join(home, "missing.env"))
	os.Unsetenv(BaseURLEnv)
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, v, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.APIBaseURL)
	assert.Equal(t, filepath.Join(home, ".dreamai", "storage"), cfg.StorageDir)
	assert.Equal(t, filepath.Join(home, ".dreamai", "history.toml"), cfg.HistoryPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Publish.Enabled())
	assert.Equal(t, cfg.HistoryPath, v.GetString(KeyHistoryPath))
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".dreamai")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[api]
base_url = "https://api.dream.test/"

[history]
path = "~/media/history.toml"

[log]
level = "debug"

[publish.s3]
bucket = "media"
public_base_url = "https://cdn.dream.test"
use_path_style = true
`), 0o600))

	cfg, _, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, "https://api.dream.test", cfg.APIBaseURL)
	assert.Equal(t, filepath.Join(home, "media", "history.toml"), cfg.HistoryPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Publish.Enabled())
	assert.Equal(t, "us-east-1", cfg.Publish.Region)
	assert.True(t, cfg.Publish.UsePathStyle)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".dreamai")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api]\nbase_url = \"https://file.test\"\n"), 0o600))
	t.Setenv(BaseURLEnv, "https://env.test")

	cfg, _, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "https://env.test", cfg.APIBaseURL)
}

func TestLoadEnvFile(t *testing.T) {
	home := isolate(t)
	envFile := filepath.Join(home, "dream.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DREAMAI_API_BASE_URL=https://dotenv.test\n"), 0o600))
	t.Setenv(EnvFileEnv, envFile)
	t.Cleanup(func() { os.Unsetenv(BaseURLEnv) })

	cfg, _, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.test", cfg.APIBaseURL)
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".dreamai")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api\n"), 0o600))

	_, _, err := Load(home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u", expandHome("~", "/home/u"))
	assert.Equal(t, filepath.Join("/home/u", "x"), expandHome("~/x", "/home/u"))
	assert.Equal(t, "/abs", expandHome("/abs", "/home/u"))
}
