package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	LoadConfig()

	assert.Equal(t, "0.0.0.0", AppConfig.Server.Host)
	assert.Equal(t, 10000, AppConfig.Server.Port)
	assert.Equal(t, os.TempDir(), AppConfig.Upload.TempDir)
	assert.Equal(t, 60, AppConfig.Kernel.TimeoutSeconds)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  host: "127.0.0.1"
  port: 9999
  env: "development"
upload:
  temp_dir: "/var/scratch"
  max_size: 1024
kernel:
  command: "occ-report"
  args: ["--json"]
  timeout_seconds: 15
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("CONFIG_PATH", path)

	LoadConfig()

	assert.Equal(t, "127.0.0.1", AppConfig.Server.Host)
	assert.Equal(t, 9999, AppConfig.Server.Port)
	assert.Equal(t, "/var/scratch", AppConfig.Upload.TempDir)
	assert.Equal(t, int64(1024), AppConfig.Upload.MaxSize)
	assert.Equal(t, "occ-report", AppConfig.Kernel.Command)
	assert.Equal(t, []string{"--json"}, AppConfig.Kernel.Args)
	assert.Equal(t, 15, AppConfig.Kernel.TimeoutSeconds)
}

func TestEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "4242")
	t.Setenv("KERNEL_COMMAND", "fake-kernel")

	LoadConfig()

	assert.Equal(t, 4242, AppConfig.Server.Port)
	assert.Equal(t, "fake-kernel", AppConfig.Kernel.Command)
}
