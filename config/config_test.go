package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")

	assert.Equal(t, "catalogd", cfg.System.Appid)
	assert.Equal(t, 1816, cfg.Web.Port)
	assert.Equal(t, "standard", cfg.Parking.Strategy)
	assert.Equal(t, "0.0.0.0:1816", cfg.WebListen())
}

func TestLoadConfigFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "catalogd.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(`
web:
  host: 127.0.0.1
  port: 9090
parking:
  strategy: weekend
`), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "127.0.0.1:9090", cfg.WebListen())
	assert.Equal(t, "weekend", cfg.Parking.Strategy)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CATALOGD_WEB_PORT", "8181")
	t.Setenv("CATALOGD_PARKING_STRATEGY", "vip")
	t.Setenv("CATALOGD_DATA_DIR", "/tmp/catalogd-data")

	cfg := LoadConfig("")
	assert.Equal(t, 8181, cfg.Web.Port)
	assert.Equal(t, "vip", cfg.Parking.Strategy)
	assert.Equal(t, "/tmp/catalogd-data", cfg.Data.Dir)
}
