package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"photofolio/internal/config"
)

func TestMustLoadPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")

	err := os.WriteFile(path, []byte(`
env: "prod"
http_server:
  address: "0.0.0.0:9000"
database:
  driver: "memory"
renditions:
  root: "/var/lib/photofolio"
  format: "jpeg"
`), 0o644)
	require.NoError(t, err)

	cfg := config.MustLoadPath(path)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "0.0.0.0:9000", cfg.HTTPServer.Address)
	require.Equal(t, 30*time.Second, cfg.HTTPServer.Timeout)
	require.Equal(t, "memory", cfg.Database.Driver)
	require.Equal(t, "/var/lib/photofolio", cfg.Renditions.Root)
	require.Equal(t, "jpeg", cfg.Renditions.Format)
	require.Equal(t, "/photos", cfg.Renditions.URLPrefix)
	require.Equal(t, 2, cfg.Renditions.Workers)
	require.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	require.Equal(t, []string{"image/jpeg", "image/png", "image/webp"}, cfg.Upload.AllowedTypes)
	require.Equal(t, int64(5<<30), cfg.Quota.LimitBytes)
	require.Equal(t, "X-Owner-ID", cfg.OwnerHeader)
}
