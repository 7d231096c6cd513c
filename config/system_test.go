package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load("")

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "path", cfg.PathKey())
	assert.Equal(t, "hello", cfg.Frock.DefaultPath)
	assert.False(t, cfg.Frock.Debug)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, map[models.Role]string{
		models.RoleController: "",
		models.RoleModel:      "",
		models.RoleView:       "",
	}, cfg.Namespaces())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_HTTP_PORT", "9090")
	t.Setenv("APP_DB_DRIVER", "none")
	t.Setenv("APP_FROCK_PATH_KEY", "42")
	t.Setenv("APP_FROCK_DEBUG", "true")
	t.Setenv("APP_FROCK_NAMESPACES_CONTROLLER", `App\controller`)

	cfg := Load("")

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "none", cfg.DBDriver)
	assert.Equal(t, 42, cfg.PathKey())
	assert.True(t, cfg.Frock.Debug)
	assert.Equal(t, `App\controller`, cfg.Namespaces()[models.RoleController])
}

func TestLoad_File(t *testing.T) {
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)

	dir := t.TempDir()
	file := filepath.Join(dir, "frock.yaml")
	body := "http_port: \"7070\"\n" +
		"jwt_secret: s3cret\n" +
		"admin_password_hash: \"" + hash + "\"\n" +
		"frock:\n" +
		"  path_key: route\n" +
		"  default_path: home\n" +
		"  namespaces:\n" +
		"    view: 'App\\view'\n"
	require.NoError(t, os.WriteFile(file, []byte(body), 0o600))

	cfg := Load(file)

	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "route", cfg.PathKey())
	assert.Equal(t, "home", cfg.Frock.DefaultPath)
	assert.Equal(t, `App\view`, cfg.Frock.Namespaces.View)
	assert.Equal(t, hash, cfg.AdminPasswordHash)
}

func TestLoad_PlaintextPasswordRejected(t *testing.T) {
	t.Setenv("APP_ADMIN_PASSWORD_HASH", "plaintext")
	cfg := Load("")
	assert.Empty(t, cfg.AdminPasswordHash)
}

func TestLoad_EmptySecretDisablesAdmin(t *testing.T) {
	hash, err := utils.HashPassword("pw")
	require.NoError(t, err)
	t.Setenv("APP_ADMIN_PASSWORD_HASH", hash)

	cfg := Load("")
	assert.Empty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.AdminPasswordHash)

	t.Setenv("APP_JWT_SECRET", "s3cret")
	cfg = Load("")
	assert.Equal(t, hash, cfg.AdminPasswordHash)
}
