package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "studio"
password = "from-file"
dbname = "studio"

[auth]
jwt_secret = "file-secret"

[[auth.admins]]
username = "admin1"
password = "pass1"
full_name = "Administrator 1"

[reminder]
enabled = true
hour = 10
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndAdmins(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "/uploads", cfg.Uploads.URLPrefix)
	assert.Equal(t, int64(5<<20), cfg.Uploads.MaxSizeBytes())
	assert.Equal(t, 5, cfg.Reminder.Limit)
	require.Len(t, cfg.Auth.Admins, 1)
	assert.Equal(t, "Administrator 1", cfg.Auth.Admins[0].FullName)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_PASSWORD", "env-password")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "env-password", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=env-password")
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	body := `
[database]
host = "localhost"
dbname = "studio"
`
	_, err := Load(writeConfig(t, body))
	assert.Error(t, err)
}

func TestValidate_TelegramRequiresCredentials(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.DBName = "studio"
	cfg.Auth.JWTSecret = "secret"
	cfg.Telegram.Enabled = true
	cfg.applyDefaults()

	assert.Error(t, cfg.Validate())

	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = "-100"
	assert.NoError(t, cfg.Validate())
}
