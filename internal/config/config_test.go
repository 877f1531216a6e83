package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 60*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 18, cfg.Scheduler.ReminderHour)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  addr: ":8080"
  allowed_origins:
    - https://learn.example.com
ai:
  model: gpt-4o
client:
  server_url: http://localhost:8080
  timezone: Asia/Jakarta
scheduler:
  reminder_hour: 7
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("QUESTLOG_SERVER_ADDR", ":9090")
	t.Setenv("QUESTLOG_AI_TIMEOUT", "45s")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("QUESTLOG_TELEGRAM_CHAT_ID", "123456")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr, "environment wins over file")
	assert.Equal(t, []string{"https://learn.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 45*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "bot-token", cfg.Telegram.Token)
	assert.Equal(t, int64(123456), cfg.Telegram.ChatID)
	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerURL)
	assert.Equal(t, 7, cfg.Scheduler.ReminderHour)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("reminder hour", func(t *testing.T) {
		t.Setenv("QUESTLOG_SCHEDULER_REMINDER_HOUR", "25")
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o644))
		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestLocation(t *testing.T) {
	loc, err := ClientConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = ClientConfig{Timezone: "Mars/Olympus_Mons"}.Location()
	assert.Error(t, err)
}
