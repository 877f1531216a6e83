package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	AI        AIConfig        `mapstructure:"ai"`
	Store     StoreConfig     `mapstructure:"store"`
	Client    ClientConfig    `mapstructure:"client"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type AIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StoreConfig struct {
	// Driver is sqlite or postgres
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type ClientConfig struct {
	// ServerURL of the quest server. Empty means quests are generated locally.
	ServerURL string        `mapstructure:"server_url"`
	Timezone  string        `mapstructure:"timezone"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type TelegramConfig struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

type SchedulerConfig struct {
	ReminderHour int `mapstructure:"reminder_hour"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	File  string `mapstructure:"file"`
}

// Location resolves the configured time zone, the local zone when unset
func (c ClientConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.timeout", 30*time.Second)

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "")

	v.SetDefault("client.server_url", "")
	v.SetDefault("client.timezone", "Local")
	v.SetDefault("client.timeout", 60*time.Second)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.chat_id", 0)

	v.SetDefault("scheduler.reminder_hour", 18)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.file", "")
}

// Load reads the configuration. Values come, from lowest to highest
// priority, from defaults, config.yaml in one of paths, a .env file and the
// environment (QUESTLOG_SERVER_ADDR and so on).
func Load(paths ...string) (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if len(paths) == 0 {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("QUESTLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Well known variables without prefix
	v.BindEnv("ai.api_key", "QUESTLOG_AI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("store.driver", "QUESTLOG_STORE_DRIVER", "DB_TYPE")
	v.BindEnv("telegram.token", "QUESTLOG_TELEGRAM_TOKEN", "TELEGRAM_BOT_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Scheduler.ReminderHour < 0 || cfg.Scheduler.ReminderHour > 23 {
		return nil, fmt.Errorf("scheduler.reminder_hour must be between 0 and 23, got %d", cfg.Scheduler.ReminderHour)
	}
	return &cfg, nil
}
