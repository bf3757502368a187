package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all host configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Bot API client
	Telegram TelegramConfig

	// Echo loop
	Poll PollConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	APIKey              string
	APIURL              string
	FileURL             string
	Timeout             time.Duration
	DisableNotification bool
	RateLimit           RateLimitConfig
}

type RateLimitConfig struct {
	PerSecond        float64
	PerChatPerMinute int
}

type PollConfig struct {
	Timeout time.Duration
	Limit   int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/telebot/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/telebot/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Telegram.APIKey = v.GetString("telegram.api_key")
	if key := v.GetString("telegram_api_key"); key != "" {
		cfg.Telegram.APIKey = key
	}
	cfg.Telegram.APIURL = v.GetString("telegram.api_url")
	cfg.Telegram.FileURL = v.GetString("telegram.file_url")
	cfg.Telegram.Timeout = v.GetDuration("telegram.timeout")
	cfg.Telegram.DisableNotification = v.GetBool("telegram.disable_notification")
	cfg.Telegram.RateLimit.PerSecond = v.GetFloat64("telegram.rate_limit.per_second")
	cfg.Telegram.RateLimit.PerChatPerMinute = v.GetInt("telegram.rate_limit.per_chat_per_minute")

	cfg.Poll.Timeout = v.GetDuration("poll.timeout")
	cfg.Poll.Limit = v.GetInt("poll.limit")

	if cfg.Telegram.APIKey == "" {
		return nil, fmt.Errorf("telegram.api_key is required (or set TELEGRAM_API_KEY)")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("telegram.api_url", "https://api.telegram.org")
	v.SetDefault("telegram.timeout", "30s")
	v.SetDefault("telegram.disable_notification", false)
	v.SetDefault("telegram.rate_limit.per_second", 30)
	v.SetDefault("telegram.rate_limit.per_chat_per_minute", 20)

	v.SetDefault("poll.timeout", "30s")
	v.SetDefault("poll.limit", 100)
}
