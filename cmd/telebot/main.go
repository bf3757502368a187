package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"telebot/config"
	"telebot/internal/echo"
	"telebot/internal/poller"
	"telebot/pkg/log"
	"telebot/pkg/telegram"
)

// main runs a long-polling echo bot on top of the telegram client.
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting telebot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Bot API client
	client, err := telegram.New(telegram.Config{
		APIKey:              cfg.Telegram.APIKey,
		BaseURL:             cfg.Telegram.APIURL,
		FileBaseURL:         cfg.Telegram.FileURL,
		Timeout:             cfg.Telegram.Timeout,
		DisableNotification: cfg.Telegram.DisableNotification,
		RateLimit: telegram.RateLimitConfig{
			PerSecond:        cfg.Telegram.RateLimit.PerSecond,
			PerChatPerMinute: cfg.Telegram.RateLimit.PerChatPerMinute,
		},
		Logger: logger,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create telegram client: %v", err)
		return
	}

	me, err := client.GetMe(ctx)
	if err != nil {
		logger.Errorf(ctx, "getMe failed: %v", err)
		return
	}
	logger.Infof(ctx, "Authorized as @%s (id %d)", me.Username, me.ID)

	// Long polling and webhooks are mutually exclusive.
	if err := client.DeleteWebhook(ctx); err != nil {
		logger.Warnf(ctx, "deleteWebhook failed: %v", err)
	}

	// 4. Echo loop
	p := poller.New(logger, client, echo.New(logger, client), poller.Config{
		Timeout: cfg.Poll.Timeout,
		Limit:   cfg.Poll.Limit,
	})
	if err := p.Run(ctx); err != nil {
		logger.Errorf(ctx, "Poller stopped: %v", err)
		return
	}

	logger.Info(ctx, "Shutting down gracefully")
}
