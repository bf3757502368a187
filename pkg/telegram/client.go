package telegram

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"telebot/pkg/log"
)

// Client is the Telegram Bot API client. It is safe for concurrent use.
type Client struct {
	apiKey              string
	baseURL             string
	fileBaseURL         string
	timeout             time.Duration
	disableNotification bool
	l                   log.Logger
	throttle            *throttle

	once       sync.Once
	httpClient *http.Client
}

// New creates a new Telegram client with the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:              cfg.APIKey,
		baseURL:             cfg.BaseURL,
		fileBaseURL:         cfg.FileBaseURL,
		timeout:             cfg.Timeout,
		disableNotification: cfg.DisableNotification,
		l:                   cfg.Logger,
		throttle:            newThrottle(cfg.RateLimit),
		httpClient:          cfg.HTTPClient,
	}, nil
}

// transport returns the shared HTTP client, creating it on first use.
func (c *Client) transport() *http.Client {
	c.once.Do(func() {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
	})
	return c.httpClient
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf(methodURLTemplate, c.baseURL, c.apiKey, method)
}
