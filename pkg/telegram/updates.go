package telegram

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

// UpdatesOptions are the parameters of GetUpdates.
type UpdatesOptions struct {
	Offset         int64
	Limit          int
	Timeout        time.Duration
	AllowedUpdates []string
}

// WebhookOptions are the optional parameters of SetWebhook.
type WebhookOptions struct {
	Certificate    *InputFile
	MaxConnections int
	AllowedUpdates []string
}

// GetMe returns basic information about the bot.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "getMe", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUpdates long-polls for incoming updates. When ctx has no deadline the
// poll timeout is added to the client timeout.
func (c *Client) GetUpdates(ctx context.Context, opts UpdatesOptions) ([]Update, error) {
	if opts.Limit < 0 || opts.Limit > 100 {
		return nil, &ValidationError{Field: "limit", Reason: "must be between 1 and 100"}
	}
	if opts.Timeout < 0 {
		return nil, &ValidationError{Field: "timeout", Reason: "must not be negative"}
	}

	q := url.Values{}
	if opts.Offset != 0 {
		q.Set("offset", strconv.FormatInt(opts.Offset, 10))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Timeout > 0 {
		q.Set("timeout", strconv.Itoa(int(opts.Timeout/time.Second)))
	}
	if len(opts.AllowedUpdates) > 0 {
		b, err := json.Marshal(opts.AllowedUpdates)
		if err != nil {
			return nil, &ValidationError{Field: "allowed_updates", Reason: "cannot encode as JSON", Err: err}
		}
		q.Set("allowed_updates", string(b))
	}

	if _, ok := ctx.Deadline(); !ok && opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout+c.timeout)
		defer cancel()
	}

	var updates []Update
	if err := c.get(ctx, "getUpdates", q, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SetWebhook registers an outgoing webhook. A certificate, when given, is
// uploaded as a multipart part.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string, opts *WebhookOptions) error {
	if opts == nil {
		opts = &WebhookOptions{}
	}
	if err := requireNonBlank("url", webhookURL); err != nil {
		if opts.Certificate != nil {
			_ = opts.Certificate.Close()
		}
		return err
	}

	fields := NewFields().
		Add("url", webhookURL).
		AddFile("certificate", opts.Certificate).
		AddIntIf(opts.MaxConnections > 0, "max_connections", int64(opts.MaxConnections))
	if len(opts.AllowedUpdates) > 0 {
		if err := fields.AddJSON("allowed_updates", opts.AllowedUpdates); err != nil {
			fields.closeFiles()
			return err
		}
	}

	var ok bool
	return c.post(ctx, "setWebhook", fields, nil, &ok)
}

// DeleteWebhook removes the webhook so GetUpdates can be used again.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	var ok bool
	return c.get(ctx, "deleteWebhook", nil, &ok)
}

// GetWebhookInfo returns the current webhook status.
func (c *Client) GetWebhookInfo(ctx context.Context) (*WebhookInfo, error) {
	var info WebhookInfo
	if err := c.get(ctx, "getWebhookInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
