package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// SendOptions are the fields shared by every send-type method.
type SendOptions struct {
	ReplyToMessageID    int64
	ReplyMarkup         ReplyMarkup
	DisableNotification bool
}

// common is what the dispatcher merges into a send-type call.
type common struct {
	chatID ChatID
	opts   *SendOptions
}

// merge appends the common fields after the method's own fields.
func (c *Client) merge(fields *Fields, cm *common) error {
	if cm == nil {
		return nil
	}
	fields.AddString("chat_id", cm.chatID.String())

	opts := cm.opts
	if opts == nil {
		opts = &SendOptions{}
	}
	fields.AddIntIf(opts.ReplyToMessageID > 0, "reply_to_message_id", opts.ReplyToMessageID)
	if err := fields.AddJSON("reply_markup", opts.ReplyMarkup); err != nil {
		return err
	}
	fields.AddBool("disable_notification", opts.DisableNotification || c.disableNotification)
	return nil
}

// post sends fields as a form or multipart body and decodes the result into out.
func (c *Client) post(ctx context.Context, method string, fields *Fields, cm *common, out any) error {
	if fields == nil {
		fields = NewFields()
	}
	defer fields.closeFiles()

	if err := c.merge(fields, cm); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var chatID string
	if cm != nil {
		chatID = cm.chatID.String()
	}
	return c.do(ctx, method, http.MethodPost, chatID, func(ctx context.Context) (*http.Request, error) {
		body, contentType, err := encode(ctx, fields)
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), body)
		if err != nil {
			if rc, ok := body.(io.Closer); ok {
				rc.Close()
			}
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	}, out)
}

// get sends query as URL parameters and decodes the result into out.
func (c *Client) get(ctx context.Context, method string, query url.Values, out any) error {
	target := c.methodURL(method)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.do(ctx, method, http.MethodGet, "", func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	}, out)
}

// do performs a single attempt. The configured timeout applies only when ctx
// carries no deadline of its own.
func (c *Client) do(
	ctx context.Context,
	method, verb, chatID string,
	build func(context.Context) (*http.Request, error),
	out any,
) error {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.throttle.Wait(ctx, chatID); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	req, err := build(ctx)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", method, err)
	}
	c.l.Debugf(ctx, "telegram.do: method=%s verb=%s content_type=%s", method, verb, req.Header.Get("Content-Type"))

	resp, err := c.transport().Do(req)
	if err != nil {
		err = ctxErr(ctx, c.scrub(err))
		c.l.Warnf(ctx, "telegram.do: method=%s transport failed: %v", method, err)
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", method, ctxErr(ctx, err))
	}

	if err := decodeResponse(resp.StatusCode, resp.Status, raw, out); err != nil {
		c.l.Warnf(ctx, "telegram.do: method=%s status=%d: %v", method, resp.StatusCode, err)
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// scrub removes the API key from URLs embedded in transport errors.
func (c *Client) scrub(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = strings.ReplaceAll(uerr.URL, c.apiKey, "<redacted>")
	}
	return err
}

// ctxErr prefers the context's own error so callers can match context.Canceled.
func ctxErr(ctx context.Context, err error) error {
	if cerr := ctx.Err(); cerr != nil {
		return fmt.Errorf("%w: %v", cerr, err)
	}
	return err
}
