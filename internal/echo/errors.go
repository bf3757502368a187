package echo

import (
	"errors"
	"fmt"

	pkgTelegram "telebot/pkg/telegram"
)

// errorMessage returns a short user-facing string for err.
func errorMessage(err error) string {
	var reqErr *pkgTelegram.RequestError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, pkgTelegram.ErrServiceUnavailable):
		return "Telegram is temporarily unavailable"
	case errors.As(err, &reqErr) && reqErr.RetryAfter() > 0:
		return fmt.Sprintf("Too many requests, retry in %s", reqErr.RetryAfter())
	case errors.As(err, &reqErr):
		return reqErr.Description
	}
	return "Something went wrong"
}
