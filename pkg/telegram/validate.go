package telegram

import (
	"strconv"
	"strings"
)

func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "must not be blank"}
	}
	return nil
}

func requirePositive(field string, value int64) error {
	if value <= 0 {
		return &ValidationError{Field: field, Reason: "must be positive"}
	}
	return nil
}

func requireMaxBytes(field, value string, n int) error {
	if len(value) > n {
		return &ValidationError{Field: field, Reason: "exceeds " + strconv.Itoa(n) + " bytes"}
	}
	return nil
}

func requireChat(id ChatID) error {
	return requireNonBlank("chat_id", string(id))
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
