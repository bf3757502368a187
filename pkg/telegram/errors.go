package telegram

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrValidation marks caller-supplied arguments that violate a precondition.
	// Raised before any network activity.
	ErrValidation = errors.New("telegram: validation failed")

	// ErrServiceUnavailable is returned for an upstream 502 regardless of the body.
	ErrServiceUnavailable = errors.New("telegram: service unavailable")

	// ErrTransport is returned for non-2xx responses whose body is not an error record.
	ErrTransport = errors.New("telegram: transport failure")

	// ErrDecode is returned when a 2xx body does not match the expected envelope or result.
	ErrDecode = errors.New("telegram: decode failure")

	// ErrFileExists is returned by DownloadFile when the destination exists and
	// overwrite was not requested.
	ErrFileExists = errors.New("destination file already exists")

	// ErrNoFilePath is returned when a File has no server-side path to download from.
	ErrNoFilePath = errors.New("file has no path")
)

// ValidationError describes a rejected argument.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("telegram: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ResponseParameters holds the advisory payload of a failed request.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// RequestError is a non-2xx response carrying a parseable error record.
type RequestError struct {
	StatusCode  int
	Code        int
	Description string
	Parameters  *ResponseParameters
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("telegram: request error %d: %s", e.Code, e.Description)
}

// RetryAfter returns the advised wait before the request may be repeated, or zero.
func (e *RequestError) RetryAfter() time.Duration {
	if e.Parameters == nil {
		return 0
	}
	return time.Duration(e.Parameters.RetryAfter) * time.Second
}

// MigrateToChatID returns the id of the supergroup a group was migrated to, or zero.
func (e *RequestError) MigrateToChatID() int64 {
	if e.Parameters == nil {
		return 0
	}
	return e.Parameters.MigrateToChatID
}

// TransportError is a non-2xx response whose body could not be parsed.
type TransportError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("telegram: unexpected status %s: %s", e.Status, truncate(e.Body, 256))
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
