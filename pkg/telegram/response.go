package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// decodeResponse classifies a transport response and unwraps its payload into out.
// Evaluated in order: 2xx envelope, 502 service unavailable, error record, raw failure.
func decodeResponse(statusCode int, status string, body []byte, out any) error {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return decodeEnvelope(statusCode, body, out)
	case statusCode == http.StatusBadGateway:
		return ErrServiceUnavailable
	}

	var rec errorRecord
	if err := json.Unmarshal(body, &rec); err != nil || (rec.ErrorCode == 0 && rec.Description == "") {
		return &TransportError{StatusCode: statusCode, Status: status, Body: body}
	}
	return &RequestError{
		StatusCode:  statusCode,
		Code:        rec.ErrorCode,
		Description: rec.Description,
		Parameters:  rec.Parameters,
	}
}

func decodeEnvelope(statusCode int, body []byte, out any) error {
	var env apiResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: envelope: %v", ErrDecode, err)
	}
	if env.OK == nil {
		return fmt.Errorf("%w: envelope has no ok field", ErrDecode)
	}
	if !*env.OK {
		code := env.ErrorCode
		if code == 0 {
			code = statusCode
		}
		return &RequestError{
			StatusCode:  statusCode,
			Code:        code,
			Description: env.Description,
			Parameters:  env.Parameters,
		}
	}
	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return fmt.Errorf("%w: envelope has no result", ErrDecode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("%w: result: %v", ErrDecode, err)
	}
	return nil
}

// Decode unwraps a raw Bot API response body into T using the same rules
// as the client.
func Decode[T any](statusCode int, body []byte) (T, error) {
	var out T
	err := decodeResponse(statusCode, http.StatusText(statusCode), body, &out)
	return out, err
}
