package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/models"
)

// mapHTTPError turns a non-2xx response into a taxonomy error, inverting the
// status mapping the server applies when it renders one.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return wrapStatus(utilkit.ErrInvalidArgument, body)
	case http.StatusUnprocessableEntity:
		return wrapStatus(utilkit.ErrDecryptionFailed, body)
	case http.StatusTooManyRequests:
		return wrapStatus(ErrTooManyRequests, body)
	case http.StatusServiceUnavailable:
		return wrapStatus(utilkit.ErrEnvironmentUnsupported, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorBody extracts the message from the server's JSON error body, falling
// back to the raw body for responses that are not in the standard shape.
func errorBody(resp *resty.Response) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &er); err == nil && er.Error != "" {
		return er.Error
	}
	return strings.TrimSpace(string(resp.Body()))
}

// wrapStatus wraps msg in sentinel without repeating the sentinel's own text,
// which the server message usually starts with. The result reads exactly
// like the server-side error it mirrors.
func wrapStatus(sentinel error, msg string) error {
	msg = strings.TrimPrefix(msg, sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
