package client

import "errors"

var (
	// ErrTooManyRequests is returned when the server's rate limiter rejects
	// a request. Wait and retry.
	ErrTooManyRequests = errors.New("too many requests")
)
