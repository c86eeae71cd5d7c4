// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package client provides a small SDK for the utilkit HTTP API.
//
// A [Client] talks to one server and exposes one method per API operation.
// Non-2xx responses are mapped back to the error taxonomy of the root
// package, so callers can use [errors.Is] the same way they would against
// the library itself (e.g. [utilkit.ErrInvalidArgument] for a rejected
// input, [utilkit.ErrDecryptionFailed] for a payload that does not
// authenticate).
package client

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/utilkit-io/utilkit/internal/utils"
)

// DefaultTimeout is applied when [New] is given a non-positive timeout.
const DefaultTimeout = 15 * time.Second

// Client is an HTTP client for one utilkit server. It is safe for
// concurrent use.
type Client struct {
	http *utils.HTTPClient
}

// New builds a Client for the server at address. The address may omit the
// scheme ("localhost:8080" works) and a trailing slash is ignored. A
// non-positive timeout means [DefaultTimeout].
func New(address string, timeout time.Duration) (*Client, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := utils.NewHTTPClient()
	httpClient.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{http: httpClient}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
