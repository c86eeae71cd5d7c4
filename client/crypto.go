package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
	"github.com/utilkit-io/utilkit/models"
)

// GenerateKey asks the server for a fresh random encryption key and returns
// it base64-encoded.
func (c *Client) GenerateKey(ctx context.Context) (string, error) {
	var result models.KeyResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.KeyRequest{}).
		SetResult(&result).
		Post("/api/crypto/key")
	if err != nil {
		return "", fmt.Errorf("generate key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Key, nil
}

// DeriveKey asks the server to derive a key from passphrase. salt is an
// optional base64-encoded salt; when empty the server mints a fresh one and
// echoes it in the response, so the caller can re-derive the same key later.
func (c *Client) DeriveKey(ctx context.Context, passphrase, salt string) (models.KeyResponse, error) {
	// an empty passphrase would silently request a random key instead
	if passphrase == "" {
		return models.KeyResponse{}, fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Empty("passphrase"))
	}

	var result models.KeyResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.KeyRequest{Passphrase: passphrase, Salt: salt}).
		SetResult(&result).
		Post("/api/crypto/key")
	if err != nil {
		return models.KeyResponse{}, fmt.Errorf("derive key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyResponse{}, err
	}

	return result, nil
}

// Encrypt asks the server to encrypt text under the base64-encoded key and
// returns the encrypted envelope, ready to be stored or fed to [Decrypt].
func (c *Client) Encrypt(ctx context.Context, text, key string) (json.RawMessage, error) {
	var result models.EnvelopeResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EncryptRequest{Text: text, Key: key}).
		SetResult(&result).
		Post("/api/crypto/encrypt")
	if err != nil {
		return nil, fmt.Errorf("encrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Payload, nil
}

// Decrypt asks the server to decrypt an envelope produced by [Encrypt] under
// the base64-encoded key and returns the original text.
func (c *Client) Decrypt(ctx context.Context, payload json.RawMessage, key string) (string, error) {
	var result models.TextResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DecryptRequest{Payload: payload, Key: key}).
		SetResult(&result).
		Post("/api/crypto/decrypt")
	if err != nil {
		return "", fmt.Errorf("decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Result, nil
}
