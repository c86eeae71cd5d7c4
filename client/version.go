package client

import (
	"context"
	"fmt"

	"github.com/utilkit-io/utilkit/models"
)

// Version fetches the server's version and build metadata.
func (c *Client) Version(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return result, nil
}

// Health checks that the server is up and serving requests.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}
