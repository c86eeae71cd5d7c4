package client

import (
	"context"
	"fmt"

	"github.com/utilkit-io/utilkit/models"
)

// Delay asks the server to wait for the given number of milliseconds before
// responding. The server enforces its own cap; requests above it fail with
// [utilkit.ErrInvalidArgument].
func (c *Client) Delay(ctx context.Context, milliseconds float64) (models.DelayResponse, error) {
	var result models.DelayResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DelayRequest{Milliseconds: &milliseconds}).
		SetResult(&result).
		Post("/api/delay")
	if err != nil {
		return models.DelayResponse{}, fmt.Errorf("delay request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DelayResponse{}, err
	}

	return result, nil
}
