package client

import (
	"context"

	"github.com/utilkit-io/utilkit/models"
)

// FormatDate asks the server to render date through pattern. date accepts
// any common textual form; an empty pattern means the server default.
func (c *Client) FormatDate(ctx context.Context, date, pattern string) (string, error) {
	return c.postText(ctx, "format date", "/api/format/date", models.DateRequest{
		Date:    date,
		Pattern: pattern,
	})
}

// FormatPrice asks the server to render price as a currency string. price
// may be a number or a numeric string; empty currency and notation mean the
// server defaults.
func (c *Client) FormatPrice(ctx context.Context, price any, currency, notation string) (string, error) {
	return c.postText(ctx, "format price", "/api/format/price", models.PriceRequest{
		Price:    price,
		Currency: currency,
		Notation: notation,
	})
}
