package client

import (
	"context"
	"fmt"

	"github.com/utilkit-io/utilkit/models"
)

// Slugify asks the server to turn title into a URL-safe slug using the
// default replacement token.
func (c *Client) Slugify(ctx context.Context, title string) (string, error) {
	return c.postText(ctx, "slugify", "/api/text/slug", models.SlugRequest{Title: title})
}

// SlugifyWith is [Slugify] with a caller-chosen replacement token. An empty
// replacement deletes whitespace instead of replacing it.
func (c *Client) SlugifyWith(ctx context.Context, title, replacement string) (string, error) {
	return c.postText(ctx, "slugify", "/api/text/slug", models.SlugRequest{
		Title:       title,
		Replacement: &replacement,
	})
}

// TitleCase asks the server to capitalize the first letter of every
// space-separated word of text.
func (c *Client) TitleCase(ctx context.Context, text string) (string, error) {
	return c.postText(ctx, "title-case", "/api/text/title", models.TitleCaseRequest{Text: text})
}

// SlugToTitle asks the server to reconstruct a display title from slug.
func (c *Client) SlugToTitle(ctx context.Context, slug string) (string, error) {
	return c.postText(ctx, "slug-to-title", "/api/text/slug-title", models.SlugTitleRequest{Slug: slug})
}

// postText POSTs a JSON request to a text-returning endpoint and unwraps the
// result. op names the operation in error context.
func (c *Client) postText(ctx context.Context, op, path string, body any) (string, error) {
	var result models.TextResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Result, nil
}
