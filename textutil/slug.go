// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package textutil implements slug generation and title casing for plain
// text. All functions are pure: text in, text out, no state between calls.
package textutil

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
)

// DefaultReplacement is the token [Slugify] places between words.
const DefaultReplacement = "-"

// Slugify converts a title into a URL-safe slug using the default
// replacement token:
//
//	Slugify("Hello World!")  =  "hello-world"
func Slugify(title string) (string, error) {
	return SlugifyWith(title, DefaultReplacement)
}

// SlugifyWith converts a title into a slug with a caller-chosen replacement
// token. The input is lower-cased and trimmed, every character that is not
// an ASCII letter, digit, underscore, whitespace, or hyphen is stripped,
// runs of whitespace become the token, runs of the token collapse into one,
// and the token is stripped from both ends. An empty token deletes the
// whitespace instead.
//
// The token itself is sanitized first: any character in it that is not a
// letter, digit, hyphen, or underscore becomes "-", so callers cannot smuggle
// pattern metacharacters into the replacement step.
func SlugifyWith(title, replacement string) (string, error) {
	if title == "" {
		return "", fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Empty("title"))
	}
	token := sanitizeToken(replacement)

	// 1. Lower-case, trim, and drop everything outside [a-z0-9_\s-]
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	// 2. Collapse whitespace runs into the token
	slug := strings.Join(strings.Fields(b.String()), token)

	// 3. Collapse token runs and strip the token from both ends
	if token != "" {
		doubled := token + token
		for strings.Contains(slug, doubled) {
			slug = strings.ReplaceAll(slug, doubled, token)
		}
		for strings.HasPrefix(slug, token) {
			slug = strings.TrimPrefix(slug, token)
		}
		for strings.HasSuffix(slug, token) {
			slug = strings.TrimSuffix(slug, token)
		}
	}
	return slug, nil
}

// sanitizeToken replaces every character of the replacement token that is
// not an ASCII letter, digit, hyphen, or underscore with "-".
func sanitizeToken(replacement string) string {
	var b strings.Builder
	b.Grow(len(replacement))
	for _, r := range replacement {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
