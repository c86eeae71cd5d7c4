// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilkit-io/utilkit"
)

// ---------------------------------------------------------------------------
// TestSlugify
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "basic", title: "Hello World!", want: "hello-world"},
		{name: "surrounding whitespace", title: "   padded title   ", want: "padded-title"},
		{name: "punctuation stripped", title: "What's new, in v2.0?", want: "whats-new-in-v20"},
		{name: "whitespace runs collapse", title: "too   many\t\tspaces", want: "too-many-spaces"},
		{name: "existing hyphens collapse", title: "already -- hyphenated", want: "already-hyphenated"},
		{name: "leading and trailing tokens stripped", title: "--Hello World--", want: "hello-world"},
		{name: "underscores survive", title: "snake_case title", want: "snake_case-title"},
		{name: "digits survive", title: "Top 10 Lists", want: "top-10-lists"},
		{name: "nothing slugifiable", title: "!!!", want: ""},
		{name: "non-ascii letters stripped", title: "café menu", want: "caf-menu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Slugify(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlugify_EmptyTitle(t *testing.T) {
	_, err := Slugify("")
	require.ErrorIs(t, err, utilkit.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "title")
}

// ---------------------------------------------------------------------------
// TestSlugifyWith
// ---------------------------------------------------------------------------

func TestSlugifyWith(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		replacement string
		want        string
	}{
		{name: "underscore token", title: "This Is A Test", replacement: "_", want: "this_is_a_test"},
		{name: "underscore token collapses runs", title: "a _ _ b", replacement: "_", want: "a_b"},
		{name: "empty token deletes whitespace", title: "Hello World", replacement: "", want: "helloworld"},
		{name: "multi-character token", title: "a b c", replacement: "--", want: "a--b--c"},
		{name: "unsafe token is sanitized", title: "a b", replacement: "!", want: "a-b"},
		{name: "mixed token is sanitized per character", title: "a b", replacement: "x.y", want: "ax-yb"},
		{name: "hyphen input with underscore token", title: "pre-built kit", replacement: "_", want: "pre-built_kit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlugifyWith(tt.title, tt.replacement)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Slugs never start or end with the token and never contain it twice in a
// row, whatever the input looked like.
func TestSlugifyWith_OutputInvariants(t *testing.T) {
	titles := []string{
		"Hello World!",
		"  -- messy -- input --  ",
		"tabs\tand\nnewlines",
		"ALL CAPS AND *STARS*",
		"___already___tokenized___",
		"a",
		"42",
	}
	for _, replacement := range []string{"-", "_", "xx"} {
		for _, title := range titles {
			got, err := SlugifyWith(title, replacement)
			require.NoError(t, err)

			if got == "" {
				continue
			}
			assert.False(t, strings.HasPrefix(got, replacement), "slug %q starts with token %q", got, replacement)
			assert.False(t, strings.HasSuffix(got, replacement), "slug %q ends with token %q", got, replacement)
			assert.NotContains(t, got, replacement+replacement, "slug %q repeats token %q", got, replacement)
			assert.Equal(t, strings.ToLower(got), got, "slug %q is not lower-case", got)
		}
	}
}
