package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilkit-io/utilkit"
)

// ---------------------------------------------------------------------------
// TestToTitleCase
// ---------------------------------------------------------------------------

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "basic", in: "hello world", want: "Hello World"},
		{name: "rest of word untouched", in: "hello WORLD", want: "Hello WORLD"},
		{name: "already capitalized", in: "Hello World", want: "Hello World"},
		{name: "multiple spaces collapse", in: "the  quick   brown", want: "The Quick Brown"},
		{name: "single word", in: "go", want: "Go"},
		{name: "digits keep their word", in: "chapter 1 intro", want: "Chapter 1 Intro"},
		{name: "non-ascii first letter", in: "éclair day", want: "Éclair Day"},
		{name: "mixed inner casing survives", in: "mcDonald iPhone", want: "McDonald IPhone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToTitleCase(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToTitleCase_EmptyInput(t *testing.T) {
	_, err := ToTitleCase("")
	require.ErrorIs(t, err, utilkit.ErrInvalidArgument)
}

// ---------------------------------------------------------------------------
// TestSlugToTitleCase
// ---------------------------------------------------------------------------

func TestSlugToTitleCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "hyphen slug", in: "hello-world", want: "Hello World"},
		{name: "underscore slug", in: "this_is_a_test", want: "This Is A Test"},
		{name: "remainder is lower-cased", in: "HELLO-WORLD", want: "Hello World"},
		{name: "mixed separators", in: "one-two_three four", want: "One Two Three Four"},
		{name: "separator runs collapse", in: "a--_  b", want: "A B"},
		{name: "leading and trailing separators", in: "--hello--", want: "Hello"},
		{name: "single word", in: "go", want: "Go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlugToTitleCase(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlugToTitleCase_EmptyInput(t *testing.T) {
	_, err := SlugToTitleCase("")
	require.ErrorIs(t, err, utilkit.ErrInvalidArgument)
}

// ---------------------------------------------------------------------------
// Round trip
// ---------------------------------------------------------------------------

// A slug built by Slugify comes back as a readable title.
func TestSlugify_SlugToTitleCase_RoundTrip(t *testing.T) {
	slug, err := Slugify("The Quick Brown Fox")
	require.NoError(t, err)
	require.Equal(t, "the-quick-brown-fox", slug)

	title, err := SlugToTitleCase(slug)
	require.NoError(t, err)
	assert.Equal(t, "The Quick Brown Fox", title)
}
