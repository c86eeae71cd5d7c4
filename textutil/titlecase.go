package textutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
)

// ToTitleCase upper-cases the first character of every space-separated word
// and leaves the rest of each word untouched:
//
//	ToTitleCase("hello WORLD")  =  "Hello WORLD"
//
// Runs of spaces collapse into one. Note the asymmetry with
// [SlugToTitleCase], which does lower-case the remainder of each word; both
// behaviors are relied upon by callers and are kept as they are.
func ToTitleCase(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Empty("text"))
	}

	words := strings.Split(s, " ")
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, capitalize(w, false))
	}
	return strings.Join(out, " "), nil
}

// SlugToTitleCase turns a slug back into a title: the input is split on any
// run of hyphens, underscores, or whitespace, each word gets its first
// character upper-cased and the remainder lower-cased, and the words are
// rejoined with single spaces:
//
//	SlugToTitleCase("this_is_a_test")  =  "This Is A Test"
func SlugToTitleCase(slug string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Empty("slug"))
	}

	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, w := range words {
		words[i] = capitalize(w, true)
	}
	return strings.Join(words, " "), nil
}

// capitalize upper-cases the first rune of word; lowerRest controls whether
// the remainder is lower-cased or left as-is.
func capitalize(word string, lowerRest bool) string {
	first, size := utf8.DecodeRuneInString(word)
	rest := word[size:]
	if lowerRest {
		rest = strings.ToLower(rest)
	}
	return string(unicode.ToUpper(first)) + rest
}
