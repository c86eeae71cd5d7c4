// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package datefmt renders dates with conventional format patterns
// (dd/MM/yyyy style) instead of Go reference-time layouts. Inputs may be
// time values or date strings; strings are parsed first, accepting the wide
// range of layouts understood by github.com/araddon/dateparse.
package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
)

// DefaultPattern is used when the caller passes an empty pattern.
const DefaultPattern = "dd/MM/yyyy"

// layoutTokens maps a pattern token to the Go reference-time fragment that
// renders it. Tokens are runs of one repeated letter, so "yyyy" and "yy" are
// distinct entries.
var layoutTokens = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"EEEE": "Monday",
	"EEE":  "Mon",
	"HH":   "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"a":    "PM",
}

// Format renders a date according to a format pattern.
//
// value may be a [time.Time], a *[time.Time], or a string; strings are
// parsed into a date first and anything unparseable (or any other type)
// fails as an invalid date. An empty pattern means [DefaultPattern].
//
// Patterns combine the tokens above with literal separators:
//
//	Format(t, "dd/MM/yyyy")        =  "23/08/2026"
//	Format(t, "EEE, MMM d, yyyy")  =  "Sun, Aug 23, 2026"
//
// Single-quoted sections pass through verbatim ("yyyy'T'MM"), with '' for a
// literal apostrophe. An unknown token or an unterminated quote fails the
// rendering step.
func Format(value any, pattern string) (string, error) {
	date, err := coerce(value)
	if err != nil {
		return "", err
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	out, err := render(date, pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utilkit.ErrDateFormattingFailed, err)
	}
	return out, nil
}

// coerce turns the accepted input types into a time.Time.
func coerce(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: %s", utilkit.ErrInvalidDate, errmsg.Nil("date"))
		}
		return *v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return time.Time{}, fmt.Errorf("%w: %s", utilkit.ErrInvalidDate, errmsg.Empty("date"))
		}
		parsed, err := dateparse.ParseAny(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", utilkit.ErrInvalidDate, err)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported date value of type %T", utilkit.ErrInvalidDate, value)
	}
}

// render walks the pattern and formats token by token. Literals are written
// directly instead of being spliced into a Go layout string, so digits or
// reference-time fragments in a literal can never be misread as layout.
func render(date time.Time, pattern string) (string, error) {
	var b strings.Builder
	rs := []rune(pattern)

	for i := 0; i < len(rs); {
		switch r := rs[i]; {
		case r == '\'':
			// '' is a literal apostrophe, a single quote opens a literal
			// section running to the next single quote.
			if i+1 < len(rs) && rs[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			end, err := writeQuoted(&b, rs, i+1)
			if err != nil {
				return "", err
			}
			i = end
		case isPatternLetter(r):
			j := i
			for j < len(rs) && rs[j] == r {
				j++
			}
			token := string(rs[i:j])
			layout, ok := layoutTokens[token]
			if !ok {
				return "", fmt.Errorf("unknown pattern token %q", token)
			}
			b.WriteString(date.Format(layout))
			i = j
		default:
			b.WriteRune(r)
			i++
		}
	}
	return b.String(), nil
}

// writeQuoted copies a quoted literal starting at rs[start] (the rune after
// the opening quote) into b and returns the index just past the closing
// quote.
func writeQuoted(b *strings.Builder, rs []rune, start int) (int, error) {
	for i := start; i < len(rs); i++ {
		if rs[i] != '\'' {
			b.WriteRune(rs[i])
			continue
		}
		if i+1 < len(rs) && rs[i+1] == '\'' {
			b.WriteRune('\'')
			i++
			continue
		}
		return i + 1, nil
	}
	return 0, errors.New("unterminated quote in pattern")
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
