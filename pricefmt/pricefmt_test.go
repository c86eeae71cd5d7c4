// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package pricefmt

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utilkit-io/utilkit"
)

// ---------------------------------------------------------------------------
// TestFormat: compact notation
// ---------------------------------------------------------------------------

func TestFormat_CompactIsTheDefault(t *testing.T) {
	got, err := Format(1000, Options{})
	require.NoError(t, err)
	assert.Equal(t, "₹1K", got)
}

func TestFormat_Compact(t *testing.T) {
	tests := []struct {
		name  string
		price any
		want  string
	}{
		{name: "zero", price: 0, want: "₹0"},
		{name: "below one thousand", price: 500, want: "₹500"},
		{name: "fractions below one thousand", price: 123.456, want: "₹123.46"},
		{name: "exact thousand", price: 1000, want: "₹1K"},
		{name: "thousands with fraction", price: 1500.50, want: "₹1.5K"},
		{name: "two fraction digits", price: 1234.56, want: "₹1.23K"},
		{name: "rounds up to next suffix", price: 999999, want: "₹1M"},
		{name: "millions", price: 2500000, want: "₹2.5M"},
		{name: "billions", price: 3.2e9, want: "₹3.2B"},
		{name: "trillions", price: 1e12, want: "₹1T"},
		{name: "beyond trillions stays in T", price: 1e15, want: "₹1000T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.price, Options{Notation: NotationCompact})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat: standard notation
// ---------------------------------------------------------------------------

func TestFormat_Standard(t *testing.T) {
	tests := []struct {
		name  string
		price any
		opts  Options
		want  string
	}{
		{
			name:  "US dollars with thousand grouping",
			price: 1500.50,
			opts:  Options{Currency: "USD", Notation: NotationStandard},
			want:  "$1,500.50",
		},
		{
			name:  "indian grouping above one lakh",
			price: 150000,
			opts:  Options{Notation: NotationStandard},
			want:  "₹1,50,000.00",
		},
		{
			name:  "always two fraction digits",
			price: 7,
			opts:  Options{Notation: NotationStandard},
			want:  "₹7.00",
		},
		{
			name:  "fractions are rounded",
			price: 123.456,
			opts:  Options{Notation: NotationStandard},
			want:  "₹123.46",
		},
		{
			name:  "yen keeps the uniform fraction cap",
			price: 1000,
			opts:  Options{Currency: "JPY", Notation: NotationStandard},
			want:  "¥1,000.00",
		},
		{
			name:  "currencies without a symbol use the code",
			price: 1500.50,
			opts:  Options{Currency: "CHF", Notation: NotationStandard},
			want:  "CHF 1,500.50",
		},
		{
			name:  "lower-case codes are accepted",
			price: 5,
			opts:  Options{Currency: "usd", Notation: NotationStandard},
			want:  "$5.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.price, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat: input coercion
// ---------------------------------------------------------------------------

func TestFormat_AcceptsNumericStrings(t *testing.T) {
	got, err := Format(" 1500.50 ", Options{Currency: "USD", Notation: NotationStandard})
	require.NoError(t, err)
	assert.Equal(t, "$1,500.50", got)
}

func TestFormat_AcceptsIntegerAndJSONNumberInputs(t *testing.T) {
	for name, price := range map[string]any{
		"int64":       int64(1000),
		"uint":        uint(1000),
		"float32":     float32(1000),
		"json.Number": json.Number("1000"),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Format(price, Options{})
			require.NoError(t, err)
			assert.Equal(t, "₹1K", got)
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat: failures
// ---------------------------------------------------------------------------

func TestFormat_InvalidPrices(t *testing.T) {
	for name, price := range map[string]any{
		"non-numeric text": "one hundred",
		"blank string":     "  ",
		"NaN":              math.NaN(),
		"infinity":         math.Inf(1),
		"unsupported type": true,
		"nil":              nil,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Format(price, Options{})
			require.ErrorIs(t, err, utilkit.ErrInvalidPrice)
		})
	}
}

func TestFormat_NegativePrices(t *testing.T) {
	for name, price := range map[string]any{
		"negative int":    -1,
		"negative string": "-0.01",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Format(price, Options{})
			require.ErrorIs(t, err, utilkit.ErrNegativePrice)
		})
	}
}

func TestFormat_UnknownCurrency(t *testing.T) {
	_, err := Format(100, Options{Currency: "ZZZ"})
	require.ErrorIs(t, err, utilkit.ErrPriceFormattingFailed)
}

func TestFormat_UnknownNotation(t *testing.T) {
	_, err := Format(100, Options{Notation: "scientific"})
	require.ErrorIs(t, err, utilkit.ErrPriceFormattingFailed)
}

// Negative beats a bad currency: the price is validated before the options.
func TestFormat_PriceValidatedBeforeOptions(t *testing.T) {
	_, err := Format(-5, Options{Currency: "ZZZ"})
	require.ErrorIs(t, err, utilkit.ErrNegativePrice)
}
