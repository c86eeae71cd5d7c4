// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package pricefmt renders non-negative prices as currency strings. The
// numbering convention is fixed to Indian English (en-IN) regardless of the
// chosen currency, so standard notation groups as 1,50,000.00 while compact
// notation abbreviates with short-scale suffixes (1K, 1.5M).
package pricefmt

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
)

// Notation selects how the numeric part of a price is rendered.
type Notation string

const (
	// NotationCompact abbreviates with K/M/B/T suffixes: "₹1K", "₹1.5M".
	NotationCompact Notation = "compact"

	// NotationStandard spells the value out with Indian-English digit
	// grouping: "₹1,50,000.00".
	NotationStandard Notation = "standard"
)

// DefaultCurrency is used when Options.Currency is empty.
const DefaultCurrency = "INR"

// Options selects the currency and notation for [Format]. The zero value
// means Indian rupees in compact notation.
type Options struct {
	// Currency is an ISO 4217 code such as "INR" or "USD".
	Currency string

	// Notation is [NotationCompact] or [NotationStandard].
	Notation Notation
}

// symbols maps the currency codes rendered with a tight symbol prefix. Any
// other valid ISO code falls back to "CODE amount".
var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// indianEnglish renders grouped decimals with the en-IN convention:
// thousands first, then groups of two.
var indianEnglish = message.NewPrinter(language.MustParse("en-IN"))

// Format renders a price as a currency string.
//
// price may be any integer or float type, a numeric string, or a
// json.Number. Values that are not numeric or not finite are invalid;
// numeric but negative values are rejected separately so callers can tell
// the two apart. The amount is capped at two fractional digits in both
// notations:
//
//	Format(1000, Options{})                                        =  "₹1K"
//	Format(1500.50, Options{Currency: "USD", Notation: "standard"}) =  "$1,500.50"
func Format(price any, opts Options) (string, error) {
	value, err := coerce(price)
	if err != nil {
		return "", err
	}
	if value < 0 {
		return "", fmt.Errorf("%w: %s", utilkit.ErrNegativePrice, errmsg.Negative("price"))
	}

	prefix, err := currencyPrefix(opts.Currency)
	if err != nil {
		return "", err
	}

	switch notation := opts.Notation; notation {
	case NotationCompact, "":
		return prefix + compact(value), nil
	case NotationStandard:
		return prefix + indianEnglish.Sprint(number.Decimal(value, number.Scale(2))), nil
	default:
		return "", fmt.Errorf("%w: unsupported notation %q", utilkit.ErrPriceFormattingFailed, notation)
	}
}

// coerce turns the accepted input types into a finite float64.
func coerce(price any) (float64, error) {
	var value float64
	switch v := price.(type) {
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int8:
		value = float64(v)
	case int16:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case uint:
		value = float64(v)
	case uint8:
		value = float64(v)
	case uint16:
		value = float64(v)
	case uint32:
		value = float64(v)
	case uint64:
		value = float64(v)
	case json.Number:
		return coerceString(string(v))
	case string:
		return coerceString(v)
	default:
		return 0, fmt.Errorf("%w: unsupported price value of type %T", utilkit.ErrInvalidPrice, price)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s", utilkit.ErrInvalidPrice, errmsg.NotFinite("price"))
	}
	return value, nil
}

func coerceString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s", utilkit.ErrInvalidPrice, errmsg.Empty("price"))
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", utilkit.ErrInvalidPrice, errmsg.NotNumeric("price"))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s", utilkit.ErrInvalidPrice, errmsg.NotFinite("price"))
	}
	return value, nil
}

// currencyPrefix validates the ISO code and returns the amount prefix:
// a bare symbol for the well-known currencies, "CODE " otherwise.
func currencyPrefix(code string) (string, error) {
	if code == "" {
		code = DefaultCurrency
	}
	code = strings.ToUpper(code)

	if _, err := currency.ParseISO(code); err != nil {
		return "", fmt.Errorf("%w: unknown currency %q", utilkit.ErrPriceFormattingFailed, code)
	}
	if symbol, ok := symbols[code]; ok {
		return symbol, nil
	}
	return code + " ", nil
}

// compact renders the value with short-scale suffixes, at most two
// fractional digits, and trailing zeros trimmed. Values that would round to
// 1000 of one suffix promote to the next ("999999" is "1M", not "1000K").
func compact(value float64) string {
	suffixes := []string{"", "K", "M", "B", "T"}
	idx := 0
	for idx < len(suffixes)-1 && value >= 999.995 {
		value /= 1000
		idx++
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + suffixes[idx]
}
