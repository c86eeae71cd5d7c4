// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"
	"golang.org/x/text/currency"

	utilkit "github.com/utilkit-io/utilkit"
)

// WrapValidationError wraps validation errors as domain ErrInvalidArgument
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// CurrencyCode validates that a string is a well-formed ISO 4217 currency
// code. Case is ignored, matching the formatter's own tolerance.
var CurrencyCode = validation.NewStringRuleWithError(
	func(s string) bool {
		if s == "" {
			return true // Let Required handle empty strings
		}
		_, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(s)))
		return err == nil
	},
	validation.NewError("validation_currency_code", "must be a valid ISO 4217 currency code"),
)

// Notation validates the price notation selector. An empty string is allowed
// and means the default notation.
var Notation = validation.NewStringRuleWithError(
	func(s string) bool {
		switch s {
		case "", "compact", "standard":
			return true
		}
		return false
	},
	validation.NewError("validation_notation", "must be one of: compact, standard"),
)
