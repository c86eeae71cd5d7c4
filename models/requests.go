package models

import (
	"encoding/json"

	validation "github.com/jellydator/validation"

	appValidation "github.com/utilkit-io/utilkit/internal/validation"
)

// SlugRequest asks the server to turn a human-readable title into a slug.
type SlugRequest struct {
	// Title is the text to slugify.
	// Required.
	Title string `json:"title"`

	// Replacement is the token inserted between words. When nil the
	// default "-" is used; an explicit empty string deletes whitespace
	// instead of replacing it.
	Replacement *string `json:"replacement,omitempty"`
}

// Validate checks the request against the slug operation's input contract.
func (r *SlugRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// TitleCaseRequest asks the server to capitalize the first letter of every
// space-separated word.
type TitleCaseRequest struct {
	// Text is the sentence to title-case.
	// Required.
	Text string `json:"text"`
}

// Validate checks the request against the title-case operation's input contract.
func (r *TitleCaseRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// SlugTitleRequest asks the server to reconstruct a display title from a slug.
type SlugTitleRequest struct {
	// Slug is the slug to convert, with words separated by hyphens,
	// underscores, or spaces.
	// Required.
	Slug string `json:"slug"`
}

// Validate checks the request against the slug-to-title operation's input
// contract.
func (r *SlugTitleRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Slug,
			validation.Required.Error("slug is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// KeyRequest asks the server to produce encryption key material.
//
// With no fields set, a random key is generated. With Passphrase set, the
// key is derived deterministically from the passphrase and salt; when Salt
// is omitted a fresh random salt is generated and echoed in the response.
type KeyRequest struct {
	// Passphrase is an optional secret to derive the key from.
	Passphrase string `json:"passphrase,omitempty"`

	// Salt is an optional base64-encoded 16-byte salt for passphrase
	// derivation. Only meaningful together with Passphrase.
	Salt string `json:"salt,omitempty"`
}

// Validate checks the request against the key operation's input contract.
func (r *KeyRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Salt,
			appValidation.SaltValue,
		),
	)
	if err == nil && r.Salt != "" && r.Passphrase == "" {
		err = validation.NewError("validation_salt_without_passphrase", "salt requires a passphrase")
	}
	return appValidation.WrapValidationError(err)
}

// EncryptRequest asks the server to encrypt a piece of text.
type EncryptRequest struct {
	// Text is the plaintext to encrypt.
	// Required.
	Text string `json:"text"`

	// Key is the base64-encoded 32-byte encryption key.
	// Required.
	Key string `json:"key"`
}

// Validate checks the request against the encrypt operation's input contract.
func (r *EncryptRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
		),
		validation.Field(&r.Key,
			validation.Required.Error("key is required"),
			appValidation.EncryptionKey,
		),
	)
	return appValidation.WrapValidationError(err)
}

// DecryptRequest asks the server to decrypt a previously produced payload.
type DecryptRequest struct {
	// Payload is the encrypted envelope exactly as returned by the
	// encrypt operation: a JSON object with "nonce" and "ciphertext"
	// integer arrays.
	// Required.
	Payload json.RawMessage `json:"payload"`

	// Key is the base64-encoded 32-byte encryption key.
	// Required.
	Key string `json:"key"`
}

// Validate checks the request against the decrypt operation's input contract.
// Envelope structure itself is validated during decryption.
func (r *DecryptRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Payload,
			validation.Required.Error("payload is required"),
		),
		validation.Field(&r.Key,
			validation.Required.Error("key is required"),
			appValidation.EncryptionKey,
		),
	)
	return appValidation.WrapValidationError(err)
}

// DateRequest asks the server to render a date through a layout pattern.
type DateRequest struct {
	// Date is the date to format, in any common textual form
	// (e.g. "2026-08-23", "Aug 23, 2026", RFC 3339).
	// Required.
	Date string `json:"date"`

	// Pattern is the layout pattern ("dd/MM/yyyy" style tokens). When
	// empty the default pattern is used.
	Pattern string `json:"pattern,omitempty"`
}

// Validate checks the request against the date operation's input contract.
// Pattern tokens are validated during formatting.
func (r *DateRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}

// PriceRequest asks the server to format a monetary amount.
type PriceRequest struct {
	// Price is the amount to format: a JSON number or a numeric string.
	// Required; zero is a valid amount.
	Price any `json:"price"`

	// Currency is an optional ISO 4217 code ("INR", "USD", ...). When
	// empty the default currency is used.
	Currency string `json:"currency,omitempty"`

	// Notation selects "compact" (₹1.5K) or "standard" (₹1,500.00)
	// output. When empty the default notation is used.
	Notation string `json:"notation,omitempty"`
}

// Validate checks the request against the price operation's input contract.
// The amount's numeric range and sign are validated during formatting so
// that invalid-price errors keep their own taxonomy entry.
func (r *PriceRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
		),
		validation.Field(&r.Currency,
			appValidation.CurrencyCode,
		),
		validation.Field(&r.Notation,
			appValidation.Notation,
		),
	)
	return appValidation.WrapValidationError(err)
}

// DelayRequest asks the server to wait before responding.
type DelayRequest struct {
	// Milliseconds is how long to wait. Fractional values are honored
	// down to sub-millisecond precision.
	// Required; zero is allowed and returns immediately.
	Milliseconds *float64 `json:"milliseconds"`
}

// Validate checks the request against the delay operation's input contract.
// The server-side maximum is enforced by the handler, not here, so the
// limit can follow runtime configuration.
func (r *DelayRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Milliseconds,
			validation.NotNil.Error("milliseconds is required"),
			validation.Min(0.0).Error("milliseconds must not be negative"),
		),
	)
	return appValidation.WrapValidationError(err)
}
