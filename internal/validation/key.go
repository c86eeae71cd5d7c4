// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"

	"github.com/utilkit-io/utilkit/crypt"
)

// EncryptionKey validates that a string is base64-encoded key material of
// exactly crypt.KeySize bytes.
var EncryptionKey = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_key_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return validation.NewError("validation_key_base64", "must be valid base64-encoded data")
	}
	if len(raw) != crypt.KeySize {
		return validation.NewError("validation_key_length", "must decode to exactly 32 bytes")
	}
	return nil
})

// SaltValue validates that a string is a base64-encoded salt of exactly
// crypt.SaltSize bytes.
var SaltValue = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_salt_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return validation.NewError("validation_salt_base64", "must be valid base64-encoded data")
	}
	if len(raw) != crypt.SaltSize {
		return validation.NewError("validation_salt_length", "must decode to exactly 16 bytes")
	}
	return nil
})
