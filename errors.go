// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package utilkit

import "errors"

var (
	// ErrInvalidArgument is returned when a caller-supplied argument is
	// missing, empty, or otherwise unusable (blank text, negative delay,
	// non-finite number).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEnvironmentUnsupported is returned when the runtime lacks a
	// capability the operation depends on, such as a secure randomness
	// source for key generation.
	ErrEnvironmentUnsupported = errors.New("unsupported environment")

	// ErrKeyGenerationFailed is returned when drawing key material from the
	// randomness source fails.
	ErrKeyGenerationFailed = errors.New("key generation failed")

	// ErrEncryptionFailed is returned when the encryption primitive cannot
	// complete, for example because the key has the wrong length.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrMalformedPayload is returned when an encrypted payload cannot be
	// parsed: invalid JSON, missing fields, or byte values outside 0-255.
	ErrMalformedPayload = errors.New("malformed encrypted payload")

	// ErrDecryptionFailed is returned when a well-formed payload fails to
	// decrypt, most commonly because the key is wrong or the ciphertext was
	// tampered with.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidDate is returned when a date input cannot be interpreted as
	// a valid calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrDateFormattingFailed is returned when a valid date cannot be
	// rendered, for example because the pattern contains unknown tokens.
	ErrDateFormattingFailed = errors.New("date formatting failed")

	// ErrInvalidPrice is returned when a price input is not numeric or not
	// finite.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrNegativePrice is returned when a price input is numeric but
	// negative.
	ErrNegativePrice = errors.New("negative price")

	// ErrPriceFormattingFailed is returned when a valid price cannot be
	// rendered with the requested options, for example an unknown currency
	// code or notation.
	ErrPriceFormattingFailed = errors.New("price formatting failed")
)
