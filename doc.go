// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package utilkit is the root of a small collection of focused utility
// packages:
//
//   - textutil: slug generation and title casing
//   - crypt: AES-256-GCM text encryption with portable JSON payloads
//   - delay: validated sleep helpers
//   - datefmt: pattern-based date formatting
//   - pricefmt: currency formatting with Indian-English defaults
//
// The root package itself only defines the error taxonomy shared by the
// subpackages. Every failure returned by a utilkit function wraps exactly
// one of these sentinels, so callers can branch with errors.Is regardless
// of which package produced the error:
//
//	_, err := textutil.Slugify("", "-")
//	if errors.Is(err, utilkit.ErrInvalidArgument) {
//		// caller passed bad input
//	}
//
// The wrapped message always carries the underlying cause, the sentinel
// only classifies it.
package utilkit
