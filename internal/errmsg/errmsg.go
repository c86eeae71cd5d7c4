// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package errmsg centralizes the human-readable message strings that
// utilkit packages attach to their errors and that the HTTP handlers write
// into response bodies.
//
// Argument-validation failures in particular must read the same no matter
// which package rejects the value, so the packages build those messages
// through the helper functions here instead of formatting them inline.
package errmsg

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTooManyRequests is returned when the rate limiter rejects a
	// request before it reaches a handler.
	MsgTooManyRequests = "too many requests"

	// MsgDelayTooLong is returned when a delay request exceeds the
	// server-side cap.
	MsgDelayTooLong = "requested delay exceeds the server limit"
)

// Empty is the wording shared by every check that rejects a blank argument.
func Empty(arg string) string {
	return arg + " must not be empty"
}

// NotFinite is the wording shared by every check that rejects NaN or an
// infinity.
func NotFinite(arg string) string {
	return arg + " must be a finite number"
}

// Negative is the wording shared by every check that rejects a value below
// zero.
func Negative(arg string) string {
	return arg + " must not be negative"
}

// NotNumeric is the wording used when a value cannot be read as a number at
// all.
func NotNumeric(arg string) string {
	return arg + " is not a number"
}

// Nil is the wording shared by every check that rejects a nil reference.
func Nil(arg string) string {
	return arg + " must not be nil"
}
