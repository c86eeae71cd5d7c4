package models

import "encoding/json"

// TextResponse carries the result of a text transformation: a slug, a
// title-cased sentence, a formatted date, or a formatted price.
type TextResponse struct {
	// Result is the transformed text.
	Result string `json:"result"`
}

// KeyResponse carries freshly generated or derived encryption key material.
type KeyResponse struct {
	// Key is the base64-encoded 32-byte encryption key.
	Key string `json:"key"`

	// Salt is the base64-encoded salt used for passphrase derivation.
	// Empty for randomly generated keys.
	Salt string `json:"salt,omitempty"`
}

// EnvelopeResponse carries an encrypted payload.
type EnvelopeResponse struct {
	// Payload is the encrypted envelope: a JSON object with "nonce" and
	// "ciphertext" integer arrays. It can be fed back verbatim to the
	// decrypt operation.
	Payload json.RawMessage `json:"payload"`
}

// DelayResponse reports a completed server-side delay.
type DelayResponse struct {
	// Milliseconds is the requested delay duration.
	Milliseconds float64 `json:"milliseconds"`

	// Elapsed is the wall-clock time the server actually waited,
	// formatted as a Go duration string (e.g. "1.5s").
	Elapsed string `json:"elapsed"`
}

// VersionResponse reports the server's build metadata.
type VersionResponse struct {
	// Version is the running server version.
	Version string `json:"version"`

	// BuildDate is the build timestamp, when known.
	BuildDate string `json:"build_date,omitempty"`

	// BuildCommit is the source revision of the build, when known.
	BuildCommit string `json:"build_commit,omitempty"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON body returned for every failed API request.
// The matching trace identifier travels in the X-Trace-ID header.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`
}
