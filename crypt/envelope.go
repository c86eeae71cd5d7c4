// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package crypt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/utilkit-io/utilkit"
)

// Envelope is the portable encrypted payload exchanged between
// [Cipher.EncryptText] and [Cipher.DecryptText]. On the wire it is a JSON
// object with exactly two fields, each an array of byte values:
//
//	{"nonce":[12 integers],"ciphertext":[n integers]}
//
// The ciphertext array includes the 16-byte GCM authentication tag. The
// envelope is self-contained: it references no key and carries no metadata
// beyond the two arrays.
type Envelope struct {
	Nonce      []byte
	Ciphertext []byte
}

// envelopeJSON is the wire shape. []int rather than []byte keeps the arrays
// as plain integer lists instead of encoding/json's base64 representation.
type envelopeJSON struct {
	Nonce      []int `json:"nonce"`
	Ciphertext []int `json:"ciphertext"`
}

// ParseEnvelope decodes the JSON payload into an Envelope. Any structural
// problem (invalid JSON, missing field, entry outside 0-255, wrong nonce
// length) is reported as a malformed payload.
func ParseEnvelope(payload string) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", utilkit.ErrMalformedPayload, err)
	}
	return &env, nil
}

// Encode renders the envelope as its JSON wire form.
func (e *Envelope) Encode() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}
	return string(data), nil
}

// MarshalJSON implements [json.Marshaler] using the two-integer-array wire
// shape.
func (e Envelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelopeJSON{
		Nonce:      bytesToInts(e.Nonce),
		Ciphertext: bytesToInts(e.Ciphertext),
	})
}

// UnmarshalJSON implements [json.Unmarshaler]. Both fields must be present,
// every entry must fit in a byte, and the nonce must be exactly [NonceSize]
// bytes long. The length check here is what keeps a corrupted nonce from
// ever reaching the GCM primitive, which would panic on a wrong-sized nonce
// instead of returning an error.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var aux envelopeJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Nonce == nil {
		return errors.New("missing field: nonce")
	}
	if aux.Ciphertext == nil {
		return errors.New("missing field: ciphertext")
	}
	if len(aux.Nonce) != NonceSize {
		return fmt.Errorf("nonce must be exactly %d bytes, got %d", NonceSize, len(aux.Nonce))
	}

	nonce, err := intsToBytes(aux.Nonce)
	if err != nil {
		return fmt.Errorf("nonce: %w", err)
	}
	ciphertext, err := intsToBytes(aux.Ciphertext)
	if err != nil {
		return fmt.Errorf("ciphertext: %w", err)
	}

	e.Nonce, e.Ciphertext = nonce, ciphertext
	return nil
}

func bytesToInts(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

func intsToBytes(vals []int) ([]byte, error) {
	out := make([]byte, len(vals))
	for i, v := range vals {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("value %d at index %d is outside 0-255", v, i)
		}
		out[i] = byte(v)
	}
	return out, nil
}
