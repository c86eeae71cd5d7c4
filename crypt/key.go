// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package crypt

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
)

const (
	// KeySize is the length of an AES-256-GCM key in bytes.
	KeySize = 32

	// NonceSize is the length of a GCM nonce in bytes. Every envelope
	// carries exactly this many nonce bytes.
	NonceSize = 12

	// SaltSize is the length of a key-derivation salt in bytes.
	SaltSize = 16
)

// Argon2id tuning parameters, following the OWASP (2024) recommendation:
// 1 iteration, 64 MiB memory, 4 threads.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
)

// Key is an opaque 256-bit symmetric key. Obtain one from
// [Cipher.GenerateKey], [KeyFromBytes], [KeyFromBase64], or
// [KeyFromPassphrase]; the zero value is not usable.
type Key struct {
	b []byte
}

// KeyFromBytes builds a Key from raw key material. The slice is copied, so
// the caller may zero its own copy afterwards. Material that is not exactly
// [KeySize] bytes long is rejected.
func KeyFromBytes(b []byte) (*Key, error) {
	if len(b) != KeySize {
		return nil, fmt.Errorf("%w: key must be exactly %d bytes, got %d", utilkit.ErrInvalidArgument, KeySize, len(b))
	}
	k := &Key{b: make([]byte, KeySize)}
	copy(k.b, b)
	return k, nil
}

// KeyFromBase64 decodes a standard-base64 key string as produced by
// [Key.Base64].
func KeyFromBase64(s string) (*Key, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Empty("key"))
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: decode key: %v", utilkit.ErrInvalidArgument, err)
	}
	return KeyFromBytes(raw)
}

// KeyFromPassphrase derives a Key from a passphrase and salt using Argon2id.
// The derivation is deterministic: the same passphrase and salt always yield
// the same key, so a payload can be decrypted later by re-deriving instead
// of storing the key. The salt must be [SaltSize] bytes, typically from
// [Cipher.GenerateSalt].
func KeyFromPassphrase(passphrase string, salt []byte) (*Key, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Empty("passphrase"))
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be exactly %d bytes, got %d", utilkit.ErrInvalidArgument, SaltSize, len(salt))
	}
	return &Key{b: argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, KeySize)}, nil
}

// Bytes returns a copy of the raw key material.
func (k *Key) Bytes() []byte {
	out := make([]byte, len(k.b))
	copy(out, k.b)
	return out
}

// Base64 returns the key material as a standard-base64 string.
func (k *Key) Base64() string {
	return base64.StdEncoding.EncodeToString(k.b)
}

// Zero overwrites the key material in place. The Key is unusable afterwards.
func (k *Key) Zero() {
	for i := range k.b {
		k.b[i] = 0
	}
}
