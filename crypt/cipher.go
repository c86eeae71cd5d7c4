// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package crypt implements authenticated text encryption on AES-256-GCM.
//
// Keys are 256-bit and usable in both directions; every encryption draws a
// fresh random 12-byte nonce; the output is a self-contained JSON envelope
// of two integer arrays (see [Envelope]). Nothing is cached or stored: key
// ownership is entirely the caller's.
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
)

// cipherService is the private implementation of [Cipher].
type cipherService struct {
	// rand is the entropy source for keys, salts, and nonces. A nil source
	// means the environment offers no secure randomness and every operation
	// that needs it fails up front.
	rand io.Reader
}

// NewCipherService constructs a [Cipher] backed by the OS CSPRNG.
func NewCipherService() Cipher {
	return &cipherService{rand: rand.Reader}
}

// GenerateSalt implements [Cipher]. It reads [SaltSize] random bytes from
// the entropy source.
func (c *cipherService) GenerateSalt() ([]byte, error) {
	if c.rand == nil {
		return nil, fmt.Errorf("%w: no secure randomness source", utilkit.ErrEnvironmentUnsupported)
	}
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return nil, fmt.Errorf("%w: %v", utilkit.ErrKeyGenerationFailed, err)
	}
	return salt, nil
}

// GenerateKey implements [Cipher]. It reads [KeySize] random bytes from the
// entropy source and wraps them as a [Key].
func (c *cipherService) GenerateKey() (*Key, error) {
	if c.rand == nil {
		return nil, fmt.Errorf("%w: no secure randomness source", utilkit.ErrEnvironmentUnsupported)
	}
	material := make([]byte, KeySize)
	if _, err := io.ReadFull(c.rand, material); err != nil {
		return nil, fmt.Errorf("%w: %v", utilkit.ErrKeyGenerationFailed, err)
	}
	return &Key{b: material}, nil
}

// EncryptText implements [Cipher].
func (c *cipherService) EncryptText(text string, key *Key) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Empty("text"))
	}
	if key == nil {
		return "", fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Nil("key"))
	}
	if c.rand == nil {
		return "", fmt.Errorf("%w: no secure randomness source", utilkit.ErrEnvironmentUnsupported)
	}

	// 1. Build the AES-GCM primitive from the key
	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utilkit.ErrEncryptionFailed, err)
	}

	// 2. Draw a fresh nonce. Reusing a nonce under the same key is the one
	// property this package must never violate, so the nonce always comes
	// from the entropy source and never from a counter or the plaintext.
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %v", utilkit.ErrEncryptionFailed, err)
	}

	// 3. Encrypt and serialize; Seal appends the authentication tag
	env := &Envelope{
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, []byte(text), nil),
	}
	payload, err := env.Encode()
	if err != nil {
		return "", fmt.Errorf("%w: %v", utilkit.ErrEncryptionFailed, err)
	}
	return payload, nil
}

// DecryptText implements [Cipher].
func (c *cipherService) DecryptText(payload string, key *Key) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Empty("payload"))
	}
	if key == nil {
		return "", fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Nil("key"))
	}

	// 1. Parse the envelope; structural problems surface as malformed
	// payload, not as decryption failures
	env, err := ParseEnvelope(payload)
	if err != nil {
		return "", err
	}

	// 2. Build the AES-GCM primitive from the key
	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utilkit.ErrDecryptionFailed, err)
	}

	// 3. Decrypt and verify the tag. A failure here does not distinguish a
	// wrong key from tampered ciphertext; the primitive itself cannot tell
	// them apart.
	plaintext, err := gcm.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utilkit.ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}

func newGCM(key *Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.b)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
