// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package crypt

// Cipher is the text-encryption capability exposed by this package. It knows
// nothing about storage, transport, or callers; its only job is to produce
// key material and turn plaintext into portable payloads and back.
//
// Typical flow:
//
//	key, _     = GenerateKey()              (fresh random key)
//	payload, _ = EncryptText(text, key)     (JSON envelope, fresh nonce)
//	text, _    = DecryptText(payload, key)  (round-trips exactly)
type Cipher interface {
	// GenerateSalt returns a fresh random salt (16 bytes / 128 bits). The
	// salt is not a secret; it exists so that equal passphrases derive
	// different keys.
	GenerateSalt() ([]byte, error)

	// GenerateKey returns a fresh random 256-bit AES-GCM key. The key is
	// usable for both encryption and decryption and is never retained by
	// the implementation.
	GenerateKey() (*Key, error)

	// EncryptText encrypts text under key with AES-256-GCM using a fresh
	// random 12-byte nonce and returns the result as a JSON envelope of two
	// integer arrays (nonce, ciphertext). The ciphertext array includes the
	// authentication tag.
	EncryptText(text string, key *Key) (string, error)

	// DecryptText parses a JSON envelope produced by EncryptText, decrypts
	// it under key, and returns the original text. A payload that does not
	// parse fails differently from one that does not authenticate; see the
	// error taxonomy in the root package.
	DecryptText(payload string, key *Key) (string, error)
}
