// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/utilkit-io/utilkit/crypt"
	"github.com/utilkit-io/utilkit/models"
)

// RunKeygen produces a base64 AES-256 key. Without a passphrase the key is
// random. With one (from the flag or an interactive no-echo prompt) the key
// is derived with Argon2id and printed together with the salt needed to
// derive it again; passing that salt back repeats the derivation exactly.
func RunKeygen(io IOTuple, cipher crypt.Cipher, passphrase, saltB64 string, interactive bool, format string) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	if interactive && passphrase == "" {
		passphrase, err = readSecret(io, "Passphrase: ")
		if err != nil {
			return err
		}
	}

	if passphrase == "" {
		if saltB64 != "" {
			return fmt.Errorf("--salt requires a passphrase")
		}
		key, err := cipher.GenerateKey()
		if err != nil {
			return err
		}
		return printKey(io, format, key.Base64(), "")
	}

	salt, err := resolveSalt(cipher, saltB64)
	if err != nil {
		return err
	}

	key, err := crypt.KeyFromPassphrase(passphrase, salt)
	if err != nil {
		return err
	}
	return printKey(io, format, key.Base64(), base64.StdEncoding.EncodeToString(salt))
}

// resolveSalt decodes an explicit salt or generates a fresh one.
func resolveSalt(cipher crypt.Cipher, saltB64 string) ([]byte, error) {
	if saltB64 == "" {
		return cipher.GenerateSalt()
	}
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	return salt, nil
}

func printKey(io IOTuple, format, key, salt string) error {
	if format == "json" {
		return printJSON(io.Writer, models.KeyResponse{Key: key, Salt: salt})
	}

	_, _ = fmt.Fprintf(io.Writer, "Key: %s\n", key)
	if salt != "" {
		_, _ = fmt.Fprintf(io.Writer, "Salt: %s\n", salt)
	}
	return nil
}
