package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/utilkit-io/utilkit/crypt"
)

// RunEncrypt encrypts text and writes the JSON envelope. The key comes from
// --key or is derived from --passphrase and --salt; the plaintext comes from
// the argument or the tuple's reader. With stats enabled a human-readable
// size summary follows the payload.
func RunEncrypt(io IOTuple, cipher crypt.Cipher, text, keyB64, passphrase, saltB64 string, stats bool) error {
	text, err := orStdin(io, text)
	if err != nil {
		return err
	}

	key, err := resolveKey(keyB64, passphrase, saltB64)
	if err != nil {
		return err
	}

	payload, err := cipher.EncryptText(text, key)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, payload)
	if stats {
		_, _ = fmt.Fprintf(io.Writer, "Plaintext:\t%s\n", humanize.Bytes(uint64(len(text))))
		_, _ = fmt.Fprintf(io.Writer, "Envelope:\t%s\n", humanize.Bytes(uint64(len(payload))))
	}
	return nil
}

// resolveKey builds the AES key from an explicit base64 key or from a
// passphrase and the salt it was derived under.
func resolveKey(keyB64, passphrase, saltB64 string) (*crypt.Key, error) {
	switch {
	case keyB64 != "" && passphrase != "":
		return nil, fmt.Errorf("--key and --passphrase are mutually exclusive")
	case keyB64 != "":
		if saltB64 != "" {
			return nil, fmt.Errorf("--salt requires a passphrase")
		}
		return crypt.KeyFromBase64(keyB64)
	case passphrase != "":
		if saltB64 == "" {
			return nil, fmt.Errorf("--passphrase requires the --salt printed by keygen")
		}
		salt, err := base64.StdEncoding.DecodeString(saltB64)
		if err != nil {
			return nil, fmt.Errorf("decode salt: %w", err)
		}
		return crypt.KeyFromPassphrase(passphrase, salt)
	default:
		return nil, fmt.Errorf("either --key or --passphrase is required")
	}
}
