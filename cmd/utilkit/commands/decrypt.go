package commands

import (
	"fmt"

	"github.com/utilkit-io/utilkit/crypt"
)

// RunDecrypt reverses RunEncrypt: it takes a JSON envelope from the argument
// or the tuple's reader and prints the recovered plaintext. The key is
// resolved the same way, from --key or from --passphrase and --salt.
func RunDecrypt(io IOTuple, cipher crypt.Cipher, payload, keyB64, passphrase, saltB64 string) error {
	payload, err := orStdin(io, payload)
	if err != nil {
		return err
	}

	key, err := resolveKey(keyB64, passphrase, saltB64)
	if err != nil {
		return err
	}

	text, err := cipher.DecryptText(payload, key)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, text)
	return nil
}
