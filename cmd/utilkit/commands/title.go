package commands

import (
	"fmt"

	"github.com/utilkit-io/utilkit/textutil"
)

// RunTitle capitalizes the first letter of every word in the text taken
// from the argument or the tuple's reader. Letters after the first keep
// their case.
func RunTitle(io IOTuple, text string) error {
	text, err := orStdin(io, text)
	if err != nil {
		return err
	}

	result, err := textutil.ToTitleCase(text)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, result)
	return nil
}
