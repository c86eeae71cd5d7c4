package commands

import (
	"fmt"

	"github.com/utilkit-io/utilkit/textutil"
)

// RunSlugToTitle rebuilds a human-readable title from a slug taken from
// the argument or the tuple's reader.
func RunSlugToTitle(io IOTuple, slug string) error {
	slug, err := orStdin(io, slug)
	if err != nil {
		return err
	}

	result, err := textutil.SlugToTitleCase(slug)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, result)
	return nil
}
