package commands

import (
	"fmt"

	"github.com/utilkit-io/utilkit/textutil"
)

// RunSlug turns a title into a URL-safe slug. The title comes from the
// argument or, when absent, from the tuple's reader. A nil separator keeps
// the default hyphen; a non-nil one replaces whitespace runs verbatim, so
// an explicit empty string deletes them.
func RunSlug(io IOTuple, title string, separator *string) error {
	title, err := orStdin(io, title)
	if err != nil {
		return err
	}

	var slug string
	if separator == nil {
		slug, err = textutil.Slugify(title)
	} else {
		slug, err = textutil.SlugifyWith(title, *separator)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, slug)
	return nil
}
