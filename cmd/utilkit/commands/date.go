package commands

import (
	"fmt"
	"time"

	"github.com/utilkit-io/utilkit/datefmt"
)

// RunDate formats a date using the yyyy/MM/dd pattern language. The date is
// parsed from most common layouts; an empty date means now.
func RunDate(io IOTuple, date, pattern string) error {
	var value any = date
	if date == "" {
		value = time.Now()
	}

	result, err := datefmt.Format(value, pattern)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, result)
	return nil
}
