package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hako/durafmt"

	"github.com/utilkit-io/utilkit/delay"
)

// RunSleep blocks for the given number of milliseconds, then reports the
// measured wall-clock time. Fractional milliseconds are honored.
func RunSleep(io IOTuple, msRaw string) error {
	if msRaw == "" {
		return fmt.Errorf("milliseconds argument is required")
	}
	ms, err := strconv.ParseFloat(msRaw, 64)
	if err != nil {
		return fmt.Errorf("milliseconds must be a number, got %q", msRaw)
	}

	d, err := delay.FromMillis(ms)
	if err != nil {
		return err
	}

	started := time.Now()
	if err := delay.Sleep(d); err != nil {
		return err
	}
	elapsed := time.Since(started)

	_, _ = fmt.Fprintf(io.Writer, "Slept for %s (requested %s)\n",
		durafmt.Parse(elapsed.Round(time.Millisecond)), durafmt.Parse(d))
	return nil
}
