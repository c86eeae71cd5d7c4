// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

// Package delay implements a validated sleep helper. Unlike a bare
// time.Sleep, the duration is checked before any waiting starts, and
// optional callbacks can run after the delay with their failures surfaced
// to the caller.
//
// There is deliberately no cancellation: once a delay starts it runs to
// completion. Callers that need to abandon a wait should race it against
// their own timer.
package delay

import (
	"fmt"
	"math"
	"time"

	"github.com/utilkit-io/utilkit"
	"github.com/utilkit-io/utilkit/internal/errmsg"
)

// Callback is a hook invoked after a delay has fully elapsed. A non-nil
// return value becomes the failure of the [Sleep] call itself.
type Callback func() error

// FromMillis converts a millisecond count into a time.Duration. The count
// must be finite and non-negative and must fit into a Duration.
func FromMillis(ms float64) (time.Duration, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.NotFinite("delay"))
	}
	if ms < 0 {
		return 0, fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Negative("delay"))
	}
	if ms > float64(math.MaxInt64)/float64(time.Millisecond) {
		return 0, fmt.Errorf("%w: delay of %g ms overflows the representable range", utilkit.ErrInvalidArgument, ms)
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}

// Sleep blocks the calling goroutine for d, then runs any callbacks in
// order. A negative d fails before any waiting happens. The first callback
// error stops the chain and propagates as the error of the Sleep call; nil
// callbacks are skipped. No goroutine is spawned.
func Sleep(d time.Duration, callbacks ...Callback) error {
	if d < 0 {
		return fmt.Errorf("%w: %s", utilkit.ErrInvalidArgument, errmsg.Negative("delay"))
	}

	time.Sleep(d)

	for _, cb := range callbacks {
		if cb == nil {
			continue
		}
		if err := cb(); err != nil {
			return fmt.Errorf("delay callback: %w", err)
		}
	}
	return nil
}
