package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/utilkit-io/utilkit/client"
)

// RunPing checks that a utilkit server is reachable and healthy, then
// reports its version and the observed round-trip time.
func RunPing(ctx context.Context, out io.Writer, address string, timeout time.Duration) error {
	c, err := client.New(address, timeout)
	if err != nil {
		return err
	}

	started := time.Now()
	if err := c.Health(ctx); err != nil {
		return fmt.Errorf("server is not healthy: %w", err)
	}
	rtt := time.Since(started)

	version, err := c.Version(ctx)
	if err != nil {
		return fmt.Errorf("fetch server version: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Server %s is healthy: version %s, round trip %s\n",
		address, orNA(version.Version), rtt.Round(time.Millisecond))
	return nil
}
