// Package console prints probe results as plain text lines.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/seantis/is-online/internal/ports"
)

const (
	onlineColored  = "\x1b[1;32monline\x1b[0m"
	offlineColored = "\x1b[1;31moffline\x1b[0m"
)

// Writer publishes probe results as one `host:port is online|offline` line
// each. Writes are serialized so concurrent passes never interleave lines.
type Writer struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
	quiet bool
}

type WriterOptions struct {
	// Color renders the status word in ANSI bold green/red.
	Color bool
	// Quiet suppresses all output.
	Quiet bool
}

func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	return &Writer{
		w:     w,
		color: opts.Color,
		quiet: opts.Quiet,
	}
}

func (c *Writer) Publish(_ context.Context, results []ports.ProbeResult) error {
	if c.quiet {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range results {
		if _, err := fmt.Fprintf(c.w, "%s is %s\n", r.Target, c.status(r.Online)); err != nil {
			return fmt.Errorf("failed to write probe result: %w", err)
		}
	}

	return nil
}

func (c *Writer) status(online bool) string {
	switch {
	case online && c.color:
		return onlineColored
	case online:
		return "online"
	case c.color:
		return offlineColored
	default:
		return "offline"
	}
}
