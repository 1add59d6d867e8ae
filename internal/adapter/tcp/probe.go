package tcp

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seantis/is-online/internal/ports"
)

type Probe struct {
	client *Client
}

func NewProbe(client *Client) *Probe {
	return &Probe{client: client}
}

// Probe attempts one TCP connect per requested family. The dialer resolves
// the host itself, restricted to the family's network, and walks the
// candidate addresses until one accepts within the timeout. Results come
// back in family request order.
func (p *Probe) Probe(ctx context.Context, target ports.Target, families []ports.Family, timeout time.Duration) ([]ports.ProbeResult, error) {
	results := make([]ports.ProbeResult, len(families))

	g, gctx := errgroup.WithContext(ctx)

	for i, family := range families {
		g.Go(func() error {
			result, err := p.probeFamily(gctx, target, family, timeout)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (p *Probe) probeFamily(ctx context.Context, target ports.Target, family ports.Family, timeout time.Duration) (ports.ProbeResult, error) {
	if err := p.client.sem.Acquire(ctx, 1); err != nil {
		return ports.ProbeResult{}, err
	}

	defer p.client.sem.Release(1)

	innerCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := ports.ProbeResult{
		Target: target,
		Family: family,
	}

	conn, err := p.client.dialer.DialContext(innerCtx, family.Network(), target.String())
	if err != nil {
		// The parent context being canceled aborts the probe; anything
		// else (resolution failure, refusal, timeout) means offline.
		if ctx.Err() != nil {
			return ports.ProbeResult{}, ctx.Err()
		}

		p.client.logger.DebugContext(ctx, "Probe failed",
			slog.String("target", target.String()),
			slog.String("family", string(family)),
			slog.Any("error", err))

		return result, nil
	}

	_ = conn.Close()

	result.Online = true

	return result, nil
}
