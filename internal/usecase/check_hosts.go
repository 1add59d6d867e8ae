package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seantis/is-online/internal/ports"
)

type CheckHostsUseCase struct {
	logger    *slog.Logger
	prober    ports.Prober
	publisher ports.ResultPublisher
	timeout   time.Duration
}

func NewCheckHostsUseCase(logger *slog.Logger, prober ports.Prober, publisher ports.ResultPublisher, timeout time.Duration) *CheckHostsUseCase {
	return &CheckHostsUseCase{
		logger:    logger,
		prober:    prober,
		publisher: publisher,
		timeout:   timeout,
	}
}

type CheckHostsCommand struct {
	Targets  []ports.Target
	Families []ports.Family
}

// TargetReport is the aggregated outcome for one target. A target is online
// only when every requested family reported online.
type TargetReport struct {
	Target  ports.Target
	Results []ports.ProbeResult
	Online  bool
}

// Report covers a single check pass over all targets, in input order.
type Report struct {
	Targets []TargetReport
}

// AnyOffline reports whether any probe in the pass came back offline.
func (r Report) AnyOffline() bool {
	for _, t := range r.Targets {
		if !t.Online {
			return true
		}
	}

	return false
}

// Offline returns the targets that did not come fully online, in input order.
func (r Report) Offline() []ports.Target {
	var offline []ports.Target

	for _, t := range r.Targets {
		if !t.Online {
			offline = append(offline, t.Target)
		}
	}

	return offline
}

func (u *CheckHostsUseCase) Execute(ctx context.Context, cmd CheckHostsCommand) (Report, error) {
	reports := make([]TargetReport, len(cmd.Targets))

	g, gctx := errgroup.WithContext(ctx)

	for i, target := range cmd.Targets {
		g.Go(func() error {
			results, err := u.prober.Probe(gctx, target, cmd.Families, u.timeout)
			if err != nil {
				return fmt.Errorf("failed to probe target %s: %w", target, err)
			}

			online := len(results) > 0
			for _, r := range results {
				online = online && r.Online
			}

			reports[i] = TargetReport{
				Target:  target,
				Results: results,
				Online:  online,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	results := make([]ports.ProbeResult, 0, len(cmd.Targets)*len(cmd.Families))
	for _, r := range reports {
		results = append(results, r.Results...)
	}

	if err := u.publisher.Publish(ctx, results); err != nil {
		return Report{}, fmt.Errorf("failed to publish probe results: %w", err)
	}

	u.logger.DebugContext(ctx, "Finished check pass",
		slog.Int("targets", len(cmd.Targets)),
		slog.Int("results", len(results)))

	return Report{Targets: reports}, nil
}
