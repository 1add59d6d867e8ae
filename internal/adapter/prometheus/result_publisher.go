package prometheus

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/seantis/is-online/internal/ports"
)

// ResultPublisher mirrors the latest check pass into the exporter's gauges.
type ResultPublisher struct {
	logger   *slog.Logger
	exporter *Exporter
}

func NewResultPublisher(logger *slog.Logger, exporter *Exporter) *ResultPublisher {
	return &ResultPublisher{
		logger:   logger,
		exporter: exporter,
	}
}

func (p *ResultPublisher) Publish(ctx context.Context, results []ports.ProbeResult) error {
	var online, offline int

	m := p.exporter.metrics

	for _, r := range results {
		var status float64
		if r.Online {
			status = 1.0
			online++
		} else {
			offline++
		}

		m.targetStatus.WithLabelValues(
			r.Target.Host,
			strconv.Itoa(int(r.Target.Port)),
			string(r.Family),
		).Set(status)
	}

	m.targetsTotal.Set(float64(len(results)))
	m.targetsOnline.Set(float64(online))
	m.targetsOffline.Set(float64(offline))

	p.logger.DebugContext(ctx, "Published probe results",
		slog.Group("publish",
			slog.Int("online", online),
			slog.Int("offline", offline),
		))

	return nil
}
