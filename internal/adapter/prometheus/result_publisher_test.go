package prometheus

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/seantis/is-online/internal/ports"
)

func TestResultPublisher_PublishMetricsForOnlineAndOfflineTargets(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, []ports.ProbeResult{
		{Target: ports.Target{Host: "alpha.example.com", Port: 443}, Family: ports.FamilyIPv4, Online: true},
		{Target: ports.Target{Host: "alpha.example.com", Port: 443}, Family: ports.FamilyIPv6, Online: false},
		{Target: ports.Target{Host: "beta.example.com", Port: 443}, Family: ports.FamilyIPv4, Online: false},
	})
	require.NoError(t, err)

	requireMetric(t, 3.0, exporter.metrics.targetsTotal)
	requireMetric(t, 1.0, exporter.metrics.targetsOnline)
	requireMetric(t, 2.0, exporter.metrics.targetsOffline)
	requireMetric(t, 1.0, exporter.metrics.targetStatus.WithLabelValues("alpha.example.com", "443", "ipv4"))
	requireMetric(t, 0.0, exporter.metrics.targetStatus.WithLabelValues("alpha.example.com", "443", "ipv6"))
	requireMetric(t, 0.0, exporter.metrics.targetStatus.WithLabelValues("beta.example.com", "443", "ipv4"))
}

func TestResultPublisher_ReflectsLatestPass(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	target := ports.Target{Host: "alpha.example.com", Port: 22}

	err := publisher.Publish(ctx, []ports.ProbeResult{
		{Target: target, Family: ports.FamilyAny, Online: false},
	})
	require.NoError(t, err)

	requireMetric(t, 0.0, exporter.metrics.targetStatus.WithLabelValues("alpha.example.com", "22", "any"))

	err = publisher.Publish(ctx, []ports.ProbeResult{
		{Target: target, Family: ports.FamilyAny, Online: true},
	})
	require.NoError(t, err)

	requireMetric(t, 1.0, exporter.metrics.targetStatus.WithLabelValues("alpha.example.com", "22", "any"))
	requireMetric(t, 1.0, exporter.metrics.targetsOnline)
	requireMetric(t, 0.0, exporter.metrics.targetsOffline)
}

func TestResultPublisher_EmptyPass(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, nil)
	require.NoError(t, err)

	requireMetric(t, 0.0, exporter.metrics.targetsTotal)
	requireMetric(t, 0.0, exporter.metrics.targetsOnline)
	requireMetric(t, 0.0, exporter.metrics.targetsOffline)
}

func newTestPublisher(t *testing.T) (*Exporter, *ResultPublisher) {
	t.Helper()

	exporter, err := NewExporter()
	require.NoError(t, err)

	publisher := NewResultPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), exporter)

	return exporter, publisher
}

func requireMetric(t *testing.T, expected float64, metric prometheus.Collector) {
	t.Helper()

	require.InDelta(t, expected, testutil.ToFloat64(metric), 0.001)
}
