package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	targetsTotal   prometheus.Gauge
	targetsOnline  prometheus.Gauge
	targetsOffline prometheus.Gauge
	targetStatus   *prometheus.GaugeVec
}

const (
	prefix = "isonline_"
)

func newMetrics(reg *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		targetsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "targets_total",
			Help: "Total number of probe results in the last pass",
		}),
		targetsOnline: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "targets_online",
			Help: "Number of online probe results in the last pass",
		}),
		targetsOffline: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "targets_offline",
			Help: "Number of offline probe results in the last pass",
		}),
		targetStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "target_status",
			Help: "Status of a specific target (1: online, 0: offline)",
		}, []string{"host", "port", "family"}),
	}

	err := register(reg,
		m.targetsTotal,
		m.targetsOnline,
		m.targetsOffline,
		m.targetStatus,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register(r *prometheus.Registry, cs ...prometheus.Collector) error {
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, c := range cs[:i] {
				r.Unregister(c)
			}

			return err
		}
	}

	return nil
}
