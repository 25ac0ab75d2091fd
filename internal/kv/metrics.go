package kv

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOverwrite = "overwrite"
	outcomeSibling   = "sibling"
)

// Metrics holds the store's prometheus collectors. They are created
// unregistered so independent stores (and tests) never collide;
// register them where the embedding application chooses.
type Metrics struct {
	writes         *prometheus.CounterVec
	siblingsPruned prometheus.Counter
	keys           prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kv_writes_total",
			Help: "Writes handled, partitioned by outcome (overwrite or sibling fork)",
		}, []string{"outcome"}),
		siblingsPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kv_siblings_pruned_total",
			Help: "Sibling values causally superseded and dropped by later writes",
		}),
		keys: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kv_keys",
			Help: "Number of keys currently stored",
		}),
	}
}

// RegisterMetrics registers the store's collectors with the given
// registerer, e.g. prometheus.DefaultRegisterer.
func (s *Store) RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		s.metrics.writes,
		s.metrics.siblingsPruned,
		s.metrics.keys,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
