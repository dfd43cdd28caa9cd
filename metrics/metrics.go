// Package metrics exports vf search statistics as Prometheus metrics.
//
// A Collector is a vf.StatsObserver: pass it with vf.WithStatsObserver and
// every finished search adds its counters, labelled by search mode.
//
//	reg := prometheus.NewRegistry()
//	c, err := metrics.NewCollector(reg, "vflib")
//	...
//	vf.MatchAll(g1, g2, vf.WithStatsObserver(c))
package metrics

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/vflib/vf"
)

const modeLabel = "mode"

// Collector accumulates search statistics.
type Collector struct {
	searches   *prometheus.CounterVec
	candidates *prometheus.CounterVec
	infeasible *prometheus.CounterVec
	guesses    *prometheus.CounterVec
	backtracks *prometheus.CounterVec
	solutions  *prometheus.CounterVec
	perSearch  *prometheus.HistogramVec
}

// NewCollector creates the metrics under namespace and registers them with reg.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, []string{modeLabel})
	}

	c := &Collector{
		searches:   counter("searches_total", "Finished searches"),
		candidates: counter("candidates_total", "Candidate pairs drawn"),
		infeasible: counter("infeasible_total", "Candidate pairs rejected"),
		guesses:    counter("guesses_total", "Pairs committed without completing a match"),
		backtracks: counter("backtracks_total", "Search frames undone"),
		solutions:  counter("solutions_total", "Matches reported"),
		perSearch: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidates_per_search",
			Help:      "Candidate pairs drawn by a single search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{modeLabel}),
	}

	for _, col := range []prometheus.Collector{
		c.searches, c.candidates, c.infeasible, c.guesses, c.backtracks, c.solutions, c.perSearch,
	} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Wrap(err, "metrics: register")
		}
	}

	return c, nil
}

// ObserveSearch implements vf.StatsObserver.
func (c *Collector) ObserveSearch(mode vf.Mode, s vf.Stats) {
	m := mode.String()
	c.searches.WithLabelValues(m).Inc()
	c.candidates.WithLabelValues(m).Add(float64(s.Candidates))
	c.infeasible.WithLabelValues(m).Add(float64(s.Infeasible))
	c.guesses.WithLabelValues(m).Add(float64(s.Guesses))
	c.backtracks.WithLabelValues(m).Add(float64(s.Backtracks))
	c.solutions.WithLabelValues(m).Add(float64(s.Solutions))
	c.perSearch.WithLabelValues(m).Observe(float64(s.Candidates))
}

var _ vf.StatsObserver = (*Collector)(nil)
