// Package metrics collects prometheus metrics about query execution.
package metrics

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type Metrics struct {
	registry *prometheus.Registry

	// Counters
	Queries    *prometheus.CounterVec
	Solutions  *prometheus.CounterVec
	Suspension prometheus.Counter

	// Latency
	QueryLatency *prometheus.SummaryVec
}

func New() *Metrics {
	m := &Metrics{
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kanren_queries_total",
				Help: "number of queries run, by execution mode",
			},
			[]string{"mode"},
		),
		Solutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kanren_solutions_total",
				Help: "number of reified answers produced, by query",
			},
			[]string{"query"},
		),
		Suspension: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "kanren_suspensions_forced_total",
				Help: "number of stream suspensions forced while pulling answers",
			},
		),
		QueryLatency: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "kanren_query_latency_ns",
				Help: "latency to produce all requested answers of a query",
			},
			[]string{"query"},
		),
	}
	m.registry = prometheus.NewPedanticRegistry()
	reg := m.registry

	reg.MustRegister(m.Queries)
	reg.MustRegister(m.Solutions)
	reg.MustRegister(m.Suspension)
	reg.MustRegister(m.QueryLatency)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes every metric in the prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "writing metrics")
		}
	}
	return nil
}
