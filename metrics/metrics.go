// Package metrics exports sequence work counters to prometheus.
package metrics

import (
	"sync"

	"github.com/amp-labs/amp-sorted/sorted"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	comparisons = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorted_comparisons_total",
		Help: "The total number of comparisons performed by a sequence",
	}, []string{"sequence"})

	moves = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorted_element_moves_total",
		Help: "The total number of elements shifted by a sequence",
	}, []string{"sequence"})

	elements = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "sorted_elements",
		Help: "The number of elements currently held by a sequence",
	}, []string{"sequence"})

	inputs = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedmerge_inputs_total",
		Help: "The total number of merge inputs, by how they were handled",
	}, []string{"outcome"})
)

// Input outcomes recorded by ObserveInput.
const (
	OutcomePresorted = "presorted"
	OutcomeResorted  = "resorted"
	OutcomeFailed    = "failed"
)

// Source is anything that keeps sorted.Stats, typically a *sorted.Sequence.
type Source interface {
	Stats() sorted.Stats
	Len() int
}

var (
	lastMutex sync.Mutex                      //nolint:gochecknoglobals
	last      = make(map[string]sorted.Stats) //nolint:gochecknoglobals
)

// Report adds the work src has done since the previous Report under the same
// name to the counters, and sets the element gauge. If the stats went
// backwards (the sequence's ResetStats was called) the current totals are
// counted as new work.
func Report(name string, src Source) {
	current := src.Stats()

	lastMutex.Lock()
	previous := last[name]
	last[name] = current
	lastMutex.Unlock()

	delta := current
	if current.Comparisons >= previous.Comparisons && current.Moves >= previous.Moves {
		delta = current.Sub(previous)
	}

	comparisons.WithLabelValues(name).Add(float64(delta.Comparisons))
	moves.WithLabelValues(name).Add(float64(delta.Moves))
	elements.WithLabelValues(name).Set(float64(src.Len()))
}

// ObserveInput counts one merge input with the given outcome.
func ObserveInput(outcome string) {
	inputs.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes every registered metric to path in the prometheus
// text format, for the node exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
