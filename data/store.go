package data

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// ----------------------------------------------------------------------------
// MemStore

type statsKey struct {
	node, dataset, group string
}

// MemStore is a data store keeping precomputed statistics in memory.
// Statistics are keyed by node ID, dataset ID and group name; the empty
// group name holds the dataset level aggregate.
type MemStore struct {
	stats map[statsKey]Stats
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{stats: make(map[statsKey]Stats)}
}

// Put records the statistics of dataset/group at node.
func (m *MemStore) Put(node, dataset, group string, s Stats) {
	m.stats[statsKey{node, dataset, group}] = s
}

// Delete forgets the statistics of dataset/group at node.
func (m *MemStore) Delete(node, dataset, group string) {
	delete(m.stats, statsKey{node, dataset, group})
}

// AddSamples summarizes xs and records the result like Put.
func (m *MemStore) AddSamples(node, dataset, group string, xs []float64) {
	m.Put(node, dataset, group, Summarize(xs))
}

// StatsForNode returns the statistics of dataset/group at node and whether
// the store has a record for it.
func (m *MemStore) StatsForNode(node Node, dataset, group string) (Stats, bool) {
	s, ok := m.stats[statsKey{node.ID, dataset, group}]
	return s, ok
}

// Summarize computes the box plot statistics of xs. NaN values are counted
// but do not take part in the summary.
func Summarize(xs []float64) Stats {
	clean := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			clean = append(clean, x)
		}
	}

	s := EmptyStats()
	s.NumElements = len(xs)
	s.NaNs = len(xs) - len(clean)
	if len(clean) == 0 {
		return s
	}

	sample := (&stats.Sample{Xs: clean}).Sort()
	s.Min, s.Max = sample.Bounds()
	s.Quartile25 = quantile(sample.Xs, 0.25)
	s.Median = quantile(sample.Xs, 0.5)
	s.Quartile75 = quantile(sample.Xs, 0.75)
	s.Mean = sample.Mean()
	if len(clean) > 1 {
		s.Std = sample.StdDev()
	} else {
		s.Std = 0
	}

	iqr := s.Quartile75 - s.Quartile25
	lo, hi := s.Quartile25-1.5*iqr, s.Quartile75+1.5*iqr
	for _, x := range sample.Xs {
		if x >= lo {
			s.IQRMin = x
			break
		}
	}
	for i := len(sample.Xs) - 1; i >= 0; i-- {
		if x := sample.Xs[i]; x <= hi {
			s.IQRMax = x
			break
		}
	}
	// Whiskers never reach into the box.
	s.IQRMin = math.Min(s.IQRMin, s.Quartile25)
	s.IQRMax = math.Max(s.IQRMax, s.Quartile75)
	return s
}

// quantile returns the p-quantile of the sorted values xs, interpolating
// linearly between the closest ranks (R7, as in d3 and spreadsheets).
func quantile(xs []float64, p float64) float64 {
	h := float64(len(xs)-1) * p
	i := int(math.Floor(h))
	if i+1 >= len(xs) {
		return xs[len(xs)-1]
	}
	return xs[i] + (h-float64(i))*(xs[i+1]-xs[i])
}
