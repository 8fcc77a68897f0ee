package pathplot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vdobler/pathplot/scene"
)

// Metrics counts the work done by render passes. A nil *Metrics counts
// nothing.
type Metrics struct {
	Passes  prometheus.Counter
	Entered *prometheus.CounterVec // by element class
	Exited  *prometheus.CounterVec // by element class
}

// NewMetrics creates the counters and registers them with reg unless reg is
// nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pathplot",
			Name:      "render_passes_total",
			Help:      "Number of completed dataset render passes.",
		}),
		Entered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathplot",
			Name:      "elements_entered_total",
			Help:      "Number of scene elements created by joins.",
		}, []string{"class"}),
		Exited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathplot",
			Name:      "elements_exited_total",
			Help:      "Number of scene elements removed by joins or orientation changes.",
		}, []string{"class"}),
	}
	if reg != nil {
		reg.MustRegister(m.Passes, m.Entered, m.Exited)
	}
	return m
}

func (m *Metrics) pass() {
	if m == nil {
		return
	}
	m.Passes.Inc()
}

func (m *Metrics) entered(class string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Entered.WithLabelValues(class).Add(float64(n))
}

func (m *Metrics) exited(class string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Exited.WithLabelValues(class).Add(float64(n))
}

// exit removes the stale elements of j and counts the join's elements.
func (m *Metrics) exit(class string, j *scene.Join) {
	m.entered(class, j.NumEntered())
	m.exited(class, j.Exit())
}

// removeAll removes the tag/class descendants of e and counts them.
func (m *Metrics) removeAll(e *scene.Element, tag scene.Tag, class string) {
	m.exited(class, e.RemoveAll(tag, class))
}
