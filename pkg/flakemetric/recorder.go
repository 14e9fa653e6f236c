package flakemetric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// namespace prefixes every metric this package registers.
const namespace = "flakely"

// Recorder implements flake.Recorder backed by Prometheus counters.
type Recorder struct {
	minted      prometheus.Counter
	validations *prometheus.CounterVec
	wraps       prometheus.Counter
	regressions prometheus.Counter
}

// New creates a Recorder and registers its collectors with reg.
// A nil reg uses the default Prometheus registerer.
func New(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		minted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_minted_total",
			Help:      "Total number of tokens minted.",
		}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Total number of token validations by result.",
		}, []string{"result"}),
		wraps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "counter_wraps_total",
			Help:      "Times the intra-tick counter wrapped within one tick.",
		}),
		regressions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clock_regressions_total",
			Help:      "Times a mint observed the wall clock moving backwards.",
		}),
	}

	collectors := []prometheus.Collector{r.minted, r.validations, r.wraps, r.regressions}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// Pre-create label values so both series exist from the start.
	r.validations.WithLabelValues("ok")
	r.validations.WithLabelValues("mismatch")

	return r, nil
}

// TokenMinted implements flake.Recorder.
func (r *Recorder) TokenMinted() {
	r.minted.Inc()
}

// TokenValidated implements flake.Recorder.
func (r *Recorder) TokenValidated(ok bool) {
	if ok {
		r.validations.WithLabelValues("ok").Inc()
	} else {
		r.validations.WithLabelValues("mismatch").Inc()
	}
}

// CounterWrapped implements flake.Recorder.
func (r *Recorder) CounterWrapped() {
	r.wraps.Inc()
}

// ClockRegressed implements flake.Recorder.
func (r *Recorder) ClockRegressed() {
	r.regressions.Inc()
}
