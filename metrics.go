package crptgate

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// clientMetrics tracks admission and submission activity. A nil receiver is
// valid and records nothing.
type clientMetrics struct {
	admissions  prometheus.Counter
	waitSeconds prometheus.Histogram
	submissions *prometheus.CounterVec
}

func newClientMetrics(registerer prometheus.Registerer) (*clientMetrics, error) {
	m := &clientMetrics{
		admissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crptgate",
			Name:      "admissions_total",
			Help:      "Number of admissions granted by the gate.",
		}),
		waitSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crptgate",
			Name:      "admission_wait_seconds",
			Help:      "Time callers spent blocked waiting for admission.",
			Buckets:   prometheus.DefBuckets,
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crptgate",
			Name:      "submissions_total",
			Help:      "Number of submissions by outcome status code.",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{m.admissions, m.waitSeconds, m.submissions} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *clientMetrics) observeAdmission(waited time.Duration) {
	if m == nil {
		return
	}
	m.admissions.Inc()
	m.waitSeconds.Observe(waited.Seconds())
}

// observeSubmission records an outcome; status 0 means the request never
// completed.
func (m *clientMetrics) observeSubmission(status int) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(strconv.Itoa(status)).Inc()
}
