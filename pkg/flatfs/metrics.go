package flatfs

import "github.com/prometheus/client_golang/prometheus"

const (
	opPut     = "put"
	opGet     = "get"
	opGetSize = "get_size"
	opDelete  = "delete"
)

// opMetrics counts store operations and their failures per operation kind.
// A nil *opMetrics is valid and collects nothing.
type opMetrics struct {
	calls    *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newOpMetrics(r prometheus.Registerer) *opMetrics {
	m := &opMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flatfs",
			Name:      "operations_total",
			Help:      "Total number of store operations, by operation.",
		}, []string{"op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flatfs",
			Name:      "operation_failures_total",
			Help:      "Total number of store operations that returned an error, by operation.",
		}, []string{"op"}),
	}

	r.MustRegister(m.calls, m.failures)

	return m
}

func (m *opMetrics) observe(op string, err error) {
	if m == nil {
		return
	}

	m.calls.WithLabelValues(op).Inc()

	if err != nil {
		m.failures.WithLabelValues(op).Inc()
	}
}
