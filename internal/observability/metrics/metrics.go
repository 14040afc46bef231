package metrics

import "github.com/prometheus/client_golang/prometheus"

// RecordMetrics exposes counters for CRUD activity on clinic records.
type RecordMetrics struct {
	changesTotal *prometheus.CounterVec
}

func NewRecordMetrics(reg prometheus.Registerer) *RecordMetrics {
	m := &RecordMetrics{
		changesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicpulse",
			Subsystem: "records",
			Name:      "changes_total",
			Help:      "Total create/update/delete operations on clinic records",
		}, []string{"entity", "action", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.changesTotal)
	return m
}

func (m *RecordMetrics) ObserveChange(entity, action, status string) {
	if m == nil {
		return
	}
	m.changesTotal.WithLabelValues(entity, action, status).Inc()
}

// DashboardMetrics exposes counters/histograms for derived dashboard views.
type DashboardMetrics struct {
	requestsTotal *prometheus.CounterVec
	deriveLatency *prometheus.HistogramVec
	cacheTotal    *prometheus.CounterVec
}

func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	m := &DashboardMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicpulse",
			Subsystem: "dashboard",
			Name:      "requests_total",
			Help:      "Total dashboard view requests",
		}, []string{"view", "status"}),
		deriveLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinicpulse",
			Subsystem: "dashboard",
			Name:      "derive_latency_seconds",
			Help:      "Latency of deriving dashboard view models",
			Buckets:   prometheus.DefBuckets,
		}, []string{"view"}),
		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicpulse",
			Subsystem: "dashboard",
			Name:      "cache_total",
			Help:      "Dashboard snapshot cache hits and misses",
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.deriveLatency, m.cacheTotal)
	return m
}

func (m *DashboardMetrics) ObserveRequest(view, status string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(view, status).Inc()
}

func (m *DashboardMetrics) ObserveDeriveLatency(view string, seconds float64) {
	if m == nil {
		return
	}
	m.deriveLatency.WithLabelValues(view).Observe(seconds)
}

func (m *DashboardMetrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheTotal.WithLabelValues(result).Inc()
}
