package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRecordMetrics(reg)
	m.ObserveChange("outcome", "create", "ok")
	m.ObserveChange("outcome", "create", "ok")
	m.ObserveChange("doctor", "delete", "error")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var family *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "clinicpulse_records_changes_total" {
			family = mf
			break
		}
	}
	if family == nil {
		t.Fatal("expected records changes family to be registered")
	}
	var outcomeCreates float64
	for _, metric := range family.Metric {
		if hasLabel(metric, "entity", "outcome") && hasLabel(metric, "action", "create") {
			outcomeCreates = metric.GetCounter().GetValue()
		}
	}
	if outcomeCreates != 2 {
		t.Fatalf("outcome creates = %v, want 2", outcomeCreates)
	}
}

func TestDashboardMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDashboardMetrics(reg)
	m.ObserveRequest("dashboard", "ok")
	m.ObserveDeriveLatency("dashboard", 0.02)
	m.ObserveCache("hit")
	m.ObserveCache("miss")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"clinicpulse_dashboard_requests_total",
		"clinicpulse_dashboard_derive_latency_seconds",
		"clinicpulse_dashboard_cache_total",
	} {
		if !names[want] {
			t.Errorf("expected family %s to be registered", want)
		}
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var rm *RecordMetrics
	rm.ObserveChange("outcome", "create", "ok")

	var dm *DashboardMetrics
	dm.ObserveRequest("dashboard", "ok")
	dm.ObserveDeriveLatency("dashboard", 0.1)
	dm.ObserveCache("hit")
}

func hasLabel(metric *dto.Metric, name, value string) bool {
	for _, lp := range metric.Label {
		if lp.GetName() == name && lp.GetValue() == value {
			return true
		}
	}
	return false
}
