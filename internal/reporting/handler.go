package reporting

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/clinicpulse/outcomes-dashboard/internal/doctors"
	"github.com/clinicpulse/outcomes-dashboard/internal/observability/metrics"
	"github.com/clinicpulse/outcomes-dashboard/internal/outcomes"
	"github.com/clinicpulse/outcomes-dashboard/pkg/logging"
)

// Handler serves derived dashboard views over HTTP.
type Handler struct {
	outcomes outcomes.Repository
	doctors  doctors.Repository
	cache    *Cache
	logger   *logging.Logger
	metrics  *metrics.DashboardMetrics
}

// NewHandler creates a dashboard handler. Cache and metrics may be nil.
func NewHandler(out outcomes.Repository, docs doctors.Repository, cache *Cache, logger *logging.Logger, m *metrics.DashboardMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		outcomes: out,
		doctors:  docs,
		cache:    cache,
		logger:   logger,
		metrics:  m,
	}
}

func criteriaFromQuery(r *http.Request) Criteria {
	q := r.URL.Query()
	return Criteria{
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
		Doctor:        q.Get("doctor"),
		Status:        q.Get("status"),
		PatientSearch: q.Get("q"),
	}
}

func yearFromQuery(r *http.Request) int {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 0 {
		return -1
	}
	return year
}

// Dashboard handles GET /dashboard requests. Filter criteria come from query
// parameters; the derived view is cached per criteria when a cache is wired.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	crit := criteriaFromQuery(r)
	year := yearFromQuery(r)
	if year < 0 {
		http.Error(w, `{"error":"invalid year"}`, http.StatusBadRequest)
		return
	}
	if year == 0 {
		year = time.Now().Year()
	}

	if view, ok := h.cache.Get(r.Context(), crit, year); ok {
		h.metrics.ObserveCache("hit")
		h.metrics.ObserveRequest("dashboard", "ok")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(view)
		return
	}
	h.metrics.ObserveCache("miss")

	outs, err := h.outcomes.List(r.Context())
	if err != nil {
		h.metrics.ObserveRequest("dashboard", "error")
		h.logger.Error("failed to list outcomes for dashboard", "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	docs, err := h.doctors.List(r.Context())
	if err != nil {
		h.metrics.ObserveRequest("dashboard", "error")
		h.logger.Error("failed to list doctors for dashboard", "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	start := time.Now()
	view := DeriveDashboardView(outs, docs, crit, year)
	h.metrics.ObserveDeriveLatency("dashboard", time.Since(start).Seconds())

	if err := h.cache.Set(r.Context(), crit, year, &view); err != nil {
		h.logger.Warn("failed to cache dashboard view", "error", err)
	}

	h.metrics.ObserveRequest("dashboard", "ok")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// Annual handles GET /dashboard/annual requests. The year defaults to the
// current calendar year, the doctor restriction to everyone.
func (h *Handler) Annual(w http.ResponseWriter, r *http.Request) {
	year := yearFromQuery(r)
	if year < 0 {
		http.Error(w, `{"error":"invalid year"}`, http.StatusBadRequest)
		return
	}
	doctor := r.URL.Query().Get("doctor")

	outs, err := h.outcomes.List(r.Context())
	if err != nil {
		h.metrics.ObserveRequest("annual", "error")
		h.logger.Error("failed to list outcomes for annual view", "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	docs, err := h.doctors.List(r.Context())
	if err != nil {
		h.metrics.ObserveRequest("annual", "error")
		h.logger.Error("failed to list doctors for annual view", "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	start := time.Now()
	view := DeriveAnnualView(outs, docs, year, doctor)
	h.metrics.ObserveDeriveLatency("annual", time.Since(start).Seconds())

	h.metrics.ObserveRequest("annual", "ok")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}
