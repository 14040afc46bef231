package outcomes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicpulse/outcomes-dashboard/internal/observability/metrics"
	"github.com/clinicpulse/outcomes-dashboard/pkg/logging"
)

// Handler handles HTTP requests for patient outcomes
type Handler struct {
	repo    Repository
	logger  *logging.Logger
	metrics *metrics.RecordMetrics
}

// NewHandler creates a new outcomes handler
func NewHandler(repo Repository, logger *logging.Logger, m *metrics.RecordMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

// ListResponse is the response for listing outcomes
type ListResponse struct {
	Outcomes []*PatientOutcome `json:"outcomes"`
	Count    int               `json:"count"`
}

// List handles GET /outcomes requests. Outcomes come back newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list outcomes", "error", err)
		http.Error(w, `{"error":"failed to list outcomes"}`, http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []*PatientOutcome{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListResponse{Outcomes: items, Count: len(items)})
}

// Create handles POST /outcomes requests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	o, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.metrics.ObserveChange("outcome", "create", "error")
		if IsValidation(err) {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create outcome", "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveChange("outcome", "create", "ok")
	h.logger.Info("outcome recorded", "id", o.ID, "patient", o.PatientName, "status", o.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// Update handles PATCH /outcomes/{id} requests
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	o, err := h.repo.Update(r.Context(), id, &req)
	if err != nil {
		h.metrics.ObserveChange("outcome", "update", "error")
		switch {
		case errors.Is(err, ErrOutcomeNotFound):
			http.Error(w, `{"error":"outcome not found"}`, http.StatusNotFound)
		case IsValidation(err):
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		default:
			h.logger.Error("failed to update outcome", "id", id, "error", err)
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		}
		return
	}

	h.metrics.ObserveChange("outcome", "update", "ok")
	h.logger.Info("outcome updated", "id", o.ID, "patient", o.PatientName)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// Delete handles DELETE /outcomes/{id} requests
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.metrics.ObserveChange("outcome", "delete", "error")
		if errors.Is(err, ErrOutcomeNotFound) {
			http.Error(w, `{"error":"outcome not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete outcome", "id", id, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveChange("outcome", "delete", "ok")
	h.logger.Info("outcome deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
