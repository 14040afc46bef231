package doctors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicpulse/outcomes-dashboard/internal/observability/metrics"
	"github.com/clinicpulse/outcomes-dashboard/pkg/logging"
)

// Handler handles HTTP requests for doctors
type Handler struct {
	repo    Repository
	logger  *logging.Logger
	metrics *metrics.RecordMetrics
}

// NewHandler creates a new doctors handler
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

// ListResponse is the response for listing doctors
type ListResponse struct {
	Doctors []*Doctor `json:"doctors"`
	Count   int       `json:"count"`
}

// List handles GET /doctors requests
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list doctors", "error", err)
		http.Error(w, `{"error":"failed to list doctors"}`, http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []*Doctor{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListResponse{Doctors: items, Count: len(items)})
}

// Create handles POST /doctors requests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	d, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.metrics.ObserveChange("doctor", "create", "error")
		if IsValidation(err) {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create doctor", "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveChange("doctor", "create", "ok")
	h.logger.Info("doctor added", "id", d.ID, "name", d.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// Update handles PATCH /doctors/{id} requests
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	d, err := h.repo.Update(r.Context(), id, &req)
	if err != nil {
		h.metrics.ObserveChange("doctor", "update", "error")
		switch {
		case errors.Is(err, ErrDoctorNotFound):
			http.Error(w, `{"error":"doctor not found"}`, http.StatusNotFound)
		case IsValidation(err):
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		default:
			h.logger.Error("failed to update doctor", "id", id, "error", err)
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		}
		return
	}

	h.metrics.ObserveChange("doctor", "update", "ok")
	h.logger.Info("doctor updated", "id", d.ID, "name", d.Name, "active", d.IsActive)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// Delete handles DELETE /doctors/{id} requests
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.metrics.ObserveChange("doctor", "delete", "error")
		if errors.Is(err, ErrDoctorNotFound) {
			http.Error(w, `{"error":"doctor not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete doctor", "id", id, "error", err)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveChange("doctor", "delete", "ok")
	h.logger.Info("doctor removed", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
