package templates

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicpulse/outcomes-dashboard/internal/outcomes"
	"github.com/clinicpulse/outcomes-dashboard/pkg/logging"
)

// Handler serves the follow-up template library.
type Handler struct {
	library  []FollowUpTemplate
	outcomes outcomes.Repository
	logger   *logging.Logger
}

// NewHandler creates a templates handler over the default library.
func NewHandler(out outcomes.Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		library:  DefaultTemplates(),
		outcomes: out,
		logger:   logger,
	}
}

// ListResponse is the response for listing templates
type ListResponse struct {
	Templates []FollowUpTemplate `json:"templates"`
	Count     int                `json:"count"`
}

// List handles GET /templates requests, optionally filtered by ?q=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	matched := Search(h.library, r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListResponse{Templates: matched, Count: len(matched)})
}

// PersonalizeRequest selects the outcome to personalize against. An empty
// OutcomeID returns the template text as-is.
type PersonalizeRequest struct {
	OutcomeID string `json:"outcome_id"`
}

// PersonalizeResponse carries the rendered message.
type PersonalizeResponse struct {
	TemplateID string `json:"template_id"`
	Message    string `json:"message"`
}

// Personalize handles POST /templates/{id}/personalize requests.
func (h *Handler) Personalize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tmpl, ok := FindByID(h.library, id)
	if !ok {
		http.Error(w, `{"error":"template not found"}`, http.StatusNotFound)
		return
	}

	// An absent body means no patient selected, same as an empty outcome_id.
	var req PersonalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	var o *outcomes.PatientOutcome
	if req.OutcomeID != "" {
		var err error
		o, err = h.outcomes.GetByID(r.Context(), req.OutcomeID)
		if err != nil {
			if errors.Is(err, outcomes.ErrOutcomeNotFound) {
				http.Error(w, `{"error":"outcome not found"}`, http.StatusNotFound)
				return
			}
			h.logger.Error("failed to load outcome for personalization", "id", req.OutcomeID, "error", err)
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PersonalizeResponse{
		TemplateID: tmpl.ID,
		Message:    Personalize(tmpl.Content, o),
	})
}
