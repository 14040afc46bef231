package outcomes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for outcome storage. List returns outcomes
// ordered by creation time descending, newest first.
type Repository interface {
	List(ctx context.Context) ([]*PatientOutcome, error)
	GetByID(ctx context.Context, id string) (*PatientOutcome, error)
	Create(ctx context.Context, req *CreateOutcomeRequest) (*PatientOutcome, error)
	Update(ctx context.Context, id string, req *UpdateOutcomeRequest) (*PatientOutcome, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository keeps outcomes in memory. Used when no database is
// configured and by handler tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	outcomes map[string]*PatientOutcome
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		outcomes: make(map[string]*PatientOutcome),
	}
}

// List returns all outcomes, newest first.
func (r *InMemoryRepository) List(ctx context.Context) ([]*PatientOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*PatientOutcome, 0, len(r.outcomes))
	for _, o := range r.outcomes {
		copied := *o
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID retrieves an outcome by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*PatientOutcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.outcomes[id]
	if !ok {
		return nil, ErrOutcomeNotFound
	}
	copied := *o
	return &copied, nil
}

// Create records a new outcome in memory
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateOutcomeRequest) (*PatientOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o := &PatientOutcome{
		ID:            uuid.New().String(),
		PatientName:   req.PatientName,
		ContactNumber: req.ContactNumber,
		Date:          req.Date,
		Doctor:        req.Doctor,
		Status:        req.Status,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	r.mu.Lock()
	r.outcomes[o.ID] = o
	r.mu.Unlock()

	copied := *o
	return &copied, nil
}

// Update applies the provided fields to an existing outcome.
func (r *InMemoryRepository) Update(ctx context.Context, id string, req *UpdateOutcomeRequest) (*PatientOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.outcomes[id]
	if !ok {
		return nil, ErrOutcomeNotFound
	}
	// Flipping a no-show to a kept status needs a doctor from somewhere.
	if req.Status != nil && *req.Status != StatusNoShow && req.Doctor == nil && o.Doctor == "" {
		return nil, ErrMissingDoctor
	}
	if req.PatientName != nil {
		o.PatientName = *req.PatientName
	}
	if req.ContactNumber != nil {
		o.ContactNumber = *req.ContactNumber
	}
	if req.Date != nil {
		o.Date = *req.Date
	}
	if req.Doctor != nil {
		o.Doctor = *req.Doctor
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}

	copied := *o
	return &copied, nil
}

// Delete removes an outcome.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.outcomes[id]; !ok {
		return ErrOutcomeNotFound
	}
	delete(r.outcomes, id)
	return nil
}
