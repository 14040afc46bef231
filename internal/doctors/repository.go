package doctors

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for doctor storage. List returns doctors
// ordered by name ascending.
type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	Create(ctx context.Context, req *CreateDoctorRequest) (*Doctor, error)
	Update(ctx context.Context, id string, req *UpdateDoctorRequest) (*Doctor, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository keeps doctors in memory.
type InMemoryRepository struct {
	mu      sync.RWMutex
	doctors map[string]*Doctor
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		doctors: make(map[string]*Doctor),
	}
}

// List returns all doctors sorted by name.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		copied := *d
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Create adds a new active doctor.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateDoctorRequest) (*Doctor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d := &Doctor{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Specialty: req.Specialty,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.doctors[d.ID] = d
	r.mu.Unlock()

	copied := *d
	return &copied, nil
}

// Update applies the provided fields to an existing doctor.
func (r *InMemoryRepository) Update(ctx context.Context, id string, req *UpdateDoctorRequest) (*Doctor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Specialty != nil {
		d.Specialty = *req.Specialty
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	copied := *d
	return &copied, nil
}

// Delete removes a doctor. Outcomes referencing the name are left untouched.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.doctors[id]; !ok {
		return ErrDoctorNotFound
	}
	delete(r.doctors, id)
	return nil
}
