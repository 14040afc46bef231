package doctors

import (
	"strings"
	"time"
)

// Doctor represents a clinic doctor. Name doubles as the join key outcomes
// reference; deleting a doctor leaves historical outcomes pointing at the
// stale name on purpose.
type Doctor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDoctorRequest represents the request body for adding a doctor
type CreateDoctorRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Validate validates the create doctor request
func (r *CreateDoctorRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Specialty = strings.TrimSpace(r.Specialty)
	if r.Name == "" {
		return ErrMissingName
	}
	return nil
}

// UpdateDoctorRequest carries a partial update; nil fields are left untouched.
type UpdateDoctorRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// Validate checks the provided fields.
func (r *UpdateDoctorRequest) Validate() error {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		if trimmed == "" {
			return ErrMissingName
		}
		*r.Name = trimmed
	}
	if r.Name == nil && r.Specialty == nil && r.IsActive == nil {
		return ErrNoFields
	}
	return nil
}
