package outcomes

import (
	"strings"
	"time"
)

// Status is the recorded result of a patient visit.
type Status string

const (
	StatusSuccess     Status = "Success"
	StatusConsultOnly Status = "Consult Only"
	StatusNoShow      Status = "No Show"
)

// Valid reports whether s is one of the three recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusConsultOnly, StatusNoShow:
		return true
	}
	return false
}

// visitDateLayout is the storage and wire format for visit dates. Lexicographic
// comparison of two dates in this layout matches chronological order, which the
// reporting engine relies on.
const visitDateLayout = "2006-01-02"

// PatientOutcome is one recorded patient visit result. Doctor is a denormalized
// name string, not a foreign key; an empty Doctor means no doctor is attached
// (required for no-shows). CreatedAt is set once by the store and never updated.
type PatientOutcome struct {
	ID            string    `json:"id"`
	PatientName   string    `json:"patient_name"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Date          string    `json:"date"`
	Doctor        string    `json:"doctor,omitempty"`
	Status        Status    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateOutcomeRequest represents the request body for recording an outcome
type CreateOutcomeRequest struct {
	PatientName   string `json:"patient_name"`
	ContactNumber string `json:"contact_number"`
	Date          string `json:"date"`
	Doctor        string `json:"doctor"`
	Status        Status `json:"status"`
	Notes         string `json:"notes"`
}

// Validate checks required fields and enforces the no-show invariant: a
// "No Show" outcome carries no doctor, every other status requires one.
// A doctor supplied alongside a no-show is dropped rather than rejected,
// matching how the entry form discards the selection.
func (r *CreateOutcomeRequest) Validate() error {
	r.PatientName = strings.TrimSpace(r.PatientName)
	r.Doctor = strings.TrimSpace(r.Doctor)
	if r.PatientName == "" {
		return ErrMissingPatientName
	}
	if r.Date == "" {
		return ErrMissingDate
	}
	if _, err := time.Parse(visitDateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if !r.Status.Valid() {
		return ErrInvalidStatus
	}
	if r.Status == StatusNoShow {
		r.Doctor = ""
	} else if r.Doctor == "" {
		return ErrMissingDoctor
	}
	return nil
}

// UpdateOutcomeRequest carries a partial update; nil fields are left untouched.
type UpdateOutcomeRequest struct {
	PatientName   *string `json:"patient_name,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Date          *string `json:"date,omitempty"`
	Doctor        *string `json:"doctor,omitempty"`
	Status        *Status `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// Validate checks the provided fields. Changing status to "No Show" clears the
// doctor even when the request does not mention it; changing it away from
// "No Show" with an explicitly empty doctor is rejected. The remaining case,
// a status flip off a no-show record that omits the doctor entirely, is
// checked against the stored row by the repository.
func (r *UpdateOutcomeRequest) Validate() error {
	if r.PatientName != nil {
		trimmed := strings.TrimSpace(*r.PatientName)
		if trimmed == "" {
			return ErrMissingPatientName
		}
		*r.PatientName = trimmed
	}
	if r.Doctor != nil {
		*r.Doctor = strings.TrimSpace(*r.Doctor)
	}
	if r.Date != nil {
		if *r.Date == "" {
			return ErrMissingDate
		}
		if _, err := time.Parse(visitDateLayout, *r.Date); err != nil {
			return ErrInvalidDate
		}
	}
	if r.Status != nil && !r.Status.Valid() {
		return ErrInvalidStatus
	}
	if r.Status != nil && *r.Status == StatusNoShow {
		empty := ""
		r.Doctor = &empty
	}
	if r.Status != nil && *r.Status != StatusNoShow && r.Doctor != nil && *r.Doctor == "" {
		return ErrMissingDoctor
	}
	if r.Empty() {
		return ErrNoFields
	}
	return nil
}

// Empty reports whether the update touches no fields.
func (r *UpdateOutcomeRequest) Empty() bool {
	return r.PatientName == nil && r.ContactNumber == nil && r.Date == nil &&
		r.Doctor == nil && r.Status == nil && r.Notes == nil
}
