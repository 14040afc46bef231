package doctors

import "errors"

var (
	// ErrMissingName is returned when the doctor name is empty
	ErrMissingName = errors.New("doctor name is required")

	// ErrNoFields is returned when an update request touches nothing
	ErrNoFields = errors.New("no fields to update")

	// ErrDoctorNotFound is returned when a doctor is not found
	ErrDoctorNotFound = errors.New("doctor not found")
)

// IsValidation reports whether err is a request validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingName) || errors.Is(err, ErrNoFields)
}
