package outcomes

import "errors"

var (
	// ErrMissingPatientName is returned when the patient name is empty
	ErrMissingPatientName = errors.New("patient name is required")

	// ErrMissingDate is returned when the visit date is empty
	ErrMissingDate = errors.New("visit date is required")

	// ErrInvalidDate is returned when the visit date is not YYYY-MM-DD
	ErrInvalidDate = errors.New("visit date must be YYYY-MM-DD")

	// ErrInvalidStatus is returned for statuses outside the closed enum
	ErrInvalidStatus = errors.New("status must be Success, Consult Only or No Show")

	// ErrMissingDoctor is returned when a non-no-show outcome has no doctor
	ErrMissingDoctor = errors.New("doctor is required unless status is No Show")

	// ErrNoFields is returned when an update request touches nothing
	ErrNoFields = errors.New("no fields to update")

	// ErrOutcomeNotFound is returned when an outcome is not found
	ErrOutcomeNotFound = errors.New("outcome not found")
)

// IsValidation reports whether err is one of the request validation errors,
// as opposed to a storage failure.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrMissingPatientName, ErrMissingDate, ErrInvalidDate,
		ErrInvalidStatus, ErrMissingDoctor, ErrNoFields,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
