package templates

import (
	"strings"
	"time"

	"github.com/clinicpulse/outcomes-dashboard/internal/outcomes"
)

const displayDateLayout = "02 Jan 2006"

// Personalize substitutes the placeholders in content with the patient's
// details. A nil outcome returns the content untouched so the library can be
// browsed without a patient selected. The doctor placeholder becomes the
// empty string for outcomes without a doctor, and an unparseable visit date
// falls back to the raw string rather than failing.
func Personalize(content string, o *outcomes.PatientOutcome) string {
	if o == nil {
		return content
	}

	date := o.Date
	if d, err := time.Parse("2006-01-02", o.Date); err == nil {
		date = d.Format(displayDateLayout)
	}

	content = strings.ReplaceAll(content, "[Patient Name]", o.PatientName)
	content = strings.ReplaceAll(content, "[Doctor Name]", o.Doctor)
	content = strings.ReplaceAll(content, "[Date]", date)
	return content
}
