package outcomes

import (
	"errors"
	"testing"
)

func TestCreateOutcomeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateOutcomeRequest
		wantErr error
	}{
		{
			name: "valid success outcome",
			req:  CreateOutcomeRequest{PatientName: "Tan", Date: "2025-03-05", Doctor: "Dr. Lee", Status: StatusSuccess},
		},
		{
			name: "valid no-show without doctor",
			req:  CreateOutcomeRequest{PatientName: "Tan", Date: "2025-03-05", Status: StatusNoShow},
		},
		{
			name:    "missing patient name",
			req:     CreateOutcomeRequest{Date: "2025-03-05", Doctor: "Dr. Lee", Status: StatusSuccess},
			wantErr: ErrMissingPatientName,
		},
		{
			name:    "whitespace patient name",
			req:     CreateOutcomeRequest{PatientName: "   ", Date: "2025-03-05", Doctor: "Dr. Lee", Status: StatusSuccess},
			wantErr: ErrMissingPatientName,
		},
		{
			name:    "missing date",
			req:     CreateOutcomeRequest{PatientName: "Tan", Doctor: "Dr. Lee", Status: StatusSuccess},
			wantErr: ErrMissingDate,
		},
		{
			name:    "malformed date",
			req:     CreateOutcomeRequest{PatientName: "Tan", Date: "05/03/2025", Doctor: "Dr. Lee", Status: StatusSuccess},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown status",
			req:     CreateOutcomeRequest{PatientName: "Tan", Date: "2025-03-05", Doctor: "Dr. Lee", Status: "Rescheduled"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "consult without doctor",
			req:     CreateOutcomeRequest{PatientName: "Tan", Date: "2025-03-05", Status: StatusConsultOnly},
			wantErr: ErrMissingDoctor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateOutcomeRequestValidateClearsDoctorOnNoShow(t *testing.T) {
	req := CreateOutcomeRequest{PatientName: "Tan", Date: "2025-03-05", Doctor: "Dr. Lee", Status: StatusNoShow}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Doctor != "" {
		t.Fatalf("expected doctor cleared for no-show, got %q", req.Doctor)
	}
}

func TestUpdateOutcomeRequestValidate(t *testing.T) {
	name := "Lim"
	badDate := "yesterday"
	badStatus := Status("Maybe")

	t.Run("empty update rejected", func(t *testing.T) {
		req := UpdateOutcomeRequest{}
		if err := req.Validate(); !errors.Is(err, ErrNoFields) {
			t.Fatalf("got %v, want ErrNoFields", err)
		}
	})

	t.Run("partial name update passes", func(t *testing.T) {
		req := UpdateOutcomeRequest{PatientName: &name}
		if err := req.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad date rejected", func(t *testing.T) {
		req := UpdateOutcomeRequest{Date: &badDate}
		if err := req.Validate(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("got %v, want ErrInvalidDate", err)
		}
	})

	t.Run("bad status rejected", func(t *testing.T) {
		req := UpdateOutcomeRequest{Status: &badStatus}
		if err := req.Validate(); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("got %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("switch off no-show with blank doctor rejected", func(t *testing.T) {
		success := StatusSuccess
		blank := "  "
		req := UpdateOutcomeRequest{Status: &success, Doctor: &blank}
		if err := req.Validate(); !errors.Is(err, ErrMissingDoctor) {
			t.Fatalf("got %v, want ErrMissingDoctor", err)
		}
	})

	t.Run("doctor trimmed", func(t *testing.T) {
		doc := "  Dr. Lee  "
		req := UpdateOutcomeRequest{Doctor: &doc}
		if err := req.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *req.Doctor != "Dr. Lee" {
			t.Fatalf("doctor = %q, want trimmed", *req.Doctor)
		}
	})

	t.Run("switch to no-show clears doctor", func(t *testing.T) {
		ns := StatusNoShow
		doc := "Dr. Lee"
		req := UpdateOutcomeRequest{Status: &ns, Doctor: &doc}
		if err := req.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Doctor == nil || *req.Doctor != "" {
			t.Fatalf("expected doctor forced empty, got %v", req.Doctor)
		}
	})
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusSuccess, StatusConsultOnly, StatusNoShow} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if Status("success").Valid() {
		t.Error("status matching is case-sensitive; lowercase must be invalid")
	}
}
