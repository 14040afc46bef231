package doctors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

func doctorRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "specialty", "is_active", "created_at"})
}

func TestPostgresRepositoryList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	created := time.Date(2024, 11, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM doctors ORDER BY name`).
		WillReturnRows(doctorRows().
			AddRow("id-1", "Dr. Chen", "", true, created).
			AddRow("id-2", "Dr. Lee", "Dermatology", false, created))

	repo := NewPostgresRepositoryWithDB(mock)
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(items))
	}
	if items[1].Specialty != "Dermatology" || items[1].IsActive {
		t.Errorf("unexpected doctor %+v", items[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	created := time.Date(2024, 11, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO doctors`).
		WithArgs(pgxmock.AnyArg(), "Dr. Lee", "Dermatology").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	repo := NewPostgresRepositoryWithDB(mock)
	d, err := repo.Create(context.Background(), &CreateDoctorRequest{Name: "Dr. Lee", Specialty: "Dermatology"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !d.IsActive {
		t.Error("expected new doctor active")
	}
	if !d.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", d.CreatedAt, created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepositoryUpdateNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	inactive := false
	mock.ExpectQuery(`UPDATE doctors SET is_active = \$1 WHERE id = \$2`).
		WithArgs(inactive, "missing").
		WillReturnRows(doctorRows())

	repo := NewPostgresRepositoryWithDB(mock)
	_, err = repo.Update(context.Background(), "missing", &UpdateDoctorRequest{IsActive: &inactive})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("got %v, want ErrDoctorNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepositoryDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM doctors WHERE id = \$1`).
		WithArgs("id-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewPostgresRepositoryWithDB(mock)
	if err := repo.Delete(context.Background(), "id-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
