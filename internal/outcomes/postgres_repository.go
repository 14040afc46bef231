package outcomes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// outcomesDB defines the database interface needed by PostgresRepository.
// Satisfied by *pgxpool.Pool and by pgxmock pools in tests.
type outcomesDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores outcomes in the relational database. The wire
// schema is snake_case; mapping to the domain model happens here and nowhere
// else.
type PostgresRepository struct {
	db outcomesDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("outcomes: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db outcomesDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const outcomeColumns = `id, patient_name, COALESCE(contact_number, ''), visit_date, COALESCE(doctor, ''), status, COALESCE(notes, ''), created_at`

func scanOutcome(row pgx.Row) (*PatientOutcome, error) {
	var o PatientOutcome
	var visitDate time.Time
	if err := row.Scan(
		&o.ID,
		&o.PatientName,
		&o.ContactNumber,
		&visitDate,
		&o.Doctor,
		&o.Status,
		&o.Notes,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	o.Date = visitDate.Format(visitDateLayout)
	return &o, nil
}

// List returns every outcome, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*PatientOutcome, error) {
	query := `SELECT ` + outcomeColumns + ` FROM patient_outcomes ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("outcomes: list: %w", err)
	}
	defer rows.Close()

	var out []*PatientOutcome
	for rows.Next() {
		o, err := scanOutcome(rows)
		if err != nil {
			return nil, fmt.Errorf("outcomes: scan: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("outcomes: iterate: %w", err)
	}
	return out, nil
}

// GetByID fetches a single outcome.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*PatientOutcome, error) {
	query := `SELECT ` + outcomeColumns + ` FROM patient_outcomes WHERE id = $1`
	o, err := scanOutcome(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrOutcomeNotFound
		}
		return nil, fmt.Errorf("outcomes: select: %w", err)
	}
	return o, nil
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateOutcomeRequest) (*PatientOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO patient_outcomes (id, patient_name, contact_number, visit_date, doctor, status, notes)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.PatientName,
		req.ContactNumber,
		req.Date,
		req.Doctor,
		req.Status,
		req.Notes,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("outcomes: insert: %w", err)
	}

	return &PatientOutcome{
		ID:            id.String(),
		PatientName:   req.PatientName,
		ContactNumber: req.ContactNumber,
		Date:          req.Date,
		Doctor:        req.Doctor,
		Status:        req.Status,
		Notes:         req.Notes,
		CreatedAt:     createdAt,
	}, nil
}

// Update applies only the provided fields and returns the updated row.
func (r *PostgresRepository) Update(ctx context.Context, id string, req *UpdateOutcomeRequest) (*PatientOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Flipping a no-show to a kept status needs a doctor from somewhere.
	if req.Status != nil && *req.Status != StatusNoShow && req.Doctor == nil {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Doctor == "" {
			return nil, ErrMissingDoctor
		}
	}

	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.PatientName != nil {
		add("patient_name", *req.PatientName)
	}
	if req.ContactNumber != nil {
		add("contact_number", *req.ContactNumber)
	}
	if req.Date != nil {
		add("visit_date", *req.Date)
	}
	if req.Doctor != nil {
		args = append(args, *req.Doctor)
		sets = append(sets, fmt.Sprintf("doctor = NULLIF($%d, '')", len(args)))
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	if req.Notes != nil {
		add("notes", *req.Notes)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE patient_outcomes SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), outcomeColumns,
	)

	o, err := scanOutcome(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrOutcomeNotFound
		}
		return nil, fmt.Errorf("outcomes: update: %w", err)
	}
	return o, nil
}

// Delete removes a row.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patient_outcomes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("outcomes: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOutcomeNotFound
	}
	return nil
}
