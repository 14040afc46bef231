package doctors

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// doctorsDB defines the database interface needed by PostgresRepository.
type doctorsDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores doctors in the relational database.
type PostgresRepository struct {
	db doctorsDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("doctors: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db doctorsDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const doctorColumns = `id, name, COALESCE(specialty, ''), is_active, created_at`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	if err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.IsActive, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns every doctor ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]*Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("doctors: list: %w", err)
	}
	defer rows.Close()

	var out []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("doctors: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("doctors: iterate: %w", err)
	}
	return out, nil
}

// Create inserts a new active doctor.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateDoctorRequest) (*Doctor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO doctors (id, name, specialty, is_active)
		VALUES ($1, $2, NULLIF($3, ''), TRUE)
		RETURNING created_at
	`
	d := &Doctor{ID: id.String(), Name: req.Name, Specialty: req.Specialty, IsActive: true}
	if err := r.db.QueryRow(ctx, query, id, req.Name, req.Specialty).Scan(&d.CreatedAt); err != nil {
		return nil, fmt.Errorf("doctors: insert: %w", err)
	}
	return d, nil
}

// Update applies only the provided fields and returns the updated row.
func (r *PostgresRepository) Update(ctx context.Context, id string, req *UpdateDoctorRequest) (*Doctor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var sets []string
	var args []any
	if req.Name != nil {
		args = append(args, *req.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Specialty != nil {
		args = append(args, *req.Specialty)
		sets = append(sets, fmt.Sprintf("specialty = NULLIF($%d, '')", len(args)))
	}
	if req.IsActive != nil {
		args = append(args, *req.IsActive)
		sets = append(sets, fmt.Sprintf("is_active = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE doctors SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), doctorColumns,
	)

	d, err := scanDoctor(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("doctors: update: %w", err)
	}
	return d, nil
}

// Delete removes a row. No cascade: outcomes keep the doctor's name string.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("doctors: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
