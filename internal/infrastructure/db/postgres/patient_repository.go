package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

// Unique index names from migrations/001_init.sql. The insert path matches
// constraint violations by name, so a registration race is classified to the
// exact field that collided.
const (
	usernameConstraint = "patients_username_lower_key"
	emailConstraint    = "patients_email_lower_key"
)

const uniqueViolation = "23505"

type PatientRepository struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

const patientCols = `id, username, email, password_hash, phone, gender, date_of_birth, created_at, updated_at`

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	var p domain.Patient
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash,
		&p.Phone, &p.Gender, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("scan patient: %w", err)
	}
	return &p, nil
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (id, username, email, password_hash, phone, gender, date_of_birth, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.Username, p.Email, p.PasswordHash, p.Phone, p.Gender, p.DateOfBirth, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if field, ok := conflictField(err); ok {
			return &domain.ConflictError{Field: field}
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// conflictField classifies a unique-constraint violation by constraint name.
func conflictField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return "", false
	}
	switch pgErr.ConstraintName {
	case usernameConstraint:
		return "username", true
	case emailConstraint:
		return "email", true
	}
	return "", false
}

func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *PatientRepository) FindByUsername(ctx context.Context, username string) (*domain.Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE LOWER(username) = LOWER($1)`, username))
}

func (r *PatientRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE LOWER(username) = LOWER($1))`, username).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("username taken: %w", err)
	}
	return taken, nil
}

func (r *PatientRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE LOWER(email) = LOWER($1))`, email).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("email taken: %w", err)
	}
	return taken, nil
}

func (r *PatientRepository) UpdateProfile(ctx context.Context, p *domain.Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET phone=$2, gender=$3, date_of_birth=$4, updated_at=$5
		WHERE id = $1`,
		p.ID, p.Phone, p.Gender, p.DateOfBirth, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}
