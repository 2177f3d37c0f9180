package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

type PrescriptionRepository struct {
	pool *pgxpool.Pool
}

func NewPrescriptionRepository(pool *pgxpool.Pool) *PrescriptionRepository {
	return &PrescriptionRepository{pool: pool}
}

func (r *PrescriptionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.Prescription, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, title, content, issued_at
		FROM prescriptions
		WHERE patient_id = $1
		ORDER BY issued_at DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	defer rows.Close()

	var items []*domain.Prescription
	for rows.Next() {
		var p domain.Prescription
		if err := rows.Scan(&p.ID, &p.PatientID, &p.Title, &p.Content, &p.IssuedAt); err != nil {
			return nil, fmt.Errorf("scan prescription: %w", err)
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}
