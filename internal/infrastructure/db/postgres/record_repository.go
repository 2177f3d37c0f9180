package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

type RecordRepository struct {
	pool *pgxpool.Pool
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

func (r *RecordRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, title, notes, COALESCE(file_path, ''), created_at
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()

	var items []*domain.MedicalRecord
	for rows.Next() {
		var m domain.MedicalRecord
		if err := rows.Scan(&m.ID, &m.PatientID, &m.Title, &m.Notes, &m.FilePath, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan medical record: %w", err)
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

func (r *RecordRepository) CountByPatient(ctx context.Context, patientID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM medical_records WHERE patient_id = $1`, patientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count medical records: %w", err)
	}
	return count, nil
}
