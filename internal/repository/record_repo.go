package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pet-care-api/internal/model"
)

// RecordRepository is the generic ownership-scoped store for service
// records of every kind. Same discipline as pets: the owner filter
// travels inside each statement, and update/delete are atomic
// filter+mutate rather than fetch-then-write.
type RecordRepository struct {
	pool *pgxpool.Pool
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

func (r *RecordRepository) Create(ctx context.Context, record model.ServiceRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO service_records (id, user_id, kind, payload, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.OwnerID, record.Kind, record.Payload, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create %s record: %w", record.Kind, err)
	}
	return nil
}

// ListByOwner returns the owner's records of one kind, newest first,
// truncated to limit when limit > 0.
func (r *RecordRepository) ListByOwner(ctx context.Context, ownerID string, kind model.RecordKind, limit int) ([]model.ServiceRecord, error) {
	query := `SELECT id, user_id, kind, payload, created_at, updated_at
	          FROM service_records
	          WHERE user_id = $1 AND kind = $2
	          ORDER BY created_at DESC`
	args := []any{ownerID, kind}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", kind, err)
	}
	defer rows.Close()

	records := make([]model.ServiceRecord, 0)
	for rows.Next() {
		var rec model.ServiceRecord
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Kind, &rec.Payload, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s record: %w", kind, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *RecordRepository) GetByIDForOwner(ctx context.Context, ownerID string, kind model.RecordKind, recordID string) (model.ServiceRecord, error) {
	var rec model.ServiceRecord
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, kind, payload, created_at, updated_at
		 FROM service_records
		 WHERE id = $1 AND user_id = $2 AND kind = $3`, recordID, ownerID, kind).
		Scan(&rec.ID, &rec.OwnerID, &rec.Kind, &rec.Payload, &rec.CreatedAt, &rec.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.ServiceRecord{}, model.ErrRecordNotFound
	}
	if err != nil {
		return model.ServiceRecord{}, fmt.Errorf("get %s record: %w", kind, err)
	}
	return rec, nil
}

func (r *RecordRepository) UpdateForOwner(ctx context.Context, ownerID string, record model.ServiceRecord) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE service_records
		 SET payload = $4, updated_at = $5
		 WHERE id = $1 AND user_id = $2 AND kind = $3`,
		record.ID, ownerID, record.Kind, record.Payload, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update %s record: %w", record.Kind, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}

func (r *RecordRepository) DeleteForOwner(ctx context.Context, ownerID string, kind model.RecordKind, recordID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM service_records WHERE id = $1 AND user_id = $2 AND kind = $3`,
		recordID, ownerID, kind)
	if err != nil {
		return fmt.Errorf("delete %s record: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecordNotFound
	}
	return nil
}
