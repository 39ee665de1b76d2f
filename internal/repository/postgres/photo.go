package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/repository"

	"github.com/lib/pq"
)

type photoRepository struct {
	db *sql.DB
}

func NewPhotoRepository(db *sql.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, p *domain.Photo) error {
	query := `INSERT INTO photos (key, user_id, file_name, content_type, status, expires_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	logger.DatabaseCall("INSERT", "photos", "key", p.Key, "userID", p.UserID)
	p.CreatedOn = time.Now()
	p.Status = domain.PhotoStatusPending
	_, err := r.db.ExecContext(ctx, query, p.Key, p.UserID, p.FileName, p.ContentType, p.Status, p.ExpiresAt, p.CreatedOn)
	return err
}

func (r *photoRepository) GetByKey(ctx context.Context, key string) (*domain.Photo, error) {
	p := &domain.Photo{}
	query := `SELECT key, user_id, file_name, content_type, status, request_id, expires_at, created_on FROM photos WHERE key = $1`
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&p.Key, &p.UserID, &p.FileName, &p.ContentType, &p.Status, &p.RequestID, &p.ExpiresAt, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *photoRepository) Attach(ctx context.Context, keys []string, userID, requestID int32) (int64, error) {
	// Claims only the caller's own non-expired pending uploads; the count lets
	// the service detect foreign, stale, or reused keys in one round trip.
	query := `UPDATE photos SET status = $1, request_id = $2
	          WHERE key = ANY($3) AND user_id = $4 AND status = $5 AND expires_at > $6`
	logger.DatabaseCall("UPDATE", "photos", "requestID", requestID, "keys", len(keys))
	result, err := r.db.ExecContext(ctx, query,
		domain.PhotoStatusAttached, requestID, pq.Array(keys), userID,
		domain.PhotoStatusPending, time.Now())
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	logger.DatabaseResult("UPDATE", rows, err, "requestID", requestID)
	return rows, err
}

func (r *photoRepository) DeleteExpiredPending(ctx context.Context) ([]string, error) {
	query := `DELETE FROM photos WHERE status = $1 AND expires_at < $2 RETURNING key`
	rows, err := r.db.QueryContext(ctx, query, domain.PhotoStatusPending, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
