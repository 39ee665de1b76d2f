package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/repository"

	"github.com/lib/pq"
)

type donationRequestRepository struct {
	db *sql.DB
}

func NewDonationRequestRepository(db *sql.DB) repository.DonationRequestRepository {
	return &donationRequestRepository{db: db}
}

const donationRequestColumns = `id, donor_id, org_id, item_name, description, category, condition, size, gender, photo_refs, status, handled_by, handled_at, COALESCE(reason, ''), created_on`

func (r *donationRequestRepository) Create(ctx context.Context, req *domain.DonationRequest) error {
	query := `INSERT INTO donation_requests (donor_id, org_id, item_name, description, category, condition, size, gender, photo_refs, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	logger.DatabaseCall("INSERT", "donation_requests", "donorID", req.DonorID, "orgID", req.OrgID)
	req.CreatedOn = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		req.DonorID, req.OrgID, req.ItemName, req.Description, req.Category,
		req.Condition, req.Size, req.Gender, pq.Array(req.PhotoRefs),
		domain.DonationStatusPending, req.CreatedOn).Scan(&req.ID)
	logger.DatabaseResult("INSERT", 1, err, "requestID", req.ID)
	if err != nil {
		return err
	}
	req.Status = domain.DonationStatusPending
	return nil
}

func (r *donationRequestRepository) GetByID(ctx context.Context, id int32) (*domain.DonationRequest, error) {
	req := &domain.DonationRequest{}
	query := `SELECT ` + donationRequestColumns + ` FROM donation_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.DonorID, &req.OrgID, &req.ItemName, &req.Description,
		&req.Category, &req.Condition, &req.Size, &req.Gender, pq.Array(&req.PhotoRefs),
		&req.Status, &req.HandledBy, &req.HandledAt, &req.Reason, &req.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *donationRequestRepository) MarkHandled(ctx context.Context, id int32, status domain.DonationRequestStatus, staffID int32, reason string, handledAt time.Time) (bool, error) {
	// The WHERE clause on status is the at-most-once guard: of two concurrent
	// callers exactly one update matches a row.
	query := `UPDATE donation_requests SET status = $1, handled_by = $2, handled_at = $3, reason = NULLIF($4, '')
	          WHERE id = $5 AND status = $6`
	logger.DatabaseCall("UPDATE", "donation_requests", "requestID", id, "status", status)
	result, err := r.db.ExecContext(ctx, query, status, staffID, handledAt, reason, id, domain.DonationStatusPending)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "requestID", id)
		return false, err
	}
	rows, err := result.RowsAffected()
	logger.DatabaseResult("UPDATE", rows, err, "requestID", id)
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *donationRequestRepository) ResetToPending(ctx context.Context, id int32) error {
	query := `UPDATE donation_requests SET status = $1, handled_by = NULL, handled_at = NULL, reason = NULL WHERE id = $2`
	logger.DatabaseCall("UPDATE", "donation_requests", "requestID", id, "compensation", true)
	result, err := r.db.ExecContext(ctx, query, domain.DonationStatusPending, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("request %d not found for reset", id)
	}
	return nil
}

func (r *donationRequestRepository) ListByOrg(ctx context.Context, orgID int32, status string, page, pageSize int32) ([]domain.DonationRequest, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + donationRequestColumns + ` FROM donation_requests WHERE org_id = $1`

	args := []interface{}{orgID}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	return scanDonationRequests(rows, count)
}

func (r *donationRequestRepository) ListByDonor(ctx context.Context, donorID int32, page, pageSize int32) ([]domain.DonationRequest, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM donation_requests WHERE donor_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, donorID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + donationRequestColumns + ` FROM donation_requests WHERE donor_id = $1
	          ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, donorID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	return scanDonationRequests(rows, count)
}

func (r *donationRequestRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.DonationRequest, error) {
	query := `SELECT ` + donationRequestColumns + ` FROM donation_requests
	          WHERE status = $1 AND created_on < $2 ORDER BY created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.DonationStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs, _, err := scanDonationRequests(rows, 0)
	return reqs, err
}

func scanDonationRequests(rows *sql.Rows, count int32) ([]domain.DonationRequest, int32, error) {
	var reqs []domain.DonationRequest
	for rows.Next() {
		var req domain.DonationRequest
		if err := rows.Scan(
			&req.ID, &req.DonorID, &req.OrgID, &req.ItemName, &req.Description,
			&req.Category, &req.Condition, &req.Size, &req.Gender, pq.Array(&req.PhotoRefs),
			&req.Status, &req.HandledBy, &req.HandledAt, &req.Reason, &req.CreatedOn); err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, req)
	}
	return reqs, count, rows.Err()
}
