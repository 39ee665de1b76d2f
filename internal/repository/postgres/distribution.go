package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/repository"
)

type distributionRepository struct {
	db *sql.DB
}

func NewDistributionRepository(db *sql.DB) repository.DistributionRepository {
	return &distributionRepository{db: db}
}

const distributionColumns = `id, inventory_id, request_id, org_id, beneficiary_group, handled_by, co2_saved_kg, landfill_saved_kg, beneficiaries, distributed_at`

func (r *distributionRepository) Create(ctx context.Context, rec *domain.DistributionRecord) error {
	// Rows are immutable once written; the unique index on inventory_id backs
	// the at-most-one-record-per-item invariant at the storage level too.
	query := `INSERT INTO distribution_records (inventory_id, request_id, org_id, beneficiary_group, handled_by, co2_saved_kg, landfill_saved_kg, beneficiaries, distributed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	logger.DatabaseCall("INSERT", "distribution_records", "inventoryID", rec.InventoryID, "orgID", rec.OrgID)
	rec.DistributedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		rec.InventoryID, rec.RequestID, rec.OrgID, rec.BeneficiaryGroup, rec.HandledBy,
		rec.CO2SavedKg, rec.LandfillSavedKg, rec.Beneficiaries, rec.DistributedAt).Scan(&rec.ID)
	logger.DatabaseResult("INSERT", 1, err, "distributionID", rec.ID)
	return err
}

func (r *distributionRepository) GetByID(ctx context.Context, id int32) (*domain.DistributionRecord, error) {
	rec := &domain.DistributionRecord{}
	query := `SELECT ` + distributionColumns + ` FROM distribution_records WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.InventoryID, &rec.RequestID, &rec.OrgID, &rec.BeneficiaryGroup,
		&rec.HandledBy, &rec.CO2SavedKg, &rec.LandfillSavedKg, &rec.Beneficiaries, &rec.DistributedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *distributionRepository) ListByOrg(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.DistributionRecord, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM distribution_records WHERE org_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, orgID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + distributionColumns + ` FROM distribution_records WHERE org_id = $1
	          ORDER BY distributed_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, orgID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var recs []domain.DistributionRecord
	for rows.Next() {
		var rec domain.DistributionRecord
		if err := rows.Scan(
			&rec.ID, &rec.InventoryID, &rec.RequestID, &rec.OrgID, &rec.BeneficiaryGroup,
			&rec.HandledBy, &rec.CO2SavedKg, &rec.LandfillSavedKg, &rec.Beneficiaries, &rec.DistributedAt); err != nil {
			return nil, 0, err
		}
		recs = append(recs, rec)
	}
	return recs, count, rows.Err()
}
