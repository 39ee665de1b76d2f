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

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

const inventoryColumns = `id, org_id, request_id, item_name, description, category, condition, size, gender, photo_refs, is_active, added_at`

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	query := `INSERT INTO inventory_items (org_id, request_id, item_name, description, category, condition, size, gender, photo_refs, is_active, added_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10) RETURNING id`
	logger.DatabaseCall("INSERT", "inventory_items", "orgID", item.OrgID, "requestID", item.RequestID)
	item.AddedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		item.OrgID, item.RequestID, item.ItemName, item.Description, item.Category,
		item.Condition, item.Size, item.Gender, pq.Array(item.PhotoRefs), item.AddedAt).Scan(&item.ID)
	logger.DatabaseResult("INSERT", 1, err, "inventoryID", item.ID)
	if err != nil {
		return err
	}
	item.IsActive = true
	return nil
}

func (r *inventoryRepository) GetByID(ctx context.Context, id int32) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OrgID, &item.RequestID, &item.ItemName, &item.Description,
		&item.Category, &item.Condition, &item.Size, &item.Gender, pq.Array(&item.PhotoRefs),
		&item.IsActive, &item.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepository) Deactivate(ctx context.Context, id, orgID int32) (bool, error) {
	// Conditional on is_active: the flip happens at most once even under
	// concurrent distribute calls from two staff sessions.
	query := `UPDATE inventory_items SET is_active = FALSE WHERE id = $1 AND org_id = $2 AND is_active = TRUE`
	logger.DatabaseCall("UPDATE", "inventory_items", "inventoryID", id, "orgID", orgID)
	result, err := r.db.ExecContext(ctx, query, id, orgID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "inventoryID", id)
		return false, err
	}
	rows, err := result.RowsAffected()
	logger.DatabaseResult("UPDATE", rows, err, "inventoryID", id)
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *inventoryRepository) Reactivate(ctx context.Context, id int32) error {
	query := `UPDATE inventory_items SET is_active = TRUE WHERE id = $1`
	logger.DatabaseCall("UPDATE", "inventory_items", "inventoryID", id, "compensation", true)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("inventory item %d not found for reactivate", id)
	}
	return nil
}

func (r *inventoryRepository) ListByOrg(ctx context.Context, orgID int32, activeOnly bool, page, pageSize int32) ([]domain.InventoryItem, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE org_id = $1`
	if activeOnly {
		query += " AND is_active = TRUE"
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, orgID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY added_at DESC LIMIT $2 OFFSET $3"
	rows, err := r.db.QueryContext(ctx, query, orgID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.OrgID, &item.RequestID, &item.ItemName, &item.Description,
			&item.Category, &item.Condition, &item.Size, &item.Gender, pq.Array(&item.PhotoRefs),
			&item.IsActive, &item.AddedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, count, rows.Err()
}
