package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	org := &domain.Organization{}
	var createdOn time.Time
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(address, ''), COALESCE(contact_email, ''), created_on FROM organizations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.Description, &org.Address, &org.ContactEmail, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	org.CreatedOn = createdOn.Format("2006-01-02")
	return org, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(address, ''), COALESCE(contact_email, ''), created_on FROM organizations ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		var createdOn time.Time
		if err := rows.Scan(&org.ID, &org.Name, &org.Description, &org.Address, &org.ContactEmail, &createdOn); err != nil {
			return nil, err
		}
		org.CreatedOn = createdOn.Format("2006-01-02")
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}
