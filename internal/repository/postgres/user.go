package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, COALESCE(phone_number, ''), name, COALESCE(avatar_url, ''), created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PhoneNumber, &user.Name, &user.AvatarURL, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.CreatedOn = createdOn.Format("2006-01-02")
	return user, nil
}

func (r *userRepository) GetUserOrg(ctx context.Context, userID, orgID int32) (*domain.UserOrg, error) {
	uo := &domain.UserOrg{}
	var joinedOn time.Time
	query := `SELECT user_id, org_id, role, status, joined_on FROM users_orgs WHERE user_id = $1 AND org_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, orgID).Scan(
		&uo.UserID, &uo.OrgID, &uo.Role, &uo.Status, &joinedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	uo.JoinedOn = joinedOn.Format("2006-01-02")
	return uo, nil
}

func (r *userRepository) ListUserOrgs(ctx context.Context, userID int32) ([]domain.UserOrg, error) {
	query := `SELECT user_id, org_id, role, status, joined_on FROM users_orgs WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.UserOrg
	for rows.Next() {
		var uo domain.UserOrg
		var joinedOn time.Time
		if err := rows.Scan(&uo.UserID, &uo.OrgID, &uo.Role, &uo.Status, &joinedOn); err != nil {
			return nil, err
		}
		uo.JoinedOn = joinedOn.Format("2006-01-02")
		orgs = append(orgs, uo)
	}
	return orgs, rows.Err()
}

func (r *userRepository) ListOrgStaff(ctx context.Context, orgID int32) ([]domain.User, error) {
	query := `SELECT u.id, u.email, COALESCE(u.phone_number, ''), u.name, COALESCE(u.avatar_url, ''), u.created_on
	          FROM users u JOIN users_orgs uo ON uo.user_id = u.id
	          WHERE uo.org_id = $1 AND uo.status = $2 AND uo.role IN ($3, $4)`
	rows, err := r.db.QueryContext(ctx, query, orgID,
		domain.UserOrgStatusActive, domain.UserOrgRoleStaff, domain.UserOrgRoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn time.Time
		if err := rows.Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.Name, &u.AvatarURL, &createdOn); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format("2006-01-02")
		users = append(users, u)
	}
	return users, rows.Err()
}
