package repository

import (
	"context"
	"time"

	"rewear-backend/internal/domain"
)

type DonationRequestRepository interface {
	Create(ctx context.Context, req *domain.DonationRequest) error
	GetByID(ctx context.Context, id int32) (*domain.DonationRequest, error)
	ListByOrg(ctx context.Context, orgID int32, status string, page, pageSize int32) ([]domain.DonationRequest, int32, error)
	ListByDonor(ctx context.Context, donorID int32, page, pageSize int32) ([]domain.DonationRequest, int32, error)

	// MarkHandled moves a request out of PENDING exactly once. The update is
	// conditional on the current status; handled reports whether this call won
	// the transition. handled == false means the request was already terminal.
	MarkHandled(ctx context.Context, id int32, status domain.DonationRequestStatus, staffID int32, reason string, handledAt time.Time) (handled bool, err error)

	// ResetToPending is the compensating update for a failed inventory insert:
	// status back to PENDING, handled_by/handled_at/reason cleared.
	ResetToPending(ctx context.Context, id int32) error

	// ListPendingOlderThan returns requests still PENDING since before cutoff,
	// for staff reminders.
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.DonationRequest, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id int32) (*domain.InventoryItem, error)
	ListByOrg(ctx context.Context, orgID int32, activeOnly bool, page, pageSize int32) ([]domain.InventoryItem, int32, error)

	// Deactivate flips is_active to false for an active item of the given org.
	// The update is conditional on is_active; deactivated reports whether this
	// call won the flip. Exactly one caller can ever see true per item.
	Deactivate(ctx context.Context, id, orgID int32) (deactivated bool, err error)

	// Reactivate is the compensating update for a failed distribution insert.
	Reactivate(ctx context.Context, id int32) error
}

type DistributionRepository interface {
	Create(ctx context.Context, rec *domain.DistributionRecord) error
	GetByID(ctx context.Context, id int32) (*domain.DistributionRecord, error)
	ListByOrg(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.DistributionRecord, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetUserOrg(ctx context.Context, userID, orgID int32) (*domain.UserOrg, error)
	ListUserOrgs(ctx context.Context, userID int32) ([]domain.UserOrg, error)
	ListOrgStaff(ctx context.Context, orgID int32) ([]domain.User, error)
}

type OrganizationRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) error
	GetByKey(ctx context.Context, key string) (*domain.Photo, error)

	// Attach claims pending photos for a submitted request. Returns the number
	// of rows moved to ATTACHED; fewer than len(keys) means a key was unknown,
	// expired, owned by someone else, or already attached.
	Attach(ctx context.Context, keys []string, userID, requestID int32) (int64, error)

	// DeleteExpiredPending removes pending photos past their TTL and returns
	// the storage keys so the blobs can be deleted too.
	DeleteExpiredPending(ctx context.Context) ([]string, error)
}
