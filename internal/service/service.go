package service

import (
	"context"
	"io"

	"rewear-backend/internal/domain"
)

// SubmitDonationInput carries the donor-provided fields for a new request.
type SubmitDonationInput struct {
	OrgID       int32
	ItemName    string
	Description string
	Category    string
	Condition   string
	Size        string
	Gender      string
	PhotoRefs   []string
}

type DonationService interface {
	Submit(ctx context.Context, donorID int32, in SubmitDonationInput) (*domain.DonationRequest, error)
	Get(ctx context.Context, callerID, requestID int32) (*domain.DonationRequest, error)
	ListByOrg(ctx context.Context, callerID, orgID int32, status string, page, pageSize int32) ([]domain.DonationRequest, int32, error)
	ListByDonor(ctx context.Context, donorID int32, page, pageSize int32) ([]domain.DonationRequest, int32, error)
}

type LifecycleService interface {
	// Decide moves a PENDING request to ACCEPTED or DECLINED. On accept the
	// corresponding inventory item is created and returned.
	Decide(ctx context.Context, requestID, staffID int32, decision domain.DonationRequestStatus, reason string) (*domain.DonationRequest, *domain.InventoryItem, error)

	// Cancel terminal-cancels a PENDING request. The donor may cancel their
	// own request; org staff may cancel on the donor's behalf.
	Cancel(ctx context.Context, requestID, actorID int32, reason string) (*domain.DonationRequest, error)

	// Distribute hands an active inventory item to a beneficiary group,
	// recording the computed impact in the distribution ledger.
	Distribute(ctx context.Context, orgID, inventoryID, staffID int32, beneficiaryGroup string) (*domain.DistributionRecord, error)

	ListInventory(ctx context.Context, callerID, orgID int32, activeOnly bool, page, pageSize int32) ([]domain.InventoryItem, int32, error)
	ListDistributions(ctx context.Context, callerID, orgID int32, page, pageSize int32) ([]domain.DistributionRecord, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type PhotoService interface {
	// CreatePendingUpload issues a fresh storage key the caller may upload to
	// before attaching it to a donation request.
	CreatePendingUpload(ctx context.Context, userID int32, fileName, contentType string) (*domain.Photo, error)

	// StoreUpload writes the blob for a previously issued pending key.
	StoreUpload(ctx context.Context, key string, body io.Reader) error

	// OpenPhoto streams a stored photo and reports its content type.
	OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error)

	// PurgeExpired deletes pending uploads past their TTL, blobs included.
	PurgeExpired(ctx context.Context) (int, error)
}
