package http

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/service"
)

// MockDonationService
type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) Submit(ctx context.Context, donorID int32, in service.SubmitDonationInput) (*domain.DonationRequest, error) {
	args := m.Called(ctx, donorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}
func (m *MockDonationService) Get(ctx context.Context, callerID, requestID int32) (*domain.DonationRequest, error) {
	args := m.Called(ctx, callerID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}
func (m *MockDonationService) ListByOrg(ctx context.Context, callerID, orgID int32, status string, page, pageSize int32) ([]domain.DonationRequest, int32, error) {
	args := m.Called(ctx, callerID, orgID, status, page, pageSize)
	return args.Get(0).([]domain.DonationRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockDonationService) ListByDonor(ctx context.Context, donorID int32, page, pageSize int32) ([]domain.DonationRequest, int32, error) {
	args := m.Called(ctx, donorID, page, pageSize)
	return args.Get(0).([]domain.DonationRequest), args.Get(1).(int32), args.Error(2)
}

// MockLifecycleService
type MockLifecycleService struct {
	mock.Mock
}

func (m *MockLifecycleService) Decide(ctx context.Context, requestID, staffID int32, decision domain.DonationRequestStatus, reason string) (*domain.DonationRequest, *domain.InventoryItem, error) {
	args := m.Called(ctx, requestID, staffID, decision, reason)
	var req *domain.DonationRequest
	var item *domain.InventoryItem
	if args.Get(0) != nil {
		req = args.Get(0).(*domain.DonationRequest)
	}
	if args.Get(1) != nil {
		item = args.Get(1).(*domain.InventoryItem)
	}
	return req, item, args.Error(2)
}
func (m *MockLifecycleService) Cancel(ctx context.Context, requestID, actorID int32, reason string) (*domain.DonationRequest, error) {
	args := m.Called(ctx, requestID, actorID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}
func (m *MockLifecycleService) Distribute(ctx context.Context, orgID, inventoryID, staffID int32, beneficiaryGroup string) (*domain.DistributionRecord, error) {
	args := m.Called(ctx, orgID, inventoryID, staffID, beneficiaryGroup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistributionRecord), args.Error(1)
}
func (m *MockLifecycleService) ListInventory(ctx context.Context, callerID, orgID int32, activeOnly bool, page, pageSize int32) ([]domain.InventoryItem, int32, error) {
	args := m.Called(ctx, callerID, orgID, activeOnly, page, pageSize)
	return args.Get(0).([]domain.InventoryItem), args.Get(1).(int32), args.Error(2)
}
func (m *MockLifecycleService) ListDistributions(ctx context.Context, callerID, orgID int32, page, pageSize int32) ([]domain.DistributionRecord, int32, error) {
	args := m.Called(ctx, callerID, orgID, page, pageSize)
	return args.Get(0).([]domain.DistributionRecord), args.Get(1).(int32), args.Error(2)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

// MockPhotoService
type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) CreatePendingUpload(ctx context.Context, userID int32, fileName, contentType string) (*domain.Photo, error) {
	args := m.Called(ctx, userID, fileName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}
func (m *MockPhotoService) StoreUpload(ctx context.Context, key string, body io.Reader) error {
	args := m.Called(ctx, key, body)
	return args.Error(0)
}
func (m *MockPhotoService) OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}
func (m *MockPhotoService) PurgeExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
