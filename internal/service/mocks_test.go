package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rewear-backend/internal/domain"
)

// MockDonationRequestRepo
type MockDonationRequestRepo struct {
	mock.Mock
}

func (m *MockDonationRequestRepo) Create(ctx context.Context, req *domain.DonationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockDonationRequestRepo) GetByID(ctx context.Context, id int32) (*domain.DonationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationRequest), args.Error(1)
}
func (m *MockDonationRequestRepo) ListByOrg(ctx context.Context, orgID int32, status string, page, pageSize int32) ([]domain.DonationRequest, int32, error) {
	args := m.Called(ctx, orgID, status, page, pageSize)
	return args.Get(0).([]domain.DonationRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockDonationRequestRepo) ListByDonor(ctx context.Context, donorID int32, page, pageSize int32) ([]domain.DonationRequest, int32, error) {
	args := m.Called(ctx, donorID, page, pageSize)
	return args.Get(0).([]domain.DonationRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockDonationRequestRepo) MarkHandled(ctx context.Context, id int32, status domain.DonationRequestStatus, staffID int32, reason string, handledAt time.Time) (bool, error) {
	args := m.Called(ctx, id, status, staffID, reason, handledAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockDonationRequestRepo) ResetToPending(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDonationRequestRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.DonationRequest, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.DonationRequest), args.Error(1)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockInventoryRepo) GetByID(ctx context.Context, id int32) (*domain.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryRepo) ListByOrg(ctx context.Context, orgID int32, activeOnly bool, page, pageSize int32) ([]domain.InventoryItem, int32, error) {
	args := m.Called(ctx, orgID, activeOnly, page, pageSize)
	return args.Get(0).([]domain.InventoryItem), args.Get(1).(int32), args.Error(2)
}
func (m *MockInventoryRepo) Deactivate(ctx context.Context, id, orgID int32) (bool, error) {
	args := m.Called(ctx, id, orgID)
	return args.Bool(0), args.Error(1)
}
func (m *MockInventoryRepo) Reactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDistributionRepo
type MockDistributionRepo struct {
	mock.Mock
}

func (m *MockDistributionRepo) Create(ctx context.Context, rec *domain.DistributionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockDistributionRepo) GetByID(ctx context.Context, id int32) (*domain.DistributionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistributionRecord), args.Error(1)
}
func (m *MockDistributionRepo) ListByOrg(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.DistributionRecord, int32, error) {
	args := m.Called(ctx, orgID, page, pageSize)
	return args.Get(0).([]domain.DistributionRecord), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetUserOrg(ctx context.Context, userID, orgID int32) (*domain.UserOrg, error) {
	args := m.Called(ctx, userID, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserOrg), args.Error(1)
}
func (m *MockUserRepo) ListUserOrgs(ctx context.Context, userID int32) ([]domain.UserOrg, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.UserOrg), args.Error(1)
}
func (m *MockUserRepo) ListOrgStaff(ctx context.Context, orgID int32) ([]domain.User, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockOrganizationRepo
type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) List(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Organization), args.Error(1)
}

// MockPhotoRepo
type MockPhotoRepo struct {
	mock.Mock
}

func (m *MockPhotoRepo) Create(ctx context.Context, photo *domain.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}
func (m *MockPhotoRepo) GetByKey(ctx context.Context, key string) (*domain.Photo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}
func (m *MockPhotoRepo) Attach(ctx context.Context, keys []string, userID, requestID int32) (int64, error) {
	args := m.Called(ctx, keys, userID, requestID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPhotoRepo) DeleteExpiredPending(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockNotifier records fire-and-forget notification calls.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) DonationSubmitted(ctx context.Context, req *domain.DonationRequest) {
	m.Called(ctx, req)
}
func (m *MockNotifier) DonationDecided(ctx context.Context, req *domain.DonationRequest) {
	m.Called(ctx, req)
}
func (m *MockNotifier) ItemDistributed(ctx context.Context, req *domain.DonationRequest, rec *domain.DistributionRecord) {
	m.Called(ctx, req, rec)
}
func (m *MockNotifier) PendingReminder(ctx context.Context, staff *domain.User, org *domain.Organization, pendingCount int) {
	m.Called(ctx, staff, org, pendingCount)
}
