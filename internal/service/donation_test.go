package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rewear-backend/internal/domain"
)

func newDonationFixture() (*MockDonationRequestRepo, *MockOrganizationRepo, *MockUserRepo, *MockPhotoRepo, *MockNotifier, DonationService) {
	donationRepo := new(MockDonationRequestRepo)
	orgRepo := new(MockOrganizationRepo)
	userRepo := new(MockUserRepo)
	photoRepo := new(MockPhotoRepo)
	n := new(MockNotifier)
	svc := NewDonationService(donationRepo, orgRepo, userRepo, photoRepo, n)
	return donationRepo, orgRepo, userRepo, photoRepo, n, svc
}

func validSubmitInput() SubmitDonationInput {
	return SubmitDonationInput{
		OrgID:       3,
		ItemName:    "Winter jacket",
		Description: "Barely worn",
		Category:    "Jacket",
		Condition:   "EXCELLENT",
		Size:        "M",
		Gender:      "UNISEX",
		PhotoRefs:   []string{"abc.jpg"},
	}
}

func pendingPhoto(key string, userID int32) *domain.Photo {
	return &domain.Photo{
		Key:    key,
		UserID: userID,
		Status: domain.PhotoStatusPending,
	}
}

func TestDonationService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		donationRepo, orgRepo, _, photoRepo, n, svc := newDonationFixture()
		orgRepo.On("GetByID", ctx, int32(3)).Return(&domain.Organization{ID: 3, Name: "Shelter"}, nil)
		photoRepo.On("GetByKey", ctx, "abc.jpg").Return(pendingPhoto("abc.jpg", 5), nil)
		donationRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.DonationRequest).ID = 10
		}).Return(nil)
		photoRepo.On("Attach", ctx, []string{"abc.jpg"}, int32(5), int32(10)).Return(int64(1), nil)
		n.On("DonationSubmitted", ctx, mock.Anything).Return()

		req, err := svc.Submit(ctx, 5, validSubmitInput())
		assert.NoError(t, err)
		assert.Equal(t, int32(10), req.ID)
		assert.Equal(t, domain.DonationStatusPending, req.Status)
		assert.Equal(t, int32(5), req.DonorID)
		n.AssertCalled(t, "DonationSubmitted", ctx, mock.Anything)
	})

	t.Run("MissingFieldFails", func(t *testing.T) {
		donationRepo, _, _, _, _, svc := newDonationFixture()
		in := validSubmitInput()
		in.Category = "  "

		_, err := svc.Submit(ctx, 5, in)
		assert.True(t, domain.IsValidation(err))
		donationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NoPhotosFails", func(t *testing.T) {
		_, _, _, _, _, svc := newDonationFixture()
		in := validSubmitInput()
		in.PhotoRefs = nil

		_, err := svc.Submit(ctx, 5, in)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("TooManyPhotosFails", func(t *testing.T) {
		_, _, _, _, _, svc := newDonationFixture()
		in := validSubmitInput()
		in.PhotoRefs = []string{"a", "b", "c", "d", "e"}

		_, err := svc.Submit(ctx, 5, in)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("UnknownOrgFails", func(t *testing.T) {
		_, orgRepo, _, _, _, svc := newDonationFixture()
		orgRepo.On("GetByID", ctx, int32(3)).Return(nil, domain.ErrNotFound)

		_, err := svc.Submit(ctx, 5, validSubmitInput())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ForeignPhotoFails", func(t *testing.T) {
		donationRepo, orgRepo, _, photoRepo, _, svc := newDonationFixture()
		orgRepo.On("GetByID", ctx, int32(3)).Return(&domain.Organization{ID: 3}, nil)
		photoRepo.On("GetByKey", ctx, "abc.jpg").Return(pendingPhoto("abc.jpg", 99), nil)

		_, err := svc.Submit(ctx, 5, validSubmitInput())
		assert.True(t, domain.IsValidation(err))
		donationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDonationService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("DonorSeesOwnRequest", func(t *testing.T) {
		donationRepo, _, userRepo, _, _, svc := newDonationFixture()
		donationRepo.On("GetByID", ctx, int32(10)).Return(pendingRequest(), nil)

		req, err := svc.Get(ctx, 5, 10)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), req.ID)
		userRepo.AssertNotCalled(t, "GetUserOrg", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("OrgStaffSeesRequest", func(t *testing.T) {
		donationRepo, _, userRepo, _, _, svc := newDonationFixture()
		donationRepo.On("GetByID", ctx, int32(10)).Return(pendingRequest(), nil)
		userRepo.On("GetUserOrg", ctx, int32(7), int32(3)).Return(staffMembership(), nil)

		req, err := svc.Get(ctx, 7, 10)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), req.ID)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		donationRepo, _, userRepo, _, _, svc := newDonationFixture()
		donationRepo.On("GetByID", ctx, int32(10)).Return(pendingRequest(), nil)
		userRepo.On("GetUserOrg", ctx, int32(99), int32(3)).Return(nil, domain.ErrNotFound)

		_, err := svc.Get(ctx, 99, 10)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestDonationService_ListByOrg(t *testing.T) {
	ctx := context.Background()

	t.Run("StaffListsWithFilter", func(t *testing.T) {
		donationRepo, _, userRepo, _, _, svc := newDonationFixture()
		userRepo.On("GetUserOrg", ctx, int32(7), int32(3)).Return(staffMembership(), nil)
		donationRepo.On("ListByOrg", ctx, int32(3), "PENDING", int32(1), int32(20)).
			Return([]domain.DonationRequest{*pendingRequest()}, int32(1), nil)

		reqs, total, err := svc.ListByOrg(ctx, 7, 3, "PENDING", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, reqs, 1)
	})

	t.Run("NonMemberForbidden", func(t *testing.T) {
		_, _, userRepo, _, _, svc := newDonationFixture()
		userRepo.On("GetUserOrg", ctx, int32(99), int32(3)).Return(nil, domain.ErrNotFound)

		_, _, err := svc.ListByOrg(ctx, 99, 3, "", 1, 20)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
