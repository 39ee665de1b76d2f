package service

import (
	"context"
	"fmt"
	"strings"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/notifier"
	"rewear-backend/internal/repository"
)

type donationService struct {
	donationRepo repository.DonationRequestRepository
	orgRepo      repository.OrganizationRepository
	userRepo     repository.UserRepository
	photoRepo    repository.PhotoRepository
	notifier     notifier.Notifier
}

func NewDonationService(
	donationRepo repository.DonationRequestRepository,
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	photoRepo repository.PhotoRepository,
	n notifier.Notifier,
) DonationService {
	return &donationService{
		donationRepo: donationRepo,
		orgRepo:      orgRepo,
		userRepo:     userRepo,
		photoRepo:    photoRepo,
		notifier:     n,
	}
}

func (s *donationService) Submit(ctx context.Context, donorID int32, in SubmitDonationInput) (*domain.DonationRequest, error) {
	if err := validateSubmitInput(in); err != nil {
		return nil, err
	}

	if _, err := s.orgRepo.GetByID(ctx, in.OrgID); err != nil {
		return nil, err
	}

	// Every photo reference must be the donor's own pending upload.
	for _, key := range in.PhotoRefs {
		photo, err := s.photoRepo.GetByKey(ctx, key)
		if err != nil || photo.UserID != donorID || photo.Status != domain.PhotoStatusPending {
			return nil, domain.NewValidationError("photo_refs", fmt.Sprintf("unknown or unusable photo reference %q", key))
		}
	}

	req := &domain.DonationRequest{
		DonorID:     donorID,
		OrgID:       in.OrgID,
		ItemName:    strings.TrimSpace(in.ItemName),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Condition:   domain.ItemCondition(in.Condition),
		Size:        strings.TrimSpace(in.Size),
		Gender:      domain.ItemGender(in.Gender),
		PhotoRefs:   in.PhotoRefs,
		Status:      domain.DonationStatusPending,
	}
	if err := s.donationRepo.Create(ctx, req); err != nil {
		return nil, domain.NewPersistenceError("donation submit", err)
	}

	if attached, err := s.photoRepo.Attach(ctx, in.PhotoRefs, donorID, req.ID); err != nil {
		logger.Warn("Failed to attach photos to request", "requestID", req.ID, "error", err)
	} else if attached != int64(len(in.PhotoRefs)) {
		logger.Warn("Some photo references were not attached", "requestID", req.ID, "expected", len(in.PhotoRefs), "attached", attached)
	}

	s.notifier.DonationSubmitted(ctx, req)

	return req, nil
}

func validateSubmitInput(in SubmitDonationInput) error {
	fields := map[string]string{
		"item_name":   in.ItemName,
		"description": in.Description,
		"category":    in.Category,
		"condition":   in.Condition,
		"size":        in.Size,
		"gender":      in.Gender,
	}
	for name, val := range fields {
		if strings.TrimSpace(val) == "" {
			return domain.NewValidationError(name, "must not be empty")
		}
	}
	if len(in.PhotoRefs) < domain.MinPhotoRefs || len(in.PhotoRefs) > domain.MaxPhotoRefs {
		return domain.NewValidationError("photo_refs",
			fmt.Sprintf("between %d and %d photos required", domain.MinPhotoRefs, domain.MaxPhotoRefs))
	}
	return nil
}

func (s *donationService) Get(ctx context.Context, callerID, requestID int32) (*domain.DonationRequest, error) {
	req, err := s.donationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.DonorID == callerID {
		return req, nil
	}
	// Not the donor: caller must hold an active membership in the org.
	uo, err := s.userRepo.GetUserOrg(ctx, callerID, req.OrgID)
	if err != nil || !uo.CanHandleDonations() {
		return nil, domain.ErrUnauthorized
	}
	return req, nil
}

func (s *donationService) ListByOrg(ctx context.Context, callerID, orgID int32, status string, page, pageSize int32) ([]domain.DonationRequest, int32, error) {
	uo, err := s.userRepo.GetUserOrg(ctx, callerID, orgID)
	if err != nil || !uo.CanHandleDonations() {
		return nil, 0, domain.ErrUnauthorized
	}
	return s.donationRepo.ListByOrg(ctx, orgID, status, page, pageSize)
}

func (s *donationService) ListByDonor(ctx context.Context, donorID int32, page, pageSize int32) ([]domain.DonationRequest, int32, error) {
	return s.donationRepo.ListByDonor(ctx, donorID, page, pageSize)
}
