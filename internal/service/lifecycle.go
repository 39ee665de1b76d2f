package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/impact"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/notifier"
	"rewear-backend/internal/repository"
)

type lifecycleService struct {
	donationRepo     repository.DonationRequestRepository
	inventoryRepo    repository.InventoryRepository
	distributionRepo repository.DistributionRepository
	userRepo         repository.UserRepository
	notifier         notifier.Notifier
}

func NewLifecycleService(
	donationRepo repository.DonationRequestRepository,
	inventoryRepo repository.InventoryRepository,
	distributionRepo repository.DistributionRepository,
	userRepo repository.UserRepository,
	n notifier.Notifier,
) LifecycleService {
	return &lifecycleService{
		donationRepo:     donationRepo,
		inventoryRepo:    inventoryRepo,
		distributionRepo: distributionRepo,
		userRepo:         userRepo,
		notifier:         n,
	}
}

func (s *lifecycleService) Decide(ctx context.Context, requestID, staffID int32, decision domain.DonationRequestStatus, reason string) (*domain.DonationRequest, *domain.InventoryItem, error) {
	if decision != domain.DonationStatusAccepted && decision != domain.DonationStatusDeclined {
		return nil, nil, domain.NewValidationError("decision", "must be ACCEPTED or DECLINED")
	}
	reason = strings.TrimSpace(reason)
	if decision == domain.DonationStatusDeclined && reason == "" {
		return nil, nil, domain.NewValidationError("reason", "reason required when declining")
	}

	req, err := s.donationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if req.Status.Terminal() {
		return nil, nil, domain.ErrAlreadyHandled
	}

	if err := s.authorizeStaff(ctx, staffID, req.OrgID); err != nil {
		return nil, nil, err
	}

	// The conditional update is the only line of defense against two staff
	// deciding concurrently: exactly one call claims the PENDING row.
	handledAt := time.Now()
	handled, err := s.donationRepo.MarkHandled(ctx, requestID, decision, staffID, reason, handledAt)
	if err != nil {
		return nil, nil, domain.NewPersistenceError("decision update", err)
	}
	if !handled {
		return nil, nil, domain.ErrAlreadyHandled
	}

	req.Status = decision
	req.HandledBy = &staffID
	req.HandledAt = &handledAt
	req.Reason = reason

	var item *domain.InventoryItem
	if decision == domain.DonationStatusAccepted {
		item = &domain.InventoryItem{
			OrgID:       req.OrgID,
			RequestID:   req.ID,
			ItemName:    req.ItemName,
			Description: req.Description,
			Category:    req.Category,
			Condition:   req.Condition,
			Size:        req.Size,
			Gender:      req.Gender,
			PhotoRefs:   req.PhotoRefs,
		}
		if err := s.inventoryRepo.Create(ctx, item); err != nil {
			// Compensating rollback: put the request back the way it was so
			// the decision can be retried. There is no transaction spanning
			// the two tables, so this is explicit.
			if rbErr := s.donationRepo.ResetToPending(ctx, requestID); rbErr != nil {
				logger.Inconsistency("decide rollback", rbErr, "requestID", requestID, "staffID", staffID)
				return nil, nil, domain.NewPersistenceError("inventory insert", errors.Join(err, domain.ErrInconsistentState))
			}
			logger.Warn("Inventory insert failed, request reset to pending", "requestID", requestID, "error", err)
			return nil, nil, domain.NewPersistenceError("inventory insert", err)
		}
	}

	s.notifier.DonationDecided(ctx, req)

	logger.Info("Donation request decided",
		"requestID", req.ID, "orgID", req.OrgID, "staffID", staffID, "decision", decision)
	return req, item, nil
}

func (s *lifecycleService) Cancel(ctx context.Context, requestID, actorID int32, reason string) (*domain.DonationRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewValidationError("reason", "reason required when cancelling")
	}

	req, err := s.donationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, domain.ErrAlreadyHandled
	}

	// The donor may cancel their own request; anyone else needs to be staff
	// of the receiving org.
	if req.DonorID != actorID {
		if err := s.authorizeStaff(ctx, actorID, req.OrgID); err != nil {
			return nil, err
		}
	}

	handledAt := time.Now()
	handled, err := s.donationRepo.MarkHandled(ctx, requestID, domain.DonationStatusCancelled, actorID, reason, handledAt)
	if err != nil {
		return nil, domain.NewPersistenceError("cancel update", err)
	}
	if !handled {
		return nil, domain.ErrAlreadyHandled
	}

	req.Status = domain.DonationStatusCancelled
	req.HandledBy = &actorID
	req.HandledAt = &handledAt
	req.Reason = reason

	s.notifier.DonationDecided(ctx, req)

	logger.Info("Donation request cancelled", "requestID", req.ID, "actorID", actorID)
	return req, nil
}

func (s *lifecycleService) Distribute(ctx context.Context, orgID, inventoryID, staffID int32, beneficiaryGroup string) (*domain.DistributionRecord, error) {
	beneficiaryGroup = strings.TrimSpace(beneficiaryGroup)
	if beneficiaryGroup == "" {
		return nil, domain.NewValidationError("beneficiary_group", "must not be empty")
	}

	if err := s.authorizeStaff(ctx, staffID, orgID); err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.GetByID(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	// A foreign or already-distributed item is reported exactly like a
	// missing one; callers cannot tell the cases apart.
	if item.OrgID != orgID || !item.IsActive {
		return nil, domain.ErrNotFound
	}

	res := impact.Of(item.Category)

	// Conditional deactivate doubles as the concurrency guard: of two staff
	// distributing the same item, only one flips the flag.
	deactivated, err := s.inventoryRepo.Deactivate(ctx, inventoryID, orgID)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory deactivate", err)
	}
	if !deactivated {
		return nil, domain.ErrNotFound
	}

	rec := &domain.DistributionRecord{
		InventoryID:      inventoryID,
		RequestID:        item.RequestID,
		OrgID:            orgID,
		BeneficiaryGroup: beneficiaryGroup,
		HandledBy:        staffID,
		CO2SavedKg:       res.CO2SavedKg,
		LandfillSavedKg:  res.LandfillSavedKg,
		Beneficiaries:    res.Beneficiaries,
	}
	if err := s.distributionRepo.Create(ctx, rec); err != nil {
		if rbErr := s.inventoryRepo.Reactivate(ctx, inventoryID); rbErr != nil {
			logger.Inconsistency("distribute rollback", rbErr, "inventoryID", inventoryID, "staffID", staffID)
			return nil, domain.NewPersistenceError("distribution insert", errors.Join(err, domain.ErrInconsistentState))
		}
		logger.Warn("Distribution insert failed, item reactivated", "inventoryID", inventoryID, "error", err)
		return nil, domain.NewPersistenceError("distribution insert", err)
	}

	// Notify the original donor via the inventory → request chain.
	if req, err := s.donationRepo.GetByID(ctx, item.RequestID); err != nil {
		logger.Warn("Could not resolve donor for distribution notification", "requestID", item.RequestID, "error", err)
	} else {
		s.notifier.ItemDistributed(ctx, req, rec)
	}

	logger.Info("Inventory item distributed",
		"inventoryID", inventoryID, "distributionID", rec.ID, "orgID", orgID,
		"staffID", staffID, "beneficiaryGroup", beneficiaryGroup)
	return rec, nil
}

func (s *lifecycleService) ListInventory(ctx context.Context, callerID, orgID int32, activeOnly bool, page, pageSize int32) ([]domain.InventoryItem, int32, error) {
	if err := s.authorizeStaff(ctx, callerID, orgID); err != nil {
		return nil, 0, err
	}
	return s.inventoryRepo.ListByOrg(ctx, orgID, activeOnly, page, pageSize)
}

func (s *lifecycleService) ListDistributions(ctx context.Context, callerID, orgID int32, page, pageSize int32) ([]domain.DistributionRecord, int32, error) {
	if err := s.authorizeStaff(ctx, callerID, orgID); err != nil {
		return nil, 0, err
	}
	return s.distributionRepo.ListByOrg(ctx, orgID, page, pageSize)
}

// authorizeStaff requires an ACTIVE membership with role STAFF or ADMIN.
func (s *lifecycleService) authorizeStaff(ctx context.Context, userID, orgID int32) error {
	uo, err := s.userRepo.GetUserOrg(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return domain.NewPersistenceError("membership lookup", err)
	}
	if !uo.CanHandleDonations() {
		return domain.ErrUnauthorized
	}
	return nil
}
