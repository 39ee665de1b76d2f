// Package notifier fans out donor-facing notifications after committed
// lifecycle transitions. Every dispatch is best effort: failures are logged
// and never returned, so the ledger's consistency does not depend on delivery.
package notifier

import (
	"context"
	"fmt"
	"time"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/email"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/repository"
)

type Notifier interface {
	DonationSubmitted(ctx context.Context, req *domain.DonationRequest)
	DonationDecided(ctx context.Context, req *domain.DonationRequest)
	ItemDistributed(ctx context.Context, req *domain.DonationRequest, rec *domain.DistributionRecord)
	PendingReminder(ctx context.Context, staff *domain.User, org *domain.Organization, pendingCount int)
}

type donorNotifier struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	noteRepo repository.NotificationRepository
	sender   email.Sender
	timeout  time.Duration
}

func New(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	noteRepo repository.NotificationRepository,
	sender email.Sender,
	timeout time.Duration,
) Notifier {
	return &donorNotifier{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		noteRepo: noteRepo,
		sender:   sender,
		timeout:  timeout,
	}
}

// bound detaches dispatch from the caller's cancellation while keeping it from
// pinning the request: the writes this follows are already committed.
func (n *donorNotifier) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
}

func (n *donorNotifier) orgName(ctx context.Context, orgID int32) string {
	org, err := n.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return "the organization"
	}
	return org.Name
}

func (n *donorNotifier) dispatch(ctx context.Context, event string, note *domain.Notification, toEmail, toName, subject, body string) {
	if err := n.noteRepo.Create(ctx, note); err != nil {
		logger.NotifyFailure(event, err, "channel", "in-app", "userID", note.UserID)
	}
	html := fmt.Sprintf("<html><body><p>%s</p></body></html>", body)
	if err := n.sender.Send(ctx, toEmail, toName, subject, body, html); err != nil {
		logger.NotifyFailure(event, err, "channel", "email", "userID", note.UserID)
	}
}

func (n *donorNotifier) DonationSubmitted(ctx context.Context, req *domain.DonationRequest) {
	ctx, cancel := n.bound(ctx)
	defer cancel()

	donor, err := n.userRepo.GetByID(ctx, req.DonorID)
	if err != nil {
		logger.NotifyFailure("DONATION_SUBMITTED", err, "donorID", req.DonorID)
		return
	}
	orgName := n.orgName(ctx, req.OrgID)

	note := &domain.Notification{
		UserID:  donor.ID,
		OrgID:   req.OrgID,
		Title:   "Donation Submitted",
		Message: fmt.Sprintf("Your donation of %s was submitted to %s and is awaiting review", req.ItemName, orgName),
		Attributes: map[string]string{
			"type":       "DONATION_SUBMITTED",
			"request_id": fmt.Sprintf("%d", req.ID),
		},
	}
	body := fmt.Sprintf("Hello %s,\n\nThank you for offering your %s to %s. The organization's staff will review it shortly.\n\nBest regards,\nThe ReWear Team",
		donor.Name, req.ItemName, orgName)
	n.dispatch(ctx, "DONATION_SUBMITTED", note, donor.Email, donor.Name, "Donation Submitted", body)
}

func (n *donorNotifier) DonationDecided(ctx context.Context, req *domain.DonationRequest) {
	ctx, cancel := n.bound(ctx)
	defer cancel()

	donor, err := n.userRepo.GetByID(ctx, req.DonorID)
	if err != nil {
		logger.NotifyFailure("DONATION_DECIDED", err, "donorID", req.DonorID)
		return
	}
	orgName := n.orgName(ctx, req.OrgID)

	var title, message, body string
	switch req.Status {
	case domain.DonationStatusAccepted:
		title = "Donation Accepted"
		message = fmt.Sprintf("%s accepted your donation of %s", orgName, req.ItemName)
		body = fmt.Sprintf("Hello %s,\n\nGood news: %s accepted your %s. It is now in their inventory and will be passed on to someone who needs it.\n\nBest regards,\nThe ReWear Team",
			donor.Name, orgName, req.ItemName)
	case domain.DonationStatusDeclined:
		title = "Donation Declined"
		message = fmt.Sprintf("%s declined your donation of %s", orgName, req.ItemName)
		body = fmt.Sprintf("Hello %s,\n\nUnfortunately %s could not accept your %s.\n\nReason: %s\n\nBest regards,\nThe ReWear Team",
			donor.Name, orgName, req.ItemName, req.Reason)
	case domain.DonationStatusCancelled:
		title = "Donation Cancelled"
		message = fmt.Sprintf("Your donation of %s to %s was cancelled", req.ItemName, orgName)
		body = fmt.Sprintf("Hello %s,\n\nYour donation of %s to %s was cancelled.\n\nReason: %s\n\nBest regards,\nThe ReWear Team",
			donor.Name, req.ItemName, orgName, req.Reason)
	default:
		logger.NotifyFailure("DONATION_DECIDED", fmt.Errorf("unexpected status %s", req.Status), "requestID", req.ID)
		return
	}

	note := &domain.Notification{
		UserID:  donor.ID,
		OrgID:   req.OrgID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":       "DONATION_" + string(req.Status),
			"request_id": fmt.Sprintf("%d", req.ID),
		},
	}
	n.dispatch(ctx, "DONATION_DECIDED", note, donor.Email, donor.Name, title, body)
}

func (n *donorNotifier) ItemDistributed(ctx context.Context, req *domain.DonationRequest, rec *domain.DistributionRecord) {
	ctx, cancel := n.bound(ctx)
	defer cancel()

	donor, err := n.userRepo.GetByID(ctx, req.DonorID)
	if err != nil {
		logger.NotifyFailure("ITEM_DISTRIBUTED", err, "donorID", req.DonorID)
		return
	}
	orgName := n.orgName(ctx, req.OrgID)

	note := &domain.Notification{
		UserID:  donor.ID,
		OrgID:   req.OrgID,
		Title:   "Donation Delivered",
		Message: fmt.Sprintf("Your %s reached %s", req.ItemName, rec.BeneficiaryGroup),
		Attributes: map[string]string{
			"type":            "ITEM_DISTRIBUTED",
			"request_id":      fmt.Sprintf("%d", req.ID),
			"distribution_id": fmt.Sprintf("%d", rec.ID),
		},
	}
	body := fmt.Sprintf("Hello %s,\n\nYour %s donated through %s has reached %s. By reusing it you saved an estimated %.1f kg of CO2 and kept %.1f kg out of landfill.\n\nBest regards,\nThe ReWear Team",
		donor.Name, req.ItemName, orgName, rec.BeneficiaryGroup, rec.CO2SavedKg, rec.LandfillSavedKg)
	n.dispatch(ctx, "ITEM_DISTRIBUTED", note, donor.Email, donor.Name, "Your Donation Was Delivered", body)
}

func (n *donorNotifier) PendingReminder(ctx context.Context, staff *domain.User, org *domain.Organization, pendingCount int) {
	ctx, cancel := n.bound(ctx)
	defer cancel()

	note := &domain.Notification{
		UserID:  staff.ID,
		OrgID:   org.ID,
		Title:   "Donations Awaiting Review",
		Message: fmt.Sprintf("%s has %d donation request(s) waiting for a decision", org.Name, pendingCount),
		Attributes: map[string]string{
			"type": "PENDING_REMINDER",
		},
	}
	body := fmt.Sprintf("Hello %s,\n\n%s has %d donation request(s) that have been waiting for a decision for a while. Please review them.\n\nBest regards,\nThe ReWear Team",
		staff.Name, org.Name, pendingCount)
	n.dispatch(ctx, "PENDING_REMINDER", note, staff.Email, staff.Name, "Donations Awaiting Review", body)
}
