package jobs

import (
	"context"
	"time"

	"rewear-backend/internal/logger"
)

// SendPendingRequestReminders nudges org staff about donation requests that
// have sat in PENDING longer than the configured number of days. One reminder
// per staff member per org, carrying the org's pending count.
func (jr *JobRunner) SendPendingRequestReminders() {
	jr.runWithRecovery("SendPendingRequestReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Scheduler.PendingReminderAfterDays)

		pending, err := jr.store.DonationRequestRepository.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale pending requests", "error", err)
			return
		}
		if len(pending) == 0 {
			return
		}

		countByOrg := make(map[int32]int)
		for _, req := range pending {
			countByOrg[req.OrgID]++
		}

		reminders := 0
		for orgID, count := range countByOrg {
			org, err := jr.store.OrganizationRepository.GetByID(ctx, orgID)
			if err != nil {
				logger.Error("Failed to load org for reminder", "orgID", orgID, "error", err)
				continue
			}
			staff, err := jr.store.UserRepository.ListOrgStaff(ctx, orgID)
			if err != nil {
				logger.Error("Failed to list staff for reminder", "orgID", orgID, "error", err)
				continue
			}
			for i := range staff {
				jr.notifier.PendingReminder(ctx, &staff[i], org, count)
				reminders++
			}
		}

		logger.Info("Pending request reminders sent",
			"staleRequests", len(pending), "orgs", len(countByOrg), "reminders", reminders)
	})
}

// PurgeExpiredPhotos removes pending photo uploads whose TTL has passed,
// together with any stored blobs.
func (jr *JobRunner) PurgeExpiredPhotos() {
	jr.runWithRecovery("PurgeExpiredPhotos", func() {
		purged, err := jr.photos.PurgeExpired(context.Background())
		if err != nil {
			logger.Error("Failed to purge expired photos", "error", err)
			return
		}
		logger.Info("Expired photo purge finished", "purged", purged)
	})
}
