package postgres

import (
	"database/sql"

	"rewear-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.DonationRequestRepository
	repository.InventoryRepository
	repository.DistributionRepository
	repository.NotificationRepository
	repository.UserRepository
	repository.OrganizationRepository
	repository.PhotoRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		DonationRequestRepository: NewDonationRequestRepository(db),
		InventoryRepository:       NewInventoryRepository(db),
		DistributionRepository:    NewDistributionRepository(db),
		NotificationRepository:    NewNotificationRepository(db),
		UserRepository:            NewUserRepository(db),
		OrganizationRepository:    NewOrganizationRepository(db),
		PhotoRepository:           NewPhotoRepository(db),
	}
}
