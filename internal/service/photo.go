package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/logger"
	"rewear-backend/internal/repository"
	"rewear-backend/internal/storage"
)

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type photoService struct {
	photoRepo repository.PhotoRepository
	blobs     storage.BlobStore
	uploadTTL time.Duration
}

func NewPhotoService(photoRepo repository.PhotoRepository, blobs storage.BlobStore, uploadTTL time.Duration) PhotoService {
	return &photoService{photoRepo: photoRepo, blobs: blobs, uploadTTL: uploadTTL}
}

func (s *photoService) CreatePendingUpload(ctx context.Context, userID int32, fileName, contentType string) (*domain.Photo, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, domain.NewValidationError("file_name", "must not be empty")
	}
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, domain.NewValidationError("content_type", fmt.Sprintf("unsupported content type %q", contentType))
	}

	photo := &domain.Photo{
		Key:         uuid.New().String() + ext,
		UserID:      userID,
		FileName:    fileName,
		ContentType: contentType,
		Status:      domain.PhotoStatusPending,
		ExpiresAt:   time.Now().Add(s.uploadTTL),
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, domain.NewPersistenceError("photo insert", err)
	}

	logger.Debug("Pending photo upload created", "key", photo.Key, "userID", userID)
	return photo, nil
}

func (s *photoService) StoreUpload(ctx context.Context, key string, body io.Reader) error {
	photo, err := s.photoRepo.GetByKey(ctx, key)
	if err != nil {
		return err
	}
	if photo.Status != domain.PhotoStatusPending || time.Now().After(photo.ExpiresAt) {
		return domain.ErrNotFound
	}
	if err := s.blobs.Save(ctx, key, body); err != nil {
		return domain.NewPersistenceError("photo store", err)
	}
	return nil
}

func (s *photoService) OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error) {
	photo, err := s.photoRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, "", err
	}
	rc, err := s.blobs.Open(ctx, key)
	if err != nil {
		return nil, "", domain.NewPersistenceError("photo open", err)
	}
	return rc, photo.ContentType, nil
}

func (s *photoService) PurgeExpired(ctx context.Context) (int, error) {
	keys, err := s.photoRepo.DeleteExpiredPending(ctx)
	if err != nil {
		return 0, domain.NewPersistenceError("expired photo delete", err)
	}
	for _, key := range keys {
		if err := s.blobs.Delete(ctx, key); err != nil {
			// Orphaned blobs are harmless; the next run will not retry them
			// because the rows are gone, so log loudly enough to notice.
			logger.Warn("Could not delete expired photo blob", "key", key, "error", err)
		}
	}
	if len(keys) > 0 {
		logger.Info("Purged expired pending photos", "count", len(keys))
	}
	return len(keys), nil
}
