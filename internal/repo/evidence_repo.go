// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Evidence
// model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

// CreateEvidence inserts an evidence row. SizeBytes may be nil when the
// stored file could not be read at save time; the record persists anyway.
func CreateEvidence(ctx context.Context, db *gorm.DB, e *domain.Evidence) (*domain.Evidence, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.UploadedAt.IsZero() {
		e.UploadedAt = time.Now().UTC()
	}
	if e.FileType == "" {
		e.FileType = domain.FileTypeOther
	}
	if e.VerificationStatus == "" {
		e.VerificationStatus = domain.VerificationPending
	}
	if err := db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

// GetEvidence fetches an evidence record by ID, or ErrNotFound.
func GetEvidence(ctx context.Context, db *gorm.DB, id string) (*domain.Evidence, error) {
	var e domain.Evidence
	if err := db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEvidenceByUploader returns all evidence uploaded by userID, newest
// first.
func ListEvidenceByUploader(ctx context.Context, db *gorm.DB, userID string) ([]domain.Evidence, error) {
	var out []domain.Evidence
	err := db.WithContext(ctx).
		Where("uploader_id = ?", userID).
		Order("uploaded_at desc").
		Find(&out).Error
	return out, err
}

// ListEvidenceByIDsForUploader returns the subset of ids that exist and are
// owned by userID. Attachment flows use it so a caller can only link their
// own uploads.
func ListEvidenceByIDsForUploader(ctx context.Context, db *gorm.DB, userID string, ids []string) ([]domain.Evidence, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.Evidence
	err := db.WithContext(ctx).
		Where("uploader_id = ? AND id IN ?", userID, ids).
		Find(&out).Error
	return out, err
}
