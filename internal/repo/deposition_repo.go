// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for depositions
// and their ordered evidence join rows.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

// CreateDeposition inserts a deposition row authored by userID.
func CreateDeposition(ctx context.Context, db *gorm.DB, userID, title, content string) (*domain.Deposition, error) {
	d := &domain.Deposition{
		ID:          uuid.NewString(),
		CreatedByID: userID,
		Title:       title,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// GetDeposition fetches a deposition by ID and owner, or ErrNotFound.
// Depositions are private to their author.
func GetDeposition(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Deposition, error) {
	var d domain.Deposition
	err := db.WithContext(ctx).
		Where("id = ? AND created_by_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDepositionsByCreator returns all depositions authored by userID,
// newest first.
func ListDepositionsByCreator(ctx context.Context, db *gorm.DB, userID string) ([]domain.Deposition, error) {
	var out []domain.Deposition
	err := db.WithContext(ctx).
		Where("created_by_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// AddDepositionEvidence appends an ordered evidence reference to a
// deposition. Position values are advisory: neither uniqueness nor
// contiguity is enforced.
func AddDepositionEvidence(ctx context.Context, db *gorm.DB, depositionID, evidenceID string, position int) error {
	row := &domain.DepositionEvidence{
		DepositionID: depositionID,
		EvidenceID:   evidenceID,
		Position:     position,
	}
	return db.WithContext(ctx).Create(row).Error
}

// ListDepositionEvidence returns a deposition's evidence references sorted
// by position (ties keep insertion order).
func ListDepositionEvidence(ctx context.Context, db *gorm.DB, depositionID string) ([]domain.DepositionEvidence, error) {
	var out []domain.DepositionEvidence
	err := db.WithContext(ctx).
		Preload("Evidence").
		Where("deposition_id = ?", depositionID).
		Order("position asc").
		Find(&out).Error
	return out, err
}
