// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for consultation
// slots and bookings.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

// CreateSlot inserts a consultation slot offered by lawyerID.
func CreateSlot(ctx context.Context, db *gorm.DB, lawyerID string, start time.Time, durationMinutes int) (*domain.ConsultationSlot, error) {
	s := &domain.ConsultationSlot{
		ID:              uuid.NewString(),
		LawyerID:        lawyerID,
		StartTime:       start.UTC(),
		DurationMinutes: durationMinutes,
		CreatedAt:       time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSlot fetches a slot by ID, or ErrNotFound.
func GetSlot(ctx context.Context, db *gorm.DB, id string) (*domain.ConsultationSlot, error) {
	var s domain.ConsultationSlot
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSlotsByLawyer returns the slots offered by lawyerID, earliest first.
func ListSlotsByLawyer(ctx context.Context, db *gorm.DB, lawyerID string) ([]domain.ConsultationSlot, error) {
	var out []domain.ConsultationSlot
	err := db.WithContext(ctx).
		Where("lawyer_id = ?", lawyerID).
		Order("start_time asc").
		Find(&out).Error
	return out, err
}

// ListOpenSlots returns slots that are not yet booked, earliest first.
func ListOpenSlots(ctx context.Context, db *gorm.DB) ([]domain.ConsultationSlot, error) {
	var out []domain.ConsultationSlot
	err := db.WithContext(ctx).
		Where("is_booked = ?", false).
		Order("start_time asc").
		Find(&out).Error
	return out, err
}

// MarkSlotBooked sets the is_booked flag on a slot.
func MarkSlotBooked(ctx context.Context, db *gorm.DB, id string, booked bool) error {
	res := db.WithContext(ctx).
		Model(&domain.ConsultationSlot{}).
		Where("id = ?", id).
		Update("is_booked", booked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateBooking inserts a booking row for userID against slotID.
func CreateBooking(ctx context.Context, db *gorm.DB, slotID, userID string, confirmed bool) (*domain.ConsultationBooking, error) {
	b := &domain.ConsultationBooking{
		ID:        uuid.NewString(),
		SlotID:    slotID,
		UserID:    userID,
		Confirmed: confirmed,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// ListBookingsByUser returns the bookings made by userID, newest first.
func ListBookingsByUser(ctx context.Context, db *gorm.DB, userID string) ([]domain.ConsultationBooking, error) {
	var out []domain.ConsultationBooking
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}
