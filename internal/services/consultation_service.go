// Package services – ConsultationService
//
// This file implements lawyer availability (slots) and citizen reservations
// (bookings). Booking runs in a transaction that re-reads the slot and
// refuses one that is already booked, so at most one confirmed booking can
// hold a slot even under concurrent requests. This is a deliberate
// strengthening over schema-only enforcement.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/repo"
)

// ConsultationService implements slot and booking operations.
type ConsultationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewConsultationService constructs a ConsultationService.
func NewConsultationService(db *gorm.DB) *ConsultationService {
	return &ConsultationService{DB: db}
}

// CreateSlot publishes a new availability window. Lawyers only; the start
// time is required and non-positive durations fall back to 30 minutes.
func (s *ConsultationService) CreateSlot(ctx context.Context, actor *domain.User, start time.Time, durationMinutes int) (*domain.ConsultationSlot, error) {
	if !actor.Role.CanOfferSlots() {
		return nil, ErrLawyerOnly
	}
	if start.IsZero() {
		return nil, ErrMissingFields
	}
	if durationMinutes <= 0 {
		durationMinutes = 30
	}
	return repo.CreateSlot(ctx, s.DB, actor.ID, start, durationMinutes)
}

// ListSlots returns the slots relevant to the actor: lawyers see their own
// offerings, everyone else sees the open slots available for booking.
func (s *ConsultationService) ListSlots(ctx context.Context, actor *domain.User) ([]domain.ConsultationSlot, error) {
	if actor != nil && actor.Role.CanOfferSlots() {
		return repo.ListSlotsByLawyer(ctx, s.DB, actor.ID)
	}
	return repo.ListOpenSlots(ctx, s.DB)
}

// ListMySlots returns the actor's own offered slots (dashboard view).
func (s *ConsultationService) ListMySlots(ctx context.Context, actor *domain.User) ([]domain.ConsultationSlot, error) {
	return repo.ListSlotsByLawyer(ctx, s.DB, actor.ID)
}

// Book reserves a slot for the actor. Citizens only. The booking is
// confirmed immediately and the slot flagged booked within the same
// transaction; a second booking attempt observes the flag and fails with
// ErrSlotTaken.
func (s *ConsultationService) Book(ctx context.Context, actor *domain.User, slotID string) (*domain.ConsultationBooking, error) {
	if !actor.Role.CanBookSlot() {
		return nil, ErrCitizenOnly
	}

	var booking *domain.ConsultationBooking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot, err := repo.GetSlot(ctx, tx, slotID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if slot.IsBooked {
			return ErrSlotTaken
		}
		b, err := repo.CreateBooking(ctx, tx, slot.ID, actor.ID, true)
		if err != nil {
			return err
		}
		if err := repo.MarkSlotBooked(ctx, tx, slot.ID, true); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := repo.AppendAudit(ctx, s.DB, actor.ID, "consultation.book", map[string]any{"slot_id": slotID, "booking_id": booking.ID}); err != nil {
		log.Warn().Err(err).Msg("audit append failed")
	}
	return booking, nil
}
