package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

func TestSlots_Create_List_Book(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()
	lawyer, err := CreateUser(ctx, db, "l1", "", "x", domain.RoleLawyer)
	if err != nil {
		t.Fatalf("lawyer: %v", err)
	}
	citizen := seedCitizen(t, db, "c1")

	base := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	s2, err := CreateSlot(ctx, db, lawyer.ID, base.Add(time.Hour), 30)
	if err != nil {
		t.Fatalf("slot: %v", err)
	}
	s1, err := CreateSlot(ctx, db, lawyer.ID, base, 45)
	if err != nil {
		t.Fatalf("slot: %v", err)
	}

	// Earliest first regardless of insertion order.
	mine, err := ListSlotsByLawyer(ctx, db, lawyer.ID)
	if err != nil || len(mine) != 2 || mine[0].ID != s1.ID {
		t.Fatalf("lawyer slots: %+v err=%v", mine, err)
	}

	open, err := ListOpenSlots(ctx, db)
	if err != nil || len(open) != 2 {
		t.Fatalf("open slots: %+v err=%v", open, err)
	}

	if err := MarkSlotBooked(ctx, db, s1.ID, true); err != nil {
		t.Fatalf("mark booked: %v", err)
	}
	if err := MarkSlotBooked(ctx, db, "nope", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing mark err = %v", err)
	}
	open, err = ListOpenSlots(ctx, db)
	if err != nil || len(open) != 1 || open[0].ID != s2.ID {
		t.Fatalf("open slots after booking: %+v err=%v", open, err)
	}

	b, err := CreateBooking(ctx, db, s1.ID, citizen.ID, true)
	if err != nil || !b.Confirmed {
		t.Fatalf("booking: %+v err=%v", b, err)
	}
	got, err := ListBookingsByUser(ctx, db, citizen.ID)
	if err != nil || len(got) != 1 || got[0].SlotID != s1.ID {
		t.Fatalf("bookings: %+v err=%v", got, err)
	}

	if _, err := GetSlot(ctx, db, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing slot err = %v", err)
	}
}
