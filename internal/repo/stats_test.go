package repo

import (
	"context"
	"testing"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

func TestPetitionsStats(t *testing.T) {
	db := newRepoDB(t)
	u := seedCitizen(t, db, "c1")
	ctx := context.Background()

	// Empty state: zero count, nil timestamp.
	count, maxTS, err := PetitionsStats(ctx, db, u.ID)
	if err != nil || count != 0 || maxTS != nil {
		t.Fatalf("empty stats: count=%d ts=%v err=%v", count, maxTS, err)
	}

	p1, err := CreatePetition(ctx, db, u.ID, "A", "d", "general", domain.VisibilityPublic)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := CreatePetition(ctx, db, u.ID, "B", "d", "general", domain.VisibilityPublic); err != nil {
		t.Fatalf("create: %v", err)
	}

	count, maxTS, err = PetitionsStats(ctx, db, u.ID)
	if err != nil || count != 2 || maxTS == nil {
		t.Fatalf("stats: count=%d ts=%v err=%v", count, maxTS, err)
	}

	// Touching a row moves the max timestamp forward (or keeps it equal at
	// second resolution).
	before := *maxTS
	if err := UpdatePetitionStatus(ctx, db, p1.ID, domain.StatusPending); err != nil {
		t.Fatalf("touch: %v", err)
	}
	_, after, err := PetitionsStats(ctx, db, u.ID)
	if err != nil || after == nil || after.Before(before) {
		t.Fatalf("max updated_at went backwards: before=%v after=%v err=%v", before, after, err)
	}
}

func TestPublishedPetitionsStats(t *testing.T) {
	db := newRepoDB(t)
	u := seedCitizen(t, db, "c1")
	ctx := context.Background()

	count, maxTS, err := PublishedPetitionsStats(ctx, db)
	if err != nil || count != 0 || maxTS != nil {
		t.Fatalf("empty stats: count=%d ts=%v err=%v", count, maxTS, err)
	}

	pub, err := CreatePetition(ctx, db, u.ID, "pub", "d", "general", domain.VisibilityPublic)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := UpdatePetitionStatus(ctx, db, pub.ID, domain.StatusPublished); err != nil {
		t.Fatalf("publish: %v", err)
	}
	// Published but private: outside the anonymous scope.
	priv, err := CreatePetition(ctx, db, u.ID, "priv", "d", "general", domain.VisibilityPrivate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := UpdatePetitionStatus(ctx, db, priv.ID, domain.StatusPublished); err != nil {
		t.Fatalf("publish: %v", err)
	}

	count, maxTS, err = PublishedPetitionsStats(ctx, db)
	if err != nil || count != 1 || maxTS == nil {
		t.Fatalf("public stats: count=%d ts=%v err=%v", count, maxTS, err)
	}
}
