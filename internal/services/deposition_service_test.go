package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/repo"
)

func TestDeposition_Create_RulesAndAtomicity(t *testing.T) {
	db := newTestDB(t)
	svc := NewDepositionService(db)
	lawyer := mkUser(t, db, "l1", domain.RoleLawyer)
	citizen := mkUser(t, db, "c1", domain.RoleCitizen)
	ctx := context.Background()

	if _, err := svc.Create(ctx, citizen, "t", "c", nil); !errors.Is(err, ErrLawyerOnly) {
		t.Fatalf("citizen create err = %v", err)
	}
	if _, err := svc.Create(ctx, lawyer, "  ", "c", nil); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank title err = %v", err)
	}

	// A reference to unknown evidence aborts the whole creation.
	_, err := svc.Create(ctx, lawyer, "broken", "c", []EvidenceRef{{EvidenceID: uuid.NewString(), Position: 1}})
	if !errors.Is(err, ErrEvidenceNotFound) {
		t.Fatalf("missing evidence err = %v", err)
	}
	var n int64
	db.Model(&domain.Deposition{}).Count(&n)
	if n != 0 {
		t.Fatalf("partial deposition persisted: %d", n)
	}
}

func TestDeposition_Create_ComposesFromAnyUploader(t *testing.T) {
	db := newTestDB(t)
	svc := NewDepositionService(db)
	lawyer := mkUser(t, db, "l1", domain.RoleLawyer)
	citizen := mkUser(t, db, "c1", domain.RoleCitizen)
	ctx := context.Background()

	// Lawyers compose from citizens' uploads: ownership of the evidence is
	// not required.
	ev, err := repo.CreateEvidence(ctx, db, &domain.Evidence{UploaderID: citizen.ID, Title: "witness photo"})
	if err != nil {
		t.Fatalf("evidence: %v", err)
	}

	d, err := svc.Create(ctx, lawyer, "Case file", "narrative", []EvidenceRef{{EvidenceID: ev.ID, Position: 1}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.CreatedByID != lawyer.ID {
		t.Fatalf("creator: %+v", d)
	}
}

func TestDeposition_Get_OwnerOnlyAndOrdered(t *testing.T) {
	db := newTestDB(t)
	svc := NewDepositionService(db)
	lawyer := mkUser(t, db, "l1", domain.RoleLawyer)
	other := mkUser(t, db, "l2", domain.RoleLawyer)
	citizen := mkUser(t, db, "c1", domain.RoleCitizen)
	ctx := context.Background()

	e1, _ := repo.CreateEvidence(ctx, db, &domain.Evidence{UploaderID: citizen.ID, Title: "a"})
	e2, _ := repo.CreateEvidence(ctx, db, &domain.Evidence{UploaderID: citizen.ID, Title: "b"})
	e3, _ := repo.CreateEvidence(ctx, db, &domain.Evidence{UploaderID: citizen.ID, Title: "c"})

	// Insert out of order; positions are the sort key.
	d, err := svc.Create(ctx, lawyer, "ordered", "", []EvidenceRef{
		{EvidenceID: e3.ID, Position: 30},
		{EvidenceID: e1.ID, Position: 10},
		{EvidenceID: e2.ID, Position: 20},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, refs, err := svc.Get(ctx, lawyer, d.ID)
	if err != nil || got.ID != d.ID {
		t.Fatalf("get: %+v err=%v", got, err)
	}
	if len(refs) != 3 {
		t.Fatalf("refs = %d", len(refs))
	}
	want := []string{e1.ID, e2.ID, e3.ID}
	for i, r := range refs {
		if r.EvidenceID != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, r.EvidenceID, want[i])
		}
	}

	// Another lawyer's read answers not-found.
	if _, _, err := svc.Get(ctx, other, d.ID); !errors.Is(err, ErrDepositionNotFound) {
		t.Fatalf("foreign get err = %v", err)
	}
}

func TestDeposition_ListMine(t *testing.T) {
	db := newTestDB(t)
	svc := NewDepositionService(db)
	l1 := mkUser(t, db, "l1", domain.RoleLawyer)
	l2 := mkUser(t, db, "l2", domain.RoleLawyer)
	ctx := context.Background()

	if _, err := svc.Create(ctx, l1, "one", "", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, l2, "two", "", nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.ListMine(ctx, l1)
	if err != nil || len(mine) != 1 || mine[0].Title != "one" {
		t.Fatalf("list mine: %+v err=%v", mine, err)
	}
}
