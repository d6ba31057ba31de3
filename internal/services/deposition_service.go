// Package services – DepositionService
//
// This file implements deposition composition: a lawyer assembles an
// ordered list of evidence references into a narrative document. Order is
// an advisory sort key carried by the join rows; neither uniqueness nor
// contiguity of positions is enforced.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/repo"
)

// DepositionService implements deposition composition and retrieval.
type DepositionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewDepositionService constructs a DepositionService.
func NewDepositionService(db *gorm.DB) *DepositionService {
	return &DepositionService{DB: db}
}

// EvidenceRef names one evidence record and its position in the narrative.
type EvidenceRef struct {
	EvidenceID string
	Position   int
}

// Create assembles a new deposition. Lawyers only; title required. Every
// referenced evidence record must exist (any uploader's — lawyers compose
// from citizens' uploads), otherwise ErrEvidenceNotFound. Creation and
// reference rows are written in one transaction.
func (s *DepositionService) Create(ctx context.Context, actor *domain.User, title, content string, refs []EvidenceRef) (*domain.Deposition, error) {
	if !actor.Role.CanComposeDeposition() {
		return nil, ErrLawyerOnly
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrMissingFields
	}

	var created *domain.Deposition
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, err := repo.CreateDeposition(ctx, tx, actor.ID, title, content)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			if _, err := repo.GetEvidence(ctx, tx, ref.EvidenceID); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return ErrEvidenceNotFound
				}
				return err
			}
			if err := repo.AddDepositionEvidence(ctx, tx, d.ID, ref.EvidenceID, ref.Position); err != nil {
				return err
			}
		}
		created = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListMine returns the actor's own depositions, newest first.
func (s *DepositionService) ListMine(ctx context.Context, actor *domain.User) ([]domain.Deposition, error) {
	return repo.ListDepositionsByCreator(ctx, s.DB, actor.ID)
}

// Get returns one of the actor's depositions together with its evidence
// references sorted by position.
func (s *DepositionService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Deposition, []domain.DepositionEvidence, error) {
	d, err := repo.GetDeposition(ctx, s.DB, id, actor.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrDepositionNotFound
		}
		return nil, nil, err
	}
	refs, err := repo.ListDepositionEvidence(ctx, s.DB, id)
	if err != nil {
		return nil, nil, err
	}
	return d, refs, nil
}
