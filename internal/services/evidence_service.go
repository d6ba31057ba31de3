// Package services – EvidenceService
//
// This file implements evidence registration. The file itself is placed by
// the storage layer before the record is created; the byte size is then
// derived from the stored file, never trusted from client input. Size
// derivation is best-effort: when the file cannot be statted at save time
// the record persists with the size unset, and the failure is only logged.
package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/repo"
	"github.com/justicerollon/go-justice-backend/internal/storage"
)

// EvidenceService implements evidence upload metadata handling.
type EvidenceService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewEvidenceService constructs an EvidenceService.
func NewEvidenceService(db *gorm.DB) *EvidenceService {
	return &EvidenceService{DB: db}
}

// RegisterInput carries the metadata for a stored upload. FilePath may be
// empty for records created without an attached file.
type RegisterInput struct {
	Title    string
	FileType string
	CaseTag  string
	FilePath string
}

// Register persists an evidence record for the actor. Title is required.
// When a file path is present, SizeBytes is derived via storage.SizeOf;
// a stat failure leaves the size nil and does not fail the save.
func (s *EvidenceService) Register(ctx context.Context, actor *domain.User, in RegisterInput) (*domain.Evidence, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrMissingFields
	}
	fileType := strings.TrimSpace(in.FileType)
	switch fileType {
	case domain.FileTypeImage, domain.FileTypePDF, domain.FileTypeVideo, domain.FileTypeDoc:
	default:
		fileType = domain.FileTypeOther
	}

	e := &domain.Evidence{
		UploaderID: actor.ID,
		Title:      title,
		FilePath:   in.FilePath,
		FileType:   fileType,
		CaseTag:    strings.TrimSpace(in.CaseTag),
	}
	if in.FilePath != "" {
		if n, err := storage.SizeOf(in.FilePath); err == nil {
			e.SizeBytes = &n
		} else {
			log.Warn().Err(err).Str("path", in.FilePath).Msg("evidence size derivation failed; leaving unset")
		}
	}

	created, err := repo.CreateEvidence(ctx, s.DB, e)
	if err != nil {
		return nil, err
	}
	if err := repo.AppendAudit(ctx, s.DB, actor.ID, "evidence.upload", map[string]any{"evidence_id": created.ID, "title": created.Title}); err != nil {
		log.Warn().Err(err).Msg("audit append failed")
	}
	return created, nil
}

// ListMine returns the actor's own uploads, newest first.
func (s *EvidenceService) ListMine(ctx context.Context, actor *domain.User) ([]domain.Evidence, error) {
	return repo.ListEvidenceByUploader(ctx, s.DB, actor.ID)
}
