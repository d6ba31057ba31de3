// Package services – PetitionService
//
// This file implements the PetitionService, which owns the petition
// lifecycle state machine (draft → pending → published/rejected), the
// supporter join operation, and the three distinct read policies:
//
//   - "list mine": creator-owned records only, any role
//   - collection read: admin → all; authenticated non-admin → own only;
//     anonymous → published AND public
//   - public index: published only (visibility not filtered), optional
//     substring search on title or category
//
// The detail view is stricter than the collection read: it requires
// status == published regardless of visibility. That asymmetry is part of
// the observable contract and is preserved here.
//
// Service-level errors (ErrPetitionNotFound, ErrCitizenOnly, ErrAdminOnly,
// ErrNotOwner, ...) are returned for predictable cases so handlers can map
// them to HTTP results consistently. Duplicate actions (submitting a
// non-draft, joining twice) are not errors: they report a no-op outcome.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/repo"
	"github.com/justicerollon/go-justice-backend/internal/search"
)

// PetitionService provides petition lifecycle, supporter, and read-policy
// operations. It is context-aware and safe for concurrent use; mutating
// operations open their own transactions.
type PetitionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewPetitionService constructs a PetitionService.
func NewPetitionService(db *gorm.DB) *PetitionService {
	return &PetitionService{DB: db}
}

// CreatePetitionInput carries the caller-supplied fields for Create.
type CreatePetitionInput struct {
	Title       string
	Description string
	Category    string
	Visibility  string
	EvidenceIDs []string
}

// SubmitResult reports the outcome of a submit-for-review call. When NoOp
// is true the petition was already past draft and nothing was mutated;
// Status carries the state the petition was found in.
type SubmitResult struct {
	NoOp   bool
	Status domain.PetitionStatus
}

// JoinResult reports the outcome of a supporter join. On the
// already-supported branch AlreadySupported is true and Supporters is not
// meaningful: the caller only gets a message and the count is omitted from
// that response.
type JoinResult struct {
	AlreadySupported bool
	Supporters       int64
}

// Create inserts a new petition in draft state. Only citizens may create;
// title and description are required; category falls back to "general" and
// visibility to public. Any supplied evidence ids are attached, silently
// restricted to evidence the actor uploaded themselves.
func (s *PetitionService) Create(ctx context.Context, actor *domain.User, in CreatePetitionInput) (*domain.Petition, error) {
	if !actor.Role.CanCreatePetition() {
		return nil, ErrCitizenOnly
	}
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, ErrMissingFields
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "general"
	}
	visibility := domain.VisibilityPublic
	if domain.Visibility(in.Visibility) == domain.VisibilityPrivate {
		visibility = domain.VisibilityPrivate
	}

	var created *domain.Petition
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repo.CreatePetition(ctx, tx, actor.ID, title, description, category, visibility)
		if err != nil {
			return err
		}
		if len(in.EvidenceIDs) > 0 {
			own, err := repo.ListEvidenceByIDsForUploader(ctx, tx, actor.ID, in.EvidenceIDs)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(own))
			for _, e := range own {
				ids = append(ids, e.ID)
			}
			if err := repo.AttachEvidence(ctx, tx, p.ID, ids); err != nil {
				return err
			}
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit(ctx, actor.ID, "petition.create", map[string]any{"petition_id": created.ID, "title": created.Title})
	return created, nil
}

// SubmitForReview moves a draft petition to pending. Only the creator may
// submit, and only while holding the citizen role. Submitting a petition
// that already left draft is a reported no-op, never an error and never a
// second transition.
func (s *PetitionService) SubmitForReview(ctx context.Context, actor *domain.User, petitionID string) (*SubmitResult, error) {
	p, err := repo.GetPetition(ctx, s.DB, petitionID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPetitionNotFound
		}
		return nil, err
	}
	if p.CreatorID != actor.ID {
		return nil, ErrNotOwner
	}
	if !actor.Role.CanCreatePetition() {
		return nil, ErrCitizenOnly
	}
	if p.Status != domain.StatusDraft {
		return &SubmitResult{NoOp: true, Status: p.Status}, nil
	}
	if err := repo.UpdatePetitionStatus(ctx, s.DB, p.ID, domain.StatusPending); err != nil {
		return nil, err
	}
	s.audit(ctx, actor.ID, "petition.submit", map[string]any{"petition_id": p.ID})
	return &SubmitResult{Status: domain.StatusPending}, nil
}

// Approve publishes a petition. Admin only. The transition is permissive:
// whatever the prior status, the petition ends up published (the reference
// behavior; approval is not validated against pending). PublishedAt is
// stamped only when still unset, so it is written exactly once.
func (s *PetitionService) Approve(ctx context.Context, actor *domain.User, petitionID string) (*domain.Petition, error) {
	return s.review(ctx, actor, petitionID, domain.StatusPublished)
}

// Reject marks a petition rejected. Admin only, permissive like Approve.
func (s *PetitionService) Reject(ctx context.Context, actor *domain.User, petitionID string) (*domain.Petition, error) {
	return s.review(ctx, actor, petitionID, domain.StatusRejected)
}

func (s *PetitionService) review(ctx context.Context, actor *domain.User, petitionID string, to domain.PetitionStatus) (*domain.Petition, error) {
	if !actor.Role.CanReviewPetition() {
		return nil, ErrAdminOnly
	}
	p, err := repo.GetPetition(ctx, s.DB, petitionID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPetitionNotFound
		}
		return nil, err
	}
	if err := repo.UpdatePetitionStatus(ctx, s.DB, p.ID, to); err != nil {
		return nil, err
	}
	p.Status = to
	if to == domain.StatusPublished && p.PublishedAt == nil {
		now := time.Now().UTC()
		if err := repo.SetPublishedAt(ctx, s.DB, p.ID, now); err != nil {
			return nil, err
		}
		p.PublishedAt = &now
	}
	s.audit(ctx, actor.ID, "petition."+string(to), map[string]any{"petition_id": p.ID})
	return p, nil
}

// Join adds the actor to a petition's supporter set. Citizens only. The
// petition's status is intentionally not checked: any petition can be
// joined regardless of lifecycle state, as the reference behaves.
//
// Joining a petition the actor already supports is a no-op success. On the
// mutating branch the supporter count is recomputed from the join table
// inside the transaction (not incremented), so concurrent joins and any
// prior drift both resolve to the exact cardinality.
func (s *PetitionService) Join(ctx context.Context, actor *domain.User, petitionID string) (*JoinResult, error) {
	if !actor.Role.CanSupportPetition() {
		return nil, ErrCitizenOnly
	}

	var res JoinResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetPetition(ctx, tx, petitionID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPetitionNotFound
			}
			return err
		}
		already, err := repo.IsSupporter(ctx, tx, petitionID, actor.ID)
		if err != nil {
			return err
		}
		if already {
			res = JoinResult{AlreadySupported: true}
			return nil
		}
		if err := repo.AddSupporter(ctx, tx, petitionID, actor.ID); err != nil {
			return err
		}
		n, err := repo.CountSupporters(ctx, tx, petitionID)
		if err != nil {
			return err
		}
		if err := repo.SetSupporterCount(ctx, tx, petitionID, n); err != nil {
			return err
		}
		res = JoinResult{Supporters: n}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !res.AlreadySupported {
		s.audit(ctx, actor.ID, "petition.join", map[string]any{"petition_id": petitionID, "supporters": res.Supporters})
	}
	return &res, nil
}

// ListForViewer applies the collection read policy: admins see every
// petition, authenticated non-admins see only their own, and an anonymous
// viewer (nil) sees published public petitions. Results are paginated with
// a total count.
func (s *PetitionService) ListForViewer(ctx context.Context, viewer *domain.User, page, pageSize int) ([]domain.Petition, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	switch {
	case viewer != nil && viewer.Role.SeesAllPetitions():
		total, err := repo.CountAllPetitions(ctx, s.DB)
		if err != nil || total == 0 {
			return []domain.Petition{}, total, err
		}
		items, err := repo.ListAllPetitionsPage(ctx, s.DB, offset, pageSize)
		return items, total, err
	case viewer != nil:
		total, err := repo.CountPetitionsByCreator(ctx, s.DB, viewer.ID)
		if err != nil || total == 0 {
			return []domain.Petition{}, total, err
		}
		items, err := repo.ListPetitionsByCreatorPage(ctx, s.DB, viewer.ID, offset, pageSize)
		return items, total, err
	default:
		total, err := repo.CountPublicPetitions(ctx, s.DB)
		if err != nil || total == 0 {
			return []domain.Petition{}, total, err
		}
		items, err := repo.ListPublicPetitionsPage(ctx, s.DB, offset, pageSize)
		return items, total, err
	}
}

// GetForViewer applies the collection policy to a single record: admins
// read anything, authenticated non-admins read only their own rows, and
// anonymous viewers read only published public rows. A row outside the
// viewer's scope is reported as not found, not forbidden.
func (s *PetitionService) GetForViewer(ctx context.Context, viewer *domain.User, id string) (*domain.Petition, error) {
	p, err := repo.GetPetition(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPetitionNotFound
		}
		return nil, err
	}
	switch {
	case viewer != nil && viewer.Role.SeesAllPetitions():
		return p, nil
	case viewer != nil:
		if p.CreatorID != viewer.ID {
			return nil, ErrPetitionNotFound
		}
		return p, nil
	default:
		if p.Status == domain.StatusPublished && p.Visibility == domain.VisibilityPublic {
			return p, nil
		}
		return nil, ErrPetitionNotFound
	}
}

// PublicDetail is the public detail-page read: it requires status ==
// published regardless of visibility, for any requester. A draft petition
// is not found here even for its own creator.
func (s *PetitionService) PublicDetail(ctx context.Context, id string) (*domain.Petition, error) {
	p, err := repo.GetPublishedPetition(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPetitionNotFound
		}
		return nil, err
	}
	return p, nil
}

// IsSupporter reports whether userID already supports the petition. Used
// by the detail view to tell the caller whether they may still join.
func (s *PetitionService) IsSupporter(ctx context.Context, petitionID, userID string) (bool, error) {
	return repo.IsSupporter(ctx, s.DB, petitionID, userID)
}

// SearchPublished returns published petitions matching the query by
// case-insensitive substring on title or category, newest first. The query
// is normalized (trimmed, folded) before matching; an empty query returns
// every published petition. Visibility is not filtered on this path.
func (s *PetitionService) SearchPublished(ctx context.Context, rawQuery string) ([]domain.Petition, error) {
	return repo.SearchPublishedPetitions(ctx, s.DB, search.NormalizeQuery(rawQuery))
}

// ListPending returns petitions awaiting review, for the admin dashboard.
func (s *PetitionService) ListPending(ctx context.Context) ([]domain.Petition, error) {
	return repo.ListPetitionsByStatus(ctx, s.DB, domain.StatusPending)
}

// ListMine returns the actor's own petitions regardless of role (the
// "list mine" read policy), newest first, paginated.
func (s *PetitionService) ListMine(ctx context.Context, actor *domain.User, page, pageSize int) ([]domain.Petition, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	total, err := repo.CountPetitionsByCreator(ctx, s.DB, actor.ID)
	if err != nil || total == 0 {
		return []domain.Petition{}, total, err
	}
	items, err := repo.ListPetitionsByCreatorPage(ctx, s.DB, actor.ID, (page-1)*pageSize, pageSize)
	return items, total, err
}

// UpdatePetitionInput carries the editable fields for Update. Nil pointers
// leave the column untouched.
type UpdatePetitionInput struct {
	Title       *string
	Description *string
	Category    *string
	Visibility  *string
}

// Update edits a draft petition. Only the creator may edit, and only while
// the petition is still a draft; lifecycle fields (status, published_at,
// supporter_count) are not reachable through this path.
func (s *PetitionService) Update(ctx context.Context, actor *domain.User, id string, in UpdatePetitionInput) (*domain.Petition, error) {
	p, err := repo.GetPetition(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPetitionNotFound
		}
		return nil, err
	}
	if p.CreatorID != actor.ID {
		return nil, ErrNotOwner
	}
	if p.Status != domain.StatusDraft {
		return nil, ErrPetitionNotDraft
	}

	fields := map[string]any{}
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return nil, ErrMissingFields
		}
		fields["title"] = t
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		if d == "" {
			return nil, ErrMissingFields
		}
		fields["description"] = d
	}
	if in.Category != nil {
		fields["category"] = strings.TrimSpace(*in.Category)
	}
	if in.Visibility != nil {
		v := domain.VisibilityPublic
		if domain.Visibility(*in.Visibility) == domain.VisibilityPrivate {
			v = domain.VisibilityPrivate
		}
		fields["visibility"] = v
	}
	if len(fields) == 0 {
		return p, nil
	}
	if err := repo.UpdatePetitionFields(ctx, s.DB, id, fields); err != nil {
		return nil, err
	}
	return repo.GetPetition(ctx, s.DB, id)
}

// Delete removes a petition and its join rows. Allowed for the creator or
// an admin.
func (s *PetitionService) Delete(ctx context.Context, actor *domain.User, id string) error {
	p, err := repo.GetPetition(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPetitionNotFound
		}
		return err
	}
	if p.CreatorID != actor.ID && !actor.Role.SeesAllPetitions() {
		return ErrNotOwner
	}
	if err := repo.DeletePetition(ctx, s.DB, id); err != nil {
		return err
	}
	s.audit(ctx, actor.ID, "petition.delete", map[string]any{"petition_id": id})
	return nil
}

// audit appends a write-only trail entry. Failures are logged and
// swallowed: the audit trail never fails a request.
func (s *PetitionService) audit(ctx context.Context, userID, action string, meta map[string]any) {
	if err := repo.AppendAudit(ctx, s.DB, userID, action, meta); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("audit append failed")
	}
}
