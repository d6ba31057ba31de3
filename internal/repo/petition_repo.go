// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Petition
// aggregate: the petition row itself, the supporter join table, and the
// evidence attachment join table.
//
// Error semantics:
//   - When a petition is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// The read helpers deliberately encode three distinct visibility policies
// (own, all, anonymous public) as separate functions rather than one
// parameterized query, so each policy stays greppable on its own.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

// CreatePetition inserts a new Petition row in draft state owned by
// creatorID. The petition ID is a randomly generated UUID.
func CreatePetition(ctx context.Context, db *gorm.DB, creatorID, title, description, category string, visibility domain.Visibility) (*domain.Petition, error) {
	p := &domain.Petition{
		ID:          uuid.NewString(),
		CreatorID:   creatorID,
		Title:       title,
		Description: description,
		Category:    category,
		Visibility:  visibility,
		Status:      domain.StatusDraft,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetPetition fetches a petition by ID with its creator preloaded, or
// ErrNotFound if missing.
func GetPetition(ctx context.Context, db *gorm.DB, id string) (*domain.Petition, error) {
	var p domain.Petition
	err := db.WithContext(ctx).
		Preload("Creator").
		Preload("Evidences").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPublishedPetition fetches a petition by ID only when its status is
// published, regardless of visibility. This is the stricter detail-view
// filter: a draft or pending petition is a 404 here even for its creator.
func GetPublishedPetition(ctx context.Context, db *gorm.DB, id string) (*domain.Petition, error) {
	var p domain.Petition
	err := db.WithContext(ctx).
		Preload("Creator").
		Preload("Evidences").
		Where("id = ? AND status = ?", id, domain.StatusPublished).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CountPetitionsByCreator returns the number of petitions owned by userID.
func CountPetitionsByCreator(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Petition{}).
		Where("creator_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListPetitionsByCreatorPage returns a page of petitions owned by userID,
// newest first.
func ListPetitionsByCreatorPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Petition, error) {
	var out []domain.Petition
	err := db.WithContext(ctx).
		Preload("Creator").
		Where("creator_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountAllPetitions returns the total petition count (admin scope).
func CountAllPetitions(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Petition{}).Count(&total).Error
	return total, err
}

// ListAllPetitionsPage returns a page of every petition, newest first
// (admin scope).
func ListAllPetitionsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Petition, error) {
	var out []domain.Petition
	err := db.WithContext(ctx).
		Preload("Creator").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountPublicPetitions returns the number of published, public petitions
// (anonymous collection scope).
func CountPublicPetitions(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Petition{}).
		Where("status = ? AND visibility = ?", domain.StatusPublished, domain.VisibilityPublic).
		Count(&total).Error
	return total, err
}

// ListPublicPetitionsPage returns a page of published, public petitions,
// newest first (anonymous collection scope).
func ListPublicPetitionsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Petition, error) {
	var out []domain.Petition
	err := db.WithContext(ctx).
		Preload("Creator").
		Where("status = ? AND visibility = ?", domain.StatusPublished, domain.VisibilityPublic).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListPetitionsByStatus returns every petition in the given status, newest
// first. Used by the admin dashboard's pending queue.
func ListPetitionsByStatus(ctx context.Context, db *gorm.DB, status domain.PetitionStatus) ([]domain.Petition, error) {
	var out []domain.Petition
	err := db.WithContext(ctx).
		Preload("Creator").
		Where("status = ?", status).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// SearchPublishedPetitions returns published petitions whose title or
// category contains the (already lowercased/folded) query substring, newest
// first. An empty query matches everything published. Visibility is
// intentionally not filtered here; the public index only looks at status.
func SearchPublishedPetitions(ctx context.Context, db *gorm.DB, query string) ([]domain.Petition, error) {
	q := db.WithContext(ctx).
		Preload("Creator").
		Where("status = ?", domain.StatusPublished)
	if query != "" {
		pat := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", pat, pat)
	}
	var out []domain.Petition
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

// UpdatePetitionStatus sets the status of a petition. If no rows are
// affected, it returns ErrNotFound.
func UpdatePetitionStatus(ctx context.Context, db *gorm.DB, id string, status domain.PetitionStatus) error {
	res := db.WithContext(ctx).
		Model(&domain.Petition{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePetitionFields updates the caller-editable columns of a petition.
// The service layer decides which fields are allowed and when.
func UpdatePetitionFields(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Petition{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetPublishedAt stamps the publication timestamp. The service calls this
// only when the field is still unset, so the stamp happens exactly once.
func SetPublishedAt(ctx context.Context, db *gorm.DB, id string, ts time.Time) error {
	return db.WithContext(ctx).
		Model(&domain.Petition{}).
		Where("id = ?", id).
		Update("published_at", ts).Error
}

// AttachEvidence links the given evidence rows to a petition. Existing
// links are left alone (insert is idempotent per pair).
func AttachEvidence(ctx context.Context, db *gorm.DB, petitionID string, evidenceIDs []string) error {
	for _, eid := range evidenceIDs {
		link := domain.PetitionEvidence{PetitionID: petitionID, EvidenceID: eid}
		if err := db.WithContext(ctx).
			Where(&link).
			FirstOrCreate(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// IsSupporter reports whether userID already supports petitionID.
func IsSupporter(ctx context.Context, db *gorm.DB, petitionID, userID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.PetitionSupporter{}).
		Where("petition_id = ? AND user_id = ?", petitionID, userID).
		Count(&n).Error
	return n > 0, err
}

// AddSupporter inserts a supporter join row.
func AddSupporter(ctx context.Context, db *gorm.DB, petitionID, userID string) error {
	s := &domain.PetitionSupporter{
		PetitionID: petitionID,
		UserID:     userID,
		CreatedAt:  time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(s).Error
}

// CountSupporters returns the exact cardinality of a petition's supporter
// set. The join operation persists this value instead of incrementing, so
// any prior drift in supporter_count is corrected on the next join.
func CountSupporters(ctx context.Context, db *gorm.DB, petitionID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.PetitionSupporter{}).
		Where("petition_id = ?", petitionID).
		Count(&n).Error
	return n, err
}

// SetSupporterCount persists the recomputed supporter count.
func SetSupporterCount(ctx context.Context, db *gorm.DB, petitionID string, n int64) error {
	return db.WithContext(ctx).
		Model(&domain.Petition{}).
		Where("id = ?", petitionID).
		Update("supporter_count", n).Error
}

// DeletePetition removes a petition along with its supporter and evidence
// join rows. The joins are cleaned up explicitly inside one transaction so
// the cascade behavior does not depend on driver-level FK enforcement.
func DeletePetition(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("petition_id = ?", id).Delete(&domain.PetitionSupporter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("petition_id = ?", id).Delete(&domain.PetitionEvidence{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Petition{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
