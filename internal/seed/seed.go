// Package seed loads a small demo dataset: one account per role, two
// petitions at interesting lifecycle points, verified and pending evidence,
// open consultation slots, and a deposition. It is meant for local
// development and demos, not production.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/repo"
)

// Demo wipes petition, evidence, consultation, and deposition data and
// reloads the demo dataset. Accounts are kept across runs: an existing
// username is reused with its password reset.
func Demo(ctx context.Context, db *gorm.DB) error {
	if err := clear(ctx, db); err != nil {
		return err
	}

	admin, err := ensureUser(ctx, db, "admin", "admin@test.com", "admin123", domain.RoleAdmin)
	if err != nil {
		return err
	}
	lawyer, err := ensureUser(ctx, db, "lawyer1", "lawyer@test.com", "lawyer123", domain.RoleLawyer)
	if err != nil {
		return err
	}
	citizen1, err := ensureUser(ctx, db, "citizen1", "citizen1@test.com", "citizen123", domain.RoleCitizen)
	if err != nil {
		return err
	}
	citizen2, err := ensureUser(ctx, db, "citizen2", "citizen2@test.com", "citizen123", domain.RoleCitizen)
	if err != nil {
		return err
	}
	log.Info().
		Strs("users", []string{admin.Username, lawyer.Username, citizen1.Username, citizen2.Username}).
		Msg("demo accounts ready")

	// Petitions: one awaiting review, one already published.
	p1, err := repo.CreatePetition(ctx, db, citizen1.ID,
		"Clean Water for All",
		"Request for ensuring clean water supply in rural areas.",
		"environment", domain.VisibilityPublic)
	if err != nil {
		return err
	}
	if err := repo.UpdatePetitionStatus(ctx, db, p1.ID, domain.StatusPending); err != nil {
		return err
	}

	p2, err := repo.CreatePetition(ctx, db, citizen2.ID,
		"Better Road Safety",
		"Petition to improve road lighting and traffic management.",
		"policy", domain.VisibilityPublic)
	if err != nil {
		return err
	}
	if err := repo.UpdatePetitionStatus(ctx, db, p2.ID, domain.StatusPublished); err != nil {
		return err
	}
	if err := repo.SetPublishedAt(ctx, db, p2.ID, time.Now().UTC()); err != nil {
		return err
	}

	// Evidence: one verified, one pending, with known sizes.
	sz1, sz2 := int64(12345), int64(23456)
	ev1 := &domain.Evidence{
		UploaderID:         citizen1.ID,
		Title:              "Water report",
		FilePath:           "uploads/evidence/water_report.pdf",
		FileType:           domain.FileTypePDF,
		SizeBytes:          &sz1,
		VerificationStatus: domain.VerificationVerified,
	}
	if _, err := repo.CreateEvidence(ctx, db, ev1); err != nil {
		return err
	}
	ev2 := &domain.Evidence{
		UploaderID: citizen2.ID,
		Title:      "Road accident stats",
		FilePath:   "uploads/evidence/accident_stats.csv",
		FileType:   domain.FileTypeDoc,
		SizeBytes:  &sz2,
	}
	if _, err := repo.CreateEvidence(ctx, db, ev2); err != nil {
		return err
	}
	if err := repo.AttachEvidence(ctx, db, p1.ID, []string{ev1.ID}); err != nil {
		return err
	}

	// Three open consultation slots on consecutive days.
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		start := now.Add(time.Duration(i+1)*24*time.Hour + time.Duration(10+i)*time.Hour)
		if _, err := repo.CreateSlot(ctx, db, lawyer.ID, start, 30); err != nil {
			return err
		}
	}

	// A deposition referencing the water report.
	d, err := repo.CreateDeposition(ctx, db, lawyer.ID,
		"Clean Water Case",
		"Deposition prepared for water supply case.")
	if err != nil {
		return err
	}
	if err := repo.AddDepositionEvidence(ctx, db, d.ID, ev1.ID, 1); err != nil {
		return err
	}

	log.Info().Msg("demo data seeded")
	return nil
}

// clear removes the volatile demo entities so repeated runs stay
// deterministic. Accounts survive.
func clear(ctx context.Context, db *gorm.DB) error {
	tables := []any{
		&domain.DepositionEvidence{},
		&domain.Deposition{},
		&domain.ConsultationBooking{},
		&domain.ConsultationSlot{},
		&domain.PetitionSupporter{},
		&domain.PetitionEvidence{},
		&domain.Petition{},
		&domain.Evidence{},
	}
	for _, m := range tables {
		if err := db.WithContext(ctx).Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// ensureUser creates the account or, when the username already exists,
// resets its password and role to the seeded values.
func ensureUser(ctx context.Context, db *gorm.DB, username, email, password string, role domain.Role) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u, err := repo.GetUserByUsername(ctx, db, username)
	if err == nil {
		updates := map[string]any{"password_hash": string(hash), "role": role, "email": email}
		if err := db.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
			return nil, err
		}
		u.Role = role
		return u, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	return repo.CreateUser(ctx, db, username, email, string(hash), role)
}
