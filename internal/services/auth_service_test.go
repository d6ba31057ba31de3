package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

func newAuthSvc(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	// MinCost keeps the hashing fast in tests.
	return NewAuthService(db, "unit-test-secret", time.Hour, bcrypt.MinCost)
}

func TestAuth_Register_DefaultsAndDuplicates(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	u, tok, err := svc.Register(ctx, "  alice  ", "alice@test.com", "pw", "bogus-role")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Username != "alice" {
		t.Fatalf("username not trimmed: %q", u.Username)
	}
	if u.Role != domain.RoleCitizen {
		t.Fatalf("unknown role should default to citizen, got %s", u.Role)
	}
	if tok == "" {
		t.Fatalf("registration must log the account in with a token")
	}
	if u.PasswordHash == "pw" || u.PasswordHash == "" {
		t.Fatalf("password stored in the clear or missing")
	}

	// Same username again → conflict.
	if _, _, err := svc.Register(ctx, "alice", "", "pw2", "citizen"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate register err = %v, want ErrUsernameTaken", err)
	}

	// Blank username/password rejected.
	if _, _, err := svc.Register(ctx, " ", "", "pw", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank username err = %v", err)
	}
	if _, _, err := svc.Register(ctx, "bob", "", "", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank password err = %v", err)
	}
}

func TestAuth_Login_UniformFailure(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "carol", "", "right-pass", "lawyer"); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, tok, err := svc.Login(ctx, "carol", "right-pass")
	if err != nil || tok == "" || u.Role != domain.RoleLawyer {
		t.Fatalf("login: u=%+v tok=%q err=%v", u, tok, err)
	}

	// Wrong password and unknown username both answer the same sentinel.
	if _, _, err := svc.Login(ctx, "carol", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v", err)
	}
}

func TestAuth_ValidateAndAuthenticate(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	u, tok, err := svc.Register(ctx, "dave", "", "pw", "citizen")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	id, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if id.UserID != u.ID || id.Username != "dave" || id.Role != domain.RoleCitizen {
		t.Fatalf("identity mismatch: %+v", id)
	}

	// Authenticate resolves the full row.
	got, err := svc.Authenticate(ctx, tok)
	if err != nil || got.ID != u.ID {
		t.Fatalf("authenticate: %+v err=%v", got, err)
	}

	// Garbage token.
	if _, err := svc.Validate("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token err = %v", err)
	}

	// Token signed with a different secret.
	other := NewAuthService(svc.DB, "other-secret", time.Hour, bcrypt.MinCost)
	foreign, err := other.issue(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Validate(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign token err = %v", err)
	}

	// Expired token.
	expired := NewAuthService(svc.DB, "unit-test-secret", time.Hour, bcrypt.MinCost)
	expired.TokenTTL = -time.Minute
	old, err := expired.issue(u)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}
	if _, err := svc.Validate(old); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token err = %v", err)
	}
}

func TestAuth_Authenticate_OrphanedToken(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	u, tok, err := svc.Register(ctx, "erin", "", "pw", "citizen")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	// Remove the account: the token still parses but names nobody.
	if err := svc.DB.Delete(&domain.User{}, "id = ?", u.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := svc.Authenticate(ctx, tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("orphaned token err = %v, want ErrInvalidToken", err)
	}
}

func TestAuth_RoleSourceOfTruthIsTheRow(t *testing.T) {
	svc := newAuthSvc(t)
	ctx := context.Background()

	u, tok, err := svc.Register(ctx, "frank", "", "pw", "citizen")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	// Promote after the token was minted.
	if err := svc.DB.Model(&domain.User{}).Where("id = ?", u.ID).Update("role", domain.RoleAdmin).Error; err != nil {
		t.Fatalf("promote: %v", err)
	}
	got, err := svc.Authenticate(ctx, tok)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.Role != domain.RoleAdmin {
		t.Fatalf("stale role from token claims: %s", got.Role)
	}
}
