// Package services – AuthService
//
// This file implements account registration, login, and bearer token
// validation. Passwords are stored as bcrypt hashes; tokens are HS256 JWTs
// carrying the user id, username, and role, so the HTTP layer can restore
// identity without a DB round trip. Registration logs the new account in by
// returning a token alongside the created user.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/repo"
)

// tokenIssuer names this service in the JWT iss claim.
const tokenIssuer = "justice-backend"

// AuthService implements registration, login, and token validation.
type AuthService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Secret signs and verifies HS256 tokens.
	Secret []byte
	// TokenTTL bounds token lifetime.
	TokenTTL time.Duration
	// BcryptCost tunes password hashing; values below bcrypt.MinCost fall
	// back to bcrypt.DefaultCost.
	BcryptCost int
}

// NewAuthService constructs an AuthService with the given signing secret
// and token lifetime.
func NewAuthService(db *gorm.DB, secret string, ttl time.Duration, bcryptCost int) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{DB: db, Secret: []byte(secret), TokenTTL: ttl, BcryptCost: bcryptCost}
}

// authClaims is the JWT claim set issued at login/registration.
type authClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Identity is the authenticated principal restored from a bearer token.
type Identity struct {
	UserID   string
	Username string
	Role     domain.Role
}

// Register creates an account and returns the user plus a fresh token.
// Username and password are required; the role defaults to citizen for
// unknown values. A taken username yields ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	taken, err := repo.UsernameExists(ctx, s.DB, username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost())
	if err != nil {
		return nil, "", err
	}

	u, err := repo.CreateUser(ctx, s.DB, username, strings.TrimSpace(email), string(hash), domain.ParseRole(role))
	if err != nil {
		return nil, "", err
	}

	tok, err := s.issue(u)
	if err != nil {
		return nil, "", err
	}
	if err := repo.AppendAudit(ctx, s.DB, u.ID, "user.register", map[string]any{"username": u.Username, "role": string(u.Role)}); err != nil {
		log.Warn().Err(err).Msg("audit append failed")
	}
	return u, tok, nil
}

// Login verifies credentials and returns the user plus a fresh token.
// Any failure (unknown username, wrong password) maps to
// ErrInvalidCredentials without distinguishing the cause.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	u, err := repo.GetUserByUsername(ctx, s.DB, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	tok, err := s.issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Validate parses and verifies a bearer token, returning the identity it
// carries. Invalid, expired, or foreign tokens yield ErrInvalidToken.
func (s *AuthService) Validate(token string) (*Identity, error) {
	var claims authClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: claims.Subject, Username: claims.Username, Role: role}, nil
}

// CurrentUser loads the full user row for an authenticated identity. The
// row is the source of truth for the role: a token minted before an admin
// changed the role does not keep the old one alive.
func (s *AuthService) CurrentUser(ctx context.Context, id *Identity) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, id.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// Authenticate validates a bearer token and loads the user it names. This
// is the single entry point used by the HTTP auth middleware.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	id, err := s.Validate(token)
	if err != nil {
		return nil, err
	}
	return s.CurrentUser(ctx, id)
}

func (s *AuthService) issue(u *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
		},
		Username: u.Username,
		Role:     string(u.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

func (s *AuthService) cost() int {
	if s.BcryptCost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	return s.BcryptCost
}
