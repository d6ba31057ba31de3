// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides bearer-token authentication and role gating. The
// middleware stays decoupled from the service layer through the
// Authenticator function type: the router wires in the auth service's
// Authenticate method, and handlers read the resolved user back out of the
// Gin context via UserFrom.
//
// Two variants exist because the API mixes protected and public surfaces:
//   - RequireAuth aborts with 401 when no valid token is presented.
//   - OptionalAuth attaches the user when a valid token is present and
//     lets anonymous requests continue, for endpoints whose read policy
//     branches on "anonymous vs authenticated" (petition collection reads).
//
// Role gating (RequireRoles) is a coarse route-level filter; fine-grained
// rules (ownership, state checks) remain in the service layer where they
// belong.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

// ctxKeyUser is the Gin context key under which the authenticated user is
// stored. The plain "userID" key is set alongside it so the rate limiter
// and access loggers pick the identity up without importing this file's
// types.
const ctxKeyUser = "currentUser"

// Authenticator resolves a raw bearer token to a full user row. It should
// return an error for invalid, expired, or orphaned tokens.
type Authenticator func(ctx context.Context, token string) (*domain.User, error)

// UserFrom returns the authenticated user attached by RequireAuth or
// OptionalAuth, or (nil, false) for anonymous requests.
func UserFrom(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}

// bearerToken extracts the token from an "Authorization: Bearer ..."
// header; it returns "" when the header is absent or malformed.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// attach stores the resolved user in the context.
func attach(c *gin.Context, u *domain.User) {
	c.Set(ctxKeyUser, u)
	c.Set("userID", u.ID)
}

// RequireAuth returns a middleware that rejects requests without a valid
// bearer token. On success the user is attached to the context.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			unauthorized(c, "missing bearer token")
			return
		}
		u, err := auth(c.Request.Context(), tok)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}
		attach(c, u)
		c.Next()
	}
}

// OptionalAuth returns a middleware that attaches the user when a valid
// token is presented and lets the request continue anonymously otherwise.
// A malformed or expired token is treated as anonymous, not as an error.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := bearerToken(c); tok != "" {
			if u, err := auth(c.Request.Context(), tok); err == nil {
				attach(c, u)
			}
		}
		c.Next()
	}
}

// RequireRoles returns a middleware that aborts with 403 unless the
// authenticated user's role is in the allowed set. It must run after
// RequireAuth.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		u, ok := UserFrom(c)
		if !ok {
			unauthorized(c, "missing bearer token")
			return
		}
		if _, ok := allowed[u.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "forbidden",
				"message":    "insufficient role",
			})
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    msg,
	})
}
