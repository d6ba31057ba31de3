// Account HTTP handlers.
//
// This file exposes the registration and login endpoints:
//   - POST /auth/register  (create account, returns token)
//   - POST /auth/login     (verify credentials, returns token)
//
// Registration logs the new account in: the response carries a bearer
// token alongside the created user, so clients do not need a second call.
// Login failures are uniform 401s that never reveal whether the username
// exists.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	// Username must be unique (required).
	Username string `json:"username" binding:"required" example:"citizen1"`
	// Email is optional contact information.
	Email string `json:"email" example:"citizen1@example.org"`
	// Password is required; it is stored only as a bcrypt hash.
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
	// Role is one of admin, lawyer, citizen; unknown values default to citizen.
	Role string `json:"role" example:"citizen"`
}

// LoginRequest is the JSON payload for exchanging credentials for a token.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"citizen1"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// AuthResponse carries the account and its fresh bearer token.
type AuthResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

// UserView is the public projection of an account.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func userView(u *domain.User) UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email, Role: string(u.Role)}
}

// Register godoc
// @ID          register
// @Summary     Create an account
// @Description Registers a new account and returns it together with a bearer token. Unknown roles default to citizen.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Username already taken"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}
	u, token, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, AuthResponse{User: userView(u), Token: token})
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Exchanges username and password for a bearer token. Invalid credentials answer 401 without distinguishing the cause.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}
	u, token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, AuthResponse{User: userView(u), Token: token})
}
