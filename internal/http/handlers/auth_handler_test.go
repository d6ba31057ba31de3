package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/services"
)

func newAuthHandlers(t *testing.T) (*Handlers, *services.AuthService) {
	t.Helper()
	db := newHandlerDB(t)
	svc := services.NewAuthService(db, "handler-test-secret", time.Hour, bcrypt.MinCost)
	return New(svc, stubPetitionSvc{}, stubEvidenceSvc{}, stubConsultSvc{}, stubDepSvc{}, nil), svc
}

func TestRegister_Success_Duplicate_BadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newAuthHandlers(t)
	r := gin.New()
	r.POST("/auth/register", h.Register)

	// Success -> 201 with user view and token.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"username":"alice","password":"secret1","role":"ruler-of-everything"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("register -> %d body=%s", w.Code, w.Body.String())
	}
	var out AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if out.User.Username != "alice" || out.Token == "" {
		t.Fatalf("auth response: %#v", out)
	}
	// Unknown roles default to citizen.
	if out.User.Role != string(domain.RoleCitizen) {
		t.Fatalf("role = %q", out.User.Role)
	}

	// Same username again -> 409.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"username":"alice","password":"other"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate -> %d", w.Code)
	}

	// Missing password -> 400 with a stable client message.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"username":"bob"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing password -> %d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil || er.Message != "username and password are required" {
		t.Fatalf("message = %q err=%v", er.Message, err)
	}
}

func TestLogin_Success_And_UniformFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, svc := newAuthHandlers(t)
	if _, _, err := svc.Register(context.Background(), "alice", "", "secret1", "citizen"); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"username":"alice","password":"secret1"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login -> %d body=%s", w.Code, w.Body.String())
	}
	var out AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out.Token == "" {
		t.Fatalf("auth response: %#v err=%v", out, err)
	}

	// Wrong password and unknown user answer identically.
	var bodies [2]string
	for i, payload := range []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"nobody","password":"wrong"}`,
	} {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(payload))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("bad login %d -> %d", i, w.Code)
		}
		var er ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
			t.Fatalf("json: %v", err)
		}
		bodies[i] = er.Message
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("login failures differ: %q vs %q", bodies[0], bodies[1])
	}
}
