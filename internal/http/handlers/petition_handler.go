// Petition HTTP handlers.
//
// This file exposes REST endpoints for petition resources:
//   - POST   /petitions               (create, citizen only)
//   - GET    /petitions               (list, role-scoped, paginated, ETag support)
//   - GET    /petitions/{id}          (read, role-scoped)
//   - PUT    /petitions/{id}          (edit, creator + draft only)
//   - DELETE /petitions/{id}          (remove, creator or admin)
//   - POST   /petitions/{id}/submit   (draft → pending)
//   - POST   /petitions/{id}/approve  (admin, → published)
//   - POST   /petitions/{id}/reject   (admin, → rejected)
//   - POST   /petitions/{id}/join     (citizen supporter join)
//   - GET    /justice-index           (public search over published petitions)
//   - GET    /justice-index/{id}      (public detail, published only)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Authorization outcomes surface as
// service sentinel errors and are mapped centrally by failService.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/http/middleware"
	"github.com/justicerollon/go-justice-backend/internal/repo"
	"github.com/justicerollon/go-justice-backend/internal/services"
	"github.com/justicerollon/go-justice-backend/internal/storage"
	"github.com/justicerollon/go-justice-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// AuthService defines the account operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AuthService interface {
	// Register creates an account and returns the user plus a fresh token.
	Register(ctx context.Context, username, email, password, role string) (*domain.User, string, error)
	// Login verifies credentials and returns the user plus a fresh token.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}

// PetitionService defines the petition lifecycle and read operations
// consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PetitionService interface {
	// Create inserts a new draft petition for the actor.
	Create(ctx context.Context, actor *domain.User, in services.CreatePetitionInput) (*domain.Petition, error)
	// ListForViewer returns the petitions visible to the viewer (nil = anonymous).
	ListForViewer(ctx context.Context, viewer *domain.User, page, pageSize int) ([]domain.Petition, int64, error)
	// GetForViewer returns one petition under the collection read policy.
	GetForViewer(ctx context.Context, viewer *domain.User, id string) (*domain.Petition, error)
	// Update edits a draft petition owned by the actor.
	Update(ctx context.Context, actor *domain.User, id string, in services.UpdatePetitionInput) (*domain.Petition, error)
	// Delete removes a petition (creator or admin).
	Delete(ctx context.Context, actor *domain.User, id string) error
	// SubmitForReview moves a draft to pending, or reports a no-op.
	SubmitForReview(ctx context.Context, actor *domain.User, id string) (*services.SubmitResult, error)
	// Approve publishes a petition (admin).
	Approve(ctx context.Context, actor *domain.User, id string) (*domain.Petition, error)
	// Reject marks a petition rejected (admin).
	Reject(ctx context.Context, actor *domain.User, id string) (*domain.Petition, error)
	// Join adds the actor to the supporter set, or reports a no-op.
	Join(ctx context.Context, actor *domain.User, id string) (*services.JoinResult, error)
	// SearchPublished matches published petitions by title or category substring.
	SearchPublished(ctx context.Context, query string) ([]domain.Petition, error)
	// PublicDetail returns a petition iff it is published.
	PublicDetail(ctx context.Context, id string) (*domain.Petition, error)
	// IsSupporter reports whether userID already supports the petition.
	IsSupporter(ctx context.Context, petitionID, userID string) (bool, error)
	// ListPending returns petitions awaiting review (dashboard).
	ListPending(ctx context.Context) ([]domain.Petition, error)
	// ListMine returns the actor's own petitions (dashboard).
	ListMine(ctx context.Context, actor *domain.User, page, pageSize int) ([]domain.Petition, int64, error)
}

// EvidenceService defines evidence metadata operations consumed by HTTP
// handlers. The file bytes themselves are placed by the storage layer
// before Register is called.
type EvidenceService interface {
	// Register persists evidence metadata for a stored upload.
	Register(ctx context.Context, actor *domain.User, in services.RegisterInput) (*domain.Evidence, error)
	// ListMine returns the actor's own uploads.
	ListMine(ctx context.Context, actor *domain.User) ([]domain.Evidence, error)
}

// ConsultationService defines slot and booking operations consumed by HTTP
// handlers.
type ConsultationService interface {
	// CreateSlot publishes an availability window (lawyer).
	CreateSlot(ctx context.Context, actor *domain.User, start time.Time, durationMinutes int) (*domain.ConsultationSlot, error)
	// ListSlots returns the slots relevant to the actor.
	ListSlots(ctx context.Context, actor *domain.User) ([]domain.ConsultationSlot, error)
	// ListMySlots returns the actor's own offered slots (dashboard).
	ListMySlots(ctx context.Context, actor *domain.User) ([]domain.ConsultationSlot, error)
	// Book reserves a slot for the actor (citizen).
	Book(ctx context.Context, actor *domain.User, slotID string) (*domain.ConsultationBooking, error)
}

// DepositionService defines deposition composition operations consumed by
// HTTP handlers.
type DepositionService interface {
	// Create assembles a deposition from ordered evidence references (lawyer).
	Create(ctx context.Context, actor *domain.User, title, content string, refs []services.EvidenceRef) (*domain.Deposition, error)
	// ListMine returns the actor's own depositions.
	ListMine(ctx context.Context, actor *domain.User) ([]domain.Deposition, error)
	// Get returns one owned deposition with its ordered evidence references.
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Deposition, []domain.DepositionEvidence, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for accounts, petitions, evidence,
// consultations, and depositions. It depends on abstract service interfaces
// to keep transport concerns separate from business logic.
type Handlers struct {
	authSvc     AuthService
	petitionSvc PetitionService
	evidenceSvc EvidenceService
	consultSvc  ConsultationService
	depSvc      DepositionService
	store       *storage.Store
}

// New constructs and returns a Handlers instance bound to the given
// services. The store receives uploaded evidence files; it may be nil in
// tests that never exercise the upload path.
func New(auth AuthService, petitions PetitionService, evidence EvidenceService, consult ConsultationService, dep DepositionService, store *storage.Store) *Handlers {
	return &Handlers{
		authSvc:     auth,
		petitionSvc: petitions,
		evidenceSvc: evidence,
		consultSvc:  consult,
		depSvc:      dep,
		store:       store,
	}
}

// currentUser returns the authenticated user attached by upstream
// middleware. Handlers behind RequireAuth can rely on it; a missing user
// there means broken wiring and is answered with 401 by the caller.
func currentUser(c *gin.Context) (*domain.User, bool) {
	return middleware.UserFrom(c)
}

//
// DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// CreatePetitionRequest is the JSON payload for creating a petition.
type CreatePetitionRequest struct {
	// Title is the short headline of the request (required).
	Title string `json:"title" binding:"required" example:"Clean Water for Northside"`
	// Description is the full text of the request (required).
	Description string `json:"description" binding:"required" example:"The northside wells have tested positive for contaminants."`
	// Category defaults to "general" when empty.
	Category string `json:"category" example:"environment"`
	// Visibility is "public" (default) or "private".
	Visibility string `json:"visibility" example:"public"`
	// EvidenceIDs optionally attaches the caller's own evidence records.
	EvidenceIDs []string `json:"evidence_ids,omitempty"`
}

// UpdatePetitionRequest is the JSON payload for editing a draft petition.
// Absent fields are left untouched.
type UpdatePetitionRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Visibility  *string `json:"visibility,omitempty"`
}

// ListPetitionsResponse wraps a page of petitions and pagination
// information.
type ListPetitionsResponse struct {
	Petitions  []domain.Petition `json:"petitions"`
	Pagination Pagination        `json:"pagination"`
}

// MessageResponse is a plain informational payload used by no-op outcomes
// (submitting a non-draft, joining twice).
type MessageResponse struct {
	Message string `json:"message" example:"already supported"`
}

// JoinResponse is returned by a mutating supporter join.
type JoinResponse struct {
	Message    string `json:"message" example:"petition joined"`
	Supporters int64  `json:"supporters" example:"3"`
}

// PublicPetitionResponse is the public detail payload: the petition plus
// whether the (optionally authenticated) caller already supports it.
type PublicPetitionResponse struct {
	Petition         domain.Petition `json:"petition"`
	AlreadySupported bool            `json:"already_supported"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// failService maps service sentinel errors onto the HTTP error envelope.
// Unknown errors become 500s; their message is not echoed to the client.
func failService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrCitizenOnly),
		errors.Is(err, services.ErrAdminOnly),
		errors.Is(err, services.ErrLawyerOnly),
		errors.Is(err, services.ErrNotOwner):
		fail(c, http.StatusForbidden, ErrCodeForbidden, err.Error())
	case errors.Is(err, services.ErrPetitionNotFound),
		errors.Is(err, services.ErrEvidenceNotFound),
		errors.Is(err, services.ErrSlotNotFound),
		errors.Is(err, services.ErrDepositionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrSlotTaken),
		errors.Is(err, services.ErrPetitionNotDraft):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}

//
// Handlers
//

// CreatePetition godoc
// @ID          createPetition
// @Summary     Create a petition
// @Description Creates a draft petition for the current citizen and returns the petition resource.
// @Tags        Petitions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreatePetitionRequest  true  "Create petition payload"
//
// @Success     201  {object}  domain.Petition
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Citizen role required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /petitions [post]
func (h *Handlers) CreatePetition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	var req CreatePetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.petitionSvc.Create(c.Request.Context(), u, services.CreatePetitionInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Visibility:  req.Visibility,
		EvidenceIDs: req.EvidenceIDs,
	})
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// ListPetitions godoc
// @ID          listPetitions
// @Summary     List petitions (paginated)
// @Description Returns the petitions visible to the caller: admins see all, authenticated users see their own, anonymous callers see published public petitions. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Petitions
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListPetitionsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /petitions [get]
func (h *Handlers) ListPetitions(c *gin.Context) {
	ctx := c.Request.Context()
	viewer, _ := currentUser(c)
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort). Admins skip it: their scope is the
	// whole table and every write would invalidate the tag anyway.
	var db *gorm.DB
	if svc, okSvc := h.petitionSvc.(*services.PetitionService); okSvc {
		db = svc.DB
	}
	if db != nil && (viewer == nil || !viewer.Role.SeesAllPetitions()) {
		var (
			count int64
			maxTS *time.Time
			err   error
			scope string
		)
		if viewer != nil {
			scope = "mine:" + viewer.ID
			count, maxTS, err = repo.PetitionsStats(ctx, db, viewer.ID)
		} else {
			scope = "public"
			count, maxTS, err = repo.PublishedPetitionsStats(ctx, db)
		}
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"petitions:%s:%d:%d"`, scope, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	// Fetch page.
	items, total, err := h.petitionSvc.ListForViewer(ctx, viewer, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list petitions")
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := ListPetitionsResponse{
		Petitions: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}

// GetPetition godoc
// @ID          getPetition
// @Summary     Get a petition
// @Description Returns one petition under the same visibility policy as the collection read. Records outside the caller's scope answer 404.
// @Tags        Petitions
// @Produce     json
//
// @Param       id  path  string  true  "Petition ID (UUID)"  format(uuid)
//
// @Success     200  {object} domain.Petition
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Petition not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /petitions/{id} [get]
func (h *Handlers) GetPetition(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "petition id must be a UUID")
		return
	}
	viewer, _ := currentUser(c)
	p, err := h.petitionSvc.GetForViewer(c.Request.Context(), viewer, id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// UpdatePetition godoc
// @ID          updatePetition
// @Summary     Edit a draft petition
// @Description Updates the editable fields of a draft petition owned by the caller. Lifecycle fields cannot be changed through this endpoint.
// @Tags        Petitions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Petition ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdatePetitionRequest  true  "Fields to update"
//
// @Success     200  {object} domain.Petition
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Not the creator"
// @Failure     404  {object} handlers.ErrorResponse "Petition not found"
// @Failure     409  {object} handlers.ErrorResponse "Petition is not a draft"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /petitions/{id} [put]
func (h *Handlers) UpdatePetition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "petition id must be a UUID")
		return
	}
	var req UpdatePetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.petitionSvc.Update(c.Request.Context(), u, id, services.UpdatePetitionInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Visibility:  req.Visibility,
	})
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// DeletePetition godoc
// @ID          deletePetition
// @Summary     Delete a petition
// @Description Removes a petition and its supporter and evidence join rows. Allowed for the creator or an admin.
// @Tags        Petitions
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Petition ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     403  {object} handlers.ErrorResponse "Not the creator"
// @Failure     404  {object} handlers.ErrorResponse "Petition not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /petitions/{id} [delete]
func (h *Handlers) DeletePetition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "petition id must be a UUID")
		return
	}
	if err := h.petitionSvc.Delete(c.Request.Context(), u, id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

// SubmitPetition godoc
// @ID          submitPetition
// @Summary     Submit a petition for review
// @Description Moves a draft petition to pending. Submitting a petition that already left draft is a 200 no-op reporting the current status.
// @Tags        Petitions
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Petition ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.MessageResponse
// @Failure     403  {object} handlers.ErrorResponse "Not the creator or not a citizen"
// @Failure     404  {object} handlers.ErrorResponse "Petition not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /petitions/{id}/submit [post]
func (h *Handlers) SubmitPetition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	res, err := h.petitionSvc.SubmitForReview(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	if res.NoOp {
		ok(c, http.StatusOK, MessageResponse{Message: "petition already " + string(res.Status)})
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "petition submitted for review"})
}

// ApprovePetition godoc
// @ID          approvePetition
// @Summary     Approve a petition
// @Description Publishes a petition. Admin only; the published timestamp is stamped on first publication and never rewritten.
// @Tags        Petitions
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Petition ID (UUID)"  format(uuid)
//
// @Success     200  {object} domain.Petition
// @Failure     403  {object} handlers.ErrorResponse "Admin role required"
// @Failure     404  {object} handlers.ErrorResponse "Petition not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /petitions/{id}/approve [post]
func (h *Handlers) ApprovePetition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	p, err := h.petitionSvc.Approve(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// RejectPetition godoc
// @ID          rejectPetition
// @Summary     Reject a petition
// @Description Marks a petition rejected. Admin only.
// @Tags        Petitions
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Petition ID (UUID)"  format(uuid)
//
// @Success     200  {object} domain.Petition
// @Failure     403  {object} handlers.ErrorResponse "Admin role required"
// @Failure     404  {object} handlers.ErrorResponse "Petition not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /petitions/{id}/reject [post]
func (h *Handlers) RejectPetition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	p, err := h.petitionSvc.Reject(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// JoinPetition godoc
// @ID          joinPetition
// @Summary     Support a petition
// @Description Adds the caller to the supporter set. Joining twice is a 200 no-op with a message only; the mutating branch additionally returns the recomputed supporter count.
// @Tags        Petitions
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Petition ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.JoinResponse
// @Failure     403  {object} handlers.ErrorResponse "Citizen role required"
// @Failure     404  {object} handlers.ErrorResponse "Petition not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /petitions/{id}/join [post]
func (h *Handlers) JoinPetition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	res, err := h.petitionSvc.Join(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	if res.AlreadySupported {
		ok(c, http.StatusOK, MessageResponse{Message: "already supported"})
		return
	}
	ok(c, http.StatusOK, JoinResponse{Message: "petition joined", Supporters: res.Supporters})
}

// JusticeIndex godoc
// @ID          justiceIndex
// @Summary     Search published petitions
// @Description Public index over published petitions, newest first. The optional q parameter matches title or category by case-insensitive substring.
// @Tags        Public
// @Produce     json
//
// @Param       q  query  string  false "Search query"  example(water)
//
// @Success     200  {array}  domain.Petition
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /justice-index [get]
func (h *Handlers) JusticeIndex(c *gin.Context) {
	items, err := h.petitionSvc.SearchPublished(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to search petitions")
		return
	}
	ok(c, http.StatusOK, items)
}

// PublicPetition godoc
// @ID          publicPetition
// @Summary     Public petition detail
// @Description Returns one published petition regardless of visibility. Unpublished petitions answer 404 even for their own creator. When the caller is authenticated the payload reports whether they already support the petition.
// @Tags        Public
// @Produce     json
//
// @Param       id  path  string  true  "Petition ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.PublicPetitionResponse
// @Failure     404  {object} handlers.ErrorResponse "Petition not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /justice-index/{id} [get]
func (h *Handlers) PublicPetition(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.petitionSvc.PublicDetail(ctx, c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	resp := PublicPetitionResponse{Petition: *p}
	if u, okUser := currentUser(c); okUser {
		if supported, err := h.petitionSvc.IsSupporter(ctx, p.ID, u.ID); err == nil {
			resp.AlreadySupported = supported
		}
	}
	ok(c, http.StatusOK, resp)
}

// ensure interface compliance at compile time
var (
	_ AuthService         = (*services.AuthService)(nil)
	_ PetitionService     = (*services.PetitionService)(nil)
	_ EvidenceService     = (*services.EvidenceService)(nil)
	_ ConsultationService = (*services.ConsultationService)(nil)
	_ DepositionService   = (*services.DepositionService)(nil)
)
