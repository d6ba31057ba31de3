// Deposition HTTP handlers.
//
// This file exposes endpoints for lawyer-composed depositions:
//   - POST /depositions       (compose, lawyer only)
//   - GET  /depositions       (own)
//   - GET  /depositions/{id}  (own, evidence ordered by position)
//
// Position is an advisory sort key carried by the reference rows; the API
// neither deduplicates nor renumbers it.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justicerollon/go-justice-backend/internal/domain"
	"github.com/justicerollon/go-justice-backend/internal/services"
)

// DepositionEvidenceRef names one evidence record and its position in the
// composed narrative.
type DepositionEvidenceRef struct {
	EvidenceID string `json:"evidence_id" binding:"required" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Position   int    `json:"position" example:"1"`
}

// CreateDepositionRequest is the JSON payload for composing a deposition.
type CreateDepositionRequest struct {
	// Title is required.
	Title string `json:"title" binding:"required" example:"Northside water contamination"`
	// Content is the narrative body.
	Content string `json:"content" example:"Summary of witness statements and lab results."`
	// Evidence lists the referenced records in narrative order.
	Evidence []DepositionEvidenceRef `json:"evidence,omitempty"`
}

// DepositionDetailResponse is the detail payload: the deposition plus its
// evidence references sorted by position.
type DepositionDetailResponse struct {
	Deposition domain.Deposition       `json:"deposition"`
	Evidence   []DepositionEvidenceRef `json:"evidence"`
}

// CreateDeposition godoc
// @ID          createDeposition
// @Summary     Compose a deposition
// @Description Creates a deposition for the current lawyer from an ordered list of evidence references. Every referenced record must exist.
// @Tags        Depositions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateDepositionRequest  true  "Deposition payload"
//
// @Success     201  {object}  domain.Deposition
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Lawyer role required"
// @Failure     404  {object}  handlers.ErrorResponse  "Referenced evidence not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /depositions [post]
func (h *Handlers) CreateDeposition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	var req CreateDepositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title is required")
		return
	}
	refs := make([]services.EvidenceRef, 0, len(req.Evidence))
	for _, r := range req.Evidence {
		refs = append(refs, services.EvidenceRef{EvidenceID: r.EvidenceID, Position: r.Position})
	}
	d, err := h.depSvc.Create(c.Request.Context(), u, req.Title, req.Content, refs)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, d)
}

// ListDepositions godoc
// @ID          listDepositions
// @Summary     List own depositions
// @Description Returns the caller's depositions, newest first.
// @Tags        Depositions
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   domain.Deposition
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /depositions [get]
func (h *Handlers) ListDepositions(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	items, err := h.depSvc.ListMine(c.Request.Context(), u)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list depositions")
		return
	}
	ok(c, http.StatusOK, items)
}

// GetDeposition godoc
// @ID          getDeposition
// @Summary     Get a deposition
// @Description Returns one of the caller's depositions with its evidence references sorted by position. Other users' depositions answer 404.
// @Tags        Depositions
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Deposition ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.DepositionDetailResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Deposition not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /depositions/{id} [get]
func (h *Handlers) GetDeposition(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	d, rows, err := h.depSvc.Get(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	refs := make([]DepositionEvidenceRef, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, DepositionEvidenceRef{EvidenceID: r.EvidenceID, Position: r.Position})
	}
	ok(c, http.StatusOK, DepositionDetailResponse{Deposition: *d, Evidence: refs})
}
