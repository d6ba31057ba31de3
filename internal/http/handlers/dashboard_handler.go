// Dashboard HTTP handler.
//
// The dashboard is a single authenticated endpoint whose payload branches
// on the caller's role: admins review pending petitions, lawyers see their
// offered slots, citizens see their own petitions and uploads.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justicerollon/go-justice-backend/internal/domain"
)

// DashboardResponse is the role-branched dashboard payload. Only the
// fields relevant to the caller's role are populated.
type DashboardResponse struct {
	Role             string                    `json:"role"`
	PendingPetitions []domain.Petition         `json:"pending_petitions,omitempty"`
	Slots            []domain.ConsultationSlot `json:"slots,omitempty"`
	Petitions        []domain.Petition         `json:"petitions,omitempty"`
	Evidence         []domain.Evidence         `json:"evidence,omitempty"`
}

// Dashboard godoc
// @ID          dashboard
// @Summary     Role dashboard
// @Description Returns the working set for the caller's role: pending petitions for admins, offered slots for lawyers, own petitions and evidence for citizens.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.DashboardResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /dashboard [get]
func (h *Handlers) Dashboard(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	ctx := c.Request.Context()
	resp := DashboardResponse{Role: string(u.Role)}

	switch u.Role {
	case domain.RoleAdmin:
		pending, err := h.petitionSvc.ListPending(ctx)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to load dashboard")
			return
		}
		resp.PendingPetitions = pending
	case domain.RoleLawyer:
		slots, err := h.consultSvc.ListMySlots(ctx, u)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to load dashboard")
			return
		}
		resp.Slots = slots
	default:
		petitions, _, err := h.petitionSvc.ListMine(ctx, u, 1, 50)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to load dashboard")
			return
		}
		evidence, err := h.evidenceSvc.ListMine(ctx, u)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to load dashboard")
			return
		}
		resp.Petitions = petitions
		resp.Evidence = evidence
	}

	ok(c, http.StatusOK, resp)
}
