// Consultation HTTP handlers.
//
// This file exposes endpoints for lawyer availability and citizen bookings:
//   - POST /slots            (publish a slot, lawyer only)
//   - GET  /slots            (lawyer → own; others → open slots)
//   - POST /slots/{id}/book  (reserve a slot, citizen only)
//
// Booking a slot that is already held answers 409; exclusivity is enforced
// transactionally by the consultation service, not here.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CreateSlotRequest is the JSON payload for publishing an availability
// window.
type CreateSlotRequest struct {
	// StartTime is the slot start in RFC 3339 (required).
	StartTime time.Time `json:"start_time" binding:"required" example:"2026-09-14T10:00:00Z"`
	// DurationMinutes defaults to 30 when absent or non-positive.
	DurationMinutes int `json:"duration_minutes" example:"45"`
}

// CreateSlot godoc
// @ID          createSlot
// @Summary     Publish a consultation slot
// @Description Creates an availability window for the current lawyer.
// @Tags        Consultations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateSlotRequest  true  "Slot payload"
//
// @Success     201  {object}  domain.ConsultationSlot
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Lawyer role required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /slots [post]
func (h *Handlers) CreateSlot(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "start_time is required (RFC 3339)")
		return
	}
	slot, err := h.consultSvc.CreateSlot(c.Request.Context(), u, req.StartTime, req.DurationMinutes)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, slot)
}

// ListSlots godoc
// @ID          listSlots
// @Summary     List consultation slots
// @Description Lawyers see their own offered slots; everyone else sees the open slots available for booking.
// @Tags        Consultations
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   domain.ConsultationSlot
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /slots [get]
func (h *Handlers) ListSlots(c *gin.Context) {
	u, _ := currentUser(c)
	items, err := h.consultSvc.ListSlots(c.Request.Context(), u)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list slots")
		return
	}
	ok(c, http.StatusOK, items)
}

// BookSlot godoc
// @ID          bookSlot
// @Summary     Book a consultation slot
// @Description Reserves an open slot for the current citizen. A slot that is already held answers 409.
// @Tags        Consultations
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Slot ID (UUID)"  format(uuid)
//
// @Success     201  {object}  domain.ConsultationBooking
// @Failure     403  {object}  handlers.ErrorResponse  "Citizen role required"
// @Failure     404  {object}  handlers.ErrorResponse  "Slot not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Slot already booked"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /slots/{id}/book [post]
func (h *Handlers) BookSlot(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	b, err := h.consultSvc.Book(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, b)
}
