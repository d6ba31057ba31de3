// Evidence HTTP handlers.
//
// This file exposes endpoints for evidence uploads:
//   - POST /evidence  (multipart upload + metadata)
//   - GET  /evidence  (own uploads)
//
// The file part is optional: metadata-only records are allowed. When a
// file is present it is streamed to the storage layer first; the byte size
// recorded on the evidence row is then derived from the stored file, never
// taken from client input. A failed size derivation leaves the size unset
// without failing the upload.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justicerollon/go-justice-backend/internal/services"
)

// evidenceBucket is the storage subdirectory for uploaded evidence files.
const evidenceBucket = "evidence"

// UploadEvidence godoc
// @ID          uploadEvidence
// @Summary     Upload evidence
// @Description Stores an optional file part plus metadata and returns the evidence record. The size_bytes field is derived from the stored file and may be absent when derivation fails.
// @Tags        Evidence
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
//
// @Param       title      formData  string  true   "Evidence title"
// @Param       file_type  formData  string  false  "One of image, pdf, video, doc, other"
// @Param       case_tag   formData  string  false  "Free-form case grouping tag"
// @Param       file       formData  file    false  "Evidence file"
//
// @Success     201  {object}  domain.Evidence
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /evidence [post]
func (h *Handlers) UploadEvidence(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	in := services.RegisterInput{
		Title:    c.PostForm("title"),
		FileType: c.PostForm("file_type"),
		CaseTag:  c.PostForm("case_tag"),
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		if h.store == nil {
			fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, "file storage unavailable")
			return
		}
		f, err := fh.Open()
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unreadable file part")
			return
		}
		defer f.Close()
		path, err := h.store.Save(evidenceBucket, fh.Filename, f)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, "failed to store file")
			return
		}
		in.FilePath = path
	}

	e, err := h.evidenceSvc.Register(c.Request.Context(), u, in)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, e)
}

// ListEvidence godoc
// @ID          listEvidence
// @Summary     List own evidence
// @Description Returns the caller's uploads, newest first.
// @Tags        Evidence
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {array}   domain.Evidence
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /evidence [get]
func (h *Handlers) ListEvidence(c *gin.Context) {
	u, okUser := currentUser(c)
	if !okUser {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	items, err := h.evidenceSvc.ListMine(c.Request.Context(), u)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list evidence")
		return
	}
	ok(c, http.StatusOK, items)
}
