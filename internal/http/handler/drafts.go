package handler

import (
	"net/http"
	"strconv"

	"github.com/edirooss/livectl/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftsHandler provides RESTful HTTP handlers for drafts: linted documents
// parked in Redis until they expire.
//
// Supported operations:
//   - POST   /api/v1/drafts/{name} → Lint and store a document of type {name}
//   - GET    /api/v1/drafts        → List drafts
//   - GET    /api/v1/drafts/{id}   → Retrieve a draft by ID
//   - DELETE /api/v1/drafts/{id}   → Remove a draft
type DraftsHandler struct {
	log  *zap.Logger
	svc  *service.DraftService
	lint *service.LintService
}

// NewDraftsHandler constructs a DraftsHandler instance.
func NewDraftsHandler(log *zap.Logger, svc *service.DraftService, lint *service.LintService) *DraftsHandler {
	return &DraftsHandler{
		log:  log.Named("drafts"),
		svc:  svc,
		lint: lint,
	}
}

// CreateDraft handles POST /api/v1/drafts/{name}.
//
// Behavior:
//   - Lints the body like POST /api/v1/lint/{name}.
//   - Stores valid documents in canonical form and sets `Location`.
//
// Status Codes:
//   - 201 Created              → JSON draft
//   - 400 Bad Request          → body is not a well-formed {name}
//   - 404 Not Found            → unknown type
//   - 422 Unprocessable Entity → lint result with problems; nothing stored
//   - 500 Internal Server Error
func (h *DraftsHandler) CreateDraft(c *gin.Context) {
	strict, err := strictParam(c, h.lint.StrictDefault())
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	payload, err := readDocument(c.Request)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	d, res, err := h.svc.Create(c.Request.Context(), c.Param("name"), payload, strict)
	if err != nil {
		abortWithError(c, errorStatus(err), err)
		return
	}
	if d == nil {
		c.JSON(http.StatusUnprocessableEntity, res)
		return
	}

	c.Header("Location", "/api/v1/drafts/"+d.ID)
	c.JSON(http.StatusCreated, d)
}

// GetDraftList handles GET /api/v1/drafts.
//
// Behavior:
//   - Returns summaries of live drafts, newest first.
//   - Adds `X-Total-Count` header.
//
// Status Codes:
//   - 200 OK → JSON array of draft summaries
//   - 500 Internal Server Error
func (h *DraftsHandler) GetDraftList(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, errorStatus(err), err)
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(len(list)))
	c.JSON(http.StatusOK, list)
}

// GetDraft handles GET /api/v1/drafts/{id}.
//
// Status Codes:
//   - 200 OK        → JSON draft
//   - 404 Not Found → unknown or expired ID
func (h *DraftsHandler) GetDraft(c *gin.Context) {
	d, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, errorStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDraft handles DELETE /api/v1/drafts/{id}.
//
// Status Codes:
//   - 200 OK        → {"id": id}
//   - 404 Not Found
func (h *DraftsHandler) DeleteDraft(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, errorStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
