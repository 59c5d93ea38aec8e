package handler

import (
	"net/http"

	"github.com/edirooss/livectl/internal/service"
	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LintHandler checks request documents before they are sent upstream.
//
// Supported operations:
//   - POST /api/v1/lint/{name} → Lint one document as type {name}
//   - POST /api/v1/lint        → Lint a batch of typed documents
//
// Both accept ?strict=true|false to report enum values and variants unknown to
// this build. The default comes from configuration.
type LintHandler struct {
	log *zap.Logger
	svc *service.LintService
}

// NewLintHandler constructs a LintHandler instance.
func NewLintHandler(log *zap.Logger, svc *service.LintService) *LintHandler {
	return &LintHandler{
		log: log.Named("lint"),
		svc: svc,
	}
}

// batchRequest is the body of POST /api/v1/lint.
type batchRequest struct {
	Items []service.BatchItem `json:"items"`
}

// batchResponse is the reply of POST /api/v1/lint.
type batchResponse struct {
	Valid   bool                  `json:"valid"`
	Results []*service.LintResult `json:"results"`
}

// Lint handles POST /api/v1/lint/{name}.
//
// Behavior:
//   - Strictly decodes the body as {name}: unknown keys, type mismatches and
//     conflicting variants are rejected.
//   - Validates documented ranges, lengths and required fields.
//
// Status Codes:
//   - 200 OK                   → {"type","valid":true,"hash"}
//   - 400 Bad Request          → body is not a well-formed {name}
//   - 404 Not Found            → unknown type
//   - 422 Unprocessable Entity → {"type","valid":false,"problems":{path: message}}
func (h *LintHandler) Lint(c *gin.Context) {
	strict, err := strictParam(c, h.svc.StrictDefault())
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	payload, err := readDocument(c.Request)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	res, err := h.svc.Lint(c.Request.Context(), c.Param("name"), payload, strict)
	if err != nil {
		abortWithError(c, errorStatus(err), err)
		return
	}

	if !res.Valid {
		c.JSON(http.StatusUnprocessableEntity, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// LintBatch handles POST /api/v1/lint.
//
// Behavior:
//   - Body: {"items":[{"type":"CreateChannelRequest","payload":{...}}, ...]}.
//   - Items are linted concurrently; results keep item order.
//   - Items that fail to decode carry "error" instead of "problems".
//
// Status Codes:
//   - 200 OK          → {"valid", "results":[...]}; valid is false if any item is invalid
//   - 400 Bad Request → malformed envelope or too many items
func (h *LintHandler) LintBatch(c *gin.Context) {
	strict, err := strictParam(c, h.svc.StrictDefault())
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	var req batchRequest
	if err := jsonx.ParseStrictJSONBody(c.Request, &req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	results, err := h.svc.LintBatch(c.Request.Context(), req.Items, strict)
	if err != nil {
		abortWithError(c, errorStatus(err), err)
		return
	}

	resp := batchResponse{Valid: true, Results: results}
	for _, r := range results {
		if !r.Valid {
			resp.Valid = false
			break
		}
	}
	c.JSON(http.StatusOK, resp)
}
