package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/edirooss/livectl/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TypesHandler serves the catalog of record types.
//
// Supported operations:
//   - GET /api/v1/types        → List registered types
//   - GET /api/v1/types/{name} → Describe one type
type TypesHandler struct {
	log *zap.Logger
	svc *service.CatalogService
}

// NewTypesHandler constructs a TypesHandler instance.
func NewTypesHandler(log *zap.Logger, svc *service.CatalogService) *TypesHandler {
	return &TypesHandler{
		log: log.Named("types"),
		svc: svc,
	}
}

// List handles GET /api/v1/types.
//
// Behavior:
//   - Returns every registered type sorted by name.
//   - Adds `X-Total-Count` and `X-Catalog-Generated-At` headers.
//
// Status Codes:
//   - 200 OK → JSON array of type summaries
func (h *TypesHandler) List(c *gin.Context) {
	list := h.svc.List()
	c.Header("X-Catalog-Generated-At", h.svc.BuiltAt().Format(time.RFC3339Nano))
	c.Header("X-Total-Count", strconv.Itoa(len(list)))
	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/v1/types/{name}.
//
// Status Codes:
//   - 200 OK        → JSON descriptor (fields, constraints, enum values, variants)
//   - 404 Not Found → unknown type
func (h *TypesHandler) Get(c *gin.Context) {
	d, err := h.svc.Describe(c.Param("name"))
	if err != nil {
		abortWithError(c, errorStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, d)
}
