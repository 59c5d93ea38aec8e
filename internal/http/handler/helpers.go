package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/edirooss/livectl/internal/redis"
	"github.com/edirooss/livectl/internal/service"
	"github.com/edirooss/livectl/pkg/jsonx"
	"github.com/gin-gonic/gin"
)

// readDocument reads the request body as one JSON value, rejecting empty,
// malformed and trailing input. The value is returned undecoded.
func readDocument(req *http.Request) (jsonx.RawMessage, error) {
	if req == nil || req.Body == nil {
		return nil, jsonx.ErrEmptyBody
	}
	var raw jsonx.RawMessage
	if err := jsonx.ParseStrictJSONBody(req, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// strictParam resolves ?strict=, falling back to def when absent.
func strictParam(c *gin.Context, def bool) (bool, error) {
	s, ok := c.GetQuery("strict")
	if !ok || s == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid strict parameter %q", s)
	}
	return b, nil
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	var de *service.DecodeError
	switch {
	case errors.Is(err, service.ErrUnknownType), errors.Is(err, redis.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.As(err, &de), errors.Is(err, service.ErrBatchTooLarge), errors.Is(err, jsonx.ErrEmptyBody):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return 499 // client closed request
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, status int, err error) {
	c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}
