package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireValidDraftID ensures the path param ":id" is a UUID.
func RequireValidDraftID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := uuid.Validate(c.Param("id")); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid draft id"})
			return
		}
		c.Next()
	}
}
