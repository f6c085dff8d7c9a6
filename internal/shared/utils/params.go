package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"alumnet/internal/shared/constants"
	"alumnet/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "ticket", "message").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// AuthUserID returns the authenticated user's ID from the Gin context.
func AuthUserID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// AuthUserRole returns the authenticated user's role string from the Gin context.
func AuthUserRole(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserRole)
}
