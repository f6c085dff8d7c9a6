package authorization

import (
	"github.com/gin-gonic/gin"

	"alumnet/internal/shared/constants"
)

func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleSuperAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether a user may access a resource
// owned by resourceOwnerID. Super admins can access everything.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsSuperAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
