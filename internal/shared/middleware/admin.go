package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware checks if user has admin role
func AdminMiddleware() gin.HandlerFunc {
	return requireRole("admin", "Access denied: admin role required")
}

// VendorMiddleware checks if user has vendor or admin role
func VendorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if r, ok := role.(string); ok && (r == "vendor" || r == "admin") {
			c.Next()
			return
		}

		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Access denied: vendor role required",
		})
		c.Abort()
	}
}

func requireRole(required, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   message,
			})
			c.Abort()
			return
		}

		role, ok := roleInterface.(string)
		if !ok || role != required {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   message,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
