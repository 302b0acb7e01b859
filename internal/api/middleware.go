package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayforge/hotel-booking-backend/internal/auth"
	"github.com/stayforge/hotel-booking-backend/internal/user"
)

// RequireAdmin ensures the authenticated staff user has the admin role. It
// must run after auth.AuthRequired. The role is re-read from the store so a
// demotion takes effect before the token expires.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
