package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tutorialhub/store"
)

// RequireAuth admits only requests carrying a valid, unexpired session.
// Programmatic surfaces get a 401; interactive surfaces are redirected
// to the login page. On success the user id is attached to the request
// context for downstream handlers.
func RequireAuth(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized. Please login.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	if username, ok := CurrentUsername(c); ok {
		c.Set("username", username)
	}
	c.Next()
}

// RequireGuest sends already-authenticated sessions away from the
// login/registration entry points.
func RequireGuest(c *gin.Context) {
	if _, ok := CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/tutorials")
		c.Abort()
		return
	}
	c.Next()
}

// AttachUser resolves the current user for views. A failed lookup
// degrades to anonymous rather than blocking the request.
func AttachUser(users *store.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := CurrentUserID(c); ok {
			if user, err := users.FindByID(userID); err == nil {
				c.Set("current_user", user)
			}
		}
		c.Next()
	}
}
