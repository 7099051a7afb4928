package middleware

import (
	"net/http"
	"time"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/access"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// LoadEligibility resolves the authenticated user once per request, captures
// "now" once, and stashes user + capabilities in the context. Capturing the
// clock here keeps every downstream gate consistent within the request.
func LoadEligibility() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User not found",
			})
			return
		}

		now := time.Now()
		c.Set("current_user", user)
		c.Set("request_now", now)
		c.Set("capabilities", access.Evaluate(now, user))
		c.Next()
	}
}

// RequireMessaging blocks users whose messaging is locked (no points, no
// active trial). Admins pass through via the policy itself.
func RequireMessaging() gin.HandlerFunc {
	return func(c *gin.Context) {
		caps, ok := CapabilitiesFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Eligibility not loaded",
			})
			return
		}
		if !caps.CanMessage {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Messaging is locked. Purchase points or start your free trial to send messages.",
			})
			return
		}
		c.Next()
	}
}

// CurrentUserFrom pulls the user loaded by LoadEligibility out of the context.
func CurrentUserFrom(c *gin.Context) (users.User, bool) {
	v, exists := c.Get("current_user")
	if !exists {
		return users.User{}, false
	}
	u, ok := v.(users.User)
	return u, ok
}

// CapabilitiesFrom pulls the evaluated capability flags out of the context.
func CapabilitiesFrom(c *gin.Context) (access.Capabilities, bool) {
	v, exists := c.Get("capabilities")
	if !exists {
		return access.Capabilities{}, false
	}
	caps, ok := v.(access.Capabilities)
	return caps, ok
}

// RequestNowFrom returns the instant captured for this request, falling back
// to the wall clock if the guard did not run.
func RequestNowFrom(c *gin.Context) time.Time {
	if v, exists := c.Get("request_now"); exists {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Now()
}
