package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yanqian/runready/internal/domain/preferences"
)

const (
	profileHeader = "X-Profile-ID"
	profileKey    = "profile_id"
)

// profileMiddleware resolves the device profile preferences are stored under.
func profileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := preferences.ProfileKey(c.GetHeader(profileHeader))
		if err != nil {
			abortWithError(c, invalidInput(err.Error(), err))
			return
		}
		c.Set(profileKey, profile)
		c.Next()
	}
}

func profileFrom(c *gin.Context) string {
	if value, ok := c.Get(profileKey); ok {
		if profile, ok := value.(string); ok {
			return profile
		}
	}
	return preferences.DefaultProfile
}
