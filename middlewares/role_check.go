package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/notice-board/models"
	"github.com/yeremiapane/notice-board/utils"
)

// RequireRole lets the request through only for an identity holding one of roles.
// A missing identity and a wrong role get the same flash and redirect to /login.
func RequireRole(message string, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := utils.CurrentIdentity(c)
		if identity == nil || !roleAllowed(identity.Role, roles) {
			fields := logrus.Fields{"path": c.Request.URL.Path}
			if identity != nil {
				fields["user_id"] = identity.UserID
				fields["role"] = identity.Role.String()
			}
			utils.InfoLogger.WithFields(fields).Info("Access denied")
			utils.RedirectWithFlash(c, "/login", "danger", message)
			c.Abort()
			return
		}
		c.Next()
	}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleStudent:
		for _, r := range allowed {
			if r == role {
				return true
			}
		}
		return false
	default:
		return false
	}
}
