package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/utils"
)

// LoadIdentity lifts the logged-in user from the session into the request context.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.SetIdentity(c, utils.LoginIdentity(c))
		c.Next()
	}
}
