package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/utils"
)

func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Security-Policy", "default-src 'self'; form-action 'self'")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}

// NoStore keeps per-user pages such as dashboards out of shared and browser caches.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentIdentity(c) != nil {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}
