package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/utils"
)

// Recovery logs a panic and renders the 500 page.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		utils.RequestError(c).Errorf("Panic while serving request: %v", err)
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"title": "Server error"})
		c.Abort()
	})
}
