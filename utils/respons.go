package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RenderHTML renders a view with the pending flashes and the current identity.
func RenderHTML(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = PopFlashes(c)
	data["current_user"] = CurrentIdentity(c)
	c.HTML(code, name, data)
}

// RedirectWithFlash stores a flash and redirects.
func RedirectWithFlash(c *gin.Context, location, category, message string) {
	AddFlash(c, category, message)
	SaveSession(c)
	c.Redirect(http.StatusFound, location)
}

func RenderNotFound(c *gin.Context) {
	RenderHTML(c, http.StatusNotFound, "404.html", gin.H{"title": "Page not found"})
}
