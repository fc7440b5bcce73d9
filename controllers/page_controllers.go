package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/services"
	"github.com/yeremiapane/notice-board/utils"
)

type PageController struct {
	Notices *services.NoticeService
}

func NewPageController(notices *services.NoticeService) *PageController {
	return &PageController{Notices: notices}
}

// Index shows the most recent active notices.
func (pc *PageController) Index(c *gin.Context) {
	recent, err := pc.Notices.ListActiveRecent(c.Request.Context(), pc.Notices.Today(), services.HomeNoticeLimit)
	if err != nil {
		recent = nil
	}
	utils.RenderHTML(c, http.StatusOK, "index.html", gin.H{
		"title":          "Notice Board",
		"recent_notices": recent,
	})
}

func (pc *PageController) About(c *gin.Context) {
	utils.RenderHTML(c, http.StatusOK, "about.html", gin.H{"title": "About"})
}
