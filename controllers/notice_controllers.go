package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/services"
	"github.com/yeremiapane/notice-board/utils"
)

const msgNoticeNotFound = "Notice not found"

type NoticeController struct {
	Notices *services.NoticeService
}

func NewNoticeController(notices *services.NoticeService) *NoticeController {
	return &NoticeController{Notices: notices}
}

// StudentDashboard lists every active notice.
func (nc *NoticeController) StudentDashboard(c *gin.Context) {
	notices, err := nc.Notices.ListActive(c.Request.Context(), nc.Notices.Today())
	if err != nil {
		notices = nil
	}
	utils.RenderHTML(c, http.StatusOK, "student_dashboard.html", gin.H{
		"title":   "Student dashboard",
		"notices": notices,
	})
}

// GetNoticeByID shows one notice. Missing notices send the caller back to their dashboard.
func (nc *NoticeController) GetNoticeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("notice_id"), 10, 64)
	if err != nil {
		utils.RenderNotFound(c)
		return
	}

	notice, err := nc.Notices.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		identity := utils.CurrentIdentity(c)
		utils.RedirectWithFlash(c, identity.DashboardPath(), "danger", msgNoticeNotFound)
		return
	}

	utils.RenderHTML(c, http.StatusOK, "view_notice.html", gin.H{
		"title":   notice.Title,
		"notice":  notice,
		"expired": !notice.Active(nc.Notices.Today()),
	})
}
