package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/services"
	"github.com/yeremiapane/notice-board/utils"
)

const (
	msgNoticePublished = "Notice published successfully!"
	msgNoticeFailed    = "Failed to publish notice. Please try again."
	msgInvalidExpiry   = "Invalid expiry date"
)

type noticeForm struct {
	Title      string `form:"title" binding:"required"`
	Content    string `form:"content" binding:"required"`
	Category   string `form:"category"`
	ExpiryDate string `form:"expiry_date"`
}

type AdminController struct {
	Notices *services.NoticeService
}

func NewAdminController(notices *services.NoticeService) *AdminController {
	return &AdminController{Notices: notices}
}

// Dashboard shows the notice count and the latest notices with their authors.
func (ac *AdminController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := ac.Notices.CountAll(ctx)
	if err != nil {
		total = 0
	}
	recent, err := ac.Notices.ListRecent(ctx, services.DashboardNoticeLimit)
	if err != nil {
		recent = nil
	}

	utils.RenderHTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":          "Admin dashboard",
		"total_notices":  total,
		"recent_notices": recent,
	})
}

// AddNotice publishes a notice owned by the current admin.
func (ac *AdminController) AddNotice(c *gin.Context) {
	identity := utils.CurrentIdentity(c)

	var form noticeForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RedirectWithFlash(c, "/admin/dashboard", "danger", msgMissingFields)
		return
	}

	_, err := ac.Notices.Create(c.Request.Context(), services.NoticeInput{
		Title:      form.Title,
		Content:    form.Content,
		Category:   form.Category,
		ExpiryDate: form.ExpiryDate,
		OwnerID:    identity.UserID,
	})
	switch {
	case err == nil:
		utils.RedirectWithFlash(c, "/admin/dashboard", "success", msgNoticePublished)
	case errors.Is(err, services.ErrInvalidExpiryDate):
		utils.RedirectWithFlash(c, "/admin/dashboard", "danger", msgInvalidExpiry)
	case errors.Is(err, services.ErrValidation):
		utils.RedirectWithFlash(c, "/admin/dashboard", "danger", msgMissingFields)
	default:
		utils.RedirectWithFlash(c, "/admin/dashboard", "danger", msgNoticeFailed)
	}
}
