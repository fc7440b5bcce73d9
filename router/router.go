package router

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/config"
	"github.com/yeremiapane/notice-board/controllers"
	"github.com/yeremiapane/notice-board/database"
	"github.com/yeremiapane/notice-board/middlewares"
	"github.com/yeremiapane/notice-board/models"
	"github.com/yeremiapane/notice-board/services"
	"github.com/yeremiapane/notice-board/utils"
	"github.com/yeremiapane/notice-board/views"
)

const sessionMaxAge = 7 * 24 * 60 * 60

func SetupRouter(cfg *config.Config, exec *database.Executor) (*gin.Engine, error) {
	r := gin.New()

	tpl, err := views.Templates(utils.TemplateFuncs())
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tpl)

	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	// Recovery must sit inside gzip.
	r.Use(middlewares.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(sessions.Sessions(utils.SessionName, store))
	r.Use(middlewares.LoadIdentity())
	r.Use(middlewares.NoStore())

	r.StaticFS("/static", views.Static())

	// Inisialisasi service & controller
	authSvc := services.NewAuthService(exec)
	noticeSvc := services.NewNoticeService(exec)

	userCtrl := controllers.NewUserController(authSvc)
	pageCtrl := controllers.NewPageController(noticeSvc)
	adminCtrl := controllers.NewAdminController(noticeSvc)
	noticeCtrl := controllers.NewNoticeController(noticeSvc)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", pageCtrl.Index)
	r.GET("/about", pageCtrl.About)

	r.GET("/login", userCtrl.LoginPage)
	r.POST("/login", userCtrl.Login)
	r.GET("/signup", userCtrl.SignupPage)
	r.POST("/signup", userCtrl.Signup)
	r.GET("/logout", userCtrl.Logout)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	r.GET("/admin/dashboard",
		middlewares.RequireRole("Please login as admin to access this page", models.RoleAdmin),
		adminCtrl.Dashboard)
	r.POST("/add_notice",
		middlewares.RequireRole("Please login as admin to perform this action", models.RoleAdmin),
		adminCtrl.AddNotice)

	r.GET("/student/dashboard",
		middlewares.RequireRole("Please login as student to access this page", models.RoleStudent),
		noticeCtrl.StudentDashboard)

	r.GET("/notice/:notice_id",
		middlewares.RequireRole("Please login to view this notice", models.RoleAdmin, models.RoleStudent),
		noticeCtrl.GetNoticeByID)

	r.NoRoute(utils.RenderNotFound)

	return r, nil
}
