package controllers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/notice-board/controllers"
	"github.com/yeremiapane/notice-board/database"
	"github.com/yeremiapane/notice-board/middlewares"
	"github.com/yeremiapane/notice-board/models"
	"github.com/yeremiapane/notice-board/services"
	"github.com/yeremiapane/notice-board/utils"
	"github.com/yeremiapane/notice-board/views"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	adminUsername = "root"
	adminPassword = "rootpass"
)

// setupTestExecutor menggunakan SQLite file di TempDir untuk testing
func setupTestExecutor(t *testing.T) *database.Executor {
	utils.InitLogger()
	path := filepath.Join(t.TempDir(), "controllers.db")
	exec := database.NewExecutor(func() gorm.Dialector {
		return sqlite.Open(path + "?_foreign_keys=on")
	})
	require.NoError(t, database.AutoMigrate(context.Background(), exec))
	require.NoError(t, services.NewAuthService(exec).EnsureAdmin(context.Background(), adminUsername, adminPassword))
	return exec
}

// setupRouterForTest registers the controllers without the production middleware stack.
func setupRouterForTest(t *testing.T, exec *database.Executor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tpl, err := views.Templates(utils.TemplateFuncs())
	require.NoError(t, err)
	router.SetHTMLTemplate(tpl)
	router.Use(sessions.Sessions(utils.SessionName, cookie.NewStore([]byte("test-secret"))))
	router.Use(middlewares.LoadIdentity())

	authSvc := services.NewAuthService(exec)
	noticeSvc := services.NewNoticeService(exec)
	userCtrl := controllers.NewUserController(authSvc)
	pageCtrl := controllers.NewPageController(noticeSvc)
	adminCtrl := controllers.NewAdminController(noticeSvc)
	noticeCtrl := controllers.NewNoticeController(noticeSvc)

	router.GET("/", pageCtrl.Index)
	router.GET("/about", pageCtrl.About)
	router.GET("/login", userCtrl.LoginPage)
	router.POST("/login", userCtrl.Login)
	router.GET("/signup", userCtrl.SignupPage)
	router.POST("/signup", userCtrl.Signup)
	router.GET("/logout", userCtrl.Logout)
	router.GET("/admin/dashboard", middlewares.RequireRole("Please login as admin to access this page", models.RoleAdmin), adminCtrl.Dashboard)
	router.POST("/add_notice", middlewares.RequireRole("Please login as admin to perform this action", models.RoleAdmin), adminCtrl.AddNotice)
	router.GET("/student/dashboard", middlewares.RequireRole("Please login as student to access this page", models.RoleStudent), noticeCtrl.StudentDashboard)
	router.GET("/notice/:notice_id", middlewares.RequireRole("Please login to view this notice", models.RoleAdmin, models.RoleStudent), noticeCtrl.GetNoticeByID)
	return router
}

// browser keeps the session cookie between requests.
type browser struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, router *gin.Engine) *browser {
	return &browser{t: t, router: router, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

func (b *browser) login(username, password string) *httptest.ResponseRecorder {
	w := b.post("/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(b.t, http.StatusFound, w.Code, w.Body.String())
	return w
}
