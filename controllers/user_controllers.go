package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/services"
	"github.com/yeremiapane/notice-board/utils"
)

const (
	msgMissingFields      = "Please fill in all required fields"
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username already exists"
	msgSignupFailed       = "Registration failed. Please try again."
	msgSignupOK           = "Registration successful! Please login."
	msgLoggedOut          = "You have been logged out successfully"
)

type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UserController struct {
	Auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{Auth: auth}
}

// LoginPage shows the login form, or sends a logged-in user to their dashboard.
func (uc *UserController) LoginPage(c *gin.Context) {
	if identity := utils.CurrentIdentity(c); identity != nil {
		c.Redirect(http.StatusFound, identity.DashboardPath())
		return
	}
	utils.RenderHTML(c, http.StatusOK, "login.html", gin.H{"title": "Login"})
}

// Login checks the credentials and starts a session.
func (uc *UserController) Login(c *gin.Context) {
	if identity := utils.CurrentIdentity(c); identity != nil {
		c.Redirect(http.StatusFound, identity.DashboardPath())
		return
	}

	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		utils.AddFlash(c, "danger", msgMissingFields)
		utils.RenderHTML(c, http.StatusBadRequest, "login.html", gin.H{"title": "Login"})
		return
	}

	user, err := uc.Auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		msg := msgInvalidCredentials
		code := http.StatusOK
		if errors.Is(err, services.ErrValidation) {
			msg, code = msgMissingFields, http.StatusBadRequest
		}
		utils.AddFlash(c, "danger", msg)
		utils.RenderHTML(c, code, "login.html", gin.H{"title": "Login", "username": form.Username})
		return
	}

	identity := utils.SetLoginUser(c, user)
	utils.SaveSession(c)
	utils.InfoLogger.Printf("Login successful for user: %s, role: %s", user.Username, user.Role)

	c.Redirect(http.StatusFound, identity.DashboardPath())
}

func (uc *UserController) SignupPage(c *gin.Context) {
	if identity := utils.CurrentIdentity(c); identity != nil {
		c.Redirect(http.StatusFound, identity.DashboardPath())
		return
	}
	utils.RenderHTML(c, http.StatusOK, "signup.html", gin.H{"title": "Sign up"})
}

// Signup registers a new student account.
func (uc *UserController) Signup(c *gin.Context) {
	if identity := utils.CurrentIdentity(c); identity != nil {
		c.Redirect(http.StatusFound, identity.DashboardPath())
		return
	}

	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		utils.AddFlash(c, "danger", msgMissingFields)
		utils.RenderHTML(c, http.StatusBadRequest, "signup.html", gin.H{"title": "Sign up"})
		return
	}

	_, err := uc.Auth.Signup(c.Request.Context(), form.Username, form.Password)
	switch {
	case err == nil:
		utils.RedirectWithFlash(c, "/login", "success", msgSignupOK)
	case errors.Is(err, services.ErrDuplicateUsername):
		utils.AddFlash(c, "danger", msgUsernameTaken)
		utils.RenderHTML(c, http.StatusOK, "signup.html", gin.H{"title": "Sign up"})
	case errors.Is(err, services.ErrValidation):
		utils.AddFlash(c, "danger", msgMissingFields)
		utils.RenderHTML(c, http.StatusBadRequest, "signup.html", gin.H{"title": "Sign up"})
	default:
		utils.AddFlash(c, "danger", msgSignupFailed)
		utils.RenderHTML(c, http.StatusOK, "signup.html", gin.H{"title": "Sign up"})
	}
}

// Logout clears the session unconditionally.
func (uc *UserController) Logout(c *gin.Context) {
	if identity := utils.CurrentIdentity(c); identity != nil {
		utils.InfoLogger.Printf("%s logged out", identity.Username)
	}
	utils.ClearSession(c)
	utils.RedirectWithFlash(c, "/", "info", msgLoggedOut)
}
