package utils

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/notice-board/models"
)

const (
	SessionName = "noticeboard"

	sessionUserID   = "user_id"
	sessionUsername = "username"
	sessionRole     = "role"

	identityKey = "identity"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// SetLoginUser records the authenticated user in the session and returns the
// identity for the rest of the request. Call SaveSession afterwards.
func SetLoginUser(c *gin.Context, user *models.User) *models.Identity {
	s := sessions.Default(c)
	s.Set(sessionUserID, user.ID)
	s.Set(sessionUsername, user.Username)
	s.Set(sessionRole, user.Role.String())

	identity := &models.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
	SetIdentity(c, identity)
	return identity
}

// LoginIdentity reads the session and returns nil when no valid login is stored.
func LoginIdentity(c *gin.Context) *models.Identity {
	s := sessions.Default(c)
	userID, ok := s.Get(sessionUserID).(uint)
	if !ok || userID == 0 {
		return nil
	}
	username, _ := s.Get(sessionUsername).(string)
	roleName, _ := s.Get(sessionRole).(string)
	role, err := models.ParseRole(roleName)
	if err != nil {
		return nil
	}
	return &models.Identity{UserID: userID, Username: username, Role: role}
}

func ClearSession(c *gin.Context) {
	sessions.Default(c).Clear()
	c.Set(identityKey, (*models.Identity)(nil))
}

func AddFlash(c *gin.Context, category, message string) {
	sessions.Default(c).AddFlash(Flash{Category: category, Message: message})
}

func SaveSession(c *gin.Context) {
	if err := sessions.Default(c).Save(); err != nil {
		RequestError(c).Warnf("Unable to save session: %v", err)
	}
}

// PopFlashes consumes the pending flashes.
func PopFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	SaveSession(c)
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

func SetIdentity(c *gin.Context, identity *models.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the identity lifted for this request, or nil.
func CurrentIdentity(c *gin.Context) *models.Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, _ := v.(*models.Identity)
	return identity
}
