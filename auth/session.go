package auth

import (
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tutorialhub/models"
)

const (
	// SessionMaxAge is the fixed session lifetime, one day. Expiry is
	// set at creation and not refreshed on activity.
	SessionMaxAge = 86400

	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "username"
)

// NewSessionStore builds the durable session store. Session state lives
// in the relational sessions table, so logins survive process restarts;
// the cookie carries only the opaque token.
func NewSessionStore(db *gorm.DB, secret string) sessions.Store {
	store := gormsessions.NewStore(db, true, []byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
	})
	return store
}

// SignIn binds the session to the user and persists it. The save must
// succeed before the caller responds; a failure here is a server error,
// not a partial login.
func SignIn(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUsername, user.Username)
	return session.Save()
}

// SignOut clears the session, returning the requester to anonymous.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// CurrentUserID reads the authenticated user id from the session.
func CurrentUserID(c *gin.Context) (int, bool) {
	session := sessions.Default(c)
	v := session.Get(sessionKeyUserID)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int)
	if !ok {
		return 0, false
	}
	return id, true
}

// CurrentUsername reads the session's bound username.
func CurrentUsername(c *gin.Context) (string, bool) {
	session := sessions.Default(c)
	v := session.Get(sessionKeyUsername)
	if v == nil {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
