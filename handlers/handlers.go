package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkpicture/perfect-bites/models"
)

var DB *gorm.DB

// Sessions holds every live session for the process. Carts and drafts
// go away with the process; only the catalog is persisted.
var Sessions = models.NewSessionStore()

// WhatsAppNumber is the shop's WhatsApp contact in international
// format without the plus sign. Overridable from main via env.
var WhatsAppNumber = "250791693947"

const (
	sessionCookieName = "session_id"
	sessionHeaderName = "X-Session-ID"
	sessionContextKey = "session"
)

// SessionMiddleware attaches the caller's session to the context,
// creating one on first contact. The id is taken from the X-Session-ID
// header first (API clients), then the cookie; a fresh id is minted
// and set as a cookie when neither is present.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeaderName)
		if id == "" {
			id, _ = c.Cookie(sessionCookieName)
		}

		hadID := id != ""
		sess := Sessions.GetOrCreate(id)
		if !hadID {
			c.SetCookie(sessionCookieName, sess.ID, 0, "/", "", false, true)
		}
		c.Header(sessionHeaderName, sess.ID)

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// CurrentSession pulls the session the middleware attached. Aborts with
// a 500 if the middleware did not run; that is a wiring bug, not a
// client error.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session not initialized"})
		return nil, false
	}
	return v.(*models.Session), true
}
