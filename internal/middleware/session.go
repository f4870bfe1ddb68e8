package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FabricioSoica/Front-MindCase/internal/domain"
	"github.com/FabricioSoica/Front-MindCase/internal/session"
)

// SessionKey is the gin context key holding the loaded session.
const SessionKey = "session"

// LoginPath is where unauthenticated navigations are sent.
const LoginPath = "/login"

// RequireSession gates protected pages on the presence of a session token.
// With a token the page renders; without one the navigation is redirected to
// the login page with 303 See Other, so the browser replaces the navigation
// rather than keeping the protected URL in history. The check is purely
// presence-based: an expired-but-present token passes and fails later on the
// backend call.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Load(c.Request)
		if !sess.LoggedIn() {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// LoadSession loads the session without gating, for public pages that adapt
// to the logged-in state.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SessionKey, store.Load(c.Request))
		c.Next()
	}
}

// CurrentSession retrieves the session placed in the context by
// RequireSession or LoadSession.
func CurrentSession(c *gin.Context) domain.Session {
	if value, exists := c.Get(SessionKey); exists {
		if sess, ok := value.(domain.Session); ok {
			return sess
		}
	}
	return domain.Session{}
}
