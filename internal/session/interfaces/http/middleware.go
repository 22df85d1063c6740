// Package http provides the Gin middleware that resolves or creates the
// browser session id every cart operation is keyed by.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/olaria/storefront/internal/session/domain"
	"github.com/olaria/storefront/pkg/logger"
)

const sessionIDKey = "session_id"

// Config controls the session cookie and server-side lifetime.
type Config struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Resolve returns middleware implementing resolve-or-create: a request
// carrying a known session cookie keeps its id; anything else gets a fresh
// opaque id, stored server-side and set as a browser-session cookie.
// Store failures are logged and degrade to a request-scoped id rather than
// failing the request.
func Resolve(store domain.Store, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if id, err := c.Cookie(cfg.CookieName); err == nil && id != "" {
			session, err := store.Get(ctx, id)
			if err != nil {
				logger.Warn(ctx, "session lookup failed", "error", err)
			}
			if session != nil {
				c.Set(sessionIDKey, session.ID)
				c.Next()
				return
			}
		}

		session := &domain.Session{ID: uuid.New().String(), CreatedAt: time.Now().UTC()}
		if err := store.Save(ctx, session, cfg.TTL); err != nil {
			logger.Warn(ctx, "session save failed", "error", err)
		}
		// MaxAge 0: cookie lives for the browser session, the server-side
		// record carries the TTL.
		c.SetCookie(cfg.CookieName, session.ID, 0, "/", "", cfg.Secure, true)
		c.Set(sessionIDKey, session.ID)
		c.Next()
	}
}

// SessionID returns the session id resolved for this request, or "" when
// the middleware did not run.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
