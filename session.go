package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// isValidSessionID reports whether id is a well-formed UUID.
func isValidSessionID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// setSessionCookie remembers the session ID in the client's cookie jar.
func (app *App) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, sessionID, int(app.Config.SessionTimeout.Seconds()), "/", "", app.Config.IsProduction, true)
}

// clearSessionCookie expires the session cookie.
func (app *App) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", app.Config.IsProduction, true)
}

// cleanupExpiredSessions drops sessions idle for longer than SessionTimeout
// and returns how many were removed.
func (app *App) cleanupExpiredSessions(now time.Time) int {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	removed := 0
	for id, sess := range app.Sessions {
		if sess.LastAccessTime.IsZero() || now.Sub(sess.LastAccessTime) > app.Config.SessionTimeout {
			delete(app.Sessions, id)
			removed++
		}
	}
	return removed
}

// startSessionCleanup runs cleanupExpiredSessions every CleanupInterval until
// ctx is cancelled.
func (app *App) startSessionCleanup(ctx context.Context) {
	ticker := time.NewTicker(app.Config.CleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := app.cleanupExpiredSessions(now); n > 0 {
					logInfo("Session cleanup removed %d expired session%s", n, plural(n))
				}
			}
		}
	}()
}
