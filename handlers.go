package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vortsolvo/internal/solver"
	"vortsolvo/internal/types"
)

// newSessionHandler starts a session and returns its first guess.
func (app *App) newSessionHandler(c *gin.Context) {
	sess := app.createSession(c.Request.Context())
	app.setSessionCookie(c, sess.ID)

	snap, err := app.getSession(sess.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sessionBody(snap))
}

// sessionHandler returns the current state of a session.
func (app *App) sessionHandler(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}
	snap, err := app.getSession(sessionID)
	if err != nil {
		writeError(c, snap, err)
		return
	}
	c.JSON(http.StatusOK, sessionBody(snap))
}

// feedbackHandler applies one round of feedback and returns the next guess.
func (app *App) feedbackHandler(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}
	var req types.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := app.submitFeedback(c.Request.Context(), sessionID, req.Feedback)
	if err != nil {
		writeError(c, snap, err)
		return
	}
	c.JSON(http.StatusOK, sessionBody(snap))
}

// regenerateHandler draws another guess from the unchanged filters.
func (app *App) regenerateHandler(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}
	snap, err := app.regenerate(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, snap, err)
		return
	}
	c.JSON(http.StatusOK, sessionBody(snap))
}

// deleteSessionHandler ends a session.
func (app *App) deleteSessionHandler(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}
	if !app.deleteSession(sessionID) {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorSessionNotFound})
		return
	}
	if cookie, _ := c.Cookie(SessionCookieName); cookie == sessionID {
		app.clearSessionCookie(c)
	}
	c.Status(http.StatusNoContent)
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	app.SessionMutex.RLock()
	sessions := len(app.Sessions)
	app.SessionMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.Config.IsProduction],
		"words_loaded": len(app.Words),
		"sessions":     sessions,
		"uptime":       formatUptime(time.Since(app.StartTime)),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// sessionParam reads and validates the :id path parameter, writing a 400
// response when it is malformed.
func sessionParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !isValidSessionID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidSession})
		return "", false
	}
	return id, true
}

// writeError maps domain errors to HTTP statuses. Rejected feedback still
// carries the unchanged session so the client can re-prompt.
func writeError(c *gin.Context, snap types.SessionSnapshot, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorSessionNotFound})
	case errors.Is(err, solver.ErrInvalidFeedback):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "session": snap})
	case errors.Is(err, solver.ErrContradictoryConstraint):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "session": snap})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// sessionBody wraps a snapshot, adding a message when no guess remains.
func sessionBody(snap types.SessionSnapshot) gin.H {
	body := gin.H{"session": snap}
	if snap.LastGuess.Count == 0 {
		body["message"] = ErrorNoGuess
	}
	return body
}
