package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHealthz    = "/healthz"
	RouteSessions   = "/api/sessions"
	RouteSession    = "/api/sessions/:id"
	RouteFeedback   = "/api/sessions/:id/feedback"
	RouteRegenerate = "/api/sessions/:id/regenerate"
)

// Defaults used when neither flags nor environment provide a value
const (
	DefaultWordList = "data/words.json"
	DefaultPort     = "8080"
)

// Error message constants
const (
	ErrorSessionNotFound = "Session not found."
	ErrorInvalidSession  = "Invalid session ID."
	ErrorNoGuess         = "No valid guesses remain. Check earlier feedback or the word list."
	ErrorTooManyRequests = "Too many requests. Please slow down."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
