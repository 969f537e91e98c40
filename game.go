package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"vortsolvo/internal/solver"
	"vortsolvo/internal/types"
)

var ErrSessionNotFound = errors.New("session not found")

// newApp builds an App over a normalized word list.
func newApp(cfg Config, words []string) *App {
	app := &App{
		Words:      words,
		Sessions:   make(map[string]*AssistSession),
		LimiterMap: make(map[string]*rate.Limiter),
		Config:     cfg,
		StartTime:  time.Now(),
	}
	app.newPicker = seededPickers(cfg.Seed)
	return app
}

// seededPickers returns a picker factory. A zero seed draws fresh randomness
// for each session; any other seed makes session N reproducible.
func seededPickers(seed uint64) func() solver.Picker {
	if seed == 0 {
		return func() solver.Picker { return solver.NewPicker(uint64(time.Now().UnixNano())) }
	}
	var n uint64
	return func() solver.Picker {
		n++
		return solver.NewPicker(seed + n)
	}
}

// createSession starts a new assistant session and computes its first guess.
func (app *App) createSession(ctx context.Context) *AssistSession {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	sess := &AssistSession{
		ID:             uuid.NewString(),
		Solver:         solver.NewSession(app.Words, app.newPicker()),
		LastAccessTime: time.Now(),
	}
	sess.LastGuess = sess.Solver.Guess()
	app.Sessions[sess.ID] = sess
	logInfo(withRequestID(ctx, "New session %s, first guess %s from %d words"), sess.ID, sess.LastGuess.Word, len(app.Words))
	return sess
}

// getSession returns a snapshot of the session and refreshes its access time.
func (app *App) getSession(sessionID string) (types.SessionSnapshot, error) {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	sess, ok := app.Sessions[sessionID]
	if !ok {
		return types.SessionSnapshot{}, ErrSessionNotFound
	}
	sess.LastAccessTime = time.Now()
	return snapshot(sess), nil
}

// deleteSession removes a session. It reports whether the session existed.
func (app *App) deleteSession(sessionID string) bool {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	_, ok := app.Sessions[sessionID]
	delete(app.Sessions, sessionID)
	return ok
}

// submitFeedback commits one round of raw feedback, or regenerates the guess
// when raw is the regenerate token. Rejected feedback leaves the session as
// it was.
func (app *App) submitFeedback(ctx context.Context, sessionID, raw string) (types.SessionSnapshot, error) {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	sess, ok := app.Sessions[sessionID]
	if !ok {
		return types.SessionSnapshot{}, ErrSessionNotFound
	}
	sess.LastAccessTime = time.Now()

	if solver.IsRegenerate(raw) {
		sess.LastGuess = sess.Solver.Regenerate()
		logInfo(withRequestID(ctx, "Session %s regenerated guess: %s"), sessionID, sess.LastGuess.Word)
		return snapshot(sess), nil
	}

	fb, err := solver.ParseFeedback(raw)
	if err != nil {
		logWarn(withRequestID(ctx, "Session %s sent malformed feedback %q: %v"), sessionID, raw, err)
		return snapshot(sess), err
	}
	if err := sess.Solver.Apply(fb); err != nil {
		logWarn(withRequestID(ctx, "Session %s feedback %s rejected: %v"), sessionID, fb, err)
		return snapshot(sess), fmt.Errorf("round %d: %w", sess.Solver.Round()+1, err)
	}

	sess.LastGuess = sess.Solver.Guess()
	logInfo(withRequestID(ctx, "Session %s round %d: %s -> %s (%d candidates)"),
		sessionID, sess.Solver.Round(), fb, sess.LastGuess.Word, sess.LastGuess.Count)
	if sess.LastGuess.Solved {
		logInfo(withRequestID(ctx, "Session %s solved: %s"), sessionID, sess.LastGuess.Word)
	}
	return snapshot(sess), nil
}

// regenerate draws another guess for the session without new feedback.
func (app *App) regenerate(ctx context.Context, sessionID string) (types.SessionSnapshot, error) {
	return app.submitFeedback(ctx, sessionID, solver.RegenerateToken)
}

// snapshot renders a session for the API. Caller holds SessionMutex.
func snapshot(sess *AssistSession) types.SessionSnapshot {
	c := sess.Solver.Constraints()
	return types.SessionSnapshot{
		ID:    sess.ID,
		Round: sess.Solver.Round(),
		Constraints: lo.Map(c[:], func(l solver.Level, _ int) string {
			return l.String()
		}),
		Filters: lo.Map(sess.Solver.Filters(), func(f solver.Filter, _ int) string {
			return f.String()
		}),
		LastGuess:      guessView(sess.LastGuess),
		LastAccessTime: sess.LastAccessTime,
	}
}

func guessView(res solver.GuessResult) types.GuessView {
	return types.GuessView{
		Guess:         res.Word,
		Solved:        res.Solved,
		Count:         res.Count,
		Possibilities: lo.Ternary(res.Possibilities == nil, []string{}, res.Possibilities),
		Remaining:     res.Remaining,
	}
}
