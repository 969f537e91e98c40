package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"vortsolvo/internal/solver"
)

func testAppWithWords(words []string) *App {
	return newApp(Config{
		Seed:            1,
		SessionTimeout:  2 * time.Hour,
		CleanupInterval: time.Minute,
		RateLimitRPS:    100,
		RateLimitBurst:  100,
	}, words)
}

func dummyContext() context.Context {
	return context.Background()
}

func TestCreateSession(t *testing.T) {
	app := testAppWithWords([]string{"CRANE", "PLANE", "ROBOT"})
	sess := app.createSession(dummyContext())
	if !isValidSessionID(sess.ID) {
		t.Errorf("session ID %q is not a UUID", sess.ID)
	}
	if app.Sessions[sess.ID] != sess {
		t.Error("session not stored in session map")
	}
	if sess.LastGuess.Word != "CRANE" && sess.LastGuess.Word != "PLANE" {
		t.Errorf("first guess = %q, want a five-distinct-letter word", sess.LastGuess.Word)
	}
	if sess.LastAccessTime.IsZero() {
		t.Error("LastAccessTime should be set")
	}
}

func TestSubmitFeedback(t *testing.T) {
	app := testAppWithWords([]string{"CRANE", "PLANE", "SLATE"})
	ctx := dummyContext()
	sess := app.createSession(ctx)

	snap, err := app.submitFeedback(ctx, sess.ID, ".C-R-A!N-E")
	if err != nil {
		t.Fatalf("submitFeedback: %v", err)
	}
	if snap.Round != 1 || snap.LastGuess.Guess != "PLANE" || !snap.LastGuess.Solved {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if snap.Constraints[3] != "exact" || len(snap.Filters) != 2 {
		t.Errorf("constraints %v filters %v", snap.Constraints, snap.Filters)
	}
}

func TestSubmitFeedback_Rejected(t *testing.T) {
	app := testAppWithWords([]string{"CRANE", "PLANE", "SLATE"})
	ctx := dummyContext()
	sess := app.createSession(ctx)
	if _, err := app.submitFeedback(ctx, sess.ID, "-C-R-A!N-E"); err != nil {
		t.Fatalf("submitFeedback: %v", err)
	}

	_, err := app.submitFeedback(ctx, sess.ID, "-C-R-A_N-E")
	if !errors.Is(err, solver.ErrContradictoryConstraint) {
		t.Errorf("expected contradiction, got %v", err)
	}
	_, err = app.submitFeedback(ctx, sess.ID, "?C-R-A!N-E")
	if !errors.Is(err, solver.ErrInvalidFeedback) {
		t.Errorf("expected invalid feedback, got %v", err)
	}
	if sess.Solver.Round() != 1 || len(sess.Solver.Filters()) != 1 {
		t.Errorf("rejected feedback changed the session: round %d", sess.Solver.Round())
	}

	_, err = app.submitFeedback(ctx, "00000000-0000-0000-0000-000000000000", "r")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRegenerate(t *testing.T) {
	app := testAppWithWords([]string{"CRANE", "SLATE", "TRACE"})
	ctx := dummyContext()
	sess := app.createSession(ctx)
	snap, err := app.regenerate(ctx, sess.ID)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if snap.Round != 0 || snap.LastGuess.Count != 3 {
		t.Errorf("regenerate should not add feedback: %+v", snap)
	}
}

func TestDeleteSession(t *testing.T) {
	app := testAppWithWords([]string{"CRANE"})
	sess := app.createSession(dummyContext())
	if !app.deleteSession(sess.ID) {
		t.Error("deleteSession should report an existing session")
	}
	if app.deleteSession(sess.ID) {
		t.Error("deleteSession should report a missing session")
	}
	if _, err := app.getSession(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("getSession after delete = %v", err)
	}
}

func TestSeededPickers_Reproducible(t *testing.T) {
	words := []string{"CRANE", "SLATE", "TRACE", "PLANE", "CRIMP", "PLANT"}
	a, b := seededPickers(42), seededPickers(42)
	for range 5 {
		ga := solver.SelectGuess(words, nil, a())
		gb := solver.SelectGuess(words, nil, b())
		if ga.Word != gb.Word {
			t.Errorf("same seed produced %s and %s", ga.Word, gb.Word)
		}
	}
}

func TestGuessView_EmptyPossibilities(t *testing.T) {
	v := guessView(solver.GuessResult{Word: solver.NoGuess})
	if v.Possibilities == nil {
		t.Error("Possibilities should encode as an empty list")
	}
}
