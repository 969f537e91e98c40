package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"vortsolvo/internal/solver"
)

// Config holds runtime settings read from the environment and flags.
type Config struct {
	WordListPath    string
	Port            string
	Seed            uint64
	SessionTimeout  time.Duration
	CleanupInterval time.Duration
	RateLimitRPS    int
	RateLimitBurst  int
	IsProduction    bool
}

// App holds the loaded word list and all live assistant sessions.
type App struct {
	Words        []string
	Sessions     map[string]*AssistSession
	SessionMutex sync.RWMutex
	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex
	Config       Config
	StartTime    time.Time

	// newPicker supplies the tie-break source for each new session.
	newPicker func() solver.Picker
}

// AssistSession is one client's assistant state.
type AssistSession struct {
	ID             string
	Solver         *solver.Session
	LastGuess      solver.GuessResult
	LastAccessTime time.Time
}
