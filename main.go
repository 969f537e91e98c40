package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"vortsolvo/internal/solver"
	"vortsolvo/internal/wordlist"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := loadConfig()

	root := &cobra.Command{
		Use:     "vortsolvo",
		Short:   "Suggests guesses for five-letter word puzzles",
		Version: version,
	}
	root.PersistentFlags().StringVar(&cfg.WordListPath, "words", cfg.WordListPath, "path to the JSON word list")
	root.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "tie-break seed (0 = random)")

	play := &cobra.Command{
		Use:   "play",
		Short: "Solve a puzzle interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			words, err := loadWords(cfg.WordListPath)
			if err != nil {
				return err
			}
			picker := seededPickers(cfg.Seed)()
			interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
			return playLoop(cmd.InOrStdin(), cmd.OutOrStdout(), solver.NewSession(words, picker), interactive)
		},
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the assistant HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			words, err := loadWords(cfg.WordListPath)
			if err != nil {
				logFatal("Failed to load words: %v", err)
			}
			app := newApp(cfg, words)
			logInfo("Starting vortsolvo in %s mode", map[bool]string{true: "production", false: "development"}[cfg.IsProduction])
			return startServer(cmd.Context(), app)
		},
	}
	serve.Flags().StringVar(&cfg.Port, "port", cfg.Port, "listen port")

	root.AddCommand(play, serve)
	return root
}

// loadConfig reads settings from the environment.
func loadConfig() Config {
	return Config{
		WordListPath:    getEnvString("WORDLIST_PATH", DefaultWordList),
		Port:            getEnvString("PORT", DefaultPort),
		Seed:            uint64(getEnvInt("SEED", 0)),
		SessionTimeout:  getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CleanupInterval: getEnvDuration("CLEANUP_INTERVAL", 10*time.Minute),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
		IsProduction:    os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
	}
}

// loadWords reads and normalizes the word list, logging skipped entries.
func loadWords(path string) ([]string, error) {
	logInfo("Loading words from %s", path)
	words, skipped, err := wordlist.Load(path)
	for _, w := range skipped {
		logWarn("Skipping word %q: not 5 letters", w)
	}
	if err != nil {
		return nil, err
	}
	logInfo("Loaded %d words from dictionary", len(words))
	return words, nil
}

// setupRouter registers the API routes on a new gin engine.
func setupRouter(app *App) *gin.Engine {
	router := gin.Default()
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(requestIDMiddleware(), noStoreMiddleware())
	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteHealthz, app.healthzHandler)
	router.POST(RouteSessions, app.rateLimitMiddleware(), app.newSessionHandler)
	router.GET(RouteSession, app.sessionHandler)
	router.DELETE(RouteSession, app.deleteSessionHandler)
	router.POST(RouteFeedback, app.rateLimitMiddleware(), app.feedbackHandler)
	router.POST(RouteRegenerate, app.rateLimitMiddleware(), app.regenerateHandler)
	return router
}

func startServer(ctx context.Context, app *App) error {
	if app.Config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + app.Config.Port,
		Handler:           setupRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	app.startSessionCleanup(ctx)

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		logInfo("Shutdown signal received, shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", app.Config.Port)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
	return nil
}
