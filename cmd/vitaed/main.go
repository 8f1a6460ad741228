// Command vitaed serves résumé extraction over HTTP.
//
//	POST /v1/resume   structured work experience and projects
//	POST /v1/text     first-page text
//	GET  /health
//
// Configuration comes from the environment (or a .env file): VITAE_ADDR,
// VITAE_LEXICON, VITAE_LOG_LEVEL, VITAE_LOG_FORMAT, VITAE_MAX_UPLOAD_MB.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tsawler/vitae/config"
)

func main() {
	settings := config.LoadSettings()

	addr := flag.String("addr", settings.Addr, "listen address")
	flag.Parse()

	logger := settings.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	lex, err := settings.Lexicon()
	if err != nil {
		slog.Error("loading lexicon", "path", settings.LexiconPath, "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         *addr,
		Handler:      newRouter(newHandler(lex, settings.MaxUploadMB, logger), logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGTERM/SIGINT.
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", *addr, "max_upload_mb", settings.MaxUploadMB)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

// newRouter wires routes and the middleware chain: recovery -> logging -> router
func newRouter(h *handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/resume", h.handleResume)
		r.Post("/text", h.handleText)
	})

	var handler http.Handler = r
	handler = logMiddleware(logger, handler)
	handler = recoveryMiddleware(logger, handler)
	return handler
}
