package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anfield5/tg-event-bot/internal/config"
	"github.com/anfield5/tg-event-bot/internal/dispatch"
	"github.com/anfield5/tg-event-bot/internal/engine"
	"github.com/anfield5/tg-event-bot/internal/http-server/handlers/event/createEvent"
	"github.com/anfield5/tg-event-bot/internal/http-server/handlers/event/getAllEvents"
	"github.com/anfield5/tg-event-bot/internal/http-server/handlers/event/getEventInfo"
	"github.com/anfield5/tg-event-bot/internal/http-server/handlers/webhook"
	"github.com/anfield5/tg-event-bot/internal/http-server/middleware/mwlogger"
	"github.com/anfield5/tg-event-bot/internal/lib/logger/handlers/slogpretty"
	"github.com/anfield5/tg-event-bot/internal/lib/logger/sl"
	"github.com/anfield5/tg-event-bot/internal/recon"
	"github.com/anfield5/tg-event-bot/internal/store"
	"github.com/anfield5/tg-event-bot/internal/storage/postgres"
	"github.com/anfield5/tg-event-bot/internal/transport/botapi"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event bot", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	syncer := recon.New(log, storage, cfg.Sync.QueueSize)
	syncer.Start()

	events := store.New(engine.New())
	chat := botapi.New(cfg.Chat)
	shell := dispatch.New(log, events, chat, syncer)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/webhook", webhook.New(log, shell))
	router.Post("/events", createEvent.New(log, shell))
	router.Get("/events/{id}", getEventInfo.New(log, events))
	router.Get("/events", getAllEvents.New(log, events))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	syncer.Stop()
	log.Info("ledger queue drained")

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
