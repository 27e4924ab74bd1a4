package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/amarktai/marketing-backend/internal/auth"
	"github.com/amarktai/marketing-backend/internal/config"
	"github.com/amarktai/marketing-backend/internal/handlers"
	"github.com/amarktai/marketing-backend/internal/models"
	"github.com/amarktai/marketing-backend/internal/scheduler"
	"github.com/amarktai/marketing-backend/internal/service"
	"github.com/amarktai/marketing-backend/internal/store"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := zerolog.New(os.Stdout).With().
		Str("service", cfg.AppName).
		Timestamp().
		Logger()

	// Root context for background workers and graceful shutdown
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := store.New()
	if cfg.SeedDemoData {
		st.Seed(time.Now().UTC())
		logger.Info().Msg("demo data seeded")
	}

	svc := service.New(st, service.NewLatency(cfg.LatencyScale))
	sessions := auth.NewSessionProvider(cfg.ClerkPublishableKey)
	logger.Info().Str("mode", string(sessions.Mode())).Msg("auth mode selected")

	h := handlers.New(svc, sessions, logger)

	r := mux.NewRouter()
	h.Routes(r)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Handler:      c.Handler(r),
		Addr:         ":" + strconv.Itoa(cfg.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	// Background: poster worker drives approved -> posted|failed.
	if cfg.PosterEnabled {
		w := scheduler.New(st, time.Duration(cfg.PosterIntervalSeconds)*time.Second, logger)
		w.OnTransition = func(c models.Content) {
			h.EmitContentEvent("content."+string(c.Status), c)
		}
		go w.Start(rootCtx)
	} else {
		logger.Info().Msg("poster worker disabled via AMARKTAI_POSTER_ENABLED")
	}

	// Handle graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info().Msg("shutting down server")
		cancel()
		ctx, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}
	}()

	logger.Info().Int("port", cfg.Port).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("server stopped")
}
