package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"iq-home/quote_backend/internal/app/config"
	apphttp "iq-home/quote_backend/internal/app/http"
	"iq-home/quote_backend/internal/app/http/handlers"
	"iq-home/quote_backend/internal/app/logger"
	"iq-home/quote_backend/internal/domain/quote/editor"
	pdfgen "iq-home/quote_backend/internal/domain/quote/pdf/gofpdf"
	"iq-home/quote_backend/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()
	logger.Init(logger.Options{Production: cfg.Production(), Level: cfg.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.New(ctx, cfg.DatabaseURL, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConns,
		MinConns:        cfg.DB.MinConns,
		MaxConnIdleTime: cfg.DB.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("db migrate")
		}
	}

	store := postgres.NewStore(db.Pool)
	ed := editor.New(store, cfg.SessionTTL)
	go ed.Run(ctx, time.Minute)

	h := handlers.New(store, ed, pdfgen.New(cfg.PDFFontDir), db)
	router := apphttp.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server")
	}
	log.Info().Msg("stopped")
}
