package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alarino/alarino-backend/internal/adapter/oracle"
	"github.com/alarino/alarino-backend/internal/adapter/postgres"
	dailywordrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/dailyword"
	missingrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/missing"
	proverbrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/proverb"
	translationrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/translation"
	wordrepo "github.com/alarino/alarino-backend/internal/adapter/postgres/word"
	"github.com/alarino/alarino-backend/internal/config"
	"github.com/alarino/alarino-backend/internal/service/bulkupload"
	"github.com/alarino/alarino-backend/internal/service/dailyword"
	"github.com/alarino/alarino-backend/internal/service/proverb"
	"github.com/alarino/alarino-backend/internal/service/translator"
	"github.com/alarino/alarino-backend/internal/transport/middleware"
	"github.com/alarino/alarino-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires
// storage, services and transport, and serves until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	words := wordrepo.New(pool)
	translations := translationrepo.New(pool)
	missing := missingrepo.New(pool)
	daily := dailywordrepo.New(pool)
	proverbs := proverbrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	oracleClient := oracle.New(oracle.Config{
		APIKey:     cfg.Oracle.APIKey,
		BaseURL:    cfg.Oracle.BaseURL,
		Model:      cfg.Oracle.Model,
		MaxRetries: cfg.Oracle.MaxRetries,
	}, logger)
	if oracleClient == nil {
		logger.Info("oracle disabled, no API key configured")
	}

	translatorSvc := translator.NewService(logger, words, missing, oracleClient, cfg.Oracle.Deadline)
	dailySvc := dailyword.NewService(logger, daily, words, translations,
		cfg.DailyWord.MaxAttempts, cfg.DailyWord.AvoidRepeats)
	proverbSvc := proverb.NewService(logger, proverbs)
	uploadSvc := bulkupload.NewService(logger, words, translations, txm)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(cfg, logger, limiter, rest.Handlers{
		Translate: rest.NewTranslateHandler(translatorSvc, logger),
		DailyWord: rest.NewDailyWordHandler(dailySvc, logger),
		Proverb:   rest.NewProverbHandler(proverbSvc, logger),
		Admin:     rest.NewAdminHandler(uploadSvc, translatorSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
