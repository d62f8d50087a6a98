package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	openaiclient "github.com/s21platform/advice-service/internal/client/openai"
	"github.com/s21platform/advice-service/internal/config"
	api "github.com/s21platform/advice-service/internal/generated"
	"github.com/s21platform/advice-service/internal/infra"
	"github.com/s21platform/advice-service/internal/pkg/tx"
	"github.com/s21platform/advice-service/internal/pkg/validator"
	db "github.com/s21platform/advice-service/internal/repository/postgres"
	"github.com/s21platform/advice-service/internal/rest"
	"github.com/s21platform/advice-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	aiClient := openaiclient.New(cfg)
	vldtr := validator.New()
	adviceService := service.New(dbRepo, aiClient)

	handler := rest.New(dbRepo, adviceService, aiClient, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.MetricsHTTP(next, metrics)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
