package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"volumetrico/internal/config"
	"volumetrico/internal/domain"
	"volumetrico/internal/handler"
	"volumetrico/internal/port"
	"volumetrico/internal/router"
	"volumetrico/internal/service"
	s3storage "volumetrico/internal/storage/s3"
	"volumetrico/internal/validator/report"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage (optional)
	var source port.ReportSource
	source, err = s3storage.NewReportSource(ctx, &cfg.Storage, cfg.Validation.MaxReportBytes)
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Printf("Object storage not configured; validate-object is disabled")
		source = nil
	case err != nil:
		return fmt.Errorf("failed to initialize S3 report source: %w", err)
	}

	// Initialize metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics(reg)

	// Initialize services
	validationSvc := service.NewValidationService(report.NewEngine(), source, &cfg.Validation, metrics)

	// Initialize handlers
	validationH := handler.NewValidationHandler(validationSvc, cfg.Server.MaxUploadBytes)
	healthH := handler.NewHealthHandler(source != nil)

	// Setup router
	r := router.Setup(cfg, validationH, healthH, reg)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server (timeout %s)", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
