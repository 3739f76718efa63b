package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/renalworks/dialysis-api/internal/config"
	"github.com/renalworks/dialysis-api/internal/email"
	"github.com/renalworks/dialysis-api/internal/repository/postgres"
	"github.com/renalworks/dialysis-api/internal/worker"
	"github.com/renalworks/dialysis-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Console: cfg.Log.Console})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	patientRepo := postgres.NewPatientRepository(db)
	emailSvc := email.NewSMTPService(cfg.SMTP)

	w := worker.NewReminderWorker(patientRepo, emailSvc, cfg.Reminder.Interval, log)

	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Reminder.MetricsPort),
		Handler: promhttp.Handler(),
	}
	go func() {
		log.Info().Int("port", cfg.Reminder.MetricsPort).Msg("serving worker metrics")
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info().Dur("interval", cfg.Reminder.Interval).Msg("starting reminder worker")
		w.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	cancel()
	<-done

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("metrics server shutdown failed")
	}
}
