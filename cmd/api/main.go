package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/renalworks/dialysis-api/internal/config"
	authHandler "github.com/renalworks/dialysis-api/internal/handler/auth"
	dashboardHandler "github.com/renalworks/dialysis-api/internal/handler/dashboard"
	dialysisHandler "github.com/renalworks/dialysis-api/internal/handler/dialysis"
	equipmentHandler "github.com/renalworks/dialysis-api/internal/handler/equipment"
	healthHandler "github.com/renalworks/dialysis-api/internal/handler/health"
	hemoHandler "github.com/renalworks/dialysis-api/internal/handler/hemodialysis"
	managementHandler "github.com/renalworks/dialysis-api/internal/handler/management"
	medicationHandler "github.com/renalworks/dialysis-api/internal/handler/medication"
	noteHandler "github.com/renalworks/dialysis-api/internal/handler/note"
	patientHandler "github.com/renalworks/dialysis-api/internal/handler/patient"
	progressHandler "github.com/renalworks/dialysis-api/internal/handler/progress"
	reportHandler "github.com/renalworks/dialysis-api/internal/handler/report"
	"github.com/renalworks/dialysis-api/internal/middleware"
	"github.com/renalworks/dialysis-api/internal/repository/postgres"
	"github.com/renalworks/dialysis-api/internal/router"
	authService "github.com/renalworks/dialysis-api/internal/service/auth"
	dashboardService "github.com/renalworks/dialysis-api/internal/service/dashboard"
	dialysisService "github.com/renalworks/dialysis-api/internal/service/dialysis"
	equipmentService "github.com/renalworks/dialysis-api/internal/service/equipment"
	hemoService "github.com/renalworks/dialysis-api/internal/service/hemodialysis"
	managementService "github.com/renalworks/dialysis-api/internal/service/management"
	medicationService "github.com/renalworks/dialysis-api/internal/service/medication"
	noteService "github.com/renalworks/dialysis-api/internal/service/note"
	pathologyService "github.com/renalworks/dialysis-api/internal/service/pathology"
	patientService "github.com/renalworks/dialysis-api/internal/service/patient"
	progressService "github.com/renalworks/dialysis-api/internal/service/progress"
	reportService "github.com/renalworks/dialysis-api/internal/service/report"
	"github.com/renalworks/dialysis-api/pkg/auth"
	"github.com/renalworks/dialysis-api/pkg/logger"
	"github.com/renalworks/dialysis-api/pkg/security"
)

const bcryptCost = 10

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

	tokens := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	hasher := security.NewBcryptHasher(bcryptCost)

	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	hemoRepo := postgres.NewHemodialysisRepository(db)
	chartRepo := postgres.NewChartRepository(db)
	pathologyRepo := postgres.NewPathologyRepository(db)
	equipmentRepo := postgres.NewEquipmentRepository(db)
	medicationRepo := postgres.NewMedicationRepository(db)
	managementRepo := postgres.NewManagementRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	progressRepo := postgres.NewProgressRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)

	authSvc := authService.NewService(userRepo, hasher, tokens)
	patientSvc := patientService.NewService(patientRepo)
	pathologySvc := pathologyService.NewService(pathologyRepo)
	hemoSvc := hemoService.NewService(hemoRepo)
	dialysisSvc := dialysisService.NewService(chartRepo)
	equipmentSvc := equipmentService.NewService(equipmentRepo)
	medicationSvc := medicationService.NewService(medicationRepo)
	managementSvc := managementService.NewService(managementRepo)
	reportSvc := reportService.NewService(reportRepo)
	progressSvc := progressService.NewService(progressRepo)
	noteSvc := noteService.NewService(noteRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo, reportRepo)

	authMw := middleware.NewAuthMiddleware(tokens)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}

	apiHandlers := []router.Handler{
		patientHandler.NewHandler(patientSvc, pathologySvc),
		hemoHandler.NewHandler(hemoSvc, patientSvc),
		dialysisHandler.NewHandler(dialysisSvc),
		equipmentHandler.NewHandler(equipmentSvc),
		medicationHandler.NewHandler(medicationSvc),
		managementHandler.NewHandler(managementSvc),
		reportHandler.NewHandler(reportSvc),
		progressHandler.NewHandler(progressSvc),
		noteHandler.NewHandler(noteSvc),
		dashboardHandler.NewHandler(dashboardSvc),
	}

	r := router.New(
		authMw,
		authHandler.NewHandler(authSvc),
		healthHandler.NewHandler(db),
		apiHandlers,
		router.Config{
			RateLimit:  rate.Limit(cfg.Server.RateRPS),
			RateBurst:  cfg.Server.RateBurst,
			CORSConfig: corsConfig,
			Logger:     log,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting api server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
