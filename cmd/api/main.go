package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sorrisolabs/odonto-backend/internal/adapters/cache"
	"github.com/sorrisolabs/odonto-backend/internal/adapters/database"
	"github.com/sorrisolabs/odonto-backend/internal/api/handlers"
	"github.com/sorrisolabs/odonto-backend/internal/api/middleware"
	"github.com/sorrisolabs/odonto-backend/internal/api/routes"
	"github.com/sorrisolabs/odonto-backend/internal/application/services"
	"github.com/sorrisolabs/odonto-backend/internal/domain/providers"
	"github.com/sorrisolabs/odonto-backend/internal/domain/repositories"
	"github.com/sorrisolabs/odonto-backend/internal/infrastructure/clients/postgres"
	"github.com/sorrisolabs/odonto-backend/internal/infrastructure/clients/redis"
	"github.com/sorrisolabs/odonto-backend/internal/infrastructure/observability"
	"github.com/sorrisolabs/odonto-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("odonto-backend", cfg.Env)

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client. The application works without caching, so a
	// Redis failure only downgrades the schedule-type lookups.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("Redis client initialized")
	}

	// Initialize adapters
	clientAdapter := database.NewClientAdapter(pgClient)
	employeeAdapter := database.NewEmployeeAdapter(pgClient)
	equipmentAdapter := database.NewEquipmentAdapter(pgClient)
	medicineAdapter := database.NewMedicineAdapter(pgClient)
	financialAdapter := database.NewFinancialAdapter(pgClient)
	scheduleAdapter := database.NewScheduleAdapter(pgClient)
	reportAdapter := database.NewReportAdapter(pgClient)

	var scheduleTypeAdapter repositories.ScheduleTypeRepository = database.NewScheduleTypeAdapter(pgClient)
	if cacheProvider != nil {
		scheduleTypeAdapter = database.NewCachedScheduleTypeAdapter(scheduleTypeAdapter, cacheProvider)
	}

	// Initialize services
	authService := services.NewAuthService(employeeAdapter, cfg.Auth.Secret, cfg.Auth.TokenTTL)

	clientService := services.NewClientService(clientAdapter)
	employeeService := services.NewEmployeeService(employeeAdapter, authService)
	equipmentService := services.NewEquipmentService(equipmentAdapter)
	medicineService := services.NewMedicineService(medicineAdapter)
	financialService := services.NewFinancialService(financialAdapter)
	scheduleService := services.NewScheduleService(scheduleAdapter, scheduleTypeAdapter)
	reportService := services.NewReportService(reportAdapter)

	// Initialize handlers
	clientHandler := handlers.NewCrudHandler(clientService)
	equipmentHandler := handlers.NewCrudHandler(equipmentService)
	medicineHandler := handlers.NewCrudHandler(medicineService)
	financialHandler := handlers.NewCrudHandler(financialService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	loginHandler := handlers.NewLoginHandler(authService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(pgClient)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Set up router
	router := routes.NewRouter(
		clientHandler,
		equipmentHandler,
		medicineHandler,
		financialHandler,
		employeeHandler,
		scheduleHandler,
		loginHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
