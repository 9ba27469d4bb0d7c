package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sirsak-service/internal/app/config"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/delivery/http/controllers"
	"sirsak-service/internal/app/delivery/http/middlewares"
	"sirsak-service/internal/app/delivery/http/routers"
	"sirsak-service/internal/app/drivers/database"
	"sirsak-service/internal/app/drivers/logger"
	"sirsak-service/internal/app/drivers/messaging"
	"sirsak-service/internal/app/services/core/availability"
	"sirsak-service/internal/app/services/core/catalog"
	"sirsak-service/internal/app/services/core/dashboard"
	"sirsak-service/internal/app/services/core/feedback"
	"sirsak-service/internal/app/services/core/reservations"
	"sirsak-service/internal/app/services/core/timegrid"
	"sirsak-service/internal/app/services/core/worker"
	"sirsak-service/internal/app/services/shared/eventqueue"
	"sirsak-service/internal/app/services/shared/locker"
	"sirsak-service/internal/app/services/shared/ratelimiter"
	"sirsak-service/internal/app/services/shared/redis"
	"sirsak-service/internal/app/services/sirsak_api"
	feedbackapi "sirsak-service/internal/app/services/sirsak_api/feedback"
	"sirsak-service/internal/app/services/sirsak_api/locations"
	reservationapi "sirsak-service/internal/app/services/sirsak_api/reservations"
	"sirsak-service/internal/app/services/sirsak_api/rooms"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	if internalConfig.SirsakAPI.JWTSecret == "" {
		zapLogger.Fatal("SIRSAK_JWT_SECRET is required to verify bearer tokens")
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig, zapLogger)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, zapLogger)
	}

	err = bootstrapingTheApp(bootstrap, location)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	cfg := bootstrap.InternalConfig

	// Redis backed helpers are optional; without Redis the gate skips the
	// submit lock and limiter and the catalog is fetched on every request.
	var (
		redisRepository contracts.RedisRepository
		lockService     contracts.LockerService
		resourceLimiter *ratelimiter.ResourceLimiter
	)
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		lockService = locker.NewLockService(redisRepository, bootstrap.Logger)
		resourceLimiter = ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	}

	// Remote reservation API
	apiClient := sirsak_api.NewClient(
		cfg.SirsakAPI.BaseUrl,
		cfg.SirsakAPI.RequestTimeout,
		bootstrap.Logger,
		sirsak_api.WithRateLimit(cfg.SirsakAPI.RateLimitPerSecond, cfg.SirsakAPI.RateLimitBurst),
	)
	roomClient := rooms.NewRoomClient(apiClient, bootstrap.Logger)
	locationClient := locations.NewLocationClient(apiClient, bootstrap.Logger)
	reservationClient := reservationapi.NewReservationClient(apiClient, bootstrap.Logger)
	feedbackClient := feedbackapi.NewFeedbackClient(apiClient, bootstrap.Logger)

	// Reservation builder
	grid := timegrid.Default()
	prober := availability.NewProber(roomClient, grid, location, cfg.Probe.Timeout, cfg.Probe.Concurrency, bootstrap.Logger)

	gateOptions := []reservations.GateOption{reservations.WithGrid(grid)}
	if lockService != nil {
		gateOptions = append(gateOptions, reservations.WithSubmitLock(lockService, cfg.Submission.LockTTL))
	}
	if resourceLimiter != nil && cfg.Submission.RateLimit > 0 {
		gateOptions = append(gateOptions, reservations.WithSubmitLimiter(resourceLimiter, cfg.Submission.RateLimit, cfg.Submission.RateWindowInSeconds))
	}
	if bootstrap.RabbitMQ != nil {
		eventQueue, err := eventqueue.NewService(bootstrap.RabbitMQ, cfg.Events.ReservationSubmittedQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
		bootstrap.EventQueueClose = eventQueue.Close
		gateOptions = append(gateOptions, reservations.WithEventPublisher(eventQueue))
	}
	gate := reservations.NewGate(roomClient, reservationClient, location, bootstrap.Logger, gateOptions...)

	registry := reservations.NewRegistry(func() *reservations.Builder {
		return reservations.NewBuilder(prober, gate, grid, bootstrap.Logger)
	}, bootstrap.Logger)

	reservationBuilderUsecase := reservations.NewReservationBuilderUsecase(registry, grid, bootstrap.Logger)
	reservationUsecase := reservations.NewReservationUsecase(reservationClient, bootstrap.Logger)
	catalogUsecase := catalog.NewCatalogUsecase(roomClient, locationClient, redisRepository, cfg.Catalog.CacheTTL, bootstrap.Logger)
	feedbackUsecase := feedback.NewFeedbackUsecase(reservationClient, feedbackClient, bootstrap.Logger)
	adminDashboardUsecase := dashboard.NewAdminDashboardUsecase(roomClient, reservationClient, feedbackClient, bootstrap.Logger)

	// Background jobs
	backgroundWorker := worker.NewWorker(
		bootstrap.Logger,
		lockService,
		worker.CatalogRefreshJob(catalogUsecase, cfg),
		worker.BuilderSweepJob(registry, cfg),
	)
	backgroundWorker.Start(context.Background())
	bootstrap.WorkerStop = backgroundWorker.Stop

	// HTTP
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, cfg)
	reservationBuilderController := controllers.NewReservationBuilderController(bootstrap.Logger, reservationBuilderUsecase)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase)
	reservationController := controllers.NewReservationController(bootstrap.Logger, reservationUsecase)
	feedbackController := controllers.NewFeedbackController(bootstrap.Logger, feedbackUsecase)
	adminDashboardController := controllers.NewAdminDashboardController(bootstrap.Logger, adminDashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares,
		reservationBuilderController,
		catalogController,
		reservationController,
		feedbackController,
		adminDashboardController,
	)
	return nil
}
