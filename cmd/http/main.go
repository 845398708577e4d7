package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultant-discovery/internal/app/config"
	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/delivery/http/controllers"
	"consultant-discovery/internal/app/delivery/http/middlewares"
	"consultant-discovery/internal/app/delivery/http/routers"
	"consultant-discovery/internal/app/drivers/database"
	"consultant-discovery/internal/app/drivers/logger"
	"consultant-discovery/internal/app/services/core/discovery"
	"consultant-discovery/internal/app/services/shared/backend"
	"consultant-discovery/internal/app/services/shared/coordinatestore"
	"consultant-discovery/internal/app/services/shared/devicelocation"
	"consultant-discovery/internal/app/services/shared/dialogview"
	"consultant-discovery/internal/app/services/shared/geocoder"
	"consultant-discovery/internal/app/services/shared/mapsurface"
	"consultant-discovery/internal/app/services/shared/redis"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"
	"consultant-discovery/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		AccessLogger:   accessLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Location.CoordinateStoreDriver == constvars.CoordinateStoreDriverRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
	}

	err = bootstrapingTheApp(&bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		utils.SecondsToDuration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error during shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Location
	deviceLocator, err := devicelocation.NewDeviceLocator(internalConfig, log)
	if err != nil {
		return err
	}
	placeGeocoder, err := geocoder.NewGeocoder(internalConfig, log)
	if err != nil {
		return err
	}

	var coordinateStore contracts.CoordinateStore
	switch internalConfig.Location.CoordinateStoreDriver {
	case constvars.CoordinateStoreDriverRedis:
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		coordinateStore = coordinatestore.NewRedisCoordinateStore(redisRepository, internalConfig.App.ClientProfileID, log)
	case constvars.CoordinateStoreDriverMemory:
		coordinateStore = coordinatestore.NewMemoryCoordinateStore()
	default:
		return exceptions.ErrUnsupportedProvider(internalConfig.Location.CoordinateStoreDriver)
	}

	// Backend
	searchBackend := backend.NewSearchClient(
		internalConfig.Backend.BaseUrl,
		utils.SecondsToDuration(internalConfig.Backend.SearchTimeoutInSeconds),
		log,
	)
	bookingBackend := backend.NewBookingClient(
		internalConfig.Backend.BaseUrl,
		utils.SecondsToDuration(internalConfig.Backend.BookingTimeoutInSeconds),
		log,
	)

	// Discovery
	app := discovery.Assemble(internalConfig, discovery.Collaborators{
		DeviceLocator:   deviceLocator,
		Geocoder:        placeGeocoder,
		CoordinateStore: coordinateStore,
		SearchBackend:   searchBackend,
		BookingBackend:  bookingBackend,
		MapSurface:      mapsurface.NewMemoryMapSurface(log),
		DialogSurface:   dialogview.NewMemoryDialogSurface(),
	}, log)
	app.Start(context.Background())
	bootstrap.AppStop = app.Shutdown

	// Delivery
	middlewareInstance := &middlewares.Middlewares{
		Log:            log,
		InternalConfig: internalConfig,
	}
	discoveryController := controllers.NewDiscoveryController(log, app)

	routers.SetupRoutes(bootstrap.Router, internalConfig, bootstrap.AccessLogger, middlewareInstance, discoveryController)
	return nil
}
