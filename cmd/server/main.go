package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/stayrate/stayrate/internal/api"
	v1 "github.com/stayrate/stayrate/internal/api/v1"
	"github.com/stayrate/stayrate/internal/cache"
	"github.com/stayrate/stayrate/internal/config"
	"github.com/stayrate/stayrate/internal/logger"
	"github.com/stayrate/stayrate/internal/repository"
	"github.com/stayrate/stayrate/internal/service"
	"github.com/stayrate/stayrate/internal/validator"
)

// @title StayRate API
// @version 1.0
// @description Rate resolution and booking API for properties
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,
			cache.Initialize,

			// Repositories
			repository.NewRatePlanRepository,
			repository.NewPropertyRepository,
			repository.NewBookingRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewRateResolverService,
			service.NewStayQuoteService,
			service.NewRateService,
			service.NewRatePlanService,
			service.NewPropertyService,
			service.NewBookingService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	ratePlanService service.RatePlanService,
	rateService service.RateService,
	propertyService service.PropertyService,
	bookingService service.BookingService,
) api.Handlers {
	return api.Handlers{
		RatePlan: v1.NewRatePlanHandler(ratePlanService, rateService, logger),
		Property: v1.NewPropertyHandler(propertyService, logger),
		Booking:  v1.NewBookingHandler(bookingService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration) *gin.Engine {
	return api.NewRouter(handlers, cfg)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
