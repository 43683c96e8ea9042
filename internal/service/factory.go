package service

import (
	"github.com/stayrate/stayrate/internal/cache"
	"github.com/stayrate/stayrate/internal/config"
	"github.com/stayrate/stayrate/internal/domain/booking"
	"github.com/stayrate/stayrate/internal/domain/property"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	"github.com/stayrate/stayrate/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	// Repositories
	RatePlanRepo rateplan.Repository
	PropertyRepo property.Repository
	BookingRepo  booking.Repository
}

// NewServiceParams assembles the common service dependencies
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	ratePlanRepo rateplan.Repository,
	propertyRepo property.Repository,
	bookingRepo booking.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		Cache:        cache,
		RatePlanRepo: ratePlanRepo,
		PropertyRepo: propertyRepo,
		BookingRepo:  bookingRepo,
	}
}
