package repository

import (
	"github.com/stayrate/stayrate/internal/domain/booking"
	"github.com/stayrate/stayrate/internal/domain/property"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	"github.com/stayrate/stayrate/internal/logger"
	"github.com/stayrate/stayrate/internal/repository/inmemory"
)

// Repositories are backed by in-process stores. The domain interfaces are
// the seam for a database-backed implementation later.

func NewRatePlanRepository(log *logger.Logger) rateplan.Repository {
	return inmemory.NewRatePlanStore()
}

func NewPropertyRepository(log *logger.Logger) property.Repository {
	return inmemory.NewPropertyStore()
}

func NewBookingRepository(log *logger.Logger) booking.Repository {
	return inmemory.NewBookingStore()
}
