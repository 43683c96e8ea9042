package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/stayrate/stayrate/internal/cache"
	"github.com/stayrate/stayrate/internal/config"
	"github.com/stayrate/stayrate/internal/domain/booking"
	"github.com/stayrate/stayrate/internal/domain/property"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	"github.com/stayrate/stayrate/internal/logger"
	"github.com/stayrate/stayrate/internal/repository/inmemory"
	"github.com/stayrate/stayrate/internal/types"
	"github.com/stayrate/stayrate/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	RatePlanRepo rateplan.Repository
	PropertyRepo property.Repository
	BookingRepo  booking.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.cache = cache.Initialize(cfg, s.logger)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.ClearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		RatePlanRepo: inmemory.NewRatePlanStore(),
		PropertyRepo: inmemory.NewPropertyStore(),
		BookingRepo:  inmemory.NewBookingStore(),
	}
}

// ClearStores resets all in-memory stores
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.RatePlanRepo.(*inmemory.RatePlanStore).Clear()
	s.stores.PropertyRepo.(*inmemory.PropertyStore).Clear()
	s.stores.BookingRepo.(*inmemory.BookingStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns the in-memory stores
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetUUID returns a new UUID
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
