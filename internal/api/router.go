package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayrate/stayrate/internal/config"
	"github.com/stayrate/stayrate/internal/rest/middleware"
	"github.com/stayrate/stayrate/internal/types"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	v1 "github.com/stayrate/stayrate/internal/api/v1"
)

type Handlers struct {
	RatePlan *v1.RatePlanHandler
	Property *v1.PropertyHandler
	Booking  *v1.BookingHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration) *gin.Engine {
	if cfg.Logging.Level != types.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware(),
		middleware.ErrorHandler(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	plans := router.Group("/plans")
	{
		plans.POST("", handlers.RatePlan.CreateRatePlan)
		plans.GET("", handlers.RatePlan.ListRatePlans)
		plans.GET("/:id", handlers.RatePlan.GetRatePlan)
		plans.PUT("/:id", handlers.RatePlan.UpdateRatePlan)
		plans.DELETE("/:id", handlers.RatePlan.DeleteRatePlan)

		plans.POST("/:id/rules", handlers.RatePlan.AddPricingRule)
		plans.DELETE("/:id/rules/:ruleID", handlers.RatePlan.RemovePricingRule)

		plans.POST("/:id/resolve", handlers.RatePlan.ResolveRate)
		plans.POST("/:id/calendar", handlers.RatePlan.GetRateCalendar)
		plans.POST("/:id/quote", handlers.RatePlan.QuoteStay)
	}

	properties := router.Group("/properties")
	{
		properties.POST("", handlers.Property.CreateProperty)
		properties.GET("", handlers.Property.ListProperties)
		properties.GET("/:id", handlers.Property.GetProperty)
		properties.PUT("/:id", handlers.Property.UpdateProperty)
		properties.DELETE("/:id", handlers.Property.DeleteProperty)
	}

	bookings := router.Group("/bookings")
	{
		bookings.POST("", handlers.Booking.CreateBooking)
		bookings.GET("", handlers.Booking.ListBookings)
		bookings.GET("/:id", handlers.Booking.GetBooking)
		bookings.POST("/:id/cancel", handlers.Booking.CancelBooking)
	}
}
