package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayrate/stayrate/internal/api/dto"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/logger"
	"github.com/stayrate/stayrate/internal/service"
	"github.com/stayrate/stayrate/internal/types"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

// @Summary Create a booking
// @Description Create a booking against a rate plan, pricing the stay at booking time
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a booking by ID
// @Description Get a booking by ID or by confirmation code
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID or confirmation code"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Booking ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	// Confirmation codes carry the booking prefix and are what guests hold.
	if len(id) > len(types.SHORT_ID_PREFIX_BOOKING) && id[:len(types.SHORT_ID_PREFIX_BOOKING)] == types.SHORT_ID_PREFIX_BOOKING {
		resp, err := h.service.GetBookingByConfirmationCode(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List bookings
// @Description List bookings with optional filtering
// @Tags Bookings
// @Accept json
// @Produce json
// @Param filter query types.BookingFilter false "Filter"
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filter types.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListBookings(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel a booking
// @Description Cancel a booking and release its room back to inventory
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
