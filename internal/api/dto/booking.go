package dto

import (
	"github.com/shopspring/decimal"
	"github.com/stayrate/stayrate/internal/domain/booking"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
	"github.com/stayrate/stayrate/internal/validator"
)

type CreateBookingRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	RatePlanID string `json:"rate_plan_id" validate:"required"`
	RoomTypeID string `json:"room_type_id"`
	GuestName  string `json:"guest_name" validate:"required"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	Guests     int    `json:"guests" validate:"required,min=1"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out" validate:"required"`

	// Caller-supplied business charges applied on top of the resolved
	// nightly rates
	TaxRatePct     decimal.Decimal `json:"tax_rate_pct"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	FeeAmount      decimal.Decimal `json:"fee_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

func (r *CreateBookingRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	checkIn, err := types.ParseCalendarDate(r.CheckIn)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Check-in date %s is not a valid YYYY-MM-DD calendar date", r.CheckIn).
			Mark(ierr.ErrInvalidDate)
	}
	checkOut, err := types.ParseCalendarDate(r.CheckOut)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Check-out date %s is not a valid YYYY-MM-DD calendar date", r.CheckOut).
			Mark(ierr.ErrInvalidDate)
	}
	if !checkOut.After(checkIn) {
		return ierr.NewError("check-out must be after check-in").
			WithHint("Check-out date must be after the check-in date").
			Mark(ierr.ErrInvalidDateRange)
	}
	return nil
}

type BookingResponse struct {
	*booking.Booking
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

// NewBookingResponse formats a booking for the wire
func NewBookingResponse(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		Booking:      b,
		CheckInDate:  types.FormatCalendarDate(b.CheckIn),
		CheckOutDate: types.FormatCalendarDate(b.CheckOut),
	}
}

type ListBookingsResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
	Offset   int                `json:"offset"`
	Limit    int                `json:"limit"`
}
