package booking

import (
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// Booking is a guest reservation created from an accepted stay quote.
// The priced amounts are frozen at creation; re-quoting produces a new
// booking, never a mutation of an existing one.
type Booking struct {
	ID string `db:"id" json:"id"`

	// ConfirmationCode is the short guest-facing reference ex BK-7GX2QABC
	ConfirmationCode string `db:"confirmation_code" json:"confirmation_code"`

	PropertyID string `db:"property_id" json:"property_id"`
	RatePlanID string `db:"rate_plan_id" json:"rate_plan_id"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id"`

	GuestName  string `db:"guest_name" json:"guest_name"`
	GuestEmail string `db:"guest_email" json:"guest_email"`
	Guests     int    `db:"guests" json:"guests"`

	CheckIn  time.Time `db:"check_in" json:"check_in"`
	CheckOut time.Time `db:"check_out" json:"check_out"`
	Nights   int       `db:"nights" json:"nights"`

	// BookedAt is when the booking was created; the advance-booking lead
	// time is derived from BookedAt and CheckIn
	BookedAt time.Time `db:"booked_at" json:"booked_at"`

	// Priced amounts from the accepted quote
	Subtotal decimal.Decimal `db:"subtotal" json:"subtotal"`
	Taxes    decimal.Decimal `db:"taxes" json:"taxes"`
	Fees     decimal.Decimal `db:"fees" json:"fees"`
	Discount decimal.Decimal `db:"discount" json:"discount"`
	Total    decimal.Decimal `db:"total" json:"total"`
	Currency string          `db:"currency" json:"currency"`

	BookingStatus types.BookingStatus `db:"booking_status" json:"booking_status"`

	types.BaseModel
}

// AdvanceBookingDays returns the lead time between booking creation and
// check-in in whole calendar days
func (b *Booking) AdvanceBookingDays() int {
	return types.DaysUntil(b.BookedAt, b.CheckIn)
}

// CanCancel reports whether the booking may transition to CANCELLED
func (b *Booking) CanCancel() bool {
	switch b.BookingStatus {
	case types.BOOKING_STATUS_PENDING, types.BOOKING_STATUS_CONFIRMED:
		return true
	}
	return false
}

// Validate checks booking invariants
func (b *Booking) Validate() error {
	if err := b.BookingStatus.Validate(); err != nil {
		return err
	}
	if !b.CheckOut.After(b.CheckIn) {
		return ierr.NewError("check-out must be after check-in").
			WithHint("Check-out date must be after the check-in date").
			Mark(ierr.ErrInvalidDateRange)
	}
	if b.Guests <= 0 {
		return ierr.NewError("guest count must be positive").
			WithHint("A booking needs at least one guest").
			Mark(ierr.ErrValidation)
	}
	if b.Total.IsNegative() {
		return ierr.NewError("booking total is negative").
			WithHint("Booking totals must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}
