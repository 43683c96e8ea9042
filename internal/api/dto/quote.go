package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
	"github.com/stayrate/stayrate/internal/validator"
)

// ResolveRateRequest asks for the nightly rate of a single calendar date
type ResolveRateRequest struct {
	Date               string  `json:"date" validate:"required"`
	OccupancyPct       float64 `json:"occupancy_pct" validate:"min=0,max=100"`
	NightsInStay       int     `json:"nights_in_stay" validate:"min=0"`
	AdvanceBookingDays int     `json:"advance_booking_days" validate:"min=0"`
	SkipWeekendPricing bool    `json:"skip_weekend_pricing"`
	SkipAutomation     bool    `json:"skip_automation"`
	Precision          *int32  `json:"precision,omitempty" validate:"omitempty,min=0,max=6"`
}

func (r *ResolveRateRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if _, err := types.ParseCalendarDate(r.Date); err != nil {
		return ierr.WithError(err).
			WithHintf("Date %s is not a valid YYYY-MM-DD calendar date", r.Date).
			Mark(ierr.ErrInvalidDate)
	}
	return nil
}

// ParsedDate returns the request date as a time. Validate must have passed.
func (r *ResolveRateRequest) ParsedDate() time.Time {
	date, _ := types.ParseCalendarDate(r.Date)
	return date
}

// RateCalendarRequest asks for nightly rates over [start, end)
type RateCalendarRequest struct {
	StartDate          string  `json:"start_date" validate:"required"`
	EndDate            string  `json:"end_date" validate:"required"`
	OccupancyPct       float64 `json:"occupancy_pct" validate:"min=0,max=100"`
	NightsInStay       int     `json:"nights_in_stay" validate:"min=0"`
	AdvanceBookingDays int     `json:"advance_booking_days" validate:"min=0"`
	SkipWeekendPricing bool    `json:"skip_weekend_pricing"`
	SkipAutomation     bool    `json:"skip_automation"`
}

func (r *RateCalendarRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	start, err := types.ParseCalendarDate(r.StartDate)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Start date %s is not a valid YYYY-MM-DD calendar date", r.StartDate).
			Mark(ierr.ErrInvalidDate)
	}
	end, err := types.ParseCalendarDate(r.EndDate)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("End date %s is not a valid YYYY-MM-DD calendar date", r.EndDate).
			Mark(ierr.ErrInvalidDate)
	}
	if !end.After(start) {
		return ierr.NewError("end date must be after start date").
			WithHint("The calendar range must cover at least one night").
			Mark(ierr.ErrInvalidDateRange)
	}
	return nil
}

func (r *RateCalendarRequest) ParsedRange() (time.Time, time.Time) {
	start, _ := types.ParseCalendarDate(r.StartDate)
	end, _ := types.ParseCalendarDate(r.EndDate)
	return start, end
}

// QuoteStayRequest asks for a full stay quote
type QuoteStayRequest struct {
	CheckIn            string          `json:"check_in" validate:"required"`
	CheckOut           string          `json:"check_out" validate:"required"`
	OccupancyPct       float64         `json:"occupancy_pct" validate:"min=0,max=100"`
	AdvanceBookingDays int             `json:"advance_booking_days" validate:"min=0"`
	TaxRatePct         decimal.Decimal `json:"tax_rate_pct"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	FeeAmount          decimal.Decimal `json:"fee_amount"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	SkipWeekendPricing bool            `json:"skip_weekend_pricing"`
	SkipAutomation     bool            `json:"skip_automation"`
}

func (r *QuoteStayRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if _, err := types.ParseCalendarDate(r.CheckIn); err != nil {
		return ierr.WithError(err).
			WithHintf("Check-in date %s is not a valid YYYY-MM-DD calendar date", r.CheckIn).
			Mark(ierr.ErrInvalidDate)
	}
	if _, err := types.ParseCalendarDate(r.CheckOut); err != nil {
		return ierr.WithError(err).
			WithHintf("Check-out date %s is not a valid YYYY-MM-DD calendar date", r.CheckOut).
			Mark(ierr.ErrInvalidDate)
	}
	return nil
}

func (r *QuoteStayRequest) ParsedRange() (time.Time, time.Time) {
	checkIn, _ := types.ParseCalendarDate(r.CheckIn)
	checkOut, _ := types.ParseCalendarDate(r.CheckOut)
	return checkIn, checkOut
}

// RateCalendarEntryResponse is the per-night breakdown returned to callers
type RateCalendarEntryResponse struct {
	*rateplan.RateCalendarEntry
	Date        string `json:"date"`
	DisplayRate string `json:"display_rate"`
}

// NewRateCalendarEntryResponse formats a calendar entry for the wire
func NewRateCalendarEntryResponse(entry *rateplan.RateCalendarEntry) RateCalendarEntryResponse {
	return RateCalendarEntryResponse{
		RateCalendarEntry: entry,
		Date:              types.FormatCalendarDate(entry.Date),
		DisplayRate:       entry.GetDisplayRate(),
	}
}

type RateCalendarResponse struct {
	RatePlanID string                      `json:"rate_plan_id"`
	Entries    []RateCalendarEntryResponse `json:"entries"`
}

// QuoteStayResponse is the stay quote returned to callers
type QuoteStayResponse struct {
	RatePlanID string                      `json:"rate_plan_id"`
	CheckIn    string                      `json:"check_in"`
	CheckOut   string                      `json:"check_out"`
	Nights     int                         `json:"nights"`
	Subtotal   decimal.Decimal             `json:"subtotal"`
	Taxes      decimal.Decimal             `json:"taxes"`
	Fees       decimal.Decimal             `json:"fees"`
	Discount   decimal.Decimal             `json:"discount"`
	Total      decimal.Decimal             `json:"total"`
	Currency   string                      `json:"currency"`
	Nightly    []RateCalendarEntryResponse `json:"nightly"`
}
