package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// StayQuoteService aggregates nightly resolved rates into a stay quote
type StayQuoteService interface {
	QuoteStay(ctx context.Context, plan *rateplan.RatePlan, checkIn, checkOut time.Time, qctx QuoteContext) (*StayQuote, error)
}

// QuoteContext carries the stay attributes and caller-supplied business
// charges for a quote. Taxes, fees and discounts are business parameters
// external to the rate plan itself.
type QuoteContext struct {
	// OccupancyPct is the property occupancy used for rule matching
	OccupancyPct float64

	// AdvanceBookingDays is the lead time between booking creation and
	// check-in, in whole days
	AdvanceBookingDays int

	// TaxRatePct is a percentage applied to the subtotal
	TaxRatePct decimal.Decimal

	// TaxAmount, FeeAmount and DiscountAmount are flat currency amounts
	TaxAmount      decimal.Decimal
	FeeAmount      decimal.Decimal
	DiscountAmount decimal.Decimal

	// Resolve tunes the per-night resolutions
	Resolve *ResolveOptions
}

// StayQuote is the aggregated price of a stay
type StayQuote struct {
	RatePlanID string    `json:"rate_plan_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Nights     int       `json:"nights"`

	Subtotal decimal.Decimal `json:"subtotal"`
	Taxes    decimal.Decimal `json:"taxes"`
	Fees     decimal.Decimal `json:"fees"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`

	// NightlyRates is the per-night breakdown, in date order
	NightlyRates []*rateplan.RateCalendarEntry `json:"nightly_rates"`
}

type stayQuoteService struct {
	ServiceParams
	resolver RateResolverService
}

// NewStayQuoteService creates a new stay quote service
func NewStayQuoteService(params ServiceParams, resolver RateResolverService) StayQuoteService {
	return &stayQuoteService{ServiceParams: params, resolver: resolver}
}

func (s *stayQuoteService) QuoteStay(
	ctx context.Context,
	plan *rateplan.RatePlan,
	checkIn, checkOut time.Time,
	qctx QuoteContext,
) (*StayQuote, error) {
	nights := types.NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, ierr.NewError("check-out must be after check-in").
			WithHint("Check-out date must be after the check-in date").
			WithReportableDetails(map[string]any{
				"check_in":  types.FormatCalendarDate(checkIn),
				"check_out": types.FormatCalendarDate(checkOut),
			}).
			Mark(ierr.ErrInvalidDateRange)
	}

	if err := s.checkEligibility(plan, nights, qctx.AdvanceBookingDays); err != nil {
		return nil, err
	}

	rctx := rateplan.RuleContext{
		OccupancyPct:       qctx.OccupancyPct,
		NightsInStay:       nights,
		AdvanceBookingDays: qctx.AdvanceBookingDays,
	}

	// Check-in date inclusive, check-out date exclusive
	entries, err := s.resolver.ResolveCalendar(ctx, plan, checkIn, checkOut, rctx, qctx.Resolve)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, entry := range entries {
		subtotal = subtotal.Add(entry.FinalRate)
	}

	precision := types.GetCurrencyPrecision(plan.Currency)
	taxes := subtotal.Mul(qctx.TaxRatePct).Div(decimal.NewFromInt(100)).
		Add(qctx.TaxAmount).Round(precision)

	total := subtotal.Add(taxes).Add(qctx.FeeAmount).Sub(qctx.DiscountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return &StayQuote{
		RatePlanID:   plan.ID,
		CheckIn:      types.TruncateToDate(checkIn),
		CheckOut:     types.TruncateToDate(checkOut),
		Nights:       nights,
		Subtotal:     subtotal,
		Taxes:        taxes,
		Fees:         qctx.FeeAmount,
		Discount:     qctx.DiscountAmount,
		Total:        total.Round(precision),
		Currency:     plan.Currency,
		NightlyRates: entries,
	}, nil
}

// checkEligibility enforces the plan's stay-length and lead-time bounds,
// naming the violated constraint in the error details
func (s *stayQuoteService) checkEligibility(plan *rateplan.RatePlan, nights, advanceDays int) error {
	if plan.MinimumStay != nil && nights < *plan.MinimumStay {
		return ierr.NewError("stay below plan minimum").
			WithHintf("This rate plan requires at least %d nights", *plan.MinimumStay).
			WithReportableDetails(map[string]any{
				"constraint":   "minimum_stay",
				"minimum_stay": *plan.MinimumStay,
				"nights":       nights,
			}).
			Mark(ierr.ErrEligibility)
	}
	if plan.MaximumStay != nil && nights > *plan.MaximumStay {
		return ierr.NewError("stay above plan maximum").
			WithHintf("This rate plan allows at most %d nights", *plan.MaximumStay).
			WithReportableDetails(map[string]any{
				"constraint":   "maximum_stay",
				"maximum_stay": *plan.MaximumStay,
				"nights":       nights,
			}).
			Mark(ierr.ErrEligibility)
	}
	if plan.AdvanceBookingDays != nil && !plan.AdvanceBookingDays.Contains(advanceDays) {
		return ierr.NewError("booking lead time outside plan bounds").
			WithHint("This rate plan cannot be booked for the requested lead time").
			WithReportableDetails(map[string]any{
				"constraint":           "advance_booking_days",
				"advance_booking_days": advanceDays,
			}).
			Mark(ierr.ErrEligibility)
	}
	return nil
}
