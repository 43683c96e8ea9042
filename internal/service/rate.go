package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/stayrate/stayrate/internal/api/dto"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
)

// RateService is the HTTP-facing facade over the rate resolver and the
// stay aggregator: it loads the plan snapshot and delegates to the pure
// computation services.
type RateService interface {
	ResolvePlanRate(ctx context.Context, planID string, req dto.ResolveRateRequest) (*dto.RateCalendarEntryResponse, error)
	GetRateCalendar(ctx context.Context, planID string, req dto.RateCalendarRequest) (*dto.RateCalendarResponse, error)
	QuotePlanStay(ctx context.Context, planID string, req dto.QuoteStayRequest) (*dto.QuoteStayResponse, error)
}

type rateService struct {
	ServiceParams
	resolver RateResolverService
	quoter   StayQuoteService
}

// NewRateService creates a new rate service facade
func NewRateService(params ServiceParams, resolver RateResolverService, quoter StayQuoteService) RateService {
	return &rateService{ServiceParams: params, resolver: resolver, quoter: quoter}
}

func (s *rateService) ResolvePlanRate(ctx context.Context, planID string, req dto.ResolveRateRequest) (*dto.RateCalendarEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.RatePlanRepo.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	entry, err := s.resolver.ResolveNightlyRate(ctx, plan, req.ParsedDate(), rateplan.RuleContext{
		OccupancyPct:       req.OccupancyPct,
		NightsInStay:       req.NightsInStay,
		AdvanceBookingDays: req.AdvanceBookingDays,
	}, &ResolveOptions{
		DisableWeekendMultiplier: req.SkipWeekendPricing,
		DisableAutomation:        req.SkipAutomation,
		Precision:                req.Precision,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewRateCalendarEntryResponse(entry)
	return &resp, nil
}

func (s *rateService) GetRateCalendar(ctx context.Context, planID string, req dto.RateCalendarRequest) (*dto.RateCalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.RatePlanRepo.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	start, end := req.ParsedRange()
	entries, err := s.resolver.ResolveCalendar(ctx, plan, start, end, rateplan.RuleContext{
		OccupancyPct:       req.OccupancyPct,
		NightsInStay:       req.NightsInStay,
		AdvanceBookingDays: req.AdvanceBookingDays,
	}, &ResolveOptions{
		DisableWeekendMultiplier: req.SkipWeekendPricing,
		DisableAutomation:        req.SkipAutomation,
	})
	if err != nil {
		return nil, err
	}

	return &dto.RateCalendarResponse{
		RatePlanID: plan.ID,
		Entries: lo.Map(entries, func(e *rateplan.RateCalendarEntry, _ int) dto.RateCalendarEntryResponse {
			return dto.NewRateCalendarEntryResponse(e)
		}),
	}, nil
}

func (s *rateService) QuotePlanStay(ctx context.Context, planID string, req dto.QuoteStayRequest) (*dto.QuoteStayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.RatePlanRepo.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut := req.ParsedRange()
	quote, err := s.quoter.QuoteStay(ctx, plan, checkIn, checkOut, QuoteContext{
		OccupancyPct:       req.OccupancyPct,
		AdvanceBookingDays: req.AdvanceBookingDays,
		TaxRatePct:         req.TaxRatePct,
		TaxAmount:          req.TaxAmount,
		FeeAmount:          req.FeeAmount,
		DiscountAmount:     req.DiscountAmount,
		Resolve: &ResolveOptions{
			DisableWeekendMultiplier: req.SkipWeekendPricing,
			DisableAutomation:        req.SkipAutomation,
		},
	})
	if err != nil {
		return nil, err
	}

	return &dto.QuoteStayResponse{
		RatePlanID: quote.RatePlanID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Nights:     quote.Nights,
		Subtotal:   quote.Subtotal,
		Taxes:      quote.Taxes,
		Fees:       quote.Fees,
		Discount:   quote.Discount,
		Total:      quote.Total,
		Currency:   quote.Currency,
		Nightly: lo.Map(quote.NightlyRates, func(e *rateplan.RateCalendarEntry, _ int) dto.RateCalendarEntryResponse {
			return dto.NewRateCalendarEntryResponse(e)
		}),
	}, nil
}
