package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stayrate/stayrate/internal/domain/rateplan"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/testutil"
	"github.com/stayrate/stayrate/internal/types"
)

type StayQuoteServiceSuite struct {
	testutil.BaseServiceTestSuite
	quoter StayQuoteService
}

func TestStayQuoteService(t *testing.T) {
	suite.Run(t, new(StayQuoteServiceSuite))
}

func (s *StayQuoteServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		RatePlanRepo: stores.RatePlanRepo,
		PropertyRepo: stores.PropertyRepo,
		BookingRepo:  stores.BookingRepo,
	}
	s.quoter = NewStayQuoteService(params, NewRateResolverService(params))
}

func (s *StayQuoteServiceSuite) newPlan() *rateplan.RatePlan {
	return &rateplan.RatePlan{
		ID:              "plan_test",
		Name:            "Standard Rate",
		Type:            types.RATE_PLAN_TYPE_STANDARD,
		PlanStatus:      types.RATE_PLAN_STATUS_ACTIVE,
		BaseRate:        decimal.NewFromInt(150),
		Currency:        "usd",
		PricingStrategy: types.PRICING_STRATEGY_FIXED,
	}
}

func (s *StayQuoteServiceSuite) mustDate(value string) time.Time {
	d, err := types.ParseCalendarDate(value)
	s.NoError(err)
	return d
}

func (s *StayQuoteServiceSuite) TestSummerPeakSeasonQuote() {
	// Three nights at 150 + 35% = 202.50 each
	plan := s.newPlan()
	plan.Rules = []rateplan.PricingRule{
		{
			ID:        "rule_summer",
			Name:      "Summer Peak Season",
			RuleType:  types.RULE_TYPE_DATE_RANGE,
			Enabled:   true,
			Priority:  5,
			DateRange: &rateplan.DateRangeCondition{Start: "2025-06-01", End: "2025-08-31"},
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_peak", Kind: types.MODIFIER_KIND_PERCENTAGE, Value: decimal.NewFromInt(35), ApplyToBaseRate: true},
			},
		},
	}

	quote, err := s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-20"), s.mustDate("2025-06-23"), QuoteContext{})
	s.NoError(err)
	s.Equal(3, quote.Nights)
	s.True(decimal.NewFromFloat(607.50).Equal(quote.Subtotal), "got %s", quote.Subtotal)
	s.True(quote.Subtotal.Equal(quote.Total))
	s.Len(quote.NightlyRates, 3)
}

func (s *StayQuoteServiceSuite) TestMinimumStayEligibility() {
	plan := s.newPlan()
	plan.MinimumStay = lo.ToPtr(2)

	_, err := s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-20"), s.mustDate("2025-06-21"), QuoteContext{})
	s.Error(err)
	s.True(ierr.IsEligibility(err))
}

func (s *StayQuoteServiceSuite) TestMaximumStayEligibility() {
	plan := s.newPlan()
	plan.MaximumStay = lo.ToPtr(3)

	_, err := s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-20"), s.mustDate("2025-06-27"), QuoteContext{})
	s.Error(err)
	s.True(ierr.IsEligibility(err))
}

func (s *StayQuoteServiceSuite) TestAdvanceBookingEligibility() {
	plan := s.newPlan()
	plan.AdvanceBookingDays = &rateplan.AdvanceBookingCondition{Min: lo.ToPtr(7)}

	_, err := s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-20"), s.mustDate("2025-06-22"), QuoteContext{AdvanceBookingDays: 2})
	s.Error(err)
	s.True(ierr.IsEligibility(err))

	quote, err := s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-20"), s.mustDate("2025-06-22"), QuoteContext{AdvanceBookingDays: 14})
	s.NoError(err)
	s.Equal(2, quote.Nights)
}

func (s *StayQuoteServiceSuite) TestInvertedDateRange() {
	plan := s.newPlan()

	_, err := s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-23"), s.mustDate("2025-06-20"), QuoteContext{})
	s.Error(err)
	s.True(ierr.IsInvalidDate(err))

	// Same-day check-in and check-out is zero nights
	_, err = s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-20"), s.mustDate("2025-06-20"), QuoteContext{})
	s.Error(err)
	s.True(ierr.IsInvalidDate(err))
}

func (s *StayQuoteServiceSuite) TestTaxesFeesAndDiscount() {
	plan := s.newPlan()
	plan.BaseRate = decimal.NewFromInt(100)

	qctx := QuoteContext{
		TaxRatePct:     decimal.NewFromInt(10),
		TaxAmount:      decimal.NewFromInt(5),
		FeeAmount:      decimal.NewFromInt(20),
		DiscountAmount: decimal.NewFromInt(30),
	}

	// Two weekday nights: subtotal 200, taxes 20 + 5, fees 20, discount 30
	quote, err := s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-23"), s.mustDate("2025-06-25"), qctx)
	s.NoError(err)
	s.True(decimal.NewFromInt(200).Equal(quote.Subtotal))
	s.True(decimal.NewFromInt(25).Equal(quote.Taxes))
	s.True(decimal.NewFromInt(215).Equal(quote.Total), "got %s", quote.Total)
}

func (s *StayQuoteServiceSuite) TestTotalClampedToZero() {
	plan := s.newPlan()
	plan.BaseRate = decimal.NewFromInt(10)

	qctx := QuoteContext{
		DiscountAmount: decimal.NewFromInt(500),
	}

	quote, err := s.quoter.QuoteStay(s.GetContext(), plan, s.mustDate("2025-06-23"), s.mustDate("2025-06-25"), qctx)
	s.NoError(err)
	s.True(quote.Total.IsZero(), "got %s", quote.Total)
}
