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

type RateResolverServiceSuite struct {
	testutil.BaseServiceTestSuite
	resolver RateResolverService
}

func TestRateResolverService(t *testing.T) {
	suite.Run(t, new(RateResolverServiceSuite))
}

func (s *RateResolverServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.resolver = NewRateResolverService(s.params())
}

func (s *RateResolverServiceSuite) params() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Cache:        s.GetCache(),
		RatePlanRepo: stores.RatePlanRepo,
		PropertyRepo: stores.PropertyRepo,
		BookingRepo:  stores.BookingRepo,
	}
}

func (s *RateResolverServiceSuite) newPlan() *rateplan.RatePlan {
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

func (s *RateResolverServiceSuite) mustDate(value string) time.Time {
	d, err := types.ParseCalendarDate(value)
	s.NoError(err)
	return d
}

func (s *RateResolverServiceSuite) TestNoMatchingRuleReturnsBaseRate() {
	plan := s.newPlan()
	// 2025-06-23 is a Monday, so the weekend step never fires either
	entry, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-23"), rateplan.RuleContext{}, nil)
	s.NoError(err)
	s.True(plan.BaseRate.Equal(entry.FinalRate))
	s.Empty(entry.MatchedRuleIDs)
	s.Empty(entry.AppliedModifiers)
}

func (s *RateResolverServiceSuite) TestResolutionIsIdempotent() {
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
				{ID: "mod_1", Kind: types.MODIFIER_KIND_PERCENTAGE, Value: decimal.NewFromInt(35), ApplyToBaseRate: true},
			},
		},
	}

	date := s.mustDate("2025-06-23")
	first, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, date, rateplan.RuleContext{}, nil)
	s.NoError(err)
	second, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, date, rateplan.RuleContext{}, nil)
	s.NoError(err)

	s.True(first.FinalRate.Equal(second.FinalRate))
	s.Equal(first.MatchedRuleIDs, second.MatchedRuleIDs)
	s.Len(first.AppliedModifiers, len(second.AppliedModifiers))
}

func (s *RateResolverServiceSuite) TestPriorityOrdering() {
	// The priority-9 rule overrides to 200 first; the priority-5 rule then
	// adds 10 on top. If the order were reversed the override would win
	// and the fixed amount would be lost.
	plan := s.newPlan()
	plan.Rules = []rateplan.PricingRule{
		{
			ID:          "rule_low",
			RuleType:    types.RULE_TYPE_MINIMUM_STAY,
			Enabled:     true,
			Priority:    5,
			MinimumStay: lo.ToPtr(1),
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_fixed", Kind: types.MODIFIER_KIND_FIXED_AMOUNT, Value: decimal.NewFromInt(10)},
			},
		},
		{
			ID:          "rule_high",
			RuleType:    types.RULE_TYPE_MINIMUM_STAY,
			Enabled:     true,
			Priority:    9,
			MinimumStay: lo.ToPtr(1),
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_override", Kind: types.MODIFIER_KIND_OVERRIDE, Value: decimal.NewFromInt(200)},
			},
		},
	}

	rctx := rateplan.RuleContext{NightsInStay: 2}
	entry, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-23"), rctx, nil)
	s.NoError(err)
	s.True(decimal.NewFromInt(210).Equal(entry.FinalRate), "got %s", entry.FinalRate)
	s.Equal([]string{"rule_high", "rule_low"}, entry.MatchedRuleIDs)
}

func (s *RateResolverServiceSuite) TestEqualPriorityTieBreakIsListOrder() {
	plan := s.newPlan()
	plan.Rules = []rateplan.PricingRule{
		{
			ID:          "rule_first",
			RuleType:    types.RULE_TYPE_MINIMUM_STAY,
			Enabled:     true,
			Priority:    5,
			MinimumStay: lo.ToPtr(1),
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_a", Kind: types.MODIFIER_KIND_OVERRIDE, Value: decimal.NewFromInt(180)},
			},
		},
		{
			ID:          "rule_second",
			RuleType:    types.RULE_TYPE_MINIMUM_STAY,
			Enabled:     true,
			Priority:    5,
			MinimumStay: lo.ToPtr(1),
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_b", Kind: types.MODIFIER_KIND_FIXED_AMOUNT, Value: decimal.NewFromInt(15)},
			},
		},
	}

	rctx := rateplan.RuleContext{NightsInStay: 3}
	entry, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-23"), rctx, nil)
	s.NoError(err)
	s.True(decimal.NewFromInt(195).Equal(entry.FinalRate), "got %s", entry.FinalRate)
}

func (s *RateResolverServiceSuite) TestWeekendPremiumRule() {
	// Base 150 with a +20% day-of-week rule on Friday resolves to 180.
	// The plan-level weekend multiplier must not stack on top because the
	// day-of-week rule already covers Friday.
	plan := s.newPlan()
	plan.AllowWeekendPricing = true
	plan.WeekendMultiplier = lo.ToPtr(decimal.NewFromFloat(1.5))
	plan.Rules = []rateplan.PricingRule{
		{
			ID:         "rule_weekend",
			Name:       "Weekend Premium",
			RuleType:   types.RULE_TYPE_DAY_OF_WEEK,
			Enabled:    true,
			Priority:   7,
			DaysOfWeek: &rateplan.DayOfWeekCondition{Days: []int{5, 6}},
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_premium", Kind: types.MODIFIER_KIND_PERCENTAGE, Value: decimal.NewFromInt(20), ApplyToBaseRate: true},
			},
		},
	}

	// 2025-06-20 is a Friday
	entry, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-20"), rateplan.RuleContext{}, nil)
	s.NoError(err)
	s.True(decimal.NewFromInt(180).Equal(entry.FinalRate), "got %s", entry.FinalRate)
	s.False(entry.WeekendMultiplierApplied)
}

func (s *RateResolverServiceSuite) TestWeekendMultiplierWithoutCoveringRule() {
	plan := s.newPlan()
	plan.BaseRate = decimal.NewFromInt(100)
	plan.AllowWeekendPricing = true
	plan.WeekendMultiplier = lo.ToPtr(decimal.NewFromFloat(1.25))

	entry, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-20"), rateplan.RuleContext{}, nil)
	s.NoError(err)
	s.True(decimal.NewFromInt(125).Equal(entry.FinalRate), "got %s", entry.FinalRate)
	s.True(entry.WeekendMultiplierApplied)

	// Per-request opt out
	entry, err = s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-20"), rateplan.RuleContext{}, &ResolveOptions{DisableWeekendMultiplier: true})
	s.NoError(err)
	s.True(decimal.NewFromInt(100).Equal(entry.FinalRate))
	s.False(entry.WeekendMultiplierApplied)
}

func (s *RateResolverServiceSuite) TestClampBounds() {
	// +50% on base 150 lands at 225, inside the 100-300 clamp window
	plan := s.newPlan()
	plan.MinimumRate = lo.ToPtr(decimal.NewFromInt(100))
	plan.MaximumRate = lo.ToPtr(decimal.NewFromInt(300))
	plan.Rules = []rateplan.PricingRule{
		{
			ID:        "rule_holiday",
			Name:      "Holiday Premium",
			RuleType:  types.RULE_TYPE_DATE_RANGE,
			Enabled:   true,
			Priority:  8,
			DateRange: &rateplan.DateRangeCondition{Start: "2025-12-20", End: "2025-12-31"},
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_holiday", Kind: types.MODIFIER_KIND_PERCENTAGE, Value: decimal.NewFromInt(50), ApplyToBaseRate: true},
			},
		},
	}

	// 2025-12-22 is a Monday
	entry, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-12-22"), rateplan.RuleContext{}, nil)
	s.NoError(err)
	s.True(decimal.NewFromInt(225).Equal(entry.FinalRate), "got %s", entry.FinalRate)

	// Push the raw rate past the ceiling and check the clamp holds
	plan.Rules[0].Modifiers[0].Value = decimal.NewFromInt(400)
	entry, err = s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-12-22"), rateplan.RuleContext{}, nil)
	s.NoError(err)
	s.True(decimal.NewFromInt(300).Equal(entry.FinalRate))
	s.True(entry.PreClampRate.GreaterThan(entry.FinalRate))

	// And the floor
	plan.Rules[0].Modifiers[0].Value = decimal.NewFromInt(-90)
	entry, err = s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-12-22"), rateplan.RuleContext{}, nil)
	s.NoError(err)
	s.True(decimal.NewFromInt(100).Equal(entry.FinalRate))
}

func (s *RateResolverServiceSuite) TestInactivePlanFailsResolution() {
	plan := s.newPlan()
	plan.PlanStatus = types.RATE_PLAN_STATUS_DRAFT

	_, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-20"), rateplan.RuleContext{}, nil)
	s.Error(err)
	s.True(ierr.IsInvalidPlanState(err))
}

func (s *RateResolverServiceSuite) TestZeroDateFailsResolution() {
	plan := s.newPlan()
	_, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, time.Time{}, rateplan.RuleContext{}, nil)
	s.Error(err)
	s.True(ierr.IsInvalidDate(err))
}

func (s *RateResolverServiceSuite) TestMalformedModifierSurfacesConfigurationError() {
	plan := s.newPlan()
	plan.Rules = []rateplan.PricingRule{
		{
			ID:          "rule_bad",
			RuleType:    types.RULE_TYPE_MINIMUM_STAY,
			Enabled:     true,
			MinimumStay: lo.ToPtr(1),
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_bad", Kind: types.RateModifierKind("BOGUS"), Value: decimal.NewFromInt(1)},
			},
		},
	}

	_, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-23"), rateplan.RuleContext{NightsInStay: 2}, nil)
	s.Error(err)
	s.True(ierr.IsConfiguration(err))
}

func (s *RateResolverServiceSuite) TestZeroDecimalCurrencyRounding() {
	plan := s.newPlan()
	plan.Currency = "jpy"
	plan.BaseRate = decimal.NewFromInt(10000)
	plan.Rules = []rateplan.PricingRule{
		{
			ID:          "rule_fee",
			RuleType:    types.RULE_TYPE_MINIMUM_STAY,
			Enabled:     true,
			MinimumStay: lo.ToPtr(1),
			Modifiers: []rateplan.RateModifier{
				{ID: "mod_pct", Kind: types.MODIFIER_KIND_PERCENTAGE, Value: decimal.NewFromFloat(7.775), ApplyToBaseRate: true},
			},
		},
	}

	entry, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-23"), rateplan.RuleContext{NightsInStay: 1}, nil)
	s.NoError(err)
	// 10000 * 1.07775 = 10777.5, rounded to 0 decimal places
	s.True(decimal.NewFromInt(10778).Equal(entry.FinalRate), "got %s", entry.FinalRate)

	// Explicit precision override wins
	entry, err = s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-23"), rateplan.RuleContext{NightsInStay: 1}, &ResolveOptions{Precision: lo.ToPtr(int32(2))})
	s.NoError(err)
	s.True(decimal.NewFromFloat(10777.5).Equal(entry.FinalRate), "got %s", entry.FinalRate)
}

func (s *RateResolverServiceSuite) TestResolveCalendarReturnsDateOrder() {
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

	entries, err := s.resolver.ResolveCalendar(s.GetContext(), plan, s.mustDate("2025-06-20"), s.mustDate("2025-06-23"), rateplan.RuleContext{}, nil)
	s.NoError(err)
	s.Len(entries, 3)
	for i, entry := range entries {
		s.True(types.SameCalendarDate(s.mustDate("2025-06-20").AddDate(0, 0, i), entry.Date))
		s.True(decimal.NewFromFloat(202.50).Equal(entry.FinalRate), "night %d got %s", i, entry.FinalRate)
	}
}

func (s *RateResolverServiceSuite) TestResolveCalendarInvertedRange() {
	plan := s.newPlan()
	_, err := s.resolver.ResolveCalendar(s.GetContext(), plan, s.mustDate("2025-06-23"), s.mustDate("2025-06-20"), rateplan.RuleContext{}, nil)
	s.Error(err)
	s.True(ierr.IsInvalidDate(err))
}

func (s *RateResolverServiceSuite) TestAutomationAdjustsWithinConstraints() {
	plan := s.newPlan()
	plan.BaseRate = decimal.NewFromInt(200)
	plan.Automation = &rateplan.AutomationSettings{
		Enabled: true,
		OccupancyThresholds: []rateplan.OccupancyThreshold{
			{ThresholdPct: 50, AdjustmentPct: decimal.NewFromInt(5)},
			{ThresholdPct: 80, AdjustmentPct: decimal.NewFromInt(15)},
		},
		Constraints: rateplan.AutomationConstraints{
			MaxAdjustmentPerDay: lo.ToPtr(decimal.NewFromInt(20)),
		},
	}

	// 90% occupancy picks the 80% threshold: +15% of 200 is +30, capped
	// at the 20 per-day adjustment limit.
	rctx := rateplan.RuleContext{OccupancyPct: 90}
	entry, err := s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-23"), rctx, nil)
	s.NoError(err)
	s.True(decimal.NewFromInt(220).Equal(entry.FinalRate), "got %s", entry.FinalRate)

	// Automation can be disabled per request
	entry, err = s.resolver.ResolveNightlyRate(s.GetContext(), plan, s.mustDate("2025-06-23"), rctx, &ResolveOptions{DisableAutomation: true})
	s.NoError(err)
	s.True(decimal.NewFromInt(200).Equal(entry.FinalRate))
}
