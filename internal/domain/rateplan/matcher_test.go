package rateplan

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/stayrate/stayrate/internal/types"
)

func dateOf(value string) time.Time {
	d, err := types.ParseCalendarDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPricingRule_Matches(t *testing.T) {
	tests := []struct {
		name    string
		rule    PricingRule
		ctx     RuleContext
		matches bool
	}{
		{
			name: "date_range_inclusive_start",
			rule: PricingRule{
				RuleType:  types.RULE_TYPE_DATE_RANGE,
				Enabled:   true,
				DateRange: &DateRangeCondition{Start: "2025-06-01", End: "2025-08-31"},
			},
			ctx:     RuleContext{Date: dateOf("2025-06-01")},
			matches: true,
		},
		{
			name: "date_range_inclusive_end",
			rule: PricingRule{
				RuleType:  types.RULE_TYPE_DATE_RANGE,
				Enabled:   true,
				DateRange: &DateRangeCondition{Start: "2025-06-01", End: "2025-08-31"},
			},
			ctx:     RuleContext{Date: dateOf("2025-08-31")},
			matches: true,
		},
		{
			name: "date_range_outside",
			rule: PricingRule{
				RuleType:  types.RULE_TYPE_DATE_RANGE,
				Enabled:   true,
				DateRange: &DateRangeCondition{Start: "2025-06-01", End: "2025-08-31"},
			},
			ctx:     RuleContext{Date: dateOf("2025-09-01")},
			matches: false,
		},
		{
			name: "day_of_week_friday",
			rule: PricingRule{
				RuleType:   types.RULE_TYPE_DAY_OF_WEEK,
				Enabled:    true,
				DaysOfWeek: &DayOfWeekCondition{Days: []int{5, 6}},
			},
			// 2025-06-20 is a Friday
			ctx:     RuleContext{Date: dateOf("2025-06-20")},
			matches: true,
		},
		{
			name: "day_of_week_monday_not_covered",
			rule: PricingRule{
				RuleType:   types.RULE_TYPE_DAY_OF_WEEK,
				Enabled:    true,
				DaysOfWeek: &DayOfWeekCondition{Days: []int{5, 6}},
			},
			// 2025-06-23 is a Monday
			ctx:     RuleContext{Date: dateOf("2025-06-23")},
			matches: false,
		},
		{
			name: "occupancy_within_window",
			rule: PricingRule{
				RuleType:       types.RULE_TYPE_OCCUPANCY_LEVEL,
				Enabled:        true,
				OccupancyRange: &OccupancyCondition{Min: 70, Max: 100},
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20"), OccupancyPct: 85},
			matches: true,
		},
		{
			name: "occupancy_below_window",
			rule: PricingRule{
				RuleType:       types.RULE_TYPE_OCCUPANCY_LEVEL,
				Enabled:        true,
				OccupancyRange: &OccupancyCondition{Min: 70, Max: 100},
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20"), OccupancyPct: 40},
			matches: false,
		},
		{
			name: "advance_booking_defaults_unbounded_max",
			rule: PricingRule{
				RuleType:       types.RULE_TYPE_ADVANCE_BOOKING,
				Enabled:        true,
				AdvanceBooking: &AdvanceBookingCondition{Min: lo.ToPtr(30)},
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20"), AdvanceBookingDays: 365},
			matches: true,
		},
		{
			name: "advance_booking_below_min",
			rule: PricingRule{
				RuleType:       types.RULE_TYPE_ADVANCE_BOOKING,
				Enabled:        true,
				AdvanceBooking: &AdvanceBookingCondition{Min: lo.ToPtr(30)},
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20"), AdvanceBookingDays: 10},
			matches: false,
		},
		{
			name: "minimum_stay_met",
			rule: PricingRule{
				RuleType:    types.RULE_TYPE_MINIMUM_STAY,
				Enabled:     true,
				MinimumStay: lo.ToPtr(3),
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20"), NightsInStay: 5},
			matches: true,
		},
		{
			name: "maximum_stay_exceeded",
			rule: PricingRule{
				RuleType:    types.RULE_TYPE_MAXIMUM_STAY,
				Enabled:     true,
				MaximumStay: lo.ToPtr(7),
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20"), NightsInStay: 10},
			matches: false,
		},
		{
			name: "disabled_rule_never_matches",
			rule: PricingRule{
				RuleType:   types.RULE_TYPE_DAY_OF_WEEK,
				Enabled:    false,
				DaysOfWeek: &DayOfWeekCondition{Days: []int{5}},
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20")},
			matches: false,
		},
		{
			name: "missing_condition_payload_fails_closed",
			rule: PricingRule{
				RuleType: types.RULE_TYPE_DATE_RANGE,
				Enabled:  true,
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20")},
			matches: false,
		},
		{
			name: "malformed_date_fails_closed",
			rule: PricingRule{
				RuleType:  types.RULE_TYPE_DATE_RANGE,
				Enabled:   true,
				DateRange: &DateRangeCondition{Start: "not-a-date", End: "2025-08-31"},
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20")},
			matches: false,
		},
		{
			name: "unknown_rule_type_fails_closed",
			rule: PricingRule{
				RuleType: types.PricingRuleType("MYSTERY"),
				Enabled:  true,
			},
			ctx:     RuleContext{Date: dateOf("2025-06-20")},
			matches: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.rule.Matches(tt.ctx))
		})
	}
}

func TestPricingRule_CoversWeekday(t *testing.T) {
	rule := PricingRule{
		RuleType:   types.RULE_TYPE_DAY_OF_WEEK,
		Enabled:    true,
		DaysOfWeek: &DayOfWeekCondition{Days: []int{5, 6}},
	}

	assert.True(t, rule.CoversWeekday(time.Friday))
	assert.True(t, rule.CoversWeekday(time.Saturday))
	assert.False(t, rule.CoversWeekday(time.Sunday))

	dateRule := PricingRule{
		RuleType:  types.RULE_TYPE_DATE_RANGE,
		Enabled:   true,
		DateRange: &DateRangeCondition{Start: "2025-06-01", End: "2025-08-31"},
	}
	assert.False(t, dateRule.CoversWeekday(time.Friday))
}
