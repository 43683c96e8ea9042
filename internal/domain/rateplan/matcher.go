package rateplan

import (
	"time"

	"github.com/samber/lo"
	"github.com/stayrate/stayrate/internal/types"
)

// RuleContext carries the evaluation context a pricing rule is matched
// against: the night being priced plus occupancy and stay attributes.
type RuleContext struct {
	// Date is the calendar date of the night being priced
	Date time.Time

	// OccupancyPct is the property occupancy percentage, 0-100
	OccupancyPct float64

	// NightsInStay is the total stay length in nights
	NightsInStay int

	// AdvanceBookingDays is the lead time between booking creation and
	// check-in, in whole days
	AdvanceBookingDays int
}

// Matches reports whether the rule's condition holds for the given context.
// Disabled rules never match. A rule whose condition payload is absent or
// malformed for its type is treated as non-matching (fail closed) rather
// than as an error: a single bad rule must not take down resolution for the
// whole plan. Matches never returns an error on well-formed input.
func (r *PricingRule) Matches(ctx RuleContext) bool {
	if !r.Enabled {
		return false
	}

	switch r.RuleType {
	case types.RULE_TYPE_DATE_RANGE:
		if r.DateRange == nil {
			return false
		}
		start, err := types.ParseCalendarDate(r.DateRange.Start)
		if err != nil {
			return false
		}
		end, err := types.ParseCalendarDate(r.DateRange.End)
		if err != nil {
			return false
		}
		return types.DateWithinRange(ctx.Date, start, end)

	case types.RULE_TYPE_DAY_OF_WEEK:
		if r.DaysOfWeek == nil || len(r.DaysOfWeek.Days) == 0 {
			return false
		}
		return lo.Contains(r.DaysOfWeek.Days, int(ctx.Date.Weekday()))

	case types.RULE_TYPE_OCCUPANCY_LEVEL:
		if r.OccupancyRange == nil {
			return false
		}
		return ctx.OccupancyPct >= r.OccupancyRange.Min &&
			ctx.OccupancyPct <= r.OccupancyRange.Max

	case types.RULE_TYPE_ADVANCE_BOOKING:
		if r.AdvanceBooking == nil {
			return false
		}
		return r.AdvanceBooking.Contains(ctx.AdvanceBookingDays)

	case types.RULE_TYPE_MINIMUM_STAY:
		if r.MinimumStay == nil {
			return false
		}
		return ctx.NightsInStay >= *r.MinimumStay

	case types.RULE_TYPE_MAXIMUM_STAY:
		if r.MaximumStay == nil {
			return false
		}
		return ctx.NightsInStay <= *r.MaximumStay
	}

	return false
}

// CoversWeekday reports whether this rule's day-of-week condition includes
// the given weekday. Used by the resolver to decide whether the plan-level
// weekend multiplier still applies.
func (r *PricingRule) CoversWeekday(weekday time.Weekday) bool {
	if r.RuleType != types.RULE_TYPE_DAY_OF_WEEK || r.DaysOfWeek == nil {
		return false
	}
	return lo.Contains(r.DaysOfWeek.Days, int(weekday))
}

// Contains reports whether days falls within [Min (default 0), Max
// (default unbounded)] inclusive
func (c *AdvanceBookingCondition) Contains(days int) bool {
	min := 0
	if c.Min != nil {
		min = *c.Min
	}
	if days < min {
		return false
	}
	if c.Max != nil && days > *c.Max {
		return false
	}
	return true
}
