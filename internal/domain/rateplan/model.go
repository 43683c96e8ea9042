package rateplan

import (
	"fmt"

	"github.com/shopspring/decimal"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// RatePlan is a named pricing policy applicable to one or more properties.
// A plan owns an ordered list of pricing rules; list order is NOT evaluation
// order — evaluation order is derived from each rule's priority.
type RatePlan struct {
	// ID unique identifier for the rate plan
	ID string `db:"id" json:"id"`

	// Name of the rate plan shown to operators
	Name string `db:"name" json:"name"`

	// Description of the rate plan
	Description string `db:"description" json:"description"`

	// Type is the commercial flavour ex STANDARD, SEASONAL, PROMOTIONAL
	Type types.RatePlanType `db:"type" json:"type"`

	// PlanStatus is the lifecycle status. Only ACTIVE plans resolve rates.
	PlanStatus types.RatePlanStatus `db:"plan_status" json:"plan_status"`

	// PropertyIDs are the properties this plan applies to (many-to-many)
	PropertyIDs []string `db:"property_ids,jsonb" json:"property_ids"`

	// BaseRate is the nightly rate before any rule is applied,
	// stored in main currency units (e.g. dollars, not cents)
	BaseRate decimal.Decimal `db:"base_rate" json:"base_rate"`

	// Currency 3 digit ISO currency code in lowercase ex usd, eur, gbp
	Currency string `db:"currency" json:"currency"`

	// PricingStrategy describes how the plan's rate is meant to move.
	// Rules are strategy-orthogonal and evaluate for every strategy.
	PricingStrategy types.PricingStrategy `db:"pricing_strategy" json:"pricing_strategy"`

	// AllowDynamicPricing must be false when PricingStrategy is FIXED
	AllowDynamicPricing bool `db:"allow_dynamic_pricing" json:"allow_dynamic_pricing"`

	// Rules are the pricing rules owned by this plan
	Rules []PricingRule `db:"rules,jsonb" json:"rules"`

	// AllowWeekendPricing enables the weekend multiplier step during
	// resolution for Friday and Saturday nights
	AllowWeekendPricing bool `db:"allow_weekend_pricing" json:"allow_weekend_pricing"`

	// WeekendMultiplier multiplies the running rate on weekend nights when
	// AllowWeekendPricing is set and no matched day-of-week rule already
	// covers that weekday. Defaults to 1.0 when unset.
	WeekendMultiplier *decimal.Decimal `db:"weekend_multiplier" json:"weekend_multiplier,omitempty"`

	// MinimumRate and MaximumRate clamp the resolved nightly rate
	MinimumRate *decimal.Decimal `db:"minimum_rate" json:"minimum_rate,omitempty"`
	MaximumRate *decimal.Decimal `db:"maximum_rate" json:"maximum_rate,omitempty"`

	// Stay-length eligibility bounds in nights
	MinimumStay *int `db:"minimum_stay" json:"minimum_stay,omitempty"`
	MaximumStay *int `db:"maximum_stay" json:"maximum_stay,omitempty"`

	// AdvanceBookingDays bounds the allowed lead time between booking
	// creation and check-in
	AdvanceBookingDays *AdvanceBookingCondition `db:"advance_booking_days,jsonb" json:"advance_booking_days,omitempty"`

	// Automation is the optional second adjustment pipeline layered after
	// rule-based resolution
	Automation *AutomationSettings `db:"automation,jsonb" json:"automation,omitempty"`

	types.BaseModel
}

// PricingRule is a conditional adjustment within a rate plan. Exactly the
// condition field matching RuleType is populated; the rest are nil. A rule
// whose condition payload is absent or malformed never matches.
type PricingRule struct {
	// ID unique identifier for the rule
	ID string `db:"id" json:"id"`

	// RatePlanID is a non-owning back-reference to the parent plan
	RatePlanID string `db:"rate_plan_id" json:"rate_plan_id"`

	// Name of the rule shown to operators ex "Weekend Premium"
	Name string `db:"name" json:"name"`

	// RuleType selects which condition payload applies
	RuleType types.PricingRuleType `db:"rule_type" json:"rule_type"`

	// Enabled rules participate in resolution; disabled rules never match
	Enabled bool `db:"enabled" json:"enabled"`

	// Priority orders matched rules during resolution, higher first.
	// Ties are broken by the rule's position in the plan's list.
	Priority int `db:"priority" json:"priority"`

	// Condition payloads, one per rule type
	DateRange       *DateRangeCondition      `json:"date_range,omitempty"`
	DaysOfWeek      *DayOfWeekCondition      `json:"days_of_week,omitempty"`
	OccupancyRange  *OccupancyCondition      `json:"occupancy_range,omitempty"`
	AdvanceBooking  *AdvanceBookingCondition `json:"advance_booking,omitempty"`
	MinimumStay     *int                     `json:"minimum_stay,omitempty"`
	MaximumStay     *int                     `json:"maximum_stay,omitempty"`

	// Modifiers are applied in list order when the rule matches
	Modifiers []RateModifier `json:"modifiers"`
}

// RateModifier is a single named adjustment attached to a pricing rule.
// Immutable once created.
type RateModifier struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`

	// Kind of adjustment: PERCENTAGE, FIXED_AMOUNT or OVERRIDE
	Kind types.RateModifierKind `db:"kind" json:"kind"`

	// Value semantics depend on Kind: percentage delta in [-100, ∞) for
	// PERCENTAGE, sign-carrying currency delta for FIXED_AMOUNT, absolute
	// replacement rate for OVERRIDE
	Value decimal.Decimal `db:"value" json:"value"`

	// ApplyToBaseRate computes percentage adjustments against the plan's
	// base rate instead of the running total
	ApplyToBaseRate bool `db:"apply_to_base_rate" json:"apply_to_base_rate"`
}

// DateRangeCondition holds an inclusive calendar-date window.
// Dates are ISO-8601 calendar dates; comparison is by calendar date only.
type DateRangeCondition struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// DayOfWeekCondition holds the matching weekdays, 0=Sunday .. 6=Saturday
type DayOfWeekCondition struct {
	Days []int `json:"days" validate:"required,min=1,dive,min=0,max=6"`
}

// OccupancyCondition holds an inclusive occupancy percentage window, 0-100
type OccupancyCondition struct {
	Min float64 `json:"min" validate:"min=0,max=100"`
	Max float64 `json:"max" validate:"min=0,max=100"`
}

// AdvanceBookingCondition bounds the days between booking creation and
// check-in. A nil Min defaults to 0, a nil Max to unbounded.
type AdvanceBookingCondition struct {
	Min *int `json:"min,omitempty" validate:"omitempty,min=0"`
	Max *int `json:"max,omitempty" validate:"omitempty,min=0"`
}

// GetCurrencySymbol returns the currency symbol for the plan
func (p *RatePlan) GetCurrencySymbol() string {
	return types.GetCurrencySymbol(p.Currency)
}

// GetWeekendMultiplier returns the weekend multiplier, defaulting to 1.0
func (p *RatePlan) GetWeekendMultiplier() decimal.Decimal {
	if p.WeekendMultiplier == nil {
		return decimal.NewFromInt(1)
	}
	return *p.WeekendMultiplier
}

// IsActive reports whether the plan is eligible for rate resolution
func (p *RatePlan) IsActive() bool {
	return p.PlanStatus == types.RATE_PLAN_STATUS_ACTIVE
}

// ClampRate applies the plan's minimum/maximum rate bounds to a rate
func (p *RatePlan) ClampRate(rate decimal.Decimal) decimal.Decimal {
	if p.MinimumRate != nil && rate.LessThan(*p.MinimumRate) {
		rate = *p.MinimumRate
	}
	if p.MaximumRate != nil && rate.GreaterThan(*p.MaximumRate) {
		rate = *p.MaximumRate
	}
	return rate
}

// Validate checks plan-level invariants
func (p *RatePlan) Validate() error {
	if err := p.Type.Validate(); err != nil {
		return err
	}
	if err := p.PlanStatus.Validate(); err != nil {
		return err
	}
	if err := p.PricingStrategy.Validate(); err != nil {
		return err
	}
	if p.BaseRate.IsNegative() {
		return ierr.NewError("base rate must not be negative").
			WithHint("Base rate must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if p.PricingStrategy == types.PRICING_STRATEGY_FIXED && p.AllowDynamicPricing {
		return ierr.NewError("fixed strategy forbids dynamic pricing").
			WithHint("Dynamic pricing cannot be enabled on a fixed strategy plan").
			Mark(ierr.ErrValidation)
	}
	if p.MinimumRate != nil && p.MaximumRate != nil && p.MinimumRate.GreaterThan(*p.MaximumRate) {
		return ierr.NewError("minimum rate exceeds maximum rate").
			WithHint("Minimum rate must not exceed maximum rate").
			Mark(ierr.ErrValidation)
	}
	if p.MinimumStay != nil && p.MaximumStay != nil && *p.MinimumStay > *p.MaximumStay {
		return ierr.NewError("minimum stay exceeds maximum stay").
			WithHint("Minimum stay must not exceed maximum stay").
			Mark(ierr.ErrValidation)
	}
	for i := range p.Rules {
		if err := p.Rules[i].Validate(); err != nil {
			return err
		}
	}
	if p.Automation != nil {
		if err := p.Automation.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that exactly the condition payload matching RuleType is
// populated and that each modifier is well formed
func (r *PricingRule) Validate() error {
	if err := r.RuleType.Validate(); err != nil {
		return err
	}

	populated := 0
	for _, set := range []bool{
		r.DateRange != nil,
		r.DaysOfWeek != nil,
		r.OccupancyRange != nil,
		r.AdvanceBooking != nil,
		r.MinimumStay != nil,
		r.MaximumStay != nil,
	} {
		if set {
			populated++
		}
	}
	if populated != 1 {
		return ierr.NewError("rule must carry exactly one condition payload").
			WithHintf("Rule %s carries %d condition payloads", r.Name, populated).
			WithReportableDetails(map[string]any{"rule_id": r.ID, "rule_type": r.RuleType}).
			Mark(ierr.ErrConfiguration)
	}
	if !r.hasConditionFor(r.RuleType) {
		return ierr.NewError("condition payload does not match rule type").
			WithHintf("Rule %s of type %s carries the wrong condition payload", r.Name, r.RuleType).
			WithReportableDetails(map[string]any{"rule_id": r.ID, "rule_type": r.RuleType}).
			Mark(ierr.ErrConfiguration)
	}

	if r.DateRange != nil {
		start, err := types.ParseCalendarDate(r.DateRange.Start)
		if err != nil {
			return ierr.WithError(err).
				WithHintf("Rule %s has an invalid start date", r.Name).
				Mark(ierr.ErrConfiguration)
		}
		end, err := types.ParseCalendarDate(r.DateRange.End)
		if err != nil {
			return ierr.WithError(err).
				WithHintf("Rule %s has an invalid end date", r.Name).
				Mark(ierr.ErrConfiguration)
		}
		if end.Before(start) {
			return ierr.NewError("rule date range is inverted").
				WithHintf("Rule %s ends before it starts", r.Name).
				Mark(ierr.ErrConfiguration)
		}
	}
	if r.DaysOfWeek != nil {
		for _, d := range r.DaysOfWeek.Days {
			if d < 0 || d > 6 {
				return ierr.NewError(fmt.Sprintf("invalid weekday %d", d)).
					WithHintf("Rule %s references a weekday outside 0-6", r.Name).
					Mark(ierr.ErrConfiguration)
			}
		}
	}
	if r.OccupancyRange != nil && r.OccupancyRange.Min > r.OccupancyRange.Max {
		return ierr.NewError("occupancy range is inverted").
			WithHintf("Rule %s has min occupancy above max", r.Name).
			Mark(ierr.ErrConfiguration)
	}

	for i := range r.Modifiers {
		if err := r.Modifiers[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *PricingRule) hasConditionFor(ruleType types.PricingRuleType) bool {
	switch ruleType {
	case types.RULE_TYPE_DATE_RANGE:
		return r.DateRange != nil
	case types.RULE_TYPE_DAY_OF_WEEK:
		return r.DaysOfWeek != nil
	case types.RULE_TYPE_OCCUPANCY_LEVEL:
		return r.OccupancyRange != nil
	case types.RULE_TYPE_ADVANCE_BOOKING:
		return r.AdvanceBooking != nil
	case types.RULE_TYPE_MINIMUM_STAY:
		return r.MinimumStay != nil
	case types.RULE_TYPE_MAXIMUM_STAY:
		return r.MaximumStay != nil
	}
	return false
}

// Validate checks modifier invariants
func (m *RateModifier) Validate() error {
	if err := m.Kind.Validate(); err != nil {
		return err
	}
	if m.Kind == types.MODIFIER_KIND_PERCENTAGE && m.Value.LessThan(decimal.NewFromInt(-100)) {
		return ierr.NewError("percentage modifier below -100").
			WithHintf("Modifier %s would produce a negative multiplier", m.Name).
			Mark(ierr.ErrConfiguration)
	}
	if m.Kind == types.MODIFIER_KIND_OVERRIDE && m.Value.IsNegative() {
		return ierr.NewError("override modifier is negative").
			WithHintf("Modifier %s overrides to a negative rate", m.Name).
			Mark(ierr.ErrConfiguration)
	}
	return nil
}
