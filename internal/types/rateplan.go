package types

import ierr "github.com/stayrate/stayrate/internal/errors"

// RatePlanType is the commercial flavour of a rate plan ex STANDARD, SEASONAL
type RatePlanType string

// RatePlanStatus is the lifecycle status of a rate plan. Only ACTIVE plans
// are eligible for rate resolution.
type RatePlanStatus string

// PricingStrategy describes how a plan's nightly rate is meant to move.
// Rules are strategy-orthogonal: rule evaluation runs for every strategy.
type PricingStrategy string

// PricingRuleType selects which condition payload a pricing rule carries
type PricingRuleType string

// RateModifierKind is the adjustment kind of a rate modifier
type RateModifierKind string

// BookingStatus is the lifecycle status of a booking
type BookingStatus string

const (
	RATE_PLAN_TYPE_STANDARD    RatePlanType = "STANDARD"
	RATE_PLAN_TYPE_SEASONAL    RatePlanType = "SEASONAL"
	RATE_PLAN_TYPE_PROMOTIONAL RatePlanType = "PROMOTIONAL"
	RATE_PLAN_TYPE_CORPORATE   RatePlanType = "CORPORATE"
	RATE_PLAN_TYPE_GROUP       RatePlanType = "GROUP"

	RATE_PLAN_STATUS_ACTIVE   RatePlanStatus = "ACTIVE"
	RATE_PLAN_STATUS_INACTIVE RatePlanStatus = "INACTIVE"
	RATE_PLAN_STATUS_DRAFT    RatePlanStatus = "DRAFT"
	RATE_PLAN_STATUS_ARCHIVED RatePlanStatus = "ARCHIVED"

	PRICING_STRATEGY_FIXED            PricingStrategy = "FIXED"
	PRICING_STRATEGY_DYNAMIC          PricingStrategy = "DYNAMIC"
	PRICING_STRATEGY_OCCUPANCY_BASED  PricingStrategy = "OCCUPANCY_BASED"
	PRICING_STRATEGY_DEMAND_BASED     PricingStrategy = "DEMAND_BASED"
	PRICING_STRATEGY_COMPETITOR_BASED PricingStrategy = "COMPETITOR_BASED"

	RULE_TYPE_DATE_RANGE      PricingRuleType = "DATE_RANGE"
	RULE_TYPE_DAY_OF_WEEK     PricingRuleType = "DAY_OF_WEEK"
	RULE_TYPE_OCCUPANCY_LEVEL PricingRuleType = "OCCUPANCY_LEVEL"
	RULE_TYPE_ADVANCE_BOOKING PricingRuleType = "ADVANCE_BOOKING"
	RULE_TYPE_MINIMUM_STAY    PricingRuleType = "MINIMUM_STAY"
	RULE_TYPE_MAXIMUM_STAY    PricingRuleType = "MAXIMUM_STAY"

	// MODIFIER_KIND_PERCENTAGE adds value% of the base rate or the running
	// total to the running total
	MODIFIER_KIND_PERCENTAGE RateModifierKind = "PERCENTAGE"
	// MODIFIER_KIND_FIXED_AMOUNT adds a sign-carrying currency delta
	MODIFIER_KIND_FIXED_AMOUNT RateModifierKind = "FIXED_AMOUNT"
	// MODIFIER_KIND_OVERRIDE replaces the running total unconditionally
	MODIFIER_KIND_OVERRIDE RateModifierKind = "OVERRIDE"

	BOOKING_STATUS_PENDING     BookingStatus = "PENDING"
	BOOKING_STATUS_CONFIRMED   BookingStatus = "CONFIRMED"
	BOOKING_STATUS_CANCELLED   BookingStatus = "CANCELLED"
	BOOKING_STATUS_CHECKED_IN  BookingStatus = "CHECKED_IN"
	BOOKING_STATUS_CHECKED_OUT BookingStatus = "CHECKED_OUT"
)

func (t RatePlanType) Validate() error {
	switch t {
	case RATE_PLAN_TYPE_STANDARD, RATE_PLAN_TYPE_SEASONAL, RATE_PLAN_TYPE_PROMOTIONAL,
		RATE_PLAN_TYPE_CORPORATE, RATE_PLAN_TYPE_GROUP:
		return nil
	}
	return ierr.NewError("invalid rate plan type").
		WithHintf("Rate plan type %s is not supported", t).
		Mark(ierr.ErrValidation)
}

func (s RatePlanStatus) Validate() error {
	switch s {
	case RATE_PLAN_STATUS_ACTIVE, RATE_PLAN_STATUS_INACTIVE,
		RATE_PLAN_STATUS_DRAFT, RATE_PLAN_STATUS_ARCHIVED:
		return nil
	}
	return ierr.NewError("invalid rate plan status").
		WithHintf("Rate plan status %s is not supported", s).
		Mark(ierr.ErrValidation)
}

func (s PricingStrategy) Validate() error {
	switch s {
	case PRICING_STRATEGY_FIXED, PRICING_STRATEGY_DYNAMIC, PRICING_STRATEGY_OCCUPANCY_BASED,
		PRICING_STRATEGY_DEMAND_BASED, PRICING_STRATEGY_COMPETITOR_BASED:
		return nil
	}
	return ierr.NewError("invalid pricing strategy").
		WithHintf("Pricing strategy %s is not supported", s).
		Mark(ierr.ErrValidation)
}

func (t PricingRuleType) Validate() error {
	switch t {
	case RULE_TYPE_DATE_RANGE, RULE_TYPE_DAY_OF_WEEK, RULE_TYPE_OCCUPANCY_LEVEL,
		RULE_TYPE_ADVANCE_BOOKING, RULE_TYPE_MINIMUM_STAY, RULE_TYPE_MAXIMUM_STAY:
		return nil
	}
	return ierr.NewError("invalid pricing rule type").
		WithHintf("Pricing rule type %s is not supported", t).
		Mark(ierr.ErrValidation)
}

func (k RateModifierKind) Validate() error {
	switch k {
	case MODIFIER_KIND_PERCENTAGE, MODIFIER_KIND_FIXED_AMOUNT, MODIFIER_KIND_OVERRIDE:
		return nil
	}
	return ierr.NewError("invalid rate modifier kind").
		WithHintf("Rate modifier kind %s is not supported", k).
		Mark(ierr.ErrConfiguration)
}

func (s BookingStatus) Validate() error {
	switch s {
	case BOOKING_STATUS_PENDING, BOOKING_STATUS_CONFIRMED, BOOKING_STATUS_CANCELLED,
		BOOKING_STATUS_CHECKED_IN, BOOKING_STATUS_CHECKED_OUT:
		return nil
	}
	return ierr.NewError("invalid booking status").
		WithHintf("Booking status %s is not supported", s).
		Mark(ierr.ErrValidation)
}
