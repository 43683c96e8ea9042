package rateplan

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayrate/stayrate/internal/types"
)

// RateCalendarEntry is the derived result of resolving one (plan, date)
// pair. Entries are produced fresh by each resolution and never mutated;
// a new resolution request produces a new entry.
type RateCalendarEntry struct {
	ID         string    `json:"id"`
	RatePlanID string    `json:"rate_plan_id"`
	Date       time.Time `json:"date"`

	// BaseRate is the plan's base rate the resolution started from
	BaseRate decimal.Decimal `json:"base_rate"`

	// PreClampRate is the running total after rules and the weekend step
	// but before clamping and rounding. Exposed as the extension point for
	// the automation pipeline.
	PreClampRate decimal.Decimal `json:"pre_clamp_rate"`

	// FinalRate is the clamped rate rounded to the currency's precision
	FinalRate decimal.Decimal `json:"final_rate"`

	Currency string `json:"currency"`

	// MatchedRuleIDs are the rules that matched, in application order
	MatchedRuleIDs []string `json:"matched_rule_ids"`

	// AppliedModifiers are the modifiers actually applied, flattened in
	// application order
	AppliedModifiers []AppliedModifier `json:"applied_modifiers"`

	// WeekendMultiplierApplied records whether the plan-level weekend
	// multiplier step fired for this night
	WeekendMultiplierApplied bool `json:"weekend_multiplier_applied"`

	// Occupancy snapshot at resolution time
	OccupancyPct   float64 `json:"occupancy_pct"`
	AvailableRooms int     `json:"available_rooms"`
	BookedRooms    int     `json:"booked_rooms"`
}

// AppliedModifier records one modifier application and the running total
// it produced
type AppliedModifier struct {
	ModifierID string                 `json:"modifier_id"`
	RuleID     string                 `json:"rule_id"`
	Name       string                 `json:"name"`
	Kind       types.RateModifierKind `json:"kind"`
	Value      decimal.Decimal        `json:"value"`
	// RunningRate is the rate after this modifier was applied
	RunningRate decimal.Decimal `json:"running_rate"`
}

// GetDisplayRate returns the final rate with the currency symbol ex $202.50
func (e *RateCalendarEntry) GetDisplayRate() string {
	return types.GetCurrencySymbol(e.Currency) + e.FinalRate.String()
}
