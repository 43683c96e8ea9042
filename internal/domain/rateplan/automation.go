package rateplan

import (
	"github.com/shopspring/decimal"
	ierr "github.com/stayrate/stayrate/internal/errors"
)

// AutomationSettings is the optional per-plan adjustment pipeline layered
// after rule-based resolution and before final rounding. It is governed by
// its own Enabled flag and bounded by its own hard constraints.
type AutomationSettings struct {
	Enabled bool `json:"enabled"`

	// OccupancyThresholds adjust the rate by a percentage once occupancy
	// reaches the threshold. The highest threshold at or below the current
	// occupancy wins.
	OccupancyThresholds []OccupancyThreshold `json:"occupancy_thresholds,omitempty"`

	// DemandMultiplier scales the rate for demand-based strategies.
	// Defaults to 1.0 when unset.
	DemandMultiplier *decimal.Decimal `json:"demand_multiplier,omitempty"`

	// CompetitorAdjustmentPct nudges the rate by a percentage relative to
	// the plan's competitive position
	CompetitorAdjustmentPct *decimal.Decimal `json:"competitor_adjustment_pct,omitempty"`

	// EarlyBird discounts stays booked at least DaysInAdvance ahead
	EarlyBird *TimeBasedDiscount `json:"early_bird,omitempty"`

	// LastMinute discounts stays booked at most DaysInAdvance ahead
	LastMinute *TimeBasedDiscount `json:"last_minute,omitempty"`

	Constraints AutomationConstraints `json:"constraints"`
}

// OccupancyThreshold pairs an occupancy threshold with a percentage
// adjustment
type OccupancyThreshold struct {
	ThresholdPct  float64         `json:"threshold_pct" validate:"min=0,max=100"`
	AdjustmentPct decimal.Decimal `json:"adjustment_pct"`
}

// TimeBasedDiscount is a lead-time gated percentage discount
type TimeBasedDiscount struct {
	DaysInAdvance int             `json:"days_in_advance" validate:"min=0"`
	DiscountPct   decimal.Decimal `json:"discount_pct"`
}

// AutomationConstraints are the hard bounds the automation pipeline must
// respect regardless of its adjustments
type AutomationConstraints struct {
	MinimumRate *decimal.Decimal `json:"minimum_rate,omitempty"`
	MaximumRate *decimal.Decimal `json:"maximum_rate,omitempty"`

	// MaxAdjustmentPerDay caps the absolute delta automation may introduce
	// on a single night
	MaxAdjustmentPerDay *decimal.Decimal `json:"max_adjustment_per_day,omitempty"`

	// UpdateFrequency is advisory for schedulers ex hourly, daily
	UpdateFrequency string `json:"update_frequency,omitempty"`
}

// Validate checks automation invariants
func (a *AutomationSettings) Validate() error {
	for _, t := range a.OccupancyThresholds {
		if t.ThresholdPct < 0 || t.ThresholdPct > 100 {
			return ierr.NewError("occupancy threshold outside 0-100").
				WithHint("Automation occupancy thresholds must be percentages").
				Mark(ierr.ErrConfiguration)
		}
	}
	if a.DemandMultiplier != nil && a.DemandMultiplier.IsNegative() {
		return ierr.NewError("demand multiplier is negative").
			WithHint("Automation demand multiplier must be zero or positive").
			Mark(ierr.ErrConfiguration)
	}
	c := a.Constraints
	if c.MinimumRate != nil && c.MaximumRate != nil && c.MinimumRate.GreaterThan(*c.MaximumRate) {
		return ierr.NewError("automation minimum rate exceeds maximum rate").
			WithHint("Automation constraints are inverted").
			Mark(ierr.ErrConfiguration)
	}
	return nil
}

// ClampRate applies the automation constraints to a rate
func (c AutomationConstraints) ClampRate(rate decimal.Decimal) decimal.Decimal {
	if c.MinimumRate != nil && rate.LessThan(*c.MinimumRate) {
		rate = *c.MinimumRate
	}
	if c.MaximumRate != nil && rate.GreaterThan(*c.MaximumRate) {
		rate = *c.MaximumRate
	}
	return rate
}
