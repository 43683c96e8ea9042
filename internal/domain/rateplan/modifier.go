package rateplan

import (
	"github.com/shopspring/decimal"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// Apply computes the new running rate after this modifier.
//
// PERCENTAGE adds value% of either the plan's base rate (ApplyToBaseRate)
// or the running total. FIXED_AMOUNT adds a sign-carrying currency delta.
// OVERRIDE replaces the running total with Value, discarding any prior
// accumulation. An unknown kind is a configuration error surfaced to the
// caller; the running value is returned unchanged alongside it.
func (m *RateModifier) Apply(running, baseRate decimal.Decimal) (decimal.Decimal, error) {
	switch m.Kind {
	case types.MODIFIER_KIND_PERCENTAGE:
		basis := running
		if m.ApplyToBaseRate {
			basis = baseRate
		}
		delta := basis.Mul(m.Value).Div(decimal.NewFromInt(100))
		return running.Add(delta), nil
	case types.MODIFIER_KIND_FIXED_AMOUNT:
		return running.Add(m.Value), nil
	case types.MODIFIER_KIND_OVERRIDE:
		return m.Value, nil
	default:
		return running, ierr.NewError("unknown rate modifier kind").
			WithHintf("Modifier %s has unsupported kind %s", m.Name, m.Kind).
			WithReportableDetails(map[string]any{"modifier_id": m.ID, "kind": m.Kind}).
			Mark(ierr.ErrConfiguration)
	}
}
