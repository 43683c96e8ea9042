package rateplan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

func TestRateModifier_Apply(t *testing.T) {
	baseRate := decimal.NewFromInt(150)

	tests := []struct {
		name     string
		modifier RateModifier
		running  decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name: "percentage_on_base_rate",
			modifier: RateModifier{
				Kind:            types.MODIFIER_KIND_PERCENTAGE,
				Value:           decimal.NewFromInt(20),
				ApplyToBaseRate: true,
			},
			running:  baseRate,
			expected: decimal.NewFromInt(180),
		},
		{
			name: "percentage_on_running_total",
			modifier: RateModifier{
				Kind:  types.MODIFIER_KIND_PERCENTAGE,
				Value: decimal.NewFromInt(10),
			},
			running:  decimal.NewFromInt(200),
			expected: decimal.NewFromInt(220),
		},
		{
			name: "negative_percentage",
			modifier: RateModifier{
				Kind:            types.MODIFIER_KIND_PERCENTAGE,
				Value:           decimal.NewFromInt(-50),
				ApplyToBaseRate: true,
			},
			running:  baseRate,
			expected: decimal.NewFromInt(75),
		},
		{
			name: "fixed_amount_positive",
			modifier: RateModifier{
				Kind:  types.MODIFIER_KIND_FIXED_AMOUNT,
				Value: decimal.NewFromInt(25),
			},
			running:  baseRate,
			expected: decimal.NewFromInt(175),
		},
		{
			name: "fixed_amount_negative",
			modifier: RateModifier{
				Kind:  types.MODIFIER_KIND_FIXED_AMOUNT,
				Value: decimal.NewFromInt(-30),
			},
			running:  baseRate,
			expected: decimal.NewFromInt(120),
		},
		{
			name: "override_discards_running_total",
			modifier: RateModifier{
				Kind:  types.MODIFIER_KIND_OVERRIDE,
				Value: decimal.NewFromInt(99),
			},
			running:  decimal.NewFromInt(500),
			expected: decimal.NewFromInt(99),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.modifier.Apply(tt.running, baseRate)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestRateModifier_Apply_UnknownKind(t *testing.T) {
	modifier := RateModifier{
		Kind:  types.RateModifierKind("BOGUS"),
		Value: decimal.NewFromInt(10),
	}

	running := decimal.NewFromInt(150)
	got, err := modifier.Apply(running, running)
	require.Error(t, err)
	assert.True(t, ierr.IsConfiguration(err))
	assert.True(t, running.Equal(got), "running value must be returned unchanged")
}
