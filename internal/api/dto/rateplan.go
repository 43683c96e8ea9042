package dto

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
	"github.com/stayrate/stayrate/internal/validator"
)

type CreateRatePlanRequest struct {
	Name                string                             `json:"name" validate:"required"`
	Description         string                             `json:"description"`
	Type                types.RatePlanType                 `json:"type" validate:"required"`
	PropertyIDs         []string                           `json:"property_ids"`
	BaseRate            decimal.Decimal                    `json:"base_rate" validate:"required"`
	Currency            string                             `json:"currency" validate:"required,len=3"`
	PricingStrategy     types.PricingStrategy              `json:"pricing_strategy" validate:"required"`
	AllowDynamicPricing bool                               `json:"allow_dynamic_pricing"`
	AllowWeekendPricing bool                               `json:"allow_weekend_pricing"`
	WeekendMultiplier   *decimal.Decimal                   `json:"weekend_multiplier,omitempty"`
	MinimumRate         *decimal.Decimal                   `json:"minimum_rate,omitempty"`
	MaximumRate         *decimal.Decimal                   `json:"maximum_rate,omitempty"`
	MinimumStay         *int                               `json:"minimum_stay,omitempty" validate:"omitempty,min=1"`
	MaximumStay         *int                               `json:"maximum_stay,omitempty" validate:"omitempty,min=1"`
	AdvanceBookingDays  *rateplan.AdvanceBookingCondition  `json:"advance_booking_days,omitempty"`
	Rules               []CreatePricingRuleRequest         `json:"rules,omitempty"`
	Automation          *rateplan.AutomationSettings       `json:"automation,omitempty"`
}

func (r *CreateRatePlanRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.BaseRate.IsNegative() {
		return ierr.NewError("base rate must not be negative").
			WithHint("Base rate must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if !types.IsValidCurrency(strings.ToLower(r.Currency)) {
		return ierr.NewError("unknown currency code").
			WithHintf("Currency %s is not a supported ISO 4217 code", r.Currency).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateRatePlanRequest) ToRatePlan(ctx context.Context) (*rateplan.RatePlan, error) {
	plan := &rateplan.RatePlan{
		ID:                  types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RATE_PLAN),
		Name:                r.Name,
		Description:         r.Description,
		Type:                r.Type,
		PlanStatus:          types.RATE_PLAN_STATUS_DRAFT,
		PropertyIDs:         r.PropertyIDs,
		BaseRate:            r.BaseRate,
		Currency:            strings.ToLower(r.Currency),
		PricingStrategy:     r.PricingStrategy,
		AllowDynamicPricing: r.AllowDynamicPricing,
		AllowWeekendPricing: r.AllowWeekendPricing,
		WeekendMultiplier:   r.WeekendMultiplier,
		MinimumRate:         r.MinimumRate,
		MaximumRate:         r.MaximumRate,
		MinimumStay:         r.MinimumStay,
		MaximumStay:         r.MaximumStay,
		AdvanceBookingDays:  r.AdvanceBookingDays,
		Automation:          r.Automation,
		BaseModel:           types.GetDefaultBaseModel(ctx),
	}

	for _, ruleReq := range r.Rules {
		rule, err := ruleReq.ToPricingRule(plan.ID)
		if err != nil {
			return nil, err
		}
		plan.Rules = append(plan.Rules, *rule)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

type CreatePricingRuleRequest struct {
	Name           string                            `json:"name" validate:"required"`
	RuleType       types.PricingRuleType             `json:"rule_type" validate:"required"`
	Enabled        *bool                             `json:"enabled,omitempty"`
	Priority       int                               `json:"priority"`
	DateRange      *rateplan.DateRangeCondition      `json:"date_range,omitempty"`
	DaysOfWeek     *rateplan.DayOfWeekCondition      `json:"days_of_week,omitempty"`
	OccupancyRange *rateplan.OccupancyCondition      `json:"occupancy_range,omitempty"`
	AdvanceBooking *rateplan.AdvanceBookingCondition `json:"advance_booking,omitempty"`
	MinimumStay    *int                              `json:"minimum_stay,omitempty"`
	MaximumStay    *int                              `json:"maximum_stay,omitempty"`
	Modifiers      []CreateRateModifierRequest       `json:"modifiers" validate:"required,min=1,dive"`
}

func (r *CreatePricingRuleRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreatePricingRuleRequest) ToPricingRule(ratePlanID string) (*rateplan.PricingRule, error) {
	rule := &rateplan.PricingRule{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRICING_RULE),
		RatePlanID:     ratePlanID,
		Name:           r.Name,
		RuleType:       r.RuleType,
		Enabled:        lo.FromPtrOr(r.Enabled, true),
		Priority:       r.Priority,
		DateRange:      r.DateRange,
		DaysOfWeek:     r.DaysOfWeek,
		OccupancyRange: r.OccupancyRange,
		AdvanceBooking: r.AdvanceBooking,
		MinimumStay:    r.MinimumStay,
		MaximumStay:    r.MaximumStay,
	}

	for _, modReq := range r.Modifiers {
		rule.Modifiers = append(rule.Modifiers, modReq.ToRateModifier())
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

type CreateRateModifierRequest struct {
	Name            string                 `json:"name" validate:"required"`
	Kind            types.RateModifierKind `json:"kind" validate:"required"`
	Value           decimal.Decimal        `json:"value"`
	ApplyToBaseRate bool                   `json:"apply_to_base_rate"`
}

func (r *CreateRateModifierRequest) ToRateModifier() rateplan.RateModifier {
	return rateplan.RateModifier{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RATE_MODIFIER),
		Name:            r.Name,
		Kind:            r.Kind,
		Value:           r.Value,
		ApplyToBaseRate: r.ApplyToBaseRate,
	}
}

type UpdateRatePlanRequest struct {
	Name                *string                      `json:"name,omitempty"`
	Description         *string                      `json:"description,omitempty"`
	PlanStatus          *types.RatePlanStatus        `json:"plan_status,omitempty"`
	PropertyIDs         []string                     `json:"property_ids,omitempty"`
	BaseRate            *decimal.Decimal             `json:"base_rate,omitempty"`
	AllowWeekendPricing *bool                        `json:"allow_weekend_pricing,omitempty"`
	WeekendMultiplier   *decimal.Decimal             `json:"weekend_multiplier,omitempty"`
	MinimumRate         *decimal.Decimal             `json:"minimum_rate,omitempty"`
	MaximumRate         *decimal.Decimal             `json:"maximum_rate,omitempty"`
	MinimumStay         *int                         `json:"minimum_stay,omitempty"`
	MaximumStay         *int                         `json:"maximum_stay,omitempty"`
	Automation          *rateplan.AutomationSettings `json:"automation,omitempty"`
}

type RatePlanResponse struct {
	*rateplan.RatePlan
}

type ListRatePlansResponse struct {
	Plans  []RatePlanResponse `json:"plans"`
	Total  int                `json:"total"`
	Offset int                `json:"offset"`
	Limit  int                `json:"limit"`
}
