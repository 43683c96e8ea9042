package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/stayrate/stayrate/internal/api/dto"
	"github.com/stayrate/stayrate/internal/cache"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// RatePlanService manages rate plans and their pricing rules
type RatePlanService interface {
	CreateRatePlan(ctx context.Context, req dto.CreateRatePlanRequest) (*dto.RatePlanResponse, error)
	GetRatePlan(ctx context.Context, id string) (*dto.RatePlanResponse, error)
	ListRatePlans(ctx context.Context, filter *types.RatePlanFilter) (*dto.ListRatePlansResponse, error)
	UpdateRatePlan(ctx context.Context, id string, req dto.UpdateRatePlanRequest) (*dto.RatePlanResponse, error)
	DeleteRatePlan(ctx context.Context, id string) error
	AddPricingRule(ctx context.Context, planID string, req dto.CreatePricingRuleRequest) (*dto.RatePlanResponse, error)
	RemovePricingRule(ctx context.Context, planID, ruleID string) (*dto.RatePlanResponse, error)
}

type ratePlanService struct {
	ServiceParams
}

// NewRatePlanService creates a new rate plan service
func NewRatePlanService(params ServiceParams) RatePlanService {
	return &ratePlanService{ServiceParams: params}
}

func (s *ratePlanService) CreateRatePlan(ctx context.Context, req dto.CreateRatePlanRequest) (*dto.RatePlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan, err := req.ToRatePlan(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.RatePlanRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.Logger.Infow("created rate plan",
		"rate_plan_id", plan.ID,
		"name", plan.Name,
		"rules", len(plan.Rules))

	return &dto.RatePlanResponse{RatePlan: plan}, nil
}

func (s *ratePlanService) GetRatePlan(ctx context.Context, id string) (*dto.RatePlanResponse, error) {
	if id == "" {
		return nil, ierr.NewError("rate plan id is required").
			WithHint("Rate plan ID is required").
			Mark(ierr.ErrValidation)
	}

	key := cache.GenerateKey(cache.PrefixRatePlan, id)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if plan, ok := cached.(*rateplan.RatePlan); ok {
			return &dto.RatePlanResponse{RatePlan: plan}, nil
		}
	}

	plan, err := s.RatePlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, plan, cache.DefaultExpiration)
	return &dto.RatePlanResponse{RatePlan: plan}, nil
}

func (s *ratePlanService) ListRatePlans(ctx context.Context, filter *types.RatePlanFilter) (*dto.ListRatePlansResponse, error) {
	if filter == nil {
		filter = types.NewRatePlanFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	plans, err := s.RatePlanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.RatePlanRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListRatePlansResponse{
		Plans: lo.Map(plans, func(p *rateplan.RatePlan, _ int) dto.RatePlanResponse {
			return dto.RatePlanResponse{RatePlan: p}
		}),
		Total:  total,
		Offset: filter.GetOffset(),
		Limit:  filter.GetLimit(),
	}, nil
}

func (s *ratePlanService) UpdateRatePlan(ctx context.Context, id string, req dto.UpdateRatePlanRequest) (*dto.RatePlanResponse, error) {
	existing, err := s.RatePlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply the request to a copy so a rejected update never leaves a
	// partially mutated plan in the store.
	updated := *existing
	plan := &updated

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.PlanStatus != nil {
		plan.PlanStatus = *req.PlanStatus
	}
	if req.PropertyIDs != nil {
		plan.PropertyIDs = req.PropertyIDs
	}
	if req.BaseRate != nil {
		plan.BaseRate = *req.BaseRate
	}
	if req.AllowWeekendPricing != nil {
		plan.AllowWeekendPricing = *req.AllowWeekendPricing
	}
	if req.WeekendMultiplier != nil {
		plan.WeekendMultiplier = req.WeekendMultiplier
	}
	if req.MinimumRate != nil {
		plan.MinimumRate = req.MinimumRate
	}
	if req.MaximumRate != nil {
		plan.MaximumRate = req.MaximumRate
	}
	if req.MinimumStay != nil {
		plan.MinimumStay = req.MinimumStay
	}
	if req.MaximumStay != nil {
		plan.MaximumStay = req.MaximumStay
	}
	if req.Automation != nil {
		plan.Automation = req.Automation
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if err := s.RatePlanRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixRatePlan, id))
	return &dto.RatePlanResponse{RatePlan: plan}, nil
}

func (s *ratePlanService) DeleteRatePlan(ctx context.Context, id string) error {
	existing, err := s.RatePlanRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	// Plans are archived, never hard deleted, so historical bookings keep
	// a resolvable back-reference.
	archived := *existing
	archived.PlanStatus = types.RATE_PLAN_STATUS_ARCHIVED
	if err := s.RatePlanRepo.Update(ctx, &archived); err != nil {
		return err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixRatePlan, id))
	s.Logger.Infow("archived rate plan", "rate_plan_id", id)
	return nil
}

func (s *ratePlanService) AddPricingRule(ctx context.Context, planID string, req dto.CreatePricingRuleRequest) (*dto.RatePlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.RatePlanRepo.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	rule, err := req.ToPricingRule(existing.ID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	plan := &updated
	plan.Rules = append(append([]rateplan.PricingRule{}, existing.Rules...), *rule)
	if err := s.RatePlanRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixRatePlan, planID))
	s.Logger.Infow("added pricing rule",
		"rate_plan_id", planID,
		"rule_id", rule.ID,
		"rule_type", rule.RuleType)

	return &dto.RatePlanResponse{RatePlan: plan}, nil
}

func (s *ratePlanService) RemovePricingRule(ctx context.Context, planID, ruleID string) (*dto.RatePlanResponse, error) {
	existing, err := s.RatePlanRepo.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	remaining := lo.Reject(existing.Rules, func(r rateplan.PricingRule, _ int) bool {
		return r.ID == ruleID
	})
	if len(remaining) == len(existing.Rules) {
		return nil, ierr.NewError("pricing rule not found").
			WithHintf("Rate plan %s has no rule %s", planID, ruleID).
			Mark(ierr.ErrNotFound)
	}

	updated := *existing
	plan := &updated
	plan.Rules = remaining
	if err := s.RatePlanRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixRatePlan, planID))
	return &dto.RatePlanResponse{RatePlan: plan}, nil
}
