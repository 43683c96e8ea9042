package inmemory

import (
	"context"

	"github.com/samber/lo"
	"github.com/stayrate/stayrate/internal/domain/rateplan"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// RatePlanStore implements rateplan.Repository
type RatePlanStore struct {
	*Store[*rateplan.RatePlan]
}

// NewRatePlanStore creates a new in-memory rate plan store
func NewRatePlanStore() *RatePlanStore {
	return &RatePlanStore{
		Store: NewStore[*rateplan.RatePlan](),
	}
}

func ratePlanFilterFn(ctx context.Context, p *rateplan.RatePlan, filter interface{}) bool {
	if p == nil {
		return false
	}

	if !checkTenant(ctx, p.TenantID) {
		return false
	}

	f, ok := filter.(*types.RatePlanFilter)
	if !ok || f == nil {
		return true
	}

	if f.QueryFilter != nil && f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.PropertyID != "" && !lo.Contains(p.PropertyIDs, f.PropertyID) {
		return false
	}
	if f.PlanStatus != nil && p.PlanStatus != *f.PlanStatus {
		return false
	}
	if f.PlanType != nil && p.Type != *f.PlanType {
		return false
	}
	if f.Strategy != nil && p.PricingStrategy != *f.Strategy {
		return false
	}

	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && p.CreatedAt.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && p.CreatedAt.After(*f.EndTime) {
			return false
		}
	}

	return true
}

func ratePlanSortFn(i, j *rateplan.RatePlan) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *RatePlanStore) Create(ctx context.Context, p *rateplan.RatePlan) error {
	if p == nil {
		return ierr.NewError("rate plan cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.Store.Create(ctx, p.ID, p)
}

func (s *RatePlanStore) Get(ctx context.Context, id string) (*rateplan.RatePlan, error) {
	return s.Store.Get(ctx, id)
}

func (s *RatePlanStore) List(ctx context.Context, filter *types.RatePlanFilter) ([]*rateplan.RatePlan, error) {
	return s.Store.List(ctx, filter, ratePlanFilterFn, ratePlanSortFn)
}

func (s *RatePlanStore) Count(ctx context.Context, filter *types.RatePlanFilter) (int, error) {
	return s.Store.Count(ctx, filter, ratePlanFilterFn)
}

func (s *RatePlanStore) Update(ctx context.Context, p *rateplan.RatePlan) error {
	if p == nil {
		return ierr.NewError("rate plan cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.Store.Update(ctx, p.ID, p)
}

func (s *RatePlanStore) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}
