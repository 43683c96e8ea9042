package rateplan

import (
	"context"

	"github.com/stayrate/stayrate/internal/types"
)

// Repository is the persistence boundary for rate plans
type Repository interface {
	Create(ctx context.Context, plan *RatePlan) error
	Get(ctx context.Context, id string) (*RatePlan, error)
	List(ctx context.Context, filter *types.RatePlanFilter) ([]*RatePlan, error)
	Count(ctx context.Context, filter *types.RatePlanFilter) (int, error)
	Update(ctx context.Context, plan *RatePlan) error
	Delete(ctx context.Context, id string) error
}
