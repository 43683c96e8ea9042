package property

import (
	"context"

	"github.com/stayrate/stayrate/internal/types"
)

// Repository is the persistence boundary for properties
type Repository interface {
	Create(ctx context.Context, property *Property) error
	Get(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context, filter *types.PropertyFilter) ([]*Property, error)
	Count(ctx context.Context, filter *types.PropertyFilter) (int, error)
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id string) error
}
