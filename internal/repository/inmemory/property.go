package inmemory

import (
	"context"
	"strings"

	"github.com/stayrate/stayrate/internal/domain/property"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// PropertyStore implements property.Repository
type PropertyStore struct {
	*Store[*property.Property]
}

// NewPropertyStore creates a new in-memory property store
func NewPropertyStore() *PropertyStore {
	return &PropertyStore{
		Store: NewStore[*property.Property](),
	}
}

func propertyFilterFn(ctx context.Context, p *property.Property, filter interface{}) bool {
	if p == nil {
		return false
	}

	if !checkTenant(ctx, p.TenantID) {
		return false
	}

	f, ok := filter.(*types.PropertyFilter)
	if !ok || f == nil {
		return true
	}

	if f.QueryFilter != nil && f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.City != "" && !strings.EqualFold(p.City, f.City) {
		return false
	}
	if f.Country != "" && !strings.EqualFold(p.Country, f.Country) {
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

func propertySortFn(i, j *property.Property) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *PropertyStore) Create(ctx context.Context, p *property.Property) error {
	if p == nil {
		return ierr.NewError("property cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.Store.Create(ctx, p.ID, p)
}

func (s *PropertyStore) Get(ctx context.Context, id string) (*property.Property, error) {
	return s.Store.Get(ctx, id)
}

func (s *PropertyStore) List(ctx context.Context, filter *types.PropertyFilter) ([]*property.Property, error) {
	return s.Store.List(ctx, filter, propertyFilterFn, propertySortFn)
}

func (s *PropertyStore) Count(ctx context.Context, filter *types.PropertyFilter) (int, error) {
	return s.Store.Count(ctx, filter, propertyFilterFn)
}

func (s *PropertyStore) Update(ctx context.Context, p *property.Property) error {
	if p == nil {
		return ierr.NewError("property cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.Store.Update(ctx, p.ID, p)
}

func (s *PropertyStore) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}
