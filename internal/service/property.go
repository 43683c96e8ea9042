package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/stayrate/stayrate/internal/api/dto"
	"github.com/stayrate/stayrate/internal/cache"
	"github.com/stayrate/stayrate/internal/domain/property"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// PropertyService manages properties and their room inventory
type PropertyService interface {
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	GetProperty(ctx context.Context, id string) (*dto.PropertyResponse, error)
	ListProperties(ctx context.Context, filter *types.PropertyFilter) (*dto.ListPropertiesResponse, error)
	UpdateProperty(ctx context.Context, id string, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	DeleteProperty(ctx context.Context, id string) error
}

type propertyService struct {
	ServiceParams
}

// NewPropertyService creates a new property service
func NewPropertyService(params ServiceParams) PropertyService {
	return &propertyService{ServiceParams: params}
}

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := req.ToProperty(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.PropertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created property", "property_id", p.ID, "name", p.Name)
	return newPropertyResponse(p), nil
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	if id == "" {
		return nil, ierr.NewError("property id is required").
			WithHint("Property ID is required").
			Mark(ierr.ErrValidation)
	}

	key := cache.GenerateKey(cache.PrefixProperty, id)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if p, ok := cached.(*property.Property); ok {
			return newPropertyResponse(p), nil
		}
	}

	p, err := s.PropertyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, p, cache.DefaultExpiration)
	return newPropertyResponse(p), nil
}

func (s *propertyService) ListProperties(ctx context.Context, filter *types.PropertyFilter) (*dto.ListPropertiesResponse, error) {
	if filter == nil {
		filter = types.NewPropertyFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	properties, err := s.PropertyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.PropertyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListPropertiesResponse{
		Properties: lo.Map(properties, func(p *property.Property, _ int) dto.PropertyResponse {
			return *newPropertyResponse(p)
		}),
		Total:  total,
		Offset: filter.GetOffset(),
		Limit:  filter.GetLimit(),
	}, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, id string, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.PropertyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply the request to a copy so a rejected update never leaves a
	// partially mutated property in the store.
	updated := *existing
	p := &updated

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Country != nil {
		p.Country = *req.Country
	}
	if req.TotalRooms != nil {
		p.TotalRooms = *req.TotalRooms
	}
	if req.AvailableRooms != nil {
		p.AvailableRooms = *req.AvailableRooms
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.PropertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixProperty, id))
	return newPropertyResponse(p), nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.PropertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixProperty, id))
	s.Logger.Infow("deleted property", "property_id", id)
	return nil
}

func newPropertyResponse(p *property.Property) *dto.PropertyResponse {
	return &dto.PropertyResponse{
		Property:     p,
		OccupancyPct: p.OccupancyPct(),
	}
}
