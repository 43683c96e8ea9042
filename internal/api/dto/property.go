package dto

import (
	"context"

	"github.com/stayrate/stayrate/internal/domain/property"
	"github.com/stayrate/stayrate/internal/types"
	"github.com/stayrate/stayrate/internal/validator"
)

type CreatePropertyRequest struct {
	Name           string                  `json:"name" validate:"required"`
	Description    string                  `json:"description"`
	Address        string                  `json:"address"`
	City           string                  `json:"city"`
	Country        string                  `json:"country"`
	TotalRooms     int                     `json:"total_rooms" validate:"min=0"`
	AvailableRooms int                     `json:"available_rooms" validate:"min=0"`
	RoomTypes      []CreateRoomTypeRequest `json:"room_types,omitempty" validate:"omitempty,dive"`
}

func (r *CreatePropertyRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreatePropertyRequest) ToProperty(ctx context.Context) (*property.Property, error) {
	p := &property.Property{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROPERTY),
		Name:           r.Name,
		Description:    r.Description,
		Address:        r.Address,
		City:           r.City,
		Country:        r.Country,
		TotalRooms:     r.TotalRooms,
		AvailableRooms: r.AvailableRooms,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	for _, rt := range r.RoomTypes {
		p.RoomTypes = append(p.RoomTypes, rt.ToRoomType())
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type CreateRoomTypeRequest struct {
	Code         string `json:"code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	MaxOccupancy int    `json:"max_occupancy" validate:"min=1"`
	RoomCount    int    `json:"room_count" validate:"min=0"`
}

func (r *CreateRoomTypeRequest) ToRoomType() property.RoomType {
	return property.RoomType{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ROOM_TYPE),
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		MaxOccupancy: r.MaxOccupancy,
		RoomCount:    r.RoomCount,
	}
}

type UpdatePropertyRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	TotalRooms     *int    `json:"total_rooms,omitempty" validate:"omitempty,min=0"`
	AvailableRooms *int    `json:"available_rooms,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdatePropertyRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type PropertyResponse struct {
	*property.Property
	OccupancyPct float64 `json:"occupancy_pct"`
}

type ListPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int                `json:"total"`
	Offset     int                `json:"offset"`
	Limit      int                `json:"limit"`
}
