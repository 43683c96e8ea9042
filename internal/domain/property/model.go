package property

import (
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// Property is a bookable hotel or rental property. Room counts feed the
// occupancy context used by rate resolution.
type Property struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Address     string `db:"address" json:"address"`
	City        string `db:"city" json:"city"`
	Country     string `db:"country" json:"country"`

	// TotalRooms and AvailableRooms are the inventory snapshot
	TotalRooms     int `db:"total_rooms" json:"total_rooms"`
	AvailableRooms int `db:"available_rooms" json:"available_rooms"`

	// RoomTypes are the bookable room categories at this property
	RoomTypes []RoomType `db:"room_types,jsonb" json:"room_types"`

	types.BaseModel
}

// RoomType is a bookable room category at a property
type RoomType struct {
	ID           string `db:"id" json:"id"`
	Code         string `db:"code" json:"code"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
	MaxOccupancy int    `db:"max_occupancy" json:"max_occupancy"`
	RoomCount    int    `db:"room_count" json:"room_count"`
}

// OccupancyPct returns the property's occupancy as a percentage 0-100
func (p *Property) OccupancyPct() float64 {
	if p.TotalRooms <= 0 {
		return 0
	}
	booked := p.TotalRooms - p.AvailableRooms
	if booked < 0 {
		booked = 0
	}
	return float64(booked) / float64(p.TotalRooms) * 100
}

// BookedRooms returns the number of rooms currently booked
func (p *Property) BookedRooms() int {
	booked := p.TotalRooms - p.AvailableRooms
	if booked < 0 {
		return 0
	}
	return booked
}

// Validate checks property invariants
func (p *Property) Validate() error {
	if p.Name == "" {
		return ierr.NewError("property name is required").
			WithHint("Property name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if p.TotalRooms < 0 {
		return ierr.NewError("total rooms must not be negative").
			WithHint("Room counts must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if p.AvailableRooms < 0 || p.AvailableRooms > p.TotalRooms {
		return ierr.NewError("available rooms outside valid range").
			WithHint("Available rooms must be between zero and total rooms").
			Mark(ierr.ErrValidation)
	}
	return nil
}
