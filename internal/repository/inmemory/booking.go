package inmemory

import (
	"context"

	"github.com/stayrate/stayrate/internal/domain/booking"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// BookingStore implements booking.Repository
type BookingStore struct {
	*Store[*booking.Booking]
}

// NewBookingStore creates a new in-memory booking store
func NewBookingStore() *BookingStore {
	return &BookingStore{
		Store: NewStore[*booking.Booking](),
	}
}

func bookingFilterFn(ctx context.Context, b *booking.Booking, filter interface{}) bool {
	if b == nil {
		return false
	}

	if !checkTenant(ctx, b.TenantID) {
		return false
	}

	f, ok := filter.(*types.BookingFilter)
	if !ok || f == nil {
		return true
	}

	if f.QueryFilter != nil && f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.PropertyID != "" && b.PropertyID != f.PropertyID {
		return false
	}
	if f.RatePlanID != "" && b.RatePlanID != f.RatePlanID {
		return false
	}
	if f.BookingStatus != nil && b.BookingStatus != *f.BookingStatus {
		return false
	}

	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && b.CreatedAt.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && b.CreatedAt.After(*f.EndTime) {
			return false
		}
	}

	return true
}

func bookingSortFn(i, j *booking.Booking) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *BookingStore) Create(ctx context.Context, b *booking.Booking) error {
	if b == nil {
		return ierr.NewError("booking cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.Store.Create(ctx, b.ID, b)
}

func (s *BookingStore) Get(ctx context.Context, id string) (*booking.Booking, error) {
	return s.Store.Get(ctx, id)
}

func (s *BookingStore) GetByConfirmationCode(ctx context.Context, code string) (*booking.Booking, error) {
	bookings, err := s.Store.List(ctx, &types.BookingFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
	}, bookingFilterFn, nil)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		if b.ConfirmationCode == code {
			return b, nil
		}
	}

	return nil, ierr.NewError("booking not found").
		WithHintf("Booking with confirmation code %s was not found", code).
		Mark(ierr.ErrNotFound)
}

func (s *BookingStore) List(ctx context.Context, filter *types.BookingFilter) ([]*booking.Booking, error) {
	return s.Store.List(ctx, filter, bookingFilterFn, bookingSortFn)
}

func (s *BookingStore) Count(ctx context.Context, filter *types.BookingFilter) (int, error) {
	return s.Store.Count(ctx, filter, bookingFilterFn)
}

func (s *BookingStore) Update(ctx context.Context, b *booking.Booking) error {
	if b == nil {
		return ierr.NewError("booking cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.Store.Update(ctx, b.ID, b)
}
