package booking

import (
	"context"

	"github.com/stayrate/stayrate/internal/types"
)

// Repository is the persistence boundary for bookings
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	Get(ctx context.Context, id string) (*Booking, error)
	GetByConfirmationCode(ctx context.Context, code string) (*Booking, error)
	List(ctx context.Context, filter *types.BookingFilter) ([]*Booking, error)
	Count(ctx context.Context, filter *types.BookingFilter) (int, error)
	Update(ctx context.Context, booking *Booking) error
}
