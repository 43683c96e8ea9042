package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/stayrate/stayrate/internal/api/dto"
	"github.com/stayrate/stayrate/internal/domain/booking"
	ierr "github.com/stayrate/stayrate/internal/errors"
	"github.com/stayrate/stayrate/internal/types"
)

// BookingService creates bookings from accepted stay quotes and manages
// their lifecycle
type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, id string) (*dto.BookingResponse, error)
	GetBookingByConfirmationCode(ctx context.Context, code string) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, filter *types.BookingFilter) (*dto.ListBookingsResponse, error)
	CancelBooking(ctx context.Context, id string) (*dto.BookingResponse, error)
}

type bookingService struct {
	ServiceParams
	quoter StayQuoteService
}

// NewBookingService creates a new booking service
func NewBookingService(params ServiceParams, quoter StayQuoteService) BookingService {
	return &bookingService{ServiceParams: params, quoter: quoter}
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.RatePlanRepo.Get(ctx, req.RatePlanID)
	if err != nil {
		return nil, err
	}

	prop, err := s.PropertyRepo.Get(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	if !lo.Contains(plan.PropertyIDs, prop.ID) {
		return nil, ierr.NewError("rate plan does not cover property").
			WithHintf("Rate plan %s does not apply to property %s", plan.Name, prop.Name).
			Mark(ierr.ErrInvalidOperation)
	}

	if prop.AvailableRooms <= 0 {
		return nil, ierr.NewError("no rooms available").
			WithHintf("Property %s has no rooms available", prop.Name).
			Mark(ierr.ErrInvalidOperation)
	}

	checkIn, err := types.ParseCalendarDate(req.CheckIn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Check-in date is malformed").
			Mark(ierr.ErrInvalidDate)
	}
	checkOut, err := types.ParseCalendarDate(req.CheckOut)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Check-out date is malformed").
			Mark(ierr.ErrInvalidDate)
	}

	bookedAt := time.Now().UTC()
	quote, err := s.quoter.QuoteStay(ctx, plan, checkIn, checkOut, QuoteContext{
		OccupancyPct:       prop.OccupancyPct(),
		AdvanceBookingDays: types.DaysUntil(bookedAt, checkIn),
		TaxRatePct:         req.TaxRatePct,
		TaxAmount:          req.TaxAmount,
		FeeAmount:          req.FeeAmount,
		DiscountAmount:     req.DiscountAmount,
	})
	if err != nil {
		return nil, err
	}

	b := &booking.Booking{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BOOKING),
		ConfirmationCode: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_BOOKING),
		PropertyID:       prop.ID,
		RatePlanID:       plan.ID,
		RoomTypeID:       req.RoomTypeID,
		GuestName:        req.GuestName,
		GuestEmail:       req.GuestEmail,
		Guests:           req.Guests,
		CheckIn:          types.TruncateToDate(checkIn),
		CheckOut:         types.TruncateToDate(checkOut),
		Nights:           quote.Nights,
		BookedAt:         bookedAt,
		Subtotal:         quote.Subtotal,
		Taxes:            quote.Taxes,
		Fees:             quote.Fees,
		Discount:         quote.Discount,
		Total:            quote.Total,
		Currency:         quote.Currency,
		BookingStatus:    types.BOOKING_STATUS_CONFIRMED,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// Reserve a room before the booking is written so a failed inventory
	// update cannot leave a confirmed booking with no room held
	reserved := *prop
	reserved.AvailableRooms--
	if err := s.PropertyRepo.Update(ctx, &reserved); err != nil {
		return nil, err
	}

	if err := s.BookingRepo.Create(ctx, b); err != nil {
		released := reserved
		released.AvailableRooms++
		if rbErr := s.PropertyRepo.Update(ctx, &released); rbErr != nil {
			s.Logger.Errorw("failed to release room after booking write failure",
				"property_id", prop.ID, "error", rbErr)
		}
		return nil, err
	}

	s.Logger.Infow("created booking",
		"booking_id", b.ID,
		"confirmation_code", b.ConfirmationCode,
		"rate_plan_id", plan.ID,
		"property_id", prop.ID,
		"total", b.Total)

	return dto.NewBookingResponse(b), nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*dto.BookingResponse, error) {
	if id == "" {
		return nil, ierr.NewError("booking id is required").
			WithHint("Booking ID is required").
			Mark(ierr.ErrValidation)
	}

	b, err := s.BookingRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewBookingResponse(b), nil
}

func (s *bookingService) GetBookingByConfirmationCode(ctx context.Context, code string) (*dto.BookingResponse, error) {
	if code == "" {
		return nil, ierr.NewError("confirmation code is required").
			WithHint("Confirmation code is required").
			Mark(ierr.ErrValidation)
	}

	b, err := s.BookingRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return dto.NewBookingResponse(b), nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter *types.BookingFilter) (*dto.ListBookingsResponse, error) {
	if filter == nil {
		filter = types.NewBookingFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	bookings, err := s.BookingRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.BookingRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListBookingsResponse{
		Bookings: lo.Map(bookings, func(b *booking.Booking, _ int) *dto.BookingResponse {
			return dto.NewBookingResponse(b)
		}),
		Total:  total,
		Offset: filter.GetOffset(),
		Limit:  filter.GetLimit(),
	}, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id string) (*dto.BookingResponse, error) {
	b, err := s.BookingRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.CanCancel() {
		return nil, ierr.NewError("booking cannot be cancelled").
			WithHintf("Booking %s has status %s and cannot be cancelled", b.ConfirmationCode, b.BookingStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	cancelled := *b
	cancelled.BookingStatus = types.BOOKING_STATUS_CANCELLED
	cancelled.UpdatedAt = time.Now().UTC()
	if err := s.BookingRepo.Update(ctx, &cancelled); err != nil {
		return nil, err
	}
	b = &cancelled

	// Release the room back to the property's inventory snapshot
	if prop, err := s.PropertyRepo.Get(ctx, b.PropertyID); err == nil {
		if prop.AvailableRooms < prop.TotalRooms {
			released := *prop
			released.AvailableRooms++
			if err := s.PropertyRepo.Update(ctx, &released); err != nil {
				s.Logger.Warnw("failed to release room on cancellation",
					"booking_id", b.ID, "property_id", prop.ID, "error", err)
			}
		}
	}

	s.Logger.Infow("cancelled booking", "booking_id", b.ID, "confirmation_code", b.ConfirmationCode)
	return dto.NewBookingResponse(b), nil
}
