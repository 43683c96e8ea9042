package types

import (
	"time"

	"github.com/samber/lo"
)

const (
	FILTER_DEFAULT_LIMIT = 50
	FILTER_DEFAULT_SORT  = "created_at"
	FILTER_DEFAULT_ORDER = "desc"

	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// BaseFilter defines common filtering capabilities
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	GetSort() string
	GetOrder() string
	Validate() error
	IsUnlimited() bool
}

// QueryFilter represents a generic query filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int    `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
	Status *Status `json:"status,omitempty" form:"status"`
	Sort   *string `json:"sort,omitempty" form:"sort"`
	Order  *string `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
}

// NewDefaultQueryFilter returns a filter with default pagination values
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FILTER_DEFAULT_LIMIT),
		Offset: lo.ToPtr(0),
		Status: lo.ToPtr(StatusActive),
		Sort:   lo.ToPtr(FILTER_DEFAULT_SORT),
		Order:  lo.ToPtr(FILTER_DEFAULT_ORDER),
	}
}

// NewNoLimitQueryFilter returns a filter with no pagination limits
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  nil,
		Offset: lo.ToPtr(0),
		Status: lo.ToPtr(StatusActive),
		Sort:   lo.ToPtr(FILTER_DEFAULT_SORT),
		Order:  lo.ToPtr(FILTER_DEFAULT_ORDER),
	}
}

// IsUnlimited returns true if this is an unlimited query
func (f QueryFilter) IsUnlimited() bool {
	return f.Limit == nil
}

func (f QueryFilter) GetLimit() int {
	if f.IsUnlimited() {
		return 0
	}
	return *f.Limit
}

func (f QueryFilter) GetOffset() int {
	if f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f QueryFilter) GetSort() string {
	if f.Sort == nil {
		return FILTER_DEFAULT_SORT
	}
	return *f.Sort
}

func (f QueryFilter) GetOrder() string {
	if f.Order == nil {
		return FILTER_DEFAULT_ORDER
	}
	return *f.Order
}

func (f QueryFilter) GetStatus() Status {
	if f.Status == nil {
		return StatusActive
	}
	return *f.Status
}

func (f QueryFilter) Validate() error {
	return nil
}

// TimeRangeFilter restricts results to a created-at window
type TimeRangeFilter struct {
	StartTime *time.Time `json:"start_time,omitempty" form:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty" form:"end_time"`
}

// RatePlanFilter is the query filter for listing rate plans
type RatePlanFilter struct {
	*QueryFilter
	*TimeRangeFilter
	PropertyID string           `json:"property_id,omitempty" form:"property_id"`
	PlanStatus *RatePlanStatus  `json:"plan_status,omitempty" form:"plan_status"`
	PlanType   *RatePlanType    `json:"plan_type,omitempty" form:"plan_type"`
	Strategy   *PricingStrategy `json:"strategy,omitempty" form:"strategy"`
}

// NewRatePlanFilter returns a rate plan filter with default pagination
func NewRatePlanFilter() *RatePlanFilter {
	return &RatePlanFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *RatePlanFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.PlanStatus != nil {
		if err := f.PlanStatus.Validate(); err != nil {
			return err
		}
	}
	if f.PlanType != nil {
		if err := f.PlanType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PropertyFilter is the query filter for listing properties
type PropertyFilter struct {
	*QueryFilter
	*TimeRangeFilter
	City    string `json:"city,omitempty" form:"city"`
	Country string `json:"country,omitempty" form:"country"`
}

func NewPropertyFilter() *PropertyFilter {
	return &PropertyFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *PropertyFilter) Validate() error {
	if f.QueryFilter != nil {
		return f.QueryFilter.Validate()
	}
	return nil
}

// BookingFilter is the query filter for listing bookings
type BookingFilter struct {
	*QueryFilter
	*TimeRangeFilter
	PropertyID    string         `json:"property_id,omitempty" form:"property_id"`
	RatePlanID    string         `json:"rate_plan_id,omitempty" form:"rate_plan_id"`
	BookingStatus *BookingStatus `json:"booking_status,omitempty" form:"booking_status"`
}

func NewBookingFilter() *BookingFilter {
	return &BookingFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *BookingFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.BookingStatus != nil {
		return f.BookingStatus.Validate()
	}
	return nil
}
