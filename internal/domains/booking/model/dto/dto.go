package dto

import (
	"time"
	"viagem/internal/domains/booking/model"
	"viagem/shared"
	"viagem/shared/constant"
	gDto "viagem/shared/dto"
	"viagem/shared/failure"
	gModel "viagem/shared/model"
	"viagem/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingRequest is the API shape of a reservation. The guest count
// travels as number_of_guests on the wire and is stored in the guests column;
// ToModel and FromModel own that mapping in both directions.
type CreateBookingRequest struct {
	ItemType        string `json:"item_type"        validate:"required,oneof=tour accommodation package event vehicle"`
	ItemID          string `json:"item_id"          validate:"required,uuid"`
	StartDate       string `json:"start_date"       validate:"required,calendardate"`
	EndDate         string `json:"end_date"         validate:"omitempty,calendardate"`
	NumberOfGuests  int    `json:"number_of_guests" validate:"required,gt=0"`
	PaymentMethod   string `json:"payment_method"   validate:"omitempty,max=50"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	startDate, err := time.Parse(constant.CalendarDateFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("invalid start_date format") // nolint:wrapcheck
	}

	// Single-day items omit end_date; it collapses onto start_date.
	endDate := startDate

	if c.EndDate != "" {
		endDate, err = time.Parse(constant.CalendarDateFormat, c.EndDate)
		if err != nil {
			return model.Booking{}, failure.BadRequestFromString("invalid end_date format") // nolint:wrapcheck
		}
	}

	if endDate.Before(startDate) {
		return model.Booking{}, failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	booking := model.Booking{
		ID:              uuid.NewString(),
		UserID:          user,
		ItemType:        c.ItemType,
		StartDate:       startDate,
		EndDate:         endDate,
		Guests:          c.NumberOfGuests,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		PaymentMethod:   c.PaymentMethod,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	itemID := c.ItemID

	switch c.ItemType {
	case model.ItemTypeTour:
		booking.TourID = &itemID
	case model.ItemTypeAccommodation:
		booking.AccommodationID = &itemID
	}

	return booking, nil
}

type UpdateBookingRequest struct {
	Status          string `db:"status"           json:"status"           validate:"omitempty,oneof=pending confirmed cancelled"`
	PaymentStatus   string `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=pending paid refunded"`
	PaymentMethod   string `db:"payment_method"   json:"payment_method"   validate:"omitempty,max=50"`
	SpecialRequests string `db:"special_requests" json:"special_requests" validate:"omitempty,max=1000"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	ItemType        string  `json:"item_type"`
	TourID          *string `json:"tour_id,omitempty"`
	AccommodationID *string `json:"accommodation_id,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	NumberOfGuests  int     `json:"number_of_guests"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentMethod   string  `json:"payment_method"`
	SpecialRequests string  `json:"special_requests"`
	gDto.Metadata
}

// FromModel maps the storage row back to the API shape, normalizing the
// free-text statuses on the way out.
func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.ItemType = mod.ItemType
	r.TourID = mod.TourID
	r.AccommodationID = mod.AccommodationID
	r.StartDate = mod.StartDate.Format(constant.CalendarDateFormat)
	r.EndDate = mod.EndDate.Format(constant.CalendarDateFormat)
	r.NumberOfGuests = mod.Guests
	r.TotalPrice = mod.TotalPrice
	r.Status = model.NormalizeStatus(mod.Status)
	r.PaymentStatus = model.NormalizePaymentStatus(mod.PaymentStatus)
	r.PaymentMethod = mod.PaymentMethod
	r.SpecialRequests = mod.SpecialRequests
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
