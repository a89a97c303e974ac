package model

import (
	"time"
	"viagem/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldItemType        = "item_type"
	FieldTourID          = "tour_id"
	FieldAccommodationID = "accommodation_id"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldGuests          = "guests"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldPaymentMethod   = "payment_method"
	FieldSpecialRequests = "special_requests"

	ItemTypeTour          = "tour"
	ItemTypeAccommodation = "accommodation"
	ItemTypePackage       = "package"
	ItemTypeEvent         = "event"
	ItemTypeVehicle       = "vehicle"
)

type Booking struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	ItemType        string    `db:"item_type"`
	TourID          *string   `db:"tour_id"`
	AccommodationID *string   `db:"accommodation_id"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	Guests          int       `db:"guests"`
	TotalPrice      float64   `db:"total_price"`
	Status          string    `db:"status"`
	PaymentStatus   string    `db:"payment_status"`
	PaymentMethod   string    `db:"payment_method"`
	SpecialRequests string    `db:"special_requests"`
	model.Metadata
}
