package dto_test

import (
	"testing"
	"time"

	"viagem/internal/domains/booking/model"
	"viagem/internal/domains/booking/model/dto"
	gModel "viagem/shared/model"
	"viagem/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		ItemType:        model.ItemTypeAccommodation,
		ItemID:          "7b8a3c1e-17a4-4b5e-9f3d-2f8f33a6a001",
		StartDate:       "2026-09-10",
		EndDate:         "2026-09-12",
		NumberOfGuests:  3,
		PaymentMethod:   "pix",
		SpecialRequests: "late check-in",
	}

	userID := "test-user-id"
	booking, err := req.ToModel(userID)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, model.ItemTypeAccommodation, booking.ItemType)
	require.NotNil(t, booking.AccommodationID)
	assert.Equal(t, req.ItemID, *booking.AccommodationID)
	assert.Nil(t, booking.TourID)

	// The API field number_of_guests lands in the guests column.
	assert.Equal(t, req.NumberOfGuests, booking.Guests)

	assert.Equal(t, "2026-09-10", booking.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-09-12", booking.EndDate.Format("2006-01-02"))
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, "pix", booking.PaymentMethod)
	assert.Equal(t, userID, booking.CreatedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel_TourDefaultsEndDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		ItemType:       model.ItemTypeTour,
		ItemID:         "c3de1a50-9d14-4f7a-8a6a-5b3f44a6a002",
		StartDate:      "2026-10-01",
		NumberOfGuests: 2,
	}

	booking, err := req.ToModel("test-user-id")
	require.NoError(t, err)

	require.NotNil(t, booking.TourID)
	assert.Equal(t, req.ItemID, *booking.TourID)
	assert.Nil(t, booking.AccommodationID)
	assert.True(t, booking.StartDate.Equal(booking.EndDate), "single-day items collapse end_date onto start_date")
}

func TestCreateBookingRequest_ToModel_InvalidDates(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
	}{
		{name: "bad start date", startDate: "10-09-2026", endDate: "2026-09-12"},
		{name: "bad end date", startDate: "2026-09-10", endDate: "not-a-date"},
		{name: "end before start", startDate: "2026-09-12", endDate: "2026-09-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				ItemType:       model.ItemTypeAccommodation,
				ItemID:         "7b8a3c1e-17a4-4b5e-9f3d-2f8f33a6a001",
				StartDate:      tt.startDate,
				EndDate:        tt.endDate,
				NumberOfGuests: 2,
			}

			_, err := req.ToModel("test-user-id")
			assert.Error(t, err)
		})
	}
}

func TestCreateBookingRequest_ToModel_DistinctIDs(t *testing.T) {
	req := dto.CreateBookingRequest{
		ItemType:       model.ItemTypeAccommodation,
		ItemID:         "7b8a3c1e-17a4-4b5e-9f3d-2f8f33a6a001",
		StartDate:      "2026-09-10",
		EndDate:        "2026-09-12",
		NumberOfGuests: 2,
	}

	first, err := req.ToModel("test-user-id")
	require.NoError(t, err)

	second, err := req.ToModel("test-user-id")
	require.NoError(t, err)

	// Submitting the same form twice creates two rows; there is no
	// idempotency key.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	accommodationID := "7b8a3c1e-17a4-4b5e-9f3d-2f8f33a6a001"

	bookingModel := model.Booking{
		ID:              "test-id",
		UserID:          "test-user-id",
		ItemType:        model.ItemTypeAccommodation,
		AccommodationID: &accommodationID,
		StartDate:       time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Guests:          3,
		TotalPrice:      1500,
		Status:          "CONFIRMED",
		PaymentStatus:   "weird-value",
		PaymentMethod:   "pix",
		SpecialRequests: "late check-in",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user-id",
			ModifiedBy: "test-user-id",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.Guests, response.NumberOfGuests, "guests column maps back to number_of_guests")
	assert.Equal(t, "2026-09-10", response.StartDate)
	assert.Equal(t, "2026-09-12", response.EndDate)
	assert.Equal(t, bookingModel.TotalPrice, response.TotalPrice)
	assert.Equal(t, model.StatusConfirmed, response.Status, "statuses are normalized on read")
	assert.Equal(t, model.PaymentStatusPending, response.PaymentStatus, "unknown payment status falls back to pending")
}

func TestBookingRoundTrip_NumberOfGuests(t *testing.T) {
	req := dto.CreateBookingRequest{
		ItemType:       model.ItemTypeAccommodation,
		ItemID:         "7b8a3c1e-17a4-4b5e-9f3d-2f8f33a6a001",
		StartDate:      "2026-09-10",
		EndDate:        "2026-09-12",
		NumberOfGuests: 3,
	}

	booking, err := req.ToModel("test-user-id")
	require.NoError(t, err)

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, req.NumberOfGuests, response.NumberOfGuests)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1", Guests: 2, Status: "pending"},
		{ID: "booking-2", Guests: 4, Status: "confirmed"},
	}

	var response dto.GetBookingsResponse
	response.FromModels(models, 12, 10)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, "booking-1", response.Bookings[0].ID)
	assert.Equal(t, 4, response.Bookings[1].NumberOfGuests)
}
