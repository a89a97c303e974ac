package dto

import (
	"time"
	"viagem/internal/domains/availability/model"
	"viagem/shared/constant"
	gDto "viagem/shared/dto"
	"viagem/shared/failure"
	gModel "viagem/shared/model"
	"viagem/shared/timezone"

	"github.com/google/uuid"
)

const maxRangeDays = 366

// SetAvailabilityRequest marks a whole date range with one status and an
// optional nightly price override.
type SetAvailabilityRequest struct {
	StartDate   string   `json:"start_date"   validate:"required,calendardate"`
	EndDate     string   `json:"end_date"     validate:"required,calendardate"`
	Status      string   `json:"status"       validate:"required,oneof=available unavailable"`
	CustomPrice *float64 `json:"custom_price" validate:"omitempty,gt=0"`
}

// ToModels expands the range into one row per calendar day, inclusive of both
// endpoints.
func (c *SetAvailabilityRequest) ToModels(accommodationID, user string) ([]model.Availability, error) {
	startDate, err := time.Parse(constant.CalendarDateFormat, c.StartDate)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid start_date format") // nolint:wrapcheck
	}

	endDate, err := time.Parse(constant.CalendarDateFormat, c.EndDate)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid end_date format") // nolint:wrapcheck
	}

	if endDate.Before(startDate) {
		return nil, failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days > maxRangeDays {
		return nil, failure.BadRequestFromString("date range must not exceed one year") // nolint:wrapcheck
	}

	models := make([]model.Availability, 0, days)

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		models = append(models, model.Availability{
			ID:              uuid.NewString(),
			AccommodationID: accommodationID,
			Date:            date,
			Status:          c.Status,
			CustomPrice:     c.CustomPrice,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	return models, nil
}

type AvailabilityResponse struct {
	ID              string   `json:"id"`
	AccommodationID string   `json:"accommodation_id"`
	Date            string   `json:"date"`
	Status          string   `json:"status"`
	CustomPrice     *float64 `json:"custom_price,omitempty"`
	gDto.Metadata
}

func (r *AvailabilityResponse) FromModel(mod model.Availability) {
	r.ID = mod.ID
	r.AccommodationID = mod.AccommodationID
	r.Date = mod.Date.Format(constant.CalendarDateFormat)
	r.Status = mod.Status
	r.CustomPrice = mod.CustomPrice
	r.Metadata.FromModel(mod.Metadata)
}

// GetAvailabilityResponse lists only the days that have rows; days without a
// row carry no entry and default to available on the caller's side.
type GetAvailabilityResponse struct {
	Availability []AvailabilityResponse `json:"availability"`
	TotalData    int                    `json:"total_data"`
}

func (r *GetAvailabilityResponse) FromModels(models []model.Availability) {
	r.TotalData = len(models)

	r.Availability = make([]AvailabilityResponse, len(models))
	for i, mod := range models {
		r.Availability[i].FromModel(mod)
	}
}
