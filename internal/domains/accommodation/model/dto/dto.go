package dto

import (
	"viagem/internal/domains/accommodation/model"
	"viagem/shared"
	gDto "viagem/shared/dto"
	gModel "viagem/shared/model"
	"viagem/shared/timezone"

	"github.com/google/uuid"
)

type CreateAccommodationRequest struct {
	Name        string  `json:"name"        validate:"required,max=150"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Location    string  `json:"location"    validate:"required,max=200"`
	BasePrice   float64 `json:"base_price"  validate:"required,gt=0"`
	MinGuests   int     `json:"min_guests"  validate:"required,gt=0"`
	MaxGuests   int     `json:"max_guests"  validate:"required,gtefield=MinGuests"`
	Active      *bool   `json:"active"      validate:"omitempty"`
}

func (c *CreateAccommodationRequest) ToModel(user string) model.Accommodation {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Accommodation{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		BasePrice:   c.BasePrice,
		MinGuests:   c.MinGuests,
		MaxGuests:   c.MaxGuests,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAccommodationRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=2000"`
	Location    string   `db:"location"    json:"location"    validate:"omitempty,max=200"`
	BasePrice   *float64 `db:"base_price"  json:"base_price"  validate:"omitempty,gt=0"`
	MinGuests   *int     `db:"min_guests"  json:"min_guests"  validate:"omitempty,gt=0"`
	MaxGuests   *int     `db:"max_guests"  json:"max_guests"  validate:"omitempty,gt=0"`
	Active      *bool    `db:"active"      json:"active"      validate:"omitempty"`
}

type AccommodationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	BasePrice   float64 `json:"base_price"`
	MinGuests   int     `json:"min_guests"`
	MaxGuests   int     `json:"max_guests"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *AccommodationResponse) FromModel(mod model.Accommodation) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Location = mod.Location
	r.BasePrice = mod.BasePrice
	r.MinGuests = mod.MinGuests
	r.MaxGuests = mod.MaxGuests
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetAccommodationsResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAccommodationsResponse) FromModels(models []model.Accommodation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Accommodations = make([]AccommodationResponse, len(models))
	for i, mod := range models {
		r.Accommodations[i].FromModel(mod)
	}
}
