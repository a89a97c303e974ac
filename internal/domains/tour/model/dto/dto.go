package dto

import (
	"viagem/internal/domains/tour/model"
	"viagem/shared"
	gDto "viagem/shared/dto"
	gModel "viagem/shared/model"
	"viagem/shared/timezone"

	"github.com/google/uuid"
)

type CreateTourRequest struct {
	Name            string  `json:"name"             validate:"required,max=150"`
	Description     string  `json:"description"      validate:"omitempty,max=2000"`
	Location        string  `json:"location"         validate:"required,max=200"`
	Price           float64 `json:"price"            validate:"required,gt=0"`
	MinParticipants int     `json:"min_participants" validate:"required,gt=0"`
	MaxParticipants int     `json:"max_participants" validate:"required,gtefield=MinParticipants"`
	Active          *bool   `json:"active"           validate:"omitempty"`
}

func (c *CreateTourRequest) ToModel(user string) model.Tour {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Tour{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		Location:        c.Location,
		Price:           c.Price,
		MinParticipants: c.MinParticipants,
		MaxParticipants: c.MaxParticipants,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTourRequest struct {
	Name            string   `db:"name"             json:"name"             validate:"omitempty,max=150"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	Location        string   `db:"location"         json:"location"         validate:"omitempty,max=200"`
	Price           *float64 `db:"price"            json:"price"            validate:"omitempty,gt=0"`
	MinParticipants *int     `db:"min_participants" json:"min_participants" validate:"omitempty,gt=0"`
	MaxParticipants *int     `db:"max_participants" json:"max_participants" validate:"omitempty,gt=0"`
	Active          *bool    `db:"active"           json:"active"           validate:"omitempty"`
}

type TourResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
	MinParticipants int     `json:"min_participants"`
	MaxParticipants int     `json:"max_participants"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *TourResponse) FromModel(mod model.Tour) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Location = mod.Location
	r.Price = mod.Price
	r.MinParticipants = mod.MinParticipants
	r.MaxParticipants = mod.MaxParticipants
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetToursResponse struct {
	Tours     []TourResponse `json:"tours"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetToursResponse) FromModels(models []model.Tour, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tours = make([]TourResponse, len(models))
	for i, mod := range models {
		r.Tours[i].FromModel(mod)
	}
}
