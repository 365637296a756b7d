package dto

import (
	"staybook/internal/domains/category/model"
	gDto "staybook/shared/dto"
	gModel "staybook/shared/model"
	"staybook/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool  `json:"isActive"`
}

func (r *CreateCategoryRequest) ToModel(actor string) model.Category {
	now := timezone.Now()

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return model.Category{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		IsActive:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateCategoryRequest struct {
	Name        *string `db:"name"        json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `db:"is_active"   json:"isActive"`
}

func (r *UpdateCategoryRequest) Normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
}

type ToggleStatusRequest struct {
	IsActive bool `db:"is_active"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(m model.Category) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
