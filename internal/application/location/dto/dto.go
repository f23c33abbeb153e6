package dto

import (
	"time"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/shared/mapper"
)

type LocationDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	SubRegionCount int       `json:"sub_region_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateLocationRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	SubRegionCount int    `json:"sub_region_count" binding:"required,gte=1"`
}

type UpdateLocationRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	SubRegionCount int    `json:"sub_region_count" binding:"required,gte=1"`
}

func ToLocationDTO(l *location.Location) *LocationDTO {
	if l == nil {
		return nil
	}
	return &LocationDTO{
		ID:             l.ID(),
		Name:           l.Name(),
		SubRegionCount: l.SubRegionCount(),
		CreatedAt:      l.CreatedAt(),
		UpdatedAt:      l.UpdatedAt(),
	}
}

func ToLocationDTOs(locations []*location.Location) []*LocationDTO {
	return mapper.MapSliceOrEmpty(locations, ToLocationDTO)
}
