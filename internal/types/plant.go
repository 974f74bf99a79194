package types

import (
	"github.com/google/uuid"

	"github.com/verdantis/herbal-life/backend/internal/models"
)

// CategoryInfo is the id/name pair emitted alongside the flat category name.
type CategoryInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PlantResponse is the external representation of a plant: relations are
// flattened to primitive fields.
type PlantResponse struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	ScientificName string        `json:"scientific_name"`
	Category       *string       `json:"category"`
	CategoryID     *uuid.UUID    `json:"category_id"`
	CategoryInfo   *CategoryInfo `json:"category_info"`
	Benefits       []string      `json:"benefits"`
	Description    string        `json:"description"`
	Usage          string        `json:"usage"`
	Image          *string       `json:"image"`
	Images         []string      `json:"images"`
}

// NewPlantResponse projects a plant and its loaded relations. Pure read
// projection, no side effects.
func NewPlantResponse(p *models.Plant) PlantResponse {
	resp := PlantResponse{
		ID:             p.ID,
		Name:           p.Name,
		ScientificName: p.ScientificName,
		CategoryID:     p.CategoryID,
		Benefits:       make([]string, 0, len(p.Benefits)),
		Description:    p.Description,
		Usage:          p.Usage,
		Images:         make([]string, 0, len(p.Images)),
	}

	if p.Category != nil {
		resp.Category = &p.Category.Name
		resp.CategoryInfo = &CategoryInfo{ID: p.Category.ID, Name: p.Category.Name}
	}

	for _, b := range p.Benefits {
		resp.Benefits = append(resp.Benefits, b.Name)
	}

	// The is_primary flag is the only source of truth for the primary image.
	if primary := p.PrimaryImage(); primary != nil {
		resp.Image = &primary.URL
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, img.URL)
	}

	return resp
}
