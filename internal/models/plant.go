package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Plant struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	ScientificName string         `gorm:"size:100" json:"scientific_name"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Usage          string         `gorm:"type:text" json:"usage"`
	CategoryID     *uuid.UUID     `gorm:"type:uuid" json:"category_id"`
	Category       *PlantCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images         []PlantImage   `gorm:"foreignKey:PlantID" json:"images"`
	Benefits       []Benefit      `gorm:"many2many:plant_benefits" json:"benefits"`
}

func (Plant) TableName() string {
	return "plants"
}

func (p *Plant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PrimaryImage returns the image flagged primary, or nil. The flag is the
// single source of truth: an unflagged gallery has no primary image.
func (p *Plant) PrimaryImage() *PlantImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	return nil
}

// PlantImage is owned exclusively by one plant and is deleted with it.
type PlantImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	PlantID   uuid.UUID `gorm:"type:uuid;not null;index" json:"plant_id"`
	URL       string    `gorm:"size:255;not null" json:"url"`
	AltText   string    `gorm:"size:100" json:"alt_text"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
}

func (PlantImage) TableName() string {
	return "plant_images"
}

func (i *PlantImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
