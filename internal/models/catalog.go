package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlantCategory and RemedyCategory are disjoint namespaces: the same name may
// exist in both tables, but within one table names are unique. Rows are only
// created through service.ReferenceResolver.
type PlantCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (PlantCategory) TableName() string {
	return "plant_categories"
}

func (c *PlantCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type RemedyCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (RemedyCategory) TableName() string {
	return "remedy_categories"
}

func (c *RemedyCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Benefit is a shared tag: at most one row per distinct name system-wide,
// linked to plants and remedies through junction tables. Deleting a plant or
// remedy never deletes a benefit row.
type Benefit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Benefit) TableName() string {
	return "benefits"
}

func (b *Benefit) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
