package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Remedy difficulty levels. Stored as plain strings; DifficultyMedium is the
// column default.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

type Remedy struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	Name             string            `gorm:"size:100;not null" json:"name"`
	ShortDescription string            `gorm:"size:255;not null" json:"short_description"`
	Description      string            `gorm:"type:text;not null" json:"description"`
	Difficulty       string            `gorm:"size:20;not null;default:'Medium'" json:"difficulty"`
	Usage            string            `gorm:"type:text;not null" json:"usage"`
	CategoryID       *uuid.UUID        `gorm:"type:uuid" json:"category_id"`
	Category         *RemedyCategory   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	DoctorID         *uuid.UUID        `gorm:"type:uuid" json:"doctor_id"`
	Doctor           *User             `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Ingredients      []Ingredient      `gorm:"foreignKey:RemedyID" json:"ingredients"`
	PreparationSteps []PreparationStep `gorm:"foreignKey:RemedyID" json:"preparation_steps"`
	Benefits         []Benefit         `gorm:"many2many:remedy_benefits" json:"benefits"`
}

func (Remedy) TableName() string {
	return "remedies"
}

func (r *Remedy) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ingredient order is a zero-based display hint assigned at write time, not a
// DB-enforced invariant. Gaps and duplicates are tolerated.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RemedyID uuid.UUID `gorm:"type:uuid;not null;index" json:"remedy_id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Order    int       `gorm:"column:item_order;default:0" json:"order"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// PreparationStep numbers start at 1. Readers sort by StepNumber rather than
// trusting storage order.
type PreparationStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RemedyID    uuid.UUID `gorm:"type:uuid;not null;index" json:"remedy_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	StepNumber  int       `gorm:"not null" json:"step_number"`
}

func (PreparationStep) TableName() string {
	return "preparation_steps"
}

func (s *PreparationStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
