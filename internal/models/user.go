package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that can author remedies. Accounts with IsDoctor set are
// credentialed and surfaced as the remedy's doctor in API responses.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name         string         `gorm:"size:100" json:"name"`
	IsDoctor     bool           `gorm:"default:false" json:"is_doctor"`
	PasswordHash string         `gorm:"size:256;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
