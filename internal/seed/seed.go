// Package seed populates the catalog with the base herbal data set. Running
// it is idempotent: plants, remedies and users are matched by name or email
// and skipped when present, and all categories and benefits go through the
// reference resolver, so a second run leaves row counts unchanged.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/verdantis/herbal-life/backend/internal/models"
	"github.com/verdantis/herbal-life/backend/internal/service"
	"github.com/verdantis/herbal-life/backend/internal/types"
)

type doctorData struct {
	Name  string
	Email string
}

type remedyData struct {
	types.CreateRemedyRequest
	DoctorEmail string
}

// Run seeds the catalog through the regular services
func Run(ctx context.Context, db *gorm.DB) error {
	if err := seedDoctors(db); err != nil {
		return err
	}
	if err := seedPlants(ctx, db); err != nil {
		return err
	}
	return seedRemedies(ctx, db)
}

func seedDoctors(db *gorm.DB) error {
	for _, d := range doctors {
		var existing models.User
		err := db.Where("email = ?", d.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up doctor %s: %w", d.Email, err)
		}

		// Seeded accounts get a throwaway password; real credentials come
		// from registration.
		hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Name:         d.Name,
			Email:        d.Email,
			IsDoctor:     true,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create doctor %s: %w", d.Email, err)
		}
		log.Printf("Seeded doctor %s", d.Email)
	}
	return nil
}

func seedPlants(ctx context.Context, db *gorm.DB) error {
	plantService := service.NewPlantService(db)

	for i := range plants {
		req := &plants[i]

		var existing models.Plant
		err := db.Where("name = ?", req.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up plant %s: %w", req.Name, err)
		}

		if _, err := plantService.CreatePlant(ctx, req); err != nil {
			return fmt.Errorf("create plant %s: %w", req.Name, err)
		}
		log.Printf("Seeded plant %s", req.Name)
	}
	return nil
}

func seedRemedies(ctx context.Context, db *gorm.DB) error {
	remedyService := service.NewRemedyService(db)

	for i := range remedies {
		req := &remedies[i]

		var existing models.Remedy
		err := db.Where("name = ?", req.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up remedy %s: %w", req.Name, err)
		}

		var doctorID *uuid.UUID
		if req.DoctorEmail != "" {
			var doctor models.User
			if err := db.Where("email = ?", req.DoctorEmail).First(&doctor).Error; err != nil {
				return fmt.Errorf("look up doctor %s for remedy %s: %w", req.DoctorEmail, req.Name, err)
			}
			doctorID = &doctor.ID
		}

		if _, err := remedyService.CreateRemedy(ctx, &req.CreateRemedyRequest, doctorID); err != nil {
			return fmt.Errorf("create remedy %s: %w", req.Name, err)
		}
		log.Printf("Seeded remedy %s", req.Name)
	}
	return nil
}
