package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verdantis/herbal-life/backend/internal/models"
	"github.com/verdantis/herbal-life/backend/internal/types"
)

// PlantService handles plant catalog operations. Every write runs in a single
// transaction; reads rely on the storage engine's default isolation.
type PlantService struct {
	db *gorm.DB
}

// NewPlantService creates a new PlantService instance
func NewPlantService(db *gorm.DB) *PlantService {
	return &PlantService{db: db}
}

// CreatePlant creates a plant with its owned images and shared benefit links.
// Benefit names are deduplicated and resolved through the reference resolver;
// the image field becomes the primary image row.
func (s *PlantService) CreatePlant(ctx context.Context, req *types.CreatePlantRequest) (*models.Plant, error) {
	if err := validatePlantCreate(req); err != nil {
		return nil, err
	}

	var plantID uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolver := NewReferenceResolver(tx)

		plant := models.Plant{
			Name:           req.Name,
			ScientificName: req.ScientificName,
			Description:    req.Description,
			Usage:          req.Usage,
		}

		if req.Category != "" {
			category, err := resolver.ResolvePlantCategory(req.Category)
			if err != nil {
				return err
			}
			plant.CategoryID = &category.ID
		}

		if err := tx.Create(&plant).Error; err != nil {
			return storageError("create plant", err)
		}

		benefits, err := resolver.ResolveBenefits(req.Benefits)
		if err != nil {
			return err
		}
		for i := range benefits {
			if err := tx.Model(&plant).Association("Benefits").Append(&benefits[i]); err != nil {
				return storageError("link plant benefit", err)
			}
		}

		if req.Image != "" {
			primary := models.PlantImage{PlantID: plant.ID, URL: req.Image, IsPrimary: true}
			if err := tx.Create(&primary).Error; err != nil {
				return storageError("create primary image", err)
			}
		}
		for _, url := range req.Images {
			if url == req.Image {
				continue
			}
			img := models.PlantImage{PlantID: plant.ID, URL: url}
			if err := tx.Create(&img).Error; err != nil {
				return storageError("create gallery image", err)
			}
		}

		plantID = plant.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPlant(ctx, plantID)
}

// GetPlant retrieves a plant with its relations loaded
func (s *PlantService) GetPlant(ctx context.Context, id uuid.UUID) (*models.Plant, error) {
	var plant models.Plant
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Preload("Benefits").
		First(&plant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError("get plant", err)
	}
	return &plant, nil
}

// UpdatePlant applies a partial update: nil fields are untouched, collection
// fields present in the payload replace the stored collection wholesale.
func (s *PlantService) UpdatePlant(ctx context.Context, id uuid.UUID, req *types.UpdatePlantRequest) (*models.Plant, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plant models.Plant
		if err := tx.First(&plant, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageError("load plant", err)
		}

		resolver := NewReferenceResolver(tx)

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.ScientificName != nil {
			updates["scientific_name"] = *req.ScientificName
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Usage != nil {
			updates["usage"] = *req.Usage
		}
		if req.Category != nil {
			category, err := resolver.ResolvePlantCategory(*req.Category)
			if err != nil {
				return err
			}
			updates["category_id"] = category.ID
		}
		if len(updates) > 0 {
			if err := tx.Model(&plant).Updates(updates).Error; err != nil {
				return storageError("update plant", err)
			}
		}

		if req.Benefits != nil {
			if err := tx.Model(&plant).Association("Benefits").Clear(); err != nil {
				return storageError("clear plant benefits", err)
			}
			benefits, err := resolver.ResolveBenefits(*req.Benefits)
			if err != nil {
				return err
			}
			for i := range benefits {
				if err := tx.Model(&plant).Association("Benefits").Append(&benefits[i]); err != nil {
					return storageError("link plant benefit", err)
				}
			}
		}

		if req.Image != nil {
			if err := tx.Where("plant_id = ? AND is_primary = ?", plant.ID, true).
				Delete(&models.PlantImage{}).Error; err != nil {
				return storageError("delete primary image", err)
			}
			primary := models.PlantImage{PlantID: plant.ID, URL: *req.Image, IsPrimary: true}
			if err := tx.Create(&primary).Error; err != nil {
				return storageError("create primary image", err)
			}
		}

		if req.Images != nil {
			// Keep only the primary image, then append the new gallery.
			if err := tx.Where("plant_id = ? AND is_primary = ?", plant.ID, false).
				Delete(&models.PlantImage{}).Error; err != nil {
				return storageError("delete gallery images", err)
			}
			var primary models.PlantImage
			primaryURL := ""
			err := tx.Where("plant_id = ? AND is_primary = ?", plant.ID, true).First(&primary).Error
			if err == nil {
				primaryURL = primary.URL
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return storageError("load primary image", err)
			}
			for _, url := range *req.Images {
				if url == primaryURL {
					continue
				}
				img := models.PlantImage{PlantID: plant.ID, URL: url}
				if err := tx.Create(&img).Error; err != nil {
					return storageError("create gallery image", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPlant(ctx, id)
}

// DeletePlant removes a plant together with its owned images and benefit
// links. Shared benefit rows are never touched.
func (s *PlantService) DeletePlant(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plant models.Plant
		if err := tx.First(&plant, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageError("load plant", err)
		}

		if err := tx.Where("plant_id = ?", plant.ID).Delete(&models.PlantImage{}).Error; err != nil {
			return storageError("delete plant images", err)
		}
		if err := tx.Model(&plant).Association("Benefits").Clear(); err != nil {
			return storageError("clear plant benefits", err)
		}
		if err := tx.Delete(&plant).Error; err != nil {
			return storageError("delete plant", err)
		}
		return nil
	})
}

// ListPlants returns plants matching the optional category and search
// filters, ordered by id for stable output within a query.
//
// The category filter is a case-insensitive substring match on the joined
// category name; the sentinel "all" disables it. The search term matches name,
// scientific name or description. Both filters compose with AND.
func (s *PlantService) ListPlants(ctx context.Context, category, search string) ([]models.Plant, error) {
	query := s.db.WithContext(ctx).Model(&models.Plant{}).
		Preload("Category").
		Preload("Images").
		Preload("Benefits")

	if category != "" && !strings.EqualFold(category, "all") {
		like := "%" + strings.ToLower(category) + "%"
		query = query.
			Joins("JOIN plant_categories ON plant_categories.id = plants.category_id").
			Where("LOWER(plant_categories.name) LIKE ?", like)
	}

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(plants.name) LIKE ? OR LOWER(plants.scientific_name) LIKE ? OR LOWER(plants.description) LIKE ?",
			like, like, like,
		)
	}

	var plants []models.Plant
	if err := query.Order("plants.id").Find(&plants).Error; err != nil {
		return nil, storageError("list plants", err)
	}
	return plants, nil
}

func validatePlantCreate(req *types.CreatePlantRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return newValidationError("name", "required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return newValidationError("description", "required")
	}
	if strings.TrimSpace(req.Usage) == "" {
		return newValidationError("usage", "required")
	}
	return nil
}
