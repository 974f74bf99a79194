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

// RemedyService handles remedy catalog operations
type RemedyService struct {
	db *gorm.DB
}

// NewRemedyService creates a new RemedyService instance
func NewRemedyService(db *gorm.DB) *RemedyService {
	return &RemedyService{db: db}
}

// CreateRemedy creates a remedy with its ordered ingredients and preparation
// steps, shared benefit links and optional doctor attribution. Ingredients
// are numbered from 0 and steps from 1, preserving payload order.
func (s *RemedyService) CreateRemedy(ctx context.Context, req *types.CreateRemedyRequest, doctorID *uuid.UUID) (*models.Remedy, error) {
	if err := validateRemedyCreate(req); err != nil {
		return nil, err
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if err := validateDifficulty(difficulty); err != nil {
		return nil, err
	}

	var remedyID uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resolver := NewReferenceResolver(tx)

		remedy := models.Remedy{
			Name:             req.Name,
			ShortDescription: req.ShortDescription,
			Description:      req.Description,
			Difficulty:       difficulty,
			Usage:            req.Usage,
			DoctorID:         doctorID,
		}

		if req.Category != "" {
			category, err := resolver.ResolveRemedyCategory(req.Category)
			if err != nil {
				return err
			}
			remedy.CategoryID = &category.ID
		}

		if err := tx.Create(&remedy).Error; err != nil {
			return storageError("create remedy", err)
		}

		if err := createIngredients(tx, remedy.ID, req.Ingredients); err != nil {
			return err
		}
		if err := createPreparationSteps(tx, remedy.ID, req.PreparationSteps); err != nil {
			return err
		}

		benefits, err := resolver.ResolveBenefits(req.Benefits)
		if err != nil {
			return err
		}
		for i := range benefits {
			if err := tx.Model(&remedy).Association("Benefits").Append(&benefits[i]); err != nil {
				return storageError("link remedy benefit", err)
			}
		}

		remedyID = remedy.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRemedy(ctx, remedyID)
}

// GetRemedy retrieves a remedy with its relations loaded
func (s *RemedyService) GetRemedy(ctx context.Context, id uuid.UUID) (*models.Remedy, error) {
	var remedy models.Remedy
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Doctor").
		Preload("Ingredients").
		Preload("PreparationSteps").
		Preload("Benefits").
		First(&remedy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError("get remedy", err)
	}
	return &remedy, nil
}

// UpdateRemedy applies a partial update. Ingredient and step lists present in
// the payload replace the stored lists and are renumbered from scratch.
func (s *RemedyService) UpdateRemedy(ctx context.Context, id uuid.UUID, req *types.UpdateRemedyRequest) (*models.Remedy, error) {
	if req.Difficulty != nil {
		if err := validateDifficulty(*req.Difficulty); err != nil {
			return nil, err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var remedy models.Remedy
		if err := tx.First(&remedy, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageError("load remedy", err)
		}

		resolver := NewReferenceResolver(tx)

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.ShortDescription != nil {
			updates["short_description"] = *req.ShortDescription
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Difficulty != nil {
			updates["difficulty"] = *req.Difficulty
		}
		if req.Usage != nil {
			updates["usage"] = *req.Usage
		}
		if req.Category != nil {
			category, err := resolver.ResolveRemedyCategory(*req.Category)
			if err != nil {
				return err
			}
			updates["category_id"] = category.ID
		}
		if len(updates) > 0 {
			if err := tx.Model(&remedy).Updates(updates).Error; err != nil {
				return storageError("update remedy", err)
			}
		}

		if req.Ingredients != nil {
			if err := tx.Where("remedy_id = ?", remedy.ID).Delete(&models.Ingredient{}).Error; err != nil {
				return storageError("delete ingredients", err)
			}
			if err := createIngredients(tx, remedy.ID, *req.Ingredients); err != nil {
				return err
			}
		}

		if req.PreparationSteps != nil {
			if err := tx.Where("remedy_id = ?", remedy.ID).Delete(&models.PreparationStep{}).Error; err != nil {
				return storageError("delete preparation steps", err)
			}
			if err := createPreparationSteps(tx, remedy.ID, *req.PreparationSteps); err != nil {
				return err
			}
		}

		if req.Benefits != nil {
			if err := tx.Model(&remedy).Association("Benefits").Clear(); err != nil {
				return storageError("clear remedy benefits", err)
			}
			benefits, err := resolver.ResolveBenefits(*req.Benefits)
			if err != nil {
				return err
			}
			for i := range benefits {
				if err := tx.Model(&remedy).Association("Benefits").Append(&benefits[i]); err != nil {
					return storageError("link remedy benefit", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRemedy(ctx, id)
}

// DeleteRemedy removes a remedy together with its ingredients, preparation
// steps and benefit links. Shared benefit rows are never touched.
func (s *RemedyService) DeleteRemedy(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var remedy models.Remedy
		if err := tx.First(&remedy, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageError("load remedy", err)
		}

		if err := tx.Where("remedy_id = ?", remedy.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return storageError("delete ingredients", err)
		}
		if err := tx.Where("remedy_id = ?", remedy.ID).Delete(&models.PreparationStep{}).Error; err != nil {
			return storageError("delete preparation steps", err)
		}
		if err := tx.Model(&remedy).Association("Benefits").Clear(); err != nil {
			return storageError("clear remedy benefits", err)
		}
		if err := tx.Delete(&remedy).Error; err != nil {
			return storageError("delete remedy", err)
		}
		return nil
	})
}

// ListRemedies returns remedies matching the optional category and search
// filters, ordered by id for stable output within a query.
//
// The search term matches name and description directly, and additionally any
// associated ingredient name through a subquery — the union yields each
// matching remedy once even when both sides match.
func (s *RemedyService) ListRemedies(ctx context.Context, category, search string) ([]models.Remedy, error) {
	query := s.db.WithContext(ctx).Model(&models.Remedy{}).
		Preload("Category").
		Preload("Doctor").
		Preload("Ingredients").
		Preload("PreparationSteps").
		Preload("Benefits")

	if category != "" && !strings.EqualFold(category, "all") {
		like := "%" + strings.ToLower(category) + "%"
		query = query.
			Joins("JOIN remedy_categories ON remedy_categories.id = remedies.category_id").
			Where("LOWER(remedy_categories.name) LIKE ?", like)
	}

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		ingredientMatches := s.db.Model(&models.Ingredient{}).
			Select("remedy_id").
			Where("LOWER(name) LIKE ?", like)
		query = query.Where(
			"LOWER(remedies.name) LIKE ? OR LOWER(remedies.description) LIKE ? OR remedies.id IN (?)",
			like, like, ingredientMatches,
		)
	}

	var remedies []models.Remedy
	if err := query.Order("remedies.id").Find(&remedies).Error; err != nil {
		return nil, storageError("list remedies", err)
	}
	return remedies, nil
}

func createIngredients(tx *gorm.DB, remedyID uuid.UUID, names []string) error {
	for i, name := range names {
		ingredient := models.Ingredient{RemedyID: remedyID, Name: name, Order: i}
		if err := tx.Create(&ingredient).Error; err != nil {
			return storageError("create ingredient", err)
		}
	}
	return nil
}

func createPreparationSteps(tx *gorm.DB, remedyID uuid.UUID, descriptions []string) error {
	for i, description := range descriptions {
		step := models.PreparationStep{RemedyID: remedyID, Description: description, StepNumber: i + 1}
		if err := tx.Create(&step).Error; err != nil {
			return storageError("create preparation step", err)
		}
	}
	return nil
}

func validateRemedyCreate(req *types.CreateRemedyRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return newValidationError("name", "required")
	}
	if strings.TrimSpace(req.ShortDescription) == "" {
		return newValidationError("short_description", "required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return newValidationError("description", "required")
	}
	if strings.TrimSpace(req.Usage) == "" {
		return newValidationError("usage", "required")
	}
	return nil
}

func validateDifficulty(difficulty string) error {
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return nil
	default:
		return newValidationError("difficulty", "must be Easy, Medium or Hard")
	}
}
