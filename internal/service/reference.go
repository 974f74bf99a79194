package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/verdantis/herbal-life/backend/internal/models"
)

// ReferenceResolver centralizes get-or-create access to the shared lookup
// tables (plant categories, remedy categories, benefits). No other component
// inserts into these tables.
//
// Creation is insert-first: look up by exact name, insert when absent, and on
// a duplicate-key error (a concurrent caller won the race) re-select the
// winner. Requires the gorm connection to be opened with TranslateError so
// uniqueness violations surface as gorm.ErrDuplicatedKey.
type ReferenceResolver struct {
	db *gorm.DB
}

// NewReferenceResolver creates a resolver bound to db, which may be a
// transaction handle so resolution joins the caller's unit of work.
func NewReferenceResolver(db *gorm.DB) *ReferenceResolver {
	return &ReferenceResolver{db: db}
}

// ResolvePlantCategory returns the plant category with the given name,
// creating it if absent.
func (r *ReferenceResolver) ResolvePlantCategory(name string) (*models.PlantCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("category", "name must not be blank")
	}

	var category models.PlantCategory
	err := r.db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError("resolve plant category", err)
	}

	category = models.PlantCategory{Name: name}
	if err := r.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.reselectPlantCategory(name)
		}
		return nil, storageError("create plant category", err)
	}
	return &category, nil
}

func (r *ReferenceResolver) reselectPlantCategory(name string) (*models.PlantCategory, error) {
	// Reference rows are never deleted, so the winning row must exist.
	var category models.PlantCategory
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, storageError("reselect plant category", err)
	}
	return &category, nil
}

// ResolveRemedyCategory returns the remedy category with the given name,
// creating it if absent.
func (r *ReferenceResolver) ResolveRemedyCategory(name string) (*models.RemedyCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("category", "name must not be blank")
	}

	var category models.RemedyCategory
	err := r.db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError("resolve remedy category", err)
	}

	category = models.RemedyCategory{Name: name}
	if err := r.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.reselectRemedyCategory(name)
		}
		return nil, storageError("create remedy category", err)
	}
	return &category, nil
}

func (r *ReferenceResolver) reselectRemedyCategory(name string) (*models.RemedyCategory, error) {
	var category models.RemedyCategory
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, storageError("reselect remedy category", err)
	}
	return &category, nil
}

// ResolveBenefit returns the benefit with the given name, creating it if
// absent. Benefit names are globally unique across the whole system.
func (r *ReferenceResolver) ResolveBenefit(name string) (*models.Benefit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("benefit", "name must not be blank")
	}

	var benefit models.Benefit
	err := r.db.Where("name = ?", name).First(&benefit).Error
	if err == nil {
		return &benefit, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError("resolve benefit", err)
	}

	benefit = models.Benefit{Name: name}
	if err := r.db.Create(&benefit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var won models.Benefit
			if err := r.db.Where("name = ?", name).First(&won).Error; err != nil {
				return nil, storageError("reselect benefit", err)
			}
			return &won, nil
		}
		return nil, storageError("create benefit", err)
	}
	return &benefit, nil
}

// ResolveBenefits resolves a list of names, collapsing duplicates while
// preserving first-seen order.
func (r *ReferenceResolver) ResolveBenefits(names []string) ([]models.Benefit, error) {
	seen := make(map[string]bool, len(names))
	benefits := make([]models.Benefit, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		benefit, err := r.ResolveBenefit(name)
		if err != nil {
			return nil, err
		}
		benefits = append(benefits, *benefit)
	}
	return benefits, nil
}
