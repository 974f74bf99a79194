package types

import (
	"sort"

	"github.com/google/uuid"

	"github.com/verdantis/herbal-life/backend/internal/models"
)

// PreparationStepResponse is one step of a remedy, emitted in step order.
type PreparationStepResponse struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
}

// DoctorResponse is the nested author summary on a remedy.
type DoctorResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsDoctor bool      `json:"is_doctor"`
}

// RemedyResponse is the external representation of a remedy.
type RemedyResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Name             string                    `json:"name"`
	ShortDescription string                    `json:"short_description"`
	Category         *string                   `json:"category"`
	CategoryID       *uuid.UUID                `json:"category_id"`
	CategoryInfo     *CategoryInfo             `json:"category_info"`
	Difficulty       string                    `json:"difficulty"`
	Ingredients      []string                  `json:"ingredients"`
	Description      string                    `json:"description"`
	PreparationSteps []PreparationStepResponse `json:"preparation_steps"`
	Usage            string                    `json:"usage"`
	Benefits         []string                  `json:"benefits"`
	Doctor           *DoctorResponse           `json:"doctor"`
}

// NewRemedyResponse projects a remedy and its loaded relations. Steps are
// sorted by step number here; storage order is never trusted.
func NewRemedyResponse(r *models.Remedy) RemedyResponse {
	resp := RemedyResponse{
		ID:               r.ID,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		CategoryID:       r.CategoryID,
		Difficulty:       r.Difficulty,
		Ingredients:      make([]string, 0, len(r.Ingredients)),
		Description:      r.Description,
		PreparationSteps: make([]PreparationStepResponse, 0, len(r.PreparationSteps)),
		Usage:            r.Usage,
		Benefits:         make([]string, 0, len(r.Benefits)),
	}

	if r.Category != nil {
		resp.Category = &r.Category.Name
		resp.CategoryInfo = &CategoryInfo{ID: r.Category.ID, Name: r.Category.Name}
	}

	ingredients := make([]models.Ingredient, len(r.Ingredients))
	copy(ingredients, r.Ingredients)
	sort.SliceStable(ingredients, func(i, j int) bool {
		return ingredients[i].Order < ingredients[j].Order
	})
	for _, ing := range ingredients {
		resp.Ingredients = append(resp.Ingredients, ing.Name)
	}

	steps := make([]models.PreparationStep, len(r.PreparationSteps))
	copy(steps, r.PreparationSteps)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].StepNumber < steps[j].StepNumber
	})
	for _, step := range steps {
		resp.PreparationSteps = append(resp.PreparationSteps, PreparationStepResponse{
			Number:      step.StepNumber,
			Description: step.Description,
		})
	}

	for _, b := range r.Benefits {
		resp.Benefits = append(resp.Benefits, b.Name)
	}

	if r.Doctor != nil {
		resp.Doctor = &DoctorResponse{
			ID:       r.Doctor.ID,
			Name:     r.Doctor.Name,
			IsDoctor: r.Doctor.IsDoctor,
		}
	}

	return resp
}
