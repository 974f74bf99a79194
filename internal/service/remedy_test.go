package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantis/herbal-life/backend/internal/models"
	"github.com/verdantis/herbal-life/backend/internal/testhelpers"
	"github.com/verdantis/herbal-life/backend/internal/types"
)

func goldenMilkRequest() *types.CreateRemedyRequest {
	return &types.CreateRemedyRequest{
		Name:             "Golden Milk",
		ShortDescription: "A soothing turmeric drink",
		Description:      "A traditional drink combining turmeric with milk and spices.",
		Difficulty:       "Easy",
		Usage:            "Drink warm before bedtime.",
		Category:         "Anti-inflammatory Preparations",
		Ingredients: []string{
			"Milk or plant-based milk - 1 cup",
			"Ground turmeric - 1/2 teaspoon",
			"Ground ginger - 1/4 teaspoon",
		},
		PreparationSteps: []string{
			"Heat the milk over medium heat.",
			"Add the spices and whisk.",
			"Serve warm.",
		},
		Benefits: []string{"Reduces inflammation", "Improves sleep quality"},
	}
}

func sortedIngredients(remedy *models.Remedy) []models.Ingredient {
	ingredients := append([]models.Ingredient{}, remedy.Ingredients...)
	sort.Slice(ingredients, func(i, j int) bool { return ingredients[i].Order < ingredients[j].Order })
	return ingredients
}

func TestCreateRemedy(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)
	ctx := context.Background()

	doctor := testhelpers.CreateTestUser(t, db, "doctor@example.com", true)

	remedy, err := svc.CreateRemedy(ctx, goldenMilkRequest(), &doctor.ID)
	require.NoError(t, err)

	require.NotNil(t, remedy.Category)
	assert.Equal(t, "Anti-inflammatory Preparations", remedy.Category.Name)
	require.NotNil(t, remedy.Doctor)
	assert.Equal(t, "doctor@example.com", remedy.Doctor.Email)

	// Ingredients keep payload order, numbered from zero.
	ingredients := sortedIngredients(remedy)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "Milk or plant-based milk - 1 cup", ingredients[0].Name)
	assert.Equal(t, 0, ingredients[0].Order)
	assert.Equal(t, "Ground ginger - 1/4 teaspoon", ingredients[2].Name)
	assert.Equal(t, 2, ingredients[2].Order)

	// Steps are numbered from one.
	require.Len(t, remedy.PreparationSteps, 3)
	numbers := make([]int, 0, 3)
	for _, s := range remedy.PreparationSteps {
		numbers = append(numbers, s.StepNumber)
	}
	assert.ElementsMatch(t, []int{1, 2, 3}, numbers)

	assert.ElementsMatch(t, []string{"Reduces inflammation", "Improves sleep quality"}, benefitNames(remedy.Benefits))
}

func TestCreateRemedyWithoutDoctor(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)

	remedy, err := svc.CreateRemedy(context.Background(), goldenMilkRequest(), nil)
	require.NoError(t, err)
	assert.Nil(t, remedy.DoctorID)
	assert.Nil(t, remedy.Doctor)
}

func TestCreateRemedyDifficultyDefaultsToMedium(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)

	req := goldenMilkRequest()
	req.Difficulty = ""
	remedy, err := svc.CreateRemedy(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyMedium, remedy.Difficulty)
}

func TestCreateRemedyRejectsUnknownDifficulty(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)

	req := goldenMilkRequest()
	req.Difficulty = "Impossible"
	_, err := svc.CreateRemedy(context.Background(), req, nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestUpdateRemedyReplacesIngredients(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)
	ctx := context.Background()

	created, err := svc.CreateRemedy(ctx, goldenMilkRequest(), nil)
	require.NoError(t, err)

	updated, err := svc.UpdateRemedy(ctx, created.ID, &types.UpdateRemedyRequest{
		Ingredients: sliceFor("a", "b", "c"),
	})
	require.NoError(t, err)

	// The old list is gone; the new one is renumbered from scratch.
	ingredients := sortedIngredients(updated)
	require.Len(t, ingredients, 3)
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, name, ingredients[i].Name)
		assert.Equal(t, i, ingredients[i].Order)
	}

	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("remedy_id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	// Untouched fields survive the update.
	assert.Equal(t, "Golden Milk", updated.Name)
	require.Len(t, updated.PreparationSteps, 3)
}

func TestUpdateRemedyScalarsAndCategory(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)
	ctx := context.Background()

	created, err := svc.CreateRemedy(ctx, goldenMilkRequest(), nil)
	require.NoError(t, err)

	updated, err := svc.UpdateRemedy(ctx, created.ID, &types.UpdateRemedyRequest{
		Difficulty: strPtr("Hard"),
		Category:   strPtr("Sleep Remedies"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hard", updated.Difficulty)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "Sleep Remedies", updated.Category.Name)
}

func TestUpdateRemedyNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)

	_, err := svc.UpdateRemedy(context.Background(), uuid.New(), &types.UpdateRemedyRequest{
		Name: strPtr("Ghost"),
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteRemedy(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)
	ctx := context.Background()

	created, err := svc.CreateRemedy(ctx, goldenMilkRequest(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRemedy(ctx, created.ID))

	_, err = svc.GetRemedy(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	var ingredientCount, stepCount, benefitCount int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("remedy_id = ?", created.ID).Count(&ingredientCount).Error)
	require.NoError(t, db.Model(&models.PreparationStep{}).Where("remedy_id = ?", created.ID).Count(&stepCount).Error)
	require.NoError(t, db.Model(&models.Benefit{}).Count(&benefitCount).Error)
	assert.Equal(t, int64(0), ingredientCount)
	assert.Equal(t, int64(0), stepCount)
	assert.Equal(t, int64(2), benefitCount)
}

func TestListRemediesSearchIncludesIngredients(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRemedyService(db)
	ctx := context.Background()

	_, err := svc.CreateRemedy(ctx, goldenMilkRequest(), nil)
	require.NoError(t, err)

	_, err = svc.CreateRemedy(ctx, &types.CreateRemedyRequest{
		Name:             "Neem Face Pack",
		ShortDescription: "Natural remedy for skin problems",
		Description:      "A face pack made from neem powder.",
		Usage:            "Apply to clean face.",
		Category:         "Skin Care Remedies",
		Ingredients:      []string{"2 tablespoons neem powder", "Rose water (as needed)"},
	}, nil)
	require.NoError(t, err)

	// "ginger" appears only in an ingredient of Golden Milk, not in its
	// name or description.
	matches, err := svc.ListRemedies(ctx, "", "ginger")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Golden Milk", matches[0].Name)

	// A term matching both the name and an ingredient yields the remedy once.
	matches, err = svc.ListRemedies(ctx, "", "neem")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Neem Face Pack", matches[0].Name)

	// Category filter composes with search.
	matches, err = svc.ListRemedies(ctx, "skin care", "ginger")
	require.NoError(t, err)
	assert.Len(t, matches, 0)

	all, err := svc.ListRemedies(ctx, "all", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
