package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantis/herbal-life/backend/internal/models"
	"github.com/verdantis/herbal-life/backend/internal/testhelpers"
	"github.com/verdantis/herbal-life/backend/internal/types"
)

func strPtr(s string) *string { return &s }

func sliceFor(items ...string) *[]string {
	s := append([]string{}, items...)
	return &s
}

func benefitNames(benefits []models.Benefit) []string {
	names := make([]string, 0, len(benefits))
	for _, b := range benefits {
		names = append(names, b.Name)
	}
	return names
}

func TestCreatePlant(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	plant, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:           "Neem",
		ScientificName: "Azadirachta indica",
		Description:    "A versatile medicinal tree.",
		Usage:          "Leaves are chewed fresh or used in tea.",
		Category:       "Medicinal Herbs",
		Benefits:       []string{"Antibacterial", "Antifungal", "Antibacterial"},
		Image:          "/static/images/neem.png",
		Images:         []string{"/static/images/neem.png", "/static/images/neem_leaves.png"},
	})
	require.NoError(t, err)

	require.NotNil(t, plant.Category)
	assert.Equal(t, "Medicinal Herbs", plant.Category.Name)

	// Duplicate benefit names collapse to one link.
	assert.ElementsMatch(t, []string{"Antibacterial", "Antifungal"}, benefitNames(plant.Benefits))

	// The primary URL is not duplicated into the gallery.
	require.Len(t, plant.Images, 2)
	primary := plant.PrimaryImage()
	require.NotNil(t, primary)
	assert.Equal(t, "/static/images/neem.png", primary.URL)
}

func TestCreatePlantValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	_, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:  "Neem",
		Usage: "Tea.",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCreatePlantSharesBenefitRows(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	_, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:        "Turmeric",
		Description: "A golden rhizome.",
		Usage:       "Used in cooking.",
		Benefits:    []string{"Anti-inflammatory"},
	})
	require.NoError(t, err)

	_, err = svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:        "Ginger",
		Description: "A warming rhizome.",
		Usage:       "Used in tea.",
		Benefits:    []string{"Anti-inflammatory"},
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Benefit{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetPlantNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)

	_, err := svc.GetPlant(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdatePlantPartial(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	created, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:           "Brahmi",
		ScientificName: "Bacopa monnieri",
		Description:    "A creeping herb.",
		Usage:          "Consumed as a tea.",
		Category:       "Brain Tonics",
		Benefits:       []string{"Memory-enhancing"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePlant(ctx, created.ID, &types.UpdatePlantRequest{
		Description: strPtr("A creeping herb used as a brain tonic."),
	})
	require.NoError(t, err)

	// Untouched fields keep their values.
	assert.Equal(t, "Brahmi", updated.Name)
	assert.Equal(t, "Bacopa monnieri", updated.ScientificName)
	assert.Equal(t, "A creeping herb used as a brain tonic.", updated.Description)
	require.NotNil(t, updated.Category)
	assert.Equal(t, "Brain Tonics", updated.Category.Name)
	assert.ElementsMatch(t, []string{"Memory-enhancing"}, benefitNames(updated.Benefits))
}

func TestUpdatePlantReplacesBenefits(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	created, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:        "Giloy",
		Description: "A herbaceous vine.",
		Usage:       "Consumed as juice.",
		Benefits:    []string{"Antipyretic", "Detoxifies the body"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePlant(ctx, created.ID, &types.UpdatePlantRequest{
		Benefits: sliceFor("Boosts immunity"),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Boosts immunity"}, benefitNames(updated.Benefits))

	// The old benefit rows survive as shared reference data.
	var count int64
	require.NoError(t, db.Model(&models.Benefit{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestUpdatePlantReplacesPrimaryImage(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	created, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:        "Aloe Vera",
		Description: "A succulent plant.",
		Usage:       "Gel applied for burns.",
		Image:       "/static/images/aloe_old.png",
		Images:      []string{"/static/images/aloe_gallery.png"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePlant(ctx, created.ID, &types.UpdatePlantRequest{
		Image: strPtr("/static/images/aloe_new.png"),
	})
	require.NoError(t, err)

	primary := updated.PrimaryImage()
	require.NotNil(t, primary)
	assert.Equal(t, "/static/images/aloe_new.png", primary.URL)

	// The gallery is untouched; only one primary row exists.
	require.Len(t, updated.Images, 2)
	var primaryCount int64
	require.NoError(t, db.Model(&models.PlantImage{}).
		Where("plant_id = ? AND is_primary = ?", created.ID, true).
		Count(&primaryCount).Error)
	assert.Equal(t, int64(1), primaryCount)
}

func TestUpdatePlantReplacesGallery(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	created, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:        "Mulethi",
		Description: "Licorice root.",
		Usage:       "Consumed as tea.",
		Image:       "/static/images/mulethi.png",
		Images:      []string{"/static/images/old_a.png", "/static/images/old_b.png"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePlant(ctx, created.ID, &types.UpdatePlantRequest{
		Images: sliceFor("/static/images/new.png", "/static/images/mulethi.png"),
	})
	require.NoError(t, err)

	// One primary plus one gallery row; the primary URL in the new gallery
	// list is skipped rather than duplicated.
	require.Len(t, updated.Images, 2)
	urls := []string{updated.Images[0].URL, updated.Images[1].URL}
	assert.ElementsMatch(t, []string{"/static/images/mulethi.png", "/static/images/new.png"}, urls)
}

func TestUpdatePlantRollsBackOnInvalidBenefit(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	created, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:        "Neem",
		Description: "A medicinal tree.",
		Usage:       "Tea.",
		Benefits:    []string{"Antibacterial"},
	})
	require.NoError(t, err)

	// The scalar update applies before benefit resolution fails on the blank
	// name; the whole transaction must roll back together.
	_, err = svc.UpdatePlant(ctx, created.ID, &types.UpdatePlantRequest{
		Name:     strPtr("Renamed"),
		Benefits: sliceFor("Antifungal", "   "),
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	reloaded, err := svc.GetPlant(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Neem", reloaded.Name)
	assert.ElementsMatch(t, []string{"Antibacterial"}, benefitNames(reloaded.Benefits))
}

func TestUpdatePlantNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)

	_, err := svc.UpdatePlant(context.Background(), uuid.New(), &types.UpdatePlantRequest{
		Name: strPtr("Ghost"),
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeletePlant(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	created, err := svc.CreatePlant(ctx, &types.CreatePlantRequest{
		Name:        "Lemongrass",
		Description: "A tall perennial grass.",
		Usage:       "Used in tea.",
		Benefits:    []string{"Antioxidant"},
		Image:       "/static/images/lemongrass.png",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlant(ctx, created.ID))

	_, err = svc.GetPlant(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	// Owned images are gone, shared benefits remain.
	var imageCount, benefitCount int64
	require.NoError(t, db.Model(&models.PlantImage{}).Where("plant_id = ?", created.ID).Count(&imageCount).Error)
	assert.Equal(t, int64(0), imageCount)
	require.NoError(t, db.Model(&models.Benefit{}).Count(&benefitCount).Error)
	assert.Equal(t, int64(1), benefitCount)

	assert.True(t, errors.Is(svc.DeletePlant(ctx, created.ID), ErrNotFound))
}

func TestListPlantsFilters(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewPlantService(db)
	ctx := context.Background()

	fixtures := []types.CreatePlantRequest{
		{Name: "Neem", ScientificName: "Azadirachta indica", Description: "A medicinal tree.", Usage: "Tea.", Category: "Medicinal Herbs"},
		{Name: "Turmeric", ScientificName: "Curcuma longa", Description: "A golden spice.", Usage: "Cooking.", Category: "Medicinal Herbs"},
		{Name: "Lemongrass", ScientificName: "Cymbopogon citratus", Description: "A citrus-scented grass.", Usage: "Tea.", Category: "Culinary Herbs"},
	}
	for i := range fixtures {
		_, err := svc.CreatePlant(ctx, &fixtures[i])
		require.NoError(t, err)
	}

	all, err := svc.ListPlants(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// "all" is a sentinel that disables the category filter.
	all, err = svc.ListPlants(ctx, "All", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	medicinal, err := svc.ListPlants(ctx, "medicinal", "")
	require.NoError(t, err)
	require.Len(t, medicinal, 2)

	// Search matches name, scientific name and description, case-insensitively.
	byName, err := svc.ListPlants(ctx, "", "NEEM")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Neem", byName[0].Name)

	byScientific, err := svc.ListPlants(ctx, "", "curcuma")
	require.NoError(t, err)
	require.Len(t, byScientific, 1)
	assert.Equal(t, "Turmeric", byScientific[0].Name)

	// Filters compose with AND.
	both, err := svc.ListPlants(ctx, "culinary", "golden")
	require.NoError(t, err)
	assert.Len(t, both, 0)

	none, err := svc.ListPlants(ctx, "", "nonexistent")
	require.NoError(t, err)
	assert.Len(t, none, 0)
}
