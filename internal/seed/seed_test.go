package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/verdantis/herbal-life/backend/internal/models"
	"github.com/verdantis/herbal-life/backend/internal/service"
	"github.com/verdantis/herbal-life/backend/internal/testhelpers"
)

func tableCounts(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()

	counts := map[string]int64{}
	for table, model := range map[string]interface{}{
		"users":             &models.User{},
		"plants":            &models.Plant{},
		"plant_images":      &models.PlantImage{},
		"plant_categories":  &models.PlantCategory{},
		"remedies":          &models.Remedy{},
		"remedy_categories": &models.RemedyCategory{},
		"ingredients":       &models.Ingredient{},
		"preparation_steps": &models.PreparationStep{},
		"benefits":          &models.Benefit{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		counts[table] = count
	}
	return counts
}

func TestSeedPopulatesCatalog(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db))

	counts := tableCounts(t, db)
	assert.Equal(t, int64(len(plants)), counts["plants"])
	assert.Equal(t, int64(len(remedies)), counts["remedies"])
	assert.Equal(t, int64(len(doctors)), counts["users"])
	assert.Greater(t, counts["benefits"], int64(0))
	assert.Greater(t, counts["ingredients"], int64(0))

	// Every plant carries a primary image.
	assert.Equal(t, int64(len(plants)), counts["plant_images"])
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db))
	first := tableCounts(t, db)

	require.NoError(t, Run(ctx, db))
	second := tableCounts(t, db)

	assert.Equal(t, first, second)
}

func TestSeedAttributesRemediesToDoctors(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db))

	remedyService := service.NewRemedyService(db)

	matches, err := remedyService.ListRemedies(ctx, "", "golden milk")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].Doctor)
	assert.Equal(t, "deepak.chopra@example.com", matches[0].Doctor.Email)
}

func TestSeedSupportsIngredientSearch(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db))

	remedyService := service.NewRemedyService(db)

	// "cinnamon" appears only inside ingredient names.
	matches, err := remedyService.ListRemedies(ctx, "", "cinnamon")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	names := make([]string, 0, len(matches))
	for _, r := range matches {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "Golden Milk")
}
