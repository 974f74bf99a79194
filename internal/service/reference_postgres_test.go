package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantis/herbal-life/backend/internal/models"
	"github.com/verdantis/herbal-life/backend/internal/testhelpers"
)

// Exercises the duplicate-key recovery path under real Postgres: concurrent
// resolvers racing on the same name must all land on a single row.
func TestResolveBenefitConcurrentPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresTestDB(t)

	const workers = 8
	ids := make([]string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resolver := NewReferenceResolver(db)
			benefit, err := resolver.ResolveBenefit("Anti-inflammatory")
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			ids[i] = benefit.ID.String()
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Equal(t, ids[0], ids[i])
	}

	var count int64
	require.NoError(t, db.Model(&models.Benefit{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
