package catalog

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightlock/internal/database"
	"lightlock/internal/gallery"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	return NewRepository(db)
}

func TestSeed_IsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	n, err := repo.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(SampleImages)+len(FeaturedImages), n)

	_, err = repo.Seed(ctx)
	require.NoError(t, err)

	counts, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(20), counts[database.KindGrid])
	assert.Equal(t, int64(5), counts[database.KindFeatured])
}

func TestGrid_KeepsDisplayOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Seed(ctx)
	require.NoError(t, err)

	grid, err := repo.Grid(ctx)
	require.NoError(t, err)
	require.Len(t, grid, len(SampleImages))
	assert.Equal(t, SampleImages, grid)

	featured, err := repo.Featured(ctx)
	require.NoError(t, err)
	assert.Equal(t, FeaturedImages, featured)
}

func TestGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Seed(ctx)
	require.NoError(t, err)

	img, err := repo.Get(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "Santorini white buildings with blue domes", img.AltText)
	assert.Equal(t, gallery.Portrait, img.Orientation())

	_, err = repo.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestEmptyCatalog(t *testing.T) {
	repo := newTestRepository(t)

	grid, err := repo.Grid(context.Background())
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestSeedData_UniqueIDs(t *testing.T) {
	seen := map[int]bool{}
	for _, img := range append(append([]gallery.ImageRecord{}, SampleImages...), FeaturedImages...) {
		assert.False(t, seen[img.ID], "duplicate id %d", img.ID)
		seen[img.ID] = true
		assert.NotEmpty(t, img.SourceURL)
		assert.Positive(t, img.Width)
		assert.Positive(t, img.Height)
	}
}
