package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightlock/internal/catalog"
	"lightlock/internal/gallery"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "users", "images", "preview", "bench"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	assert.NotNil(t, root.Flags().Lookup("port"), "serve flags work on the bare root command")
}

func TestPreviewRequiresOneArg(t *testing.T) {
	cmd := newPreviewCmd()
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"9"}))
}

func TestFilterImages_UnknownCategoryFallsBack(t *testing.T) {
	all := filterImages(catalog.SampleImages, "food", "")
	assert.Len(t, all, len(catalog.SampleImages))

	city := filterImages(catalog.SampleImages, gallery.CategoryCity, "")
	assert.Len(t, city, 4)
}

func TestPercentiles(t *testing.T) {
	lat := make([]time.Duration, 0, 100)
	for i := 100; i >= 1; i-- {
		lat = append(lat, time.Duration(i)*time.Millisecond)
	}

	p50, p95, p99 := percentiles(lat)
	assert.Equal(t, 51*time.Millisecond, p50)
	assert.Equal(t, 96*time.Millisecond, p95)
	assert.Equal(t, 100*time.Millisecond, p99)

	z50, _, _ := percentiles(nil)
	assert.Zero(t, z50)
}

func TestBenchStats_Record(t *testing.T) {
	s := &benchStats{StatusCodes: map[int]int{}}
	s.record(200, time.Millisecond)
	s.record(429, time.Millisecond)
	s.record(0, time.Millisecond)

	assert.Equal(t, uint64(1), s.Success)
	assert.Equal(t, uint64(2), s.Failed)
	assert.Equal(t, 1, s.StatusCodes[429])
}
