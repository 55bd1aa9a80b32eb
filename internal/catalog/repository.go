// Package catalog stores the gallery's image lists and hands out immutable
// snapshots of them.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lightlock/internal/database"
	"lightlock/internal/gallery"
)

var ErrImageNotFound = errors.New("image not found")

// Repository reads and seeds the catalog table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Seed writes the built-in grid and featured lists. Running it again
// rewrites the same rows, so it is safe on every start.
func (r *Repository) Seed(ctx context.Context) (int, error) {
	rows := make([]database.CatalogImage, 0, len(SampleImages)+len(FeaturedImages))
	rows = appendRows(rows, database.KindGrid, SampleImages)
	rows = appendRows(rows, database.KindFeatured, FeaturedImages)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "position", "source_url", "alt_text", "width", "height", "updated_at"}),
		}).
		Create(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return len(rows), nil
}

func appendRows(rows []database.CatalogImage, kind string, images []gallery.ImageRecord) []database.CatalogImage {
	for i, img := range images {
		rows = append(rows, database.CatalogImage{
			ID:        img.ID,
			Kind:      kind,
			Position:  i,
			SourceURL: img.SourceURL,
			AltText:   img.AltText,
			Width:     img.Width,
			Height:    img.Height,
		})
	}
	return rows
}

// Grid returns the masonry list in display order.
func (r *Repository) Grid(ctx context.Context) ([]gallery.ImageRecord, error) {
	return r.list(ctx, database.KindGrid)
}

// Featured returns the carousel list in display order.
func (r *Repository) Featured(ctx context.Context) ([]gallery.ImageRecord, error) {
	return r.list(ctx, database.KindFeatured)
}

func (r *Repository) list(ctx context.Context, kind string) ([]gallery.ImageRecord, error) {
	var rows []database.CatalogImage
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s images: %w", kind, err)
	}

	out := make([]gallery.ImageRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRecord(row))
	}
	return out, nil
}

// Get looks up a single image in any collection.
func (r *Repository) Get(ctx context.Context, id int) (gallery.ImageRecord, error) {
	var row database.CatalogImage
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gallery.ImageRecord{}, ErrImageNotFound
	}
	if err != nil {
		return gallery.ImageRecord{}, fmt.Errorf("failed to fetch image %d: %w", id, err)
	}
	return toRecord(row), nil
}

// Count returns the number of rows per collection.
func (r *Repository) Count(ctx context.Context) (map[string]int64, error) {
	type result struct {
		Kind  string
		Total int64
	}
	var results []result
	err := r.db.WithContext(ctx).
		Model(&database.CatalogImage{}).
		Select("kind, count(*) as total").
		Group("kind").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}

	out := make(map[string]int64, len(results))
	for _, res := range results {
		out[res.Kind] = res.Total
	}
	return out, nil
}

func toRecord(row database.CatalogImage) gallery.ImageRecord {
	return gallery.ImageRecord{
		ID:        row.ID,
		SourceURL: row.SourceURL,
		AltText:   row.AltText,
		Width:     row.Width,
		Height:    row.Height,
	}
}
