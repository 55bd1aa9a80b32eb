package database

import (
	"time"
)

// Collections an image can belong to.
const (
	KindGrid     = "grid"
	KindFeatured = "featured"
)

// CatalogImage is one row of the image catalog. Position orders images
// within their collection.
type CatalogImage struct {
	ID        int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Kind      string `gorm:"type:text;not null;index:idx_catalog_kind_position,priority:1" json:"kind"`
	Position  int    `gorm:"not null;index:idx_catalog_kind_position,priority:2" json:"position"`
	SourceURL string `gorm:"type:text;not null" json:"src"`
	AltText   string `gorm:"type:text" json:"alt"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}
