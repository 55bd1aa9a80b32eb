package gallery

import "strings"

// Category ids understood by Filter.
const (
	CategoryAll          = "all"
	CategoryLandscape    = "landscape"
	CategoryCity         = "city"
	CategoryNature       = "nature"
	CategoryArchitecture = "architecture"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var categories = []Category{
	{ID: CategoryAll, Name: "All Photos"},
	{ID: CategoryLandscape, Name: "Landscapes"},
	{ID: CategoryCity, Name: "Cities"},
	{ID: CategoryNature, Name: "Nature"},
	{ID: CategoryArchitecture, Name: "Architecture"},
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func IsCategory(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Filter narrows images by category and a case-insensitive alt-text query.
// There is no real category data, so membership is derived from the id
// modulo 5. Unknown or empty categories behave like "all". Order is kept.
func Filter(images []ImageRecord, category, query string) []ImageRecord {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]ImageRecord, 0, len(images))
	for _, img := range images {
		if !inCategory(img, category) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(img.AltText), query) {
			continue
		}
		out = append(out, img)
	}
	return out
}

func inCategory(img ImageRecord, category string) bool {
	m := img.ID % 5
	switch category {
	case CategoryLandscape:
		return m == 0 || m == 1
	case CategoryCity:
		return m == 2
	case CategoryNature:
		return m == 3
	case CategoryArchitecture:
		return m == 4
	default:
		return true
	}
}

// Responsive breakpoints, in CSS pixels.
const (
	breakpointSM = 640
	breakpointMD = 768
	breakpointLG = 1024
)

// ColumnCount picks the masonry column count for a viewport width. A
// non-positive width means "unknown" and yields max.
func ColumnCount(viewportWidth, max int) int {
	if max < 1 {
		max = 1
	}
	var n int
	switch {
	case viewportWidth <= 0:
		n = max
	case viewportWidth < breakpointSM:
		n = 1
	case viewportWidth < breakpointMD:
		n = 2
	case viewportWidth < breakpointLG:
		n = 3
	default:
		n = max
	}
	if n > max {
		n = max
	}
	return n
}

// Distribute deals images round-robin into n columns, which keeps visual
// order left-to-right, top-to-bottom.
func Distribute(images []ImageRecord, n int) [][]ImageRecord {
	if n < 1 {
		n = 1
	}
	cols := make([][]ImageRecord, n)
	for i, img := range images {
		cols[i%n] = append(cols[i%n], img)
	}
	return cols
}
