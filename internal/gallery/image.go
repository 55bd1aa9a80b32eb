// Package gallery contains the viewer state machine, the control-visibility
// timer and the grid layout helpers. It knows nothing about HTTP or storage.
package gallery

type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
	Square    Orientation = "square"
)

// ImageRecord is one externally hosted image. Width and Height are the
// intrinsic pixel dimensions and only drive layout.
type ImageRecord struct {
	ID        int    `json:"id"`
	SourceURL string `json:"src"`
	AltText   string `json:"alt"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// AspectPercent is height/width as a percentage, the padding-bottom trick
// used to reserve the tile's box before the image arrives.
func (r ImageRecord) AspectPercent() float64 {
	if r.Width <= 0 {
		return 100
	}
	return float64(r.Height) / float64(r.Width) * 100
}

func (r ImageRecord) Orientation() Orientation {
	switch {
	case r.Height > r.Width:
		return Portrait
	case r.Width > r.Height:
		return Landscape
	default:
		return Square
	}
}

// IndexOf returns the position of id in images, or -1.
func IndexOf(images []ImageRecord, id int) int {
	for i, img := range images {
		if img.ID == id {
			return i
		}
	}
	return -1
}
