package utils

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultPlaceholderSide    = 320
	DefaultPlaceholderQuality = 70
)

// PlaceholderOptions describes a loading skeleton for one image. Width and
// Height are the real image's dimensions and only fix the aspect ratio.
type PlaceholderOptions struct {
	Seed    string // tint source, usually the alt text
	Label   string
	Width   int
	Height  int
	MaxSide int // longest edge of the output in pixels
	Quality int // JPEG quality 1-100
}

func (o PlaceholderOptions) size() (int, int) {
	side := o.MaxSide
	if side <= 0 {
		side = DefaultPlaceholderSide
	}
	if o.Width <= 0 || o.Height <= 0 {
		return side, side
	}

	w, h := side, side
	if o.Width >= o.Height {
		h = side * o.Height / o.Width
	} else {
		w = side * o.Width / o.Height
	}
	return max(w, 1), max(h, 1)
}

// Placeholder draws the skeleton: a soft tint of the seed colour with a
// darker footer band and the label centred on it.
func Placeholder(opts PlaceholderOptions) *image.NRGBA {
	w, h := opts.size()
	base := ColorFor(opts.Seed)
	soft := MakeSoft(base)

	canvas := imaging.New(w, h, soft.Background)

	bandH := max(h/5, 15)
	band := imaging.New(w, bandH, base)
	canvas = imaging.Overlay(canvas, band, image.Pt(0, h-bandH), 0.35)

	if opts.Label != "" {
		drawLabel(canvas, opts.Label, soft, h-bandH, bandH)
	}
	return canvas
}

// RenderPlaceholder encodes Placeholder as JPEG.
func RenderPlaceholder(opts PlaceholderOptions) ([]byte, error) {
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultPlaceholderQuality
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, Placeholder(opts), imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

func drawLabel(img *image.NRGBA, text string, colors SoftColorPair, top, height int) {
	face := basicfont.Face7x13

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colors.Text),
		Face: face,
	}

	textWidth := d.MeasureString(text).Round()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	textHeight := ascent + metrics.Descent.Ceil()

	x := (img.Bounds().Dx() - textWidth) / 2
	y := top + (height-textHeight)/2 + ascent

	d.Dot = fixed.P(max(x, 0), y)
	d.DrawString(text)
}
