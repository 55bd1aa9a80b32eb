package utils

import (
	"crypto/md5"
	"image/color"
	"math"
)

type SoftColorPair struct {
	Background color.RGBA
	Text       color.RGBA
}

// PlaceholderColors is the palette placeholders are tinted from.
var PlaceholderColors = []color.RGBA{
	{71, 85, 105, 255}, {51, 65, 85, 255}, // Slate
	{87, 83, 78, 255}, {68, 64, 60, 255}, // Stone

	{239, 68, 68, 255}, {244, 63, 94, 255}, // Red, Rose
	{249, 115, 22, 255}, {245, 158, 11, 255}, // Orange, Amber
	{234, 179, 8, 255}, {202, 138, 4, 255}, // Yellow

	{34, 197, 94, 255}, {16, 185, 129, 255}, // Green, Emerald
	{132, 204, 22, 255}, {77, 124, 15, 255}, // Lime
	{20, 184, 166, 255}, {6, 182, 212, 255}, // Teal, Cyan
	{14, 165, 233, 255}, {59, 130, 246, 255}, // Sky, Blue
	{99, 102, 241, 255}, {139, 92, 246, 255}, // Indigo, Violet
	{168, 85, 247, 255}, {217, 70, 239, 255}, // Purple, Fuchsia
}

// ColorFor picks a stable palette entry for seed.
func ColorFor(seed string) color.RGBA {
	hash := md5.Sum([]byte(seed))
	n := int(hash[0])<<8 | int(hash[1])
	return PlaceholderColors[n%len(PlaceholderColors)]
}

// MakeSoft keeps the hue of seed, lightens it for a background and darkens
// it for text drawn on that background.
func MakeSoft(seed color.RGBA) SoftColorPair {
	h, s, _ := rgbToHsl(seed.R, seed.G, seed.B)

	bgR, bgG, bgB := hslToRgb(h, math.Min(s, 0.6), 0.90)
	textR, textG, textB := hslToRgb(h, math.Min(s+0.2, 1.0), 0.20)

	return SoftColorPair{
		Background: color.RGBA{bgR, bgG, bgB, 255},
		Text:       color.RGBA{textR, textG, textB, 255},
	}
}

func rgbToHsl(r, g, b uint8) (h, s, l float64) {
	rf, gf, bf := float64(r)/255.0, float64(g)/255.0, float64(b)/255.0
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l = (max + min) / 2.0

	if max == min {
		return 0, 0, l
	}

	d := max - min
	s = d / (max + min)
	if l > 0.5 {
		s = d / (2.0 - max - min)
	}
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6.0
		}
	case gf:
		h = (bf-rf)/d + 2.0
	case bf:
		h = (rf-gf)/d + 4.0
	}
	h *= 60.0
	return h, s, l
}

func hslToRgb(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := uint8(l * 255)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	rf := hueToRgb(p, q, h/360.0+1.0/3.0)
	gf := hueToRgb(p, q, h/360.0)
	bf := hueToRgb(p, q, h/360.0-1.0/3.0)
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRgb(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}
