package render

import "image/color"

// Icon palette.
var (
	Plate  = color.NRGBA{R: 0x25, G: 0x63, B: 0xEB, A: 0xFF} // #2563eb
	Slate  = color.NRGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF} // slate-800
	Red    = color.NRGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF} // #ef4444
	Yellow = color.NRGBA{R: 0xFA, G: 0xCC, B: 0x15, A: 0xFF} // #facc15
	Green  = color.NRGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF} // #22c55e

	// Top to bottom.
	LightColors = [3]color.NRGBA{Red, Yellow, Green}
)

// MasterSize is the edge length every exported raster is derived from.
const MasterSize = 512

const (
	glowLighten  = 40
	glowAlpha    = 80
	shineLighten = 80
)

// Proportions holds the layout fractions. Fractions without a base in the
// name are relative to the canvas size.
type Proportions struct {
	PlateMargin float64
	PlateRadius float64

	BodyWidth  float64
	BodyHeight float64
	BodyRadius float64 // of body width

	LightRadius float64 // of body width
	GlowScale   float64 // of light radius
	ShineRadius float64 // of light radius
	ShineOffset float64 // of light radius

	PoleWidth  float64
	PoleRadius float64 // of pole width
	PoleInset  float64 // gap between pole foot and plate margin
}

// DefaultProportions returns the proportions of the shipped icon.
func DefaultProportions() Proportions {
	return Proportions{
		PlateMargin: 0.06,
		PlateRadius: 0.18,
		BodyWidth:   0.42,
		BodyHeight:  0.72,
		BodyRadius:  0.28,
		LightRadius: 0.30,
		GlowScale:   1.25,
		ShineRadius: 0.3,
		ShineOffset: 0.25,
		PoleWidth:   0.06,
		PoleRadius:  0.3,
		PoleInset:   0.04,
	}
}

// Lighten adds delta to each color channel, saturating at 255. Alpha is kept.
func Lighten(c color.NRGBA, delta uint8) color.NRGBA {
	add := func(v uint8) uint8 {
		if s := int(v) + int(delta); s < 0xFF {
			return uint8(s)
		}
		return 0xFF
	}
	return color.NRGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
