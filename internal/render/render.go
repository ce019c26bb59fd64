package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/dungoboogies/la-traffic-scheduler/internal/render/layout"
)

// ErrInvalidSize is returned when the requested canvas edge is not positive.
var ErrInvalidSize = errors.New("render: size must be positive")

// Drawer is the set of primitives the icon is painted with. Later calls
// paint over earlier ones.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	// Clear resets every pixel to transparent.
	Clear()

	FillRoundedRect(box layout.Box, radius float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
}

// Light is one indicator disc.
type Light struct {
	X, Y   float64
	Radius float64
	Color  color.NRGBA

	glowScale   float64
	shineRadius float64
	shineOffset float64
}

// Glow returns the translucent halo painted under the disc.
func (l Light) Glow() (cx, cy, r float64, c color.NRGBA) {
	return l.X, l.Y, l.Radius * l.glowScale, WithAlpha(Lighten(l.Color, glowLighten), glowAlpha)
}

// Shine returns the highlight dot painted on top of the disc, offset up and left.
func (l Light) Shine() (cx, cy, r float64, c color.NRGBA) {
	off := l.Radius * l.shineOffset
	return l.X - off, l.Y - off, l.Radius * l.shineRadius, Lighten(l.Color, shineLighten)
}

// Layout is the resolved geometry of the icon at one size.
type Layout struct {
	Size int

	Plate       layout.Box
	PlateRadius float64

	Body       layout.Box
	BodyRadius float64

	Lights [3]Light

	// Pole is only painted when HasPole is set; a pole whose foot would sit
	// at or above the body bottom is dropped.
	Pole       layout.Box
	PoleRadius float64
	HasPole    bool
}

// NewLayout computes the icon geometry for a size×size canvas.
func NewLayout(size int, p Proportions) Layout {
	s := float64(size)
	canvas := layout.Square(s)
	margin := math.Trunc(s * p.PlateMargin)

	l := Layout{Size: size}
	l.Plate = layout.Inset(canvas, margin)
	l.PlateRadius = math.Trunc(s * p.PlateRadius)

	bodyW := s * p.BodyWidth
	bodyH := s * p.BodyHeight
	l.Body = layout.Centered(canvas, bodyW, bodyH)
	l.BodyRadius = math.Trunc(bodyW * p.BodyRadius)

	spacing := bodyH / 4
	cx, _ := canvas.Center()
	for i, c := range LightColors {
		l.Lights[i] = Light{
			X:           cx,
			Y:           l.Body.Y0 + spacing*float64(i+1),
			Radius:      bodyW * p.LightRadius,
			Color:       c,
			glowScale:   p.GlowScale,
			shineRadius: p.ShineRadius,
			shineOffset: p.ShineOffset,
		}
	}

	poleW := s * p.PoleWidth
	top := l.Body.Y1
	bottom := s - margin - math.Trunc(s*p.PoleInset)
	l.Pole = layout.Box{X0: (s - poleW) / 2, Y0: top, X1: (s + poleW) / 2, Y1: bottom}
	l.PoleRadius = math.Trunc(poleW * p.PoleRadius)
	l.HasPole = bottom > top
	return l
}

// Draw paints l onto d back to front.
func Draw(d Drawer, l Layout) {
	d.Clear()
	d.FillRoundedRect(l.Plate, l.PlateRadius, Plate)
	d.FillRoundedRect(l.Body, l.BodyRadius, Slate)
	for _, light := range l.Lights {
		d.FillCircle(light.Glow())
		d.FillCircle(light.X, light.Y, light.Radius, light.Color)
		d.FillCircle(light.Shine())
	}
	if l.HasPole {
		d.FillRoundedRect(l.Pole, l.PoleRadius, Slate)
	}
}

// Renderer draws the traffic-light icon.
type Renderer struct {
	Proportions Proportions
	// Op is draw.Src (shapes replace what is under them) or draw.Over.
	Op     draw.Op
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// NewRenderer returns a renderer with the shipped proportions.
func NewRenderer() *Renderer {
	return &Renderer{Proportions: DefaultProportions(), Op: draw.Src}
}

// Render draws the icon on a fresh transparent size×size canvas.
func (r *Renderer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSize, size)
	}
	l := NewLayout(size, r.Proportions)
	c := NewCanvas(size)
	c.Op = r.Op
	Draw(c, l)
	if r.Logger != nil {
		r.Logger.Infof("render", "rendered %dx%d, pole=%t", size, size, l.HasPole)
	}
	return c.Image(), nil
}

// TrafficLight renders the shipped icon at the given size.
func TrafficLight(size int) (*image.NRGBA, error) {
	return NewRenderer().Render(size)
}

// ParseOp maps a composite mode name to a draw.Op.
func ParseOp(name string) (draw.Op, error) {
	switch name {
	case "", "src":
		return draw.Src, nil
	case "over":
		return draw.Over, nil
	}
	return draw.Src, fmt.Errorf("unknown composite mode %q (want src or over)", name)
}
