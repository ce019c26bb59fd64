package layout

import (
	"image"
	"math"
)

// Box is an axis-aligned rectangle in continuous canvas coordinates.
// Pixel (x, y) covers [x, x+1) × [y, y+1).
type Box struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Square returns the box covering a size×size canvas.
func Square(size float64) Box {
	return Box{X0: 0, Y0: 0, X1: size, Y1: size}
}

// Centered returns a width×height box centered inside outer.
func Centered(outer Box, width, height float64) Box {
	cx, cy := outer.Center()
	return Box{X0: cx - width/2, Y0: cy - height/2, X1: cx + width/2, Y1: cy + height/2}
}

// Inset shrinks box by padding on all sides.
func Inset(box Box, padding float64) Box {
	if padding <= 0 {
		return box
	}
	return Normalize(Box{X0: box.X0 + padding, Y0: box.Y0 + padding, X1: box.X1 - padding, Y1: box.Y1 - padding})
}

// Normalize ensures X0 <= X1 and Y0 <= Y1.
func Normalize(box Box) Box {
	if box.X0 > box.X1 {
		box.X0, box.X1 = box.X1, box.X0
	}
	if box.Y0 > box.Y1 {
		box.Y0, box.Y1 = box.Y1, box.Y0
	}
	return box
}

func (b Box) Dx() float64 { return b.X1 - b.X0 }
func (b Box) Dy() float64 { return b.Y1 - b.Y0 }

// Empty reports whether the box has no area.
func (b Box) Empty() bool { return b.X0 >= b.X1 || b.Y0 >= b.Y1 }

func (b Box) Center() (x, y float64) {
	return (b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2
}

// Circle returns the bounding box of a circle.
func Circle(cx, cy, r float64) Box {
	return Box{X0: cx - r, Y0: cy - r, X1: cx + r, Y1: cy + r}
}

// Pixels returns the smallest pixel rectangle touching the box.
func (b Box) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(b.X0)), int(math.Floor(b.Y0)),
		int(math.Ceil(b.X1)), int(math.Ceil(b.Y1)),
	)
}

// ClampRadius limits a corner radius to half of the shorter side.
func ClampRadius(box Box, radius float64) float64 {
	if radius < 0 {
		return 0
	}
	maxR := math.Min(box.Dx(), box.Dy()) / 2
	if radius > maxR {
		return maxR
	}
	return radius
}
