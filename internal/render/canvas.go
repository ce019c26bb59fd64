package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/dungoboogies/la-traffic-scheduler/internal/render/layout"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498307936

// Canvas is an offscreen NRGBA bitmap implementing Drawer. Shape coverage
// is computed with an anti-aliasing rasterizer.
type Canvas struct {
	img  *image.NRGBA
	mask *image.Alpha
	z    *vector.Rasterizer

	// Op selects how a shape meets the pixels under it. With draw.Src a
	// fully covered pixel takes the shape color as is, alpha included.
	Op draw.Op
}

// NewCanvas returns a transparent size×size canvas.
func NewCanvas(size int) *Canvas {
	bounds := image.Rect(0, 0, size, size)
	return &Canvas{
		img:  image.NewNRGBA(bounds),
		mask: image.NewAlpha(bounds),
		z:    vector.NewRasterizer(size, size),
		Op:   draw.Src,
	}
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing bitmap.
func (c *Canvas) Image() *image.NRGBA { return c.img }

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) FillRoundedRect(box layout.Box, radius float64, col color.NRGBA) {
	box = layout.Normalize(box)
	if box.Empty() {
		return
	}
	r := layout.ClampRadius(box, radius)
	w, h := c.Size()
	c.z.Reset(w, h)

	x0, y0, x1, y1 := box.X0, box.Y0, box.X1, box.Y1
	k := r * kappa
	c.moveTo(x0+r, y0)
	c.lineTo(x1-r, y0)
	if r > 0 {
		c.cubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	}
	c.lineTo(x1, y1-r)
	if r > 0 {
		c.cubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	}
	c.lineTo(x0+r, y1)
	if r > 0 {
		c.cubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	}
	c.lineTo(x0, y0+r)
	if r > 0 {
		c.cubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	}
	c.z.ClosePath()
	c.fill(box, col)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if r <= 0 {
		return
	}
	w, h := c.Size()
	c.z.Reset(w, h)

	k := r * kappa
	c.moveTo(cx+r, cy)
	c.cubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	c.cubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	c.cubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	c.cubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	c.z.ClosePath()
	c.fill(layout.Circle(cx, cy, r), col)
}

func (c *Canvas) moveTo(x, y float64) { c.z.MoveTo(float32(x), float32(y)) }
func (c *Canvas) lineTo(x, y float64) { c.z.LineTo(float32(x), float32(y)) }

func (c *Canvas) cubeTo(x1, y1, x2, y2, x, y float64) {
	c.z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}

// fill rasterizes the pending path into the coverage mask and paints col
// through it. Only pixels near bounds can be touched.
func (c *Canvas) fill(bounds layout.Box, col color.NRGBA) {
	clear(c.mask.Pix)
	c.z.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	area := bounds.Pixels().Inset(-1).Intersect(c.img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := c.mask.Pix[c.mask.PixOffset(x, y)]
			if cov == 0 {
				continue
			}
			i := c.img.PixOffset(x, y)
			if cov == 0xFF && (c.Op == draw.Src || col.A == 0xFF) {
				c.img.Pix[i+0] = col.R
				c.img.Pix[i+1] = col.G
				c.img.Pix[i+2] = col.B
				c.img.Pix[i+3] = col.A
				continue
			}
			dst := color.NRGBA{R: c.img.Pix[i+0], G: c.img.Pix[i+1], B: c.img.Pix[i+2], A: c.img.Pix[i+3]}
			out := blend(dst, col, cov, c.Op)
			c.img.Pix[i+0] = out.R
			c.img.Pix[i+1] = out.G
			c.img.Pix[i+2] = out.B
			c.img.Pix[i+3] = out.A
		}
	}
}

// blend mixes src into dst at the given coverage, in premultiplied space.
// Src interpolates between dst and src; Over composites src on top of dst.
func blend(dst, src color.NRGBA, cov uint8, op draw.Op) color.NRGBA {
	m := float64(cov) / 0xFF
	sa := float64(src.A) / 0xFF
	da := float64(dst.A) / 0xFF

	var w, keep float64
	if op == draw.Over {
		w = sa * m
		keep = 1 - w
	} else {
		w = sa * m
		keep = 1 - m
	}
	oa := w + da*keep
	if oa <= 0 {
		return color.NRGBA{}
	}
	ch := func(s, d uint8) uint8 {
		v := (float64(s)*w + float64(d)*da*keep) / oa
		return uint8(math.Min(math.Round(v), 0xFF))
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: uint8(math.Min(math.Round(oa*0xFF), 0xFF)),
	}
}
