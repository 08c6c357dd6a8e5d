package assets

import (
	"image"
	"image/color"
)

func newCanvas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// blendPx composites src over dst at (x, y).
func blendPx(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{x, y}).In(img.Rect) {
		return
	}
	if c.A == 0xff {
		img.SetRGBA(x, y, c)
		return
	}
	d := img.RGBAAt(x, y)
	a := uint32(c.A)
	na := 255 - a
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(d.R)*na) / 255),
		G: uint8((uint32(c.G)*a + uint32(d.G)*na) / 255),
		B: uint8((uint32(c.B)*a + uint32(d.B)*na) / 255),
		A: uint8(a + uint32(d.A)*na/255),
	})
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			blendPx(img, x, y, c)
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				blendPx(img, cx+x, cy+y, c)
			}
		}
	}
}

func strokeCircle(img *image.RGBA, cx, cy, r, width int, c color.RGBA) {
	inner := r - width
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d := x*x + y*y
			if d <= r*r && d >= inner*inner {
				blendPx(img, cx+x, cy+y, c)
			}
		}
	}
}

// fillEllipse fills the ellipse inscribed in the box (x0,y0)-(x1,y1).
func fillEllipse(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(x0) + rx
	cy := float64(y0) + ry
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				blendPx(img, x, y, c)
			}
		}
	}
}

// line draws a thick segment by stamping discs along it.
func line(img *image.RGBA, x0, y0, x1, y1, width int, c color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		fillCircle(img, x0, y0, width/2, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		fillCircle(img, x, y, width/2, c)
	}
}

func hline(img *image.RGBA, y int, c color.RGBA) {
	for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
		img.SetRGBA(x, y, c)
	}
}

// flipH returns a horizontally mirrored copy.
func flipH(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(b.Max.X-1-(x-b.Min.X), y, src.RGBAAt(x, y))
		}
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
