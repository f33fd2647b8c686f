package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// fillRect writes c over r ∩ clip, ignoring alpha.
func fillRect(dst *image.RGBA, r, clip image.Rectangle, c color.RGBA) {
	r = r.Intersect(clip)
	if r.Empty() {
		return
	}
	c.A = 0xFF
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeLine draws a 1px line from (x0,y0) to (x1,y1) inclusive with
// Bresenham's algorithm, skipping pixels outside clip. The segment is cut
// to clip first, so the walk is bounded by the clip size.
func strokeLine(dst *image.RGBA, x0, y0, x1, y1 int, clip image.Rectangle, c color.RGBA) {
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, clip)
	if !ok {
		return
	}
	c.A = 0xFF
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if (image.Point{X: x0, Y: y0}).In(clip) {
			dst.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipSegment cuts the segment to clip grown by one pixel (Liang-Barsky).
// The margin keeps rounded endpoints from shortening the visible part.
func clipSegment(x0, y0, x1, y1 int, clip image.Rectangle) (int, int, int, int, bool) {
	if clip.Empty() {
		return 0, 0, 0, 0, false
	}
	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	minX, maxX := float64(clip.Min.X-1), float64(clip.Max.X)
	minY, maxY := float64(clip.Min.Y-1), float64(clip.Max.Y)

	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, fx0 - minX},
		{dx, maxX - fx0},
		{-dy, fy0 - minY},
		{dy, maxY - fy0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	if t0 > 0 {
		x0, y0 = int(math.Round(fx0+t0*dx)), int(math.Round(fy0+t0*dy))
	}
	if t1 < 1 {
		x1, y1 = int(math.Round(fx0+t1*dx)), int(math.Round(fy0+t1*dy))
	}
	return x0, y0, x1, y1, true
}

// blit composites src over dst with src's top-left at at, limited to clip.
func blit(dst *image.RGBA, src image.Image, at image.Point, clip image.Rectangle) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}.Intersect(clip)
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, src, sb.Min.Add(r.Min.Sub(at)), draw.Over)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
