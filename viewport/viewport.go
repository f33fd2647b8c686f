// Package viewport maps logical drawing coordinates to physical surface
// pixels.
package viewport

import "math"

// Transform is an offset plus a uniform scale. The zero value is not the
// identity; use Identity or New.
type Transform struct {
	OffsetX int
	OffsetY int
	Scale   float64
}

// Identity returns the transform with no offset and scale 1.
func Identity() Transform {
	return Transform{Scale: 1}
}

// New returns a transform with the given offset and scale.
func New(offsetX, offsetY int, scale float64) Transform {
	return Transform{OffsetX: offsetX, OffsetY: offsetY, Scale: scale}
}

// Set replaces the transform in place.
func (t *Transform) Set(offsetX, offsetY int, scale float64) {
	t.OffsetX = offsetX
	t.OffsetY = offsetY
	t.Scale = scale
}

// Reset restores the identity transform.
func (t *Transform) Reset() {
	*t = Identity()
}

// MapXY maps a logical point to physical pixels.
func (t Transform) MapXY(x, y int) (int, int) {
	return t.OffsetX + round(float64(x)*t.Scale), t.OffsetY + round(float64(y)*t.Scale)
}

// MapWH maps a logical size to physical pixels.
func (t Transform) MapWH(w, h int) (int, int) {
	return round(float64(w) * t.Scale), round(float64(h) * t.Scale)
}

// MapLength maps a single logical length.
func (t Transform) MapLength(v float64) int {
	return round(v * t.Scale)
}

// SafeScale returns Scale, or 1 when Scale is zero. Use it wherever the
// scale is a divisor.
func (t Transform) SafeScale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// round is shared by every mapping so positions and sizes agree on ties.
func round(v float64) int {
	return int(math.RoundToEven(v))
}
