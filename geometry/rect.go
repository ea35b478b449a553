// Package geometry holds simple plane figure values.
package geometry

// Rect is an axis-aligned rectangle.
type Rect struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRect returns a rectangle with the given dimensions.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns the rectangle area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
