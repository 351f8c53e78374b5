// Package geometry holds plain two dimensional value types.
package geometry

import "fmt"

// Size is a width and height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Multiplied scales both dimensions by factor.
func (s Size) Multiplied(factor float64) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}
