// Package geom contains immutable two-dimensional extents.
package geom

import (
	"github.com/heistp/valueobject/pretty"
	"gonum.org/v1/gonum/floats"
)

// Dimension2D is a height and width.
type Dimension2D struct {
	Height float64
	Width  float64
}

// Equal returns true if both components are equal. Unlike ==, NaN is equal
// to NaN.
func (d Dimension2D) Equal(o Dimension2D) bool {
	return same(d.Height, d.Width, o.Height, o.Width)
}

// String returns "(height, width)".
func (d Dimension2D) String() string {
	return format(d.Height, d.Width)
}

// Dimensions2D is a height and width that can only be set at construction.
type Dimensions2D struct {
	height float64
	width  float64
}

// NewDimensions2D returns a Dimensions2D with the given height and width.
func NewDimensions2D(height, width float64) Dimensions2D {
	return Dimensions2D{height, width}
}

// Height returns the height.
func (d Dimensions2D) Height() float64 {
	return d.height
}

// Width returns the width.
func (d Dimensions2D) Width() float64 {
	return d.width
}

// Equal returns true if both components are equal. Unlike ==, NaN is equal
// to NaN.
func (d Dimensions2D) Equal(o Dimensions2D) bool {
	return same(d.height, d.width, o.height, o.width)
}

// String returns "(height, width)".
func (d Dimensions2D) String() string {
	return format(d.height, d.width)
}

func same(h1, w1, h2, w2 float64) bool {
	return floats.Same([]float64{h1, w1}, []float64{h2, w2})
}

func format(height, width float64) string {
	return "(" + pretty.Shortest(height) + ", " + pretty.Shortest(width) + ")"
}
