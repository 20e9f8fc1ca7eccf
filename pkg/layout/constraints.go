// Package layout defines the render-box contract widgetkit widgets
// implement.
//
// The contract is deliberately small: a host UI framework owns the
// full constraint solver, pipeline scheduling, and compositing; a
// widgetkit render box only needs to size itself within constraints,
// paint into a [graphics.Canvas], hit test, and receive pointer
// events. Dirty flags (MarkNeedsLayout/MarkNeedsPaint) are exposed so
// hosts can schedule work however they like.
package layout

import "github.com/go-drift/widgetkit/pkg/graphics"

// Constraints describes the min/max size a parent allows a child.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight creates constraints that force an exact size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Constrain returns the size closest to the given size that satisfies
// the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  graphics.Clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: graphics.Clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// IsTight returns true if the constraints permit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}
