package widgets

import (
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/layout"
)

// getChildOffset extracts the offset from a child's parent data.
func getChildOffset(child layout.RenderBox) graphics.Offset {
	return layout.ChildOffset(child)
}

// setParentOnChild sets the parent reference on a child render object.
func setParentOnChild(child layout.RenderBox, parent layout.RenderObject) {
	if child == nil {
		return
	}
	layout.SetParentOnChild(child, parent)
}

// withinBounds checks if a position is within the given size.
func withinBounds(position graphics.Offset, size graphics.Size) bool {
	return layout.WithinBounds(position, size)
}

// Clamp constrains a value between min and max bounds.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
