// Package graphics provides geometry, color, and canvas primitives for
// widgetkit render boxes.
//
// Widgets paint into a [Canvas]. The package ships a single recording
// implementation, [DisplayList], which captures drawing operations as
// plain structs. Hosts replay the recorded ops against their own
// rasterizer; tests inspect them directly. Pixel-level rendering is
// deliberately out of scope.
package graphics

// Canvas receives drawing operations from render boxes.
//
// The transform and clip form a stack: Save pushes the current state,
// Restore pops it. SaveLayerBlur additionally composites everything
// drawn so far within bounds through a Gaussian blur when restored,
// which is how BlurView achieves its backdrop effect.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	ClipRect(rect Rect)
	ClipRRect(rrect RRect)
	SaveLayerBlur(bounds Rect, sigmaX, sigmaY float64)
	DrawRect(rect Rect, paint Paint)
	DrawText(text string, origin Offset, paint Paint)
}
