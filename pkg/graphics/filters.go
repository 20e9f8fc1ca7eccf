package graphics

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageFilterType specifies the algorithm used by an ImageFilter.
type ImageFilterType int

const (
	// ImageFilterBlur applies a Gaussian blur effect.
	// Requires SigmaX and SigmaY fields to be set.
	ImageFilterBlur ImageFilterType = iota
)

// ImageFilter describes a filter applied when a layer is composited.
//
// Hosts with a hardware compositor apply the filter natively from the
// recorded [SaveLayerBlurOp]. Hosts without one can use
// [ApproximateBlur] to produce a blurred snapshot on the CPU.
type ImageFilter struct {
	// Type specifies the filter algorithm.
	Type ImageFilterType

	// SigmaX is the horizontal blur radius in pixels.
	SigmaX float64

	// SigmaY is the vertical blur radius in pixels.
	SigmaY float64
}

// BlurFilter creates a Gaussian blur filter with uniform sigma.
func BlurFilter(sigma float64) ImageFilter {
	return ImageFilter{Type: ImageFilterBlur, SigmaX: sigma, SigmaY: sigma}
}

// ApproximateBlur returns a blurred copy of src.
//
// It approximates a Gaussian blur by downscaling with a bilinear kernel
// and scaling back up, which is visually close for the sigma range used
// by frosted-glass backdrops and far cheaper than a true convolution.
// A sigma of zero or less returns an unmodified copy.
func ApproximateBlur(src image.Image, sigma float64) *image.RGBA {
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	if sigma <= 0 {
		draw.Copy(out, bounds.Min, src, bounds, draw.Src, nil)
		return out
	}

	// Each halving of resolution approximates one blur octave.
	scale := 1.0 + sigma/2.0
	smallW := int(float64(bounds.Dx()) / scale)
	smallH := int(float64(bounds.Dy()) / scale)
	if smallW < 1 {
		smallW = 1
	}
	if smallH < 1 {
		smallH = 1
	}

	small := image.NewRGBA(image.Rect(0, 0, smallW, smallH))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), src, bounds, draw.Src, nil)
	draw.BiLinear.Scale(out, bounds, small, small.Bounds(), draw.Src, nil)
	return out
}
