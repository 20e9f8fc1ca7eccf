package graphics

import (
	"image"
	"image/color"
	"testing"
)

func checkerboard(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{A: 0xff}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// contrast measures the mean absolute difference between horizontally
// adjacent pixels in the red channel.
func contrast(img *image.RGBA) float64 {
	bounds := img.Bounds()
	var total, samples float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X-1; x++ {
			a := img.RGBAAt(x, y).R
			b := img.RGBAAt(x+1, y).R
			diff := float64(a) - float64(b)
			if diff < 0 {
				diff = -diff
			}
			total += diff
			samples++
		}
	}
	return total / samples
}

func TestApproximateBlurSmoothsEdges(t *testing.T) {
	src := checkerboard(64, 8)
	blurred := ApproximateBlur(src, 6)

	if got, want := blurred.Bounds(), src.Bounds(); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
	before := contrast(src)
	after := contrast(blurred)
	if after >= before {
		t.Errorf("contrast after blur = %v, want less than %v", after, before)
	}
}

func TestApproximateBlurStrengthScalesWithSigma(t *testing.T) {
	src := checkerboard(64, 8)
	light := contrast(ApproximateBlur(src, 2))
	heavy := contrast(ApproximateBlur(src, 12))
	if heavy >= light {
		t.Errorf("heavy blur contrast = %v, want less than light blur %v", heavy, light)
	}
}

func TestApproximateBlurZeroSigmaCopies(t *testing.T) {
	src := checkerboard(16, 4)
	out := ApproximateBlur(src, 0)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if out.RGBAAt(x, y) != src.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) changed with zero sigma", x, y)
			}
		}
	}
}

func TestBlurFilter(t *testing.T) {
	f := BlurFilter(4)
	if f.Type != ImageFilterBlur {
		t.Errorf("Type = %v, want ImageFilterBlur", f.Type)
	}
	if f.SigmaX != 4 || f.SigmaY != 4 {
		t.Errorf("sigma = %v/%v, want 4/4", f.SigmaX, f.SigmaY)
	}
}
