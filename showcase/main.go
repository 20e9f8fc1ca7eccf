// Package main provides a headless widgetkit demo.
// It drives a carousel through a few frames and prints what each
// widget paints, standing in for a host render loop.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
	"github.com/go-drift/widgetkit/pkg/gestures"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/layout"
	"github.com/go-drift/widgetkit/pkg/theme"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

var pages = []string{"Mountains", "Oceans", "Forests", "Deserts", "Cities"}

func main() {
	appTheme, err := theme.Resolve(".")
	if err != nil {
		log.Fatal(err)
	}

	carousel := widgets.NewCarouselView(widgets.CarouselViewConfig{
		Interval:      appTheme.CarouselInterval,
		NumberOfItems: func() int { return len(pages) },
		ItemBuilder:   buildSlide,
		UpdateItem: func(slot layout.RenderBox, index int) {
			bindSlide(slot, pages[index])
		},
		OnTap: func(page int) {
			fmt.Printf("tapped %q\n", pages[page])
		},
		OnPageDidChange: func(page int) {
			fmt.Printf("page -> %d (%s)\n", page, pages[page])
		},
	}, nil)
	defer carousel.Dispose()

	root := widgets.NewBlurView(appTheme.BlurSigma, carousel)

	viewport := graphics.Size{Width: 390, Height: 260}
	deadline := time.Now().Add(2 * appTheme.CarouselInterval)
	for time.Now().Before(deadline) {
		animation.StepTimers()
		animation.StepAnimations()
		gestures.StepLongPresses()

		root.Layout(layout.Tight(viewport), false)
		list := &graphics.DisplayList{}
		root.Paint(&layout.PaintContext{Canvas: list})

		time.Sleep(16 * time.Millisecond)
	}

	list := &graphics.DisplayList{}
	root.Paint(&layout.PaintContext{Canvas: list})
	var texts []string
	for _, op := range list.Ops() {
		if draw, ok := op.Op.(graphics.DrawTextOp); ok {
			texts = append(texts, draw.Text)
		}
	}
	fmt.Printf("final frame: %d ops, visible slides %v\n", len(list.Ops()), texts)
}

// buildSlide creates one reusable carousel slot: a rounded card with a
// single line of text.
func buildSlide() layout.RenderBox {
	text := widgets.NewPlaceholderTextView("loading...")
	card := widgets.NewRoundedBox(12, text)
	card.SetBackground(graphics.RGB(0xee, 0xee, 0xf2))
	return card
}

// bindSlide points a slot at a page title.
func bindSlide(slot layout.RenderBox, title string) {
	card := slot.(*widgets.RoundedBox)
	// The card's only child is the text view created in buildSlide.
	card.VisitChildren(func(child layout.RenderObject) {
		if text, ok := child.(*widgets.PlaceholderTextView); ok {
			text.SetText(title)
		}
	})
}
