package widgets

import (
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/layout"
)

// defaultLineHeight is the intrinsic height of a single text line.
const defaultLineHeight = 22.0

// PlaceholderTextView draws a single line of text, falling back to a
// dimmed placeholder while the text is empty.
type PlaceholderTextView struct {
	layout.RenderBoxBase

	// OnChanged fires after every SetText with the new text.
	OnChanged func(text string)

	text             string
	placeholder      string
	textColor        graphics.Color
	placeholderColor graphics.Color
}

// NewPlaceholderTextView creates a text view showing placeholder until
// text is set.
func NewPlaceholderTextView(placeholder string) *PlaceholderTextView {
	p := &PlaceholderTextView{
		placeholder:      placeholder,
		textColor:        graphics.RGB(0x00, 0x00, 0x00),
		placeholderColor: graphics.RGB(0x99, 0x99, 0x99),
	}
	p.SetSelf(p)
	return p
}

// Text returns the current text.
func (p *PlaceholderTextView) Text() string {
	return p.text
}

// SetText replaces the text. An empty string brings the placeholder back.
func (p *PlaceholderTextView) SetText(text string) {
	if p.text == text {
		return
	}
	p.text = text
	p.MarkNeedsPaint()
	if p.OnChanged != nil {
		p.OnChanged(text)
	}
}

// Placeholder returns the placeholder text.
func (p *PlaceholderTextView) Placeholder() string {
	return p.placeholder
}

// SetPlaceholder replaces the placeholder text.
func (p *PlaceholderTextView) SetPlaceholder(placeholder string) {
	if p.placeholder == placeholder {
		return
	}
	p.placeholder = placeholder
	if p.text == "" {
		p.MarkNeedsPaint()
	}
}

// SetTextColor sets the color used for non-empty text.
func (p *PlaceholderTextView) SetTextColor(color graphics.Color) {
	p.textColor = color
	p.MarkNeedsPaint()
}

// SetPlaceholderColor sets the color used for the placeholder.
func (p *PlaceholderTextView) SetPlaceholderColor(color graphics.Color) {
	p.placeholderColor = color
	p.MarkNeedsPaint()
}

// ShowingPlaceholder returns true while the placeholder is displayed.
func (p *PlaceholderTextView) ShowingPlaceholder() bool {
	return p.text == ""
}

func (p *PlaceholderTextView) PerformLayout() {
	constraints := p.Constraints()
	p.SetSize(constraints.Constrain(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: defaultLineHeight,
	}))
}

func (p *PlaceholderTextView) Paint(ctx *layout.PaintContext) {
	size := p.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	text := p.text
	color := p.textColor
	if text == "" {
		text = p.placeholder
		color = p.placeholderColor
	}
	if text == "" {
		return
	}
	origin := graphics.Offset{Y: (size.Height - defaultLineHeight) / 2}
	ctx.Canvas.DrawText(text, origin, graphics.Paint{Color: color})
}

func (p *PlaceholderTextView) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, p.Size()) {
		return false
	}
	result.Add(p)
	return true
}
