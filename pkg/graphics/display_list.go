package graphics

// DisplayOp is a single recorded canvas operation. Exactly one of the
// typed op structs below is stored in Op.
type DisplayOp struct {
	Op any
}

// SaveOp records a Save call.
type SaveOp struct{}

// RestoreOp records a Restore call.
type RestoreOp struct{}

// TranslateOp records a Translate call.
type TranslateOp struct {
	Dx float64
	Dy float64
}

// ClipRectOp records a ClipRect call.
type ClipRectOp struct {
	Rect Rect
}

// ClipRRectOp records a ClipRRect call.
type ClipRRectOp struct {
	RRect RRect
}

// SaveLayerBlurOp records a SaveLayerBlur call.
type SaveLayerBlurOp struct {
	Bounds Rect
	SigmaX float64
	SigmaY float64
}

// DrawRectOp records a DrawRect call.
type DrawRectOp struct {
	Rect  Rect
	Paint Paint
}

// DrawTextOp records a DrawText call.
type DrawTextOp struct {
	Text   string
	Origin Offset
	Paint  Paint
}

// DisplayList is a Canvas that records operations for later replay or
// inspection. The zero value is ready to use.
type DisplayList struct {
	ops []DisplayOp
}

// Ops returns the recorded operations in draw order.
func (d *DisplayList) Ops() []DisplayOp {
	return d.ops
}

// Reset discards all recorded operations.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

func (d *DisplayList) record(op any) {
	d.ops = append(d.ops, DisplayOp{Op: op})
}

func (d *DisplayList) Save() {
	d.record(SaveOp{})
}

func (d *DisplayList) Restore() {
	d.record(RestoreOp{})
}

func (d *DisplayList) Translate(dx, dy float64) {
	d.record(TranslateOp{Dx: dx, Dy: dy})
}

func (d *DisplayList) ClipRect(rect Rect) {
	d.record(ClipRectOp{Rect: rect})
}

func (d *DisplayList) ClipRRect(rrect RRect) {
	d.record(ClipRRectOp{RRect: rrect})
}

func (d *DisplayList) SaveLayerBlur(bounds Rect, sigmaX, sigmaY float64) {
	d.record(SaveLayerBlurOp{Bounds: bounds, SigmaX: sigmaX, SigmaY: sigmaY})
}

func (d *DisplayList) DrawRect(rect Rect, paint Paint) {
	d.record(DrawRectOp{Rect: rect, Paint: paint})
}

func (d *DisplayList) DrawText(text string, origin Offset, paint Paint) {
	d.record(DrawTextOp{Text: text, Origin: origin, Paint: paint})
}
