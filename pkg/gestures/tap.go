package gestures

import (
	"math"

	"github.com/go-drift/widgetkit/pkg/graphics"
)

// TapGestureRecognizer recognizes a pointer down followed by an up
// within the touch slop.
type TapGestureRecognizer struct {
	// OnTap fires when a tap is recognized.
	OnTap func()

	arena    *GestureArena
	pointer  int64
	tracking bool
	rejected bool
	down     graphics.Offset
}

// NewTapGestureRecognizer creates a tap recognizer competing in arena.
func NewTapGestureRecognizer(arena *GestureArena) *TapGestureRecognizer {
	if arena == nil {
		arena = DefaultArena
	}
	return &TapGestureRecognizer{arena: arena}
}

// AddPointer starts tracking a pointer from its down event.
func (t *TapGestureRecognizer) AddPointer(event PointerEvent) {
	if event.Phase != PointerPhaseDown || t.tracking {
		return
	}
	t.pointer = event.PointerID
	t.tracking = true
	t.rejected = false
	t.down = event.Position
	t.arena.Add(event.PointerID, t)
}

// HandleEvent processes move/up/cancel events for a tracked pointer.
func (t *TapGestureRecognizer) HandleEvent(event PointerEvent) {
	if !t.tracking || event.PointerID != t.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		if !t.rejected && distance(event.Position, t.down) > DefaultTouchSlop {
			t.rejected = true
			t.arena.Withdraw(t.pointer, t)
		}
	case PointerPhaseUp:
		if !t.rejected {
			t.arena.Claim(t.pointer, t)
		}
		t.tracking = false
	case PointerPhaseCancel:
		t.tracking = false
	}
}

// AcceptGesture fires the tap callback.
func (t *TapGestureRecognizer) AcceptGesture(pointer int64) {
	if t.OnTap != nil {
		t.OnTap()
	}
}

// RejectGesture marks the recognizer as having lost the arena.
func (t *TapGestureRecognizer) RejectGesture(pointer int64) {
	t.rejected = true
}

// Dispose releases the recognizer's callbacks.
func (t *TapGestureRecognizer) Dispose() {
	t.OnTap = nil
	t.tracking = false
}

func distance(a, b graphics.Offset) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
