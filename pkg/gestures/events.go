// Package gestures provides pointer event types and the gesture
// recognizers used by widgetkit widgets.
//
// Recognizers compete for pointers in a [GestureArena]: each pointer
// down opens an arena, recognizers join it via AddPointer, and the
// first recognizer to claim the gesture wins while the rest receive a
// rejection. This keeps a tap from firing at the end of a drag.
//
// Long-press detection is deadline based. The host frame loop must
// call [StepLongPresses] once per frame so presses can mature without
// pointer movement.
package gestures

import (
	"time"

	"github.com/go-drift/widgetkit/pkg/graphics"
)

// PointerPhase identifies the stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown indicates a pointer made contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove indicates a pointer moved while in contact.
	PointerPhaseMove
	// PointerPhaseUp indicates a pointer left the surface.
	PointerPhaseUp
	// PointerPhaseCancel indicates the gesture was cancelled by the system.
	PointerPhaseCancel
)

// PointerEvent describes a single pointer state change.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}

// DefaultTouchSlop is the distance in pixels a pointer may travel
// before a tap or long-press gives way to a drag.
const DefaultTouchSlop = 18.0

// DefaultLongPressTimeout is how long a pointer must stay down before
// a long-press is recognized.
const DefaultLongPressTimeout = 500 * time.Millisecond
