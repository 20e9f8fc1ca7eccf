package kittest

import (
	"github.com/go-drift/widgetkit/pkg/gestures"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/layout"
)

// nextPointerID is incremented for each synthesized pointer so
// concurrent gestures never collide in the arena.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// TapAt synthesizes a pointer down/up pair at pos against handler and
// sweeps the arena.
func TapAt(handler layout.PointerHandler, arena *gestures.GestureArena, pos graphics.Offset) {
	id := allocPointerID()
	handler.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
	handler.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseUp,
	})
	arena.Sweep(id)
}

// DragFrom synthesizes a drag from start by delta in a number of move
// steps, then releases and sweeps the arena.
func DragFrom(handler layout.PointerHandler, arena *gestures.GestureArena, start, delta graphics.Offset, steps int) {
	if steps < 1 {
		steps = 1
	}
	id := allocPointerID()
	handler.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  start,
		Phase:     gestures.PointerPhaseDown,
	})
	pos := start
	for i := 1; i <= steps; i++ {
		pos = graphics.Offset{
			X: start.X + delta.X*float64(i)/float64(steps),
			Y: start.Y + delta.Y*float64(i)/float64(steps),
		}
		handler.HandlePointer(gestures.PointerEvent{
			PointerID: id,
			Position:  pos,
			Phase:     gestures.PointerPhaseMove,
		})
	}
	handler.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseUp,
	})
	arena.Sweep(id)
}

// PressAt synthesizes a pointer down at pos and returns a release
// function. Combine with FakeClock and gestures.StepLongPresses to
// mature a long press before releasing.
func PressAt(handler layout.PointerHandler, arena *gestures.GestureArena, pos graphics.Offset) func() {
	id := allocPointerID()
	handler.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
	return func() {
		handler.HandlePointer(gestures.PointerEvent{
			PointerID: id,
			Position:  pos,
			Phase:     gestures.PointerPhaseUp,
		})
		arena.Sweep(id)
	}
}
