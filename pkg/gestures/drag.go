package gestures

import (
	"math"
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
	"github.com/go-drift/widgetkit/pkg/graphics"
)

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	Position graphics.Offset
}

// DragUpdateDetails describes a drag update.
type DragUpdateDetails struct {
	Position graphics.Offset
	Delta    graphics.Offset
	// PrimaryDelta is the delta along the recognizer's axis.
	PrimaryDelta float64
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// PrimaryVelocity is the release velocity along the recognizer's
	// axis, in pixels per second.
	PrimaryVelocity float64
}

// HorizontalDragGestureRecognizer recognizes drags along the X axis.
//
// The recognizer claims the arena once the pointer travels more than
// the touch slop with a predominantly horizontal motion.
type HorizontalDragGestureRecognizer struct {
	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	arena    *GestureArena
	pointer  int64
	tracking bool
	accepted bool
	rejected bool
	down     graphics.Offset
	last     graphics.Offset
	lastTime time.Time
	velocity float64
}

// NewHorizontalDragGestureRecognizer creates a horizontal drag
// recognizer competing in arena.
func NewHorizontalDragGestureRecognizer(arena *GestureArena) *HorizontalDragGestureRecognizer {
	if arena == nil {
		arena = DefaultArena
	}
	return &HorizontalDragGestureRecognizer{arena: arena}
}

// AddPointer starts tracking a pointer from its down event.
func (h *HorizontalDragGestureRecognizer) AddPointer(event PointerEvent) {
	if event.Phase != PointerPhaseDown || h.tracking {
		return
	}
	h.pointer = event.PointerID
	h.tracking = true
	h.accepted = false
	h.rejected = false
	h.down = event.Position
	h.last = event.Position
	h.lastTime = animation.Now()
	h.velocity = 0
	h.arena.Add(event.PointerID, h)
}

// HandleEvent processes move/up/cancel events for a tracked pointer.
func (h *HorizontalDragGestureRecognizer) HandleEvent(event PointerEvent) {
	if !h.tracking || event.PointerID != h.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		h.handleMove(event)
	case PointerPhaseUp:
		h.tracking = false
		if h.accepted {
			h.accepted = false
			if h.OnEnd != nil {
				h.OnEnd(DragEndDetails{PrimaryVelocity: h.velocity})
			}
		}
	case PointerPhaseCancel:
		h.tracking = false
		if h.accepted {
			h.accepted = false
			if h.OnCancel != nil {
				h.OnCancel()
			}
		}
	}
}

func (h *HorizontalDragGestureRecognizer) handleMove(event PointerEvent) {
	if h.rejected {
		return
	}
	if !h.accepted {
		dx := event.Position.X - h.down.X
		dy := event.Position.Y - h.down.Y
		if math.Abs(dx) > DefaultTouchSlop && math.Abs(dx) > math.Abs(dy) {
			h.arena.Claim(h.pointer, h)
		} else if math.Abs(dy) > DefaultTouchSlop {
			// Predominantly vertical: give up so a vertical scroller can win.
			h.rejected = true
			h.arena.Withdraw(h.pointer, h)
			return
		}
	}
	if !h.accepted {
		return
	}

	now := animation.Now()
	delta := graphics.Offset{
		X: event.Position.X - h.last.X,
		Y: event.Position.Y - h.last.Y,
	}
	if dt := now.Sub(h.lastTime).Seconds(); dt > 0 {
		h.velocity = delta.X / dt
	}
	h.last = event.Position
	h.lastTime = now

	if h.OnUpdate != nil {
		h.OnUpdate(DragUpdateDetails{
			Position:     event.Position,
			Delta:        delta,
			PrimaryDelta: delta.X,
		})
	}
}

// AcceptGesture begins the drag. A sweep can hand out a default win
// after the pointer is already up; there is no drag left to begin, so
// a stale accept is ignored.
func (h *HorizontalDragGestureRecognizer) AcceptGesture(pointer int64) {
	if !h.tracking {
		return
	}
	h.accepted = true
	h.last = h.down
	if h.OnStart != nil {
		h.OnStart(DragStartDetails{Position: h.down})
	}
}

// RejectGesture marks the recognizer as having lost the arena.
func (h *HorizontalDragGestureRecognizer) RejectGesture(pointer int64) {
	h.rejected = true
}

// Dispose releases the recognizer's callbacks.
func (h *HorizontalDragGestureRecognizer) Dispose() {
	h.OnStart = nil
	h.OnUpdate = nil
	h.OnEnd = nil
	h.OnCancel = nil
	h.tracking = false
}
