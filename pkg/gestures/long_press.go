package gestures

import (
	"sync"
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/graphics"
)

var (
	longPressMu    sync.Mutex
	pendingPresses = make(map[*LongPressGestureRecognizer]struct{})
)

// LongPressGestureRecognizer recognizes a pointer held down past
// [DefaultLongPressTimeout] without moving beyond the touch slop.
//
// Deadlines mature via [StepLongPresses] from the host frame loop, so
// a press is recognized even when the pointer never moves.
type LongPressGestureRecognizer struct {
	// OnLongPressStart fires when the press matures.
	OnLongPressStart func()
	// OnLongPressEnd fires when a matured press is released.
	OnLongPressEnd func()

	arena    *GestureArena
	pointer  int64
	tracking bool
	active   bool
	deadline time.Time
	down     graphics.Offset
}

// NewLongPressGestureRecognizer creates a long-press recognizer
// competing in arena.
func NewLongPressGestureRecognizer(arena *GestureArena) *LongPressGestureRecognizer {
	if arena == nil {
		arena = DefaultArena
	}
	return &LongPressGestureRecognizer{arena: arena}
}

// AddPointer starts tracking a pointer from its down event.
func (l *LongPressGestureRecognizer) AddPointer(event PointerEvent) {
	if event.Phase != PointerPhaseDown || l.tracking {
		return
	}
	l.pointer = event.PointerID
	l.tracking = true
	l.active = false
	l.down = event.Position
	l.deadline = animation.Now().Add(DefaultLongPressTimeout)
	l.arena.Add(event.PointerID, l)
	longPressMu.Lock()
	pendingPresses[l] = struct{}{}
	longPressMu.Unlock()
}

// HandleEvent processes move/up/cancel events for a tracked pointer.
func (l *LongPressGestureRecognizer) HandleEvent(event PointerEvent) {
	if !l.tracking || event.PointerID != l.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		if !l.active && distance(event.Position, l.down) > DefaultTouchSlop {
			l.stopTracking()
			l.arena.Withdraw(l.pointer, l)
		}
	case PointerPhaseUp, PointerPhaseCancel:
		wasActive := l.active
		l.stopTracking()
		if wasActive {
			l.active = false
			fireCallback("gestures.LongPressEnd", l.OnLongPressEnd)
		}
	}
}

// AcceptGesture fires the long-press start callback. An accept
// arriving after the pointer is up (a sweep's default win) is ignored;
// the press ended before it was ever recognized.
func (l *LongPressGestureRecognizer) AcceptGesture(pointer int64) {
	if !l.tracking {
		return
	}
	l.active = true
	fireCallback("gestures.LongPressStart", l.OnLongPressStart)
}

// RejectGesture stops a pending press that lost the arena.
func (l *LongPressGestureRecognizer) RejectGesture(pointer int64) {
	l.stopTracking()
}

// Dispose releases the recognizer's callbacks and pending state.
func (l *LongPressGestureRecognizer) Dispose() {
	l.stopTracking()
	l.OnLongPressStart = nil
	l.OnLongPressEnd = nil
}

func (l *LongPressGestureRecognizer) stopTracking() {
	l.tracking = false
	longPressMu.Lock()
	delete(pendingPresses, l)
	longPressMu.Unlock()
}

// StepLongPresses matures pending presses whose deadline has passed.
// This should be called once per frame from the host loop.
func StepLongPresses() {
	now := animation.Now()
	longPressMu.Lock()
	if len(pendingPresses) == 0 {
		longPressMu.Unlock()
		return
	}
	matured := make([]*LongPressGestureRecognizer, 0, len(pendingPresses))
	for press := range pendingPresses {
		if !now.Before(press.deadline) {
			matured = append(matured, press)
		}
	}
	longPressMu.Unlock()

	for _, press := range matured {
		longPressMu.Lock()
		delete(pendingPresses, press)
		longPressMu.Unlock()
		if press.tracking && !press.active {
			press.arena.Claim(press.pointer, press)
		}
	}
}

func fireCallback(op string, fn func()) {
	if fn == nil {
		return
	}
	defer errors.Recover(op)
	fn()
}
