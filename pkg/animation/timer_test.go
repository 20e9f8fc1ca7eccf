package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/kittest"
)

func installFakeClock(t *testing.T) *kittest.FakeClock {
	t.Helper()
	clock := kittest.NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

func TestFireTimerFiresAndRearms(t *testing.T) {
	clock := installFakeClock(t)

	fires := 0
	timer := animation.NewFireTimer(time.Second, func() { fires++ })
	timer.Start()
	defer timer.Invalidate()

	want := clock.Now().Add(time.Second)
	if !timer.NextFireTime().Equal(want) {
		t.Fatalf("NextFireTime = %v, want %v", timer.NextFireTime(), want)
	}

	animation.StepTimers()
	if fires != 0 {
		t.Fatal("timer fired before its interval elapsed")
	}

	clock.Advance(time.Second)
	animation.StepTimers()
	if fires != 1 {
		t.Fatalf("fires = %d, want 1", fires)
	}

	// Re-armed one interval from the fire.
	want = clock.Now().Add(time.Second)
	if !timer.NextFireTime().Equal(want) {
		t.Fatalf("NextFireTime after fire = %v, want %v", timer.NextFireTime(), want)
	}

	clock.Advance(time.Second)
	animation.StepTimers()
	if fires != 2 {
		t.Fatalf("fires = %d, want 2", fires)
	}
}

func TestFireTimerFarFutureSuspends(t *testing.T) {
	clock := installFakeClock(t)

	fires := 0
	timer := animation.NewFireTimer(time.Second, func() { fires++ })
	timer.Start()
	defer timer.Invalidate()

	timer.SetNextFireTime(animation.FarFuture)
	clock.Advance(100 * time.Hour)
	animation.StepTimers()
	if fires != 0 {
		t.Fatal("suspended timer fired")
	}

	// Resume one interval from now.
	timer.SetNextFireTime(clock.Now().Add(time.Second))
	clock.Advance(time.Second)
	animation.StepTimers()
	if fires != 1 {
		t.Fatalf("fires = %d, want 1 after resume", fires)
	}
}

func TestFireTimerInvalidate(t *testing.T) {
	clock := installFakeClock(t)

	fires := 0
	timer := animation.NewFireTimer(time.Second, func() { fires++ })
	timer.Start()
	if !timer.IsValid() {
		t.Fatal("started timer should be valid")
	}
	if !animation.HasActiveTimers() {
		t.Fatal("started timer should be registered")
	}

	timer.Invalidate()
	timer.Invalidate()
	if timer.IsValid() {
		t.Fatal("invalidated timer should not be valid")
	}
	if animation.HasActiveTimers() {
		t.Fatal("invalidated timer should be unregistered")
	}

	// SetNextFireTime is inert after invalidation.
	timer.SetNextFireTime(clock.Now())
	clock.Advance(time.Hour)
	animation.StepTimers()
	if fires != 0 {
		t.Fatalf("fires = %d, want 0", fires)
	}
}

func TestFireTimerInvalidateFromCallback(t *testing.T) {
	clock := installFakeClock(t)

	fires := 0
	var timer *animation.FireTimer
	timer = animation.NewFireTimer(time.Second, func() {
		fires++
		timer.Invalidate()
	})
	timer.Start()

	clock.Advance(time.Second)
	animation.StepTimers()
	clock.Advance(time.Second)
	animation.StepTimers()
	if fires != 1 {
		t.Fatalf("fires = %d, want 1", fires)
	}
}

type capturingHandler struct {
	panics []*errors.PanicError
}

func (h *capturingHandler) HandleError(err *errors.KitError) {}
func (h *capturingHandler) HandlePanic(p *errors.PanicError) { h.panics = append(h.panics, p) }

func TestStepTimersRecoversCallbackPanic(t *testing.T) {
	clock := installFakeClock(t)

	handler := &capturingHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	timer := animation.NewFireTimer(time.Second, func() { panic("boom") })
	timer.Start()
	defer timer.Invalidate()

	clock.Advance(time.Second)
	animation.StepTimers()

	if len(handler.panics) != 1 {
		t.Fatalf("reported panics = %d, want 1", len(handler.panics))
	}
	if handler.panics[0].Op != "animation.StepTimers" {
		t.Errorf("panic op = %q", handler.panics[0].Op)
	}
	if !timer.IsValid() {
		t.Error("a panicking callback should not invalidate the timer")
	}
}
