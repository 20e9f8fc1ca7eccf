package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
)

func TestAnimateToInterpolatesLinearly(t *testing.T) {
	clock := installFakeClock(t)

	c := animation.NewAnimationController(time.Second)
	defer c.Dispose()
	completions := 0
	c.OnComplete = func() { completions++ }

	c.AnimateTo(100)
	if !c.IsAnimating() {
		t.Fatal("controller should be animating after AnimateTo")
	}

	clock.Advance(500 * time.Millisecond)
	animation.StepAnimations()
	if c.Value != 50 {
		t.Fatalf("Value at half duration = %v, want 50", c.Value)
	}
	if completions != 0 {
		t.Fatal("OnComplete fired before the target was reached")
	}

	clock.Advance(500 * time.Millisecond)
	animation.StepAnimations()
	if c.Value != 100 {
		t.Fatalf("Value at full duration = %v, want 100", c.Value)
	}
	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	if c.IsAnimating() {
		t.Fatal("controller should stop at the target")
	}
}

func TestAnimateToSnapsWithZeroDuration(t *testing.T) {
	installFakeClock(t)

	c := animation.NewAnimationController(0)
	defer c.Dispose()
	completions := 0
	c.OnComplete = func() { completions++ }

	c.AnimateTo(42)
	if c.Value != 42 {
		t.Fatalf("Value = %v, want 42", c.Value)
	}
	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	if c.IsAnimating() {
		t.Fatal("snap should not leave the controller animating")
	}
}

func TestJumpToStopsWithoutCompleting(t *testing.T) {
	clock := installFakeClock(t)

	c := animation.NewAnimationController(time.Second)
	defer c.Dispose()
	completions := 0
	c.OnComplete = func() { completions++ }
	notified := 0
	c.AddListener(func() { notified++ })

	c.AnimateTo(100)
	clock.Advance(200 * time.Millisecond)
	animation.StepAnimations()

	c.JumpTo(7)
	if c.Value != 7 {
		t.Fatalf("Value = %v, want 7", c.Value)
	}
	if c.IsAnimating() {
		t.Fatal("JumpTo should stop the running animation")
	}
	if completions != 0 {
		t.Fatal("JumpTo should not fire OnComplete")
	}
	if notified != 2 {
		t.Fatalf("listener notified %d times, want 2", notified)
	}

	// The abandoned animation must not keep ticking.
	clock.Advance(time.Second)
	animation.StepAnimations()
	if c.Value != 7 {
		t.Fatalf("Value after abandoned animation = %v, want 7", c.Value)
	}
}

func TestStopHaltsAtCurrentValue(t *testing.T) {
	clock := installFakeClock(t)

	c := animation.NewAnimationController(time.Second)
	defer c.Dispose()
	completions := 0
	c.OnComplete = func() { completions++ }

	c.AnimateTo(100)
	clock.Advance(300 * time.Millisecond)
	animation.StepAnimations()
	c.Stop()

	if c.Value != 30 {
		t.Fatalf("Value = %v, want 30", c.Value)
	}
	if c.IsAnimating() || animation.HasActiveAnimations() {
		t.Fatal("Stop should unregister the controller")
	}
	if completions != 0 {
		t.Fatal("Stop should not fire OnComplete")
	}
}

func TestAddListenerUnsubscribe(t *testing.T) {
	installFakeClock(t)

	c := animation.NewAnimationController(0)
	defer c.Dispose()
	notified := 0
	remove := c.AddListener(func() { notified++ })

	c.JumpTo(1)
	remove()
	c.JumpTo(2)
	if notified != 1 {
		t.Fatalf("listener notified %d times, want 1", notified)
	}
}

func TestEaseOutEndpoints(t *testing.T) {
	for _, curve := range []func(float64) float64{
		animation.LinearCurve,
		animation.EaseOut,
		animation.EaseInOut,
	} {
		if got := curve(0); got != 0 {
			t.Errorf("curve(0) = %v, want 0", got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("curve(1) = %v, want 1", got)
		}
	}
}
