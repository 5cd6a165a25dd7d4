package tween

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestElasticOutEndpoints(t *testing.T) {
	e := ElasticOut(1, 0.75)

	if got := e(0, 10, -10, 1); got != 10 {
		t.Fatalf("expected begin value at t=0, got %f", got)
	}
	if got := e(1, 10, -10, 1); got != 0 {
		t.Fatalf("expected end value at t=d, got %f", got)
	}
}

func TestElasticOutNeverExceedsStart(t *testing.T) {
	e := ElasticOut(1, 0.75)
	overshoot := false

	// Returning from 8 to 0: the value may swing past 0 but never beyond |8|.
	for i := 0; i <= 1000; i++ {
		v := e(float32(i)/1000, 8, -8, 1)
		if math.Abs(float64(v)) > 8+1e-4 {
			t.Fatalf("value %f at step %d exceeds start magnitude", v, i)
		}
		if v < 0 {
			overshoot = true
		}
	}
	if !overshoot {
		t.Fatal("expected the elastic curve to overshoot the end value")
	}
}

func TestTweenReachesEndExactly(t *testing.T) {
	tw := New(Vec{X: 0, Y: 0}, Vec{X: 3.3, Y: -1.7}, 0.2, ease.OutQuad)

	var v Vec
	var done bool
	for i := 0; i < 20 && !done; i++ {
		v, done = tw.Update(1.0 / 60)
	}
	if !done {
		t.Fatal("tween should finish within its duration")
	}
	if v != (Vec{X: 3.3, Y: -1.7}) {
		t.Fatalf("expected exact end value, got %v", v)
	}
	if !tw.Finished() {
		t.Fatal("Finished should report true")
	}
}

func TestTweenProgressesMonotonically(t *testing.T) {
	tw := New(Vec{}, Vec{X: 10}, 0.3, ease.OutQuad)

	prev := 0.0
	for i := 0; i < 18; i++ {
		v, _ := tw.Update(1.0 / 60)
		if v.X < prev || v.X > 10 {
			t.Fatalf("step %d: %f not in [%f, 10]", i, v.X, prev)
		}
		prev = v.X
	}
}

func TestThenRunsOnce(t *testing.T) {
	calls := 0
	tw := New(Vec{}, Vec{X: 1}, 0.05, ease.OutQuad).Then(func() { calls++ })

	for i := 0; i < 20; i++ {
		tw.Update(1.0 / 60)
	}
	if calls != 1 {
		t.Fatalf("expected continuation to run once, ran %d times", calls)
	}
}

func TestZeroDurationFinishesImmediately(t *testing.T) {
	tw := New(Vec{X: 1}, Vec{X: 2}, 0, ease.OutQuad)
	v, done := tw.Update(1.0 / 60)
	if !done || v.X != 2 {
		t.Fatalf("expected immediate completion at end value, got %v %v", v, done)
	}
}
