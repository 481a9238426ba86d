package common

import (
	"math"
	"testing"
)

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name                      string
		current, target, maxDelta float64
		want                      float64
	}{
		{"steps_up", 0, 10, 3, 3},
		{"steps_down", 10, 0, 3, 7},
		{"reaches_without_overshoot", 9, 10, 3, 10},
		{"exact_step", 7, 10, 3, 10},
		{"already_there", 5, 5, 3, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MoveToward(c.current, c.target, c.maxDelta); got != c.want {
				t.Fatalf("MoveToward(%f, %f, %f) = %f, want %f", c.current, c.target, c.maxDelta, got, c.want)
			}
		})
	}
}

func TestSign(t *testing.T) {
	if Sign(2.5) != 1 || Sign(-0.1) != -1 {
		t.Fatalf("sign of nonzero values")
	}
	if Sign(0) != 0 || Sign(math.Copysign(0, -1)) != 0 {
		t.Fatalf("both zeros should have no direction")
	}
	if Sign(math.NaN()) != 0 {
		t.Fatalf("NaN should have no direction")
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatalf("clamp bounds")
	}
	if Clamp01(1.5) != 1 || Clamp01(-0.5) != 0 {
		t.Fatalf("clamp01 bounds")
	}
	if Lerp(10, 20, 0.5) != 15 || Lerp(10, 20, 0) != 10 || Lerp(10, 20, 1) != 20 {
		t.Fatalf("lerp endpoints and midpoint")
	}
}
