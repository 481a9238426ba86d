package world

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRayCastAgainstBox(t *testing.T) {
	w := New()
	w.AddBox(0, 100, 200, 50, LayerGround, nil)

	hit, ok := w.RayCast(50, 60, 0, 1, 100, LayerGround)
	if !ok {
		t.Fatalf("ray straight down should hit the box")
	}
	if math.Abs(hit.Distance-40) > 0.001 {
		t.Fatalf("distance = %f, want 40", hit.Distance)
	}
	if hit.NY >= 0 {
		t.Fatalf("top surface normal should point up (negative y), ny = %f", hit.NY)
	}

	if _, ok := w.RayCast(50, 60, 0, 1, 30, LayerGround); ok {
		t.Fatalf("ray shorter than the gap should miss")
	}
	if _, ok := w.RayCast(50, 60, 0, -1, 100, LayerGround); ok {
		t.Fatalf("ray pointing away should miss")
	}
}

func TestRayCastLayerFiltering(t *testing.T) {
	w := New()
	w.AddBox(0, 100, 200, 50, LayerGround, nil)

	if _, ok := w.RayCast(50, 60, 0, 1, 100, LayerClimbable); ok {
		t.Fatalf("mask excluding the shape's layer must not hit")
	}
	if _, ok := w.RayCast(50, 60, 0, 1, 100, LayerGround|LayerClimbable); !ok {
		t.Fatalf("mask including the shape's layer must hit")
	}
}

func TestBoxOverlapCollectsByLayer(t *testing.T) {
	w := New()
	w.AddBox(0, 0, 50, 50, LayerGround, nil)
	w.AddBox(40, 0, 50, 50, LayerHittable, nil)
	w.AddBox(300, 300, 50, 50, LayerHittable, nil)

	probe := cp.BB{L: 30, B: 10, R: 60, T: 40}
	if got := len(w.BoxOverlap(probe, LayerGround|LayerHittable)); got != 2 {
		t.Fatalf("overlap count = %d, want 2", got)
	}
	if got := len(w.BoxOverlap(probe, LayerHittable)); got != 1 {
		t.Fatalf("hittable-only overlap count = %d, want 1", got)
	}
}

func TestRootOfPrefersShapeThenBody(t *testing.T) {
	w := New()
	type owner struct{ name string }

	bodyOwner := &owner{"body"}
	body := w.AddActorBody(bodyOwner, 10, 10)
	shape := w.AttachBoxShape(body, 10, 10, LayerHittable)
	if RootOf(shape) != bodyOwner {
		t.Fatalf("root should fall back to body user data")
	}

	shapeOwner := &owner{"shape"}
	shape.UserData = shapeOwner
	if RootOf(shape) != shapeOwner {
		t.Fatalf("shape user data should win over body user data")
	}

	orphan := w.AddBox(0, 0, 5, 5, LayerGround, nil)
	if RootOf(orphan) != orphan {
		t.Fatalf("shape without any owner should be its own root")
	}
}

func TestMoveBodyUpdatesQueries(t *testing.T) {
	w := New()
	body := w.AddActorBody(nil, 50, 50)
	w.AttachBoxShape(body, 20, 20, LayerHittable)

	if _, ok := w.RayCast(50, 0, 0, 1, 100, LayerHittable); !ok {
		t.Fatalf("ray should hit the shape at its spawn position")
	}

	w.MoveBody(body, 200, 50)
	if _, ok := w.RayCast(50, 0, 0, 1, 100, LayerHittable); ok {
		t.Fatalf("ray at the old position should miss after the move")
	}
	if _, ok := w.RayCast(200, 0, 0, 1, 100, LayerHittable); !ok {
		t.Fatalf("ray at the new position should hit after the move")
	}
	if got := len(w.BoxOverlap(cp.BB{L: 190, B: 45, R: 210, T: 55}, LayerHittable)); got != 1 {
		t.Fatalf("overlap at the new position = %d, want 1", got)
	}
}

func TestMoverPingPong(t *testing.T) {
	w := New()
	// center starts at (50, 10), runs to (150, 10) and back at 100 px/s
	m := w.AddMover(0, 0, 100, 20, 100, false, [][2]float64{{150, 10}})

	pos := func() float64 { return m.body.Position().X }

	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60)
	}
	if math.Abs(pos()-150) > 1 {
		t.Fatalf("after 1s at 100 px/s, x = %f, want 150", pos())
	}

	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60)
	}
	if math.Abs(pos()-50) > 1 {
		t.Fatalf("mover should ping-pong back to start, x = %f", pos())
	}

	vx, _ := m.Velocity()
	if math.Abs(math.Abs(vx)-100) > 1 {
		t.Fatalf("|vx| = %f, want 100", math.Abs(vx))
	}
	dx, dy := m.Delta()
	if math.Abs(math.Abs(dx)-100.0/60) > 0.01 || dy != 0 {
		t.Fatalf("per-step delta = (%f, %f), want (±%f, 0)", dx, dy, 100.0/60)
	}
}

func TestLadderAt(t *testing.T) {
	w := New()
	l := w.AddLadder(90, 0, 20, 100)
	if l.CenterX != 100 {
		t.Fatalf("ladder center = %f, want 100", l.CenterX)
	}

	if got := w.LadderAt(cp.BB{L: 95, B: 40, R: 105, T: 60}); got != l {
		t.Fatalf("overlapping box should find the ladder")
	}
	if got := w.LadderAt(cp.BB{L: 200, B: 40, R: 220, T: 60}); got != nil {
		t.Fatalf("distant box should find nothing")
	}
}

func TestBuildLevel(t *testing.T) {
	spec := LevelSpec{
		Name:   "test",
		Width:  300,
		Height: 200,
		Solids: []BoxSpec{{X: 0, Y: 150, Width: 300, Height: 50}},
		Slopes: []SlopeSpec{{X0: 100, Y0: 150, X1: 150, Y1: 120}},
		Ladders: []BoxSpec{
			{X: 200, Y: 50, Width: 20, Height: 100},
		},
		Movers: []MoverSpec{
			{X: 20, Y: 100, Width: 40, Height: 10, Speed: 30, Path: [][2]float64{{100, 105}}},
		},
	}
	w := Build(spec)

	if _, ok := w.RayCast(50, 100, 0, 1, 100, LayerGround); !ok {
		t.Fatalf("solid not present")
	}
	if w.LadderAt(cp.BB{L: 205, B: 60, R: 215, T: 80}) == nil {
		t.Fatalf("ladder not present")
	}
	// boundary walls enclose the arena
	if _, ok := w.RayCast(150, 100, -1, 0, 500, LayerGround); !ok {
		t.Fatalf("left boundary missing")
	}
	if _, ok := w.RayCast(150, 100, 1, 0, 500, LayerGround); !ok {
		t.Fatalf("right boundary missing")
	}
}
