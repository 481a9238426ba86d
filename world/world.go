package world

import (
	"github.com/jakecoffman/cp"
)

// Layer is a collision-layer bitmask mapped onto chipmunk shape filter
// categories. Queries select layers with a mask; shapes belong to one or
// more layers.
type Layer uint

const (
	LayerGround Layer = 1 << iota
	LayerClimbable
	LayerLadder
	LayerMover
	LayerHittable
	LayerPlayer
)

// World wraps a cp.Space used purely as a geometric oracle: ray casts, box
// overlaps and mover bookkeeping. Nothing here integrates velocities; the
// locomotion controller owns its own integration.
type World struct {
	space   *cp.Space
	movers  []*Mover
	ladders []*Ladder
}

func New() *World {
	return &World{space: cp.NewSpace()}
}

func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Hit is the result of a ray cast: impact point, surface normal and travel
// distance along the ray.
type Hit struct {
	X, Y     float64
	NX, NY   float64
	Distance float64
	Shape    *cp.Shape
}

// RayCast casts from (x, y) along the unit direction (dx, dy) up to length,
// against shapes on the given layers. Returns the nearest hit.
func (w *World) RayCast(x, y, dx, dy, length float64, mask Layer) (Hit, bool) {
	if w == nil || w.space == nil || length <= 0 {
		return Hit{}, false
	}
	start := cp.Vector{X: x, Y: y}
	end := cp.Vector{X: x + dx*length, Y: y + dy*length}
	info := w.space.SegmentQueryFirst(start, end, 0, queryFilter(mask))
	if info.Shape == nil {
		return Hit{}, false
	}
	return Hit{
		X:        info.Point.X,
		Y:        info.Point.Y,
		NX:       info.Normal.X,
		NY:       info.Normal.Y,
		Distance: info.Alpha * length,
		Shape:    info.Shape,
	}, true
}

// BoxOverlap collects every shape on the given layers whose bounding box
// intersects bb.
func (w *World) BoxOverlap(bb cp.BB, mask Layer) []*cp.Shape {
	if w == nil || w.space == nil {
		return nil
	}
	var shapes []*cp.Shape
	w.space.BBQuery(bb, queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		shapes = append(shapes, shape)
	}, nil)
	return shapes
}

// RootOf resolves the owning object of a shape: shape user data first, then
// body user data, falling back to the shape itself. Multiple colliders on one
// body share a root so hit dedup counts them once.
func RootOf(shape *cp.Shape) any {
	if shape == nil {
		return nil
	}
	if shape.UserData != nil {
		return shape.UserData
	}
	if body := shape.Body(); body != nil && body.UserData != nil {
		return body.UserData
	}
	return shape
}

// AddBox adds a static box with top-left (x, y), screen-down coordinates.
func (w *World) AddBox(x, y, width, height float64, layer Layer, userData any) *cp.Shape {
	bb := cp.BB{L: x, B: y, R: x + width, T: y + height}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFilter(shapeFilter(layer))
	shape.UserData = userData
	w.space.AddShape(shape)
	return shape
}

// AddSegment adds a static segment, used for slopes and level bounds.
func (w *World) AddSegment(x0, y0, x1, y1, radius float64, layer Layer, userData any) *cp.Shape {
	shape := cp.NewSegment(w.space.StaticBody, cp.Vector{X: x0, Y: y0}, cp.Vector{X: x1, Y: y1}, radius)
	shape.SetFilter(shapeFilter(layer))
	shape.UserData = userData
	w.space.AddShape(shape)
	return shape
}

// AddActorBody adds a kinematic body for an actor. The caller attaches
// shapes via AttachBoxShape / AttachCapsuleShape and moves the body with
// MoveBody.
func (w *World) AddActorBody(root any, x, y float64) *cp.Body {
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = root
	w.space.AddBody(body)
	return body
}

// AttachBoxShape attaches a centered box collider to an actor body.
func (w *World) AttachBoxShape(body *cp.Body, width, height float64, layer Layer) *cp.Shape {
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFilter(shapeFilter(layer))
	w.space.AddShape(shape)
	return shape
}

// AttachBoxShapeBB attaches a body-local box collider to an actor body.
// Pose colliders sit offset from the body center, above the step line.
func (w *World) AttachBoxShapeBB(body *cp.Body, bb cp.BB, layer Layer) *cp.Shape {
	shape := cp.NewBox2(body, bb, 0)
	shape.SetFilter(shapeFilter(layer))
	w.space.AddShape(shape)
	return shape
}

// AttachCapsuleShape attaches a vertical capsule (segment with radius) to an
// actor body. Used for the airborne collider pose.
func (w *World) AttachCapsuleShape(body *cp.Body, width, height float64, layer Layer) *cp.Shape {
	radius := width / 2
	half := height/2 - radius
	if half < 0 {
		half = 0
	}
	shape := cp.NewSegment(body, cp.Vector{X: 0, Y: -half}, cp.Vector{X: 0, Y: half}, radius)
	shape.SetFilter(shapeFilter(layer))
	w.space.AddShape(shape)
	return shape
}

// MoveBody repositions a kinematic body and re-caches its shapes so
// subsequent queries see the new pose.
func (w *World) MoveBody(body *cp.Body, x, y float64) {
	if w == nil || w.space == nil || body == nil {
		return
	}
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.EachShape(func(s *cp.Shape) {
		s.CacheBB()
	})
}

// ReattachShape re-adds a previously removed collider. Pose switches remove
// and re-add the same shapes rather than rebuilding them.
func (w *World) ReattachShape(shape *cp.Shape) {
	if w == nil || w.space == nil || shape == nil {
		return
	}
	w.space.AddShape(shape)
}

func (w *World) RemoveShape(shape *cp.Shape) {
	if w == nil || w.space == nil || shape == nil {
		return
	}
	w.space.RemoveShape(shape)
}

func (w *World) RemoveBody(body *cp.Body) {
	if w == nil || w.space == nil || body == nil {
		return
	}
	w.space.RemoveBody(body)
}

// Step advances mover paths. The space itself is never dynamically stepped;
// the oracle stays deterministic.
func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	for _, m := range w.movers {
		m.step(w, dt)
	}
}

func queryFilter(mask Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(cp.ALL_CATEGORIES), uint(mask))
}

func shapeFilter(layer Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(layer), uint(cp.ALL_CATEGORIES))
}
