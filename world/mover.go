package world

import "github.com/jakecoffman/cp"

// Mover is a kinematic platform the player can ride. Bounding movers hand
// the player over through an explicit trigger volume; contact movers are
// tracked only while the ground probe reports their shape.
type Mover struct {
	Bounding bool

	body  *cp.Body
	shape *cp.Shape

	waypoints []cp.Vector
	target    int
	dir       int
	speed     float64

	deltaX, deltaY float64
	velX, velY     float64
}

// AddMover adds a platform with top-left (x, y) that ping-pongs between its
// start position and the given waypoint centers at speed units per second.
func (w *World) AddMover(x, y, width, height, speed float64, bounding bool, waypoints [][2]float64) *Mover {
	center := cp.Vector{X: x + width/2, Y: y + height/2}
	m := &Mover{
		Bounding:  bounding,
		speed:     speed,
		dir:       1,
		waypoints: []cp.Vector{center},
	}
	for _, wp := range waypoints {
		m.waypoints = append(m.waypoints, cp.Vector{X: wp[0], Y: wp[1]})
	}
	if len(m.waypoints) > 1 {
		m.target = 1
	}

	body := cp.NewKinematicBody()
	body.SetPosition(center)
	body.UserData = m
	w.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFilter(shapeFilter(LayerGround | LayerMover))
	shape.UserData = m
	w.space.AddShape(shape)

	m.body = body
	m.shape = shape
	w.movers = append(w.movers, m)
	return m
}

func (m *Mover) step(w *World, dt float64) {
	if m == nil {
		return
	}
	if len(m.waypoints) < 2 || m.speed <= 0 {
		m.deltaX, m.deltaY = 0, 0
		m.velX, m.velY = 0, 0
		return
	}

	pos := m.body.Position()
	tgt := m.waypoints[m.target]
	to := tgt.Sub(pos)
	dist := to.Length()
	step := m.speed * dt

	var next cp.Vector
	if dist <= step || dist == 0 {
		next = tgt
		// ping-pong between endpoints
		m.target += m.dir
		if m.target >= len(m.waypoints) {
			m.target = len(m.waypoints) - 2
			m.dir = -1
		} else if m.target < 0 {
			m.target = 1
			m.dir = 1
		}
	} else {
		next = pos.Add(to.Mult(step / dist))
	}

	m.deltaX = next.X - pos.X
	m.deltaY = next.Y - pos.Y
	m.velX = m.deltaX / dt
	m.velY = m.deltaY / dt
	w.MoveBody(m.body, next.X, next.Y)
}

// Delta returns the position change applied on the last step.
func (m *Mover) Delta() (x, y float64) {
	if m == nil {
		return 0, 0
	}
	return m.deltaX, m.deltaY
}

// Velocity returns the mover's current velocity; it doubles as the take-off
// velocity imparted when the player leaves the platform.
func (m *Mover) Velocity() (x, y float64) {
	if m == nil {
		return 0, 0
	}
	return m.velX, m.velY
}

// MoverOf returns the mover owning a shape, or nil.
func MoverOf(shape *cp.Shape) *Mover {
	if shape == nil {
		return nil
	}
	if m, ok := shape.UserData.(*Mover); ok {
		return m
	}
	return nil
}
