package control

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/ravine/common"
	"github.com/milk9111/ravine/input"
	"github.com/milk9111/ravine/tuning"
	"github.com/milk9111/ravine/world"
)

type pose int

const (
	poseStanding pose = iota
	poseCrouching
	poseAirborne
)

// State is a restorable locomotion snapshot: the externally observable pose
// after a completed tick.
type State struct {
	X, Y     float64
	VX, VY   float64
	Facing   float64
	Grounded bool
}

// Controller owns one character's locomotion. It reads a FrameInput each
// tick, probes the world, integrates its own velocity and writes the body
// pose back. It never reacts to physics; the world is a query oracle only.
type Controller struct {
	Events EventEmitter

	world *world.World
	stats *Stats
	sized CharacterSize
	size  GeneratedSize

	root        any
	body        *cp.Body
	standShape  *cp.Shape
	crouchShape *cp.Shape
	airShape    *cp.Shape
	pose        pose

	active bool
	locked bool

	time float64
	in   input.FrameInput

	x, y   float64
	vx, vy float64
	facing float64

	gravityScale float64

	// ground probe results for the current tick
	grounded    bool
	groundNX    float64
	groundNY    float64
	groundDist  float64
	groundShape *cp.Shape

	// wall probe results for the current tick
	wallHit bool
	wallDir float64

	timeLeftGround  float64
	coyoteUsable    bool
	endedJumpEarly  bool
	airJumpsLeft    int
	jumpToConsume   bool
	timeJumpPressed float64

	onWall           bool
	wallGrabDir      float64
	wallSlideElapsed float64
	lastWallDetach   float64
	wallJumpedAt     float64
	wallJumpDir      float64

	onLadder    bool
	ladder      *world.Ladder
	ladderLeft  float64
	rolling     bool
	rollEndsAt  float64
	rollReadyAt float64
	rollDir     float64

	crouching     bool
	crouchStarted float64

	forceX, forceY float64

	transientX, transientY float64
	detachVX, detachVY     float64

	groundMover *world.Mover
	ridingMover *world.Mover

	snapshot State
}

// NewController builds a controller at (x, y) and registers it for tuning
// revalidation. Call Close when the character despawns.
func NewController(w *world.World, stats *Stats, size CharacterSize, x, y float64) *Controller {
	if stats == nil {
		stats = DefaultStats()
	}
	c := &Controller{
		world:          w,
		stats:          stats,
		sized:          size,
		size:           size.Generate(),
		active:         true,
		facing:         1,
		gravityScale:   1,
		x:              x,
		y:              y,
		timeLeftGround: math.Inf(-1),
		lastWallDetach: math.Inf(-1),
		wallJumpedAt:   math.Inf(-1),
		ladderLeft:     math.Inf(-1),
		airJumpsLeft:   stats.MaxAirJumps,
	}

	c.root = c
	c.body = w.AddActorBody(c.root, x, y)
	c.standShape = w.AttachBoxShapeBB(c.body, c.size.StandBB, world.LayerPlayer|world.LayerHittable)
	c.crouchShape = w.AttachBoxShapeBB(c.body, c.size.CrouchBB, world.LayerPlayer|world.LayerHittable)
	c.airShape = w.AttachCapsuleShape(c.body, c.size.Width, c.size.Height-c.size.StepHeight, world.LayerPlayer|world.LayerHittable)
	w.RemoveShape(c.crouchShape)
	w.RemoveShape(c.airShape)
	c.pose = poseStanding

	c.snapshot = State{X: x, Y: y, Facing: 1}
	tuning.Controllers.Register(c)
	return c
}

// Close deregisters the controller and removes its body from the world.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	tuning.Controllers.Deregister(c)
	c.world.RemoveShape(c.activeShape())
	c.world.RemoveBody(c.body)
}

// Revalidate re-derives generated geometry after a tuning sheet change.
// Collider shapes are rebuilt in the current pose.
func (c *Controller) Revalidate() {
	if c == nil {
		return
	}
	current := c.pose
	c.world.RemoveShape(c.activeShape())
	c.world.RemoveBody(c.body)

	c.size = c.sized.Generate()
	c.body = c.world.AddActorBody(c.root, c.x, c.y)
	c.standShape = c.world.AttachBoxShapeBB(c.body, c.size.StandBB, world.LayerPlayer|world.LayerHittable)
	c.crouchShape = c.world.AttachBoxShapeBB(c.body, c.size.CrouchBB, world.LayerPlayer|world.LayerHittable)
	c.airShape = c.world.AttachCapsuleShape(c.body, c.size.Width, c.size.Height-c.size.StepHeight, world.LayerPlayer|world.LayerHittable)
	c.world.RemoveShape(c.crouchShape)
	c.world.RemoveShape(c.airShape)
	c.pose = poseStanding
	c.setPose(current)
}

// Tick advances the controller by dt seconds. Order is fixed: probes first,
// then state handling and integration, crouch evaluation last, so every
// decision in a tick sees the same probe results.
func (c *Controller) Tick(in input.FrameInput, dt float64) {
	if c == nil || !c.active || dt <= 0 {
		return
	}
	c.time += dt

	c.gatherInput(in)
	c.checkCollisions()
	c.handleLadder(dt)
	c.handleWall(dt)
	c.handleJump()
	c.handleRoll(dt)
	c.handleHorizontal(dt)
	c.handleGravity(dt)
	c.applyMovement(dt)
	c.evaluateCrouch()

	c.snapshot = State{X: c.x, Y: c.y, VX: c.vx, VY: c.vy, Facing: c.facing, Grounded: c.grounded}
}

func (c *Controller) gatherInput(in input.FrameInput) {
	if c.locked {
		in = input.FrameInput{}
	}
	if math.Abs(in.MoveX) < c.stats.InputDeadzone {
		in.MoveX = 0
	}
	if math.Abs(in.MoveY) < c.stats.InputDeadzone {
		in.MoveY = 0
	}
	c.in = in

	if in.JumpPressed {
		c.jumpToConsume = true
		c.timeJumpPressed = c.time
	}
}

// Snapshot returns the last completed tick's observable state.
func (c *Controller) Snapshot() State {
	if c == nil {
		return State{}
	}
	return c.snapshot
}

// Restore teleports the controller into a previously captured state and
// clears transient motion.
func (c *Controller) Restore(s State) {
	if c == nil {
		return
	}
	c.x, c.y = s.X, s.Y
	c.vx, c.vy = s.VX, s.VY
	if s.Facing != 0 {
		c.facing = common.Sign(s.Facing)
	}
	c.grounded = s.Grounded
	c.transientX, c.transientY = 0, 0
	c.forceX, c.forceY = 0, 0
	c.world.MoveBody(c.body, c.x, c.y)
	c.snapshot = s
	c.Events.Emit(Event{Type: EventRepositioned})
}

// Teleport moves the controller without changing velocity.
func (c *Controller) Teleport(x, y float64) {
	if c == nil {
		return
	}
	c.x, c.y = x, y
	c.world.MoveBody(c.body, x, y)
	c.Events.Emit(Event{Type: EventRepositioned})
}

// SetActive pauses or resumes the controller. A paused controller ignores
// Tick entirely and holds its last snapshot.
func (c *Controller) SetActive(active bool) {
	if c == nil || c.active == active {
		return
	}
	c.active = active
	c.Events.Emit(Event{Type: EventToggledActive, Active: active})
}

// SetMovementLocked suppresses input while locked. Gravity, probes and
// in-flight motion keep running; only steering stops.
func (c *Controller) SetMovementLocked(locked bool) {
	if c == nil {
		return
	}
	c.locked = locked
}

// AddFrameForce queues a one-tick impulse. A tick that consumes a frame
// force skips the normal velocity blend so the impulse is not damped by the
// same tick's friction model.
func (c *Controller) AddFrameForce(fx, fy float64) {
	if c == nil {
		return
	}
	c.forceX += fx
	c.forceY += fy
}

// AddTransientVelocity injects velocity into the decaying transient pool,
// separate from the input-governed velocity.
func (c *Controller) AddTransientVelocity(vx, vy float64) {
	if c == nil {
		return
	}
	c.transientX += vx
	c.transientY += vy
	c.detachVX, c.detachVY = c.vx, c.vy
}

// SetRoot sets the owner that world queries resolve for this body. Hit
// dedup and self-exclusion key on it.
func (c *Controller) SetRoot(root any) {
	if c == nil || root == nil {
		return
	}
	c.root = root
	c.body.UserData = root
}

func (c *Controller) Root() any {
	if c == nil {
		return nil
	}
	return c.root
}

func (c *Controller) Position() (x, y float64) { return c.x, c.y }
func (c *Controller) Velocity() (x, y float64) { return c.vx, c.vy }

// TransientVelocity reports the decaying externally-injected velocity pool.
func (c *Controller) TransientVelocity() (x, y float64) { return c.transientX, c.transientY }
func (c *Controller) Facing() float64          { return c.facing }
func (c *Controller) IsGrounded() bool         { return c.grounded }
func (c *Controller) IsOnWall() bool           { return c.onWall }
func (c *Controller) IsOnLadder() bool         { return c.onLadder }
func (c *Controller) IsRolling() bool          { return c.rolling }
func (c *Controller) IsCrouching() bool        { return c.crouching }
func (c *Controller) IsActive() bool           { return c.active }
func (c *Controller) IsMovementLocked() bool   { return c.locked }
func (c *Controller) Body() *cp.Body           { return c.body }
func (c *Controller) Size() GeneratedSize      { return c.size }

// Bounds returns the current-pose collider box in world coordinates.
func (c *Controller) Bounds() cp.BB {
	local := c.size.StandBB
	switch c.pose {
	case poseCrouching:
		local = c.size.CrouchBB
	case poseAirborne:
		half := (c.size.Height - c.size.StepHeight) / 2
		local = cp.BB{L: -c.size.HalfWidth, B: -half, R: c.size.HalfWidth, T: half}
	}
	return cp.BB{L: c.x + local.L, B: c.y + local.B, R: c.x + local.R, T: c.y + local.T}
}

// poseTop returns the body-local y of the current collider's top edge.
// Wall and ceiling rays anchor on it so a crouched body fits where its
// collider fits.
func (c *Controller) poseTop() float64 {
	switch c.pose {
	case poseCrouching:
		return c.size.CrouchBB.B
	case poseAirborne:
		// the airborne capsule is centered on the body origin
		return -(c.size.Height - c.size.StepHeight) / 2
	}
	return c.size.StandBB.B
}

func (c *Controller) activeShape() *cp.Shape {
	switch c.pose {
	case poseCrouching:
		return c.crouchShape
	case poseAirborne:
		return c.airShape
	}
	return c.standShape
}

func (c *Controller) setPose(p pose) {
	if c.pose == p {
		return
	}
	c.world.RemoveShape(c.activeShape())
	c.pose = p
	c.world.ReattachShape(c.activeShape())
}

// canStand reports whether the standing collider fits at the current
// position. The box is shrunk by the skin so resting contacts do not read
// as blockers.
func (c *Controller) canStand() bool {
	bb := cp.BB{
		L: c.x + c.size.StandBB.L + skinWidth/2,
		B: c.y + c.size.StandBB.B + skinWidth/2,
		R: c.x + c.size.StandBB.R - skinWidth/2,
		T: c.y + c.size.StandBB.T - skinWidth/2,
	}
	return len(c.world.BoxOverlap(bb, world.LayerGround|world.LayerClimbable)) == 0
}
