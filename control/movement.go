package control

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/ravine/common"
	"github.com/milk9111/ravine/world"
)

// handleHorizontal blends horizontal velocity toward the input target. A
// pending frame force skips the blend for the tick so impulses are not
// damped by the same tick's friction model.
func (c *Controller) handleHorizontal(dt float64) {
	if c.onLadder || c.rolling || c.onWall {
		return
	}
	if c.forceX != 0 || c.forceY != 0 {
		return
	}

	inputX := c.in.MoveX
	if !c.grounded {
		inputX = c.nerfWallJumpInput(inputX)
	}

	target := inputX * c.stats.BaseSpeed * c.crouchSpeedFactor()
	if c.in.SprintHeld && !c.crouching {
		target *= c.stats.SprintSpeedMultiplier
	}

	var step float64
	if inputX != 0 {
		step = c.stats.Acceleration
		if common.Sign(c.vx) != 0 && common.Sign(inputX) != common.Sign(c.vx) {
			step *= c.stats.DirectionCorrection
		}
		c.facing = common.Sign(inputX)
	} else {
		step = c.stats.Friction
	}
	if !c.grounded {
		step *= c.stats.AirControlMultiplier
	}

	if c.grounded {
		c.blendGroundVelocity(target, step*dt)
	} else {
		c.vx = common.MoveToward(c.vx, target, step*dt)
	}
}

// blendGroundVelocity mixes two candidates by slope steepness: the direct
// horizontal blend on flat ground, and a surface-tangent velocity with a
// recomputed magnitude on slopes. The mix keeps flat movement crisp while
// slopes redirect speed along the surface instead of fighting it.
func (c *Controller) blendGroundVelocity(target, maxDelta float64) {
	direct := common.MoveToward(c.vx, target, maxDelta)

	maxSlope := c.stats.MaxWalkableSlope * math.Pi / 180
	upness := common.Clamp(-c.groundNY, -1, 1)
	slope := math.Acos(upness)
	if maxSlope <= 0 || slope <= 1e-6 {
		c.vx = direct
		return
	}
	weight := common.Clamp01(slope / maxSlope)

	dir := common.Sign(target)
	if dir == 0 {
		dir = common.Sign(c.vx)
	}
	if dir == 0 {
		c.vx = direct
		return
	}

	// surface tangent pointing in the travel direction
	tx, ty := -c.groundNY, c.groundNX
	if dir < 0 {
		tx, ty = -tx, -ty
	}
	mag := common.MoveToward(math.Hypot(c.vx, c.vy), math.Abs(target), maxDelta)

	c.vx = common.Lerp(direct, tx*mag, weight)
	c.vy = common.Lerp(c.vy, ty*mag, weight)
}

// nerfWallJumpInput applies the post-wall-jump air-control nerf: opposing
// input is fully overridden through the loss window, then scaled by the
// linearly recovering factor.
func (c *Controller) nerfWallJumpInput(inputX float64) float64 {
	factor := c.wallJumpControl()
	if factor >= 1 {
		return inputX
	}
	if common.Sign(inputX) == 0 || common.Sign(inputX) == c.wallJumpDir {
		return inputX
	}
	if factor == 0 && c.stats.WallJumpOverrideInput {
		return c.wallJumpDir
	}
	return inputX * factor
}

func (c *Controller) handleGravity(dt float64) {
	if c.grounded || c.onLadder || c.onWall {
		return
	}
	g := c.stats.Gravity * c.gravityScale
	if c.endedJumpEarly && c.vy < 0 {
		g *= c.stats.JumpCutGravityMultiplier
	}
	c.vy += g * dt
	if c.vy > c.stats.MaxFallSpeed {
		c.vy = c.stats.MaxFallSpeed
	}
}

// applyMovement consumes the frame force, decays transient velocity, adds
// platform ride motion and integrates position, then applies ride-height
// correction and writes the body pose back to the world.
func (c *Controller) applyMovement(dt float64) {
	if c.forceX != 0 || c.forceY != 0 {
		c.vx += c.forceX
		c.vy += c.forceY
		c.forceX, c.forceY = 0, 0
	}

	c.decayTransient(dt)

	// riding uses the mover's applied delta, not its velocity, so the
	// character tracks the platform exactly through waypoint turns
	rideDX, rideDY := 0.0, 0.0
	if m := c.currentMover(); m != nil {
		rideDX, rideDY = m.Delta()
	}
	c.trackMover()

	moveX := (c.vx+c.transientX)*dt + rideDX
	moveY := (c.vy+c.transientY)*dt + rideDY
	moveX = c.blockHorizontal(moveX)

	c.x += moveX
	c.y += moveY

	if c.grounded && c.groundShape != nil && !c.onLadder {
		c.correctRideHeight(dt)
	}

	c.world.MoveBody(c.body, c.x, c.y)
}

// blockHorizontal clips horizontal motion against solid geometry so a fast
// tick cannot tunnel through a wall.
func (c *Controller) blockHorizontal(moveX float64) float64 {
	dir := common.Sign(moveX)
	if dir == 0 {
		return moveX
	}
	length := c.size.HalfWidth + math.Abs(moveX)
	top := c.poseTop() + skinWidth
	bottom := c.size.ProbeOffsetY - skinWidth
	heights := [3]float64{top, (top + bottom) / 2, bottom}

	nearest := math.Inf(1)
	for _, hy := range heights {
		hit, ok := c.world.RayCast(c.x, c.y+hy, dir, 0, length, world.LayerGround|world.LayerClimbable)
		if !ok {
			continue
		}
		// walkable surfaces are handled by the ground fan, not as walls
		if -hit.NY >= math.Cos(c.stats.MaxWalkableSlope*math.Pi/180) {
			continue
		}
		if hit.Distance < nearest {
			nearest = hit.Distance
		}
	}
	if math.IsInf(nearest, 1) {
		return moveX
	}

	allowed := nearest - c.size.HalfWidth
	if allowed < 0 {
		allowed = 0
	}
	if math.Abs(moveX) <= allowed {
		return moveX
	}
	if common.Sign(c.vx) == dir {
		c.vx = 0
	}
	if common.Sign(c.transientX) == dir {
		c.transientX = 0
	}
	return dir * allowed
}

// correctRideHeight pins the feet to the surface the ground fan reported.
// Velocity mode rate-limits the correction; position mode snaps it.
func (c *Controller) correctRideHeight(dt float64) {
	err := c.groundDist - c.size.StepHeight
	if err == 0 {
		return
	}
	switch c.stats.PositionCorrectionMode {
	case CorrectionPosition:
		c.y += err
	default:
		maxStep := c.stats.MaxFallSpeed * dt
		c.y += common.Clamp(err, -maxStep, maxStep)
	}
}

// decayTransient bleeds the transient pool toward zero. Residuals opposing
// the velocity the character had when it picked them up decay five times
// faster, so a take-off push against current motion dies quickly.
func (c *Controller) decayTransient(dt float64) {
	if c.transientX == 0 && c.transientY == 0 {
		return
	}
	decay := c.stats.TransientDecay
	if c.transientX*c.detachVX+c.transientY*c.detachVY < 0 {
		decay *= 5
	}
	c.transientX = common.MoveToward(c.transientX, 0, decay*dt)
	c.transientY = common.MoveToward(c.transientY, 0, decay*dt)
}

// currentMover returns the platform currently carrying the character:
// the one under the ground fan, or a bounding mover whose trigger volume
// overlaps the body.
func (c *Controller) currentMover() *world.Mover {
	if c.groundMover != nil {
		return c.groundMover
	}
	const grow = 4.0
	bb := c.Bounds()
	bb = cp.BB{L: bb.L - grow, B: bb.B - grow, R: bb.R + grow, T: bb.T + grow}
	for _, s := range c.world.BoxOverlap(bb, world.LayerMover) {
		if m := world.MoverOf(s); m != nil && m.Bounding {
			return m
		}
	}
	return nil
}

// trackMover detects stepping off a contact mover and converts the
// platform's velocity into transient velocity. Downward take-off is mostly
// negated so a descending platform does not spike the character into the
// ground. Bounding movers hand over through their trigger volume instead
// and impart nothing.
func (c *Controller) trackMover() {
	cur := c.groundMover
	prev := c.ridingMover
	if cur != nil {
		c.ridingMover = cur
		return
	}
	if prev == nil {
		return
	}
	c.ridingMover = nil
	if prev.Bounding {
		return
	}
	tvx, tvy := prev.Velocity()
	if tvy > 0 {
		tvy *= c.stats.TakeOffDownwardNegation
	}
	if tvx != 0 || tvy != 0 {
		c.AddTransientVelocity(tvx, tvy)
	}
}
