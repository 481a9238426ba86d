package control

import (
	"math"

	"github.com/milk9111/ravine/common"
	"github.com/milk9111/ravine/world"
)

// checkCollisions runs every world probe for the tick before any state
// handling, so each decision sees the same picture.
func (c *Controller) checkCollisions() {
	c.probeGround()
	c.probeCeiling()
	c.probeWall()
}

// probeGround casts the five-ray fan down from the step-height line. Only
// walkable surfaces ground the character; a steeper hit is ignored so steep
// slopes behave as walls.
func (c *Controller) probeGround() {
	minUpness := math.Cos(c.stats.MaxWalkableSlope * math.Pi / 180)
	length := c.size.StepHeight + skinWidth
	originY := c.y + c.size.ProbeOffsetY

	found := false
	best := world.Hit{Distance: math.Inf(1)}
	for _, off := range c.size.ProbeXs {
		hit, ok := c.world.RayCast(c.x+off, originY, 0, 1, length, world.LayerGround|world.LayerClimbable)
		if !ok {
			continue
		}
		if -hit.NY < minUpness {
			continue
		}
		if hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}

	// rising through a surface never grounds
	grounded := found && c.vy >= 0

	if grounded {
		c.groundNX, c.groundNY = best.NX, best.NY
		c.groundDist = best.Distance
		c.groundShape = best.Shape
		c.groundMover = world.MoverOf(best.Shape)
	} else {
		c.groundShape = nil
		c.groundMover = nil
	}

	if grounded && !c.grounded {
		c.onLand()
	} else if !grounded && c.grounded {
		c.onLeaveGround()
	}
	c.grounded = grounded
}

func (c *Controller) onLand() {
	impact := c.vy

	// landing keeps only the horizontal component
	c.vy = 0
	c.gravityScale = 1
	c.coyoteUsable = true
	c.endedJumpEarly = false
	c.airJumpsLeft = c.stats.MaxAirJumps

	if !c.rolling {
		if c.crouching {
			c.setPose(poseCrouching)
		} else {
			c.setPose(poseStanding)
		}
	}
	c.Events.Emit(Event{Type: EventGroundedChanged, Grounded: true, ImpactSpeed: impact})
}

func (c *Controller) onLeaveGround() {
	c.timeLeftGround = c.time
	if !c.rolling && !c.crouching {
		c.setPose(poseAirborne)
	}
	c.Events.Emit(Event{Type: EventGroundedChanged, Grounded: false})
}

// probeCeiling stops upward motion when the head is pressed into a surface.
func (c *Controller) probeCeiling() {
	if c.vy >= 0 {
		return
	}
	headY := c.y + c.poseTop()
	for _, off := range [3]float64{c.size.ProbeXs[0], 0, c.size.ProbeXs[groundRayCount-1]} {
		if _, ok := c.world.RayCast(c.x+off, headY, 0, -1, skinWidth, world.LayerGround|world.LayerClimbable); ok {
			c.vy = 0
			return
		}
	}
}

// probeWall casts toward the current horizontal intent against climbable
// surfaces only.
func (c *Controller) probeWall() {
	dir := common.Sign(c.in.MoveX)
	if dir == 0 && math.Abs(c.vx) > 1 {
		dir = common.Sign(c.vx)
	}
	if dir == 0 && c.onWall {
		dir = c.wallGrabDir
	}
	if dir == 0 {
		c.wallHit = false
		return
	}

	length := c.size.HalfWidth + c.stats.WallDetectDistance
	_, ok := c.world.RayCast(c.x, c.y, dir, 0, length, world.LayerClimbable)
	c.wallHit = ok
	if ok {
		c.wallDir = dir
	}
}
