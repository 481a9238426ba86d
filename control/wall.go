package control

import "github.com/milk9111/ravine/common"

// handleWall owns the wall-grab sub-state. The wall-slide ramp timer is
// per-controller runtime state; only the ramp shape comes from the shared
// tuning sheet.
func (c *Controller) handleWall(dt float64) {
	if c.onWall {
		if c.shouldDetachWall() {
			c.detachWall(true)
			return
		}
		c.wallSlideElapsed += dt
		t := 1.0
		if c.stats.WallSlideRampTime > 0 {
			t = common.Clamp01(c.wallSlideElapsed / c.stats.WallSlideRampTime)
		}
		c.vy = common.Lerp(c.stats.WallSlideStartSpeed, c.stats.WallSlideMaxSpeed, t)
		c.vx = 0
		return
	}

	if !c.canGrabWall() {
		return
	}
	c.onWall = true
	c.wallGrabDir = c.wallDir
	c.wallSlideElapsed = 0
	c.gravityScale = 0
	c.facing = c.wallGrabDir
	c.Events.Emit(Event{Type: EventWallGrabChanged, Grabbing: true, Direction: c.wallGrabDir})
}

func (c *Controller) canGrabWall() bool {
	if c.grounded || c.onLadder || c.rolling || !c.wallHit {
		return false
	}
	if c.vy <= 0 {
		return false
	}
	if c.time-c.lastWallDetach < c.stats.WallDetachCooldown {
		return false
	}
	if c.stats.WallRequirePush && common.Sign(c.in.MoveX) != c.wallDir {
		return false
	}
	return true
}

func (c *Controller) shouldDetachWall() bool {
	if c.grounded || !c.wallHit {
		return true
	}
	if c.stats.WallRequirePush && common.Sign(c.in.MoveX) != c.wallGrabDir {
		return true
	}
	return false
}

// detachWall leaves the wall. With pop set, an upward impulse is applied
// when still moving upward at detach so releases near a ledge feel forgiving.
func (c *Controller) detachWall(pop bool) {
	c.onWall = false
	c.lastWallDetach = c.time
	c.gravityScale = 1
	c.airJumpsLeft = c.stats.MaxAirJumps
	if pop && c.vy < 0 {
		c.vy -= c.stats.WallPopVelocity
	}
	c.Events.Emit(Event{Type: EventWallGrabChanged, Grabbing: false, Direction: c.wallGrabDir})
}
