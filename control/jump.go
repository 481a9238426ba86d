package control

import "github.com/milk9111/ravine/common"

// handleJump consumes a buffered jump press. Priority when several jumps
// are possible on the same tick: wall, then ground or ladder, then coyote,
// then air.
func (c *Controller) handleJump() {
	// releasing jump while rising cuts the arc with heavier gravity
	if !c.endedJumpEarly && !c.grounded && !c.onLadder && !c.in.JumpHeld && c.vy < 0 {
		c.endedJumpEarly = true
	}

	if !c.jumpToConsume {
		return
	}
	if c.time-c.timeJumpPressed > c.stats.JumpBufferTime {
		c.jumpToConsume = false
		return
	}

	switch {
	case c.onWall || (!c.grounded && !c.onLadder && c.wallHit && c.vy > 0):
		c.wallJump()
	case c.grounded:
		c.executeJump(JumpGround, c.stats.JumpPower)
	case c.onLadder:
		c.detachLadder()
		c.executeJump(JumpLadder, c.stats.JumpPower)
	case c.canUseCoyote():
		c.executeJump(JumpCoyote, c.stats.JumpPower)
	case c.airJumpsLeft > 0:
		c.airJumpsLeft--
		c.executeJump(JumpAir, c.airJumpPower())
	default:
		// stay buffered; a landing inside the buffer window still jumps
		return
	}
	c.jumpToConsume = false
}

func (c *Controller) canUseCoyote() bool {
	return c.coyoteUsable && !c.grounded && c.time-c.timeLeftGround <= c.stats.CoyoteTime
}

func (c *Controller) airJumpPower() float64 {
	if c.stats.AirJumpPower > 0 {
		return c.stats.AirJumpPower
	}
	return c.stats.JumpPower
}

// executeJump applies the vertical launch through the frame-force channel so
// the same tick's friction blend does not damp it.
func (c *Controller) executeJump(variant JumpVariant, power float64) {
	c.endedJumpEarly = false
	c.coyoteUsable = false
	c.AddFrameForce(0, -power-c.vy)
	c.Events.Emit(Event{Type: EventJumped, Variant: variant})
}

// wallJump launches away from the wall. Pushing into the wall at launch
// gives the full horizontal speed; a neutral release only pushes off.
func (c *Controller) wallJump() {
	dir := -c.wallDir
	if c.onWall {
		dir = -c.wallGrabDir
		c.detachWall(false)
	}

	speedX := c.stats.WallPushOffSpeedX
	if common.Sign(c.in.MoveX) == -dir {
		speedX = c.stats.WallJumpSpeedX
	}

	c.endedJumpEarly = false
	c.coyoteUsable = false
	c.wallJumpedAt = c.time
	c.wallJumpDir = dir
	c.facing = dir
	c.lastWallDetach = c.time
	c.AddFrameForce(dir*speedX-c.vx, -c.stats.WallJumpSpeedY-c.vy)
	c.Events.Emit(Event{Type: EventJumped, Variant: JumpWall, Direction: dir})
}

// wallJumpControl returns the air-control factor in [0, 1] after a wall
// jump: zero through the loss window, then a linear return to full control.
func (c *Controller) wallJumpControl() float64 {
	elapsed := c.time - c.wallJumpedAt
	if elapsed >= c.stats.WallJumpInputLossTime+c.stats.WallJumpInputReturnTime {
		return 1
	}
	if elapsed < c.stats.WallJumpInputLossTime {
		return 0
	}
	if c.stats.WallJumpInputReturnTime <= 0 {
		return 1
	}
	return (elapsed - c.stats.WallJumpInputLossTime) / c.stats.WallJumpInputReturnTime
}
