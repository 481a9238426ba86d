package control

import (
	"math"

	"github.com/milk9111/ravine/common"
)

// handleRoll owns the roll sub-state. A roll commits to one direction for
// its full duration and ignores steering until it ends.
func (c *Controller) handleRoll(dt float64) {
	if c.rolling {
		if c.time >= c.rollEndsAt {
			c.endRoll()
			return
		}
		c.vx = c.rollDir * c.stats.RollSpeed
		return
	}

	if !c.in.RollPressed || c.time < c.rollReadyAt || c.onLadder || c.onWall {
		return
	}
	c.startRoll()
}

// rollDirection picks the commit direction: explicit input first, then
// facing on the ground, then travel direction in the air when moving fast
// enough to matter.
func (c *Controller) rollDirection() float64 {
	if dir := common.Sign(c.in.MoveX); dir != 0 {
		return dir
	}
	if !c.grounded && math.Abs(c.vx) >= c.stats.MinAirRollSpeed {
		return common.Sign(c.vx)
	}
	return c.facing
}

func (c *Controller) startRoll() {
	c.rolling = true
	c.rollDir = c.rollDirection()
	c.rollEndsAt = c.time + c.stats.RollDuration
	c.rollReadyAt = c.rollEndsAt + c.stats.RollCooldown
	c.facing = c.rollDir
	c.setPose(poseCrouching)
	c.Events.Emit(Event{Type: EventRollChanged, Direction: c.rollDir})
}

func (c *Controller) endRoll() {
	c.rolling = false
	switch {
	case !c.grounded:
		c.setPose(poseAirborne)
	case c.crouching || !c.canStand():
		// blocked overhead, stand up as a crouch instead
		c.crouching = true
		c.crouchStarted = c.time
		c.setPose(poseCrouching)
	default:
		c.setPose(poseStanding)
	}
	c.Events.Emit(Event{Type: EventRollChanged, Direction: 0})
}

// evaluateCrouch runs after movement integration so the stand-up clearance
// check sees the final position for the tick.
func (c *Controller) evaluateCrouch() {
	if c.rolling {
		return
	}
	down := c.in.MoveY < -c.stats.CrouchInputThreshold

	if !c.crouching {
		if down && c.grounded && !c.onLadder {
			c.crouching = true
			c.crouchStarted = c.time
			c.setPose(poseCrouching)
		}
		return
	}

	if down && c.grounded {
		return
	}
	if !c.canStand() {
		return
	}
	c.crouching = false
	if c.grounded {
		c.setPose(poseStanding)
	} else {
		c.setPose(poseAirborne)
	}
}

// crouchSpeedFactor ramps from full speed down to the crouch multiplier
// over the ramp time, so entering a crouch at a sprint bleeds speed instead
// of clamping it.
func (c *Controller) crouchSpeedFactor() float64 {
	if !c.crouching {
		return 1
	}
	if c.stats.CrouchSlowRampTime <= 0 {
		return c.stats.CrouchSpeedMultiplier
	}
	t := common.Clamp01((c.time - c.crouchStarted) / c.stats.CrouchSlowRampTime)
	return common.Lerp(1, c.stats.CrouchSpeedMultiplier, t)
}
