package control

import (
	"math"

	"github.com/milk9111/ravine/common"
	"github.com/milk9111/ravine/world"
)

// handleLadder owns ladder attach/detach and climb motion. Gravity is
// suspended while attached; vertical speed comes straight from input.
func (c *Controller) handleLadder(dt float64) {
	ladder := c.world.LadderAt(c.Bounds())

	if !c.onLadder {
		if c.canAttachLadder(ladder) {
			c.attachLadder(ladder)
		}
		return
	}

	if ladder == nil || (c.grounded && c.in.MoveY < 0) {
		c.detachLadder()
		return
	}
	c.ladder = ladder

	switch {
	case c.in.MoveY > 0:
		c.vy = -c.in.MoveY * c.stats.LadderClimbSpeed
	case c.in.MoveY < 0:
		c.vy = -c.in.MoveY * c.stats.LadderSlideSpeed
	default:
		c.vy = 0
	}

	if c.stats.LadderSnapToCenter {
		c.vx = 0
		blend := common.Clamp01(c.stats.LadderSnapDamping * dt)
		c.x += (ladder.CenterX - c.x) * blend
	} else {
		c.vx = c.in.MoveX * c.stats.LadderShimmySpeed
	}

	// climbing off the top
	if c.y+c.size.HalfHeight < ladder.Top && c.in.MoveY > 0 {
		c.detachLadder()
	}
}

func (c *Controller) canAttachLadder(ladder *world.Ladder) bool {
	if ladder == nil || c.rolling {
		return false
	}
	if c.time-c.ladderLeft < c.stats.LadderCooldown {
		return false
	}
	if c.stats.LadderAutoAttach {
		return true
	}
	if c.in.MoveY == 0 {
		return false
	}
	// grounded characters only grab upward; pressing down means crouch
	if c.grounded && c.in.MoveY < 0 {
		return false
	}
	return true
}

func (c *Controller) attachLadder(ladder *world.Ladder) {
	c.onLadder = true
	c.ladder = ladder
	c.gravityScale = 0
	c.vy = 0
	c.airJumpsLeft = c.stats.MaxAirJumps
	c.endedJumpEarly = false
	if c.onWall {
		c.detachWall(false)
	}
	c.Events.Emit(Event{Type: EventLadderChanged, OnLadder: true})
}

func (c *Controller) detachLadder() {
	c.onLadder = false
	c.ladder = nil
	c.ladderLeft = c.time
	c.gravityScale = 1
	if math.Abs(c.vy) > c.stats.LadderClimbSpeed {
		c.vy = common.Sign(c.vy) * c.stats.LadderClimbSpeed
	}
	c.Events.Emit(Event{Type: EventLadderChanged, OnLadder: false})
}
