package combat

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/ravine/input"
	"github.com/milk9111/ravine/pkg/logger"
	"github.com/milk9111/ravine/world"
)

// MeleePhase is the swing state machine position.
type MeleePhase int

const (
	PhaseIdle MeleePhase = iota
	PhaseCharging
	PhaseWindup
	PhaseAwaitingImpact
	PhaseRecovery
)

func (p MeleePhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCharging:
		return "charging"
	case PhaseWindup:
		return "windup"
	case PhaseAwaitingImpact:
		return "awaiting_impact"
	case PhaseRecovery:
		return "recovery"
	}
	return "unknown"
}

// Fighter is what a melee weapon needs from its wielder.
type Fighter interface {
	Position() (x, y float64)
	Facing() float64
	Root() any
	SetMovementLocked(locked bool)
}

// Melee drives one character's melee attack cycle:
// idle, charging (movement locks at the charge threshold), windup after
// release, awaiting impact, recovery. Damage resolves exactly once per
// swing, on the external impact signal or on the timeout fallback,
// whichever fires first.
type Melee struct {
	world   *world.World
	owner   Fighter
	stats   *WeaponStats
	source  Source
	hitMask world.Layer

	phase MeleePhase
	time  float64

	chargeStarted  float64
	heldFor        float64
	locked         bool
	phaseEndsAt    float64
	impactDeadline float64

	pendingCharged bool
	pendingPerfect bool
	pendingImpact  bool

	lastHitCount int
}

// NewMelee builds a weapon for owner. Hits query the world's hittable layer
// and are attributed to the given source identity.
func NewMelee(w *world.World, owner Fighter, stats *WeaponStats, id SourceID, faction Faction) *Melee {
	if stats == nil {
		def := DefaultWeapon()
		stats = &def
	}
	stats.Validate()
	return &Melee{
		world: w,
		owner: owner,
		stats: stats,
		source: Source{
			Kind:     KindMelee,
			ID:       id,
			Faction:  faction,
			Attacker: owner.Root(),
			Object:   owner.Root(),
		},
		hitMask: world.LayerHittable,
	}
}

// timeEpsilon absorbs accumulated float error in dt-stepped hold timers so
// the inclusive window boundaries stay inclusive.
const timeEpsilon = 1e-9

// Update advances the swing cycle by dt seconds.
func (m *Melee) Update(in input.FrameInput, dt float64) {
	if m == nil || dt <= 0 {
		return
	}
	m.time += dt

	switch m.phase {
	case PhaseIdle:
		if in.AttackPressed {
			m.phase = PhaseCharging
			m.chargeStarted = m.time
			m.heldFor = 0
		}

	case PhaseCharging:
		m.heldFor = m.time - m.chargeStarted
		if in.AttackHeld {
			if !m.locked && m.heldFor >= m.stats.ChargeThreshold-timeEpsilon {
				m.locked = true
				m.owner.SetMovementLocked(true)
			}
			return
		}
		m.release()

	case PhaseWindup:
		if m.time >= m.phaseEndsAt {
			m.strike()
		}

	case PhaseAwaitingImpact:
		if m.time >= m.impactDeadline && m.pendingImpact {
			m.pendingImpact = false
			if m.stats.ResolveOnTimeout {
				m.resolve()
			} else {
				logger.Log.Debugf("melee %s: impact window expired, swing cancelled", m.stats.Name)
			}
			m.recover()
		}

	case PhaseRecovery:
		if m.time >= m.phaseEndsAt {
			m.phase = PhaseIdle
		}
	}
}

// release classifies the finished hold and frees the wielder. The movement
// lock clears here, on the release of the attack input, not when the swing
// later resolves.
func (m *Melee) release() {
	if m.locked {
		m.locked = false
		m.owner.SetMovementLocked(false)
	}

	m.pendingCharged = m.heldFor >= m.stats.ChargeThreshold-timeEpsilon
	m.pendingPerfect = m.pendingCharged &&
		m.stats.AllowPerfect &&
		m.heldFor >= m.stats.PerfectStart-timeEpsilon &&
		m.heldFor <= m.stats.PerfectEnd+timeEpsilon

	m.phase = PhaseWindup
	m.phaseEndsAt = m.time + m.stats.WindupSeconds
}

func (m *Melee) strike() {
	m.phase = PhaseAwaitingImpact
	m.pendingImpact = true
	m.impactDeadline = m.time + m.stats.ImpactEventTimeout
	if m.stats.ImpactEventTimeout <= 0 {
		m.pendingImpact = false
		m.resolve()
		m.recover()
	}
}

// OnImpact is the external impact signal. It resolves the pending swing
// immediately; a later timeout for the same swing is a no-op.
func (m *Melee) OnImpact() {
	if m == nil || m.phase != PhaseAwaitingImpact || !m.pendingImpact {
		return
	}
	m.pendingImpact = false
	m.resolve()
	m.recover()
}

// resolve applies damage to every distinct root inside the hitbox. Multiple
// colliders on one body count once; the wielder never hits itself.
func (m *Melee) resolve() {
	facing := m.owner.Facing()
	if facing == 0 {
		facing = 1
	}
	ox, oy := m.owner.Position()
	cx := ox + facing*m.stats.HitboxOffsetX
	cy := oy + m.stats.HitboxOffsetY
	bb := cp.BB{
		L: cx - m.stats.HitboxWidth/2,
		B: cy - m.stats.HitboxHeight/2,
		R: cx + m.stats.HitboxWidth/2,
		T: cy + m.stats.HitboxHeight/2,
	}

	health, posture, tags := m.stats.LightHealth, m.stats.LightPosture, TagNone
	if m.pendingCharged {
		health, posture, tags = m.stats.ChargedHealth, m.stats.ChargedPosture, TagCharged
	}
	if m.pendingPerfect {
		health, posture, tags = m.stats.PerfectHealth, m.stats.PerfectPosture, TagCharged|TagPerfect
	}

	ownerRoot := m.owner.Root()
	seen := map[any]struct{}{}
	m.lastHitCount = 0
	for _, shape := range m.world.BoxOverlap(bb, m.hitMask) {
		root := world.RootOf(shape)
		if root == nil || root == ownerRoot {
			continue
		}
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}

		receiver, ok := root.(Receiver)
		if !ok {
			continue
		}
		payload := NewMeleePayload(m.source, facing, 0, health, posture, tags)
		lethal := receiver.ReceiveHit(payload)
		m.lastHitCount++
		logger.Log.Debugf("melee %s: hit root=%T lethal=%t charged=%t perfect=%t", m.stats.Name, root, lethal, m.pendingCharged, m.pendingPerfect)
	}
}

// recover ends the swing. The movement lock is already gone; release
// cleared it.
func (m *Melee) recover() {
	m.phase = PhaseRecovery
	m.phaseEndsAt = m.time + m.stats.RecoverySeconds
}

// Disable aborts any in-flight swing, clearing the movement lock. Used when
// the wielder dies or is posture broken mid-swing.
func (m *Melee) Disable() {
	if m == nil {
		return
	}
	if m.locked {
		m.locked = false
		m.owner.SetMovementLocked(false)
	}
	m.pendingImpact = false
	m.phase = PhaseIdle
}

func (m *Melee) Phase() MeleePhase {
	if m == nil {
		return PhaseIdle
	}
	return m.phase
}

// HeldFor reports the current or final charge hold in seconds.
func (m *Melee) HeldFor() float64 {
	if m == nil {
		return 0
	}
	return m.heldFor
}

// LastHitCount reports how many distinct roots the previous resolution hit.
func (m *Melee) LastHitCount() int {
	if m == nil {
		return 0
	}
	return m.lastHitCount
}
