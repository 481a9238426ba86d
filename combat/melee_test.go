package combat

import (
	"testing"

	"github.com/milk9111/ravine/input"
	"github.com/milk9111/ravine/world"
)

const meleeDt = 0.01

type stubFighter struct {
	x, y, facing float64

	locked      bool
	lockChanges int
}

func (f *stubFighter) Position() (x, y float64) { return f.x, f.y }
func (f *stubFighter) Facing() float64          { return f.facing }
func (f *stubFighter) Root() any                { return f }
func (f *stubFighter) SetMovementLocked(locked bool) {
	f.locked = locked
	f.lockChanges++
}

type recordingTarget struct {
	hits     []Payload
	lethal   bool
	response bool
}

func (r *recordingTarget) ReceiveHit(p Payload) bool {
	r.hits = append(r.hits, p)
	return r.response
}

// meleeRig is a fighter at the origin facing right, with a recording target
// inside the hitbox.
func meleeRig(t *testing.T, stats WeaponStats) (*Melee, *stubFighter, *recordingTarget) {
	t.Helper()
	w := world.New()

	target := &recordingTarget{}
	body := w.AddActorBody(target, stats.HitboxOffsetX, 0)
	w.AttachBoxShape(body, 16, 32, world.LayerHittable)

	fighter := &stubFighter{facing: 1}
	m := NewMelee(w, fighter, &stats, MeleeIDStart, FactionPlayer)
	return m, fighter, target
}

// swing presses attack, holds it for holdTicks ticks and releases, then
// runs out the windup.
func swing(m *Melee, holdTicks int) {
	m.Update(input.FrameInput{AttackPressed: true, AttackHeld: true}, meleeDt)
	for i := 0; i < holdTicks-1; i++ {
		m.Update(input.FrameInput{AttackHeld: true}, meleeDt)
	}
	m.Update(input.FrameInput{}, meleeDt)
	for m.Phase() == PhaseWindup {
		m.Update(input.FrameInput{}, meleeDt)
	}
}

// runOutTimeout ticks until the impact window expires.
func runOutTimeout(m *Melee) {
	for m.Phase() == PhaseAwaitingImpact {
		m.Update(input.FrameInput{}, meleeDt)
	}
}

func TestMeleeChargeClassification(t *testing.T) {
	stats := DefaultWeapon() // charge 0.28, perfect [0.40, 0.45]

	cases := []struct {
		name        string
		holdTicks   int
		wantHealth  int
		wantCharged bool
		wantPerfect bool
	}{
		{"light_just_below_threshold", 27, stats.LightHealth, false, false},
		{"charged_exactly_at_threshold", 28, stats.ChargedHealth, true, false},
		{"charged_below_perfect_window", 39, stats.ChargedHealth, true, false},
		{"perfect_at_window_start", 40, stats.PerfectHealth, true, true},
		{"perfect_at_window_end", 45, stats.PerfectHealth, true, true},
		{"charged_past_perfect_window", 46, stats.ChargedHealth, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, _, target := meleeRig(t, stats)
			swing(m, c.holdTicks)
			runOutTimeout(m)

			if len(target.hits) != 1 {
				t.Fatalf("hits = %d, want 1", len(target.hits))
			}
			hit := target.hits[0]
			if hit.Health != c.wantHealth {
				t.Fatalf("health damage = %d, want %d (held %.3f)", hit.Health, c.wantHealth, m.HeldFor())
			}
			if hit.Tags.Has(TagCharged) != c.wantCharged {
				t.Fatalf("charged tag = %t, want %t", hit.Tags.Has(TagCharged), c.wantCharged)
			}
			if hit.Tags.Has(TagPerfect) != c.wantPerfect {
				t.Fatalf("perfect tag = %t, want %t", hit.Tags.Has(TagPerfect), c.wantPerfect)
			}
		})
	}
}

func TestMeleePerfectDisallowed(t *testing.T) {
	stats := DefaultWeapon()
	stats.AllowPerfect = false

	m, _, target := meleeRig(t, stats)
	swing(m, 42) // inside the perfect window
	runOutTimeout(m)

	if len(target.hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(target.hits))
	}
	if target.hits[0].Tags.Has(TagPerfect) {
		t.Fatalf("perfect must not fire when disallowed")
	}
	if target.hits[0].Health != stats.ChargedHealth {
		t.Fatalf("disallowed perfect should fall back to charged damage")
	}
}

func TestMeleeMovementLockDiscipline(t *testing.T) {
	stats := DefaultWeapon()
	m, fighter, _ := meleeRig(t, stats)

	m.Update(input.FrameInput{AttackPressed: true, AttackHeld: true}, meleeDt)
	for i := 0; i < 27; i++ { // up to 0.27s held, below the 0.28 threshold
		m.Update(input.FrameInput{AttackHeld: true}, meleeDt)
		if fighter.locked {
			t.Fatalf("locked before charge threshold at %.3f", m.HeldFor())
		}
	}
	// a hold of exactly the threshold engages the lock on that tick
	m.Update(input.FrameInput{AttackHeld: true}, meleeDt)
	if !fighter.locked {
		t.Fatalf("movement should lock once the hold reaches the threshold")
	}

	// the lock clears on the release of the input, not when the swing
	// resolves later
	m.Update(input.FrameInput{}, meleeDt)
	if fighter.locked {
		t.Fatalf("movement lock must clear on release, phase = %s", m.Phase())
	}
	if m.Phase() != PhaseWindup {
		t.Fatalf("release should enter windup, phase = %s", m.Phase())
	}
	for m.Phase() == PhaseWindup {
		m.Update(input.FrameInput{}, meleeDt)
		if fighter.locked {
			t.Fatalf("movement lock re-engaged during windup")
		}
	}
	runOutTimeout(m)
	if fighter.locked {
		t.Fatalf("movement lock re-engaged after the swing resolved")
	}
}

func TestMeleeImpactSignalBeatsTimeout(t *testing.T) {
	stats := DefaultWeapon()
	m, _, target := meleeRig(t, stats)
	swing(m, 5)

	if m.Phase() != PhaseAwaitingImpact {
		t.Fatalf("phase = %s, want awaiting_impact", m.Phase())
	}
	m.OnImpact()
	if got := len(target.hits); got != 1 {
		t.Fatalf("hits after signal = %d, want 1", got)
	}

	// a late signal and the timeout must both be no-ops now
	m.OnImpact()
	for i := 0; i < 50; i++ {
		m.Update(input.FrameInput{}, meleeDt)
	}
	if got := len(target.hits); got != 1 {
		t.Fatalf("swing resolved more than once, hits = %d", got)
	}
}

func TestMeleeTimeoutCancelsWhenConfigured(t *testing.T) {
	stats := DefaultWeapon()
	stats.ResolveOnTimeout = false

	m, fighter, target := meleeRig(t, stats)
	swing(m, 35) // charged, so the lock engages
	runOutTimeout(m)

	if len(target.hits) != 0 {
		t.Fatalf("cancelled swing must not deal damage")
	}
	if fighter.locked {
		t.Fatalf("cancelled swing must still clear the movement lock")
	}
	if m.Phase() != PhaseRecovery {
		t.Fatalf("cancelled swing should still recover, phase = %s", m.Phase())
	}
}

func TestMeleeDedupByRoot(t *testing.T) {
	stats := DefaultWeapon()
	w := world.New()

	// one root with two colliders inside the hitbox
	target := &recordingTarget{}
	body := w.AddActorBody(target, stats.HitboxOffsetX, 0)
	w.AttachBoxShape(body, 14, 20, world.LayerHittable)
	w.AttachCapsuleShape(body, 10, 30, world.LayerHittable)

	fighter := &stubFighter{facing: 1}
	m := NewMelee(w, fighter, &stats, MeleeIDStart, FactionPlayer)

	swing(m, 5)
	runOutTimeout(m)

	if len(target.hits) != 1 {
		t.Fatalf("one body with two shapes took %d hits, want 1", len(target.hits))
	}
	if m.LastHitCount() != 1 {
		t.Fatalf("LastHitCount = %d, want 1", m.LastHitCount())
	}
}

func TestMeleeNeverHitsWielder(t *testing.T) {
	stats := DefaultWeapon()
	w := world.New()

	fighter := &stubFighter{facing: 1}
	m := NewMelee(w, fighter, &stats, MeleeIDStart, FactionPlayer)

	// the wielder's own hittable collider sits inside its hitbox
	body := w.AddActorBody(fighter, stats.HitboxOffsetX, 0)
	w.AttachBoxShape(body, 16, 32, world.LayerHittable)

	swing(m, 5)
	runOutTimeout(m)
	if m.LastHitCount() != 0 {
		t.Fatalf("wielder hit itself")
	}
}

func TestMeleeFacingMirrorsHitbox(t *testing.T) {
	stats := DefaultWeapon()
	w := world.New()

	target := &recordingTarget{}
	body := w.AddActorBody(target, stats.HitboxOffsetX, 0) // on the right side
	w.AttachBoxShape(body, 16, 32, world.LayerHittable)

	fighter := &stubFighter{facing: -1} // facing away
	m := NewMelee(w, fighter, &stats, MeleeIDStart, FactionPlayer)

	swing(m, 5)
	runOutTimeout(m)
	if len(target.hits) != 0 {
		t.Fatalf("hitbox should mirror with facing, got %d hits", len(target.hits))
	}
}

func TestWeaponValidateCorrectsWindows(t *testing.T) {
	s := WeaponStats{
		Name:            "broken",
		ChargeThreshold: 0.3,
		PerfectStart:    0.1,
		PerfectEnd:      0.05,
	}
	s.Validate()
	if s.PerfectStart < s.ChargeThreshold {
		t.Fatalf("perfect start not corrected: %f", s.PerfectStart)
	}
	if s.PerfectEnd < s.PerfectStart {
		t.Fatalf("perfect end not corrected: %f", s.PerfectEnd)
	}
}
