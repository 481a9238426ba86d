package combat

// VitalsConfig holds the per-combatant tunables for health, posture, break
// and overkill resolution. Read-only after load; shareable across instances.
type VitalsConfig struct {
	MaxHealth               int       `yaml:"max_health"`
	MaxPosture              float64   `yaml:"max_posture"`
	BreakDuration           float64   `yaml:"break_duration"`
	PostureRegenDelay       float64   `yaml:"posture_regen_delay"`
	PostureRegenRate        float64   `yaml:"posture_regen_rate"`
	BreakRecoverFraction    float64   `yaml:"break_recover_fraction"`
	LowHealthThreshold      int       `yaml:"low_health_threshold"`
	OverkillExcessThreshold int       `yaml:"overkill_excess_threshold"`
	RejectFactions          []Faction `yaml:"reject_factions"`
}

// Vitals is the health + posture + break/regen + overkill state machine for
// one combatant. All mutation goes through ReceiveHit, ForceBreak and
// KillSilently; Dead is terminal and absorbing.
type Vitals struct {
	Events EventEmitter

	cfg   cfgSnapshot
	rules Rules

	health  int
	posture float64

	broken         bool
	brokenUntil    float64
	lastPostureHit float64

	dead      bool
	lastDeath *DeathRecord

	now float64

	// Position feeds the death record; optional.
	Position func() (x, y float64)
}

type cfgSnapshot struct {
	VitalsConfig
	reject map[Faction]struct{}
}

// NewVitals creates a combatant at full health and posture. A nil rules
// argument means every payload is allowed through.
func NewVitals(cfg VitalsConfig, rules Rules) *Vitals {
	if cfg.MaxHealth <= 0 {
		cfg.MaxHealth = 1
	}
	if cfg.MaxPosture < 0 {
		cfg.MaxPosture = 0
	}
	snap := cfgSnapshot{VitalsConfig: cfg}
	if len(cfg.RejectFactions) > 0 {
		snap.reject = make(map[Faction]struct{}, len(cfg.RejectFactions))
		for _, f := range cfg.RejectFactions {
			snap.reject[f] = struct{}{}
		}
	}
	if rules == nil {
		rules = AllowAll
	}
	return &Vitals{
		cfg:     snap,
		rules:   rules,
		health:  cfg.MaxHealth,
		posture: cfg.MaxPosture,
	}
}

// Update advances the break and regen clocks. Time is injected rather than
// sampled so the engine stays deterministic under test.
func (v *Vitals) Update(dt float64) {
	if v == nil || v.dead {
		return
	}
	v.now += dt

	if v.broken && v.now >= v.brokenUntil {
		v.broken = false
		floor := v.cfg.BreakRecoverFraction * v.cfg.MaxPosture
		if v.posture < floor {
			v.posture = floor
		}
		v.Events.Emit(Event{Type: EventPostureRecovered})
	}

	if !v.broken && v.posture < v.cfg.MaxPosture && v.now-v.lastPostureHit > v.cfg.PostureRegenDelay {
		v.posture += v.cfg.PostureRegenRate * dt
		if v.posture > v.cfg.MaxPosture {
			v.posture = v.cfg.MaxPosture
		}
	}
}

// ReceiveHit applies a payload and reports whether it was lethal. Filtered
// and post-mortem hits are silent no-ops returning false.
func (v *Vitals) ReceiveHit(p Payload) bool {
	if v == nil || v.dead {
		return false
	}
	if v.cfg.reject != nil {
		if _, ok := v.cfg.reject[p.Source.Faction]; ok {
			return false
		}
	}
	if !v.rules.Allow(v, p) {
		return false
	}

	if p.Posture > 0 {
		v.lastPostureHit = v.now
		if !v.broken {
			v.posture -= p.Posture
			if v.posture <= 0 {
				v.posture = 0
				v.broken = true
				v.brokenUntil = v.now + v.cfg.BreakDuration
				v.Events.Emit(Event{Type: EventPostureBroken, Payload: p})
			}
		}
	}

	hpBefore := v.health
	if p.Health > 0 {
		v.health -= p.Health
		if v.health < 0 {
			v.health = 0
		}
	}

	v.Events.Emit(Event{Type: EventDamaged, Payload: p})

	if v.health == 0 && hpBefore > 0 {
		return v.die(p, hpBefore)
	}
	return false
}

func (v *Vitals) die(p Payload, hpBefore int) bool {
	v.dead = true

	excess := p.Health - hpBefore
	if excess < 0 {
		excess = 0
	}
	weakened := v.broken || hpBefore <= v.cfg.LowHealthThreshold
	overkill := weakened && excess >= v.cfg.OverkillExcessThreshold

	tags := p.Tags
	if overkill {
		tags |= TagOverkill
	}

	var x, y float64
	if v.Position != nil {
		x, y = v.Position()
	}
	v.lastDeath = &DeathRecord{
		Kind:     p.Source.Kind,
		ID:       p.Source.ID,
		Tags:     tags,
		Attacker: p.Source.Attacker,
		Object:   p.Source.Object,
		X:        x,
		Y:        y,
		Time:     v.now,
		Excess:   excess,
	}

	v.Events.Emit(Event{Type: EventDied, Payload: p, Overkill: overkill})
	return true
}

// ForceBreak immediately depletes posture and enters the broken state.
func (v *Vitals) ForceBreak() {
	if v == nil || v.dead || v.broken {
		return
	}
	v.posture = 0
	v.broken = true
	v.brokenUntil = v.now + v.cfg.BreakDuration
	v.lastPostureHit = v.now
	v.Events.Emit(Event{Type: EventPostureBroken})
}

// KillSilently transitions to dead without notifications or a death record.
// Used by despawn/cleanup paths that must not trigger loot or telemetry.
func (v *Vitals) KillSilently() {
	if v == nil || v.dead {
		return
	}
	v.health = 0
	v.dead = true
}

func (v *Vitals) Health() int         { return v.health }
func (v *Vitals) MaxHealth() int      { return v.cfg.MaxHealth }
func (v *Vitals) Posture() float64    { return v.posture }
func (v *Vitals) MaxPosture() float64 { return v.cfg.MaxPosture }
func (v *Vitals) IsBroken() bool      { return v.broken }
func (v *Vitals) IsDead() bool        { return v.dead }
func (v *Vitals) Now() float64        { return v.now }

// LastDeath returns the record captured at death, or nil while alive.
func (v *Vitals) LastDeath() *DeathRecord { return v.lastDeath }
