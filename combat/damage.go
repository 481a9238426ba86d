package combat

// Kind is the closed category set for damage payloads.
type Kind int

const (
	KindMelee Kind = iota
	KindThrowable
	KindProjectile
	KindExplosion
	KindPhysicsImpact
	KindEnvironmental
	KindSpecial
)

func (k Kind) String() string {
	switch k {
	case KindMelee:
		return "melee"
	case KindThrowable:
		return "throwable"
	case KindProjectile:
		return "projectile"
	case KindExplosion:
		return "explosion"
	case KindPhysicsImpact:
		return "physics_impact"
	case KindEnvironmental:
		return "environmental"
	case KindSpecial:
		return "special"
	}
	return "unknown"
}

// SourceID is a dense identifier namespaced by range per Kind. IDs are for
// logging and telemetry, never for branching logic.
type SourceID int

const (
	MeleeIDStart         SourceID = 1
	ThrowableIDStart     SourceID = 100
	ProjectileIDStart    SourceID = 200
	ExplosionIDStart     SourceID = 300
	PhysicsImpactIDStart SourceID = 400
	EnvironmentalIDStart SourceID = 500
	SpecialIDStart       SourceID = 900
)

// Tags are orthogonal damage modifiers, combinable as a bitset.
type Tags uint8

const (
	TagNone    Tags = 0
	TagCharged Tags = 1 << iota
	TagBoosted
	TagReflected
	TagOverkill
	TagPerfect
)

func (t Tags) Has(other Tags) bool {
	return t&other != 0
}

// Faction identifies teams for attacker reject sets.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
	FactionEnvironment
)

// Source identifies where a payload came from.
type Source struct {
	Kind     Kind
	ID       SourceID
	Faction  Faction
	Object   any
	Attacker any
}

// Payload is a transient value object: created per hit, consumed immediately
// by a receiver, never stored.
type Payload struct {
	Source  Source
	DirX    float64
	DirY    float64
	Health  int
	Posture float64
	Tags    Tags
}

// NewMeleePayload builds a melee payload carrying both health and posture
// damage plus charge tags.
func NewMeleePayload(src Source, dirX, dirY float64, health int, posture float64, tags Tags) Payload {
	src.Kind = KindMelee
	return Payload{Source: src, DirX: dirX, DirY: dirY, Health: health, Posture: posture, Tags: tags}
}

// NewThrowablePayload builds a throwable payload. Throwables carry no posture
// damage.
func NewThrowablePayload(src Source, dirX, dirY float64, health int, tags Tags) Payload {
	src.Kind = KindThrowable
	return Payload{Source: src, DirX: dirX, DirY: dirY, Health: health, Tags: tags}
}

// NewProjectilePayload builds a projectile payload. Projectiles carry no
// posture damage.
func NewProjectilePayload(src Source, dirX, dirY float64, health int, tags Tags) Payload {
	src.Kind = KindProjectile
	return Payload{Source: src, DirX: dirX, DirY: dirY, Health: health, Tags: tags}
}

// NewExplosionPayload builds an explosion payload with health and posture
// damage. Explosions carry no charge tags.
func NewExplosionPayload(src Source, dirX, dirY float64, health int, posture float64) Payload {
	src.Kind = KindExplosion
	return Payload{Source: src, DirX: dirX, DirY: dirY, Health: health, Posture: posture}
}

// NewPhysicsImpactPayload builds a collision-damage payload: health only.
func NewPhysicsImpactPayload(src Source, dirX, dirY float64, health int) Payload {
	src.Kind = KindPhysicsImpact
	return Payload{Source: src, DirX: dirX, DirY: dirY, Health: health}
}

// NewEnvironmentalPayload builds a hazard payload: health only.
func NewEnvironmentalPayload(src Source, health int) Payload {
	src.Kind = KindEnvironmental
	return Payload{Source: src, Health: health}
}

// NewSpecialPayload builds a scripted/special payload.
func NewSpecialPayload(src Source, health int, tags Tags) Payload {
	src.Kind = KindSpecial
	return Payload{Source: src, Health: health, Tags: tags}
}

// DeathRecord is captured once by a vitals engine at the moment health
// reaches zero and is immutable thereafter.
type DeathRecord struct {
	Kind     Kind
	ID       SourceID
	Tags     Tags
	Attacker any
	Object   any
	X, Y     float64
	Time     float64
	Excess   int
}

// Receiver is the sole consumer-facing contract for participating in combat.
// ReceiveHit reports whether the hit was lethal.
type Receiver interface {
	ReceiveHit(p Payload) bool
}
