package combat

// Rules is a receiver-type-specific policy filter deciding whether a payload
// may apply. A rejected payload degrades to a no-op on the receiver; callers
// must treat "hit not applied" as a normal outcome.
type Rules interface {
	Allow(v *Vitals, p Payload) bool
}

// RuleFunc adapts a function to the Rules interface.
type RuleFunc func(v *Vitals, p Payload) bool

func (f RuleFunc) Allow(v *Vitals, p Payload) bool {
	return f(v, p)
}

// AllowAll accepts every payload.
var AllowAll = RuleFunc(func(*Vitals, Payload) bool { return true })

// PlayerRules is the policy for player-controlled receivers: special-kind
// damage may never be lethal to the player, and the player cannot be hurt by
// its own physics impacts.
type PlayerRules struct {
	// Owner is the player actor, compared against the payload's attacker.
	Owner any
}

func (r PlayerRules) Allow(v *Vitals, p Payload) bool {
	if p.Source.Kind == KindSpecial && v != nil && p.Health >= v.Health() {
		return false
	}
	if p.Source.Kind == KindPhysicsImpact && r.Owner != nil && p.Source.Attacker == r.Owner {
		return false
	}
	return true
}
