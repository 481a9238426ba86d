package combat

import "github.com/milk9111/ravine/pkg/logger"

// WeaponStats is the melee tuning sheet. Windows are seconds of charge
// hold; both charge and perfect bounds are inclusive.
type WeaponStats struct {
	Name string `yaml:"name"`

	ChargeThreshold float64 `yaml:"charge_threshold"`
	AllowPerfect    bool    `yaml:"allow_perfect"`
	PerfectStart    float64 `yaml:"perfect_start"`
	PerfectEnd      float64 `yaml:"perfect_end"`

	WindupSeconds   float64 `yaml:"windup_seconds"`
	RecoverySeconds float64 `yaml:"recovery_seconds"`

	LightHealth    int     `yaml:"light_health"`
	LightPosture   float64 `yaml:"light_posture"`
	ChargedHealth  int     `yaml:"charged_health"`
	ChargedPosture float64 `yaml:"charged_posture"`
	PerfectHealth  int     `yaml:"perfect_health"`
	PerfectPosture float64 `yaml:"perfect_posture"`

	HitboxWidth   float64 `yaml:"hitbox_width"`
	HitboxHeight  float64 `yaml:"hitbox_height"`
	HitboxOffsetX float64 `yaml:"hitbox_offset_x"`
	HitboxOffsetY float64 `yaml:"hitbox_offset_y"`

	// ImpactEventTimeout bounds the wait for an external impact signal
	// after release. ResolveOnTimeout picks whether the timeout resolves
	// the swing or cancels it.
	ImpactEventTimeout float64 `yaml:"impact_event_timeout"`
	ResolveOnTimeout   bool    `yaml:"resolve_on_timeout"`
}

// Validate corrects window ordering in place and warns about each
// correction. Required ordering: ChargeThreshold <= PerfectStart <=
// PerfectEnd.
func (s *WeaponStats) Validate() {
	if s == nil {
		return
	}
	if s.ChargeThreshold < 0 {
		logger.Log.Warnf("weapon %s: negative charge threshold corrected to 0", s.Name)
		s.ChargeThreshold = 0
	}
	if s.PerfectStart < s.ChargeThreshold {
		logger.Log.Warnf("weapon %s: perfect start %.3f < charge threshold %.3f, corrected", s.Name, s.PerfectStart, s.ChargeThreshold)
		s.PerfectStart = s.ChargeThreshold
	}
	if s.PerfectEnd < s.PerfectStart {
		logger.Log.Warnf("weapon %s: perfect end %.3f < perfect start %.3f, corrected", s.Name, s.PerfectEnd, s.PerfectStart)
		s.PerfectEnd = s.PerfectStart
	}
	if s.ImpactEventTimeout < 0 {
		s.ImpactEventTimeout = 0
	}
}

// DefaultWeapon returns the demo sword tuning.
func DefaultWeapon() WeaponStats {
	return WeaponStats{
		Name: "sword",

		ChargeThreshold: 0.28,
		AllowPerfect:    true,
		PerfectStart:    0.40,
		PerfectEnd:      0.45,

		WindupSeconds:   0.08,
		RecoverySeconds: 0.25,

		LightHealth:    10,
		LightPosture:   12,
		ChargedHealth:  22,
		ChargedPosture: 30,
		PerfectHealth:  30,
		PerfectPosture: 45,

		HitboxWidth:   34,
		HitboxHeight:  26,
		HitboxOffsetX: 22,
		HitboxOffsetY: -2,

		ImpactEventTimeout: 0.12,
		ResolveOnTimeout:   true,
	}
}
