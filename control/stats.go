package control

// Stats is the shared locomotion tuning sheet. It is read-only at runtime;
// per-controller runtime state (timers, counters) lives on the Controller so
// two characters can share one sheet.
type Stats struct {
	// horizontal movement
	BaseSpeed             float64 `yaml:"base_speed"`
	Acceleration          float64 `yaml:"acceleration"`
	Friction              float64 `yaml:"friction"`
	DirectionCorrection   float64 `yaml:"direction_correction"`
	AirControlMultiplier  float64 `yaml:"air_control_multiplier"`
	InputDeadzone         float64 `yaml:"input_deadzone"`
	SprintSpeedMultiplier float64 `yaml:"sprint_speed_multiplier"`

	// slopes, degrees measured from the up direction
	MaxWalkableSlope float64 `yaml:"max_walkable_slope"`

	// gravity, y down
	Gravity                  float64 `yaml:"gravity"`
	MaxFallSpeed             float64 `yaml:"max_fall_speed"`
	JumpCutGravityMultiplier float64 `yaml:"jump_cut_gravity_multiplier"`

	// jumping
	JumpPower      float64 `yaml:"jump_power"`
	AirJumpPower   float64 `yaml:"air_jump_power"`
	MaxAirJumps    int     `yaml:"max_air_jumps"`
	CoyoteTime     float64 `yaml:"coyote_time"`
	JumpBufferTime float64 `yaml:"jump_buffer_time"`

	// wall interaction
	WallDetectDistance  float64 `yaml:"wall_detect_distance"`
	WallRequirePush     bool    `yaml:"wall_require_push"`
	WallDetachCooldown  float64 `yaml:"wall_detach_cooldown"`
	WallPopVelocity     float64 `yaml:"wall_pop_velocity"`
	WallSlideStartSpeed float64 `yaml:"wall_slide_start_speed"`
	WallSlideMaxSpeed   float64 `yaml:"wall_slide_max_speed"`
	WallSlideRampTime   float64 `yaml:"wall_slide_ramp_time"`

	// wall jump
	WallJumpSpeedX          float64 `yaml:"wall_jump_speed_x"`
	WallJumpSpeedY          float64 `yaml:"wall_jump_speed_y"`
	WallPushOffSpeedX       float64 `yaml:"wall_push_off_speed_x"`
	WallJumpInputLossTime   float64 `yaml:"wall_jump_input_loss_time"`
	WallJumpInputReturnTime float64 `yaml:"wall_jump_input_return_time"`
	WallJumpOverrideInput   bool    `yaml:"wall_jump_override_input"`

	// ladders
	LadderAutoAttach   bool    `yaml:"ladder_auto_attach"`
	LadderClimbSpeed   float64 `yaml:"ladder_climb_speed"`
	LadderSlideSpeed   float64 `yaml:"ladder_slide_speed"`
	LadderShimmySpeed  float64 `yaml:"ladder_shimmy_speed"`
	LadderSnapToCenter bool    `yaml:"ladder_snap_to_center"`
	LadderSnapDamping  float64 `yaml:"ladder_snap_damping"`
	LadderCooldown     float64 `yaml:"ladder_cooldown"`

	// rolling
	RollSpeed       float64 `yaml:"roll_speed"`
	RollDuration    float64 `yaml:"roll_duration"`
	RollCooldown    float64 `yaml:"roll_cooldown"`
	MinAirRollSpeed float64 `yaml:"min_air_roll_speed"`

	// crouching
	CrouchInputThreshold  float64 `yaml:"crouch_input_threshold"`
	CrouchSpeedMultiplier float64 `yaml:"crouch_speed_multiplier"`
	CrouchSlowRampTime    float64 `yaml:"crouch_slow_ramp_time"`

	// moving platforms and transient velocity
	TransientDecay          float64 `yaml:"transient_decay"`
	TakeOffDownwardNegation float64 `yaml:"take_off_downward_negation"`

	// "velocity" folds ride-height error into vy, "position" translates
	PositionCorrectionMode string `yaml:"position_correction_mode"`
}

const (
	CorrectionVelocity = "velocity"
	CorrectionPosition = "position"
)

// DefaultStats returns the tuning baseline the demo ships with.
func DefaultStats() *Stats {
	return &Stats{
		BaseSpeed:             180,
		Acceleration:          1400,
		Friction:              1100,
		DirectionCorrection:   2,
		AirControlMultiplier:  0.65,
		InputDeadzone:         0.1,
		SprintSpeedMultiplier: 1.5,

		MaxWalkableSlope: 50,

		Gravity:                  1500,
		MaxFallSpeed:             640,
		JumpCutGravityMultiplier: 2.5,

		JumpPower:      420,
		AirJumpPower:   380,
		MaxAirJumps:    1,
		CoyoteTime:     0.12,
		JumpBufferTime: 0.1,

		WallDetectDistance:  6,
		WallRequirePush:     true,
		WallDetachCooldown:  0.15,
		WallPopVelocity:     120,
		WallSlideStartSpeed: 40,
		WallSlideMaxSpeed:   220,
		WallSlideRampTime:   0.8,

		WallJumpSpeedX:          260,
		WallJumpSpeedY:          400,
		WallPushOffSpeedX:       140,
		WallJumpInputLossTime:   0.15,
		WallJumpInputReturnTime: 0.25,
		WallJumpOverrideInput:   false,

		LadderAutoAttach:   false,
		LadderClimbSpeed:   120,
		LadderSlideSpeed:   200,
		LadderShimmySpeed:  60,
		LadderSnapToCenter: true,
		LadderSnapDamping:  12,
		LadderCooldown:     0.2,

		RollSpeed:       320,
		RollDuration:    0.35,
		RollCooldown:    0.5,
		MinAirRollSpeed: 60,

		CrouchInputThreshold:  0.5,
		CrouchSpeedMultiplier: 0.5,
		CrouchSlowRampTime:    0.25,

		TransientDecay:          600,
		TakeOffDownwardNegation: 0.25,

		PositionCorrectionMode: CorrectionVelocity,
	}
}
