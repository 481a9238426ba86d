package input

// FrameInput is a per-tick input snapshot. Immutable once captured; the
// simulation replaces it every tick and never mutates it in place.
type FrameInput struct {
	// MoveX/MoveY are the movement axis in [-1, 1]; y positive is up.
	MoveX float64
	MoveY float64

	JumpPressed bool
	JumpHeld    bool

	RollPressed bool
	SprintHeld  bool

	AttackPressed bool
	AttackHeld    bool
}

// Source supplies one FrameInput per tick. The simulation does not care how
// it is produced: physical device, script, or replay.
type Source interface {
	Poll() FrameInput
}

// Replay replays a fixed input sequence, then holds the zero snapshot.
// Useful for deterministic tests.
type Replay struct {
	Frames []FrameInput
	cursor int
}

func (r *Replay) Poll() FrameInput {
	if r == nil || r.cursor >= len(r.Frames) {
		return FrameInput{}
	}
	in := r.Frames[r.cursor]
	r.cursor++
	return in
}
