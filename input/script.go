package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script drives FrameInput from a compiled tengo script, used for sparring
// dummies and scripted replays. The script sees the observation variables
// below each tick and reports its intent through move_x/move_y/jump/attack.
type Script struct {
	compiled *tengo.Compiled
	tick     int64

	selfX, selfY     float64
	targetX, targetY float64
}

// NewScript compiles a bot script. The script must tolerate being run once
// per tick with fresh observation variables.
func NewScript(src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	seed := []struct {
		name  string
		value any
	}{
		{"tick", int64(0)},
		{"self_x", 0.0},
		{"self_y", 0.0},
		{"target_x", 0.0},
		{"target_y", 0.0},
	}
	for _, v := range seed {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("input: add script var %s: %w", v.name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

// Observe updates the observation fed to the script on the next Poll.
func (s *Script) Observe(selfX, selfY, targetX, targetY float64) {
	if s == nil {
		return
	}
	s.selfX, s.selfY = selfX, selfY
	s.targetX, s.targetY = targetX, targetY
}

func (s *Script) Poll() FrameInput {
	if s == nil || s.compiled == nil {
		return FrameInput{}
	}
	s.tick++

	_ = s.compiled.Set("tick", s.tick)
	_ = s.compiled.Set("self_x", s.selfX)
	_ = s.compiled.Set("self_y", s.selfY)
	_ = s.compiled.Set("target_x", s.targetX)
	_ = s.compiled.Set("target_y", s.targetY)

	if err := s.compiled.Run(); err != nil {
		return FrameInput{}
	}

	var in FrameInput
	in.MoveX = s.compiled.Get("move_x").Float()
	in.MoveY = s.compiled.Get("move_y").Float()
	in.JumpPressed = s.compiled.Get("jump").Bool()
	in.JumpHeld = s.compiled.Get("jump_held").Bool()
	in.RollPressed = s.compiled.Get("roll").Bool()
	in.SprintHeld = s.compiled.Get("sprint").Bool()
	in.AttackPressed = s.compiled.Get("attack").Bool()
	in.AttackHeld = s.compiled.Get("attack_held").Bool()
	return in
}
