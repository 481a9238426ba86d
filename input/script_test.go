package input

import "testing"

func TestReplaySource(t *testing.T) {
	r := &Replay{Frames: []FrameInput{
		{MoveX: 1, JumpPressed: true},
		{MoveX: -1},
	}}

	if in := r.Poll(); in.MoveX != 1 || !in.JumpPressed {
		t.Fatalf("first frame = %+v", in)
	}
	if in := r.Poll(); in.MoveX != -1 {
		t.Fatalf("second frame = %+v", in)
	}
	// exhausted replays hold the zero snapshot
	for i := 0; i < 3; i++ {
		if in := r.Poll(); in != (FrameInput{}) {
			t.Fatalf("exhausted replay returned %+v", in)
		}
	}
}

func TestScriptSourceChasesTarget(t *testing.T) {
	src := []byte(`
move_x := 0.0
move_y := 0.0
jump := false
jump_held := false
roll := false
sprint := false
attack := false
attack_held := false

if target_x > self_x {
    move_x = 1.0
} else if target_x < self_x {
    move_x = -1.0
}
if tick % 2 == 0 {
    attack = true
}
`)
	s, err := NewScript(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	s.Observe(0, 0, 100, 0)
	in := s.Poll()
	if in.MoveX != 1 {
		t.Fatalf("should chase right, move x = %f", in.MoveX)
	}

	s.Observe(100, 0, 0, 0)
	in = s.Poll()
	if in.MoveX != -1 {
		t.Fatalf("should chase left, move x = %f", in.MoveX)
	}
	if !in.AttackPressed {
		t.Fatalf("tick 2 should attack")
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript([]byte(`move_x := `)); err == nil {
		t.Fatalf("malformed script should fail to compile")
	}
}
