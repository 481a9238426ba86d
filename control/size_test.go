package control

import "testing"

func TestGenerateCorrectsInvalidSizes(t *testing.T) {
	cases := []struct {
		name string
		in   CharacterSize
	}{
		{"step_taller_than_body", CharacterSize{Width: 16, Height: 36, StepHeight: 40, CrouchHeight: 22}},
		{"crouch_below_step_buffer", CharacterSize{Width: 16, Height: 36, StepHeight: 8, CrouchHeight: 6}},
		{"crouch_taller_than_body", CharacterSize{Width: 16, Height: 36, StepHeight: 8, CrouchHeight: 50}},
		{"zero_everything", CharacterSize{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := c.in.Generate()
			if g.StepHeight >= g.Height {
				t.Fatalf("step height %f not corrected below height %f", g.StepHeight, g.Height)
			}
			if g.CrouchHeight < g.StepHeight+minCrouchBuffer {
				t.Fatalf("crouch height %f below step %f + buffer", g.CrouchHeight, g.StepHeight)
			}
			if g.CrouchHeight > g.Height {
				t.Fatalf("crouch height %f above body height %f", g.CrouchHeight, g.Height)
			}
			if g.StandBB.T <= g.StandBB.B || g.CrouchBB.T <= g.CrouchBB.B {
				t.Fatalf("degenerate collider boxes: stand %+v crouch %+v", g.StandBB, g.CrouchBB)
			}
		})
	}
}

func TestGenerateProbeFanSpansBody(t *testing.T) {
	g := DefaultSize().Generate()

	if g.ProbeXs[0] >= 0 || g.ProbeXs[groundRayCount-1] <= 0 {
		t.Fatalf("fan should straddle the center: %v", g.ProbeXs)
	}
	half := g.Width / 2
	for _, x := range g.ProbeXs {
		if x < -half || x > half {
			t.Fatalf("probe offset %f outside the body", x)
		}
	}
	if g.ProbeOffsetY != g.Height/2-g.StepHeight {
		t.Fatalf("probe anchor %f, want %f", g.ProbeOffsetY, g.Height/2-g.StepHeight)
	}
}
