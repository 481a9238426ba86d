package control

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/ravine/pkg/logger"
)

const (
	groundRayCount  = 5
	skinWidth       = 2.0
	minCrouchBuffer = 4.0
)

// CharacterSize is the authored body description. Dependent geometry is
// derived by Generate, never edited by hand.
type CharacterSize struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StepHeight   float64 `yaml:"step_height"`
	CrouchHeight float64 `yaml:"crouch_height"`
	RayInset     float64 `yaml:"ray_inset"`
}

// GeneratedSize is the derived, validated geometry the controller runs on.
// Boxes are body-local, y down, origin at the center of the standing bounds.
// Colliders float above the step-height line so the body can ride over small
// ledges; the probe fan keeps the feet pinned to the surface.
type GeneratedSize struct {
	Width        float64
	Height       float64
	StepHeight   float64
	CrouchHeight float64

	HalfWidth  float64
	HalfHeight float64

	StandBB  cp.BB
	CrouchBB cp.BB

	// ProbeOffsetY is the center-to-probe-anchor offset; the ground fan
	// casts down from one step height above the feet.
	ProbeOffsetY float64
	ProbeXs      [groundRayCount]float64
}

// Generate derives runtime geometry, correcting invariant violations in
// place and warning about each correction.
func (s CharacterSize) Generate() GeneratedSize {
	if s.Width <= 0 {
		s.Width = 16
	}
	if s.Height <= 0 {
		s.Height = 36
	}
	if s.StepHeight >= s.Height {
		corrected := s.Height / 2
		logger.Log.Warnf("character size: step height %.1f >= height %.1f, corrected to %.1f", s.StepHeight, s.Height, corrected)
		s.StepHeight = corrected
	}
	if s.CrouchHeight < s.StepHeight+minCrouchBuffer {
		corrected := s.StepHeight + minCrouchBuffer
		logger.Log.Warnf("character size: crouch height %.1f < step height %.1f + %.1f, corrected to %.1f", s.CrouchHeight, s.StepHeight, minCrouchBuffer, corrected)
		s.CrouchHeight = corrected
	}
	if s.CrouchHeight > s.Height {
		logger.Log.Warnf("character size: crouch height %.1f > height %.1f, corrected", s.CrouchHeight, s.Height)
		s.CrouchHeight = s.Height
	}
	if s.RayInset < 0 || s.RayInset >= s.Width/2 {
		s.RayInset = 1
	}

	g := GeneratedSize{
		Width:        s.Width,
		Height:       s.Height,
		StepHeight:   s.StepHeight,
		CrouchHeight: s.CrouchHeight,
		HalfWidth:    s.Width / 2,
		HalfHeight:   s.Height / 2,
		ProbeOffsetY: s.Height/2 - s.StepHeight,
	}

	// feet at +HalfHeight local, head at -HalfHeight; B is the smaller y
	g.StandBB = cp.BB{
		L: -g.HalfWidth,
		B: -g.HalfHeight,
		R: g.HalfWidth,
		T: g.HalfHeight - s.StepHeight,
	}
	g.CrouchBB = cp.BB{
		L: -g.HalfWidth,
		B: g.HalfHeight - s.CrouchHeight,
		R: g.HalfWidth,
		T: g.HalfHeight - s.StepHeight,
	}

	span := s.Width - 2*s.RayInset
	for i := 0; i < groundRayCount; i++ {
		g.ProbeXs[i] = -span/2 + span*float64(i)/float64(groundRayCount-1)
	}
	return g
}

// DefaultSize returns the demo body dimensions.
func DefaultSize() CharacterSize {
	return CharacterSize{
		Width:        16,
		Height:       36,
		StepHeight:   8,
		CrouchHeight: 22,
		RayInset:     1,
	}
}
