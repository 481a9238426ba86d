package world

import "github.com/jakecoffman/cp"

// Ladder is a climbable trigger volume. The controller snaps toward CenterX
// while attached.
type Ladder struct {
	CenterX float64
	Top     float64
	Bottom  float64

	shape *cp.Shape
}

// AddLadder adds a ladder sensor volume with top-left (x, y).
func (w *World) AddLadder(x, y, width, height float64) *Ladder {
	l := &Ladder{
		CenterX: x + width/2,
		Top:     y,
		Bottom:  y + height,
	}
	shape := w.AddBox(x, y, width, height, LayerLadder, l)
	shape.SetSensor(true)
	l.shape = shape
	w.ladders = append(w.ladders, l)
	return l
}

// LadderAt returns the ladder overlapping bb, or nil.
func (w *World) LadderAt(bb cp.BB) *Ladder {
	for _, shape := range w.BoxOverlap(bb, LayerLadder) {
		if l, ok := shape.UserData.(*Ladder); ok {
			return l
		}
	}
	return nil
}
