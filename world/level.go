package world

// LevelSpec describes the static geometry of one arena in yaml. Coordinates
// are pixels, y down, boxes addressed by their top-left corner.
type LevelSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	PlayerSpawn PointSpec `yaml:"player_spawn"`
	DummySpawn  PointSpec `yaml:"dummy_spawn"`

	Solids  []BoxSpec   `yaml:"solids"`
	Slopes  []SlopeSpec `yaml:"slopes"`
	Ladders []BoxSpec   `yaml:"ladders"`
	Movers  []MoverSpec `yaml:"movers"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoxSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Climbable bool    `yaml:"climbable"`
}

type SlopeSpec struct {
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
}

type MoverSpec struct {
	X        float64      `yaml:"x"`
	Y        float64      `yaml:"y"`
	Width    float64      `yaml:"width"`
	Height   float64      `yaml:"height"`
	Speed    float64      `yaml:"speed"`
	Bounding bool         `yaml:"bounding"`
	Path     [][2]float64 `yaml:"path"`
}

// Build constructs a query world from a level spec, including boundary
// segments around the arena.
func Build(spec LevelSpec) *World {
	w := New()

	for _, s := range spec.Solids {
		layer := LayerGround
		if s.Climbable {
			layer |= LayerClimbable
		}
		w.AddBox(s.X, s.Y, s.Width, s.Height, layer, nil)
	}
	for _, s := range spec.Slopes {
		w.AddSegment(s.X0, s.Y0, s.X1, s.Y1, 1, LayerGround, nil)
	}
	for _, l := range spec.Ladders {
		w.AddLadder(l.X, l.Y, l.Width, l.Height)
	}
	for _, m := range spec.Movers {
		w.AddMover(m.X, m.Y, m.Width, m.Height, m.Speed, m.Bounding, m.Path)
	}

	if spec.Width > 0 && spec.Height > 0 {
		bounds := []SlopeSpec{
			{X0: 0, Y0: 0, X1: spec.Width, Y1: 0},
			{X0: 0, Y0: spec.Height, X1: spec.Width, Y1: spec.Height},
			{X0: 0, Y0: 0, X1: 0, Y1: spec.Height},
			{X0: spec.Width, Y0: 0, X1: spec.Width, Y1: spec.Height},
		}
		for _, b := range bounds {
			w.AddSegment(b.X0, b.Y0, b.X1, b.Y1, 1, LayerGround|LayerClimbable, nil)
		}
	}

	return w
}
