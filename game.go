package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/ravine/actor"
	"github.com/milk9111/ravine/combat"
	"github.com/milk9111/ravine/input"
	"github.com/milk9111/ravine/pkg/logger"
	"github.com/milk9111/ravine/tuning"
	"github.com/milk9111/ravine/world"
)

const (
	baseWidth  = 960
	baseHeight = 540

	// simulation runs at a fixed 120 Hz regardless of display rate
	tickRate = 120.0
	tickDt   = 1.0 / tickRate
)

type Game struct {
	ticks       int
	accumulator float64
	paused      bool
	debug       bool

	level  world.LevelSpec
	world  *world.World
	player *actor.Player
	dummy  *actor.Dummy

	playerSheet *actor.Sheet
	dummySheet  *actor.Sheet

	pauseUI *ebitenui.UI
	watcher *tuning.Watcher
}

func NewGame(debug bool) (*Game, error) {
	g := &Game{debug: debug}

	if err := tuning.LoadSheet("level.yaml", &g.level); err != nil {
		return nil, err
	}
	g.world = world.Build(g.level)

	var err error
	if g.playerSheet, err = actor.LoadSheet("player.yaml"); err != nil {
		return nil, err
	}
	if g.dummySheet, err = actor.LoadSheet("dummy.yaml"); err != nil {
		return nil, err
	}
	sword, err := actor.LoadWeapon("sword")
	if err != nil {
		return nil, err
	}
	club, err := actor.LoadWeapon("training_club")
	if err != nil {
		return nil, err
	}

	g.player = actor.NewPlayer(g.world, g.playerSheet, sword, input.NewDevice(), g.level.PlayerSpawn.X, g.level.PlayerSpawn.Y)
	g.dummy, err = actor.NewDummy(g.world, g.dummySheet, club, g.level.DummySpawn.X, g.level.DummySpawn.Y)
	if err != nil {
		return nil, err
	}
	g.dummy.Target = g.player.Controller.Position

	g.pauseUI = NewPauseUI(g)

	if watcher, err := tuning.NewWatcher("tuning"); err == nil {
		g.watcher = watcher
	} else {
		logger.Log.WithError(err).Warn("tuning hot reload disabled")
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.player.Respawn()
		g.dummy.Respawn()
	}

	g.accumulator += 1.0 / float64(ebiten.TPS())
	for g.accumulator >= tickDt {
		g.step(tickDt)
		g.accumulator -= tickDt
	}
	return nil
}

func (g *Game) step(dt float64) {
	g.ticks++
	g.world.Step(dt)
	g.player.Update(dt)
	g.dummy.Update(dt)

	// the dummy's club has no timeout resolution; its impact signal fires
	// as soon as the swing connects with the world
	if g.dummy.Melee.Phase() == combat.PhaseAwaitingImpact {
		g.dummy.Melee.OnImpact()
	}
}

// drainReloads reapplies edited tuning sheets and sweeps live controllers.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadSheet(name)
		case err := <-g.watcher.Errors:
			logger.Log.WithError(err).Warn("tuning watcher error")
		default:
			return
		}
	}
}

func (g *Game) reloadSheet(name string) {
	logger.Log.WithField("sheet", name).Info("reloading tuning")
	if err := tuning.LoadSheet("player.yaml", g.playerSheet); err != nil {
		logger.Log.WithError(err).Warn("reload player sheet")
	}
	if err := tuning.LoadSheet("dummy.yaml", g.dummySheet); err != nil {
		logger.Log.WithError(err).Warn("reload dummy sheet")
	}
	tuning.Controllers.RevalidateAll()
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, s := range g.level.Solids {
		vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), 1, colornames.Slategray, false)
	}
	for _, s := range g.level.Slopes {
		vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), 1, colornames.Slategray, false)
	}
	for _, l := range g.level.Ladders {
		vector.StrokeRect(screen, float32(l.X), float32(l.Y), float32(l.Width), float32(l.Height), 1, colornames.Goldenrod, false)
	}

	pb := g.player.Controller.Bounds()
	vector.StrokeRect(screen, float32(pb.L), float32(pb.B), float32(pb.R-pb.L), float32(pb.T-pb.B), 1, colornames.Deepskyblue, false)
	db := g.dummy.Controller.Bounds()
	vector.StrokeRect(screen, float32(db.L), float32(db.B), float32(db.R-db.L), float32(db.T-db.B), 1, colornames.Orangered, false)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"tick: %d  fps: %.1f\nplayer hp %d/%d posture %.0f/%.0f\ndummy  hp %d/%d posture %.0f/%.0f  broken=%t",
			g.ticks, ebiten.ActualFPS(),
			g.player.Vitals.Health(), g.player.Vitals.MaxHealth(), g.player.Vitals.Posture(), g.player.Vitals.MaxPosture(),
			g.dummy.Vitals.Health(), g.dummy.Vitals.MaxHealth(), g.dummy.Vitals.Posture(), g.dummy.Vitals.MaxPosture(),
			g.dummy.Vitals.IsBroken(),
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
