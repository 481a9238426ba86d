package actor

import (
	"github.com/milk9111/ravine/combat"
	"github.com/milk9111/ravine/control"
	"github.com/milk9111/ravine/input"
	"github.com/milk9111/ravine/pkg/logger"
	"github.com/milk9111/ravine/world"
)

// Player is the controllable character: locomotion controller, melee weapon
// and vitals wired together behind one Update.
type Player struct {
	Controller *control.Controller
	Melee      *combat.Melee
	Vitals     *combat.Vitals

	source input.Source
	sheet  *Sheet
	spawn  control.State
}

// NewPlayer spawns the player at (x, y) reading input from source.
func NewPlayer(w *world.World, sheet *Sheet, weapon *combat.WeaponStats, source input.Source, x, y float64) *Player {
	p := &Player{
		source: source,
		sheet:  sheet,
	}

	p.Controller = control.NewController(w, &sheet.Movement, sheet.Size, x, y)
	p.Controller.SetRoot(p)
	p.spawn = p.Controller.Snapshot()

	p.Melee = combat.NewMelee(w, p.Controller, weapon, combat.MeleeIDStart, combat.FactionPlayer)
	p.wireVitals()
	return p
}

func (p *Player) wireVitals() {
	p.Vitals = combat.NewVitals(p.sheet.Vitals, combat.PlayerRules{Owner: p})
	p.Vitals.Position = p.Controller.Position
	p.Vitals.Events.Subscribe(func(evt combat.Event) {
		switch evt.Type {
		case combat.EventPostureBroken:
			p.Melee.Disable()
		case combat.EventDied:
			p.Melee.Disable()
			p.Controller.SetActive(false)
			logger.Log.WithField("overkill", evt.Overkill).Info("player died")
		}
	})
}

// Update advances the player by one fixed tick.
func (p *Player) Update(dt float64) {
	if p == nil {
		return
	}
	in := p.source.Poll()
	p.Controller.Tick(in, dt)
	p.Melee.Update(in, dt)
	p.Vitals.Update(dt)
}

// ReceiveHit routes incoming damage to the vitals engine.
func (p *Player) ReceiveHit(payload combat.Payload) bool {
	return p.Vitals.ReceiveHit(payload)
}

// Respawn resets the player to its spawn point with fresh vitals.
func (p *Player) Respawn() {
	if p == nil {
		return
	}
	p.wireVitals()
	p.Melee.Disable()
	p.Controller.SetActive(true)
	p.Controller.Restore(p.spawn)
}

// Close releases world resources.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.Controller.Close()
}
