package actor

import (
	"fmt"

	"github.com/milk9111/ravine/combat"
	"github.com/milk9111/ravine/control"
	"github.com/milk9111/ravine/input"
	"github.com/milk9111/ravine/pkg/logger"
	"github.com/milk9111/ravine/tuning"
	"github.com/milk9111/ravine/world"
)

// Dummy is the scripted sparring partner. Its brain is a tengo script that
// sees positions each tick and emits a FrameInput like any other source.
type Dummy struct {
	Controller *control.Controller
	Melee      *combat.Melee
	Vitals     *combat.Vitals

	brain *input.Script
	sheet *Sheet
	spawn control.State

	// Target feeds the brain's observation; usually the player.
	Target func() (x, y float64)
}

// NewDummy spawns a sparring dummy at (x, y) running the sheet's brain
// script.
func NewDummy(w *world.World, sheet *Sheet, weapon *combat.WeaponStats, x, y float64) (*Dummy, error) {
	src, err := tuning.LoadScript(sheet.Script)
	if err != nil {
		return nil, fmt.Errorf("actor: load brain %s: %w", sheet.Script, err)
	}
	brain, err := input.NewScript(src)
	if err != nil {
		return nil, fmt.Errorf("actor: compile brain %s: %w", sheet.Script, err)
	}

	d := &Dummy{
		brain: brain,
		sheet: sheet,
	}

	d.Controller = control.NewController(w, &sheet.Movement, sheet.Size, x, y)
	d.Controller.SetRoot(d)
	d.spawn = d.Controller.Snapshot()

	d.Melee = combat.NewMelee(w, d.Controller, weapon, combat.MeleeIDStart+1, combat.FactionEnemy)
	d.wireVitals()
	return d, nil
}

func (d *Dummy) wireVitals() {
	d.Vitals = combat.NewVitals(d.sheet.Vitals, nil)
	d.Vitals.Position = d.Controller.Position
	d.Vitals.Events.Subscribe(func(evt combat.Event) {
		switch evt.Type {
		case combat.EventPostureBroken:
			d.Melee.Disable()
			d.Controller.SetMovementLocked(true)
		case combat.EventPostureRecovered:
			d.Controller.SetMovementLocked(false)
		case combat.EventDied:
			d.Melee.Disable()
			d.Controller.SetActive(false)
			if rec := d.Vitals.LastDeath(); rec != nil {
				logger.Log.WithField("kind", rec.Kind.String()).WithField("excess", rec.Excess).Info("dummy died")
			}
		}
	})
}

// Update advances the dummy by one fixed tick.
func (d *Dummy) Update(dt float64) {
	if d == nil {
		return
	}
	sx, sy := d.Controller.Position()
	tx, ty := sx, sy
	if d.Target != nil {
		tx, ty = d.Target()
	}
	d.brain.Observe(sx, sy, tx, ty)

	in := d.brain.Poll()
	d.Controller.Tick(in, dt)
	d.Melee.Update(in, dt)
	d.Vitals.Update(dt)
}

// ReceiveHit routes incoming damage to the vitals engine.
func (d *Dummy) ReceiveHit(payload combat.Payload) bool {
	return d.Vitals.ReceiveHit(payload)
}

// Respawn resets the dummy to its spawn point with fresh vitals.
func (d *Dummy) Respawn() {
	if d == nil {
		return
	}
	d.wireVitals()
	d.Melee.Disable()
	d.Controller.SetMovementLocked(false)
	d.Controller.SetActive(true)
	d.Controller.Restore(d.spawn)
}

// Close releases world resources.
func (d *Dummy) Close() {
	if d == nil {
		return
	}
	d.Controller.Close()
}
