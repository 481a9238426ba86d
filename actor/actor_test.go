package actor

import (
	"testing"

	"github.com/milk9111/ravine/input"
	"github.com/milk9111/ravine/world"
)

const testDt = 1.0 / 120

func TestLoadSheets(t *testing.T) {
	player, err := LoadSheet("player.yaml")
	if err != nil {
		t.Fatalf("player sheet: %v", err)
	}
	if player.Movement.BaseSpeed <= 0 || player.Vitals.MaxHealth <= 0 {
		t.Fatalf("player sheet missing core values: %+v", player)
	}

	dummy, err := LoadSheet("dummy.yaml")
	if err != nil {
		t.Fatalf("dummy sheet: %v", err)
	}
	if dummy.Script == "" {
		t.Fatalf("dummy sheet should name a brain script")
	}
}

func TestLoadWeapon(t *testing.T) {
	sword, err := LoadWeapon("sword")
	if err != nil {
		t.Fatalf("sword: %v", err)
	}
	if sword.ChargeThreshold <= 0 || sword.LightHealth <= 0 {
		t.Fatalf("sword tuning incomplete: %+v", sword)
	}

	if _, err := LoadWeapon("banhammer"); err == nil {
		t.Fatalf("unknown weapon should error")
	}
}

// TestPlayerHitsDummy runs a miniature bout: the player performs one light
// attack next to the dummy and the dummy loses health.
func TestPlayerHitsDummy(t *testing.T) {
	w := world.New()
	w.AddBox(0, 100, 400, 50, world.LayerGround, nil)

	playerSheet, err := LoadSheet("player.yaml")
	if err != nil {
		t.Fatalf("player sheet: %v", err)
	}
	dummySheet, err := LoadSheet("dummy.yaml")
	if err != nil {
		t.Fatalf("dummy sheet: %v", err)
	}
	sword, err := LoadWeapon("sword")
	if err != nil {
		t.Fatalf("sword: %v", err)
	}
	club, err := LoadWeapon("training_club")
	if err != nil {
		t.Fatalf("club: %v", err)
	}

	replay := &input.Replay{Frames: []input.FrameInput{
		{AttackPressed: true, AttackHeld: true},
		{AttackHeld: true},
	}}
	player := NewPlayer(w, playerSheet, sword, replay, 100, 82)
	defer player.Close()

	dummy, err := NewDummy(w, dummySheet, club, 130, 80)
	if err != nil {
		t.Fatalf("dummy: %v", err)
	}
	defer dummy.Close()
	dummy.Target = player.Controller.Position

	startHealth := dummy.Vitals.Health()
	for i := 0; i < 120; i++ {
		w.Step(testDt)
		player.Update(testDt)
		dummy.Update(testDt)
	}

	if dummy.Vitals.Health() != startHealth-sword.LightHealth {
		t.Fatalf("dummy health = %d, want %d", dummy.Vitals.Health(), startHealth-sword.LightHealth)
	}
	if dummy.Vitals.IsDead() {
		t.Fatalf("one light hit should not kill the dummy")
	}
}

func TestPlayerRespawnRestoresVitals(t *testing.T) {
	w := world.New()
	w.AddBox(0, 100, 400, 50, world.LayerGround, nil)

	sheet, err := LoadSheet("player.yaml")
	if err != nil {
		t.Fatalf("player sheet: %v", err)
	}
	sword, err := LoadWeapon("sword")
	if err != nil {
		t.Fatalf("sword: %v", err)
	}

	player := NewPlayer(w, sheet, sword, &input.Replay{}, 100, 82)
	defer player.Close()
	player.Update(testDt)

	player.Vitals.KillSilently()
	if !player.Vitals.IsDead() {
		t.Fatalf("kill failed")
	}

	player.Respawn()
	if player.Vitals.IsDead() {
		t.Fatalf("respawn should issue fresh vitals")
	}
	if player.Vitals.Health() != player.Vitals.MaxHealth() {
		t.Fatalf("respawned health = %d, want max", player.Vitals.Health())
	}
	if !player.Controller.IsActive() {
		t.Fatalf("respawned controller should be active")
	}
}
