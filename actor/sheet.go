package actor

import (
	"fmt"

	"github.com/milk9111/ravine/combat"
	"github.com/milk9111/ravine/control"
	"github.com/milk9111/ravine/tuning"
)

// Sheet is one character's full tuning: movement, body, vitals and an
// optional brain script reference.
type Sheet struct {
	Movement control.Stats         `yaml:"movement"`
	Size     control.CharacterSize `yaml:"size"`
	Vitals   combat.VitalsConfig   `yaml:"vitals"`
	Script   string                `yaml:"script"`
}

// WeaponsSheet is the weapon catalog file.
type WeaponsSheet struct {
	Weapons []combat.WeaponStats `yaml:"weapons"`
}

// LoadSheet reads a character sheet by file name.
func LoadSheet(name string) (*Sheet, error) {
	var s Sheet
	if err := tuning.LoadSheet(name, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadWeapon reads the weapon catalog and picks one entry by name.
func LoadWeapon(name string) (*combat.WeaponStats, error) {
	var catalog WeaponsSheet
	if err := tuning.LoadSheet("weapons.yaml", &catalog); err != nil {
		return nil, err
	}
	for i := range catalog.Weapons {
		if catalog.Weapons[i].Name == name {
			w := catalog.Weapons[i]
			w.Validate()
			return &w, nil
		}
	}
	return nil, fmt.Errorf("actor: weapon %q not in catalog", name)
}
