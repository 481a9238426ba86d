package tuning

import "testing"

func TestEmbeddedSheetsLoad(t *testing.T) {
	for _, name := range []string{"player.yaml", "dummy.yaml", "weapons.yaml", "level.yaml"} {
		t.Run(name, func(t *testing.T) {
			data, err := Load(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			if len(data) == 0 {
				t.Fatalf("%s is empty", name)
			}
		})
	}
}

func TestLoadSheetDecodes(t *testing.T) {
	var sheet struct {
		Movement struct {
			BaseSpeed float64 `yaml:"base_speed"`
		} `yaml:"movement"`
		Vitals struct {
			MaxHealth int `yaml:"max_health"`
		} `yaml:"vitals"`
	}
	if err := LoadSheet("player.yaml", &sheet); err != nil {
		t.Fatalf("decode player sheet: %v", err)
	}
	if sheet.Movement.BaseSpeed <= 0 {
		t.Fatalf("base speed missing from player sheet")
	}
	if sheet.Vitals.MaxHealth <= 0 {
		t.Fatalf("max health missing from player sheet")
	}
}

func TestLoadSheetUnknownName(t *testing.T) {
	var out struct{}
	if err := LoadSheet("nope.yaml", &out); err == nil {
		t.Fatalf("unknown sheet should error")
	}
}

func TestLoadScript(t *testing.T) {
	data, err := LoadScript("dummy.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("script is empty")
	}
	// path prefixes normalize to the same file
	again, err := LoadScript("scripts/dummy.tengo")
	if err != nil {
		t.Fatalf("load with scripts/ prefix: %v", err)
	}
	if string(again) != string(data) {
		t.Fatalf("prefix normalization returned different content")
	}
}

type fakeMember struct{ sweeps int }

func (f *fakeMember) Revalidate() { f.sweeps++ }

func TestRegistrySweep(t *testing.T) {
	r := NewRegistry()
	a, b := &fakeMember{}, &fakeMember{}
	r.Register(a)
	r.Register(b)
	r.Register(a) // double registration is idempotent

	if r.Len() != 2 {
		t.Fatalf("len = %d, want 2", r.Len())
	}
	r.RevalidateAll()
	if a.sweeps != 1 || b.sweeps != 1 {
		t.Fatalf("sweep counts = %d/%d, want 1/1", a.sweeps, b.sweeps)
	}

	r.Deregister(a)
	r.RevalidateAll()
	if a.sweeps != 1 || b.sweeps != 2 {
		t.Fatalf("deregistered member swept, counts = %d/%d", a.sweeps, b.sweeps)
	}
}
