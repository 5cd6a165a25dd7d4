package systems

import (
	"testing"

	cfg "github.com/selahstudio/dotgrid/config"
)

func TestCyclePresetWraps(t *testing.T) {
	e, grid := newTestWorld(cfg.Settings.Presets[0].Options, 300, 300)
	n := len(cfg.Settings.Presets)

	CyclePreset(e, -1)
	settings := GetOrCreateSettings(e)
	if settings.PresetIndex != n-1 {
		t.Fatalf("expected preset %d, got %d", n-1, settings.PresetIndex)
	}
	if !grid.Stale {
		t.Fatal("switching presets should schedule a rebuild")
	}
	if grid.Options.DotSize != cfg.Settings.Presets[n-1].Options.DotSize {
		t.Fatal("grid options were not replaced")
	}

	CyclePreset(e, 1)
	if settings.PresetIndex != 0 {
		t.Fatalf("expected preset 0 after wrapping, got %d", settings.PresetIndex)
	}
	if PresetName(e) != cfg.Settings.Presets[0].Name {
		t.Fatalf("unexpected preset name %q", PresetName(e))
	}
}

func TestTuningLimits(t *testing.T) {
	e, grid := newTestWorld(smallGridOptions(), 300, 300)
	tuning := cfg.Settings.Tuning

	for i := 0; i < 100; i++ {
		AdjustProximity(e, -1)
		AdjustShockStrength(e, -1)
		AdjustReturnDuration(e, -1)
	}
	if grid.Options.Proximity != tuning.ProximityMin {
		t.Fatalf("proximity went below its minimum: %f", grid.Options.Proximity)
	}
	if grid.Options.ShockStrength != tuning.ShockStrengthMin {
		t.Fatalf("shock strength went below its minimum: %f", grid.Options.ShockStrength)
	}
	if grid.Options.ReturnDuration != tuning.ReturnDurationMin {
		t.Fatalf("return duration went below its minimum: %f", grid.Options.ReturnDuration)
	}

	AdjustProximity(e, 1)
	if got := FormatProximity(e); got != "20 px" {
		t.Fatalf("unexpected proximity label %q", got)
	}
}

func TestApplySavedSettings(t *testing.T) {
	e, grid := newTestWorld(cfg.Settings.Presets[0].Options, 300, 300)

	ApplySavedSettings(e, &SavedSettings{PresetIndex: 1, Debug: true, IntroSeen: true})

	settings := GetOrCreateSettings(e)
	if settings.PresetIndex != 1 || !settings.Debug || !settings.IntroSeen {
		t.Fatalf("saved settings not applied: %+v", settings)
	}
	if grid.Options.Class != cfg.Settings.Presets[1].Options.Class {
		t.Fatalf("expected the saved preset on the grid, got %q", grid.Options.Class)
	}

	saved := ToSavedSettings(settings)
	if saved.PresetIndex != 1 || !saved.Debug || !saved.IntroSeen {
		t.Fatalf("round trip lost values: %+v", saved)
	}

	// Out of range presets are ignored.
	ApplySavedSettings(e, &SavedSettings{PresetIndex: 99})
	if settings.PresetIndex != 1 {
		t.Fatalf("invalid preset index was applied: %d", settings.PresetIndex)
	}
	ApplySavedSettings(e, nil)
}

func TestGetAction(t *testing.T) {
	input := getOrCreateInput(ecsForInput())

	input.Current[cfg.ActionToggleDebug] = true
	if a := GetAction(input, cfg.ActionToggleDebug); !a.Pressed || !a.JustPressed || a.JustReleased {
		t.Fatalf("expected just pressed, got %+v", a)
	}

	input.Previous = input.Current
	if a := GetAction(input, cfg.ActionToggleDebug); !a.Pressed || a.JustPressed {
		t.Fatalf("expected held, got %+v", a)
	}

	input.Current[cfg.ActionToggleDebug] = false
	if a := GetAction(input, cfg.ActionToggleDebug); a.Pressed || !a.JustReleased {
		t.Fatalf("expected just released, got %+v", a)
	}
}
