package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Vehicle.SpeedMaxKmh != 180 {
		t.Errorf("SpeedMaxKmh = %d, want 180", cfg.Vehicle.SpeedMaxKmh)
	}
	if cfg.Vehicle.InitialBasePSI != 32 {
		t.Errorf("InitialBasePSI = %d, want 32", cfg.Vehicle.InitialBasePSI)
	}
	if cfg.Physics.ReactionTimeS != 1.8 {
		t.Errorf("ReactionTimeS = %v, want 1.8", cfg.Physics.ReactionTimeS)
	}
	if cfg.Warnings.FCWMaxThresholdM != 50 {
		t.Errorf("FCWMaxThresholdM = %d, want 50", cfg.Warnings.FCWMaxThresholdM)
	}
	if cfg.Timers.DoorBlockMs != 2000 {
		t.Errorf("DoorBlockMs = %d, want 2000", cfg.Timers.DoorBlockMs)
	}
	if cfg.Audio.BeepIntervalMs != 800 {
		t.Errorf("BeepIntervalMs = %d, want 800", cfg.Audio.BeepIntervalMs)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `vehicle:
  speed_max_kmh: 240
timers:
  lane_msg_ms: 1500
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Vehicle.SpeedMaxKmh != 240 {
		t.Errorf("SpeedMaxKmh = %d, want user override 240", cfg.Vehicle.SpeedMaxKmh)
	}
	if cfg.Timers.LaneMsgMs != 1500 {
		t.Errorf("LaneMsgMs = %d, want user override 1500", cfg.Timers.LaneMsgMs)
	}
	// Fields absent from the user file keep their defaults
	if cfg.Timers.DoorBlockMs != 2000 {
		t.Errorf("DoorBlockMs = %d, want default 2000", cfg.Timers.DoorBlockMs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Screen.TargetFPS = 30

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Screen.TargetFPS != 30 {
		t.Errorf("TargetFPS = %d after round trip, want 30", back.Screen.TargetFPS)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	old := global
	global = nil
	defer func() {
		global = old
		if recover() == nil {
			t.Error("Cfg() did not panic before Init")
		}
	}()
	Cfg()
}
