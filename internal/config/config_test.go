package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beamgo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
instrument:
  fore_aft_angle_deg: 54.8
  port_starboard_angle_deg: 21.1
attitude:
  pitch_deg: 17.4
  roll_deg: -2.5
sweep:
  from_deg: 0
  to_deg: 25
  samples: 51
defaults:
  debug_level: 2
  output_format: csv
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Instrument.ForeAftAngleDeg != 54.8 || cfg.Instrument.PortStarboardAngleDeg != 21.1 {
		t.Errorf("instrument angles not loaded: %+v", cfg.Instrument)
	}
	if cfg.Attitude.PitchDeg != 17.4 || cfg.Attitude.RollDeg != -2.5 {
		t.Errorf("attitude not loaded: %+v", cfg.Attitude)
	}
	if cfg.Sweep.FromDeg != 0 || cfg.Sweep.ToDeg != 25 || cfg.Sweep.Samples != 51 {
		t.Errorf("sweep not loaded: %+v", cfg.Sweep)
	}
	if cfg.Defaults.DebugLevel != 2 || cfg.Defaults.OutputFormat != "csv" {
		t.Errorf("defaults not loaded: %+v", cfg.Defaults)
	}
}

func TestLoad_EmptyFileGetsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if cfg.Instrument != def.Instrument {
		t.Errorf("instrument defaults: got %+v, want %+v", cfg.Instrument, def.Instrument)
	}
	if cfg.Sweep != def.Sweep {
		t.Errorf("sweep defaults: got %+v, want %+v", cfg.Sweep, def.Sweep)
	}
	if cfg.Defaults.OutputFormat != "text" {
		t.Errorf("output_format default: got %q, want \"text\"", cfg.Defaults.OutputFormat)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "instrument: [not, a, map")); err == nil {
		t.Error("expected error for malformed yaml, got nil")
	}
}

func TestLoad_MountingAngleOutOfRange(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"fore_aft_negative", "instrument:\n  fore_aft_angle_deg: -47.5\n"},
		{"fore_aft_horizontal", "instrument:\n  fore_aft_angle_deg: 90\n"},
		{"port_stbd_too_large", "instrument:\n  port_starboard_angle_deg: 120\n"},
		{"port_stbd_nan", "instrument:\n  port_starboard_angle_deg: .nan\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoad_SweepValidation(t *testing.T) {
	if _, err := Load(writeConfig(t, "sweep:\n  from_deg: 30\n  to_deg: -30\n")); err == nil {
		t.Error("expected error for inverted sweep bounds, got nil")
	}
	if _, err := Load(writeConfig(t, "sweep:\n  from_deg: 0\n  to_deg: 30\n  samples: 1\n")); err == nil {
		t.Error("expected error for single-sample sweep, got nil")
	}

	// Omitted sample count falls back to the default.
	cfg, err := Load(writeConfig(t, "sweep:\n  from_deg: 5\n  to_deg: 25\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sweep.Samples != Default().Sweep.Samples {
		t.Errorf("samples default: got %d, want %d", cfg.Sweep.Samples, Default().Sweep.Samples)
	}
}

func TestLoad_OutputFormatValidation(t *testing.T) {
	_, err := Load(writeConfig(t, "defaults:\n  output_format: xml\n"))
	if err == nil {
		t.Fatal("expected error for unsupported format, got nil")
	}
	if !strings.Contains(err.Error(), "output_format") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestLoad_DebugLevelValidation(t *testing.T) {
	if _, err := Load(writeConfig(t, "defaults:\n  debug_level: 7\n")); err == nil {
		t.Error("expected error for debug_level 7, got nil")
	}
	if _, err := Load(writeConfig(t, "defaults:\n  debug_level: -1\n")); err == nil {
		t.Error("expected error for negative debug_level, got nil")
	}
}
