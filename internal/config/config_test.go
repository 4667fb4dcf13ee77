package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputDir != "./out" {
		t.Errorf("output dir: got %q", cfg.OutputDir)
	}
	if cfg.SilenceThresholdDBFS != -70 {
		t.Errorf("threshold: got %v", cfg.SilenceThresholdDBFS)
	}
	if cfg.MinSilenceMillis != 100 || cfg.SeekStepMillis != 20 {
		t.Errorf("silence params: got %d/%d", cfg.MinSilenceMillis, cfg.SeekStepMillis)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracksaw.yaml")
	data := []byte("output_dir: /tmp/tracks\ntolerance_millis: 1500\nmin_silence_millis: 250\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/tracks" {
		t.Errorf("output dir: got %q", cfg.OutputDir)
	}
	if cfg.ToleranceMillis != 1500 {
		t.Errorf("tolerance: got %d", cfg.ToleranceMillis)
	}
	if cfg.MinSilenceMillis != 250 {
		t.Errorf("min silence: got %d", cfg.MinSilenceMillis)
	}
	// Untouched keys keep their defaults.
	if cfg.SeekStepMillis != 20 {
		t.Errorf("seek step: got %d", cfg.SeekStepMillis)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracksaw.yaml")
	if err := os.WriteFile(path, []byte("tolerance_millis: 1500\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Setenv("TRACKSAW_TOLERANCE_MILLIS", "3000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ToleranceMillis != 3000 {
		t.Errorf("tolerance: got %d, want env value 3000", cfg.ToleranceMillis)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative tolerance", "tolerance_millis: -1\n"},
		{"positive threshold", "silence_threshold_dbfs: 5\n"},
		{"zero min silence", "min_silence_millis: 0\n"},
		{"empty output dir", `output_dir: ""` + "\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatalf("setup: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/tracksaw.yaml"); err == nil {
		t.Error("expected error for a missing file")
	}
}
