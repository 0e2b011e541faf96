package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// A missing config file is not an error; defaults apply.
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Pipeline != DefaultPipeline {
		t.Errorf("expected default pipeline, got %q", cfg.Pipeline)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pipeline != "industry" {
		t.Errorf("expected industry pipeline, got %q", cfg.Pipeline)
	}
	if cfg.Chart.MaxLabel != 18 || cfg.Chart.Width != 30 {
		t.Errorf("unexpected chart defaults: %+v", cfg.Chart)
	}
	if cfg.Recommend.LowInterviewRate != 20 || cfg.Recommend.LowSuccessRate != 5 || cfg.Recommend.MinApplications != 5 {
		t.Errorf("unexpected recommend defaults: %+v", cfg.Recommend)
	}
	if !cfg.Output.Color {
		t.Error("expected color on by default")
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("pipeline: classic\nrecommend:\n  min_applications: 3\nchart:\n  max_label: 12\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pipeline != "classic" {
		t.Errorf("expected classic, got %q", cfg.Pipeline)
	}
	if cfg.Recommend.MinApplications != 3 {
		t.Errorf("expected 3, got %d", cfg.Recommend.MinApplications)
	}
	if cfg.Chart.MaxLabel != 12 {
		t.Errorf("expected 12, got %d", cfg.Chart.MaxLabel)
	}
	// Untouched keys keep their defaults.
	if cfg.Recommend.LowSuccessRate != 5 {
		t.Errorf("expected default low_success_rate, got %f", cfg.Recommend.LowSuccessRate)
	}
}

func TestThresholds(t *testing.T) {
	cfg := &Config{Recommend: Recommend{LowInterviewRate: 25, LowSuccessRate: 10, MinApplications: 4}}
	th := cfg.Thresholds()
	if th.LowInterviewRate != 25 || th.LowSuccessRate != 10 || th.MinApplicationsForStale != 4 {
		t.Errorf("unexpected thresholds: %+v", th)
	}
}
