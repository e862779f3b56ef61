package app_test

import (
	"testing"

	"vectorgen/internal/app"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Jobs != 4 {
		t.Fatalf("want default 4 jobs, got %d", cfg.Jobs)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("VECTORGEN_WORKDIR", "/tmp/vg")
	t.Setenv("VECTORGEN_JOBS", "8")
	t.Setenv("VECTORGEN_VERBOSE", "true")

	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.WorkDir != "/tmp/vg" {
		t.Fatalf("want workdir override, got %q", cfg.WorkDir)
	}
	if cfg.Jobs != 8 {
		t.Fatalf("want 8 jobs, got %d", cfg.Jobs)
	}
	if !cfg.Verbose {
		t.Fatal("want verbose")
	}
}
