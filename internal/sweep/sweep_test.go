package sweep_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vectorgen/internal/sweep"
)

func TestExpand_CrossProduct(t *testing.T) {
	points := sweep.Expand(sweep.Values{
		"coverage": {0.5, 1.0},
		"run":      {0, 1, 2},
	})

	if len(points) != 6 {
		t.Fatalf("want 6 points, got %d", len(points))
	}
	// Names are sorted and the last varies fastest, so "run" cycles first.
	want := []sweep.Point{
		{"coverage": 0.5, "run": 0},
		{"coverage": 0.5, "run": 1},
		{"coverage": 0.5, "run": 2},
		{"coverage": 1.0, "run": 0},
		{"coverage": 1.0, "run": 1},
		{"coverage": 1.0, "run": 2},
	}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Fatalf("point order mismatch (-want +got):\n%s", diff)
	}
}

func TestExpand_EmptyList(t *testing.T) {
	if got := sweep.Expand(sweep.Values{"a": {1}, "b": {}}); got != nil {
		t.Fatalf("want no points when a list is empty, got %v", got)
	}
	if got := sweep.Expand(nil); got != nil {
		t.Fatalf("want no points for empty sweep, got %v", got)
	}
}

func TestInts(t *testing.T) {
	got := sweep.Ints(0, 3)
	want := []any{0, 1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPoint_Accessors(t *testing.T) {
	p := sweep.Point{"coverage": 0.8, "run": 3, "label": "a"}

	f, err := p.Float("coverage")
	if err != nil || f != 0.8 {
		t.Fatalf("Float: %v, %v", f, err)
	}
	// Ints read as floats too; YAML decoding does not distinguish.
	if f, err := p.Float("run"); err != nil || f != 3 {
		t.Fatalf("Float(run): %v, %v", f, err)
	}
	n, err := p.Int("run")
	if err != nil || n != 3 {
		t.Fatalf("Int: %v, %v", n, err)
	}
	if _, err := p.Float("missing"); err == nil {
		t.Fatal("want error for missing parameter")
	}
	if _, err := p.Int("label"); err == nil {
		t.Fatal("want error for non-numeric parameter")
	}

	tags := p.Tags()
	if tags["run"] != 3 {
		t.Fatalf("want tag run=3, got %v", tags["run"])
	}
}

func TestLoad_SpecFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	spec := "name: demo\nparameters:\n  run_number: [0, 1]\n  coverage: [0.8]\n"
	if err := os.WriteFile(path, []byte(spec), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := sweep.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "demo" {
		t.Fatalf("want name demo, got %q", s.Name)
	}
	if got := len(s.Points()); got != 2 {
		t.Fatalf("want 2 points, got %d", got)
	}
}

func TestLoad_RejectsEmptyParameters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	if err := os.WriteFile(path, []byte("name: empty\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := sweep.Load(path); err == nil {
		t.Fatal("want error for spec without parameters")
	}
}
