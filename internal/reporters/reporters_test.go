package reporters_test

import (
	"encoding/json"
	"testing"

	"vectorgen/internal/reporters"
)

func TestBuiltin_GroupsByClass(t *testing.T) {
	b := reporters.NewBuiltin()
	b.Add(&reporters.ReportVectorStats{StratifyBySpecies: 1})
	b.Add(&reporters.ReportVectorGenetics{Species: "gambiae"})
	b.Add(&reporters.ReportVectorGenetics{Species: "funestus"})

	if b.Len() != 3 {
		t.Fatalf("want 3 reports, got %d", b.Len())
	}

	raw, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	var doc struct {
		CustomReports map[string]struct {
			Enabled int               `json:"Enabled"`
			Reports []json.RawMessage `json:"Reports"`
		} `json:"Custom_Reports"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	stats, ok := doc.CustomReports["ReportVectorStats"]
	if !ok || stats.Enabled != 1 || len(stats.Reports) != 1 {
		t.Fatalf("unexpected stats group: %+v", stats)
	}
	genetics, ok := doc.CustomReports["ReportVectorGenetics"]
	if !ok || len(genetics.Reports) != 2 {
		t.Fatalf("unexpected genetics group: %+v", genetics)
	}
}

func TestBuiltin_EmptyStillSerializes(t *testing.T) {
	raw, err := reporters.NewBuiltin().Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	var doc map[string]map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc["Custom_Reports"]) != 0 {
		t.Fatalf("want empty Custom_Reports, got %v", doc["Custom_Reports"])
	}
}
