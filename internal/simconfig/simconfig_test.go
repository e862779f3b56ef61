package simconfig_test

import (
	"encoding/json"
	"testing"

	"vectorgen/internal/simconfig"
)

func TestTeamDefaults(t *testing.T) {
	cfg := simconfig.TeamDefaults()

	v, ok := cfg.Get("Simulation_Type")
	if !ok || v != "MALARIA_SIM" {
		t.Fatalf("want MALARIA_SIM, got %v", v)
	}
	if _, ok := cfg.Get("Run_Number"); !ok {
		t.Fatal("want Run_Number default")
	}
}

func TestConfig_SetOverrides(t *testing.T) {
	cfg := simconfig.TeamDefaults()
	cfg.Set("Simulation_Duration", 1000)

	v, _ := cfg.Get("Simulation_Duration")
	if v != 1000 {
		t.Fatalf("want 1000, got %v", v)
	}
}

func TestConfig_AddSpecies(t *testing.T) {
	cfg := simconfig.New()
	if err := cfg.AddSpecies("gambiae", "funestus"); err != nil {
		t.Fatalf("AddSpecies: %v", err)
	}
	sp, ok := cfg.Species("gambiae")
	if !ok {
		t.Fatal("gambiae not found")
	}
	if sp.IndoorFeedingFraction != 0.95 {
		t.Fatalf("unexpected preset: %+v", sp)
	}

	if err := cfg.AddSpecies("albopictus"); err == nil {
		t.Fatal("want error for unknown species")
	}
}

func TestConfig_SpeciesPatches(t *testing.T) {
	cfg := simconfig.New()
	if err := cfg.AddSpecies("gambiae"); err != nil {
		t.Fatal(err)
	}

	if err := cfg.SetMaxLarvalCapacity("gambiae", "CONSTANT", 10000); err != nil {
		t.Fatalf("SetMaxLarvalCapacity: %v", err)
	}
	sp, _ := cfg.Species("gambiae")
	// CONSTANT is a new habitat type for the preset; it gets appended.
	if len(sp.Habitats) != 2 {
		t.Fatalf("want 2 habitats, got %d", len(sp.Habitats))
	}
	if sp.Habitats[1].MaxLarvalCapacity != 10000 {
		t.Fatalf("unexpected habitat: %+v", sp.Habitats[1])
	}

	if err := cfg.SetIndoorFeedingFraction("gambiae", 0.25); err != nil {
		t.Fatalf("SetIndoorFeedingFraction: %v", err)
	}
	if sp.IndoorFeedingFraction != 0.25 {
		t.Fatalf("want 0.25, got %v", sp.IndoorFeedingFraction)
	}

	if err := cfg.SetIndoorFeedingFraction("funestus", 0.5); err == nil {
		t.Fatal("want error patching species that was never added")
	}
}

func TestConfig_PresetIsolation(t *testing.T) {
	a := simconfig.New()
	if err := a.AddSpecies("gambiae"); err != nil {
		t.Fatal(err)
	}
	if err := a.SetMaxLarvalCapacity("gambiae", "TEMPORARY_RAINFALL", 1); err != nil {
		t.Fatal(err)
	}

	b := simconfig.New()
	if err := b.AddSpecies("gambiae"); err != nil {
		t.Fatal(err)
	}
	sp, _ := b.Species("gambiae")
	if sp.Habitats[0].MaxLarvalCapacity == 1 {
		t.Fatal("preset mutated by an earlier config")
	}
}

func TestConfig_MarshalShape(t *testing.T) {
	cfg := simconfig.TeamDefaults()
	if err := cfg.AddSpecies("gambiae"); err != nil {
		t.Fatal(err)
	}

	b, err := cfg.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	var doc struct {
		Parameters map[string]json.RawMessage `json:"parameters"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Parameters == nil {
		t.Fatal("missing parameters envelope")
	}
	if _, ok := doc.Parameters["Vector_Species_Params"]; !ok {
		t.Fatal("species not folded into parameters")
	}
	if _, ok := doc.Parameters["Simulation_Type"]; !ok {
		t.Fatal("missing Simulation_Type")
	}
}
