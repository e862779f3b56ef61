package demographics_test

import (
	"encoding/json"
	"testing"

	"vectorgen/internal/demographics"
)

func TestFromTemplateNode(t *testing.T) {
	d := demographics.FromTemplateNode(-1.29, 36.82, 10000, "nairobi", 7)

	if d.Metadata.NodeCount != 1 {
		t.Fatalf("want 1 node, got %d", d.Metadata.NodeCount)
	}
	if len(d.Nodes) != 1 {
		t.Fatalf("want 1 node entry, got %d", len(d.Nodes))
	}
	n := d.Nodes[0]
	if n.NodeID != 7 {
		t.Fatalf("want node id 7, got %d", n.NodeID)
	}
	if n.NodeAttributes.InitialPopulation != 10000 {
		t.Fatalf("want population 10000, got %d", n.NodeAttributes.InitialPopulation)
	}
	if n.NodeAttributes.FacilityName != "nairobi" {
		t.Fatalf("want facility name, got %q", n.NodeAttributes.FacilityName)
	}
}

func TestFromTemplateNode_ZeroIDDefaultsToOne(t *testing.T) {
	d := demographics.FromTemplateNode(0, 0, 100, "", 0)
	if d.Nodes[0].NodeID != 1 {
		t.Fatalf("want node id 1, got %d", d.Nodes[0].NodeID)
	}
}

func TestDemographics_BytesShape(t *testing.T) {
	d := demographics.FromTemplateNode(0, 0, 100, "", 1)
	b, err := d.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"Metadata", "Defaults", "Nodes"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("missing %s section", key)
		}
	}
}
