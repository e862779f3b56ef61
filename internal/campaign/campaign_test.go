package campaign_test

import (
	"path/filepath"
	"testing"

	"vectorgen/internal/campaign"
	"vectorgen/internal/domain/types"
)

func TestCampaign_DefaultsAndName(t *testing.T) {
	c := campaign.New("")
	c.Add(types.NewCampaignEvent())

	art := c.Campaign()
	if art.CampaignName != "campaign.json" {
		t.Fatalf("want default name, got %q", art.CampaignName)
	}
	if art.UseDefaults != 1 {
		t.Fatal("want Use_Defaults set")
	}

	named := campaign.New("Sweep A")
	if named.Campaign().CampaignName != "Sweep A" {
		t.Fatalf("got %q", named.Campaign().CampaignName)
	}
}

func TestCampaign_SaveRejectsEmpty(t *testing.T) {
	c := campaign.New("empty")
	if err := c.Save(filepath.Join(t.TempDir(), "campaign.json")); err == nil {
		t.Fatal("want error saving campaign with no events")
	}
}

func TestCampaign_SaveLoad_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.json")

	c := campaign.New("roundtrip")
	ev := types.NewCampaignEvent()
	ev.StartDay = 850
	ev.NodesetConfig = types.NodeSetFromIDs([]types.NodeID{1, 2})
	c.Add(ev)
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := campaign.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.CampaignName != "roundtrip" {
		t.Fatalf("want name roundtrip, got %q", loaded.CampaignName)
	}
	if len(loaded.Events) != 1 {
		t.Fatalf("want 1 event, got %d", len(loaded.Events))
	}
	got := loaded.Events[0]
	if got.StartDay != 850 {
		t.Fatalf("want start day 850, got %v", got.StartDay)
	}
	if got.NodesetConfig.Class != "NodeSetNodeList" {
		t.Fatalf("want NodeSetNodeList, got %q", got.NodesetConfig.Class)
	}
}

func TestCampaign_SchemaPath(t *testing.T) {
	c := campaign.New("x")
	c.SetSchemaPath("schema/latest.json")
	if c.SchemaPath() != "schema/latest.json" {
		t.Fatalf("got %q", c.SchemaPath())
	}
}
