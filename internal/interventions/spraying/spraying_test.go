package spraying_test

import (
	"os"
	"path/filepath"
	"testing"

	"vectorgen/internal/campaign"
	"vectorgen/internal/domain/types"
	"vectorgen/internal/interventions/spraying"
)

func TestSpaceSpraying_Defaults(t *testing.T) {
	iv := spraying.SpaceSpraying(spraying.DefaultOptions())

	if iv.Class != "SpaceSpraying" {
		t.Fatalf("want class SpaceSpraying, got %q", iv.Class)
	}
	if iv.InterventionName != spraying.InterventionName {
		t.Fatalf("want default name, got %q", iv.InterventionName)
	}
	if iv.SprayCoverage != 1.0 {
		t.Fatalf("want full coverage, got %v", iv.SprayCoverage)
	}
	// Default effect never decays.
	if _, ok := iv.KillingConfig.(*types.WaningConstant); !ok {
		t.Fatalf("want constant killing effect, got %T", iv.KillingConfig)
	}
}

func TestSpaceSpraying_BoxedKillingEffect(t *testing.T) {
	o := spraying.DefaultOptions()
	o.EffectInitial = 0.09
	o.EffectBoxDuration = 100
	o.Insecticide = "pyrethroid"
	o.DontAllowDuplicates = true

	iv := spraying.SpaceSpraying(o)
	box, ok := iv.KillingConfig.(*types.WaningBox)
	if !ok {
		t.Fatalf("want boxed killing effect, got %T", iv.KillingConfig)
	}
	if box.InitialEffect != 0.09 || box.BoxDuration != 100 {
		t.Fatalf("unexpected waning: %+v", box)
	}
	if iv.InsecticideName != "pyrethroid" {
		t.Fatalf("want insecticide, got %q", iv.InsecticideName)
	}
	if iv.DontAllowDuplicates != 1 {
		t.Fatal("want duplicate guard set")
	}
}

func TestSpatialRepellent_UsesRepellingSlot(t *testing.T) {
	o := spraying.DefaultOptions()
	o.EffectInitial = 0.45
	o.EffectBoxDuration = 100

	iv := spraying.SpatialRepellent(o)
	if iv.Class != "SpatialRepellent" {
		t.Fatalf("want class SpatialRepellent, got %q", iv.Class)
	}
	if iv.RepellingConfig == nil {
		t.Fatal("repelling config not set")
	}
	box, ok := iv.RepellingConfig.(*types.WaningBox)
	if !ok || box.InitialEffect != 0.45 {
		t.Fatalf("unexpected repelling waning: %T %+v", iv.RepellingConfig, iv.RepellingConfig)
	}
}

func TestAddScheduledSpaceSpraying_AppendsNodeEvent(t *testing.T) {
	c := campaign.New("test")

	s := spraying.DefaultScheduleOptions()
	s.StartDay = 850
	s.NodeIDs = []types.NodeID{3}
	if err := spraying.AddScheduledSpaceSpraying(c, s, spraying.DefaultOptions()); err != nil {
		t.Fatalf("AddScheduledSpaceSpraying: %v", err)
	}

	if c.Len() != 1 {
		t.Fatalf("want 1 event, got %d", c.Len())
	}
	ev := c.Campaign().Events[0]
	if ev.StartDay != 850 {
		t.Fatalf("want start day 850, got %v", ev.StartDay)
	}
	if ev.NodesetConfig.Class != "NodeSetNodeList" {
		t.Fatalf("want node list, got %q", ev.NodesetConfig.Class)
	}
	if _, ok := ev.EventCoordinatorConfig.InterventionConfig.(*types.SpaceSpraying); !ok {
		t.Fatalf("want SpaceSpraying wired, got %T", ev.EventCoordinatorConfig.InterventionConfig)
	}
}

func TestNewInterventionAsFile(t *testing.T) {
	dir := t.TempDir()
	c := campaign.New("SpaceSpraying")

	path, err := spraying.NewInterventionAsFile(c, 0, filepath.Join(dir, "SpaceSpraying.json"))
	if err != nil {
		t.Fatalf("NewInterventionAsFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("campaign file missing: %v", err)
	}

	loaded, err := campaign.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Events) != 1 {
		t.Fatalf("want 1 event in file, got %d", len(loaded.Events))
	}
}
