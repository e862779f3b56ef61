// Package spraying builds the node-targeted vector-control interventions:
// space spraying, which kills vectors present in the node, and the spatial
// repellent, which repels meal-seeking vectors before they feed. Both are
// scheduled through the shared campaign-event builder.
package spraying

import (
	"vectorgen/internal/campaign"
	"vectorgen/internal/domain/types"
	"vectorgen/internal/interventions/common"
	"vectorgen/internal/waning"
)

// InterventionName is the default Intervention_Name for both interventions.
const InterventionName = "SpaceSpraying"

// Options configures the intervention itself; effect fields feed the waning
// config (killing for spraying, repelling for the repellent).
type Options struct {
	// SprayCoverage is the portion of the node sprayed; multiplied by the
	// current efficacy of the waning effect.
	SprayCoverage float64

	// Insecticide must name an entry in the simulator config's
	// Insecticides list when that list is non-empty.
	Insecticide string

	EffectInitial           float64
	EffectBoxDuration       float64
	EffectDecayTimeConstant float64

	// InterventionName differentiates concurrent interventions of the same
	// class on one node.
	InterventionName string

	CostToConsumer          float64
	DisqualifyingProperties []string
	DontAllowDuplicates     bool
	NewPropertyValue        string
}

// DefaultOptions returns the schema defaults: full coverage, full initial
// effect that never decays.
func DefaultOptions() Options {
	return Options{
		SprayCoverage:     1.0,
		EffectInitial:     1.0,
		EffectBoxDuration: -1,
		InterventionName:  InterventionName,
	}
}

// ScheduleOptions configures when and where a spraying intervention is
// distributed.
type ScheduleOptions struct {
	StartDay                    float64
	NodeIDs                     []types.NodeID
	NodePropertyRestrictions    []types.PropertyPairs
	Repetitions                 int
	TimestepsBetweenRepetitions int
}

// DefaultScheduleOptions returns day 1, all nodes, one distribution.
func DefaultScheduleOptions() ScheduleOptions {
	return ScheduleOptions{StartDay: 1, Repetitions: 1, TimestepsBetweenRepetitions: 365}
}

// SpaceSpraying builds the node intervention with its killing waning
// config.
func SpaceSpraying(o Options) *types.SpaceSpraying {
	iv := &types.SpaceSpraying{
		Class:                   "SpaceSpraying",
		InterventionName:        o.InterventionName,
		InsecticideName:         o.Insecticide,
		SprayCoverage:           o.SprayCoverage,
		CostToConsumer:          o.CostToConsumer,
		DisqualifyingProperties: o.DisqualifyingProperties,
		NewPropertyValue:        o.NewPropertyValue,
		KillingConfig:           waning.FromParams(o.EffectInitial, o.EffectBoxDuration, o.EffectDecayTimeConstant),
	}
	if o.InterventionName == "" {
		iv.InterventionName = InterventionName
	}
	if o.DontAllowDuplicates {
		iv.DontAllowDuplicates = 1
	}
	return iv
}

// SpatialRepellent builds the node intervention with its repelling waning
// config.
func SpatialRepellent(o Options) *types.SpatialRepellent {
	iv := &types.SpatialRepellent{
		Class:                   "SpatialRepellent",
		InterventionName:        o.InterventionName,
		InsecticideName:         o.Insecticide,
		SprayCoverage:           o.SprayCoverage,
		CostToConsumer:          o.CostToConsumer,
		DisqualifyingProperties: o.DisqualifyingProperties,
		NewPropertyValue:        o.NewPropertyValue,
		RepellingConfig:         waning.FromParams(o.EffectInitial, o.EffectBoxDuration, o.EffectDecayTimeConstant),
	}
	if o.InterventionName == "" {
		iv.InterventionName = InterventionName
	}
	if o.DontAllowDuplicates {
		iv.DontAllowDuplicates = 1
	}
	return iv
}

// AddScheduledSpaceSpraying builds a SpaceSpraying intervention and appends
// a scheduled campaign event distributing it.
func AddScheduledSpaceSpraying(c *campaign.Campaign, s ScheduleOptions, o Options) error {
	return addScheduled(c, s, SpaceSpraying(o))
}

// AddScheduledSpatialRepellent builds a SpatialRepellent intervention and
// appends a scheduled campaign event distributing it.
func AddScheduledSpatialRepellent(c *campaign.Campaign, s ScheduleOptions, o Options) error {
	return addScheduled(c, s, SpatialRepellent(o))
}

func addScheduled(c *campaign.Campaign, s ScheduleOptions, iv types.Intervention) error {
	ev := common.DefaultCampaignEventOptions()
	ev.StartDay = s.StartDay
	ev.NodeIDs = s.NodeIDs
	ev.NodePropertyRestrictions = s.NodePropertyRestrictions
	ev.Repetitions = s.Repetitions
	ev.TimestepsBetweenRepetitions = s.TimestepsBetweenRepetitions
	ev.NodeInterventions = []types.Intervention{iv}
	return common.AddCampaignEvent(c, ev)
}

// NewInterventionAsFile writes a campaign containing a default space
// spraying event starting on startDay to path and returns the path.
func NewInterventionAsFile(c *campaign.Campaign, startDay float64, path string) (string, error) {
	if path == "" {
		path = "SpaceSpraying.json"
	}
	s := DefaultScheduleOptions()
	s.StartDay = startDay
	if err := AddScheduledSpaceSpraying(c, s, DefaultOptions()); err != nil {
		return "", err
	}
	if err := c.Save(path); err != nil {
		return "", err
	}
	return path, nil
}
