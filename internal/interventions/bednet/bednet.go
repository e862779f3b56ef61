// Package bednet builds the usage-dependent bednet, an individual-targeted
// intervention whose killing and blocking effects apply only while the net
// is in use.
package bednet

import (
	"vectorgen/internal/campaign"
	"vectorgen/internal/domain/types"
	"vectorgen/internal/interventions/common"
	"vectorgen/internal/waning"
)

// InterventionName is the default Intervention_Name.
const InterventionName = "UsageDependentBednet"

// Options configures the bednet's effects and retention.
type Options struct {
	Insecticide string

	KillingInitial           float64
	KillingBoxDuration       float64
	KillingDecayTimeConstant float64

	BlockingInitial           float64
	BlockingBoxDuration       float64
	BlockingDecayTimeConstant float64

	// UsageInitial is the constant fraction of nights the net is used.
	UsageInitial float64

	// ExpirationPeriod is the constant retention time in days before the
	// net is discarded; 0 keeps the net forever.
	ExpirationPeriod float64
	DiscardEvent     string

	InterventionName        string
	CostToConsumer          float64
	DisqualifyingProperties []string
	DontAllowDuplicates     bool
	NewPropertyValue        string
}

// DefaultOptions returns full killing and blocking effects that never
// decay, a net used every night, and no discard.
func DefaultOptions() Options {
	return Options{
		KillingInitial:      1.0,
		KillingBoxDuration:  -1,
		BlockingInitial:     1.0,
		BlockingBoxDuration: -1,
		UsageInitial:        1.0,
		InterventionName:    InterventionName,
	}
}

// ScheduleOptions configures distribution of the bednet.
type ScheduleOptions struct {
	StartDay                    float64
	NodeIDs                     []types.NodeID
	DemographicCoverage         float64
	Repetitions                 int
	TimestepsBetweenRepetitions int
	IndPropertyRestrictions     []types.PropertyPairs
	TargetAgeMin                float64
	TargetAgeMax                float64
	TargetGender                string
}

// DefaultScheduleOptions returns day 1, all nodes, full coverage.
func DefaultScheduleOptions() ScheduleOptions {
	return ScheduleOptions{
		StartDay:                    1,
		DemographicCoverage:         1.0,
		Repetitions:                 1,
		TimestepsBetweenRepetitions: 365,
		TargetAgeMax:                125,
		TargetGender:                types.GenderAll,
	}
}

// Bednet builds the individual intervention.
func Bednet(o Options) *types.UsageDependentBednet {
	iv := &types.UsageDependentBednet{
		Class:                        "UsageDependentBednet",
		InterventionName:             o.InterventionName,
		InsecticideName:              o.Insecticide,
		CostToConsumer:               o.CostToConsumer,
		DisqualifyingProperties:      o.DisqualifyingProperties,
		NewPropertyValue:             o.NewPropertyValue,
		KillingConfig:                waning.FromParams(o.KillingInitial, o.KillingBoxDuration, o.KillingDecayTimeConstant),
		BlockingConfig:               waning.FromParams(o.BlockingInitial, o.BlockingBoxDuration, o.BlockingDecayTimeConstant),
		UsageConfigList:              []types.Waning{types.NewWaningConstant(o.UsageInitial)},
		ExpirationPeriodDistribution: "CONSTANT_DISTRIBUTION",
		ExpirationPeriodConstant:     o.ExpirationPeriod,
		DiscardEvent:                 o.DiscardEvent,
	}
	if o.InterventionName == "" {
		iv.InterventionName = InterventionName
	}
	if o.DontAllowDuplicates {
		iv.DontAllowDuplicates = 1
	}
	return iv
}

// AddScheduledUsageDependentBednet builds the bednet and appends a
// scheduled campaign event distributing it to individuals.
func AddScheduledUsageDependentBednet(c *campaign.Campaign, s ScheduleOptions, o Options) error {
	ev := common.DefaultCampaignEventOptions()
	ev.StartDay = s.StartDay
	ev.NodeIDs = s.NodeIDs
	ev.DemographicCoverage = s.DemographicCoverage
	ev.Repetitions = s.Repetitions
	ev.TimestepsBetweenRepetitions = s.TimestepsBetweenRepetitions
	ev.IndPropertyRestrictions = s.IndPropertyRestrictions
	ev.TargetAgeMin = s.TargetAgeMin
	ev.TargetAgeMax = s.TargetAgeMax
	ev.TargetGender = s.TargetGender
	ev.IndividualInterventions = []types.Intervention{Bednet(o)}
	return common.AddCampaignEvent(c, ev)
}
