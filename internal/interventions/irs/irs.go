// Package irs builds the indoor residual spraying housing modification, an
// individual-targeted intervention with independent killing and repelling
// effects against indoor-feeding vectors.
package irs

import (
	"vectorgen/internal/campaign"
	"vectorgen/internal/domain/types"
	"vectorgen/internal/interventions/common"
	"vectorgen/internal/waning"
)

// InterventionName is the default Intervention_Name.
const InterventionName = "IRSHousingModification"

// Options configures the housing modification and its two waning effects.
type Options struct {
	Insecticide string

	KillingInitial           float64
	KillingBoxDuration       float64
	KillingDecayTimeConstant float64

	RepellingInitial           float64
	RepellingBoxDuration       float64
	RepellingDecayTimeConstant float64

	InterventionName        string
	CostToConsumer          float64
	DisqualifyingProperties []string
	DontAllowDuplicates     bool
	NewPropertyValue        string
}

// DefaultOptions returns full killing and repelling effects that never
// decay.
func DefaultOptions() Options {
	return Options{
		KillingInitial:       1.0,
		KillingBoxDuration:   -1,
		RepellingInitial:     1.0,
		RepellingBoxDuration: -1,
		InterventionName:     InterventionName,
	}
}

// ScheduleOptions configures distribution of the housing modification.
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

// HousingModification builds the individual intervention.
func HousingModification(o Options) *types.IRSHousingModification {
	iv := &types.IRSHousingModification{
		Class:                   "IRSHousingModification",
		InterventionName:        o.InterventionName,
		InsecticideName:         o.Insecticide,
		CostToConsumer:          o.CostToConsumer,
		DisqualifyingProperties: o.DisqualifyingProperties,
		NewPropertyValue:        o.NewPropertyValue,
		KillingConfig:           waning.FromParams(o.KillingInitial, o.KillingBoxDuration, o.KillingDecayTimeConstant),
		RepellingConfig:         waning.FromParams(o.RepellingInitial, o.RepellingBoxDuration, o.RepellingDecayTimeConstant),
	}
	if o.InterventionName == "" {
		iv.InterventionName = InterventionName
	}
	if o.DontAllowDuplicates {
		iv.DontAllowDuplicates = 1
	}
	return iv
}

// AddScheduledIRSHousingModification builds the housing modification and
// appends a scheduled campaign event distributing it to individuals.
func AddScheduledIRSHousingModification(c *campaign.Campaign, s ScheduleOptions, o Options) error {
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
	ev.IndividualInterventions = []types.Intervention{HousingModification(o)}
	return common.AddCampaignEvent(c, ev)
}
