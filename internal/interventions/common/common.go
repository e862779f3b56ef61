// Package common holds the intervention builders shared by every disease
// campaign: the diagnostic constructors and the two campaign-event shapes
// (scheduled and trigger-listening) that all scheduling wrappers delegate
// to.
package common

import (
	"fmt"

	"vectorgen/internal/campaign"
	"vectorgen/internal/domain/types"
)

// DiagnosticOptions configures MalariaDiagnostic. The zero
// MeasurementSensitivity and DetectionThreshold match the schema defaults.
type DiagnosticOptions struct {
	// DiagnosticType is one of the Diagnostic* constants. The sentinel
	// TRUE_INFECTION_STATUS selects a StandardDiagnostic instead, which has
	// no measurement model.
	DiagnosticType         string
	MeasurementSensitivity float64
	DetectionThreshold     float64
}

// MalariaDiagnostic builds the individual-targeted diagnostic intervention.
// TRUE_INFECTION_STATUS rejects a nonzero sensitivity or threshold: those
// parameters have no meaning for a true-status readout.
func MalariaDiagnostic(o DiagnosticOptions) (types.Intervention, error) {
	if o.DiagnosticType == "" {
		o.DiagnosticType = types.DiagnosticBloodSmearParasites
	}
	if o.DiagnosticType == types.DiagnosticTrueInfectionStatus {
		if o.MeasurementSensitivity != 0 || o.DetectionThreshold != 0 {
			return nil, fmt.Errorf("diagnostic TRUE_INFECTION_STATUS does not use " +
				"measurement sensitivity or detection threshold; leave both unset")
		}
		return types.NewStandardDiagnostic(), nil
	}
	diag := types.NewMalariaDiagnostic()
	diag.DiagnosticType = o.DiagnosticType
	diag.MeasurementSensitivity = o.MeasurementSensitivity
	diag.DetectionThreshold = o.DetectionThreshold
	return diag, nil
}

// CampaignEventOptions configures a scheduled campaign event. Exactly one
// of IndividualInterventions or NodeInterventions must be set.
type CampaignEventOptions struct {
	StartDay            float64
	DemographicCoverage float64

	// TargetNumIndividuals selects an exact number of people out of the
	// targeted group; when set, DemographicCoverage is ignored.
	TargetNumIndividuals int

	// NodeIDs restricts distribution to these nodes; empty means all nodes.
	NodeIDs []types.NodeID

	// Repetitions of -1 repeats forever.
	Repetitions                 int
	TimestepsBetweenRepetitions int

	IndPropertyRestrictions  []types.PropertyPairs
	NodePropertyRestrictions []types.PropertyPairs

	TargetAgeMin        float64
	TargetAgeMax        float64
	TargetGender        string
	TargetResidentsOnly bool

	IndividualInterventions []types.Intervention
	NodeInterventions       []types.Intervention
}

// DefaultCampaignEventOptions returns the defaults: day 1, full coverage,
// one distribution, ages 0-125, all genders.
func DefaultCampaignEventOptions() CampaignEventOptions {
	return CampaignEventOptions{
		StartDay:                    1,
		DemographicCoverage:         1.0,
		Repetitions:                 1,
		TimestepsBetweenRepetitions: 365,
		TargetAgeMax:                125,
		TargetGender:                types.GenderAll,
	}
}

// AddCampaignEvent appends a scheduled campaign event distributing the
// given intervention(s) to c.
func AddCampaignEvent(c *campaign.Campaign, o CampaignEventOptions) error {
	hasInd := len(o.IndividualInterventions) > 0
	hasNode := len(o.NodeInterventions) > 0
	if hasInd && hasNode {
		return fmt.Errorf("campaign event cannot carry both individual and node interventions")
	}
	if !hasInd && !hasNode {
		return fmt.Errorf("campaign event needs an individual or a node intervention")
	}

	coord := types.NewStandardEventCoordinator()
	coord.NumberRepetitions = o.Repetitions
	coord.TimestepsBetweenRepetitions = o.TimestepsBetweenRepetitions

	if hasInd {
		coord.DemographicCoverage = o.DemographicCoverage
		if o.TargetNumIndividuals > 0 {
			coord.TargetNumIndividuals = o.TargetNumIndividuals
			coord.IndividualSelectionType = "TARGET_NUM_INDIVIDUALS"
		}
		applyIndividualTargeting(coord, o.TargetAgeMin, o.TargetAgeMax, o.TargetGender, o.TargetResidentsOnly)
		coord.PropertyRestrictions, coord.PropertyRestrictionsWithinNode =
			convertPropertyRestrictions(o.IndPropertyRestrictions)
		if len(o.IndividualInterventions) == 1 {
			coord.InterventionConfig = o.IndividualInterventions[0]
		} else {
			coord.InterventionConfig = types.NewMultiInterventionDistributor(o.IndividualInterventions)
		}
	} else {
		coord.NodePropertyRestrictions = o.NodePropertyRestrictions
		if len(o.NodeInterventions) == 1 {
			coord.InterventionConfig = o.NodeInterventions[0]
		} else {
			coord.InterventionConfig = types.NewMultiNodeInterventionDistributor(o.NodeInterventions)
		}
	}

	ev := types.NewCampaignEvent()
	ev.EventName = "ScheduledCampaignEvent"
	ev.StartDay = o.StartDay
	ev.NodesetConfig = types.NodeSetFromIDs(o.NodeIDs)
	ev.EventCoordinatorConfig = coord
	c.Add(ev)
	return nil
}

// TriggeredEventOptions configures a campaign event that responds to
// broadcast triggers, optionally after a constant delay.
type TriggeredEventOptions struct {
	StartDay float64

	// Triggers are the broadcast events that cause distribution. Required.
	Triggers []string

	// ListeningDuration is how many timesteps the listener stays active;
	// -1 listens forever.
	ListeningDuration float64

	// DelayPeriodConstant delays distribution by this many days after a
	// trigger fires. Zero distributes immediately.
	DelayPeriodConstant float64

	DemographicCoverage float64
	NodeIDs             []types.NodeID

	Repetitions                 int
	TimestepsBetweenRepetitions int

	IndPropertyRestrictions []types.PropertyPairs

	// DisqualifyingProperties abort the intervention for individuals whose
	// properties match; used to keep one person out of two care routes at
	// once.
	DisqualifyingProperties []string

	TargetAgeMin        float64
	TargetAgeMax        float64
	TargetGender        string
	TargetResidentsOnly bool

	// BlackoutEventTrigger is broadcast when the blackout period suppresses
	// a distribution.
	BlackoutEventTrigger      string
	BlackoutPeriod            float64
	BlackoutOnFirstOccurrence bool

	Interventions []types.Intervention
}

// DefaultTriggeredEventOptions returns the defaults: day 1, indefinite
// listening, no delay, full coverage, ages 0-125, all genders.
func DefaultTriggeredEventOptions() TriggeredEventOptions {
	return TriggeredEventOptions{
		StartDay:                    1,
		ListeningDuration:           -1,
		DemographicCoverage:         1.0,
		Repetitions:                 1,
		TimestepsBetweenRepetitions: 365,
		TargetAgeMax:                125,
		TargetGender:                types.GenderAll,
	}
}

// AddTriggeredCampaignDelayEvent appends a trigger-listening campaign event
// to c. The listener distributes the individual intervention(s) when one of
// the triggers fires, after the optional constant delay.
func AddTriggeredCampaignDelayEvent(c *campaign.Campaign, o TriggeredEventOptions) error {
	if len(o.Triggers) == 0 {
		return fmt.Errorf("triggered campaign event needs a trigger condition list")
	}
	if len(o.Interventions) == 0 {
		return fmt.Errorf("triggered campaign event needs at least one individual intervention")
	}

	listener := types.NewNodeLevelHealthTriggeredIV()
	listener.TriggerConditionList = append([]string(nil), o.Triggers...)
	listener.Duration = o.ListeningDuration
	listener.DemographicCoverage = o.DemographicCoverage
	applyTriggeredTargeting(listener, o.TargetAgeMin, o.TargetAgeMax, o.TargetGender, o.TargetResidentsOnly)
	listener.PropertyRestrictions, listener.PropertyRestrictionsWithinNode =
		convertPropertyRestrictions(o.IndPropertyRestrictions)
	listener.DisqualifyingProperties = o.DisqualifyingProperties
	listener.BlackoutEventTrigger = o.BlackoutEventTrigger
	listener.BlackoutPeriod = o.BlackoutPeriod
	listener.BlackoutOnFirstOccurrence = boolToFlag(o.BlackoutOnFirstOccurrence)

	switch {
	case o.DelayPeriodConstant > 0:
		listener.ActualIndividualInterventionConfig =
			types.NewDelayedIntervention(o.DelayPeriodConstant, o.Interventions)
	case len(o.Interventions) > 1:
		listener.ActualIndividualInterventionConfig =
			types.NewMultiInterventionDistributor(o.Interventions)
	default:
		listener.ActualIndividualInterventionConfig = o.Interventions[0]
	}

	coord := types.NewStandardEventCoordinator()
	coord.NumberRepetitions = o.Repetitions
	coord.TimestepsBetweenRepetitions = o.TimestepsBetweenRepetitions
	coord.InterventionConfig = listener

	ev := types.NewCampaignEvent()
	ev.EventName = "TriggeredEvent"
	ev.StartDay = o.StartDay
	ev.NodesetConfig = types.NodeSetFromIDs(o.NodeIDs)
	ev.EventCoordinatorConfig = coord
	c.Add(ev)
	return nil
}

func applyIndividualTargeting(coord *types.StandardEventCoordinator, ageMin, ageMax float64, gender string, residentsOnly bool) {
	if gender == "" {
		gender = types.GenderAll
	}
	coord.TargetAgeMin = ageMin
	coord.TargetAgeMax = ageMax
	coord.TargetGender = gender
	coord.TargetResidentsOnly = boolToFlag(residentsOnly)
	if ageMin > 0 || ageMax < 125 || gender != types.GenderAll {
		coord.TargetDemographic = types.TargetExplicitAgesGender
	}
}

func applyTriggeredTargeting(listener *types.NodeLevelHealthTriggeredIV, ageMin, ageMax float64, gender string, residentsOnly bool) {
	if gender == "" {
		gender = types.GenderAll
	}
	listener.TargetAgeMin = ageMin
	listener.TargetAgeMax = ageMax
	listener.TargetGender = gender
	listener.TargetResidentsOnly = boolToFlag(residentsOnly)
	if ageMin > 0 || ageMax < 125 || gender != types.GenderAll {
		listener.TargetDemographic = types.TargetExplicitAgesGender
	}
}

// convertPropertyRestrictions flattens single-requirement groups to the
// compact "Key:Value" string form; any group with two or more requirements
// forces the structured within-node form, which is the only one that can
// express AND.
func convertPropertyRestrictions(groups []types.PropertyPairs) ([]string, []types.PropertyPairs) {
	if len(groups) == 0 {
		return nil, nil
	}
	for _, g := range groups {
		if len(g) > 1 {
			return nil, groups
		}
	}
	flat := make([]string, 0, len(groups))
	for _, g := range groups {
		for k, v := range g {
			flat = append(flat, k+":"+v)
		}
	}
	return flat, nil
}

func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
