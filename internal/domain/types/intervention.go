package types

// Intervention is implemented by every campaign intervention config. The
// class discriminator is serialized as the "class" field the simulator
// dispatches on.
type Intervention interface {
	InterventionClass() string
}

// NodeLevelHealthTriggeredIV listens for broadcast events on a node and
// distributes an individual intervention to matching individuals when one
// fires. Duration of -1 listens forever.
type NodeLevelHealthTriggeredIV struct {
	Class                              string          `json:"class"`
	TriggerConditionList               []string        `json:"Trigger_Condition_List"`
	Duration                           float64         `json:"Duration"`
	DemographicCoverage                float64         `json:"Demographic_Coverage"`
	TargetDemographic                  string          `json:"Target_Demographic"`
	TargetAgeMin                       float64         `json:"Target_Age_Min"`
	TargetAgeMax                       float64         `json:"Target_Age_Max"`
	TargetGender                       string          `json:"Target_Gender"`
	TargetResidentsOnly                int             `json:"Target_Residents_Only"`
	PropertyRestrictions               []string        `json:"Property_Restrictions,omitempty"`
	PropertyRestrictionsWithinNode     []PropertyPairs `json:"Property_Restrictions_Within_Node,omitempty"`
	DisqualifyingProperties            []string        `json:"Disqualifying_Properties,omitempty"`
	BlackoutEventTrigger               string          `json:"Blackout_Event_Trigger,omitempty"`
	BlackoutPeriod                     float64         `json:"Blackout_Period"`
	BlackoutOnFirstOccurrence          int             `json:"Blackout_On_First_Occurrence"`
	ActualIndividualInterventionConfig Intervention    `json:"Actual_IndividualIntervention_Config"`
}

// InterventionClass implements Intervention.
func (*NodeLevelHealthTriggeredIV) InterventionClass() string {
	return "NodeLevelHealthTriggeredIV"
}

// NewNodeLevelHealthTriggeredIV returns a triggered distributor with schema
// defaults: indefinite listening, full coverage, everyone targeted.
func NewNodeLevelHealthTriggeredIV() *NodeLevelHealthTriggeredIV {
	return &NodeLevelHealthTriggeredIV{
		Class:               "NodeLevelHealthTriggeredIV",
		Duration:            -1,
		DemographicCoverage: 1.0,
		TargetDemographic:   TargetEveryone,
		TargetAgeMax:        125,
		TargetGender:        GenderAll,
	}
}

// DelayedIntervention holds its payload for a constant delay after being
// distributed, then applies the wrapped individual interventions.
type DelayedIntervention struct {
	Class                               string         `json:"class"`
	DelayPeriodDistribution             string         `json:"Delay_Period_Distribution"`
	DelayPeriodConstant                 float64        `json:"Delay_Period_Constant"`
	ActualIndividualInterventionConfigs []Intervention `json:"Actual_IndividualIntervention_Configs"`
}

// InterventionClass implements Intervention.
func (*DelayedIntervention) InterventionClass() string { return "DelayedIntervention" }

// NewDelayedIntervention wraps payload behind a constant delay of delayDays.
func NewDelayedIntervention(delayDays float64, payload []Intervention) *DelayedIntervention {
	return &DelayedIntervention{
		Class:                               "DelayedIntervention",
		DelayPeriodDistribution:             "CONSTANT_DISTRIBUTION",
		DelayPeriodConstant:                 delayDays,
		ActualIndividualInterventionConfigs: payload,
	}
}

// MultiInterventionDistributor distributes several individual interventions
// as one unit.
type MultiInterventionDistributor struct {
	Class            string         `json:"class"`
	InterventionList []Intervention `json:"Intervention_List"`
}

// InterventionClass implements Intervention.
func (*MultiInterventionDistributor) InterventionClass() string {
	return "MultiInterventionDistributor"
}

// NewMultiInterventionDistributor bundles list into a single distributable.
func NewMultiInterventionDistributor(list []Intervention) *MultiInterventionDistributor {
	return &MultiInterventionDistributor{Class: "MultiInterventionDistributor", InterventionList: list}
}

// MultiNodeInterventionDistributor is the node-targeted counterpart of
// MultiInterventionDistributor.
type MultiNodeInterventionDistributor struct {
	Class                string         `json:"class"`
	NodeInterventionList []Intervention `json:"Node_Intervention_List"`
}

// InterventionClass implements Intervention.
func (*MultiNodeInterventionDistributor) InterventionClass() string {
	return "MultiNodeInterventionDistributor"
}

// NewMultiNodeInterventionDistributor bundles node interventions into a
// single distributable.
func NewMultiNodeInterventionDistributor(list []Intervention) *MultiNodeInterventionDistributor {
	return &MultiNodeInterventionDistributor{
		Class:                "MultiNodeInterventionDistributor",
		NodeInterventionList: list,
	}
}

// BroadcastEvent raises a broadcast trigger when distributed to an
// individual, for chaining triggered campaign events.
type BroadcastEvent struct {
	Class            string `json:"class"`
	BroadcastEventID string `json:"Broadcast_Event"`
}

// InterventionClass implements Intervention.
func (*BroadcastEvent) InterventionClass() string { return "BroadcastEvent" }

// NewBroadcastEvent returns a BroadcastEvent raising trigger.
func NewBroadcastEvent(trigger string) *BroadcastEvent {
	return &BroadcastEvent{Class: "BroadcastEvent", BroadcastEventID: trigger}
}
