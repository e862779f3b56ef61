package types

// Target_Demographic values used by coordinators and triggered distributors.
const (
	TargetEveryone           = "Everyone"
	TargetExplicitAgesGender = "ExplicitAgeRangesAndGender"
)

// StandardEventCoordinator distributes an intervention to the targeted
// demographic within the selected nodes, optionally repeating on a fixed
// timestep interval. Repetitions of -1 repeat forever.
type StandardEventCoordinator struct {
	Class                          string          `json:"class"`
	NumberRepetitions              int             `json:"Number_Repetitions"`
	TimestepsBetweenRepetitions    int             `json:"Timesteps_Between_Repetitions"`
	DemographicCoverage            float64         `json:"Demographic_Coverage"`
	TargetNumIndividuals           int             `json:"Target_Num_Individuals,omitempty"`
	IndividualSelectionType        string          `json:"Individual_Selection_Type,omitempty"`
	TargetDemographic              string          `json:"Target_Demographic"`
	TargetAgeMin                   float64         `json:"Target_Age_Min"`
	TargetAgeMax                   float64         `json:"Target_Age_Max"`
	TargetGender                   string          `json:"Target_Gender"`
	TargetResidentsOnly            int             `json:"Target_Residents_Only"`
	PropertyRestrictions           []string        `json:"Property_Restrictions,omitempty"`
	PropertyRestrictionsWithinNode []PropertyPairs `json:"Property_Restrictions_Within_Node,omitempty"`
	NodePropertyRestrictions       []PropertyPairs `json:"Node_Property_Restrictions,omitempty"`
	InterventionConfig             Intervention    `json:"Intervention_Config"`
}

// NewStandardEventCoordinator returns a coordinator carrying the schema
// defaults: one distribution, full coverage, everyone targeted.
func NewStandardEventCoordinator() *StandardEventCoordinator {
	return &StandardEventCoordinator{
		Class:                       "StandardEventCoordinator",
		NumberRepetitions:           1,
		TimestepsBetweenRepetitions: 365,
		DemographicCoverage:         1.0,
		TargetDemographic:           TargetEveryone,
		TargetAgeMax:                125,
		TargetGender:                GenderAll,
	}
}
