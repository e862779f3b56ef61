package types

// NodeID identifies a simulation node in the demographics input.
type NodeID uint32

// ExperimentID identifies an experiment created on a platform.
type ExperimentID string

// String returns the string form of the experiment identifier.
func (id ExperimentID) String() string { return string(id) }

// SimulationID identifies a single simulation within an experiment.
type SimulationID string

// String returns the string form of the simulation identifier.
func (id SimulationID) String() string { return string(id) }

// Tags are the parameter values a simulation was generated with, recorded in
// the experiment manifest so result analysis can group simulations.
type Tags map[string]any

// PropertyPairs is one AND-group of property key:value requirements. A list
// of PropertyPairs is combined with OR.
type PropertyPairs map[string]string

// Gender values accepted by demographic targeting.
const (
	GenderAll    = "All"
	GenderMale   = "Male"
	GenderFemale = "Female"
)
