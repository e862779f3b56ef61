package types

// SimulationStatus tracks a simulation through materialization and
// execution.
type SimulationStatus string

const (
	SimCreated   SimulationStatus = "created"
	SimRunning   SimulationStatus = "running"
	SimSucceeded SimulationStatus = "succeeded"
	SimFailed    SimulationStatus = "failed"
)

// Simulation is one point of a sweep: the generated input files plus the
// tags identifying the parameter values it was built from.
type Simulation struct {
	ID     SimulationID     `json:"id"`
	Tags   Tags             `json:"tags"`
	Dir    string           `json:"dir,omitempty"`
	Status SimulationStatus `json:"status,omitempty"`

	// Assets maps input file names (campaign.json, config.json, ...) to
	// their content. Not part of the manifest; large and reproducible.
	Assets map[string][]byte `json:"-"`
}

// Experiment groups the simulations generated from one sweep.
type Experiment struct {
	ID          ExperimentID `json:"id"`
	Name        string       `json:"name"`
	CreatedUTC  int64        `json:"created_utc"`
	Simulations []Simulation `json:"simulations"`
}

// Succeeded reports whether every simulation finished successfully.
func (e *Experiment) Succeeded() bool {
	for _, sim := range e.Simulations {
		if sim.Status != SimSucceeded {
			return false
		}
	}
	return len(e.Simulations) > 0
}
