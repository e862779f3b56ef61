package interfaces

import domaintypes "vectorgen/internal/domain/types"

// ExperimentStore persists experiment manifests.
type ExperimentStore interface {
	SaveExperiment(exp *domaintypes.Experiment) error
	LoadExperiment(id domaintypes.ExperimentID) (*domaintypes.Experiment, bool, error)

	// LastExperimentID returns the id recorded by the most recent save.
	LastExperimentID() (domaintypes.ExperimentID, bool, error)
}
