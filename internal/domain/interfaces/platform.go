package interfaces

import (
	"context"

	domaintypes "vectorgen/internal/domain/types"
)

// Platform materializes and executes experiments. Implementations cover a
// local working directory and a remote orchestration service.
type Platform interface {
	// CreateExperiment registers the experiment and uploads or writes the
	// per-simulation input assets.
	CreateExperiment(ctx context.Context, exp *domaintypes.Experiment) error

	// RunExperiment executes every simulation of a created experiment and
	// updates the per-simulation status in place.
	RunExperiment(ctx context.Context, exp *domaintypes.Experiment) error
}
