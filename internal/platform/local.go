package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vectorgen/internal/domain"
	"vectorgen/internal/store"
)

// Local materializes experiments under Root and runs them with the
// simulator binary at SimulatorPath, Jobs at a time. An empty SimulatorPath
// makes RunExperiment a dry run that only marks simulations as created.
type Local struct {
	Root          string
	SimulatorPath string
	Jobs          int
	Logger        *zap.Logger
}

// NewLocal returns a Local platform rooted at root.
func NewLocal(root, simulatorPath string, jobs int, logger *zap.Logger) *Local {
	if jobs <= 0 {
		jobs = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Local{Root: root, SimulatorPath: simulatorPath, Jobs: jobs, Logger: logger}
}

// CreateExperiment writes every simulation's assets into
// Root/exp-<id>/sim-<id>/ and a manifest into the experiment directory.
func (p *Local) CreateExperiment(ctx context.Context, exp *domain.Experiment) error {
	expDir := filepath.Join(p.Root, "exp-"+string(exp.ID))
	if err := os.MkdirAll(expDir, 0o755); err != nil {
		return err
	}

	for i := range exp.Simulations {
		if err := ctx.Err(); err != nil {
			return err
		}
		sim := &exp.Simulations[i]
		simDir := filepath.Join(expDir, "sim-"+string(sim.ID))
		if err := os.MkdirAll(simDir, 0o755); err != nil {
			return err
		}
		for name, content := range sim.Assets {
			if err := store.WriteFile(filepath.Join(simDir, name), content, 0o644); err != nil {
				return fmt.Errorf("write %s for sim %s: %w", name, sim.ID, err)
			}
		}
		if err := store.WriteJSON(filepath.Join(simDir, "tags.json"), sim.Tags, 0o644); err != nil {
			return err
		}
		sim.Dir = simDir
		sim.Status = domain.SimCreated
		p.Logger.Debug("materialized simulation",
			zap.String("experiment", string(exp.ID)),
			zap.String("simulation", string(sim.ID)),
			zap.String("dir", simDir))
	}

	if err := store.WriteJSON(filepath.Join(expDir, "experiment.json"), exp, 0o644); err != nil {
		return err
	}
	p.Logger.Info("experiment materialized",
		zap.String("experiment", string(exp.ID)),
		zap.Int("simulations", len(exp.Simulations)))
	return nil
}

// RunExperiment executes the simulator once per simulation, in the
// simulation's directory, with bounded parallelism. The first failure
// cancels the remaining runs.
func (p *Local) RunExperiment(ctx context.Context, exp *domain.Experiment) error {
	if p.SimulatorPath == "" {
		p.Logger.Info("no simulator configured, skipping execution",
			zap.String("experiment", string(exp.ID)))
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.Jobs)

	for i := range exp.Simulations {
		sim := &exp.Simulations[i]
		eg.Go(func() error {
			sim.Status = domain.SimRunning
			if err := p.runOne(egCtx, sim); err != nil {
				sim.Status = domain.SimFailed
				return fmt.Errorf("sim %s: %w", sim.ID, err)
			}
			sim.Status = domain.SimSucceeded
			return nil
		})
	}
	err := eg.Wait()

	// Persist final statuses next to the inputs regardless of outcome.
	expDir := filepath.Join(p.Root, "exp-"+string(exp.ID))
	if werr := store.WriteJSON(filepath.Join(expDir, "experiment.json"), exp, 0o644); werr != nil && err == nil {
		err = werr
	}
	return err
}

func (p *Local) runOne(ctx context.Context, sim *domain.Simulation) error {
	if sim.Dir == "" {
		return fmt.Errorf("simulation not materialized")
	}
	cmd := exec.CommandContext(ctx, p.SimulatorPath,
		"--config", "config.json",
		"--input-path", ".",
		"--output-path", "output")
	cmd.Dir = sim.Dir

	logPath := filepath.Join(sim.Dir, "stdout.txt")
	logFile, err := os.Create(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	p.Logger.Info("running simulation", zap.String("simulation", string(sim.ID)))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("simulator: %w", err)
	}
	return nil
}

// Compile-time assertion that Local implements domain.Platform.
var _ domain.Platform = (*Local)(nil)
