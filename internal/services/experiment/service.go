package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vectorgen/internal/campaign"
	"vectorgen/internal/demographics"
	"vectorgen/internal/domain"
	"vectorgen/internal/reporters"
	"vectorgen/internal/simconfig"
	"vectorgen/internal/sweep"
)

// CampaignBuilder fills an empty campaign for one sweep point.
type CampaignBuilder func(c *campaign.Campaign, p sweep.Point) error

// ConfigBuilder produces the simulator config for one sweep point.
type ConfigBuilder func(p sweep.Point) (*simconfig.Config, error)

// Builders collects the per-simulation input generators. Campaign and
// Config are required; Demographics and Reports are shared across all
// simulations and optional.
type Builders struct {
	Campaign     CampaignBuilder
	Config       ConfigBuilder
	Demographics *demographics.Demographics
	Reports      *reporters.Builtin
}

// Service turns a sweep into an experiment: one simulation per point, each
// carrying its generated input assets, persisted in the experiment store
// and handed to a platform.
type Service struct {
	experimentStore domain.ExperimentStore
	platform        domain.Platform
	logger          *zap.Logger
}

// New constructs the experiment service.
func New(experimentStore domain.ExperimentStore, platform domain.Platform, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{experimentStore: experimentStore, platform: platform, logger: logger}
}

// Build generates the experiment for the sweep points and creates it on
// the platform.
//
// Steps:
//  1. Expand each point into a simulation: run the campaign and config
//     builders, attach shared demographics and reports, tag with the point.
//  2. Persist the experiment manifest (and the experiment_id marker).
//  3. Create the experiment on the platform, which writes or uploads the
//     assets.
func (s *Service) Build(ctx context.Context, name string, points []sweep.Point, b Builders) (*domain.Experiment, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("sweep produced no points")
	}
	if b.Campaign == nil || b.Config == nil {
		return nil, fmt.Errorf("campaign and config builders are required")
	}

	exp := &domain.Experiment{
		ID:         domain.ExperimentID(shortID()),
		Name:       name,
		CreatedUTC: time.Now().Unix(),
	}

	var demogBytes, reportBytes []byte
	var err error
	if b.Demographics != nil {
		if demogBytes, err = b.Demographics.Bytes(); err != nil {
			return nil, err
		}
	}
	if b.Reports != nil && b.Reports.Len() > 0 {
		if reportBytes, err = b.Reports.Bytes(); err != nil {
			return nil, err
		}
	}

	for i, p := range points {
		camp := campaign.New(fmt.Sprintf("%s sim %d", name, i))
		if err := b.Campaign(camp, p); err != nil {
			return nil, fmt.Errorf("campaign for point %v: %w", p, err)
		}
		campBytes, err := camp.Bytes()
		if err != nil {
			return nil, err
		}

		cfg, err := b.Config(p)
		if err != nil {
			return nil, fmt.Errorf("config for point %v: %w", p, err)
		}
		cfgBytes, err := cfg.Bytes()
		if err != nil {
			return nil, err
		}

		assets := map[string][]byte{
			"campaign.json": campBytes,
			"config.json":   cfgBytes,
		}
		if demogBytes != nil {
			assets["demographics.json"] = demogBytes
		}
		if reportBytes != nil {
			assets["custom_reports.json"] = reportBytes
		}

		exp.Simulations = append(exp.Simulations, domain.Simulation{
			ID:     domain.SimulationID(shortID()),
			Tags:   p.Tags(),
			Assets: assets,
		})
	}

	if err := s.experimentStore.SaveExperiment(exp); err != nil {
		return nil, err
	}
	if err := s.platform.CreateExperiment(ctx, exp); err != nil {
		return nil, err
	}
	if err := s.experimentStore.SaveExperiment(exp); err != nil {
		return nil, err
	}
	s.logger.Info("experiment created",
		zap.String("experiment", string(exp.ID)),
		zap.String("name", name),
		zap.Int("simulations", len(exp.Simulations)))
	return exp, nil
}

// Run executes the experiment on the platform and persists the final
// statuses.
func (s *Service) Run(ctx context.Context, exp *domain.Experiment) error {
	runErr := s.platform.RunExperiment(ctx, exp)
	if err := s.experimentStore.SaveExperiment(exp); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Load retrieves an experiment manifest; an empty id loads the most
// recently saved experiment.
func (s *Service) Load(id domain.ExperimentID) (*domain.Experiment, error) {
	if id == "" {
		last, ok, err := s.experimentStore.LastExperimentID()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("no experiment recorded yet")
		}
		id = last
	}
	exp, ok, err := s.experimentStore.LoadExperiment(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("experiment %s not found", id)
	}
	return exp, nil
}

func shortID() string { return uuid.New().String()[:8] }
