package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"vectorgen/internal/domain"
)

const (
	experimentsDir = "experiments"
	lastIDFile     = "experiment_id"
)

// ExperimentFileStore keeps one manifest file per experiment under
// dir/experiments, and records the most recently saved id in an
// experiment_id file at the root of dir.
type ExperimentFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewExperimentFileStore returns a store rooted at dir.
func NewExperimentFileStore(dir string) *ExperimentFileStore {
	return &ExperimentFileStore{dir: dir}
}

func (s *ExperimentFileStore) SaveExperiment(exp *domain.Experiment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exp.ID == "" {
		return fmt.Errorf("experiment id is empty")
	}
	if err := os.MkdirAll(filepath.Join(s.dir, experimentsDir), 0o755); err != nil {
		return err
	}
	path := filepath.Join(s.dir, experimentsDir, string(exp.ID)+".json")
	if err := WriteJSON(path, exp, 0o644); err != nil {
		return err
	}
	return WriteFile(filepath.Join(s.dir, lastIDFile), []byte(exp.ID+"\n"), 0o644)
}

func (s *ExperimentFileStore) LoadExperiment(id domain.ExperimentID) (*domain.Experiment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exp domain.Experiment
	path := filepath.Join(s.dir, experimentsDir, string(id)+".json")
	if err := ReadJSON(path, &exp); err != nil {
		return nil, false, err
	}
	if exp.ID == "" {
		return nil, false, nil
	}
	return &exp, true, nil
}

func (s *ExperimentFileStore) LastExperimentID() (domain.ExperimentID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, lastIDFile))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	id := strings.TrimSpace(string(b))
	if id == "" {
		return "", false, nil
	}
	return domain.ExperimentID(id), true, nil
}

// Compile-time assertion that the store implements domain.ExperimentStore.
var _ domain.ExperimentStore = (*ExperimentFileStore)(nil)
