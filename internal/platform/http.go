package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"vectorgen/internal/domain"
)

// HTTP submits experiments to a remote orchestration service. All requests
// are JSON over HTTP; non-2xx statuses are returned as errors with the
// path and status text.
type HTTP struct {
	Base         string
	HTTP         *http.Client
	Logger       *zap.Logger
	PollInterval time.Duration
}

// NewHTTP returns a client for the service at base.
func NewHTTP(base string, client *http.Client, logger *zap.Logger) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTP{Base: base, HTTP: client, Logger: logger, PollInterval: 5 * time.Second}
}

// CreateExperiment registers the experiment manifest, then uploads each
// simulation's assets.
func (c *HTTP) CreateExperiment(ctx context.Context, exp *domain.Experiment) error {
	if err := c.post(ctx, "/experiments", exp, nil); err != nil {
		return err
	}
	for i := range exp.Simulations {
		sim := &exp.Simulations[i]
		for name, content := range sim.Assets {
			path := "/experiments/" + url.PathEscape(string(exp.ID)) +
				"/simulations/" + url.PathEscape(string(sim.ID)) +
				"/assets/" + url.PathEscape(name)
			if err := c.put(ctx, path, content); err != nil {
				return fmt.Errorf("upload %s for sim %s: %w", name, sim.ID, err)
			}
		}
		sim.Status = domain.SimCreated
	}
	c.Logger.Info("experiment submitted",
		zap.String("experiment", string(exp.ID)),
		zap.Int("simulations", len(exp.Simulations)))
	return nil
}

// RunExperiment starts the experiment remotely and polls its status until
// it finishes or ctx is done.
func (c *HTTP) RunExperiment(ctx context.Context, exp *domain.Experiment) error {
	runPath := "/experiments/" + url.PathEscape(string(exp.ID)) + "/run"
	if err := c.post(ctx, runPath, nil, nil); err != nil {
		return err
	}

	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		status, err := c.status(ctx, exp.ID)
		if err != nil {
			return err
		}
		for i := range exp.Simulations {
			sim := &exp.Simulations[i]
			if s, ok := status.Simulations[string(sim.ID)]; ok {
				sim.Status = domain.SimulationStatus(s)
			}
		}
		switch status.State {
		case "succeeded":
			return nil
		case "failed":
			return fmt.Errorf("experiment %s failed remotely", exp.ID)
		}
		c.Logger.Debug("experiment still running",
			zap.String("experiment", string(exp.ID)),
			zap.String("state", status.State))
	}
}

type experimentStatus struct {
	State       string            `json:"state"`
	Simulations map[string]string `json:"simulations"`
}

func (c *HTTP) status(ctx context.Context, id domain.ExperimentID) (experimentStatus, error) {
	var out experimentStatus
	path := "/experiments/" + url.PathEscape(string(id)) + "/status"
	if err := c.getJSON(ctx, path, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if in != nil {
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("platform post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTP) put(ctx context.Context, path string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.Base+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("platform put %s: %s", path, resp.Status)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("platform get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Compile-time assertion that HTTP implements domain.Platform.
var _ domain.Platform = (*HTTP)(nil)
