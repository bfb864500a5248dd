// Package webhook is the HTTP gateway to the upstream route-planning
// workflow endpoints.
package webhook

// File: internal/webhook/client.go
// Purpose: POST JSON to the four fixed workflow endpoints with a bounded
// per-call timeout and tolerant response decoding.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"rpo-console-api/internal/config"
	"rpo-console-api/internal/models"
)

// Client calls the upstream workflow webhooks. Each call carries its own
// timeout derived from the caller's context, so aborting one in-flight call
// never affects its siblings.
type Client struct {
	httpClient *http.Client
	cfg        *config.Config
}

// NewClient returns a Client bound to the configured endpoints.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

// FetchScenario requests the metrics payload for one scenario. The endpoint
// answers with either a bare object or a single-element list; both flatten
// to one item here. An explicit success:false is surfaced as an error
// carrying the upstream message.
func (c *Client) FetchScenario(ctx context.Context, requestID string) (*models.ScenarioResponse, error) {
	raw, err := c.postJSON(ctx, c.cfg.ScenarioMetricsURL(), map[string]string{"request_id": requestID})
	if err != nil {
		return nil, err
	}

	item, err := decodeScenarioItem(raw)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("scenario not found")
	}
	if item.Success != nil && !*item.Success {
		if item.Message != "" {
			return nil, fmt.Errorf("%s", item.Message)
		}
		return nil, fmt.Errorf("scenario not found")
	}
	return item, nil
}

// FetchMapping retrieves the stored header-to-field association for a
// scenario.
func (c *Client) FetchMapping(ctx context.Context, scenarioName string) (*models.MappingResponse, error) {
	raw, err := c.postJSON(ctx, c.cfg.GetMappingURL(), map[string]string{"scenario_name": scenarioName})
	if err != nil {
		return nil, err
	}
	var resp models.MappingResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("mapping response is not valid JSON: %w", err)
	}
	if resp.Success != nil && !*resp.Success {
		return nil, fmt.Errorf("mapping lookup failed for %s", scenarioName)
	}
	return &resp, nil
}

// FetchHeaders retrieves the raw file headers discovered for a scenario.
// The upstream workflow expects the request key spelled "sceanrio_name"; the
// typo is load-bearing and stays until the workflow itself is fixed.
func (c *Client) FetchHeaders(ctx context.Context, scenarioName string) (*models.HeaderFileGroup, error) {
	raw, err := c.postJSON(ctx, c.cfg.GetHeadersURL(), map[string]string{"sceanrio_name": scenarioName})
	if err != nil {
		return nil, err
	}
	var groups []models.HeaderFileGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("headers response is not valid JSON: %w", err)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("headers response is empty")
	}
	return &groups[0], nil
}

// SaveMapping publishes the full association for both entity sets in one
// request.
func (c *Client) SaveMapping(ctx context.Context, req models.SaveMappingRequest) error {
	_, err := c.postJSON(ctx, c.cfg.SaveMappingURL(), req)
	return err
}

// postJSON issues one POST with a JSON body, bounded by the configured fetch
// timeout. The body is read in full before the status check so a failure
// always carries whatever the upstream sent.
func (c *Client) postJSON(ctx context.Context, url string, body any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.FetchTimeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return raw, nil
}

func decodeScenarioItem(raw []byte) (*models.ScenarioResponse, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []models.ScenarioResponse
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("response is not valid JSON: %w", err)
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}
	var item models.ScenarioResponse
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	return &item, nil
}
