// Package services contains the orchestration logic for the console domain.
package services

// File: internal/services/analysis_service.go
// Purpose: Concurrent scenario fetch with fallback-on-failure, normalization
// into view-ready reports, and comparison across the resolved set.

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"rpo-console-api/internal/db"
	"rpo-console-api/internal/eventlog"
	"rpo-console-api/internal/metrics"
	"rpo-console-api/internal/models"
	"rpo-console-api/internal/mq"
)

// Analysis modes accepted by Analyze.
const (
	ModeSingle  = "single"
	ModeCompare = "compare"
)

// AnalysisService fetches, degrades, and normalizes scenario metrics. The
// audit store and event publisher are optional; nil disables them.
type AnalysisService struct {
	source    ScenarioSource
	log       *eventlog.Log
	store     *db.Store
	publisher *mq.Publisher
}

// NewAnalysisService constructs an AnalysisService with dependencies.
func NewAnalysisService(source ScenarioSource, log *eventlog.Log, store *db.Store, publisher *mq.Publisher) *AnalysisService {
	return &AnalysisService{source: source, log: log, store: store, publisher: publisher}
}

// Analyze fetches every requested scenario concurrently and returns the
// resolved reports in request order, no matter which call finished first.
// Scenarios that resolved to no usable record are dropped; only a fully
// empty result is an error. In compare mode with at least two reports the
// per-metric best values are included.
func (s *AnalysisService) Analyze(ctx context.Context, scenarios []string, mode string) (*models.AnalyzeResponse, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("at least one scenario is required")
	}

	s.log.Reset()
	s.log.Record(eventlog.SeverityInfo, fmt.Sprintf("Starting analysis for: %s", strings.Join(scenarios, ", ")))

	// Fan out one fetch per scenario; the indexed slice preserves request
	// order across out-of-order completions.
	results := make([]*models.ScenarioReport, len(scenarios))
	var wg sync.WaitGroup
	for i, name := range scenarios {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = s.fetchOne(ctx, name)
		}(i, name)
	}
	wg.Wait()

	// Caller gone: discard results instead of applying them to stale state.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]models.ScenarioReport, 0, len(results))
	for _, r := range results {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	if len(reports) == 0 {
		return nil, fmt.Errorf("could not retrieve scenario data")
	}

	resp := &models.AnalyzeResponse{Results: reports, Events: s.log.Snapshot()}
	if mode == ModeCompare {
		resp.Best = metrics.Compare(reports)
	}

	s.publishCompleted(scenarios, reports)
	return resp, nil
}

// fetchOne resolves one scenario to a report. It never fails outward: every
// failure substitutes the canned fallback payload, flagged IsMock, and is
// recorded as a warning. A resolved payload with no summary yields nil,
// which Analyze filters out.
func (s *AnalysisService) fetchOne(ctx context.Context, scenarioName string) *models.ScenarioReport {
	s.log.Record(eventlog.SeverityInfo, fmt.Sprintf("Fetching: %s", scenarioName))

	isMock := false
	item, err := s.source.FetchScenario(ctx, scenarioName)
	if err != nil {
		s.log.Record(eventlog.SeverityWarning, fmt.Sprintf("%s: %v. Using fallback.", scenarioName, err))
		s.recordDegradation(ctx, scenarioName, err)
		item = fallbackScenario(scenarioName)
		isMock = true
	} else {
		s.log.Record(eventlog.SeveritySuccess, fmt.Sprintf("Upstream OK for %s", scenarioName))
	}

	return metrics.Normalize(item, scenarioName, isMock)
}

func (s *AnalysisService) recordDegradation(ctx context.Context, scenarioName string, cause error) {
	if s.store != nil {
		if err := s.store.RecordDegradation(ctx, scenarioName, cause.Error()); err != nil {
			s.log.Record(eventlog.SeverityError, fmt.Sprintf("audit write failed: %v", err))
		}
	}
	if s.publisher != nil {
		event := map[string]any{
			"scenario": scenarioName,
			"reason":   cause.Error(),
		}
		if err := s.publisher.PublishEvent("scenario.degraded", event); err != nil {
			s.log.Record(eventlog.SeverityError, fmt.Sprintf("publish scenario.degraded: %v", err))
		}
	}
}

func (s *AnalysisService) publishCompleted(scenarios []string, reports []models.ScenarioReport) {
	if s.publisher == nil {
		return
	}
	fallbacks := 0
	for _, r := range reports {
		if r.IsMock {
			fallbacks++
		}
	}
	event := map[string]any{
		"scenarios": scenarios,
		"reports":   len(reports),
		"fallbacks": fallbacks,
	}
	if err := s.publisher.PublishEvent("analysis.completed", event); err != nil {
		s.log.Record(eventlog.SeverityError, fmt.Sprintf("publish analysis.completed: %v", err))
	}
}
