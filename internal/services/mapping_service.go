package services

// File: internal/services/mapping_service.go
// Purpose: Load and save the scenario field-mapping configuration, with the
// documented all-or-nothing fallback policy on load.

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"rpo-console-api/internal/db"
	"rpo-console-api/internal/eventlog"
	"rpo-console-api/internal/mapping"
	"rpo-console-api/internal/models"
	"rpo-console-api/internal/mq"
)

// MappingService loads and saves scenario field-mapping configuration.
type MappingService struct {
	source    MappingSource
	log       *eventlog.Log
	store     *db.Store
	publisher *mq.Publisher

	// SimulatedSaveDelay is how long a simulated save pretends to work.
	SimulatedSaveDelay time.Duration
}

// NewMappingService constructs a MappingService with dependencies.
func NewMappingService(source MappingSource, log *eventlog.Log, store *db.Store, publisher *mq.Publisher) *MappingService {
	return &MappingService{
		source:             source,
		log:                log,
		store:              store,
		publisher:          publisher,
		SimulatedSaveDelay: 800 * time.Millisecond,
	}
}

// Load fetches the stored association and the discovered raw headers with
// two concurrent upstream calls. If either call fails, the whole load falls
// back to the canned configuration flagged Simulated; a half-real result is
// deliberately never produced, even when one call succeeded.
func (s *MappingService) Load(ctx context.Context, scenarioName string) (*models.MappingConfig, error) {
	if strings.TrimSpace(scenarioName) == "" {
		return nil, fmt.Errorf("scenario name is required")
	}

	var (
		wg          sync.WaitGroup
		mappingResp *models.MappingResponse
		headerGroup *models.HeaderFileGroup
		mappingErr  error
		headersErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		mappingResp, mappingErr = s.source.FetchMapping(ctx, scenarioName)
	}()
	go func() {
		defer wg.Done()
		headerGroup, headersErr = s.source.FetchHeaders(ctx, scenarioName)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if mappingErr != nil || headersErr != nil {
		cause := mappingErr
		if cause == nil {
			cause = headersErr
		}
		s.log.Record(eventlog.SeverityWarning, fmt.Sprintf("%s: %v. Using simulated configuration.", scenarioName, cause))
		return fallbackMappingConfig(scenarioName), nil
	}

	cfg := &models.MappingConfig{
		ScenarioName:       scenarioName,
		VehicleMapping:     mapping.ToInternal(mappingResp.VehicleMapping),
		ConsignmentMapping: mapping.ToInternal(mappingResp.ConsignmentMapping),
		VehicleHeaders:     headerGroup.Files.Vehicles.Headers,
		ConsignmentHeaders: headerGroup.Files.Consignments.Headers,
	}
	if cfg.VehicleHeaders == nil {
		cfg.VehicleHeaders = []string{}
	}
	if cfg.ConsignmentHeaders == nil {
		cfg.ConsignmentHeaders = []string{}
	}
	return cfg, nil
}

// Save converts both internal associations back to wire form and publishes
// the full configuration in one request; there is no incremental sync. In
// simulated mode nothing real can be saved: it waits briefly and reports
// simulated success so the dashboard flow stays intact.
func (s *MappingService) Save(ctx context.Context, req models.MappingSaveRequest) (*models.MappingSaveResponse, error) {
	if strings.TrimSpace(req.ScenarioName) == "" {
		return nil, fmt.Errorf("scenario name is required")
	}

	if req.Simulated {
		select {
		case <-time.After(s.SimulatedSaveDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		s.log.Record(eventlog.SeverityInfo, fmt.Sprintf("Simulated save for %s", req.ScenarioName))
		return &models.MappingSaveResponse{Status: "saved (simulated)", Simulated: true}, nil
	}

	payload := models.SaveMappingRequest{
		ScenarioName:       req.ScenarioName,
		VehicleMapping:     mapping.ToExternal(req.VehicleMapping),
		ConsignmentMapping: mapping.ToExternal(req.ConsignmentMapping),
	}
	if err := s.source.SaveMapping(ctx, payload); err != nil {
		s.log.Record(eventlog.SeverityError, fmt.Sprintf("save mapping for %s: %v", req.ScenarioName, err))
		return nil, fmt.Errorf("save mapping: %w", err)
	}

	s.log.Record(eventlog.SeveritySuccess, fmt.Sprintf("Mappings published for %s", req.ScenarioName))
	s.audit(ctx, payload)
	return &models.MappingSaveResponse{Status: "saved"}, nil
}

func (s *MappingService) audit(ctx context.Context, payload models.SaveMappingRequest) {
	if s.store != nil {
		if err := s.store.RecordMappingSnapshot(ctx, payload); err != nil {
			s.log.Record(eventlog.SeverityError, fmt.Sprintf("audit write failed: %v", err))
		}
	}
	if s.publisher != nil {
		event := map[string]any{
			"scenario":           payload.ScenarioName,
			"vehicle_fields":     len(payload.VehicleMapping),
			"consignment_fields": len(payload.ConsignmentMapping),
		}
		if err := s.publisher.PublishEvent("mapping.saved", event); err != nil {
			s.log.Record(eventlog.SeverityError, fmt.Sprintf("publish mapping.saved: %v", err))
		}
	}
}
