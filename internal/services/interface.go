package services

// File: internal/services/interface.go
// Purpose: Upstream data-source seams. The services depend on these
// interfaces, not on the concrete webhook client, so tests can force failure
// deterministically.

import (
	"context"

	"rpo-console-api/internal/models"
)

// ScenarioSource fetches raw scenario metrics payloads.
//
//go:generate mockgen -destination=mocks/mock_sources.go -source=interface.go -package=mock_services
type ScenarioSource interface {
	FetchScenario(ctx context.Context, requestID string) (*models.ScenarioResponse, error)
}

// MappingSource fetches and persists field-mapping configuration.
type MappingSource interface {
	FetchMapping(ctx context.Context, scenarioName string) (*models.MappingResponse, error)
	FetchHeaders(ctx context.Context, scenarioName string) (*models.HeaderFileGroup, error)
	SaveMapping(ctx context.Context, req models.SaveMappingRequest) error
}
