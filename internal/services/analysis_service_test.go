package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpo-console-api/internal/eventlog"
	"rpo-console-api/internal/models"
	"rpo-console-api/internal/services"
	mock_services "rpo-console-api/internal/services/mocks"
)

func truePtr() *bool {
	v := true
	return &v
}

func livePayload(id, hub string, drops int) *models.ScenarioResponse {
	return &models.ScenarioResponse{
		Success:   truePtr(),
		RequestID: id,
		HubCode:   hub,
		Summary: &models.ScenarioSummary{
			TotalTrips:               2,
			AvgTripDistanceKm:        4.2,
			AvgTripHours:             1.5,
			TotalConsignmentsPlanned: 20,
			TotalConsignmentsServed:  20 - drops,
			TotalConsignmentsDropped: drops,
			AvgStopsPerTrip:          9,
		},
	}
}

func TestAnalyzeMixedResultsPreserveOrderAndFlagFallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_services.NewMockScenarioSource(ctrl)
	source.EXPECT().FetchScenario(gomock.Any(), "alpha").Return(livePayload("alpha", "HUB1", 3), nil)
	source.EXPECT().FetchScenario(gomock.Any(), "beta").Return(livePayload("beta", "HUB2", 0), nil)
	source.EXPECT().FetchScenario(gomock.Any(), "gamma").Return(nil, context.DeadlineExceeded)

	svc := services.NewAnalysisService(source, eventlog.New(nil), nil, nil)
	resp, err := svc.Analyze(context.Background(), []string{"alpha", "beta", "gamma"}, services.ModeSingle)
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	// Request order survives regardless of which fetch returned first.
	assert.Equal(t, "alpha", resp.Results[0].ID)
	assert.Equal(t, "beta", resp.Results[1].ID)
	assert.Equal(t, "gamma", resp.Results[2].ID)

	assert.False(t, resp.Results[0].IsMock)
	assert.False(t, resp.Results[1].IsMock)
	assert.True(t, resp.Results[2].IsMock)

	// The fallback payload is stamped with the requested identifier.
	assert.Equal(t, "PALAK", resp.Results[2].Hub)
	assert.NotEmpty(t, resp.Events)
}

func TestAnalyzeCompareModeIncludesExtremes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_services.NewMockScenarioSource(ctrl)
	source.EXPECT().FetchScenario(gomock.Any(), "alpha").Return(livePayload("alpha", "HUB1", 3), nil)
	source.EXPECT().FetchScenario(gomock.Any(), "beta").Return(livePayload("beta", "HUB2", 0), nil)

	svc := services.NewAnalysisService(source, eventlog.New(nil), nil, nil)
	resp, err := svc.Analyze(context.Background(), []string{"alpha", "beta"}, services.ModeCompare)
	require.NoError(t, err)
	require.NotNil(t, resp.Best)
	assert.Equal(t, 0, resp.Best.MinDrops)
}

func TestAnalyzeSingleModeOmitsExtremes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_services.NewMockScenarioSource(ctrl)
	source.EXPECT().FetchScenario(gomock.Any(), "alpha").Return(livePayload("alpha", "HUB1", 1), nil)

	svc := services.NewAnalysisService(source, eventlog.New(nil), nil, nil)
	resp, err := svc.Analyze(context.Background(), []string{"alpha"}, services.ModeSingle)
	require.NoError(t, err)
	assert.Nil(t, resp.Best)
}

func TestAnalyzeFiltersSummarylessPayloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A live answer that carries no summary contributes no record but must
	// not sink the whole request while a sibling still resolved.
	source := mock_services.NewMockScenarioSource(ctrl)
	source.EXPECT().FetchScenario(gomock.Any(), "empty").Return(&models.ScenarioResponse{Success: truePtr()}, nil)
	source.EXPECT().FetchScenario(gomock.Any(), "full").Return(livePayload("full", "HUB1", 0), nil)

	svc := services.NewAnalysisService(source, eventlog.New(nil), nil, nil)
	resp, err := svc.Analyze(context.Background(), []string{"empty", "full"}, services.ModeSingle)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "full", resp.Results[0].ID)
}

func TestAnalyzeFailsOnlyWhenNothingUsableRemains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_services.NewMockScenarioSource(ctrl)
	source.EXPECT().FetchScenario(gomock.Any(), "a").Return(&models.ScenarioResponse{Success: truePtr()}, nil)
	source.EXPECT().FetchScenario(gomock.Any(), "b").Return(&models.ScenarioResponse{Success: truePtr()}, nil)

	svc := services.NewAnalysisService(source, eventlog.New(nil), nil, nil)
	_, err := svc.Analyze(context.Background(), []string{"a", "b"}, services.ModeSingle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not retrieve scenario data")
}

func TestAnalyzeRequiresScenarios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAnalysisService(mock_services.NewMockScenarioSource(ctrl), eventlog.New(nil), nil, nil)
	_, err := svc.Analyze(context.Background(), nil, services.ModeSingle)
	assert.Error(t, err)
}

func TestAnalyzeDiscardsResultsAfterCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := mock_services.NewMockScenarioSource(ctrl)
	source.EXPECT().FetchScenario(gomock.Any(), "alpha").Return(nil, fmt.Errorf("post: %w", context.Canceled))

	svc := services.NewAnalysisService(source, eventlog.New(nil), nil, nil)
	_, err := svc.Analyze(ctx, []string{"alpha"}, services.ModeSingle)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
