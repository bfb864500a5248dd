package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpo-console-api/internal/config"
	"rpo-console-api/internal/models"
	"rpo-console-api/internal/webhook"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		WorkflowBaseURL: baseURL,
		ScenarioPath:    "/RPO",
		MappingGetPath:  "/get-scenario-mapping",
		MappingSavePath: "/save-mappings",
		HeadersGetPath:  "/get-scenario-raw-file-headers",
		FetchTimeout:    2 * time.Second,
	}
}

func TestFetchScenarioObjectResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "demo", body["request_id"])
		w.Write([]byte(`{"success": true, "request_id": "demo", "hub_code": "PALAK", "summary": {"total_trips": 2}}`))
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	item, err := client.FetchScenario(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", item.RequestID)
	require.NotNil(t, item.Summary)
	assert.Equal(t, 2, item.Summary.TotalTrips)
}

func TestFetchScenarioListResponseFlattens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"success": true, "request_id": "demo", "summary": {"total_trips": 1}}]`))
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	item, err := client.FetchScenario(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", item.RequestID)
}

func TestFetchScenarioExplicitFailureCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "Scenario not found"}`))
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	_, err := client.FetchScenario(context.Background(), "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Scenario not found")
}

func TestFetchScenarioNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	_, err := client.FetchScenario(context.Background(), "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestFetchScenarioInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	_, err := client.FetchScenario(context.Background(), "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestFetchScenarioEmptyListYieldsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	_, err := client.FetchScenario(context.Background(), "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario not found")
}

func TestFetchScenarioTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.FetchTimeout = 20 * time.Millisecond
	client := webhook.NewClient(cfg)
	_, err := client.FetchScenario(context.Background(), "demo")
	assert.Error(t, err)
}

func TestFetchMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "demo", body["scenario_name"])
		w.Write([]byte(`{"success": true, "scenario_name": "demo", "vehicle_mapping": {"Vehicle ID": "worker_code"}}`))
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	resp, err := client.FetchMapping(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "worker_code", resp.VehicleMapping["Vehicle ID"])
}

func TestFetchHeadersUsesLegacyTypoKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// The workflow only answers to the misspelled key; the correctly
		// spelled one would silently return nothing.
		assert.Equal(t, "demo", body["sceanrio_name"])
		assert.NotContains(t, body, "scenario_name")
		w.Write([]byte(`[{"success": true, "files": {"consignments": {"headers": ["Order Ref"]}, "vehicles": {"headers": ["Vehicle ID"]}}}]`))
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	group, err := client.FetchHeaders(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vehicle ID"}, group.Files.Vehicles.Headers)
	assert.Equal(t, []string{"Order Ref"}, group.Files.Consignments.Headers)
}

func TestFetchHeadersEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	_, err := client.FetchHeaders(context.Background(), "demo")
	assert.Error(t, err)
}

func TestSaveMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body models.SaveMappingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "demo", body.ScenarioName)
		assert.Equal(t, "worker_code", body.VehicleMapping["Vehicle ID"])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	err := client.SaveMapping(context.Background(), models.SaveMappingRequest{
		ScenarioName:       "demo",
		VehicleMapping:     map[string]string{"Vehicle ID": "worker_code"},
		ConsignmentMapping: map[string]string{},
	})
	assert.NoError(t, err)
}

func TestSaveMappingNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := webhook.NewClient(testConfig(srv.URL))
	err := client.SaveMapping(context.Background(), models.SaveMappingRequest{ScenarioName: "demo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}
