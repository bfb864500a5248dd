package services

// File: internal/services/fallback.go
// Purpose: Fixed fallback payloads substituted when an upstream call fails.
// Availability of the workflow endpoints is never guaranteed; degrading to
// these canned values keeps both screens usable offline.

import "rpo-console-api/internal/models"

// fallbackScenario returns the canned metrics payload stamped with the
// requested scenario identifier.
func fallbackScenario(requestID string) *models.ScenarioResponse {
	return &models.ScenarioResponse{
		Success:   boolPtr(true),
		RequestID: requestID,
		HubCode:   "PALAK",
		Summary: &models.ScenarioSummary{
			TotalTrips:               1,
			TotalDistanceKm:          0.06,
			AvgTripDistanceKm:        0.06,
			TotalTripHours:           2.11,
			AvgTripHours:             2.11,
			TotalConsignmentsPlanned: 13,
			TotalConsignmentsServed:  10,
			TotalConsignmentsDropped: 3,
			AvgStopsPerTrip:          10,
		},
		AnalysisMetrics: &models.AnalysisMetrics{
			Vehicles: models.VehicleMetrics{
				UsedVehicles:            intPtr(1),
				TotalVehicles:           intPtr(5),
				UsedVehicleRatio:        floatPtr(0.2),
				VehiclesDoingMultiTrips: intPtr(0),
			},
			Trips: models.TripMetrics{
				TotalTrips:           intPtr(1),
				AvgTripDurationHours: floatPtr(2.11),
				MinTripDurationHours: floatPtr(2.11),
				MaxTripDurationHours: floatPtr(2.11),
				AvgTripDistanceKm:    floatPtr(0.06),
				MinTripDistanceKm:    floatPtr(0.06),
				MaxTripDistanceKm:    floatPtr(0.06),
			},
			ConsignmentsAndStops: models.ConsignmentStopMetrics{
				AvgCnCount:   floatPtr(10),
				MinCnCount:   floatPtr(10),
				MaxCnCount:   floatPtr(10),
				AvgStopCount: floatPtr(10),
				MinStopCount: floatPtr(10),
				MaxStopCount: floatPtr(10),
			},
			Utilisation: models.UtilisationMetrics{
				OverallWeightUtilPct: floatPtr(45.5),
				OverallVolUtilPct:    floatPtr(32.1),
				MinWeightUtilPct:     floatPtr(45.5),
				MaxWeightUtilPct:     floatPtr(45.5),
				MinVolUtilPct:        floatPtr(32.1),
				MaxVolUtilPct:        floatPtr(32.1),
			},
			// Product value stays null: the sample upload has no value data.
			ProductValue: models.ProductValueMetrics{},
			DataGaps: []string{
				"Capacity data missing from file upload.",
				"Product value field not provided.",
			},
		},
	}
}

// fallbackMappingConfig returns the canned association and header sets shown
// when either configuration call fails. Both associations are already in
// internal (system field -> raw header) form.
func fallbackMappingConfig(scenarioName string) *models.MappingConfig {
	return &models.MappingConfig{
		ScenarioName: scenarioName,
		VehicleMapping: map[string]string{
			"worker_code": "Vehicle ID",
			"weight":      "Vehicle Max Weight",
		},
		ConsignmentMapping: map[string]string{
			"reference_number":                   "Order Ref",
			"destination_details_address_line_1": "Target Address",
		},
		VehicleHeaders:     []string{"Vehicle ID", "Vehicle Max Weight", "Driver Name", "volume", "delivery_time_start"},
		ConsignmentHeaders: []string{"Order Ref", "Target Address", "pincode", "city", "service_time"},
		Simulated:          true,
	}
}

func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
