// Package models defines upstream webhook payload shapes and derived records.
package models

// File: internal/models/models.go
// Purpose: Wire shapes for the route-planning workflow webhooks, the
// normalized view-ready records served to the dashboard, and API payloads.

// DropBreakupItem is one drop-reason row from the scenario metrics webhook.
type DropBreakupItem struct {
	ReasonCode   string  `json:"reason_code"`
	ReasonLabel  string  `json:"reason_label"`
	DroppedCount int     `json:"dropped_count"`
	PctOfDropped float64 `json:"pct_of_dropped"`
	PctOfPlanned float64 `json:"pct_of_planned"`
}

// ScenarioSummary carries the aggregate trip counts for one scenario.
// Leaves missing upstream decode to zero, which is exactly the default the
// normalizer wants for summary fields.
type ScenarioSummary struct {
	TotalTrips               int     `json:"total_trips"`
	TotalDistanceKm          float64 `json:"total_distance_km"`
	AvgTripDistanceKm        float64 `json:"avg_trip_distance_km"`
	TotalTripHours           float64 `json:"total_trip_hours"`
	AvgTripHours             float64 `json:"avg_trip_hours"`
	TotalConsignmentsPlanned int     `json:"total_consignments_planned"`
	TotalConsignmentsServed  int     `json:"total_consignments_served"`
	TotalConsignmentsDropped int     `json:"total_consignments_dropped"`
	AvgStopsPerTrip          float64 `json:"avg_stops_per_trip"`
}

// VehicleMetrics holds fleet usage counts. Every leaf is nullable: null means
// "not computable from the uploaded data" and must stay distinguishable from
// zero all the way to the dashboard.
type VehicleMetrics struct {
	UsedVehicles            *int     `json:"used_vehicles"`
	TotalVehicles           *int     `json:"total_vehicles"`
	UsedVehicleRatio        *float64 `json:"used_vehicle_ratio"`
	VehiclesDoingMultiTrips *int     `json:"vehicles_doing_multi_trips"`
}

// TripMetrics holds min/avg/max trip duration and distance stats.
type TripMetrics struct {
	TotalTrips           *int     `json:"total_trips"`
	AvgTripDurationHours *float64 `json:"avg_trip_duration_hours"`
	MinTripDurationHours *float64 `json:"min_trip_duration_hours"`
	MaxTripDurationHours *float64 `json:"max_trip_duration_hours"`
	AvgTripDistanceKm    *float64 `json:"avg_trip_distance_km"`
	MinTripDistanceKm    *float64 `json:"min_trip_distance_km"`
	MaxTripDistanceKm    *float64 `json:"max_trip_distance_km"`
}

// ConsignmentStopMetrics holds min/avg/max consignment and stop counts.
type ConsignmentStopMetrics struct {
	AvgCnCount   *float64 `json:"avg_cn_count"`
	MinCnCount   *float64 `json:"min_cn_count"`
	MaxCnCount   *float64 `json:"max_cn_count"`
	AvgStopCount *float64 `json:"avg_stop_count"`
	MinStopCount *float64 `json:"min_stop_count"`
	MaxStopCount *float64 `json:"max_stop_count"`
}

// UtilisationMetrics holds weight and volume utilisation percentages.
type UtilisationMetrics struct {
	OverallWeightUtilPct *float64 `json:"overall_weight_util_pct"`
	OverallVolUtilPct    *float64 `json:"overall_vol_util_pct"`
	MinWeightUtilPct     *float64 `json:"min_weight_util_pct"`
	MaxWeightUtilPct     *float64 `json:"max_weight_util_pct"`
	MinVolUtilPct        *float64 `json:"min_vol_util_pct"`
	MaxVolUtilPct        *float64 `json:"max_vol_util_pct"`
}

// ProductValueMetrics holds declared product value stats.
type ProductValueMetrics struct {
	AvgProductValue *float64 `json:"avg_product_value"`
	MinProductValue *float64 `json:"min_product_value"`
	MaxProductValue *float64 `json:"max_product_value"`
}

// AnalysisMetrics is the optional extended analysis block of a scenario
// response.
type AnalysisMetrics struct {
	Vehicles             VehicleMetrics         `json:"vehicles"`
	Trips                TripMetrics            `json:"trips"`
	ConsignmentsAndStops ConsignmentStopMetrics `json:"consignments_and_stops"`
	Utilisation          UtilisationMetrics     `json:"utilisation"`
	ProductValue         ProductValueMetrics    `json:"product_value"`
	DataGaps             []string               `json:"data_gaps"`
}

// ScenarioResponse is one item from the scenario metrics webhook. The
// endpoint answers with either a bare object or a single-element list; the
// webhook client flattens that before this shape is used.
type ScenarioResponse struct {
	Success         *bool             `json:"success,omitempty"`
	Message         string            `json:"message,omitempty"`
	RequestID       string            `json:"request_id,omitempty"`
	HubCode         string            `json:"hub_code,omitempty"`
	Summary         *ScenarioSummary  `json:"summary,omitempty"`
	DropBreakup     []DropBreakupItem `json:"drop_breakup,omitempty"`
	AnalysisMetrics *AnalysisMetrics  `json:"analysis_metrics,omitempty"`
}

// DropReason is one display row of the sorted drop breakdown.
type DropReason struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// ScenarioReport is the normalized, view-ready record for one scenario.
// Built once per fetch, immutable afterwards, replaced wholesale on re-fetch.
type ScenarioReport struct {
	ID  string `json:"id"`
	Hub string `json:"hub"`

	TotalTrips         int     `json:"total_trips"`
	AvgDistance        float64 `json:"avg_distance"`
	AvgDistanceStr     string  `json:"avg_distance_str"`
	TotalStops         int     `json:"total_stops"`
	AvgStopsPerTrip    float64 `json:"avg_stops_per_trip"`
	AvgStopsPerTripStr string  `json:"avg_stops_per_trip_str"`
	AvgTripTimeStr     string  `json:"avg_trip_time_str"`

	TotalDrops   int          `json:"total_drops"`
	DropSplit    float64      `json:"drop_split"`
	DropSplitStr string       `json:"drop_split_str"`
	DropReasons  []DropReason `json:"drop_reasons"`

	UsedVehicles      *int     `json:"used_vehicles"`
	TotalVehicles     *int     `json:"total_vehicles"`
	UsedVehicleRatio  *float64 `json:"used_vehicle_ratio"`
	MultiTripVehicles *int     `json:"multi_trip_vehicles"`
	WeightUtilPct     *float64 `json:"weight_util_pct"`
	VolUtilPct        *float64 `json:"vol_util_pct"`
	DataGaps          []string `json:"data_gaps"`

	IsMock bool `json:"is_mock"`
}

// ComparisonExtremes holds the per-metric best values across a compared set.
// MaxWeightUtilPct stays nil when no record in the set carries the field.
type ComparisonExtremes struct {
	MinAvgDistance   float64  `json:"min_avg_distance"`
	MinDrops         int      `json:"min_drops"`
	MinTrips         int      `json:"min_trips"`
	MaxStopsPerTrip  float64  `json:"max_stops_per_trip"`
	MaxWeightUtilPct *float64 `json:"max_weight_util_pct,omitempty"`
}

// LogEvent is one structured session-log entry surfaced to the dashboard.
type LogEvent struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
}

// AnalyzeRequest is the dashboard request for POST /analysis.
type AnalyzeRequest struct {
	Scenarios []string `json:"scenarios"`
	Mode      string   `json:"mode,omitempty"`
}

// AnalyzeResponse carries the resolved reports in request order, the
// comparison extremes when applicable, and the session events of the run.
type AnalyzeResponse struct {
	Results []ScenarioReport    `json:"results"`
	Best    *ComparisonExtremes `json:"best,omitempty"`
	Events  []LogEvent          `json:"events"`
}

// MappingResponse is the get-scenario-mapping webhook payload. Both maps are
// keyed raw header -> system field (the wire form).
type MappingResponse struct {
	Success            *bool             `json:"success,omitempty"`
	ScenarioName       string            `json:"scenario_name,omitempty"`
	VehicleMapping     map[string]string `json:"vehicle_mapping,omitempty"`
	ConsignmentMapping map[string]string `json:"consignment_mapping,omitempty"`
}

// HeaderSet is the list of column headers discovered in one uploaded file.
type HeaderSet struct {
	Headers []string `json:"headers"`
}

// HeaderFiles groups the discovered headers per uploaded file kind.
type HeaderFiles struct {
	Consignments HeaderSet `json:"consignments"`
	Vehicles     HeaderSet `json:"vehicles"`
}

// HeaderFileGroup is the raw-file-headers webhook payload; the endpoint
// answers with a single-element list of these.
type HeaderFileGroup struct {
	Success bool        `json:"success"`
	Files   HeaderFiles `json:"files"`
}

// SaveMappingRequest is the save-mappings webhook payload; maps are in wire
// (raw header -> system field) form.
type SaveMappingRequest struct {
	ScenarioName       string            `json:"scenario_name"`
	VehicleMapping     map[string]string `json:"vehicle_mapping"`
	ConsignmentMapping map[string]string `json:"consignment_mapping"`
}

// MappingLoadRequest is the dashboard request for POST /mappings/load.
type MappingLoadRequest struct {
	ScenarioName string `json:"scenario_name"`
}

// MappingConfig is the load result with both associations in internal
// (system field -> raw header) form, plus the discovered header sets.
type MappingConfig struct {
	ScenarioName       string            `json:"scenario_name"`
	VehicleMapping     map[string]string `json:"vehicle_mapping"`
	ConsignmentMapping map[string]string `json:"consignment_mapping"`
	VehicleHeaders     []string          `json:"vehicle_headers"`
	ConsignmentHeaders []string          `json:"consignment_headers"`
	Simulated          bool              `json:"simulated"`
}

// MappingSaveRequest is the dashboard request for POST /mappings/save; maps
// are in internal form and converted to wire form before transmission. The
// Simulated flag echoes what the matching load reported.
type MappingSaveRequest struct {
	ScenarioName       string            `json:"scenario_name"`
	VehicleMapping     map[string]string `json:"vehicle_mapping"`
	ConsignmentMapping map[string]string `json:"consignment_mapping"`
	Simulated          bool              `json:"simulated"`
}

// MappingSaveResponse acknowledges a save.
type MappingSaveResponse struct {
	Status    string `json:"status"`
	Simulated bool   `json:"simulated"`
}

// MappingEditRequest applies one editing operation to an internal
// association and returns the updated state.
type MappingEditRequest struct {
	Entity  string            `json:"entity"`
	Op      string            `json:"op"`
	Field   string            `json:"field"`
	Header  string            `json:"header,omitempty"`
	Mapping map[string]string `json:"mapping"`
}

// MappingEditResponse is the updated association plus the vocabulary entries
// still available for the add-new selector.
type MappingEditResponse struct {
	Mapping         map[string]string `json:"mapping"`
	AvailableFields []string          `json:"available_fields"`
}
