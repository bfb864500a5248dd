// Package metrics holds the pure normalization and comparison logic for
// scenario analysis.
package metrics

// File: internal/metrics/normalize.go
// Purpose: Convert a resolved scenario webhook payload into a view-ready
// report with precomputed derived fields.

import (
	"fmt"
	"math"
	"sort"

	"rpo-console-api/internal/models"
)

// FormatHours renders decimal hours as "<h>h <m>m". NaN or negative input
// renders as "0h 0m". Minutes always land in [0,59]: a fractional part that
// rounds up to a full hour carries into the hour count.
func FormatHours(decimalHours float64) string {
	if math.IsNaN(decimalHours) || decimalHours < 0 {
		return "0h 0m"
	}
	hrs := int(decimalHours)
	mins := int(math.Round((decimalHours - float64(hrs)) * 60))
	if mins == 60 {
		hrs++
		mins = 0
	}
	return fmt.Sprintf("%dh %dm", hrs, mins)
}

// DropRate returns the dropped share of planned consignments as a
// percentage. Planned is floored at 1 so an empty plan cannot divide by zero.
func DropRate(dropped, planned int) float64 {
	if planned < 1 {
		planned = 1
	}
	return float64(dropped) / float64(planned) * 100
}

// DropReasons flattens the raw breakup into display rows, preferring the
// human label over the reason code, sorted descending by dropped count.
// Equal counts keep their input order; the dashboard treats the ordering as
// a contract.
func DropReasons(items []models.DropBreakupItem) []models.DropReason {
	reasons := make([]models.DropReason, 0, len(items))
	for _, item := range items {
		reason := item.ReasonLabel
		if reason == "" {
			reason = item.ReasonCode
		}
		reasons = append(reasons, models.DropReason{Reason: reason, Count: item.DroppedCount})
	}
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Count > reasons[j].Count
	})
	return reasons
}

// Normalize converts a resolved scenario payload into a ScenarioReport. This
// is the single place untyped upstream JSON becomes a fully-typed record:
// summary leaves absent upstream have already decoded to zero, while analysis
// leaves stay nil so the dashboard can tell "zero" from "unknown". A payload
// without a summary section yields nil and the caller filters it out.
func Normalize(item *models.ScenarioResponse, scenarioName string, isMock bool) *models.ScenarioReport {
	if item == nil || item.Summary == nil {
		return nil
	}
	summary := item.Summary
	dropSplit := DropRate(summary.TotalConsignmentsDropped, summary.TotalConsignmentsPlanned)

	report := &models.ScenarioReport{
		ID:                 firstNonEmpty(item.RequestID, scenarioName),
		Hub:                firstNonEmpty(item.HubCode, "N/A"),
		TotalTrips:         summary.TotalTrips,
		AvgDistance:        summary.AvgTripDistanceKm,
		AvgDistanceStr:     fmt.Sprintf("%.2f", summary.AvgTripDistanceKm),
		TotalStops:         summary.TotalConsignmentsServed,
		AvgStopsPerTrip:    summary.AvgStopsPerTrip,
		AvgStopsPerTripStr: fmt.Sprintf("%.1f", summary.AvgStopsPerTrip),
		AvgTripTimeStr:     FormatHours(summary.AvgTripHours),
		TotalDrops:         summary.TotalConsignmentsDropped,
		DropSplit:          dropSplit,
		DropSplitStr:       fmt.Sprintf("%.1f", dropSplit),
		DropReasons:        DropReasons(item.DropBreakup),
		DataGaps:           []string{},
		IsMock:             isMock,
	}

	if analysis := item.AnalysisMetrics; analysis != nil {
		report.UsedVehicles = analysis.Vehicles.UsedVehicles
		report.TotalVehicles = analysis.Vehicles.TotalVehicles
		report.UsedVehicleRatio = analysis.Vehicles.UsedVehicleRatio
		report.MultiTripVehicles = analysis.Vehicles.VehiclesDoingMultiTrips
		report.WeightUtilPct = analysis.Utilisation.OverallWeightUtilPct
		report.VolUtilPct = analysis.Utilisation.OverallVolUtilPct
		if analysis.DataGaps != nil {
			report.DataGaps = analysis.DataGaps
		}
	}
	return report
}

func firstNonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
