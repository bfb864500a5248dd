package metrics

// File: internal/metrics/compare.go
// Purpose: Per-metric best values across a compared scenario set.

import "rpo-console-api/internal/models"

// Compare returns the per-metric best values across the record set. A single
// record has no relative best, so fewer than two records yields nil. The
// weight-utilisation maximum reduces only over records that carry the field;
// records without it are excluded, not treated as zero.
func Compare(reports []models.ScenarioReport) *models.ComparisonExtremes {
	if len(reports) < 2 {
		return nil
	}

	best := &models.ComparisonExtremes{
		MinAvgDistance:  reports[0].AvgDistance,
		MinDrops:        reports[0].TotalDrops,
		MinTrips:        reports[0].TotalTrips,
		MaxStopsPerTrip: reports[0].AvgStopsPerTrip,
	}
	for _, r := range reports[1:] {
		if r.AvgDistance < best.MinAvgDistance {
			best.MinAvgDistance = r.AvgDistance
		}
		if r.TotalDrops < best.MinDrops {
			best.MinDrops = r.TotalDrops
		}
		if r.TotalTrips < best.MinTrips {
			best.MinTrips = r.TotalTrips
		}
		if r.AvgStopsPerTrip > best.MaxStopsPerTrip {
			best.MaxStopsPerTrip = r.AvgStopsPerTrip
		}
	}

	for _, r := range reports {
		if r.WeightUtilPct == nil {
			continue
		}
		if best.MaxWeightUtilPct == nil || *r.WeightUtilPct > *best.MaxWeightUtilPct {
			v := *r.WeightUtilPct
			best.MaxWeightUtilPct = &v
		}
	}
	return best
}
