// Package mapping implements the field-to-header association model for the
// configuration screen: vocabulary lookups, wire/internal conversion, and
// the editing operations the dashboard performs.
package mapping

// File: internal/mapping/fields.go
// Purpose: Fixed system-field vocabularies per entity type.

// EntityType selects which vocabulary an association is edited against.
type EntityType string

const (
	EntityVehicle     EntityType = "vehicle"
	EntityConsignment EntityType = "consignment"
)

// ConsignmentFields lists every system field the optimization engine accepts
// on a consignment row.
var ConsignmentFields = []string{
	"reference_number", "origin_details_name", "origin_details_phone", "origin_details_address_line_1",
	"origin_details_address_line_2", "origin_details_pincode", "origin_details_city", "origin_details_state",
	"destination_details_name", "destination_details_phone", "destination_details_address_line_1",
	"destination_details_address_line_2", "destination_details_pincode", "destination_details_city",
	"destination_details_state", "destination_details_country", "length", "width", "height",
	"dimension_unit", "weight", "weight_unit", "volume", "volume_unit", "action_type",
	"declared_value", "destination_details_lat", "destination_details_lng", "origin_details_lat",
	"origin_details_lng", "pickup_service_time", "service_time", "pickup_time_slot_start",
	"pickup_time_slot_end", "delivery_time_slot_start", "delivery_time_slot_end", "constraint_tags",
}

// VehicleFields lists every system field the optimization engine accepts on
// a vehicle row.
var VehicleFields = []string{
	"worker_code", "weight", "volume", "speed", "consignment_capacity", "constraint_tags",
	"vehicle_service_time", "priority", "task_capacity", "height", "distance",
	"delivery_time_start", "delivery_time_end", "fixed_cost", "variable_cost",
	"trip_id", "cost_dimension", "length", "width", "max_cumulative_product_value",
	"max_hub_visit_allowed", "vehicle_replicate",
}

// Vocabulary returns the system-field list for an entity type.
func Vocabulary(entity EntityType) []string {
	if entity == EntityVehicle {
		return VehicleFields
	}
	return ConsignmentFields
}

// ParseEntity validates an entity name from an API payload.
func ParseEntity(raw string) (EntityType, bool) {
	switch EntityType(raw) {
	case EntityVehicle:
		return EntityVehicle, true
	case EntityConsignment:
		return EntityConsignment, true
	}
	return "", false
}
