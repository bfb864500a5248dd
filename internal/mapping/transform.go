package mapping

// File: internal/mapping/transform.go
// Purpose: Convert between the wire form of an association (raw header ->
// system field) and the editing form (system field -> raw header).

// ToInternal converts a wire association keyed by raw header into the
// editing form keyed by system field. When two headers point at the same
// system field the later entry wins, so the conversion is lossy for such
// inputs; the round trip through ToExternal only holds when every field is
// the target of at most one header.
func ToInternal(external map[string]string) map[string]string {
	internal := make(map[string]string, len(external))
	for header, field := range external {
		internal[field] = header
	}
	return internal
}

// ToExternal converts an editing association back to the wire form keyed by
// raw header. Symmetric to ToInternal, two fields mapped to the same header
// collapse to one wire entry.
func ToExternal(internal map[string]string) map[string]string {
	external := make(map[string]string, len(internal))
	for field, header := range internal {
		external[header] = field
	}
	return external
}
