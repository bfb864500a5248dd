package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpo-console-api/internal/mapping"
)

func TestRoundTripWithoutCollisions(t *testing.T) {
	internal := map[string]string{
		"worker_code": "Vehicle ID",
		"weight":      "Vehicle Max Weight",
		"volume":      "Cubic Capacity",
	}

	external := mapping.ToExternal(internal)
	require.Len(t, external, 3)
	assert.Equal(t, "worker_code", external["Vehicle ID"])

	back := mapping.ToInternal(external)
	assert.Equal(t, internal, back)
}

func TestToInternalCollapsesDuplicateFieldTargets(t *testing.T) {
	// Two raw headers pointing at the same system field cannot both survive
	// the keying flip; one wins and the other is silently dropped. This is
	// documented behavior of the dictionary-shaped association, asserted
	// here rather than patched.
	external := map[string]string{
		"Header One": "weight",
		"Header Two": "weight",
	}

	internal := mapping.ToInternal(external)
	require.Len(t, internal, 1)
	header := internal["weight"]
	assert.Contains(t, []string{"Header One", "Header Two"}, header)

	// The loss is visible on the way back: only one wire entry remains.
	assert.Len(t, mapping.ToExternal(internal), 1)
}

func TestToExternalCollapsesDuplicateHeaderTargets(t *testing.T) {
	internal := map[string]string{
		"weight": "Shared Header",
		"volume": "Shared Header",
	}

	external := mapping.ToExternal(internal)
	require.Len(t, external, 1)
	field := external["Shared Header"]
	assert.Contains(t, []string{"weight", "volume"}, field)
}

func TestConversionsOfEmptyMaps(t *testing.T) {
	assert.Empty(t, mapping.ToInternal(nil))
	assert.Empty(t, mapping.ToExternal(nil))
	assert.Empty(t, mapping.ToInternal(map[string]string{}))
}
