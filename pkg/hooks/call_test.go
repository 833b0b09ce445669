// pkg/hooks/call_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test call signatures and deduplication

package hooks_test

import (
	"testing"

	"github.com/arthur-debert/hoist/pkg/hooks"
	"github.com/arthur-debert/hoist/pkg/testutil"
)

func TestSignature(t *testing.T) {
	tests := []struct {
		name     string
		call     hooks.Call
		expected string
	}{
		{
			name:     "no_arguments",
			call:     hooks.Call{Name: "app_root"},
			expected: "[app_root]",
		},
		{
			name:     "one_argument",
			call:     hooks.Call{Name: "zone_root", Args: []string{"fwapi"}},
			expected: "[zone_root fwapi]",
		},
		{
			name:     "multiple_arguments",
			call:     hooks.Call{Name: "zone_root", Args: []string{"fwapi", "blue"}},
			expected: "[zone_root fwapi blue]",
		},
		{
			name:     "bound_variable_does_not_change_identity",
			call:     hooks.Call{Name: "zone_root", Args: []string{"fwapi"}, BoundVar: "zone"},
			expected: "[zone_root fwapi]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.expected, tt.call.Signature())
		})
	}
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name     string
		calls    []hooks.Call
		expected []string
	}{
		{
			name:     "empty",
			calls:    nil,
			expected: []string{},
		},
		{
			name: "same_signature_different_bound_variables",
			calls: []hooks.Call{
				{Name: "zone_root", Args: []string{"fwapi"}, BoundVar: "zone"},
				{Name: "zone_root", Args: []string{"fwapi"}, BoundVar: "api_zone"},
			},
			expected: []string{"[zone_root fwapi]"},
		},
		{
			name: "different_arguments_kept_apart",
			calls: []hooks.Call{
				{Name: "zone_root", Args: []string{"fwapi"}},
				{Name: "zone_root", Args: []string{"static"}},
			},
			expected: []string{"[zone_root fwapi]", "[zone_root static]"},
		},
		{
			name: "first_occurrence_order_preserved",
			calls: []hooks.Call{
				{Name: "b"},
				{Name: "a"},
				{Name: "b"},
			},
			expected: []string{"[b]", "[a]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unique := hooks.Deduplicate(tt.calls)

			got := make([]string, 0, len(unique))
			for _, call := range unique {
				got = append(got, call.Signature())
			}
			testutil.AssertEqual(t, tt.expected, got)
		})
	}
}

func TestValues(t *testing.T) {
	t.Run("first_write_wins", func(t *testing.T) {
		values := hooks.NewValues()
		values.Set("zone", "/zones/fwapi")
		values.Set("zone", "/zones/other")

		got, ok := values.Get("zone")
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, "/zones/fwapi", got)
	})

	t.Run("missing_key", func(t *testing.T) {
		values := hooks.NewValues()

		_, ok := values.Get("missing")
		testutil.AssertFalse(t, ok)
	})
}
