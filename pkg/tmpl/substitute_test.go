// pkg/tmpl/substitute_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test template substitution and residual marker detection

package tmpl_test

import (
	"testing"

	"github.com/arthur-debert/hoist/pkg/errors"
	"github.com/arthur-debert/hoist/pkg/testutil"
	"github.com/arthur-debert/hoist/pkg/tmpl"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		expected string
	}{
		{
			name:     "no_references",
			template: "/var/www/static",
			values:   map[string]string{},
			expected: "/var/www/static",
		},
		{
			name:     "single_reference",
			template: "%x%",
			values:   map[string]string{"x": "literal"},
			expected: "literal",
		},
		{
			name:     "multiple_references",
			template: "/srv/%zone%/app/%version%",
			values:   map[string]string{"zone": "fwapi", "version": "v2"},
			expected: "/srv/fwapi/app/v2",
		},
		{
			name:     "value_carries_further_references",
			template: "%app%/bin",
			values: map[string]string{
				"app":  "%zone%/current",
				"zone": "/srv/fwapi",
			},
			expected: "/srv/fwapi/current/bin",
		},
		{
			name:     "chained_values",
			template: "%a%",
			values: map[string]string{
				"a": "%b%",
				"b": "%c%",
				"c": "leaf",
			},
			expected: "leaf",
		},
		{
			name:     "hook_signature_key",
			template: "%[zone_root fwapi]%/lib",
			values:   map[string]string{"[zone_root fwapi]": "/zones/fwapi"},
			expected: "/zones/fwapi/lib",
		},
		{
			name:     "repeated_reference_replaced_everywhere",
			template: "%zone%/a:%zone%/b",
			values:   map[string]string{"zone": "fw"},
			expected: "fw/a:fw/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tmpl.Substitute(tt.template, tt.values)

			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, tt.expected, got)
		})
	}
}

func TestSubstituteResidualMarker(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
	}{
		{
			name:     "missing_value",
			template: "%a%",
			values:   map[string]string{},
		},
		{
			name:     "one_of_two_missing",
			template: "%a%/%b%",
			values:   map[string]string{"a": "ok"},
		},
		{
			name:     "value_introduces_unknown_reference",
			template: "%a%",
			values:   map[string]string{"a": "%ghost%"},
		},
		{
			name:     "value_carries_stray_marker",
			template: "%a%",
			values:   map[string]string{"a": "50%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tmpl.Substitute(tt.template, tt.values)

			testutil.AssertError(t, err)
			testutil.AssertTrue(t, errors.IsErrorCode(err, errors.ErrUnresolvedRef),
				"expected UNRESOLVED_REFERENCE, got %v", err)
		})
	}
}
