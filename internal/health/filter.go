// Package health composes health queries and health reports.
//
// Health queries accept two generations of filter parameters for the same
// concept: a legacy numeric bitmask (for example --events-health-state-filter)
// and a typed filter (--events-filter Warning,Error). ResolveFilter decides
// between them with a fixed precedence: the typed value wins, and a lone
// legacy value is translated to the typed form. Every use of a legacy
// parameter produces one deprecation warning.
//
// Build turns independently optional parameters into a fabric.HealthQuery.
// It is a pure function of its input: no connection calls, no clocks, no
// randomness. The health policy and the statistics filter are only present
// on the query when the operator supplied at least one of their parameters,
// so the server default applies otherwise.
package health

import (
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
)

// maxLegacyFilter is the largest bitmask accepted by legacy filter
// parameters.
const maxLegacyFilter = int64(fabric.HealthStateFilterAll)

// FilterInput holds both generations of one filter parameter. Nil means the
// parameter was not supplied.
type FilterInput struct {
	Legacy *int64
	Typed  *fabric.HealthStateFilter
}

// ResolveFilter returns the effective filter for one parameter pair and
// whether the legacy form was supplied. A nil result means neither was set.
// The legacy bitmask is only range checked when it is the value used.
func ResolveFilter(legacy *int64, typed *fabric.HealthStateFilter) (*fabric.HealthStateFilter, bool, error) {
	deprecated := legacy != nil
	if typed != nil {
		v := *typed
		return &v, deprecated, nil
	}
	if deprecated {
		if *legacy < 0 || *legacy > maxLegacyFilter {
			return nil, deprecated, faults.Usagef("health state filter %d is out of range 0-%d", *legacy, maxLegacyFilter)
		}
		v := fabric.HealthStateFilter(*legacy)
		return &v, deprecated, nil
	}
	return nil, false, nil
}
