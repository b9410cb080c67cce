package repair

import (
	"sort"
	"strings"

	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	mapset "github.com/deckarep/golang-set/v2"
)

// ParseStateFilter combines state filter names such as "created,claimed"
// into one filter value. Names are case-insensitive and may not repeat.
func ParseStateFilter(names []string) (fabric.RepairTaskStateFilter, error) {
	seen := mapset.NewSet[string]()
	var filter fabric.RepairTaskStateFilter

	for _, raw := range names {
		for _, part := range strings.Split(raw, ",") {
			name := strings.ToLower(strings.TrimSpace(part))
			if name == "" {
				continue
			}
			value, ok := fabric.RepairTaskStateFilters[name]
			if !ok {
				return 0, faults.Usagef("unknown repair task state %q (valid: %s)", part, strings.Join(stateFilterNames(), ", "))
			}
			if !seen.Add(name) {
				return 0, faults.Usagef("repair task state %q given more than once", part)
			}
			filter |= value
		}
	}
	return filter, nil
}

func stateFilterNames() []string {
	names := make([]string, 0, len(fabric.RepairTaskStateFilters))
	for name := range fabric.RepairTaskStateFilters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
