package health

import (
	"regexp"
	"strings"

	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/validate"
)

// Params are the operator inputs of a health query. Pointer fields are nil
// when the corresponding flag was not supplied.
type Params struct {
	Kind   fabric.EntityKind
	Target fabric.HealthTarget

	Events   FilterInput
	Children map[fabric.ChildKind]FilterInput

	ConsiderWarningAsError                  *bool
	MaxPercentUnhealthyNodes                *int
	MaxPercentUnhealthyApplications         *int
	MaxPercentUnhealthyDeployedApplications *int
	MaxPercentUnhealthyServices             *int
	MaxPercentUnhealthyPartitionsPerService *int
	MaxPercentUnhealthyReplicasPerPartition *int

	ExcludeHealthStatistics                  bool
	IncludeSystemApplicationHealthStatistics bool
}

// WarnFunc receives deprecation warnings.
type WarnFunc func(format string, args ...any)

// Build resolves p into a health query. Deprecation warnings are reported
// through warn, once per legacy parameter supplied, in a fixed order.
func Build(p Params, warn WarnFunc) (fabric.HealthQuery, error) {
	if err := validateTarget(p.Kind, p.Target); err != nil {
		return fabric.HealthQuery{}, err
	}

	q := fabric.HealthQuery{Kind: p.Kind, Target: p.Target}

	events, deprecated, err := ResolveFilter(p.Events.Legacy, p.Events.Typed)
	if err != nil {
		return fabric.HealthQuery{}, err
	}
	if deprecated {
		warnDeprecated(warn, "events")
	}
	q.EventsFilter = events

	allowed := fabric.ChildKinds(p.Kind)
	for kind := range p.Children {
		if !containsChild(allowed, kind) {
			return fabric.HealthQuery{}, faults.Usagef("%s filter is not supported for %s health", flagName(kind), strings.ToLower(string(p.Kind)))
		}
	}
	for _, kind := range allowed {
		in, ok := p.Children[kind]
		if !ok {
			continue
		}
		f, deprecated, err := ResolveFilter(in.Legacy, in.Typed)
		if err != nil {
			return fabric.HealthQuery{}, err
		}
		if deprecated {
			warnDeprecated(warn, flagName(kind))
		}
		if f == nil {
			continue
		}
		if q.ChildFilters == nil {
			q.ChildFilters = make(map[fabric.ChildKind]fabric.HealthStateFilter)
		}
		q.ChildFilters[kind] = *f
	}

	policy, err := buildPolicy(p)
	if err != nil {
		return fabric.HealthQuery{}, err
	}
	q.Policy = policy

	stats, err := buildStatisticsFilter(p)
	if err != nil {
		return fabric.HealthQuery{}, err
	}
	q.StatisticsFilter = stats

	return q, nil
}

// buildPolicy returns nil unless at least one policy parameter was set.
func buildPolicy(p Params) (*fabric.HealthPolicy, error) {
	if p.ConsiderWarningAsError == nil &&
		p.MaxPercentUnhealthyNodes == nil &&
		p.MaxPercentUnhealthyApplications == nil &&
		p.MaxPercentUnhealthyDeployedApplications == nil &&
		p.MaxPercentUnhealthyServices == nil &&
		p.MaxPercentUnhealthyPartitionsPerService == nil &&
		p.MaxPercentUnhealthyReplicasPerPartition == nil {
		return nil, nil
	}

	policy := &fabric.HealthPolicy{
		ConsiderWarningAsError:                  copyPtr(p.ConsiderWarningAsError),
		MaxPercentUnhealthyNodes:                copyPtr(p.MaxPercentUnhealthyNodes),
		MaxPercentUnhealthyApplications:         copyPtr(p.MaxPercentUnhealthyApplications),
		MaxPercentUnhealthyDeployedApplications: copyPtr(p.MaxPercentUnhealthyDeployedApplications),
		MaxPercentUnhealthyServices:             copyPtr(p.MaxPercentUnhealthyServices),
		MaxPercentUnhealthyPartitionsPerService: copyPtr(p.MaxPercentUnhealthyPartitionsPerService),
		MaxPercentUnhealthyReplicasPerPartition: copyPtr(p.MaxPercentUnhealthyReplicasPerPartition),
	}
	if err := validate.Struct(policy); err != nil {
		return nil, faults.Usagef("invalid health policy: %v", err)
	}
	return policy, nil
}

// buildStatisticsFilter returns nil unless a statistics flag was set.
func buildStatisticsFilter(p Params) (*fabric.HealthStatisticsFilter, error) {
	if !p.ExcludeHealthStatistics && !p.IncludeSystemApplicationHealthStatistics {
		return nil, nil
	}
	if p.IncludeSystemApplicationHealthStatistics && p.Kind != fabric.EntityCluster {
		return nil, faults.Usagef("--include-system-application-health-statistics is only supported for cluster health")
	}
	if p.Kind == fabric.EntityNode || p.Kind == fabric.EntityReplica {
		return nil, faults.Usagef("%s health does not report health statistics", strings.ToLower(string(p.Kind)))
	}
	return &fabric.HealthStatisticsFilter{
		ExcludeHealthStatistics:                  p.ExcludeHealthStatistics,
		IncludeSystemApplicationHealthStatistics: p.IncludeSystemApplicationHealthStatistics,
	}, nil
}

// validateTarget checks that the fields identifying the entity are set.
func validateTarget(kind fabric.EntityKind, t fabric.HealthTarget) error {
	switch kind {
	case fabric.EntityCluster:
		return nil
	case fabric.EntityNode:
		if err := validate.NodeName(t.NodeName); err != nil {
			return faults.Usagef("%v", err)
		}
	case fabric.EntityApplication:
		if err := validate.FabricName(t.ApplicationName, "application"); err != nil {
			return faults.Usagef("%v", err)
		}
	case fabric.EntityService:
		if err := validate.FabricName(t.ServiceName, "service"); err != nil {
			return faults.Usagef("%v", err)
		}
	case fabric.EntityPartition:
		if err := validate.PartitionID(t.PartitionID); err != nil {
			return faults.Usagef("%v", err)
		}
	case fabric.EntityReplica:
		if err := validate.PartitionID(t.PartitionID); err != nil {
			return faults.Usagef("%v", err)
		}
		if t.ReplicaOrInstanceID == 0 {
			return faults.Usagef("replica or instance ID is required")
		}
	default:
		return faults.Usagef("unknown health entity kind %q", kind)
	}
	return nil
}

func warnDeprecated(warn WarnFunc, name string) {
	if warn == nil {
		return
	}
	warn("--%s-health-state-filter is deprecated and will be removed; use --%s-filter instead", name, name)
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// flagName converts a child kind to its flag stem, e.g.
// DeployedApplications -> deployed-applications.
func flagName(kind fabric.ChildKind) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(string(kind), "$1-$2"))
}

func containsChild(kinds []fabric.ChildKind, kind fabric.ChildKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
