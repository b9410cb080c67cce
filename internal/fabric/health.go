package fabric

import (
	"fmt"
	"strings"
	"time"
)

// HealthState is the health of an entity or of a single health event.
type HealthState string

const (
	HealthStateInvalid HealthState = "Invalid"
	HealthStateOk      HealthState = "Ok"
	HealthStateWarning HealthState = "Warning"
	HealthStateError   HealthState = "Error"
	HealthStateUnknown HealthState = "Unknown"
)

// ParseHealthState parses a case-insensitive health state name.
func ParseHealthState(s string) (HealthState, error) {
	for _, h := range []HealthState{HealthStateInvalid, HealthStateOk, HealthStateWarning, HealthStateError, HealthStateUnknown} {
		if strings.EqualFold(s, string(h)) {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown health state %q", s)
}

// HealthStateFilter is a set of health states used to select which events
// or children a health query returns.
type HealthStateFilter uint32

const (
	HealthStateFilterDefault HealthStateFilter = 0
	HealthStateFilterNone    HealthStateFilter = 1
	HealthStateFilterOk      HealthStateFilter = 2
	HealthStateFilterWarning HealthStateFilter = 4
	HealthStateFilterError   HealthStateFilter = 8
	HealthStateFilterAll     HealthStateFilter = 65535
)

var healthStateFilterNames = []struct {
	name  string
	value HealthStateFilter
}{
	{"None", HealthStateFilterNone},
	{"Ok", HealthStateFilterOk},
	{"Warning", HealthStateFilterWarning},
	{"Error", HealthStateFilterError},
}

// ParseHealthStateFilter parses a comma separated list of filter names such
// as "Warning,Error". "Default" and "All" are accepted as standalone values.
func ParseHealthStateFilter(s string) (HealthStateFilter, error) {
	var f HealthStateFilter
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			continue
		case strings.EqualFold(part, "Default"):
			continue
		case strings.EqualFold(part, "All"):
			f |= HealthStateFilterAll
			continue
		}
		matched := false
		for _, n := range healthStateFilterNames {
			if strings.EqualFold(part, n.name) {
				f |= n.value
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("unknown health state filter %q (valid: Default, None, Ok, Warning, Error, All)", part)
		}
	}
	return f, nil
}

// String renders the filter as a comma separated list of names.
func (f HealthStateFilter) String() string {
	switch f {
	case HealthStateFilterDefault:
		return "Default"
	case HealthStateFilterAll:
		return "All"
	}
	var parts []string
	for _, n := range healthStateFilterNames {
		if f&n.value != 0 {
			parts = append(parts, n.name)
		}
	}
	if rest := f &^ (HealthStateFilterNone | HealthStateFilterOk | HealthStateFilterWarning | HealthStateFilterError); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, ",")
}

// EntityKind identifies the kind of entity a health query or report targets.
type EntityKind string

const (
	EntityCluster     EntityKind = "Cluster"
	EntityNode        EntityKind = "Node"
	EntityApplication EntityKind = "Application"
	EntityService     EntityKind = "Service"
	EntityPartition   EntityKind = "Partition"
	EntityReplica     EntityKind = "Replica"
)

// ChildKind identifies a child collection a health query can filter.
type ChildKind string

const (
	ChildNodes                ChildKind = "Nodes"
	ChildApplications         ChildKind = "Applications"
	ChildDeployedApplications ChildKind = "DeployedApplications"
	ChildServices             ChildKind = "Services"
	ChildPartitions           ChildKind = "Partitions"
	ChildReplicas             ChildKind = "Replicas"
)

// ChildKinds returns the child collections reported for an entity kind.
func ChildKinds(kind EntityKind) []ChildKind {
	switch kind {
	case EntityCluster:
		return []ChildKind{ChildNodes, ChildApplications}
	case EntityApplication:
		return []ChildKind{ChildServices, ChildDeployedApplications}
	case EntityService:
		return []ChildKind{ChildPartitions}
	case EntityPartition:
		return []ChildKind{ChildReplicas}
	}
	return nil
}

// HealthTarget names the entity a health query or report refers to. Only
// the fields relevant to the entity kind are set.
type HealthTarget struct {
	NodeName            string `json:"NodeName,omitempty"`
	ApplicationName     string `json:"ApplicationName,omitempty"`
	ServiceName         string `json:"ServiceName,omitempty"`
	PartitionID         string `json:"PartitionId,omitempty"`
	ReplicaOrInstanceID int64  `json:"ReplicaOrInstanceId,omitempty"`
}

// HealthPolicy overrides server-side health evaluation thresholds. Nil
// fields are left to the server default.
type HealthPolicy struct {
	ConsiderWarningAsError                  *bool `json:"ConsiderWarningAsError,omitempty"`
	MaxPercentUnhealthyNodes                *int  `json:"MaxPercentUnhealthyNodes,omitempty" validate:"omitempty,min=0,max=100"`
	MaxPercentUnhealthyApplications         *int  `json:"MaxPercentUnhealthyApplications,omitempty" validate:"omitempty,min=0,max=100"`
	MaxPercentUnhealthyDeployedApplications *int  `json:"MaxPercentUnhealthyDeployedApplications,omitempty" validate:"omitempty,min=0,max=100"`
	MaxPercentUnhealthyServices             *int  `json:"MaxPercentUnhealthyServices,omitempty" validate:"omitempty,min=0,max=100"`
	MaxPercentUnhealthyPartitionsPerService *int  `json:"MaxPercentUnhealthyPartitionsPerService,omitempty" validate:"omitempty,min=0,max=100"`
	MaxPercentUnhealthyReplicasPerPartition *int  `json:"MaxPercentUnhealthyReplicasPerPartition,omitempty" validate:"omitempty,min=0,max=100"`
}

// HealthStatisticsFilter controls the statistics section of a health result.
type HealthStatisticsFilter struct {
	ExcludeHealthStatistics                  bool `json:"ExcludeHealthStatistics"`
	IncludeSystemApplicationHealthStatistics bool `json:"IncludeSystemApplicationHealthStatistics,omitempty"`
}

// HealthQuery is a fully resolved health query for one entity.
type HealthQuery struct {
	Kind             EntityKind
	Target           HealthTarget
	Policy           *HealthPolicy
	EventsFilter     *HealthStateFilter
	ChildFilters     map[ChildKind]HealthStateFilter
	StatisticsFilter *HealthStatisticsFilter
}

// HealthEvent is one health report stored by the health store.
type HealthEvent struct {
	SourceID           string      `json:"SourceId"`
	Property           string      `json:"Property"`
	HealthState        HealthState `json:"HealthState"`
	Description        string      `json:"Description,omitempty"`
	TimeToLiveInMs     string      `json:"TimeToLiveInMilliSeconds,omitempty"`
	SequenceNumber     string      `json:"SequenceNumber,omitempty"`
	RemoveWhenExpired  bool        `json:"RemoveWhenExpired"`
	IsExpired          bool        `json:"IsExpired"`
	SourceUtcTimestamp time.Time   `json:"SourceUtcTimestamp,omitempty"`
}

// ChildHealthState is the aggregated health of one child entity.
type ChildHealthState struct {
	Kind                  ChildKind   `json:"Kind"`
	Name                  string      `json:"Name"`
	AggregatedHealthState HealthState `json:"AggregatedHealthState"`
}

// HealthStateCount counts child entities of one kind per health state.
type HealthStateCount struct {
	EntityKind   string `json:"EntityKind"`
	OkCount      int64  `json:"OkCount"`
	WarningCount int64  `json:"WarningCount"`
	ErrorCount   int64  `json:"ErrorCount"`
}

// EntityHealth is the result of a health query.
type EntityHealth struct {
	Kind                  EntityKind         `json:"Kind"`
	Name                  string             `json:"Name,omitempty"`
	AggregatedHealthState HealthState        `json:"AggregatedHealthState"`
	HealthEvents          []HealthEvent      `json:"HealthEvents,omitempty"`
	Children              []ChildHealthState `json:"Children,omitempty"`
	UnhealthyEvaluations  []string           `json:"UnhealthyEvaluations,omitempty"`
	HealthStatistics      []HealthStateCount `json:"HealthStatistics,omitempty"`
}

// HealthInformation is the payload of a health report.
type HealthInformation struct {
	SourceID          string        `json:"SourceId" validate:"required"`
	Property          string        `json:"Property" validate:"required"`
	HealthState       HealthState   `json:"HealthState" validate:"required,oneof=Ok Warning Error"`
	Description       string        `json:"Description,omitempty"`
	TimeToLive        time.Duration `json:"-"`
	SequenceNumber    int64         `json:"-"`
	RemoveWhenExpired bool          `json:"RemoveWhenExpired"`
}

// Service kinds a replica health report can target.
const (
	ServiceKindStateful  = "Stateful"
	ServiceKindStateless = "Stateless"
)

// HealthReport is a health report sent to the health store for one entity.
// ServiceKind is only set for replica reports.
type HealthReport struct {
	Kind        EntityKind
	Target      HealthTarget
	ServiceKind string
	Information HealthInformation
}

// SendOptions controls how a health report is delivered.
type SendOptions struct {
	Immediate bool
}
