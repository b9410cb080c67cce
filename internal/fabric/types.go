package fabric

import (
	"fmt"
	"strings"
	"time"
)

// NodeStatusFilter restricts node queries to nodes in a given status.
type NodeStatusFilter string

const (
	NodeStatusFilterDefault   NodeStatusFilter = "default"
	NodeStatusFilterAll       NodeStatusFilter = "all"
	NodeStatusFilterUp        NodeStatusFilter = "up"
	NodeStatusFilterDown      NodeStatusFilter = "down"
	NodeStatusFilterEnabling  NodeStatusFilter = "enabling"
	NodeStatusFilterDisabling NodeStatusFilter = "disabling"
	NodeStatusFilterDisabled  NodeStatusFilter = "disabled"
	NodeStatusFilterUnknown   NodeStatusFilter = "unknown"
	NodeStatusFilterRemoved   NodeStatusFilter = "removed"
)

var nodeStatusFilters = []NodeStatusFilter{
	NodeStatusFilterDefault, NodeStatusFilterAll, NodeStatusFilterUp, NodeStatusFilterDown,
	NodeStatusFilterEnabling, NodeStatusFilterDisabling, NodeStatusFilterDisabled,
	NodeStatusFilterUnknown, NodeStatusFilterRemoved,
}

// ParseNodeStatusFilter parses a case-insensitive node status filter name.
func ParseNodeStatusFilter(s string) (NodeStatusFilter, error) {
	for _, f := range nodeStatusFilters {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown node status filter %q", s)
}

// NodeQuery selects nodes. An empty NodeName lists all nodes.
type NodeQuery struct {
	PageQuery
	NodeName     string
	StatusFilter NodeStatusFilter
}

// Node is a cluster node as reported by the node query.
type Node struct {
	Name            string      `json:"Name"`
	IPAddressOrFQDN string      `json:"IpAddressOrFQDN"`
	Type            string      `json:"Type"`
	CodeVersion     string      `json:"CodeVersion"`
	ConfigVersion   string      `json:"ConfigVersion"`
	NodeStatus      string      `json:"NodeStatus"`
	HealthState     HealthState `json:"HealthState"`
	IsSeedNode      bool        `json:"IsSeedNode"`
	UpgradeDomain   string      `json:"UpgradeDomain"`
	FaultDomain     string      `json:"FaultDomain"`
	InstanceID      string      `json:"InstanceId"`
	NodeUpAt        time.Time   `json:"NodeUpAt,omitempty"`
}

// ApplicationTypeQuery selects provisioned application types.
type ApplicationTypeQuery struct {
	PageQuery
	TypeName                     string
	ExcludeApplicationParameters bool
}

// ApplicationType is one provisioned application type version.
type ApplicationType struct {
	Name                 string            `json:"Name"`
	Version              string            `json:"Version"`
	Status               string            `json:"Status"`
	DefaultParameterList map[string]string `json:"DefaultParameterList,omitempty"`
}

// ApplicationQuery selects application instances.
type ApplicationQuery struct {
	PageQuery
	ApplicationName              string
	ApplicationTypeName          string
	ExcludeApplicationParameters bool
}

// Application is an application instance.
type Application struct {
	ID          string            `json:"Id"`
	Name        string            `json:"Name"`
	TypeName    string            `json:"TypeName"`
	TypeVersion string            `json:"TypeVersion"`
	Status      string            `json:"Status"`
	HealthState HealthState       `json:"HealthState"`
	Parameters  map[string]string `json:"Parameters,omitempty"`
}

// ServiceQuery selects services of one application.
type ServiceQuery struct {
	PageQuery
	ApplicationName string
	ServiceName     string
	ServiceTypeName string
}

// Service is a service instance.
type Service struct {
	ID                string      `json:"Id"`
	ServiceKind       string      `json:"ServiceKind"`
	Name              string      `json:"Name"`
	TypeName          string      `json:"TypeName"`
	ManifestVersion   string      `json:"ManifestVersion"`
	HasPersistedState bool        `json:"HasPersistedState,omitempty"`
	HealthState       HealthState `json:"HealthState"`
	ServiceStatus     string      `json:"ServiceStatus"`
}

// PartitionQuery selects partitions either by service name or by partition
// ID. Exactly one of the two is set.
type PartitionQuery struct {
	PageQuery
	ServiceName string
	PartitionID string
}

// PartitionInformation describes the partitioning scheme slot a partition
// occupies.
type PartitionInformation struct {
	ID                   string `json:"Id"`
	ServicePartitionKind string `json:"ServicePartitionKind"`
	LowKey               string `json:"LowKey,omitempty"`
	HighKey              string `json:"HighKey,omitempty"`
	Name                 string `json:"Name,omitempty"`
}

// Partition is a service partition.
type Partition struct {
	ServiceKind          string               `json:"ServiceKind"`
	PartitionInformation PartitionInformation `json:"PartitionInformation"`
	TargetReplicaSetSize int64                `json:"TargetReplicaSetSize,omitempty"`
	MinReplicaSetSize    int64                `json:"MinReplicaSetSize,omitempty"`
	InstanceCount        int64                `json:"InstanceCount,omitempty"`
	HealthState          HealthState          `json:"HealthState"`
	PartitionStatus      string               `json:"PartitionStatus"`
}

// ReplicaQuery selects replicas of one partition. A zero
// ReplicaOrInstanceID lists all replicas.
type ReplicaQuery struct {
	PageQuery
	PartitionID         string
	ReplicaOrInstanceID int64
}

// Replica is a stateful replica or a stateless instance.
type Replica struct {
	ServiceKind   string      `json:"ServiceKind"`
	ReplicaID     string      `json:"ReplicaId,omitempty"`
	InstanceID    string      `json:"InstanceId,omitempty"`
	ReplicaRole   string      `json:"ReplicaRole,omitempty"`
	ReplicaStatus string      `json:"ReplicaStatus"`
	HealthState   HealthState `json:"HealthState"`
	NodeName      string      `json:"NodeName"`
	Address       string      `json:"Address"`
}

// DeactivationIntent tells the cluster why a node is being disabled.
type DeactivationIntent string

const (
	DeactivationIntentPause      DeactivationIntent = "Pause"
	DeactivationIntentRestart    DeactivationIntent = "Restart"
	DeactivationIntentRemoveData DeactivationIntent = "RemoveData"
	DeactivationIntentRemoveNode DeactivationIntent = "RemoveNode"
)

// ParseDeactivationIntent parses a case-insensitive deactivation intent.
func ParseDeactivationIntent(s string) (DeactivationIntent, error) {
	for _, i := range []DeactivationIntent{
		DeactivationIntentPause, DeactivationIntentRestart,
		DeactivationIntentRemoveData, DeactivationIntentRemoveNode,
	} {
		if strings.EqualFold(s, string(i)) {
			return i, nil
		}
	}
	return "", fmt.Errorf("unknown deactivation intent %q (valid: Pause, Restart, RemoveData, RemoveNode)", s)
}

// NodeTransitionType is the direction of a node transition.
type NodeTransitionType string

const (
	NodeTransitionStart NodeTransitionType = "Start"
	NodeTransitionStop  NodeTransitionType = "Stop"
)

// MinNodeStopDuration is the shortest stop duration the fault service accepts.
const MinNodeStopDuration = 600 * time.Second

// NodeTransition starts or stops a node under a client-chosen operation ID.
type NodeTransition struct {
	OperationID    string             `json:"OperationId"`
	Type           NodeTransitionType `json:"NodeTransitionType"`
	NodeName       string             `json:"NodeName"`
	NodeInstanceID string             `json:"NodeInstanceId"`
	StopDuration   time.Duration      `json:"-"`
}

// NodeTransitionProgress reports the state of a node transition operation.
type NodeTransitionProgress struct {
	OperationID string `json:"OperationId"`
	NodeName    string `json:"NodeName"`
	State       string `json:"State"`
	Result      struct {
		ErrorCode      int64  `json:"ErrorCode"`
		NodeInstanceID string `json:"NodeInstanceId,omitempty"`
	} `json:"NodeTransitionResult"`
}
