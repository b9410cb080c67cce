package fabric

import (
	"context"
	"time"
)

// QueryClient covers read-only cluster queries.
type QueryClient interface {
	GetClusterVersion(ctx context.Context, timeout time.Duration) (string, error)
	GetClusterManifest(ctx context.Context, timeout time.Duration) (string, error)
	GetNodePage(ctx context.Context, query NodeQuery, timeout time.Duration) (*PagedList[Node], error)
	GetApplicationTypePage(ctx context.Context, query ApplicationTypeQuery, timeout time.Duration) (*PagedList[ApplicationType], error)
	GetApplicationPage(ctx context.Context, query ApplicationQuery, timeout time.Duration) (*PagedList[Application], error)
	GetServicePage(ctx context.Context, query ServiceQuery, timeout time.Duration) (*PagedList[Service], error)
	GetPartitionPage(ctx context.Context, query PartitionQuery, timeout time.Duration) (*PagedList[Partition], error)
	GetReplicaPage(ctx context.Context, query ReplicaQuery, timeout time.Duration) (*PagedList[Replica], error)
}

// ClusterManagementClient covers node and application lifecycle mutations.
type ClusterManagementClient interface {
	ActivateNode(ctx context.Context, nodeName string, timeout time.Duration) error
	DeactivateNode(ctx context.Context, nodeName string, intent DeactivationIntent, timeout time.Duration) error
	RemoveNodeState(ctx context.Context, nodeName string, timeout time.Duration) error
	DeleteApplication(ctx context.Context, applicationName string, forceRemove bool, timeout time.Duration) error
	DeleteService(ctx context.Context, serviceName string, forceRemove bool, timeout time.Duration) error
}

// FaultClient covers fault-injection operations that are tracked by an
// operation ID.
type FaultClient interface {
	StartNodeTransition(ctx context.Context, transition NodeTransition, timeout time.Duration) error
	GetNodeTransitionProgress(ctx context.Context, nodeName, operationID string, timeout time.Duration) (*NodeTransitionProgress, error)
}

// HealthClient covers health queries and health reporting.
type HealthClient interface {
	GetHealth(ctx context.Context, query HealthQuery, timeout time.Duration) (*EntityHealth, error)
	ReportHealth(ctx context.Context, report HealthReport, options SendOptions) error
}

// RepairClient covers repair task management. Mutations return the commit
// version assigned by the repair manager.
type RepairClient interface {
	GetRepairTaskList(ctx context.Context, query RepairTaskQuery, timeout time.Duration) ([]RepairTask, error)
	CreateRepairTask(ctx context.Context, task RepairTask, timeout time.Duration) (int64, error)
	CancelRepairTask(ctx context.Context, taskID string, version int64, requestAbort bool, timeout time.Duration) (int64, error)
	ForceApproveRepairTask(ctx context.Context, taskID string, version int64, timeout time.Duration) (int64, error)
	DeleteRepairTask(ctx context.Context, taskID string, version int64, timeout time.Duration) error
	UpdateRepairExecutionState(ctx context.Context, task RepairTask, timeout time.Duration) (int64, error)
}

// ChaosClient covers the chaos test service.
type ChaosClient interface {
	StartChaos(ctx context.Context, params ChaosParameters, timeout time.Duration) error
	StopChaos(ctx context.Context, timeout time.Duration) error
	GetChaos(ctx context.Context, timeout time.Duration) (*ChaosDescription, error)
	GetChaosEventsPage(ctx context.Context, query ChaosEventsQuery, timeout time.Duration) (*PagedList[ChaosEvent], error)
}

// SecretStoreClient covers the central secret store.
type SecretStoreClient interface {
	GetSecrets(ctx context.Context, refs []SecretReference, includeValue bool, timeout time.Duration) ([]Secret, error)
	SetSecrets(ctx context.Context, secrets []Secret, timeout time.Duration) ([]SecretReference, error)
	RemoveSecrets(ctx context.Context, refs []SecretReference, timeout time.Duration) ([]SecretReference, error)
}

// ImageStoreClient covers image store content operations keyed by relative
// store paths.
type ImageStoreClient interface {
	GetImageStorePage(ctx context.Context, query ImageStoreQuery, timeout time.Duration) (*PagedList[ImageStoreItem], error)
	DeleteImageStoreContent(ctx context.Context, path string, timeout time.Duration) error
}

// Connection is the complete cluster connection. Commands receive it
// explicitly and never mutate or close it.
type Connection interface {
	QueryClient
	ClusterManagementClient
	FaultClient
	HealthClient
	RepairClient
	ChaosClient
	SecretStoreClient
	ImageStoreClient

	// Endpoint identifies the connection in diagnostics.
	Endpoint() string
}
