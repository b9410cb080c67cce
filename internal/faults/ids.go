package faults

// Stable error identifiers attached to command failures. Automation branches
// on these values, so they must never be renamed.
const (
	TestClusterConnectionErrorID = "TestClusterConnectionErrorId"
	GetClusterCodeVersionErrorID = "GetClusterCodeVersionErrorId"
	GetClusterManifestErrorID    = "GetClusterManifestErrorId"

	GetNodeErrorID                   = "GetNodeErrorId"
	EnableNodeErrorID                = "EnableNodeErrorId"
	DisableNodeErrorID               = "DisableNodeErrorId"
	RemoveNodeStateErrorID           = "RemoveNodeStateErrorId"
	StartNodeTransitionErrorID       = "StartNodeTransitionCommandErrorId"
	GetNodeTransitionProgressErrorID = "GetNodeTransitionProgressCommandErrorId"
	GetApplicationTypeErrorID        = "GetApplicationTypeErrorId"
	GetApplicationErrorID            = "GetApplicationErrorId"
	RemoveApplicationInstanceErrorID = "RemoveApplicationInstanceErrorId"
	GetServiceErrorID                = "GetServiceErrorId"
	RemoveServiceErrorID             = "RemoveServiceErrorId"
	GetPartitionErrorID              = "GetPartitionErrorId"
	GetReplicaErrorID                = "GetReplicaErrorId"
	GetNetworkErrorID                = "GetNetworkErrorId"
	GetImageStoreContentErrorID      = "GetImageStoreContentErrorId"
	RemoveApplicationPackageErrorID  = "RemoveApplicationPackageErrorId"

	GetClusterHealthErrorID     = "GetClusterHealthErrorId"
	GetNodeHealthErrorID        = "GetNodeHealthErrorId"
	GetApplicationHealthErrorID = "GetApplicationHealthErrorId"
	GetServiceHealthErrorID     = "GetServiceHealthErrorId"
	GetPartitionHealthErrorID   = "GetPartitionHealthErrorId"
	GetReplicaHealthErrorID     = "GetReplicaHealthErrorId"

	SendClusterHealthReportErrorID     = "SendClusterHealthReportErrorId"
	SendNodeHealthReportErrorID        = "SendNodeHealthReportErrorId"
	SendApplicationHealthReportErrorID = "SendApplicationHealthReportErrorId"
	SendServiceHealthReportErrorID     = "SendServiceHealthReportErrorId"
	SendPartitionHealthReportErrorID   = "SendPartitionHealthReportErrorId"
	SendReplicaHealthReportErrorID     = "SendReplicaHealthReportErrorId"

	GetRepairTaskErrorID      = "GetRepairTaskErrorId"
	StartRepairTaskErrorID    = "StartRepairTaskErrorId"
	CompleteRepairTaskErrorID = "CompleteRepairTaskErrorId"
	ApproveRepairTaskErrorID  = "ApproveRepairTaskErrorId"
	StopRepairTaskErrorID     = "StopRepairTaskErrorId"
	RemoveRepairTaskErrorID   = "RemoveRepairTaskErrorId"

	StartChaosErrorID     = "StartChaosCommandErrorId"
	StopChaosErrorID      = "StopChaosCommandErrorId"
	GetChaosErrorID       = "GetChaosCommandErrorId"
	GetChaosEventsErrorID = "GetChaosEventsCommandErrorId"

	GetSecretsErrorID    = "GetSecretsErrorId"
	SetSecretsErrorID    = "SetSecretsErrorId"
	RemoveSecretsErrorID = "RemoveSecretsErrorId"
)
