package query

import (
	"context"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/paging"
	"github.com/concave-dev/fabricctl/internal/validate"
)

// NodeParams filter the node listing.
type NodeParams struct {
	NodeName     string
	StatusFilter fabric.NodeStatusFilter
}

// Nodes lists cluster nodes.
func Nodes(ctx context.Context, inv *command.Invocation, p NodeParams, opts paging.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if p.NodeName != "" {
		if err := validate.NodeName(p.NodeName); err != nil {
			return faults.Usagef("%v", err)
		}
	}

	q := fabric.NodeQuery{
		PageQuery:    fabric.PageQuery{MaxResults: opts.MaxResults},
		NodeName:     p.NodeName,
		StatusFilter: p.StatusFilter,
	}
	return command.List(ctx, inv, faults.GetNodeErrorID, opts.Policy(),
		func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[fabric.Node], error) {
			q.ContinuationToken = token
			return inv.Conn.GetNodePage(ctx, q, timeout)
		})
}

// ApplicationTypeParams filter the application type listing.
type ApplicationTypeParams struct {
	TypeName                     string
	ExcludeApplicationParameters bool
}

// ApplicationTypes lists provisioned application types.
func ApplicationTypes(ctx context.Context, inv *command.Invocation, p ApplicationTypeParams, opts paging.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	q := fabric.ApplicationTypeQuery{
		PageQuery:                    fabric.PageQuery{MaxResults: opts.MaxResults},
		TypeName:                     p.TypeName,
		ExcludeApplicationParameters: p.ExcludeApplicationParameters,
	}
	return command.List(ctx, inv, faults.GetApplicationTypeErrorID, opts.Policy(),
		func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[fabric.ApplicationType], error) {
			q.ContinuationToken = token
			return inv.Conn.GetApplicationTypePage(ctx, q, timeout)
		})
}

// ApplicationParams filter the application listing. ApplicationName and
// ApplicationTypeName are mutually exclusive.
type ApplicationParams struct {
	ApplicationName              string
	ApplicationTypeName          string
	ExcludeApplicationParameters bool
}

// Applications lists application instances.
func Applications(ctx context.Context, inv *command.Invocation, p ApplicationParams, opts paging.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if p.ApplicationName != "" && p.ApplicationTypeName != "" {
		return faults.Usagef("--name and --type are mutually exclusive")
	}
	if p.ApplicationName != "" {
		if err := validate.FabricName(p.ApplicationName, "application"); err != nil {
			return faults.Usagef("%v", err)
		}
	}

	q := fabric.ApplicationQuery{
		PageQuery:                    fabric.PageQuery{MaxResults: opts.MaxResults},
		ApplicationName:              p.ApplicationName,
		ApplicationTypeName:          p.ApplicationTypeName,
		ExcludeApplicationParameters: p.ExcludeApplicationParameters,
	}
	return command.List(ctx, inv, faults.GetApplicationErrorID, opts.Policy(),
		func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[fabric.Application], error) {
			q.ContinuationToken = token
			return inv.Conn.GetApplicationPage(ctx, q, timeout)
		})
}

// ServiceParams filter the service listing of one application.
type ServiceParams struct {
	ApplicationName string
	ServiceName     string
	ServiceTypeName string
}

// Services lists the services of an application.
func Services(ctx context.Context, inv *command.Invocation, p ServiceParams, opts paging.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := validate.FabricName(p.ApplicationName, "application"); err != nil {
		return faults.Usagef("%v", err)
	}
	if p.ServiceName != "" {
		if err := validate.FabricName(p.ServiceName, "service"); err != nil {
			return faults.Usagef("%v", err)
		}
	}

	q := fabric.ServiceQuery{
		PageQuery:       fabric.PageQuery{MaxResults: opts.MaxResults},
		ApplicationName: p.ApplicationName,
		ServiceName:     p.ServiceName,
		ServiceTypeName: p.ServiceTypeName,
	}
	return command.List(ctx, inv, faults.GetServiceErrorID, opts.Policy(),
		func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[fabric.Service], error) {
			q.ContinuationToken = token
			return inv.Conn.GetServicePage(ctx, q, timeout)
		})
}

// Parameter sets of the partition listing.
const (
	ByService     = "ByService"
	ByPartitionID = "ByPartitionId"
)

// PartitionParams select partitions either by service or by ID.
type PartitionParams struct {
	ServiceName string
	PartitionID string
}

// Partitions lists the partitions of a service, or the single partition
// with the given ID. The listing always drains.
func Partitions(ctx context.Context, inv *command.Invocation, p PartitionParams) error {
	set, err := command.SelectParameterSet(
		command.ParameterSet{Name: ByService, Flags: []string{"--service"}, Selected: p.ServiceName != ""},
		command.ParameterSet{Name: ByPartitionID, Flags: []string{"--partition-id"}, Selected: p.PartitionID != ""},
	)
	if err != nil {
		return err
	}

	q := fabric.PartitionQuery{}
	switch set {
	case ByService:
		if err := validate.FabricName(p.ServiceName, "service"); err != nil {
			return faults.Usagef("%v", err)
		}
		q.ServiceName = p.ServiceName
	case ByPartitionID:
		if err := validate.PartitionID(p.PartitionID); err != nil {
			return faults.Usagef("%v", err)
		}
		q.PartitionID = p.PartitionID
	}

	return command.List(ctx, inv, faults.GetPartitionErrorID, paging.Policy{Mode: paging.Drain},
		func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[fabric.Partition], error) {
			q.ContinuationToken = token
			return inv.Conn.GetPartitionPage(ctx, q, timeout)
		})
}

// ReplicaParams select the replicas of a partition. A zero
// ReplicaOrInstanceID lists every replica.
type ReplicaParams struct {
	PartitionID         string
	ReplicaOrInstanceID int64
}

// Replicas lists the replicas or instances of a partition. The listing
// always drains.
func Replicas(ctx context.Context, inv *command.Invocation, p ReplicaParams) error {
	if err := validate.PartitionID(p.PartitionID); err != nil {
		return faults.Usagef("%v", err)
	}
	if p.ReplicaOrInstanceID < 0 {
		return faults.Usagef("--replica-id cannot be negative")
	}

	q := fabric.ReplicaQuery{PartitionID: p.PartitionID, ReplicaOrInstanceID: p.ReplicaOrInstanceID}
	return command.List(ctx, inv, faults.GetReplicaErrorID, paging.Policy{Mode: paging.Drain},
		func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[fabric.Replica], error) {
			q.ContinuationToken = token
			return inv.Conn.GetReplicaPage(ctx, q, timeout)
		})
}
