package handlers

import (
	"context"
	"strconv"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/commands"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/health"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/spf13/cobra"
)

// filterInput reads one legacy/typed filter flag pair. Flags that were not
// given stay nil so the server default applies.
func filterInput(cmd *cobra.Command, legacyFlag, typedFlag string, legacy int64, typed string) (health.FilterInput, error) {
	in := health.FilterInput{Legacy: changedInt64(cmd, legacyFlag, legacy)}
	if cmd.Flags().Changed(typedFlag) {
		f, err := fabric.ParseHealthStateFilter(typed)
		if err != nil {
			return health.FilterInput{}, faults.Usagef("--%s: %v", typedFlag, err)
		}
		in.Typed = &f
	}
	return in, nil
}

// childFilterValues returns the flag values of a child filter pair
func childFilterValues(kind fabric.ChildKind) (int64, string) {
	h := config.Health
	switch kind {
	case fabric.ChildNodes:
		return h.NodesHealthStateFilter, h.NodesFilter
	case fabric.ChildApplications:
		return h.ApplicationsHealthStateFilter, h.ApplicationsFilter
	case fabric.ChildDeployedApplications:
		return h.DeployedApplicationsHealthStateFilter, h.DeployedApplicationsFilter
	case fabric.ChildServices:
		return h.ServicesHealthStateFilter, h.ServicesFilter
	case fabric.ChildPartitions:
		return h.PartitionsHealthStateFilter, h.PartitionsFilter
	case fabric.ChildReplicas:
		return h.ReplicasHealthStateFilter, h.ReplicasFilter
	}
	return 0, ""
}

// healthTarget builds the query target of kind from positional arguments
func healthTarget(kind fabric.EntityKind, args []string) (fabric.HealthTarget, error) {
	var target fabric.HealthTarget
	switch kind {
	case fabric.EntityNode:
		target.NodeName = args[0]
	case fabric.EntityApplication:
		target.ApplicationName = args[0]
	case fabric.EntityService:
		target.ServiceName = args[0]
	case fabric.EntityPartition:
		target.PartitionID = args[0]
	case fabric.EntityReplica:
		target.PartitionID = args[0]
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return target, faults.Usagef("invalid replica or instance ID %q", args[1])
		}
		target.ReplicaOrInstanceID = id
	}
	return target, nil
}

// healthParams collects the health query flags of a command
func healthParams(cmd *cobra.Command, kind fabric.EntityKind, args []string) (health.Params, error) {
	target, err := healthTarget(kind, args)
	if err != nil {
		return health.Params{}, err
	}

	h := config.Health
	p := health.Params{
		Kind:                                     kind,
		Target:                                   target,
		ConsiderWarningAsError:                   changedBool(cmd, "consider-warning-as-error", h.ConsiderWarningAsError),
		MaxPercentUnhealthyNodes:                 changedInt(cmd, "max-percent-unhealthy-nodes", h.MaxPercentUnhealthyNodes),
		MaxPercentUnhealthyApplications:          changedInt(cmd, "max-percent-unhealthy-applications", h.MaxPercentUnhealthyApplications),
		MaxPercentUnhealthyDeployedApplications:  changedInt(cmd, "max-percent-unhealthy-deployed-applications", h.MaxPercentUnhealthyDeployedApplications),
		MaxPercentUnhealthyServices:              changedInt(cmd, "max-percent-unhealthy-services", h.MaxPercentUnhealthyServices),
		MaxPercentUnhealthyPartitionsPerService:  changedInt(cmd, "max-percent-unhealthy-partitions-per-service", h.MaxPercentUnhealthyPartitionsPerService),
		MaxPercentUnhealthyReplicasPerPartition:  changedInt(cmd, "max-percent-unhealthy-replicas-per-partition", h.MaxPercentUnhealthyReplicasPerPartition),
		ExcludeHealthStatistics:                  h.ExcludeHealthStatistics,
		IncludeSystemApplicationHealthStatistics: h.IncludeSystemApplicationHealthStatistics,
	}

	p.Events, err = filterInput(cmd, "events-health-state-filter", "events-filter", h.EventsHealthStateFilter, h.EventsFilter)
	if err != nil {
		return health.Params{}, err
	}

	for _, child := range fabric.ChildKinds(kind) {
		legacyFlag, typedFlag := commands.ChildFilterFlags(child)
		legacy, typed := childFilterValues(child)
		in, err := filterInput(cmd, legacyFlag, typedFlag, legacy, typed)
		if err != nil {
			return health.Params{}, err
		}
		if in.Legacy == nil && in.Typed == nil {
			continue
		}
		if p.Children == nil {
			p.Children = make(map[fabric.ChildKind]health.FilterInput)
		}
		p.Children[child] = in
	}
	return p, nil
}

// HealthHandler returns the handler of the health query command for kind
func HealthHandler(kind fabric.EntityKind) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		utils.SetupLogging()

		params, err := healthParams(cmd, kind, args)
		if err != nil {
			return err
		}

		logging.Info("Fetching %s health from gateway: %s", kind, config.Global.Endpoint)
		return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
			return health.Get(ctx, inv, params)
		})
	}
}

// HandleHealthReport sends a health report for the entity named by the
// kind argument and the target flags
func HandleHealthReport(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	kind, ok := commands.ReportKinds[args[0]]
	if !ok {
		return faults.Usagef("unknown entity kind %q (valid: cluster, node, app, service, partition, replica)", args[0])
	}

	r := config.HealthReport
	state, err := fabric.ParseHealthState(r.HealthState)
	if err != nil {
		return faults.Usagef("--health-state: %v", err)
	}

	params := health.ReportParams{
		Kind: kind,
		Target: fabric.HealthTarget{
			NodeName:        r.Node,
			ApplicationName: r.Application,
			ServiceName:     r.Service,
			PartitionID:     r.PartitionID,
		},
		Information: fabric.HealthInformation{
			SourceID:          r.SourceID,
			Property:          r.Property,
			HealthState:       state,
			Description:       r.Description,
			TimeToLive:        r.TTL,
			SequenceNumber:    r.SequenceNumber,
			RemoveWhenExpired: r.RemoveWhenExpired,
		},
		Immediate:  r.Immediate,
		ReplicaID:  changedInt64(cmd, "replica-id", r.ReplicaID),
		InstanceID: changedInt64(cmd, "instance-id", r.InstanceID),
	}

	logging.Info("Sending %s health report to gateway: %s", kind, config.Global.Endpoint)
	if err := run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return health.Report(ctx, inv, params)
	}); err != nil {
		return err
	}

	logging.Success("Sent %s health report for property '%s'", kind, r.Property)
	return nil
}
