package handlers

import (
	"context"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/cluster"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/concave-dev/fabricctl/internal/query"
	"github.com/spf13/cobra"
)

// HandleAppTypes lists provisioned application types
func HandleAppTypes(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching application types from gateway: %s", config.Global.Endpoint)

	params := query.ApplicationTypeParams{
		TypeName:                     config.App.TypeName,
		ExcludeApplicationParameters: config.App.ExcludeParameters,
	}
	return run(cmd, "application types", func(ctx context.Context, inv *command.Invocation) error {
		return query.ApplicationTypes(ctx, inv, params, pagingOptions())
	})
}

// HandleAppList lists applications
func HandleAppList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching applications from gateway: %s", config.Global.Endpoint)

	params := query.ApplicationParams{
		ApplicationName:              config.App.Name,
		ApplicationTypeName:          config.App.TypeName,
		ExcludeApplicationParameters: config.App.ExcludeParameters,
	}
	return run(cmd, "applications", func(ctx context.Context, inv *command.Invocation) error {
		return query.Applications(ctx, inv, params, pagingOptions())
	})
}

// HandleAppRemove deletes an application and all of its services
func HandleAppRemove(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	name := args[0]

	logging.Info("Removing application '%s'", name)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.RemoveApplication(ctx, inv, name, config.App.ForceRemove)
	})
}

// HandleServiceList lists the services of an application
func HandleServiceList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching services of '%s' from gateway: %s", config.Service.Application, config.Global.Endpoint)

	params := query.ServiceParams{
		ApplicationName: config.Service.Application,
		ServiceName:     config.Service.Name,
		ServiceTypeName: config.Service.TypeName,
	}
	return run(cmd, "services", func(ctx context.Context, inv *command.Invocation) error {
		return query.Services(ctx, inv, params, pagingOptions())
	})
}

// HandleServiceRemove deletes a service
func HandleServiceRemove(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	name := args[0]

	logging.Info("Removing service '%s'", name)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.RemoveService(ctx, inv, name, config.Service.ForceRemove)
	})
}

// HandlePartitionList lists the partitions of a service, or one partition
// by ID
func HandlePartitionList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching partitions from gateway: %s", config.Global.Endpoint)

	params := query.PartitionParams{
		ServiceName: config.Partition.Service,
		PartitionID: config.Partition.PartitionID,
	}
	return run(cmd, "partitions", func(ctx context.Context, inv *command.Invocation) error {
		return query.Partitions(ctx, inv, params)
	})
}

// HandleReplicaList lists the replicas or instances of a partition
func HandleReplicaList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching replicas of partition %s from gateway: %s", config.Replica.PartitionID, config.Global.Endpoint)

	params := query.ReplicaParams{
		PartitionID:         config.Replica.PartitionID,
		ReplicaOrInstanceID: config.Replica.ReplicaID,
	}
	return run(cmd, "replicas", func(ctx context.Context, inv *command.Invocation) error {
		return query.Replicas(ctx, inv, params)
	})
}
