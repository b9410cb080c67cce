package handlers

import (
	"context"
	"time"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/cluster"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/concave-dev/fabricctl/internal/query"
	"github.com/spf13/cobra"
)

// HandleNodeList lists cluster nodes, draining every page unless
// --single-page is set
func HandleNodeList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	status := fabric.NodeStatusFilterDefault
	if config.Node.StatusFilter != "" {
		parsed, err := fabric.ParseNodeStatusFilter(config.Node.StatusFilter)
		if err != nil {
			return faults.Usagef("%v", err)
		}
		status = parsed
	}

	logging.Info("Fetching nodes from gateway: %s", config.Global.Endpoint)
	params := query.NodeParams{NodeName: config.Node.Name, StatusFilter: status}
	return run(cmd, "nodes", func(ctx context.Context, inv *command.Invocation) error {
		return query.Nodes(ctx, inv, params, pagingOptions())
	})
}

// HandleNodeEnable reactivates a deactivated node
func HandleNodeEnable(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	nodeName := args[0]

	logging.Info("Enabling node '%s'", nodeName)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.EnableNode(ctx, inv, nodeName)
	})
}

// HandleNodeDisable deactivates a node with the requested intent
func HandleNodeDisable(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	nodeName := args[0]

	intent, err := fabric.ParseDeactivationIntent(config.Node.Intent)
	if err != nil {
		return faults.Usagef("%v", err)
	}

	logging.Info("Disabling node '%s' with intent %s", nodeName, intent)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.DisableNode(ctx, inv, nodeName, intent)
	})
}

// HandleNodeRemoveState tells the cluster that a node's state is
// permanently lost
func HandleNodeRemoveState(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	nodeName := args[0]

	logging.Info("Removing state of node '%s'", nodeName)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.RemoveNodeState(ctx, inv, nodeName)
	})
}

// transitionParams collects the start/stop flags for a node
func transitionParams(nodeName string) cluster.TransitionParams {
	return cluster.TransitionParams{
		NodeName:       nodeName,
		NodeInstanceID: config.Node.InstanceID,
		OperationID:    config.Node.OperationID,
		StopDuration:   time.Duration(config.Node.StopDuration) * time.Second,
	}
}

// HandleNodeStart starts a stopped node
func HandleNodeStart(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	params := transitionParams(args[0])

	logging.Info("Starting node '%s'", params.NodeName)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.StartNode(ctx, inv, params)
	})
}

// HandleNodeStop stops a node for the requested duration
func HandleNodeStop(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	params := transitionParams(args[0])

	logging.Info("Stopping node '%s' for %s", params.NodeName, params.StopDuration)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.StopNode(ctx, inv, params)
	})
}

// HandleNodeTransitionProgress shows the progress of a start or stop
// transition
func HandleNodeTransitionProgress(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	nodeName, operationID := args[0], args[1]

	logging.Info("Fetching progress of transition %s on node '%s'", operationID, nodeName)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.TransitionProgress(ctx, inv, nodeName, operationID)
	})
}
