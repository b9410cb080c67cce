package handlers

import (
	"context"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/concave-dev/fabricctl/internal/repair"
	"github.com/spf13/cobra"
)

// HandleRepairList lists repair tasks, in-progress tasks first
func HandleRepairList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	states, err := repair.ParseStateFilter(config.Repair.States)
	if err != nil {
		return err
	}

	logging.Info("Fetching repair tasks from gateway: %s", config.Global.Endpoint)
	params := repair.ListParams{
		TaskIDPrefix: config.Repair.TaskIDPrefix,
		States:       states,
		Executor:     config.Repair.Executor,
	}
	return run(cmd, "repair tasks", func(ctx context.Context, inv *command.Invocation) error {
		return repair.List(ctx, inv, params)
	})
}

// HandleRepairStart creates a manual repair task for the given nodes
func HandleRepairStart(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	params := repair.StartParams{
		TaskID:      config.Repair.TaskID,
		Description: config.Repair.Description,
		Action:      fabric.NodeRepairAction(config.Repair.NodeAction),
		NodeNames:   config.Repair.Nodes,
	}

	logging.Info("Creating %s repair task for %d node(s)", params.Action, len(params.NodeNames))
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return repair.Start(ctx, inv, params)
	})
}

// HandleRepairComplete records the result of a repair task
func HandleRepairComplete(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	result, err := fabric.ParseRepairTaskResult(config.Repair.ResultStatus)
	if err != nil {
		return faults.Usagef("--result-status: %v", err)
	}

	params := repair.CompleteParams{
		TaskID:        args[0],
		Version:       config.Repair.Version,
		ResultStatus:  result,
		ResultCode:    config.Repair.ResultCode,
		ResultDetails: config.Repair.ResultDetails,
	}

	logging.Info("Completing repair task '%s' with result %s", params.TaskID, result)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return repair.Complete(ctx, inv, params)
	})
}

// HandleRepairApprove force-approves a repair task
func HandleRepairApprove(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	params := repair.VersionParams{TaskID: args[0], Version: config.Repair.Version}

	logging.Info("Approving repair task '%s'", params.TaskID)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return repair.Approve(ctx, inv, params)
	})
}

// HandleRepairStop cancels a repair task
func HandleRepairStop(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	params := repair.VersionParams{TaskID: args[0], Version: config.Repair.Version}

	logging.Info("Cancelling repair task '%s' (abort: %t)", params.TaskID, config.Repair.RequestAbort)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return repair.Stop(ctx, inv, params, config.Repair.RequestAbort)
	})
}

// HandleRepairRemove deletes a completed repair task
func HandleRepairRemove(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	params := repair.VersionParams{TaskID: args[0], Version: config.Repair.Version}

	logging.Info("Deleting repair task '%s'", params.TaskID)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return repair.Remove(ctx, inv, params)
	})
}
