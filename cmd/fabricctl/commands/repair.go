package commands

import (
	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/spf13/cobra"
)

// Repair command (parent command for repair task operations)
var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Manage repair tasks",
	Long: `Commands for managing repair tasks tracked by the repair manager.

Listings show tasks that are still in progress first, then completed tasks
ordered by completion time.`,
}

// Repair list command
var repairLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List repair tasks",
	Example: `  # List active repair tasks
  fabricctl repair ls --state active

  # List manual tasks
  fabricctl repair ls --task-id-prefix Manual/`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Repair start command
var repairStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Create a manual repair task for a set of nodes",
	Example: `  # Reboot two nodes
  fabricctl repair start --node-action System.Reboot --node _Node_0 --node _Node_1`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Repair complete command
var repairCompleteCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Record the result of a repair task and move it to Restoring",
	Example: `  # Complete a task that succeeded
  fabricctl repair complete Manual/3c3c6a5e --result-status Succeeded`,
	Args: exactArgs(1, "task ID"),
	// RunE will be set by the main package that imports this
}

// Repair approve command
var repairApproveCmd = &cobra.Command{
	Use:   "approve <task-id>",
	Short: "Force approval of a repair task",
	Args:  exactArgs(1, "task ID"),
	// RunE will be set by the main package that imports this
}

// Repair stop command
var repairStopCmd = &cobra.Command{
	Use:   "stop <task-id>",
	Short: "Cancel a repair task",
	Example: `  # Cancel a task, aborting it if it is already executing
  fabricctl repair stop Manual/3c3c6a5e --request-abort`,
	Args: exactArgs(1, "task ID"),
	// RunE will be set by the main package that imports this
}

// Repair remove command
var repairRmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a completed repair task",
	Args:  exactArgs(1, "task ID"),
	// RunE will be set by the main package that imports this
}

// SetupRepairCommands initializes repair commands
func SetupRepairCommands() {
	repairCmd.AddCommand(repairLsCmd)
	repairCmd.AddCommand(repairStartCmd)
	repairCmd.AddCommand(repairCompleteCmd)
	repairCmd.AddCommand(repairApproveCmd)
	repairCmd.AddCommand(repairStopCmd)
	repairCmd.AddCommand(repairRmCmd)
}

// GetRepairCommands returns the repair command structures for handler assignment
func GetRepairCommands() (ls, start, complete, approve, stop, rm *cobra.Command) {
	return repairLsCmd, repairStartCmd, repairCompleteCmd, repairApproveCmd, repairStopCmd, repairRmCmd
}

// SetupRepairFlags configures flags for repair commands
func SetupRepairFlags() {
	r := &config.Repair

	repairLsCmd.Flags().StringVar(&r.TaskIDPrefix, "task-id-prefix", "",
		"Show only tasks whose ID starts with this prefix")
	repairLsCmd.Flags().StringSliceVar(&r.States, "state", nil,
		"Filter by state: created, claimed, preparing, approved, executing, restoring, completed, readytoexecute, active, all")
	repairLsCmd.Flags().StringVar(&r.Executor, "executor", "",
		"Show only tasks claimed by this executor")

	repairStartCmd.Flags().StringVar(&r.TaskID, "task-id", "",
		"Task ID (defaults to Manual/<uuid>)")
	repairStartCmd.Flags().StringVar(&r.Description, "description", "",
		"Task description")
	repairStartCmd.Flags().StringVar(&r.NodeAction, "node-action", "",
		"Repair action, e.g. System.Reboot, System.ReimageOS, System.FullReimage")
	repairStartCmd.Flags().StringSliceVar(&r.Nodes, "node", nil,
		"Node to repair (repeatable)")

	repairCompleteCmd.Flags().StringVar(&r.ResultStatus, "result-status", "Succeeded",
		"Result: Succeeded, Cancelled, Interrupted, Failed, Pending")
	repairCompleteCmd.Flags().Int64Var(&r.ResultCode, "result-code", 0,
		"Numeric result code")
	repairCompleteCmd.Flags().StringVar(&r.ResultDetails, "result-details", "",
		"Free text result details")

	for _, cmd := range []*cobra.Command{repairCompleteCmd, repairApproveCmd, repairStopCmd, repairRmCmd} {
		cmd.Flags().Int64Var(&r.Version, "version", 0,
			"Expected task version (0 skips the version check)")
	}

	repairStopCmd.Flags().BoolVar(&r.RequestAbort, "request-abort", false,
		"Abort the task even if it is already executing")
}
