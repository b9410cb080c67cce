package commands

import (
	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/spf13/cobra"
)

// Node command (parent command for node operations)
var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Manage and inspect cluster nodes",
	Long: `Commands for managing and inspecting nodes in the cluster.

This command group provides operations for listing nodes, enabling and
disabling them, and starting or stopping them through the fault service.`,
}

// Node list command
var nodeLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cluster nodes",
	Example: `  # List all nodes
  fabricctl node ls

  # List nodes that are down
  fabricctl node ls --status down

  # Show one node
  fabricctl node ls --name _Node_0

  # Fetch the first page of 10 nodes
  fabricctl node ls --single-page --max-results 10`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Node enable command
var nodeEnableCmd = &cobra.Command{
	Use:   "enable <node-name>",
	Short: "Activate a deactivated node",
	Example: `  # Re-enable a node after maintenance
  fabricctl node enable _Node_0`,
	Args: exactArgs(1, "node name"),
	// RunE will be set by the main package that imports this
}

// Node disable command
var nodeDisableCmd = &cobra.Command{
	Use:   "disable <node-name>",
	Short: "Deactivate a node with an intent",
	Long: `Deactivate a node. The intent tells the cluster how far to go:
Pause keeps replicas, Restart moves primaries, RemoveData and RemoveNode
also move state off the node.`,
	Example: `  # Prepare a node for a restart
  fabricctl node disable _Node_0 --intent Restart

  # Skip the confirmation prompt
  fabricctl --force node disable _Node_0 --intent RemoveData`,
	Args: exactArgs(1, "node name"),
	// RunE will be set by the main package that imports this
}

// Node remove-state command
var nodeRemoveStateCmd = &cobra.Command{
	Use:   "remove-state <node-name>",
	Short: "Tell the cluster that a down node's state is permanently lost",
	Example: `  # Declare the state of a dead node lost
  fabricctl node remove-state _Node_3`,
	Args: exactArgs(1, "node name"),
	// RunE will be set by the main package that imports this
}

// Node start command
var nodeStartCmd = &cobra.Command{
	Use:   "start <node-name>",
	Short: "Start a node stopped through the fault service",
	Example: `  # Start a stopped node
  fabricctl node start _Node_0 --instance-id 131945371183327045`,
	Args: exactArgs(1, "node name"),
	// RunE will be set by the main package that imports this
}

// Node stop command
var nodeStopCmd = &cobra.Command{
	Use:   "stop <node-name>",
	Short: "Stop a node through the fault service",
	Long: `Stop a node for a duration, after which the cluster restarts it.

The operation is tracked by an operation ID; pass --operation-id to choose
it or let fabricctl generate one, then follow it with transition-progress.`,
	Example: `  # Stop a node for ten minutes
  fabricctl node stop _Node_0 --instance-id 131945371183327045 --duration 600`,
	Args: exactArgs(1, "node name"),
	// RunE will be set by the main package that imports this
}

// Node transition-progress command
var nodeTransitionProgressCmd = &cobra.Command{
	Use:   "transition-progress <node-name> <operation-id>",
	Short: "Show the progress of a node start or stop",
	Example: `  # Follow a stop started earlier
  fabricctl node transition-progress _Node_0 8f2b1c7e-6a0d-4e55-9d0c-2a6a3f1f0b9e`,
	Args: exactArgs(2, "node name and operation ID"),
	// RunE will be set by the main package that imports this
}

// SetupNodeCommands initializes node commands and their relationships
func SetupNodeCommands() {
	nodeCmd.AddCommand(nodeLsCmd)
	nodeCmd.AddCommand(nodeEnableCmd)
	nodeCmd.AddCommand(nodeDisableCmd)
	nodeCmd.AddCommand(nodeRemoveStateCmd)
	nodeCmd.AddCommand(nodeStartCmd)
	nodeCmd.AddCommand(nodeStopCmd)
	nodeCmd.AddCommand(nodeTransitionProgressCmd)
}

// GetNodeCommands returns the node command structures for handler assignment
func GetNodeCommands() (ls, enable, disable, removeState, start, stop, progress *cobra.Command) {
	return nodeLsCmd, nodeEnableCmd, nodeDisableCmd, nodeRemoveStateCmd,
		nodeStartCmd, nodeStopCmd, nodeTransitionProgressCmd
}

// SetupNodeFlags configures flags for node commands
func SetupNodeFlags() {
	// Add flags to node ls command
	nodeLsCmd.Flags().StringVar(&config.Node.Name, "name", "",
		"Show only the node with this name")
	nodeLsCmd.Flags().StringVar(&config.Node.StatusFilter, "status", "",
		"Filter nodes by status (default, all, up, down, enabling, disabling, disabled, unknown, removed)")
	addPagingFlags(nodeLsCmd)

	// Add flags to node disable command
	nodeDisableCmd.Flags().StringVar(&config.Node.Intent, "intent", "Pause",
		"Deactivation intent: Pause, Restart, RemoveData, RemoveNode")

	// Add flags to node start/stop commands
	for _, cmd := range []*cobra.Command{nodeStartCmd, nodeStopCmd} {
		cmd.Flags().StringVar(&config.Node.InstanceID, "instance-id", "",
			"Instance ID of the node, as shown by node ls --verbose")
		cmd.Flags().StringVar(&config.Node.OperationID, "operation-id", "",
			"Operation ID to track the transition (generated when empty)")
	}
	nodeStopCmd.Flags().IntVar(&config.Node.StopDuration, "duration", 600,
		"Seconds the node stays down before it is restarted (minimum 600)")
}
