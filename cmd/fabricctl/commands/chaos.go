package commands

import (
	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/spf13/cobra"
)

// Chaos command (parent command for chaos operations)
var chaosCmd = &cobra.Command{
	Use:   "chaos",
	Short: "Run chaos against the cluster",
	Long: `Commands for running chaos: randomized faults such as node restarts and
replica moves, injected while the cluster is kept within a health policy.`,
}

// Chaos start command
var chaosStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a chaos run",
	Example: `  # Run chaos for an hour with up to three concurrent faults
  fabricctl chaos start --time-to-run 1h --max-concurrent-faults 3

  # Tag the run for later analysis
  fabricctl chaos start --context run=nightly --context owner=sre`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Chaos stop command
var chaosStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running chaos run",
	Args:  cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Chaos status command
var chaosStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether chaos is running and with which parameters",
	Args:  cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Chaos events command
var chaosEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List chaos events",
	Example: `  # Events of the last day
  fabricctl chaos events --start-time 2026-10-17T00:00:00Z

  # Page through events
  fabricctl chaos events --single-page --max-results 100`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// SetupChaosCommands initializes chaos commands
func SetupChaosCommands() {
	chaosCmd.AddCommand(chaosStartCmd)
	chaosCmd.AddCommand(chaosStopCmd)
	chaosCmd.AddCommand(chaosStatusCmd)
	chaosCmd.AddCommand(chaosEventsCmd)
}

// GetChaosCommands returns the chaos command structures for handler assignment
func GetChaosCommands() (start, stop, status, events *cobra.Command) {
	return chaosStartCmd, chaosStopCmd, chaosStatusCmd, chaosEventsCmd
}

// SetupChaosFlags configures flags for chaos commands
func SetupChaosFlags() {
	c := &config.Chaos
	flags := chaosStartCmd.Flags()
	flags.DurationVar(&c.TimeToRun, "time-to-run", fabric.DefaultChaosTimeToRun,
		"How long chaos runs before stopping on its own")
	flags.DurationVar(&c.MaxClusterStabilization, "max-cluster-stabilization", fabric.DefaultChaosMaxClusterStabilization,
		"How long to wait for the cluster to become healthy between iterations")
	flags.Int64Var(&c.MaxConcurrentFaults, "max-concurrent-faults", fabric.DefaultChaosMaxConcurrentFaults,
		"Maximum number of faults injected per iteration")
	flags.BoolVar(&c.EnableMoveReplicaFaults, "enable-move-replica-faults", true,
		"Include primary and secondary replica moves")
	flags.DurationVar(&c.WaitTimeBetweenFaults, "wait-time-between-faults", 0,
		"Pause between consecutive faults of an iteration")
	flags.DurationVar(&c.WaitTimeBetweenIterations, "wait-time-between-iterations", fabric.DefaultChaosWaitTimeBetweenIter,
		"Pause between iterations")
	flags.BoolVar(&c.ConsiderWarningAsError, "consider-warning-as-error", false,
		"Treat warnings as errors when evaluating cluster health")
	flags.IntVar(&c.MaxPercentUnhealthyNodes, "max-percent-unhealthy-nodes", 0,
		"Maximum percentage of unhealthy nodes tolerated (0-100)")
	flags.IntVar(&c.MaxPercentUnhealthyApplications, "max-percent-unhealthy-applications", 0,
		"Maximum percentage of unhealthy applications tolerated (0-100)")
	flags.StringToStringVar(&c.Context, "context", nil,
		"Key=value pairs recorded with the run (repeatable)")

	chaosEventsCmd.Flags().StringVar(&c.StartTime, "start-time", "",
		"Start of the event window (RFC 3339)")
	chaosEventsCmd.Flags().StringVar(&c.EndTime, "end-time", "",
		"End of the event window (RFC 3339)")
	addPagingFlags(chaosEventsCmd)
}
