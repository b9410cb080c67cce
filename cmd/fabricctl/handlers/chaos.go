package handlers

import (
	"context"
	"time"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/chaos"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/spf13/cobra"
)

// chaosStartParams applies the chaos start flags given on the command line
// over the default parameters
func chaosStartParams(cmd *cobra.Command) chaos.StartParams {
	c := config.Chaos
	flags := cmd.Flags()
	p := chaos.DefaultStartParams()

	if flags.Changed("time-to-run") {
		p.TimeToRun = c.TimeToRun
	}
	if flags.Changed("max-cluster-stabilization") {
		p.MaxClusterStabilization = c.MaxClusterStabilization
	}
	if flags.Changed("max-concurrent-faults") {
		p.MaxConcurrentFaults = c.MaxConcurrentFaults
	}
	if flags.Changed("enable-move-replica-faults") {
		p.EnableMoveReplicaFaults = c.EnableMoveReplicaFaults
	}
	if flags.Changed("wait-time-between-faults") {
		p.WaitTimeBetweenFaults = c.WaitTimeBetweenFaults
	}
	if flags.Changed("wait-time-between-iterations") {
		p.WaitTimeBetweenIterations = c.WaitTimeBetweenIterations
	}

	p.ConsiderWarningAsError = changedBool(cmd, "consider-warning-as-error", c.ConsiderWarningAsError)
	p.MaxPercentUnhealthyNodes = changedInt(cmd, "max-percent-unhealthy-nodes", c.MaxPercentUnhealthyNodes)
	p.MaxPercentUnhealthyApplications = changedInt(cmd, "max-percent-unhealthy-applications", c.MaxPercentUnhealthyApplications)
	p.Context = c.Context
	return p
}

// HandleChaosStart starts a chaos run
func HandleChaosStart(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	params := chaosStartParams(cmd)

	logging.Info("Starting chaos for %s on gateway: %s", params.TimeToRun, config.Global.Endpoint)
	if err := run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return chaos.Start(ctx, inv, params)
	}); err != nil {
		return err
	}

	logging.Success("Chaos started")
	return nil
}

// HandleChaosStop stops the running chaos run
func HandleChaosStop(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Stopping chaos on gateway: %s", config.Global.Endpoint)
	return run(cmd, "", chaos.Stop)
}

// HandleChaosStatus shows the chaos status and current parameters
func HandleChaosStatus(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching chaos status from gateway: %s", config.Global.Endpoint)
	return run(cmd, "", chaos.Status)
}

// parseEventTime parses an optional RFC 3339 time flag
func parseEventTime(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, faults.Usagef("--%s: expected an RFC 3339 time such as 2026-01-02T15:04:05Z", flag)
	}
	return t, nil
}

// HandleChaosEvents lists chaos events in a time window
func HandleChaosEvents(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	start, err := parseEventTime("start-time", config.Chaos.StartTime)
	if err != nil {
		return err
	}
	end, err := parseEventTime("end-time", config.Chaos.EndTime)
	if err != nil {
		return err
	}

	logging.Info("Fetching chaos events from gateway: %s", config.Global.Endpoint)
	params := chaos.EventsParams{StartTime: start, EndTime: end}
	return run(cmd, "chaos events", func(ctx context.Context, inv *command.Invocation) error {
		return chaos.Events(ctx, inv, params, pagingOptions())
	})
}
