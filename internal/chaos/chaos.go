// Package chaos implements the chaos commands: starting and stopping a chaos
// run, reading its status, and listing the events it recorded.
package chaos

import (
	"context"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/paging"
	"github.com/concave-dev/fabricctl/internal/validate"
)

// StartParams are the operator inputs of a chaos run. The health policy is
// only sent when one of its fields is set.
type StartParams struct {
	TimeToRun                 time.Duration
	MaxClusterStabilization   time.Duration
	MaxConcurrentFaults       int64
	EnableMoveReplicaFaults   bool
	WaitTimeBetweenFaults     time.Duration
	WaitTimeBetweenIterations time.Duration

	ConsiderWarningAsError          *bool
	MaxPercentUnhealthyNodes        *int
	MaxPercentUnhealthyApplications *int

	Context map[string]string
}

// DefaultStartParams returns the parameters of a chaos run with every
// value at its default.
func DefaultStartParams() StartParams {
	return StartParams{
		TimeToRun:                 fabric.DefaultChaosTimeToRun,
		MaxClusterStabilization:   fabric.DefaultChaosMaxClusterStabilization,
		MaxConcurrentFaults:       fabric.DefaultChaosMaxConcurrentFaults,
		EnableMoveReplicaFaults:   true,
		WaitTimeBetweenIterations: fabric.DefaultChaosWaitTimeBetweenIter,
	}
}

// Parameters validates p and converts it to the wire parameters.
func (p StartParams) Parameters() (fabric.ChaosParameters, error) {
	params := fabric.ChaosParameters{
		TimeToRun:                 p.TimeToRun,
		MaxClusterStabilization:   p.MaxClusterStabilization,
		MaxConcurrentFaults:       p.MaxConcurrentFaults,
		EnableMoveReplicaFaults:   p.EnableMoveReplicaFaults,
		WaitTimeBetweenFaults:     p.WaitTimeBetweenFaults,
		WaitTimeBetweenIterations: p.WaitTimeBetweenIterations,
		Context:                   p.Context,
	}

	if p.ConsiderWarningAsError != nil || p.MaxPercentUnhealthyNodes != nil || p.MaxPercentUnhealthyApplications != nil {
		policy := &fabric.ChaosClusterHealthPolicy{}
		if p.ConsiderWarningAsError != nil {
			policy.ConsiderWarningAsError = *p.ConsiderWarningAsError
		}
		if p.MaxPercentUnhealthyNodes != nil {
			policy.MaxPercentUnhealthyNodes = *p.MaxPercentUnhealthyNodes
		}
		if p.MaxPercentUnhealthyApplications != nil {
			policy.MaxPercentUnhealthyApplications = *p.MaxPercentUnhealthyApplications
		}
		params.ClusterHealthPolicy = policy
	}

	if err := validate.Struct(params); err != nil {
		return fabric.ChaosParameters{}, faults.Usagef("invalid chaos parameters: %v", err)
	}
	return params, nil
}

// Start begins a chaos run.
func Start(ctx context.Context, inv *command.Invocation, p StartParams) error {
	params, err := p.Parameters()
	if err != nil {
		return err
	}

	err = inv.Call(ctx, faults.StartChaosErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.StartChaos(ctx, params, timeout)
	})
	if err != nil {
		return err
	}
	inv.Out.Verbose("Chaos started for %s", params.TimeToRun)
	return nil
}

// Stop ends the running chaos run.
func Stop(ctx context.Context, inv *command.Invocation) error {
	ok, err := inv.ShouldProcess("cluster", "Stop chaos")
	if err != nil || !ok {
		return err
	}

	err = inv.Call(ctx, faults.StopChaosErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.StopChaos(ctx, timeout)
	})
	if err != nil {
		return err
	}
	inv.Out.Verbose("Chaos stop requested")
	return nil
}

// Status emits the current chaos description.
func Status(ctx context.Context, inv *command.Invocation) error {
	var desc *fabric.ChaosDescription
	err := inv.Call(ctx, faults.GetChaosErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		desc, err = inv.Conn.GetChaos(ctx, timeout)
		return err
	})
	if err != nil {
		return err
	}
	inv.Out.Emit(desc)
	return nil
}

// EventsParams select chaos events in a time window. Zero times leave that
// end of the window open.
type EventsParams struct {
	StartTime time.Time
	EndTime   time.Time
}

// Events lists chaos events.
func Events(ctx context.Context, inv *command.Invocation, p EventsParams, opts paging.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if !p.StartTime.IsZero() && !p.EndTime.IsZero() && p.EndTime.Before(p.StartTime) {
		return faults.Usagef("--end-time must not be before --start-time")
	}

	q := fabric.ChaosEventsQuery{
		PageQuery: fabric.PageQuery{MaxResults: opts.MaxResults},
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}
	return command.List(ctx, inv, faults.GetChaosEventsErrorID, opts.Policy(),
		func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[fabric.ChaosEvent], error) {
			q.ContinuationToken = token
			return inv.Conn.GetChaosEventsPage(ctx, q, timeout)
		})
}
