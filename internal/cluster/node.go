package cluster

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/validate"
	"github.com/google/uuid"
)

// TransitionStarted reports an accepted node transition. The operation ID
// is used to poll its progress.
type TransitionStarted struct {
	OperationID string                    `json:"OperationId"`
	NodeName    string                    `json:"NodeName"`
	Type        fabric.NodeTransitionType `json:"NodeTransitionType"`
}

// EnableNode activates a previously deactivated node.
func EnableNode(ctx context.Context, inv *command.Invocation, nodeName string) error {
	if err := validate.NodeName(nodeName); err != nil {
		return faults.Usagef("%v", err)
	}

	err := inv.Call(ctx, faults.EnableNodeErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.ActivateNode(ctx, nodeName, timeout)
	})
	if err != nil {
		return err
	}
	inv.Out.Verbose("Node %q enabled", nodeName)
	return nil
}

// DisableNode deactivates a node with the given intent.
func DisableNode(ctx context.Context, inv *command.Invocation, nodeName string, intent fabric.DeactivationIntent) error {
	if err := validate.NodeName(nodeName); err != nil {
		return faults.Usagef("%v", err)
	}
	if intent == "" {
		intent = fabric.DeactivationIntentPause
	}

	ok, err := inv.ShouldProcess(nodeName, fmt.Sprintf("Disable node with intent %s", intent))
	if err != nil || !ok {
		return err
	}

	err = inv.Call(ctx, faults.DisableNodeErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.DeactivateNode(ctx, nodeName, intent, timeout)
	})
	if err != nil {
		return err
	}
	inv.Out.Verbose("Node %q disable requested with intent %s", nodeName, intent)
	return nil
}

// RemoveNodeState tells the cluster that the state of a permanently lost
// node is gone.
func RemoveNodeState(ctx context.Context, inv *command.Invocation, nodeName string) error {
	if err := validate.NodeName(nodeName); err != nil {
		return faults.Usagef("%v", err)
	}

	ok, err := inv.ShouldProcess(nodeName, "Remove node state")
	if err != nil || !ok {
		return err
	}

	err = inv.Call(ctx, faults.RemoveNodeStateErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.RemoveNodeState(ctx, nodeName, timeout)
	})
	if err != nil {
		return err
	}
	inv.Out.Verbose("State of node %q removed", nodeName)
	return nil
}

// TransitionParams describe a node start or stop. OperationID defaults to a
// new UUID. StopDuration only applies to stops.
type TransitionParams struct {
	NodeName       string
	NodeInstanceID string
	OperationID    string
	StopDuration   time.Duration
}

// StartNode starts a stopped node.
func StartNode(ctx context.Context, inv *command.Invocation, p TransitionParams) error {
	transition, err := newTransition(fabric.NodeTransitionStart, p)
	if err != nil {
		return err
	}
	return startTransition(ctx, inv, transition)
}

// StopNode stops a node for StopDuration, after which it restarts.
func StopNode(ctx context.Context, inv *command.Invocation, p TransitionParams) error {
	transition, err := newTransition(fabric.NodeTransitionStop, p)
	if err != nil {
		return err
	}
	if transition.StopDuration < fabric.MinNodeStopDuration {
		return faults.Usagef("--duration must be at least %d seconds", int64(fabric.MinNodeStopDuration/time.Second))
	}

	ok, err := inv.ShouldProcess(p.NodeName, fmt.Sprintf("Stop node for %s", transition.StopDuration))
	if err != nil || !ok {
		return err
	}
	return startTransition(ctx, inv, transition)
}

func newTransition(kind fabric.NodeTransitionType, p TransitionParams) (fabric.NodeTransition, error) {
	if err := validate.NodeName(p.NodeName); err != nil {
		return fabric.NodeTransition{}, faults.Usagef("%v", err)
	}
	if _, err := strconv.ParseUint(p.NodeInstanceID, 10, 64); err != nil {
		return fabric.NodeTransition{}, faults.Usagef("--instance-id must be an unsigned integer, got %q", p.NodeInstanceID)
	}

	operationID := p.OperationID
	if operationID == "" {
		operationID = uuid.NewString()
	} else if _, err := uuid.Parse(operationID); err != nil {
		return fabric.NodeTransition{}, faults.Usagef("malformed operation ID %q: %v", operationID, err)
	}

	return fabric.NodeTransition{
		OperationID:    operationID,
		Type:           kind,
		NodeName:       p.NodeName,
		NodeInstanceID: p.NodeInstanceID,
		StopDuration:   p.StopDuration,
	}, nil
}

func startTransition(ctx context.Context, inv *command.Invocation, transition fabric.NodeTransition) error {
	err := inv.Call(ctx, faults.StartNodeTransitionErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.StartNodeTransition(ctx, transition, timeout)
	})
	if err != nil {
		return err
	}

	inv.Out.Emit(TransitionStarted{
		OperationID: transition.OperationID,
		NodeName:    transition.NodeName,
		Type:        transition.Type,
	})
	return nil
}

// TransitionProgress emits the progress of a node transition operation.
func TransitionProgress(ctx context.Context, inv *command.Invocation, nodeName, operationID string) error {
	if err := validate.NodeName(nodeName); err != nil {
		return faults.Usagef("%v", err)
	}
	if _, err := uuid.Parse(operationID); err != nil {
		return faults.Usagef("malformed operation ID %q: %v", operationID, err)
	}

	var progress *fabric.NodeTransitionProgress
	err := inv.Call(ctx, faults.GetNodeTransitionProgressErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		progress, err = inv.Conn.GetNodeTransitionProgress(ctx, nodeName, operationID, timeout)
		return err
	})
	if err != nil {
		return err
	}
	inv.Out.Emit(progress)
	return nil
}
