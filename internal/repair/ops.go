package repair

import (
	"context"
	"fmt"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/validate"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// ManualTaskPrefix prefixes the generated IDs of operator-created tasks.
const ManualTaskPrefix = "Manual/"

// nodeTargetKind is the repair target kind for node lists.
const nodeTargetKind = "Node"

// Commit reports the version a repair manager write committed.
type Commit struct {
	TaskID  string `json:"TaskId"`
	Version int64  `json:"Version"`
}

// ListParams select the repair tasks to list.
type ListParams struct {
	TaskIDPrefix string
	States       fabric.RepairTaskStateFilter
	Executor     string
}

// List emits the matching repair tasks in listing order.
func List(ctx context.Context, inv *command.Invocation, p ListParams) error {
	query := fabric.RepairTaskQuery{
		TaskIDFilter:   p.TaskIDPrefix,
		StateFilter:    p.States,
		ExecutorFilter: p.Executor,
	}

	var tasks []fabric.RepairTask
	err := inv.Call(ctx, faults.GetRepairTaskErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		tasks, err = inv.Conn.GetRepairTaskList(ctx, query, timeout)
		return err
	})
	if err != nil {
		return err
	}

	Sort(tasks)
	for _, task := range tasks {
		inv.Out.Emit(task)
	}
	return nil
}

// StartParams describe a manual node repair task.
type StartParams struct {
	TaskID      string
	Description string
	Action      fabric.NodeRepairAction
	NodeNames   []string
}

// Start creates a manual repair task acting on a set of nodes and emits
// the committed version.
func Start(ctx context.Context, inv *command.Invocation, p StartParams) error {
	if p.Action == "" {
		return faults.Usagef("--node-action is required")
	}
	if len(p.NodeNames) == 0 {
		return faults.Usagef("at least one --node is required")
	}
	nodes := mapset.NewSet[string]()
	for _, name := range p.NodeNames {
		if err := validate.NodeName(name); err != nil {
			return faults.Usagef("%v", err)
		}
		if !nodes.Add(name) {
			return faults.Usagef("node %q given more than once", name)
		}
	}

	taskID := p.TaskID
	if taskID == "" {
		taskID = ManualTaskPrefix + uuid.NewString()
	}

	task := fabric.RepairTask{
		TaskID:      taskID,
		Description: p.Description,
		State:       fabric.RepairTaskStateCreated,
		Action:      string(p.Action),
		Target:      &fabric.RepairTarget{Kind: nodeTargetKind, NodeNames: p.NodeNames},
	}

	ok, err := inv.ShouldProcess(taskID, fmt.Sprintf("Start repair task %s", p.Action))
	if err != nil || !ok {
		return err
	}

	var version int64
	err = inv.Call(ctx, faults.StartRepairTaskErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		version, err = inv.Conn.CreateRepairTask(ctx, task, timeout)
		return err
	})
	if err != nil {
		return err
	}

	inv.Out.Emit(Commit{TaskID: taskID, Version: version})
	return nil
}

// CompleteParams carry the outcome an operator records when completing a
// task. Version zero means the task's current version.
type CompleteParams struct {
	TaskID        string
	Version       int64
	ResultStatus  fabric.RepairTaskResult
	ResultCode    int64
	ResultDetails string
}

// Complete moves a repair task to Restoring with the given result. The task
// is looked up first and a missing task is reported as not found without
// any write.
func Complete(ctx context.Context, inv *command.Invocation, p CompleteParams) error {
	if p.TaskID == "" {
		return faults.Usagef("task ID is required")
	}
	if p.ResultStatus == "" {
		p.ResultStatus = fabric.RepairTaskResultSucceeded
	}

	ok, err := inv.ShouldProcess(p.TaskID, "Complete repair task")
	if err != nil || !ok {
		return err
	}

	task, err := lookup(ctx, inv, p.TaskID, faults.CompleteRepairTaskErrorID)
	if err != nil {
		return err
	}

	task.State = fabric.RepairTaskStateRestoring
	task.ResultStatus = p.ResultStatus
	task.ResultCode = p.ResultCode
	task.ResultDetails = p.ResultDetails
	if p.Version != 0 {
		task.Version = p.Version
	}

	var version int64
	err = inv.Call(ctx, faults.CompleteRepairTaskErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		version, err = inv.Conn.UpdateRepairExecutionState(ctx, task, timeout)
		return err
	})
	if err != nil {
		return err
	}

	inv.Out.Emit(Commit{TaskID: task.TaskID, Version: version})
	return nil
}

// lookup returns the task whose ID is exactly taskID. The repair manager
// filters by prefix, so the exact match is made here.
func lookup(ctx context.Context, inv *command.Invocation, taskID, errorID string) (fabric.RepairTask, error) {
	var tasks []fabric.RepairTask
	err := inv.Call(ctx, errorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		tasks, err = inv.Conn.GetRepairTaskList(ctx, fabric.RepairTaskQuery{TaskIDFilter: taskID}, timeout)
		return err
	})
	if err != nil {
		return fabric.RepairTask{}, err
	}

	for _, task := range tasks {
		if task.TaskID == taskID {
			return task, nil
		}
	}
	return fabric.RepairTask{}, &faults.NotFoundError{ErrorID: errorID, Kind: "repair task", Name: taskID}
}

// VersionParams identify a repair task at an optional version. Version zero
// skips the version check.
type VersionParams struct {
	TaskID  string
	Version int64
}

// Approve forces approval of a repair task and emits the committed version.
func Approve(ctx context.Context, inv *command.Invocation, p VersionParams) error {
	if p.TaskID == "" {
		return faults.Usagef("task ID is required")
	}

	ok, err := inv.ShouldProcess(p.TaskID, "Approve repair task")
	if err != nil || !ok {
		return err
	}

	var version int64
	err = inv.Call(ctx, faults.ApproveRepairTaskErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		version, err = inv.Conn.ForceApproveRepairTask(ctx, p.TaskID, p.Version, timeout)
		return err
	})
	if err != nil {
		return err
	}

	inv.Out.Emit(Commit{TaskID: p.TaskID, Version: version})
	return nil
}

// Stop cancels a repair task. With requestAbort set an executing task is
// asked to abort; otherwise only tasks not yet executing are cancelled.
func Stop(ctx context.Context, inv *command.Invocation, p VersionParams, requestAbort bool) error {
	if p.TaskID == "" {
		return faults.Usagef("task ID is required")
	}

	ok, err := inv.ShouldProcess(p.TaskID, "Stop repair task")
	if err != nil || !ok {
		return err
	}

	var version int64
	err = inv.Call(ctx, faults.StopRepairTaskErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		version, err = inv.Conn.CancelRepairTask(ctx, p.TaskID, p.Version, requestAbort, timeout)
		return err
	})
	if err != nil {
		return err
	}

	inv.Out.Emit(Commit{TaskID: p.TaskID, Version: version})
	return nil
}

// Remove deletes a completed repair task.
func Remove(ctx context.Context, inv *command.Invocation, p VersionParams) error {
	if p.TaskID == "" {
		return faults.Usagef("task ID is required")
	}

	ok, err := inv.ShouldProcess(p.TaskID, "Remove repair task")
	if err != nil || !ok {
		return err
	}

	err = inv.Call(ctx, faults.RemoveRepairTaskErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.DeleteRepairTask(ctx, p.TaskID, p.Version, timeout)
	})
	if err != nil {
		return err
	}

	inv.Out.Verbose("Repair task %q removed", p.TaskID)
	return nil
}
