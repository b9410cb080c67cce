package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// commitResult is the repair manager's answer to a mutation.
type commitResult struct {
	Version int64 `json:"Version,string"`
}

// versionedTask addresses one repair task revision.
type versionedTask struct {
	TaskID       string `json:"TaskId"`
	Version      string `json:"Version"`
	RequestAbort *bool  `json:"RequestAbort,omitempty"`
}

func newVersionedTask(taskID string, version int64) versionedTask {
	return versionedTask{TaskID: taskID, Version: strconv.FormatInt(version, 10)}
}

// commit posts a repair mutation and returns the committed version.
func (c *RestConnection) commit(ctx context.Context, path string, body any, timeout time.Duration) (int64, error) {
	var result commitResult
	_, err := c.execute(ctx, timeout, request{
		method: http.MethodPost,
		path:   path,
		body:   body,
		result: &result,
	})
	if err != nil {
		return 0, err
	}
	return result.Version, nil
}

// GetRepairTaskList lists repair tasks matching the query.
func (c *RestConnection) GetRepairTaskList(ctx context.Context, query fabric.RepairTaskQuery, timeout time.Duration) ([]fabric.RepairTask, error) {
	q := url.Values{}
	if query.TaskIDFilter != "" {
		q.Set("TaskIdFilter", query.TaskIDFilter)
	}
	if query.StateFilter != fabric.RepairTaskStateFilterDefault {
		q.Set("StateFilter", strconv.FormatUint(uint64(query.StateFilter), 10))
	}
	if query.ExecutorFilter != "" {
		q.Set("ExecutorFilter", query.ExecutorFilter)
	}

	var tasks []fabric.RepairTask
	_, err := c.execute(ctx, timeout, request{
		method: http.MethodGet,
		path:   "/$/GetRepairTaskList",
		query:  q,
		result: &tasks,
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateRepairTask creates a repair task.
func (c *RestConnection) CreateRepairTask(ctx context.Context, task fabric.RepairTask, timeout time.Duration) (int64, error) {
	return c.commit(ctx, "/$/CreateRepairTask", task, timeout)
}

// CancelRepairTask requests cancellation of a repair task.
func (c *RestConnection) CancelRepairTask(ctx context.Context, taskID string, version int64, requestAbort bool, timeout time.Duration) (int64, error) {
	body := newVersionedTask(taskID, version)
	body.RequestAbort = &requestAbort
	return c.commit(ctx, "/$/CancelRepairTask", body, timeout)
}

// ForceApproveRepairTask approves a repair task without waiting for safety
// checks.
func (c *RestConnection) ForceApproveRepairTask(ctx context.Context, taskID string, version int64, timeout time.Duration) (int64, error) {
	return c.commit(ctx, "/$/ForceApproveRepairTask", newVersionedTask(taskID, version), timeout)
}

// DeleteRepairTask deletes a completed repair task.
func (c *RestConnection) DeleteRepairTask(ctx context.Context, taskID string, version int64, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, request{
		method: http.MethodPost,
		path:   "/$/DeleteRepairTask",
		body:   newVersionedTask(taskID, version),
	})
	return err
}

// UpdateRepairExecutionState updates the execution state of a repair task.
func (c *RestConnection) UpdateRepairExecutionState(ctx context.Context, task fabric.RepairTask, timeout time.Duration) (int64, error) {
	return c.commit(ctx, "/$/UpdateRepairExecutionState", task, timeout)
}
