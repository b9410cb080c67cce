package fabric

import (
	"fmt"
	"strings"
	"time"
)

// RepairTaskState is a step in the repair task lifecycle.
type RepairTaskState string

const (
	RepairTaskStateCreated   RepairTaskState = "Created"
	RepairTaskStateClaimed   RepairTaskState = "Claimed"
	RepairTaskStatePreparing RepairTaskState = "Preparing"
	RepairTaskStateApproved  RepairTaskState = "Approved"
	RepairTaskStateExecuting RepairTaskState = "Executing"
	RepairTaskStateRestoring RepairTaskState = "Restoring"
	RepairTaskStateCompleted RepairTaskState = "Completed"
)

// RepairTaskStateFilter is a set of repair task states.
type RepairTaskStateFilter uint32

const (
	RepairTaskStateFilterDefault        RepairTaskStateFilter = 0
	RepairTaskStateFilterCreated        RepairTaskStateFilter = 1
	RepairTaskStateFilterClaimed        RepairTaskStateFilter = 2
	RepairTaskStateFilterPreparing      RepairTaskStateFilter = 4
	RepairTaskStateFilterApproved       RepairTaskStateFilter = 8
	RepairTaskStateFilterExecuting      RepairTaskStateFilter = 16
	RepairTaskStateFilterReadyToExecute RepairTaskStateFilter = 31
	RepairTaskStateFilterRestoring      RepairTaskStateFilter = 32
	RepairTaskStateFilterActive         RepairTaskStateFilter = 63
	RepairTaskStateFilterCompleted      RepairTaskStateFilter = 64
	RepairTaskStateFilterAll            RepairTaskStateFilter = 127
)

// RepairTaskStateFilters maps the lower-cased filter names accepted on the
// command line to their values.
var RepairTaskStateFilters = map[string]RepairTaskStateFilter{
	"default":        RepairTaskStateFilterDefault,
	"created":        RepairTaskStateFilterCreated,
	"claimed":        RepairTaskStateFilterClaimed,
	"preparing":      RepairTaskStateFilterPreparing,
	"approved":       RepairTaskStateFilterApproved,
	"executing":      RepairTaskStateFilterExecuting,
	"readytoexecute": RepairTaskStateFilterReadyToExecute,
	"restoring":      RepairTaskStateFilterRestoring,
	"active":         RepairTaskStateFilterActive,
	"completed":      RepairTaskStateFilterCompleted,
	"all":            RepairTaskStateFilterAll,
}

// RepairTaskResult is the outcome recorded on a completed repair task.
type RepairTaskResult string

const (
	RepairTaskResultInvalid     RepairTaskResult = "Invalid"
	RepairTaskResultSucceeded   RepairTaskResult = "Succeeded"
	RepairTaskResultCancelled   RepairTaskResult = "Cancelled"
	RepairTaskResultInterrupted RepairTaskResult = "Interrupted"
	RepairTaskResultFailed      RepairTaskResult = "Failed"
	RepairTaskResultPending     RepairTaskResult = "Pending"
)

// ParseRepairTaskResult parses a case-insensitive result status. Invalid is
// rejected since it cannot be reported by an operator.
func ParseRepairTaskResult(s string) (RepairTaskResult, error) {
	for _, r := range []RepairTaskResult{
		RepairTaskResultSucceeded, RepairTaskResultCancelled, RepairTaskResultInterrupted,
		RepairTaskResultFailed, RepairTaskResultPending,
	} {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown repair result status %q (valid: Succeeded, Cancelled, Interrupted, Failed, Pending)", s)
}

// NodeRepairAction is a well-known repair action that can be requested for
// a set of nodes.
type NodeRepairAction string

const (
	NodeRepairReboot      NodeRepairAction = "System.Reboot"
	NodeRepairReimageOS   NodeRepairAction = "System.ReimageOS"
	NodeRepairFullReimage NodeRepairAction = "System.FullReimage"
)

// RepairTarget lists the nodes a repair task acts on.
type RepairTarget struct {
	Kind      string   `json:"Kind"`
	NodeNames []string `json:"NodeNames"`
}

// RepairTaskHistory records when a repair task entered each state. Zero
// times mean the state has not been reached.
type RepairTaskHistory struct {
	CreatedUtcTimestamp   time.Time `json:"CreatedUtcTimestamp,omitempty"`
	ClaimedUtcTimestamp   time.Time `json:"ClaimedUtcTimestamp,omitempty"`
	PreparingUtcTimestamp time.Time `json:"PreparingUtcTimestamp,omitempty"`
	ApprovedUtcTimestamp  time.Time `json:"ApprovedUtcTimestamp,omitempty"`
	ExecutingUtcTimestamp time.Time `json:"ExecutingUtcTimestamp,omitempty"`
	RestoringUtcTimestamp time.Time `json:"RestoringUtcTimestamp,omitempty"`
	CompletedUtcTimestamp time.Time `json:"CompletedUtcTimestamp,omitempty"`
}

// RepairTask is a unit of maintenance work tracked by the repair manager.
type RepairTask struct {
	TaskID                      string            `json:"TaskId"`
	Version                     int64             `json:"Version,string"`
	Description                 string            `json:"Description,omitempty"`
	State                       RepairTaskState   `json:"State"`
	Flags                       int64             `json:"Flags,omitempty"`
	Action                      string            `json:"Action"`
	Target                      *RepairTarget     `json:"Target,omitempty"`
	Executor                    string            `json:"Executor,omitempty"`
	ExecutorData                string            `json:"ExecutorData,omitempty"`
	ResultStatus                RepairTaskResult  `json:"ResultStatus,omitempty"`
	ResultCode                  int64             `json:"ResultCode,omitempty"`
	ResultDetails               string            `json:"ResultDetails,omitempty"`
	History                     RepairTaskHistory `json:"History"`
	PerformPreparingHealthCheck bool              `json:"PerformPreparingHealthCheck,omitempty"`
	PerformRestoringHealthCheck bool              `json:"PerformRestoringHealthCheck,omitempty"`
}

// IsCompleted reports whether the task reached its terminal state.
func (t RepairTask) IsCompleted() bool {
	return t.State == RepairTaskStateCompleted
}

// RepairTaskQuery selects repair tasks. TaskIDFilter is a prefix match.
type RepairTaskQuery struct {
	TaskIDFilter   string
	StateFilter    RepairTaskStateFilter
	ExecutorFilter string
}
