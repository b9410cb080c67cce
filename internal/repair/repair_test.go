package repair_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/repair"
	"github.com/concave-dev/fabricctl/internal/testing/mock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func incomplete(id string, created time.Time) fabric.RepairTask {
	return fabric.RepairTask{
		TaskID:  id,
		State:   fabric.RepairTaskStateExecuting,
		History: fabric.RepairTaskHistory{CreatedUtcTimestamp: created},
	}
}

func completed(id string, created, done time.Time) fabric.RepairTask {
	return fabric.RepairTask{
		TaskID: id,
		State:  fabric.RepairTaskStateCompleted,
		History: fabric.RepairTaskHistory{
			CreatedUtcTimestamp:   created,
			CompletedUtcTimestamp: done,
		},
	}
}

func ids(tasks []fabric.RepairTask) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.TaskID)
	}
	return out
}

func newInvocation(conn *mock.Connection, prompter *mock.Prompter, force bool) (*command.Invocation, *mock.Sink) {
	sink := &mock.Sink{}
	inv := &command.Invocation{Conn: conn, Out: sink, Force: force}
	if prompter != nil {
		inv.Prompter = prompter
	}
	return inv, sink
}

// TestSort_IncompleteFirst tests the listing order: A incomplete at t1,
// B completed at t2 and C incomplete at t3 < t1 list as C, A, B
func TestSort_IncompleteFirst(t *testing.T) {
	t1 := base
	t2 := base.Add(time.Hour)
	t3 := base.Add(-time.Hour)

	tasks := []fabric.RepairTask{
		incomplete("A", t1),
		completed("B", base.Add(-2*time.Hour), t2),
		incomplete("C", t3),
	}
	repair.Sort(tasks)

	assert.Equal(t, []string{"C", "A", "B"}, ids(tasks))
}

func TestSort_CompletedByCompletionTime(t *testing.T) {
	tasks := []fabric.RepairTask{
		completed("late", base.Add(-3*time.Hour), base.Add(2*time.Hour)),
		completed("early", base, base.Add(time.Hour)),
		incomplete("open", base.Add(5*time.Hour)),
	}
	repair.Sort(tasks)

	assert.Equal(t, []string{"open", "early", "late"}, ids(tasks))
}

func TestSort_Stable(t *testing.T) {
	tasks := []fabric.RepairTask{
		incomplete("first", base),
		incomplete("second", base),
		incomplete("third", base),
	}
	repair.Sort(tasks)

	assert.Equal(t, []string{"first", "second", "third"}, ids(tasks))
}

func TestParseStateFilter(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    fabric.RepairTaskStateFilter
		wantErr bool
	}{
		{name: "empty", input: nil, want: fabric.RepairTaskStateFilterDefault},
		{name: "single", input: []string{"Completed"}, want: fabric.RepairTaskStateFilterCompleted},
		{name: "comma list", input: []string{"created,claimed"}, want: fabric.RepairTaskStateFilterCreated | fabric.RepairTaskStateFilterClaimed},
		{name: "repeated flag", input: []string{"restoring", "completed"}, want: fabric.RepairTaskStateFilterRestoring | fabric.RepairTaskStateFilterCompleted},
		{name: "aggregate", input: []string{"active"}, want: fabric.RepairTaskStateFilterActive},
		{name: "duplicate", input: []string{"created", "Created"}, wantErr: true},
		{name: "unknown", input: []string{"finished"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repair.ParseStateFilter(tt.input)
			if tt.wantErr {
				var usage *faults.UsageError
				assert.ErrorAs(t, err, &usage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_EmitsInOrder(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	inv, sink := newInvocation(conn, nil, false)

	query := fabric.RepairTaskQuery{TaskIDFilter: "Manual/", StateFilter: fabric.RepairTaskStateFilterAll}
	conn.On("GetRepairTaskList", testifymock.Anything, query, fabric.DefaultOperationTimeout).Return([]fabric.RepairTask{
		completed("Manual/b", base, base.Add(time.Minute)),
		incomplete("Manual/a", base),
	}, nil).Once()

	err := repair.List(context.Background(), inv, repair.ListParams{TaskIDPrefix: "Manual/", States: fabric.RepairTaskStateFilterAll})

	require.NoError(t, err)
	require.Len(t, sink.Items, 2)
	assert.Equal(t, "Manual/a", sink.Items[0].(fabric.RepairTask).TaskID)
	assert.Equal(t, "Manual/b", sink.Items[1].(fabric.RepairTask).TaskID)
}

func TestStart_DefaultTaskID(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	inv, sink := newInvocation(conn, nil, true)

	var created fabric.RepairTask
	conn.On("CreateRepairTask", testifymock.Anything, testifymock.Anything, testifymock.Anything).
		Run(func(args testifymock.Arguments) { created = args.Get(1).(fabric.RepairTask) }).
		Return(int64(7), nil).Once()

	err := repair.Start(context.Background(), inv, repair.StartParams{
		Action:    fabric.NodeRepairReboot,
		NodeNames: []string{"_Node_0", "_Node_1"},
	})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(created.TaskID, repair.ManualTaskPrefix))
	_, parseErr := uuid.Parse(strings.TrimPrefix(created.TaskID, repair.ManualTaskPrefix))
	assert.NoError(t, parseErr)
	assert.Equal(t, "System.Reboot", created.Action)
	assert.Equal(t, []string{"_Node_0", "_Node_1"}, created.Target.NodeNames)
	assert.Equal(t, []any{repair.Commit{TaskID: created.TaskID, Version: 7}}, sink.Items)
}

func TestStart_DuplicateNode(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	inv, _ := newInvocation(conn, nil, true)

	err := repair.Start(context.Background(), inv, repair.StartParams{
		Action:    fabric.NodeRepairReboot,
		NodeNames: []string{"_Node_0", "_Node_0"},
	})

	var usage *faults.UsageError
	require.ErrorAs(t, err, &usage)
	conn.AssertNotCalled(t, "CreateRepairTask", testifymock.Anything, testifymock.Anything, testifymock.Anything)
}

func TestComplete(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	inv, sink := newInvocation(conn, &mock.Prompter{Reply: true}, false)

	existing := incomplete("Manual/1", base)
	existing.Version = 11
	conn.On("GetRepairTaskList", testifymock.Anything, fabric.RepairTaskQuery{TaskIDFilter: "Manual/1"}, testifymock.Anything).
		Return([]fabric.RepairTask{incomplete("Manual/10", base), existing}, nil).Once()

	var updated fabric.RepairTask
	conn.On("UpdateRepairExecutionState", testifymock.Anything, testifymock.Anything, testifymock.Anything).
		Run(func(args testifymock.Arguments) { updated = args.Get(1).(fabric.RepairTask) }).
		Return(int64(12), nil).Once()

	err := repair.Complete(context.Background(), inv, repair.CompleteParams{
		TaskID:       "Manual/1",
		ResultStatus: fabric.RepairTaskResultFailed,
		ResultCode:   -3,
	})

	require.NoError(t, err)
	conn.AssertExpectations(t)
	assert.Equal(t, "Manual/1", updated.TaskID)
	assert.Equal(t, int64(11), updated.Version)
	assert.Equal(t, fabric.RepairTaskStateRestoring, updated.State)
	assert.Equal(t, fabric.RepairTaskResultFailed, updated.ResultStatus)
	assert.Equal(t, int64(-3), updated.ResultCode)
	assert.Equal(t, []any{repair.Commit{TaskID: "Manual/1", Version: 12}}, sink.Items)
}

// TestComplete_NotFound tests that a missing task is reported as not found
// and the update is never attempted
func TestComplete_NotFound(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	inv, _ := newInvocation(conn, nil, true)
	conn.On("GetRepairTaskList", testifymock.Anything, testifymock.Anything, testifymock.Anything).
		Return([]fabric.RepairTask{incomplete("Manual/10", base)}, nil).Once()

	err := repair.Complete(context.Background(), inv, repair.CompleteParams{TaskID: "Manual/1"})

	var notFound *faults.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, faults.CompleteRepairTaskErrorID, notFound.ErrorID)
	assert.Equal(t, faults.ExitNotFound, faults.ExitCode(err))
	conn.AssertNotCalled(t, "UpdateRepairExecutionState", testifymock.Anything, testifymock.Anything, testifymock.Anything)
}

// TestComplete_Declined tests that a declined prompt makes no connection
// calls and is not an error
func TestComplete_Declined(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	prompter := &mock.Prompter{Reply: false}
	inv, sink := newInvocation(conn, prompter, false)

	err := repair.Complete(context.Background(), inv, repair.CompleteParams{TaskID: "Manual/1"})

	require.NoError(t, err)
	assert.Len(t, prompter.Prompts, 1)
	assert.Empty(t, sink.Items)
	assert.Empty(t, conn.Calls)
}

func TestMutations_Declined(t *testing.T) {
	ops := map[string]func(context.Context, *command.Invocation) error{
		"approve": func(ctx context.Context, inv *command.Invocation) error {
			return repair.Approve(ctx, inv, repair.VersionParams{TaskID: "Manual/1"})
		},
		"stop": func(ctx context.Context, inv *command.Invocation) error {
			return repair.Stop(ctx, inv, repair.VersionParams{TaskID: "Manual/1"}, true)
		},
		"remove": func(ctx context.Context, inv *command.Invocation) error {
			return repair.Remove(ctx, inv, repair.VersionParams{TaskID: "Manual/1"})
		},
		"start": func(ctx context.Context, inv *command.Invocation) error {
			return repair.Start(ctx, inv, repair.StartParams{Action: fabric.NodeRepairReboot, NodeNames: []string{"_Node_0"}})
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			conn := mock.NewConnection("10.0.0.4:19080")
			inv, _ := newInvocation(conn, &mock.Prompter{Reply: false}, false)

			require.NoError(t, op(context.Background(), inv))
			assert.Empty(t, conn.Calls)
		})
	}
}

func TestStop_Failure(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	inv, _ := newInvocation(conn, nil, true)
	inner := &fabric.GatewayError{StatusCode: 409, Code: fabric.ErrCodeInvalidOperation, Message: "version mismatch"}
	conn.On("CancelRepairTask", testifymock.Anything, "Manual/1", int64(4), false, testifymock.Anything).
		Return(int64(0), errors.Join(inner)).Once()

	err := repair.Stop(context.Background(), inv, repair.VersionParams{TaskID: "Manual/1", Version: 4}, false)

	var cmdErr *faults.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, faults.StopRepairTaskErrorID, cmdErr.ErrorID)
	assert.Equal(t, "10.0.0.4:19080", cmdErr.Endpoint)
	assert.Same(t, inner, cmdErr.Cause)
}

func TestApprove(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	inv, sink := newInvocation(conn, nil, true)
	conn.On("ForceApproveRepairTask", testifymock.Anything, "Manual/1", int64(0), testifymock.Anything).Return(int64(5), nil).Once()

	require.NoError(t, repair.Approve(context.Background(), inv, repair.VersionParams{TaskID: "Manual/1"}))
	assert.Equal(t, []any{repair.Commit{TaskID: "Manual/1", Version: 5}}, sink.Items)
}

func TestRemove(t *testing.T) {
	conn := mock.NewConnection("10.0.0.4:19080")
	inv, sink := newInvocation(conn, nil, true)
	conn.On("DeleteRepairTask", testifymock.Anything, "Manual/1", int64(3), testifymock.Anything).Return(nil).Once()

	require.NoError(t, repair.Remove(context.Background(), inv, repair.VersionParams{TaskID: "Manual/1", Version: 3}))
	conn.AssertExpectations(t)
	assert.Empty(t, sink.Items)
	assert.Len(t, sink.Verboses, 1)
}
