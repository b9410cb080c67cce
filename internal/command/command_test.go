package command_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/testing/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationTimeout(t *testing.T) {
	inv := &command.Invocation{}
	assert.Equal(t, fabric.DefaultOperationTimeout, inv.OperationTimeout())

	inv.Timeout = 30 * time.Second
	assert.Equal(t, 30*time.Second, inv.OperationTimeout())
}

// TestCall_ThreadsContextAndTimeout tests that Call passes the invocation
// context and timeout through unchanged
func TestCall_ThreadsContextAndTimeout(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "invocation")
	inv := &command.Invocation{Conn: mock.NewConnection("10.0.0.4:19080"), Timeout: 42 * time.Second}

	var gotCtx context.Context
	var gotTimeout time.Duration
	err := inv.Call(ctx, faults.GetNodeErrorID, func(ctx context.Context, timeout time.Duration) error {
		gotCtx, gotTimeout = ctx, timeout
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "invocation", gotCtx.Value(ctxKey{}))
	assert.Equal(t, 42*time.Second, gotTimeout)
}

// TestCall_TranslatesFailure tests that an aggregate failure surfaces as a
// command error carrying the inner cause, error ID and endpoint
func TestCall_TranslatesFailure(t *testing.T) {
	inner := errors.New("FABRIC_E_INVALID_OPERATION: node is already up")
	inv := &command.Invocation{Conn: mock.NewConnection("10.0.0.4:19080")}

	err := inv.Call(context.Background(), faults.EnableNodeErrorID, func(context.Context, time.Duration) error {
		return errors.Join(inner)
	})

	var cmdErr *faults.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Same(t, inner, cmdErr.Cause)
	assert.Equal(t, faults.EnableNodeErrorID, cmdErr.ErrorID)
	assert.Equal(t, "10.0.0.4:19080", cmdErr.Endpoint)
}

func TestShouldProcess(t *testing.T) {
	tests := []struct {
		name        string
		force       bool
		whatIf      bool
		prompter    *mock.Prompter
		want        bool
		wantErr     bool
		wantPrompts int
	}{
		{name: "force skips prompt", force: true, prompter: &mock.Prompter{}, want: true},
		{name: "confirmed", prompter: &mock.Prompter{Reply: true}, want: true, wantPrompts: 1},
		{name: "declined", prompter: &mock.Prompter{Reply: false}, want: false, wantPrompts: 1},
		{name: "what-if wins over force", force: true, whatIf: true, prompter: &mock.Prompter{Reply: true}, want: false},
		{name: "prompt failure", prompter: &mock.Prompter{Err: errors.New("EOF")}, wantErr: true, wantPrompts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &mock.Sink{}
			inv := &command.Invocation{Out: sink, Prompter: tt.prompter, Force: tt.force, WhatIf: tt.whatIf}

			ok, err := inv.ShouldProcess("_Node_0", "Disable node")

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.Len(t, tt.prompter.Prompts, tt.wantPrompts)
			if tt.whatIf {
				require.Len(t, sink.Infos, 1)
				assert.Contains(t, sink.Infos[0], "What if")
			}
		})
	}
}

// TestShouldProcess_NoPrompter tests that a confirmation without a way to
// ask is a usage error rather than a silent decline
func TestShouldProcess_NoPrompter(t *testing.T) {
	inv := &command.Invocation{Out: &mock.Sink{}}

	ok, err := inv.ShouldProcess("fabric:/App", "Remove application")

	assert.False(t, ok)
	var usage *faults.UsageError
	assert.ErrorAs(t, err, &usage)
}

func TestSelectParameterSet(t *testing.T) {
	byService := command.ParameterSet{Name: "ByService", Flags: []string{"--service"}}
	byID := command.ParameterSet{Name: "ByPartitionId", Flags: []string{"--partition-id"}}

	t.Run("exactly one", func(t *testing.T) {
		byID := byID
		byID.Selected = true
		name, err := command.SelectParameterSet(byService, byID)
		require.NoError(t, err)
		assert.Equal(t, "ByPartitionId", name)
	})

	t.Run("none", func(t *testing.T) {
		_, err := command.SelectParameterSet(byService, byID)
		var usage *faults.UsageError
		require.ErrorAs(t, err, &usage)
		assert.Contains(t, usage.Message, "one of --service | --partition-id is required")
	})

	t.Run("both", func(t *testing.T) {
		a, b := byService, byID
		a.Selected, b.Selected = true, true
		_, err := command.SelectParameterSet(a, b)
		var usage *faults.UsageError
		require.ErrorAs(t, err, &usage)
		assert.Contains(t, usage.Message, "mutually exclusive")
	})
}
