package cluster_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/concave-dev/fabricctl/internal/cluster"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/testing/mock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const endpoint = "10.0.0.4:19080"

func setup(force bool, prompter *mock.Prompter) (*mock.Connection, *mock.Sink, *command.Invocation) {
	conn := mock.NewConnection(endpoint)
	sink := &mock.Sink{}
	inv := &command.Invocation{Conn: conn, Out: sink, Force: force}
	if prompter != nil {
		inv.Prompter = prompter
	}
	return conn, sink, inv
}

func TestConnect(t *testing.T) {
	conn, sink, inv := setup(false, nil)
	conn.On("GetClusterVersion", testifymock.Anything, fabric.DefaultOperationTimeout).Return("10.1.1951.9590", nil).Once()

	require.NoError(t, cluster.Connect(context.Background(), inv))
	assert.Equal(t, []any{cluster.ConnectionInfo{Endpoint: endpoint, CodeVersion: "10.1.1951.9590"}}, sink.Items)
}

func TestConnect_Failure(t *testing.T) {
	conn, _, inv := setup(false, nil)
	conn.On("GetClusterVersion", testifymock.Anything, testifymock.Anything).Return("", errors.New("connection refused")).Once()

	err := cluster.Connect(context.Background(), inv)

	var cmdErr *faults.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, faults.TestClusterConnectionErrorID, cmdErr.ErrorID)
	assert.Equal(t, endpoint, cmdErr.Endpoint)
}

func TestVersionAndManifest(t *testing.T) {
	conn, sink, inv := setup(false, nil)
	inv.Timeout = 15 * time.Second
	conn.On("GetClusterVersion", testifymock.Anything, 15*time.Second).Return("10.1", nil).Once()
	conn.On("GetClusterManifest", testifymock.Anything, 15*time.Second).Return("<ClusterManifest/>", nil).Once()

	require.NoError(t, cluster.Version(context.Background(), inv))
	require.NoError(t, cluster.GetManifest(context.Background(), inv))

	assert.Equal(t, []any{
		cluster.CodeVersion{CodeVersion: "10.1"},
		cluster.Manifest{Manifest: "<ClusterManifest/>"},
	}, sink.Items)
}

// TestEnableNode_UnwrapsAggregate tests that an aggregate wrapping an
// invalid operation error reports the inner error as the cause
func TestEnableNode_UnwrapsAggregate(t *testing.T) {
	conn, _, inv := setup(false, nil)
	inner := &fabric.GatewayError{StatusCode: 400, Code: fabric.ErrCodeInvalidOperation, Message: "node is not deactivated"}
	conn.On("ActivateNode", testifymock.Anything, "_Node_0", testifymock.Anything).Return(errors.Join(inner)).Once()

	err := cluster.EnableNode(context.Background(), inv, "_Node_0")

	var cmdErr *faults.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Same(t, inner, cmdErr.Cause)
	assert.Equal(t, faults.EnableNodeErrorID, cmdErr.ErrorID)
	assert.Equal(t, inner.Error(), err.Error())
}

func TestDisableNode(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		prompter := &mock.Prompter{Reply: true}
		conn, _, inv := setup(false, prompter)
		conn.On("DeactivateNode", testifymock.Anything, "_Node_1", fabric.DeactivationIntentRestart, testifymock.Anything).Return(nil).Once()

		require.NoError(t, cluster.DisableNode(context.Background(), inv, "_Node_1", fabric.DeactivationIntentRestart))
		conn.AssertExpectations(t)
		assert.Len(t, prompter.Prompts, 1)
	})

	t.Run("declined", func(t *testing.T) {
		conn, sink, inv := setup(false, &mock.Prompter{Reply: false})

		require.NoError(t, cluster.DisableNode(context.Background(), inv, "_Node_1", fabric.DeactivationIntentRestart))
		assert.Empty(t, conn.Calls)
		assert.Empty(t, sink.Items)
	})

	t.Run("what-if", func(t *testing.T) {
		conn, sink, inv := setup(true, nil)
		inv.WhatIf = true

		require.NoError(t, cluster.DisableNode(context.Background(), inv, "_Node_1", ""))
		assert.Empty(t, conn.Calls)
		require.Len(t, sink.Infos, 1)
		assert.Contains(t, sink.Infos[0], "intent Pause")
	})
}

func TestRemoveNodeState_Declined(t *testing.T) {
	conn, _, inv := setup(false, &mock.Prompter{Reply: false})

	require.NoError(t, cluster.RemoveNodeState(context.Background(), inv, "_Node_2"))
	assert.Empty(t, conn.Calls)
}

func TestStopNode(t *testing.T) {
	conn, sink, inv := setup(true, nil)

	var sent fabric.NodeTransition
	conn.On("StartNodeTransition", testifymock.Anything, testifymock.Anything, testifymock.Anything).
		Run(func(args testifymock.Arguments) { sent = args.Get(1).(fabric.NodeTransition) }).
		Return(nil).Once()

	err := cluster.StopNode(context.Background(), inv, cluster.TransitionParams{
		NodeName:       "_Node_3",
		NodeInstanceID: "131726425315224586",
		StopDuration:   15 * time.Minute,
	})

	require.NoError(t, err)
	assert.Equal(t, fabric.NodeTransitionStop, sent.Type)
	assert.Equal(t, 15*time.Minute, sent.StopDuration)
	_, parseErr := uuid.Parse(sent.OperationID)
	assert.NoError(t, parseErr)
	assert.Equal(t, []any{cluster.TransitionStarted{OperationID: sent.OperationID, NodeName: "_Node_3", Type: fabric.NodeTransitionStop}}, sink.Items)
}

func TestStopNode_Validation(t *testing.T) {
	tests := []struct {
		name string
		p    cluster.TransitionParams
	}{
		{name: "duration too short", p: cluster.TransitionParams{NodeName: "_Node_3", NodeInstanceID: "1", StopDuration: 599 * time.Second}},
		{name: "instance ID not numeric", p: cluster.TransitionParams{NodeName: "_Node_3", NodeInstanceID: "abc", StopDuration: time.Hour}},
		{name: "malformed operation ID", p: cluster.TransitionParams{NodeName: "_Node_3", NodeInstanceID: "1", OperationID: "op-1", StopDuration: time.Hour}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _, inv := setup(true, nil)
			err := cluster.StopNode(context.Background(), inv, tt.p)

			var usage *faults.UsageError
			require.ErrorAs(t, err, &usage)
			assert.Empty(t, conn.Calls)
		})
	}
}

func TestStartNode_KeepsOperationID(t *testing.T) {
	conn, _, inv := setup(false, nil)
	operationID := "5b0b8d0e-59a8-4f38-a3c8-2a2f4c6e7b11"
	conn.On("StartNodeTransition", testifymock.Anything, fabric.NodeTransition{
		OperationID:    operationID,
		Type:           fabric.NodeTransitionStart,
		NodeName:       "_Node_3",
		NodeInstanceID: "42",
	}, testifymock.Anything).Return(nil).Once()

	err := cluster.StartNode(context.Background(), inv, cluster.TransitionParams{
		NodeName:       "_Node_3",
		NodeInstanceID: "42",
		OperationID:    operationID,
	})

	require.NoError(t, err)
	conn.AssertExpectations(t)
}

func TestTransitionProgress(t *testing.T) {
	conn, sink, inv := setup(false, nil)
	operationID := "5b0b8d0e-59a8-4f38-a3c8-2a2f4c6e7b11"
	progress := &fabric.NodeTransitionProgress{OperationID: operationID, NodeName: "_Node_3", State: "Completed"}
	conn.On("GetNodeTransitionProgress", testifymock.Anything, "_Node_3", operationID, testifymock.Anything).Return(progress, nil).Once()

	require.NoError(t, cluster.TransitionProgress(context.Background(), inv, "_Node_3", operationID))
	assert.Equal(t, []any{progress}, sink.Items)
}

func TestRemoveApplication(t *testing.T) {
	conn, _, inv := setup(true, nil)
	conn.On("DeleteApplication", testifymock.Anything, "fabric:/Voting", true, testifymock.Anything).Return(nil).Once()

	require.NoError(t, cluster.RemoveApplication(context.Background(), inv, "fabric:/Voting", true))
	conn.AssertExpectations(t)
}

func TestRemoveService_NoPrompter(t *testing.T) {
	conn, _, inv := setup(false, nil)

	err := cluster.RemoveService(context.Background(), inv, "fabric:/Voting/Web", false)

	var usage *faults.UsageError
	require.ErrorAs(t, err, &usage)
	assert.Empty(t, conn.Calls)
}

// TestApplicationsInNetwork tests that the network listing only writes a
// verbose line
func TestApplicationsInNetwork(t *testing.T) {
	conn, sink, inv := setup(false, nil)

	require.NoError(t, cluster.ApplicationsInNetwork(context.Background(), inv, "appnet"))
	assert.Empty(t, conn.Calls)
	assert.Empty(t, sink.Items)
	require.Len(t, sink.Verboses, 1)
	assert.Contains(t, sink.Verboses[0], "appnet")
}
