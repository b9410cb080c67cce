package chaos_test

import (
	"context"
	"testing"
	"time"

	"github.com/concave-dev/fabricctl/internal/chaos"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/paging"
	"github.com/concave-dev/fabricctl/internal/testing/mock"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func setup() (*mock.Connection, *mock.Sink, *command.Invocation) {
	conn := mock.NewConnection("10.0.0.4:19080")
	sink := &mock.Sink{}
	return conn, sink, &command.Invocation{Conn: conn, Out: sink}
}

func TestDefaultStartParams(t *testing.T) {
	params, err := chaos.DefaultStartParams().Parameters()

	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, params.TimeToRun)
	assert.Equal(t, 60*time.Second, params.MaxClusterStabilization)
	assert.Equal(t, int64(1), params.MaxConcurrentFaults)
	assert.Equal(t, 30*time.Second, params.WaitTimeBetweenIterations)
	assert.True(t, params.EnableMoveReplicaFaults)
	assert.Nil(t, params.ClusterHealthPolicy)
}

func TestParameters_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *chaos.StartParams)
		field  string
	}{
		{name: "no concurrent faults", modify: func(p *chaos.StartParams) { p.MaxConcurrentFaults = 0 }, field: "MaxConcurrentFaults"},
		{name: "zero time to run", modify: func(p *chaos.StartParams) { p.TimeToRun = 0 }, field: "TimeToRun"},
		{name: "negative wait", modify: func(p *chaos.StartParams) { p.WaitTimeBetweenFaults = -time.Second }, field: "WaitTimeBetweenFaults"},
		{name: "percentage above 100", modify: func(p *chaos.StartParams) { p.MaxPercentUnhealthyNodes = ptr(101) }, field: "MaxPercentUnhealthyNodes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := chaos.DefaultStartParams()
			tt.modify(&p)

			_, err := p.Parameters()

			var usage *faults.UsageError
			require.ErrorAs(t, err, &usage)
			assert.Contains(t, usage.Message, tt.field)
		})
	}
}

func TestStart(t *testing.T) {
	conn, _, inv := setup()
	p := chaos.DefaultStartParams()
	p.MaxPercentUnhealthyApplications = ptr(20)

	var sent fabric.ChaosParameters
	conn.On("StartChaos", testifymock.Anything, testifymock.Anything, fabric.DefaultOperationTimeout).
		Run(func(args testifymock.Arguments) { sent = args.Get(1).(fabric.ChaosParameters) }).
		Return(nil).Once()

	require.NoError(t, chaos.Start(context.Background(), inv, p))
	require.NotNil(t, sent.ClusterHealthPolicy)
	assert.Equal(t, 20, sent.ClusterHealthPolicy.MaxPercentUnhealthyApplications)
	assert.False(t, sent.ClusterHealthPolicy.ConsiderWarningAsError)
}

func TestStop_Declined(t *testing.T) {
	conn, _, inv := setup()
	inv.Prompter = &mock.Prompter{Reply: false}

	require.NoError(t, chaos.Stop(context.Background(), inv))
	assert.Empty(t, conn.Calls)
}

func TestStatus(t *testing.T) {
	conn, sink, inv := setup()
	desc := &fabric.ChaosDescription{Status: "Running", ScheduleStatus: "Stopped"}
	conn.On("GetChaos", testifymock.Anything, testifymock.Anything).Return(desc, nil).Once()

	require.NoError(t, chaos.Status(context.Background(), inv))
	assert.Equal(t, []any{desc}, sink.Items)
}

func TestEvents_SinglePage(t *testing.T) {
	conn, sink, inv := setup()
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	want := fabric.ChaosEventsQuery{PageQuery: fabric.PageQuery{MaxResults: 10}, StartTime: start}
	conn.On("GetChaosEventsPage", testifymock.Anything, want, testifymock.Anything).Return(&fabric.PagedList[fabric.ChaosEvent]{
		Items:             []fabric.ChaosEvent{{Kind: "Started", TimeStampUtc: start}},
		ContinuationToken: "c2",
	}, nil).Once()

	err := chaos.Events(context.Background(), inv, chaos.EventsParams{StartTime: start}, paging.Options{SinglePage: true, MaxResults: 10})

	require.NoError(t, err)
	assert.Len(t, sink.Items, 1)
	assert.Equal(t, []string{"ContinuationToken: c2"}, sink.Verboses)
}

func TestEvents_InvertedWindow(t *testing.T) {
	conn, _, inv := setup()
	end := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	err := chaos.Events(context.Background(), inv, chaos.EventsParams{StartTime: end.Add(time.Hour), EndTime: end}, paging.Options{})

	var usage *faults.UsageError
	require.ErrorAs(t, err, &usage)
	assert.Empty(t, conn.Calls)
}
