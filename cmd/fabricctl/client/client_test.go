package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/testing/gateway"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 30 * time.Second

func newTestConnection(t *testing.T) (*RestConnection, *gateway.Gateway) {
	t.Helper()
	gw := gateway.New(t)
	return NewRestConnection(Options{Endpoint: gw.Endpoint(), Timeout: testTimeout}), gw
}

// dropConnection closes the client connection without writing a response.
func dropConnection(c *gin.Context) {
	conn, _, err := c.Writer.Hijack()
	if err == nil {
		conn.Close()
	}
}

func decodeBody(t *testing.T, req gateway.Request) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(req.Body, &body))
	return body
}

func TestEntityID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"application", "fabric:/Voting", "Voting"},
		{"service", "fabric:/Voting/Web", "Voting~Web"},
		{"without scheme", "Voting/Web", "Voting~Web"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entityID(tt.in))
		})
	}
}

func TestGetNodePage_List(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/Nodes", gateway.Respond(http.StatusOK, gin.H{
		"ContinuationToken": "N2",
		"Items":             []gin.H{{"Name": "N1", "NodeStatus": "Up"}},
	}))

	page, err := conn.GetNodePage(context.Background(), fabric.NodeQuery{
		StatusFilter: fabric.NodeStatusFilterUp,
		PageQuery:    fabric.PageQuery{ContinuationToken: "N1", MaxResults: 1},
	}, testTimeout)
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "N1", page.Items[0].Name)
	assert.Equal(t, "N2", page.ContinuationToken)

	req := gw.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "6.0", req.Query.Get("api-version"))
	assert.Equal(t, "30", req.Query.Get("timeout"))
	assert.Equal(t, "up", req.Query.Get("NodeStatusFilter"))
	assert.Equal(t, "N1", req.Query.Get("ContinuationToken"))
	assert.Equal(t, "1", req.Query.Get("MaxResults"))
}

func TestGetNodePage_SingleNodeNoContent(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/Nodes/:nodeName", gateway.NoContent)

	page, err := conn.GetNodePage(context.Background(), fabric.NodeQuery{NodeName: "N9"}, testTimeout)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore())
	assert.Equal(t, "/Nodes/N9", gw.LastRequest(t).Path)
}

func TestGetServicePage_EncodesEntityIDs(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/Applications/:applicationId/$/GetServices/:serviceId", gateway.Respond(http.StatusOK, gin.H{
		"Name": "fabric:/Voting/Web",
	}))

	page, err := conn.GetServicePage(context.Background(), fabric.ServiceQuery{
		ApplicationName: "fabric:/Voting",
		ServiceName:     "fabric:/Voting/Web",
	}, testTimeout)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "/Applications/Voting/$/GetServices/Voting~Web", gw.LastRequest(t).Path)
}

func TestExecute_ErrorEnvelope(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.POST("/Nodes/:nodeName/$/Activate", func(c *gin.Context) {
		gateway.Fail(c, http.StatusNotFound, fabric.ErrCodeNodeNotFound, "node N9 not found")
	})

	err := conn.ActivateNode(context.Background(), "N9", testTimeout)

	var gwErr *fabric.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusNotFound, gwErr.StatusCode)
	assert.Equal(t, fabric.ErrCodeNodeNotFound, gwErr.Code)
	assert.Equal(t, "node N9 not found", gwErr.Message)
}

func TestExecute_PlainErrorBody(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/$/GetClusterVersion", func(c *gin.Context) {
		c.String(http.StatusServiceUnavailable, "gateway starting\n")
	})

	_, err := conn.GetClusterVersion(context.Background(), testTimeout)

	var gwErr *fabric.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusServiceUnavailable, gwErr.StatusCode)
	assert.Empty(t, gwErr.Code)
	assert.Equal(t, "gateway starting", gwErr.Message)
}

func TestExecute_ConnectionError(t *testing.T) {
	conn := NewRestConnection(Options{Endpoint: "127.0.0.1:1", Timeout: time.Second})

	_, err := conn.GetClusterVersion(context.Background(), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to API server at http://127.0.0.1:1")
}

func TestDeactivateNode_SendsIntent(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.POST("/Nodes/:nodeName/$/Deactivate", gateway.Respond(http.StatusOK, nil))

	require.NoError(t, conn.DeactivateNode(context.Background(), "N1", fabric.DeactivationIntentRestart, testTimeout))
	assert.Equal(t, map[string]any{"DeactivationIntent": "Restart"}, decodeBody(t, gw.LastRequest(t)))
}

func TestDeleteApplication_ForceRemove(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.POST("/Applications/:applicationId/$/Delete", gateway.Respond(http.StatusOK, nil))

	require.NoError(t, conn.DeleteApplication(context.Background(), "fabric:/Voting", true, testTimeout))
	req := gw.LastRequest(t)
	assert.Equal(t, "/Applications/Voting/$/Delete", req.Path)
	assert.Equal(t, "true", req.Query.Get("ForceRemove"))

	require.NoError(t, conn.DeleteApplication(context.Background(), "fabric:/Voting", false, testTimeout))
	assert.False(t, gw.LastRequest(t).Query.Has("ForceRemove"))
}

func TestStartNodeTransition_Stop(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.POST("/Faults/Nodes/:nodeName/$/StartTransition", gateway.Respond(http.StatusOK, nil))

	err := conn.StartNodeTransition(context.Background(), fabric.NodeTransition{
		OperationID:    "op-1",
		Type:           fabric.NodeTransitionStop,
		NodeName:       "N1",
		NodeInstanceID: "132",
		StopDuration:   10 * time.Minute,
	}, testTimeout)
	require.NoError(t, err)

	q := gw.LastRequest(t).Query
	assert.Equal(t, "op-1", q.Get("OperationId"))
	assert.Equal(t, "Stop", q.Get("NodeTransitionType"))
	assert.Equal(t, "132", q.Get("NodeInstanceId"))
	assert.Equal(t, "600", q.Get("StopDurationInSeconds"))
}

func TestGetNodeTransitionProgress(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/Faults/Nodes/:nodeName/$/GetTransitionProgress", gateway.Respond(http.StatusOK, gin.H{
		"State": "Completed",
		"NodeTransitionResult": gin.H{
			"ErrorCode":  0,
			"NodeResult": gin.H{"NodeName": "N1", "NodeInstanceId": "132"},
		},
	}))

	progress, err := conn.GetNodeTransitionProgress(context.Background(), "N1", "op-1", testTimeout)
	require.NoError(t, err)
	assert.Equal(t, "Completed", progress.State)
	assert.Equal(t, "op-1", progress.OperationID)
	assert.Equal(t, "132", progress.Result.NodeInstanceID)
	assert.Equal(t, "op-1", gw.LastRequest(t).Query.Get("OperationId"))
}

func TestGetHealth_FiltersAsQuery(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/Nodes/:nodeName/$/GetHealth", gateway.Respond(http.StatusOK, gin.H{
		"AggregatedHealthState": "Ok",
	}))

	events := fabric.HealthStateFilterError
	h, err := conn.GetHealth(context.Background(), fabric.HealthQuery{
		Kind:         fabric.EntityNode,
		Target:       fabric.HealthTarget{NodeName: "N1"},
		EventsFilter: &events,
	}, testTimeout)
	require.NoError(t, err)
	assert.Equal(t, fabric.HealthStateOk, h.AggregatedHealthState)
	assert.Equal(t, "N1", h.Name)

	req := gw.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "8", req.Query.Get("EventsHealthStateFilter"))
	assert.False(t, req.Query.Has("ExcludeHealthStatistics"))
}

func TestGetHealth_ClusterWithPolicy(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.POST("/$/GetClusterHealth", gateway.Respond(http.StatusOK, gin.H{
		"AggregatedHealthState": "Warning",
		"HealthEvents":          []gin.H{{"SourceId": "System.FM", "Property": "State", "HealthState": "Ok"}},
		"UnhealthyEvaluations":  []gin.H{{"HealthEvaluation": gin.H{"Description": "node N1 is in Warning"}}},
		"NodeHealthStates":      []gin.H{{"NodeName": "N1", "AggregatedHealthState": "Warning"}},
		"ApplicationHealthStates": []gin.H{
			{"Name": "fabric:/System", "AggregatedHealthState": "Ok"},
		},
		"HealthStatistics": gin.H{"HealthStateCountList": []gin.H{
			{"EntityKind": "Node", "HealthStateCount": gin.H{"OkCount": 4, "WarningCount": 1, "ErrorCount": 0}},
		}},
	}))

	warnAsError := true
	h, err := conn.GetHealth(context.Background(), fabric.HealthQuery{
		Kind:             fabric.EntityCluster,
		Policy:           &fabric.HealthPolicy{ConsiderWarningAsError: &warnAsError},
		ChildFilters:     map[fabric.ChildKind]fabric.HealthStateFilter{fabric.ChildNodes: fabric.HealthStateFilterAll},
		StatisticsFilter: &fabric.HealthStatisticsFilter{IncludeSystemApplicationHealthStatistics: true},
	}, testTimeout)
	require.NoError(t, err)

	assert.Equal(t, fabric.HealthStateWarning, h.AggregatedHealthState)
	assert.Equal(t, []string{"node N1 is in Warning"}, h.UnhealthyEvaluations)
	assert.Equal(t, []fabric.ChildHealthState{
		{Kind: fabric.ChildNodes, Name: "N1", AggregatedHealthState: fabric.HealthStateWarning},
		{Kind: fabric.ChildApplications, Name: "fabric:/System", AggregatedHealthState: fabric.HealthStateOk},
	}, h.Children)
	assert.Equal(t, []fabric.HealthStateCount{
		{EntityKind: "Node", OkCount: 4, WarningCount: 1},
	}, h.HealthStatistics)
	require.Len(t, h.HealthEvents, 1)
	assert.Equal(t, "System.FM", h.HealthEvents[0].SourceID)

	req := gw.LastRequest(t)
	assert.Equal(t, "65535", req.Query.Get("NodesHealthStateFilter"))
	assert.Equal(t, "false", req.Query.Get("ExcludeHealthStatistics"))
	assert.Equal(t, "true", req.Query.Get("IncludeSystemApplicationHealthStatistics"))
	assert.Equal(t, map[string]any{
		"ClusterHealthPolicy": map[string]any{"ConsiderWarningAsError": true},
	}, decodeBody(t, req))
}

func TestReportHealth_Replica(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.POST("/Partitions/:partitionId/$/GetReplicas/:replicaId/$/ReportHealth", gateway.Respond(http.StatusOK, nil))

	err := conn.ReportHealth(context.Background(), fabric.HealthReport{
		Kind:        fabric.EntityReplica,
		Target:      fabric.HealthTarget{PartitionID: "p1", ReplicaOrInstanceID: 42},
		ServiceKind: fabric.ServiceKindStateful,
		Information: fabric.HealthInformation{
			SourceID:       "watchdog",
			Property:       "Disk",
			HealthState:    fabric.HealthStateWarning,
			TimeToLive:     90 * time.Second,
			SequenceNumber: 7,
		},
	}, fabric.SendOptions{Immediate: true})
	require.NoError(t, err)

	req := gw.LastRequest(t)
	assert.Equal(t, "/Partitions/p1/$/GetReplicas/42/$/ReportHealth", req.Path)
	assert.Equal(t, "Stateful", req.Query.Get("ServiceKind"))
	assert.Equal(t, "true", req.Query.Get("Immediate"))
	assert.Equal(t, map[string]any{
		"SourceId":                 "watchdog",
		"Property":                 "Disk",
		"HealthState":              "Warning",
		"TimeToLiveInMilliSeconds": "PT90S",
		"SequenceNumber":           "7",
		"RemoveWhenExpired":        false,
	}, decodeBody(t, req))
}

func TestRepairTasks(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/$/GetRepairTaskList", gateway.Respond(http.StatusOK, []gin.H{
		{"TaskId": "Manual/1", "Version": "3", "State": "Executing", "Action": "System.Reboot"},
	}))
	gw.Engine.POST("/$/CancelRepairTask", gateway.Respond(http.StatusOK, gin.H{"Version": "4"}))

	tasks, err := conn.GetRepairTaskList(context.Background(), fabric.RepairTaskQuery{
		TaskIDFilter: "Manual/",
		StateFilter:  fabric.RepairTaskStateFilterActive,
	}, testTimeout)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(3), tasks[0].Version)

	q := gw.LastRequest(t).Query
	assert.Equal(t, "Manual/", q.Get("TaskIdFilter"))
	assert.Equal(t, "63", q.Get("StateFilter"))
	assert.False(t, q.Has("ExecutorFilter"))

	version, err := conn.CancelRepairTask(context.Background(), "Manual/1", 3, true, testTimeout)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)
	assert.Equal(t, map[string]any{
		"TaskId":       "Manual/1",
		"Version":      "3",
		"RequestAbort": true,
	}, decodeBody(t, gw.LastRequest(t)))
}

func TestCreateRepairTask_NotResentAfterDroppedConnection(t *testing.T) {
	gw := gateway.New(t)
	conn := NewRestConnection(Options{Endpoint: gw.Endpoint(), Timeout: testTimeout, Retries: 3})
	gw.Engine.POST("/$/CreateRepairTask", dropConnection)

	_, err := conn.CreateRepairTask(context.Background(), fabric.RepairTask{
		TaskID: "Manual/1",
		Action: "System.Reboot",
	}, testTimeout)
	require.Error(t, err)
	assert.Len(t, gw.Requests(), 1)
}

func TestGetRepairTaskList_RetriedAfterDroppedConnection(t *testing.T) {
	gw := gateway.New(t)
	conn := NewRestConnection(Options{Endpoint: gw.Endpoint(), Timeout: testTimeout, Retries: 3})

	var calls atomic.Int32
	gw.Engine.GET("/$/GetRepairTaskList", func(c *gin.Context) {
		if calls.Add(1) == 1 {
			dropConnection(c)
			return
		}
		c.JSON(http.StatusOK, []gin.H{{"TaskId": "Manual/1", "Version": "3"}})
	})

	tasks, err := conn.GetRepairTaskList(context.Background(), fabric.RepairTaskQuery{}, testTimeout)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Len(t, gw.Requests(), 2)
}

func TestRetryable(t *testing.T) {
	get := &resty.Response{Request: &resty.Request{Method: http.MethodGet}}
	post := &resty.Response{Request: &resty.Request{Method: http.MethodPost}}
	refused := errors.New("connection refused")

	assert.True(t, retryable(get, refused))
	assert.False(t, retryable(post, refused))
	assert.False(t, retryable(get, nil))
	assert.False(t, retryable(get, context.Canceled))
	assert.False(t, retryable(get, context.DeadlineExceeded))
	assert.False(t, retryable(get, &url.Error{Op: "Get", URL: "http://gw", Err: timeoutError{}}))
	assert.False(t, retryable(nil, refused))
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestTicks(t *testing.T) {
	assert.Equal(t, "621355968000000000", ticks(time.Unix(0, 0)))
	assert.Equal(t, "621355968010000000", ticks(time.Unix(1, 0)))
}

func TestStartChaos_WireParameters(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.POST("/Tools/Chaos/$/Start", gateway.Respond(http.StatusOK, nil))

	err := conn.StartChaos(context.Background(), fabric.ChaosParameters{
		TimeToRun:                 time.Hour,
		MaxClusterStabilization:   time.Minute,
		MaxConcurrentFaults:       2,
		WaitTimeBetweenIterations: 30 * time.Second,
		Context:                   map[string]string{"run": "nightly"},
	}, testTimeout)
	require.NoError(t, err)

	req := gw.LastRequest(t)
	assert.Equal(t, "6.2", req.Query.Get("api-version"))
	params := decodeBody(t, req)["ChaosParameters"].(map[string]any)
	assert.Equal(t, "3600", params["TimeToRunInSeconds"])
	assert.Equal(t, float64(60), params["MaxClusterStabilizationTimeoutInSeconds"])
	assert.Equal(t, float64(2), params["MaxConcurrentFaults"])
	assert.Equal(t, float64(30), params["WaitTimeBetweenIterationsInSeconds"])
	assert.Equal(t, map[string]any{"Map": map[string]any{"run": "nightly"}}, params["Context"])
	assert.NotContains(t, params, "ClusterHealthPolicy")
}

func TestGetChaos(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/Tools/Chaos", gateway.Respond(http.StatusOK, gin.H{
		"Status":         "Running",
		"ScheduleStatus": "Stopped",
		"ChaosParameters": gin.H{
			"TimeToRunInSeconds":  "600",
			"MaxConcurrentFaults": 1,
		},
	}))

	desc, err := conn.GetChaos(context.Background(), testTimeout)
	require.NoError(t, err)
	assert.Equal(t, "Running", desc.Status)
	require.NotNil(t, desc.ChaosParameters)
	assert.Equal(t, 10*time.Minute, desc.ChaosParameters.TimeToRun)
	assert.Equal(t, int64(1), desc.ChaosParameters.MaxConcurrentFaults)
}

func TestGetChaosEventsPage(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/Tools/Chaos/Events", gateway.Respond(http.StatusOK, gin.H{
		"ContinuationToken": "next",
		"History": []gin.H{
			{"ChaosEvent": gin.H{"Kind": "Started", "TimeStampUtc": "2026-01-02T03:04:05Z"}},
			{"ChaosEvent": gin.H{"Kind": "ExecutingFaults", "TimeStampUtc": "2026-01-02T03:05:00Z", "Faults": []string{"RestartNode N1"}}},
		},
	}))

	start := time.Unix(0, 0)
	page, err := conn.GetChaosEventsPage(context.Background(), fabric.ChaosEventsQuery{StartTime: start}, testTimeout)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Started", page.Items[0].Kind)
	assert.Equal(t, []string{"RestartNode N1"}, page.Items[1].Faults)
	assert.Equal(t, "next", page.ContinuationToken)

	q := gw.LastRequest(t).Query
	assert.Equal(t, "621355968000000000", q.Get("StartTimeUtc"))
	assert.False(t, q.Has("EndTimeUtc"))

	_, err = conn.GetChaosEventsPage(context.Background(), fabric.ChaosEventsQuery{
		StartTime: start,
		PageQuery: fabric.PageQuery{ContinuationToken: "next"},
	}, testTimeout)
	require.NoError(t, err)
	q = gw.LastRequest(t).Query
	assert.Equal(t, "next", q.Get("ContinuationToken"))
	assert.False(t, q.Has("StartTimeUtc"))
}

func TestGetSecrets_ExpandsVersions(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/Resources/Secrets/:secretName/values", gateway.Respond(http.StatusOK, gin.H{
		"Items": []gin.H{{"name": "v1"}, {"name": "v2"}},
	}))
	gw.Engine.POST("/Resources/Secrets/:secretName/values/:version/list_value", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"value": "value-" + c.Param("version")})
	})

	secrets, err := conn.GetSecrets(context.Background(), []fabric.SecretReference{{Name: "db"}}, true, testTimeout)
	require.NoError(t, err)
	assert.Equal(t, []fabric.Secret{
		{SecretReference: fabric.SecretReference{Name: "db", Version: "v1"}, Value: "value-v1"},
		{SecretReference: fabric.SecretReference{Name: "db", Version: "v2"}, Value: "value-v2"},
	}, secrets)
	assert.Equal(t, "6.4-preview", gw.LastRequest(t).Query.Get("api-version"))
}

func TestSetAndRemoveSecrets(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.PUT("/Resources/Secrets/:secretName/values/:version", gateway.Respond(http.StatusOK, nil))
	gw.Engine.DELETE("/Resources/Secrets/:secretName", gateway.Respond(http.StatusOK, nil))

	ref := fabric.SecretReference{Name: "db", Version: "v1"}
	stored, err := conn.SetSecrets(context.Background(), []fabric.Secret{{SecretReference: ref, Value: "s3cret"}}, testTimeout)
	require.NoError(t, err)
	assert.Equal(t, []fabric.SecretReference{ref}, stored)
	assert.Equal(t, map[string]any{
		"name":       "v1",
		"properties": map[string]any{"value": "s3cret"},
	}, decodeBody(t, gw.LastRequest(t)))

	removed, err := conn.RemoveSecrets(context.Background(), []fabric.SecretReference{{Name: "db"}}, testTimeout)
	require.NoError(t, err)
	assert.Equal(t, []fabric.SecretReference{{Name: "db"}}, removed)
	req := gw.LastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/Resources/Secrets/db", req.Path)
}

func TestGetImageStorePage_FoldersFirst(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.GET("/ImageStore/*contentPath", gateway.Respond(http.StatusOK, gin.H{
		"StoreFiles":   []gin.H{{"StoreRelativePath": "VotingType/ApplicationManifest.xml", "FileSize": "2048"}},
		"StoreFolders": []gin.H{{"StoreRelativePath": "VotingType/VotingWebPkg", "FileCount": "12"}},
	}))

	page, err := conn.GetImageStorePage(context.Background(), fabric.ImageStoreQuery{RemoteLocation: "VotingType"}, testTimeout)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.True(t, page.Items[0].IsFolder)
	assert.Equal(t, int64(12), page.Items[0].FileCount)
	assert.False(t, page.Items[1].IsFolder)
	assert.Equal(t, uint64(2048), page.Items[1].FileSize)

	req := gw.LastRequest(t)
	assert.Equal(t, "/ImageStore/VotingType", req.Path)
	assert.Equal(t, "6.2", req.Query.Get("api-version"))
}

func TestDeleteImageStoreContent_KeepsSlashes(t *testing.T) {
	conn, gw := newTestConnection(t)
	gw.Engine.DELETE("/ImageStore/*contentPath", gateway.Respond(http.StatusOK, nil))

	require.NoError(t, conn.DeleteImageStoreContent(context.Background(), "VotingType/VotingWebPkg", testTimeout))
	assert.Equal(t, "/ImageStore/VotingType/VotingWebPkg", gw.LastRequest(t).Path)
}
