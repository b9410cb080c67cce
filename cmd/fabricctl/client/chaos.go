package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// unixEpochTicks is the Unix epoch in .NET ticks (100ns since 0001-01-01).
const unixEpochTicks = 621355968000000000

// ticks renders t as .NET ticks, the time format of the chaos events API.
func ticks(t time.Time) string {
	return strconv.FormatInt(unixEpochTicks+t.UnixNano()/100, 10)
}

// chaosParametersWire is ChaosParameters in gateway form: durations in whole
// seconds and the context wrapped in a Map object.
type chaosParametersWire struct {
	TimeToRunInSeconds                      string                           `json:"TimeToRunInSeconds"`
	MaxClusterStabilizationTimeoutInSeconds int64                            `json:"MaxClusterStabilizationTimeoutInSeconds"`
	MaxConcurrentFaults                     int64                            `json:"MaxConcurrentFaults"`
	EnableMoveReplicaFaults                 bool                             `json:"EnableMoveReplicaFaults"`
	WaitTimeBetweenFaultsInSeconds          int64                            `json:"WaitTimeBetweenFaultsInSeconds"`
	WaitTimeBetweenIterationsInSeconds      int64                            `json:"WaitTimeBetweenIterationsInSeconds"`
	ClusterHealthPolicy                     *fabric.ChaosClusterHealthPolicy `json:"ClusterHealthPolicy,omitempty"`
	Context                                 *chaosContextWire                `json:"Context,omitempty"`
}

type chaosContextWire struct {
	Map map[string]string `json:"Map"`
}

func toChaosWire(p fabric.ChaosParameters) chaosParametersWire {
	w := chaosParametersWire{
		TimeToRunInSeconds:                      strconv.FormatInt(int64(p.TimeToRun.Seconds()), 10),
		MaxClusterStabilizationTimeoutInSeconds: int64(p.MaxClusterStabilization.Seconds()),
		MaxConcurrentFaults:                     p.MaxConcurrentFaults,
		EnableMoveReplicaFaults:                 p.EnableMoveReplicaFaults,
		WaitTimeBetweenFaultsInSeconds:          int64(p.WaitTimeBetweenFaults.Seconds()),
		WaitTimeBetweenIterationsInSeconds:      int64(p.WaitTimeBetweenIterations.Seconds()),
		ClusterHealthPolicy:                     p.ClusterHealthPolicy,
	}
	if len(p.Context) > 0 {
		w.Context = &chaosContextWire{Map: p.Context}
	}
	return w
}

func (w chaosParametersWire) toParameters() *fabric.ChaosParameters {
	timeToRun, _ := strconv.ParseInt(w.TimeToRunInSeconds, 10, 64)
	p := &fabric.ChaosParameters{
		TimeToRun:                 time.Duration(timeToRun) * time.Second,
		MaxClusterStabilization:   time.Duration(w.MaxClusterStabilizationTimeoutInSeconds) * time.Second,
		MaxConcurrentFaults:       w.MaxConcurrentFaults,
		EnableMoveReplicaFaults:   w.EnableMoveReplicaFaults,
		WaitTimeBetweenFaults:     time.Duration(w.WaitTimeBetweenFaultsInSeconds) * time.Second,
		WaitTimeBetweenIterations: time.Duration(w.WaitTimeBetweenIterationsInSeconds) * time.Second,
		ClusterHealthPolicy:       w.ClusterHealthPolicy,
	}
	if w.Context != nil {
		p.Context = w.Context.Map
	}
	return p
}

// StartChaos starts a chaos run.
func (c *RestConnection) StartChaos(ctx context.Context, params fabric.ChaosParameters, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Tools/Chaos/$/Start",
		apiVersion: apiVersionPaged,
		body: struct {
			ChaosParameters chaosParametersWire `json:"ChaosParameters"`
		}{toChaosWire(params)},
	})
	return err
}

// StopChaos stops the running chaos run, if any.
func (c *RestConnection) StopChaos(ctx context.Context, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Tools/Chaos/$/Stop",
		apiVersion: apiVersionPaged,
	})
	return err
}

// GetChaos reports the chaos status and the parameters of the current run.
func (c *RestConnection) GetChaos(ctx context.Context, timeout time.Duration) (*fabric.ChaosDescription, error) {
	var result struct {
		Status          string               `json:"Status"`
		ScheduleStatus  string               `json:"ScheduleStatus"`
		ChaosParameters *chaosParametersWire `json:"ChaosParameters"`
	}
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodGet,
		path:       "/Tools/Chaos",
		apiVersion: apiVersionPaged,
		result:     &result,
	})
	if err != nil {
		return nil, err
	}

	desc := &fabric.ChaosDescription{Status: result.Status, ScheduleStatus: result.ScheduleStatus}
	if result.ChaosParameters != nil {
		desc.ChaosParameters = result.ChaosParameters.toParameters()
	}
	return desc, nil
}

// GetChaosEventsPage returns one page of chaos events. A continuation token
// replaces the time window, which the server remembers.
func (c *RestConnection) GetChaosEventsPage(ctx context.Context, query fabric.ChaosEventsQuery, timeout time.Duration) (*fabric.PagedList[fabric.ChaosEvent], error) {
	q := pageQuery(query.PageQuery)
	if query.ContinuationToken == "" {
		if !query.StartTime.IsZero() {
			q.Set("StartTimeUtc", ticks(query.StartTime))
		}
		if !query.EndTime.IsZero() {
			q.Set("EndTimeUtc", ticks(query.EndTime))
		}
	}

	var result struct {
		ContinuationToken string `json:"ContinuationToken"`
		History           []struct {
			ChaosEvent fabric.ChaosEvent `json:"ChaosEvent"`
		} `json:"History"`
	}
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodGet,
		path:       "/Tools/Chaos/Events",
		apiVersion: apiVersionPaged,
		query:      q,
		result:     &result,
	})
	if err != nil {
		return nil, err
	}

	page := &fabric.PagedList[fabric.ChaosEvent]{ContinuationToken: result.ContinuationToken}
	for _, h := range result.History {
		page.Items = append(page.Items, h.ChaosEvent)
	}
	return page, nil
}
