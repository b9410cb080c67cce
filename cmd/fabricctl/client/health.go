package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// healthPaths maps an entity kind to its GetHealth and ReportHealth routes.
var healthPaths = map[fabric.EntityKind]struct{ get, report string }{
	fabric.EntityCluster:     {"/$/GetClusterHealth", "/$/ReportClusterHealth"},
	fabric.EntityNode:        {"/Nodes/{nodeName}/$/GetHealth", "/Nodes/{nodeName}/$/ReportHealth"},
	fabric.EntityApplication: {"/Applications/{applicationId}/$/GetHealth", "/Applications/{applicationId}/$/ReportHealth"},
	fabric.EntityService:     {"/Services/{serviceId}/$/GetHealth", "/Services/{serviceId}/$/ReportHealth"},
	fabric.EntityPartition:   {"/Partitions/{partitionId}/$/GetHealth", "/Partitions/{partitionId}/$/ReportHealth"},
	fabric.EntityReplica: {
		"/Partitions/{partitionId}/$/GetReplicas/{replicaId}/$/GetHealth",
		"/Partitions/{partitionId}/$/GetReplicas/{replicaId}/$/ReportHealth",
	},
}

// healthTargetParams returns the path parameters addressing target.
func healthTargetParams(kind fabric.EntityKind, target fabric.HealthTarget) map[string]string {
	switch kind {
	case fabric.EntityNode:
		return map[string]string{"nodeName": target.NodeName}
	case fabric.EntityApplication:
		return map[string]string{"applicationId": entityID(target.ApplicationName)}
	case fabric.EntityService:
		return map[string]string{"serviceId": entityID(target.ServiceName)}
	case fabric.EntityPartition:
		return map[string]string{"partitionId": target.PartitionID}
	case fabric.EntityReplica:
		return map[string]string{
			"partitionId": target.PartitionID,
			"replicaId":   strconv.FormatInt(target.ReplicaOrInstanceID, 10),
		}
	}
	return nil
}

// healthTargetName is the display name of a health query target.
func healthTargetName(kind fabric.EntityKind, target fabric.HealthTarget) string {
	switch kind {
	case fabric.EntityNode:
		return target.NodeName
	case fabric.EntityApplication:
		return target.ApplicationName
	case fabric.EntityService:
		return target.ServiceName
	case fabric.EntityPartition:
		return target.PartitionID
	case fabric.EntityReplica:
		return strconv.FormatInt(target.ReplicaOrInstanceID, 10)
	}
	return ""
}

// childHealthWire is one entry of a *HealthStates array. Each child kind
// names itself with a different field.
type childHealthWire struct {
	NodeName              string             `json:"NodeName"`
	Name                  string             `json:"Name"`
	ApplicationName       string             `json:"ApplicationName"`
	ServiceName           string             `json:"ServiceName"`
	PartitionID           string             `json:"PartitionId"`
	ReplicaID             string             `json:"ReplicaId"`
	InstanceID            string             `json:"InstanceId"`
	AggregatedHealthState fabric.HealthState `json:"AggregatedHealthState"`
}

func (w childHealthWire) name() string {
	for _, n := range []string{w.NodeName, w.Name, w.ApplicationName, w.ServiceName, w.PartitionID, w.ReplicaID, w.InstanceID} {
		if n != "" {
			return n
		}
	}
	return ""
}

// healthWire is the GetHealth response body shared by all entity kinds.
type healthWire struct {
	AggregatedHealthState fabric.HealthState   `json:"AggregatedHealthState"`
	HealthEvents          []fabric.HealthEvent `json:"HealthEvents"`
	UnhealthyEvaluations  []struct {
		HealthEvaluation struct {
			Description string `json:"Description"`
		} `json:"HealthEvaluation"`
	} `json:"UnhealthyEvaluations"`
	NodeHealthStates                []childHealthWire `json:"NodeHealthStates"`
	ApplicationHealthStates         []childHealthWire `json:"ApplicationHealthStates"`
	DeployedApplicationHealthStates []childHealthWire `json:"DeployedApplicationHealthStates"`
	ServiceHealthStates             []childHealthWire `json:"ServiceHealthStates"`
	PartitionHealthStates           []childHealthWire `json:"PartitionHealthStates"`
	ReplicaHealthStates             []childHealthWire `json:"ReplicaHealthStates"`
	HealthStatistics                *struct {
		HealthStateCountList []struct {
			EntityKind       string `json:"EntityKind"`
			HealthStateCount struct {
				OkCount      int64 `json:"OkCount"`
				WarningCount int64 `json:"WarningCount"`
				ErrorCount   int64 `json:"ErrorCount"`
			} `json:"HealthStateCount"`
		} `json:"HealthStateCountList"`
	} `json:"HealthStatistics"`
}

func (w *healthWire) toEntityHealth(kind fabric.EntityKind, name string) *fabric.EntityHealth {
	h := &fabric.EntityHealth{
		Kind:                  kind,
		Name:                  name,
		AggregatedHealthState: w.AggregatedHealthState,
		HealthEvents:          w.HealthEvents,
	}
	for _, ev := range w.UnhealthyEvaluations {
		h.UnhealthyEvaluations = append(h.UnhealthyEvaluations, ev.HealthEvaluation.Description)
	}

	children := []struct {
		kind   fabric.ChildKind
		states []childHealthWire
	}{
		{fabric.ChildNodes, w.NodeHealthStates},
		{fabric.ChildApplications, w.ApplicationHealthStates},
		{fabric.ChildDeployedApplications, w.DeployedApplicationHealthStates},
		{fabric.ChildServices, w.ServiceHealthStates},
		{fabric.ChildPartitions, w.PartitionHealthStates},
		{fabric.ChildReplicas, w.ReplicaHealthStates},
	}
	for _, group := range children {
		for _, s := range group.states {
			h.Children = append(h.Children, fabric.ChildHealthState{
				Kind:                  group.kind,
				Name:                  s.name(),
				AggregatedHealthState: s.AggregatedHealthState,
			})
		}
	}

	if w.HealthStatistics != nil {
		for _, c := range w.HealthStatistics.HealthStateCountList {
			h.HealthStatistics = append(h.HealthStatistics, fabric.HealthStateCount{
				EntityKind:   c.EntityKind,
				OkCount:      c.HealthStateCount.OkCount,
				WarningCount: c.HealthStateCount.WarningCount,
				ErrorCount:   c.HealthStateCount.ErrorCount,
			})
		}
	}
	return h
}

// GetHealth queries the health of one entity. Filters travel as query
// parameters; a policy turns the query into a POST carrying it as the body.
func (c *RestConnection) GetHealth(ctx context.Context, query fabric.HealthQuery, timeout time.Duration) (*fabric.EntityHealth, error) {
	paths, ok := healthPaths[query.Kind]
	if !ok {
		return nil, fmt.Errorf("unsupported health entity kind %q", query.Kind)
	}

	q := url.Values{}
	if query.EventsFilter != nil {
		q.Set("EventsHealthStateFilter", strconv.FormatUint(uint64(*query.EventsFilter), 10))
	}
	for kind, filter := range query.ChildFilters {
		q.Set(string(kind)+"HealthStateFilter", strconv.FormatUint(uint64(filter), 10))
	}
	if sf := query.StatisticsFilter; sf != nil {
		q.Set("ExcludeHealthStatistics", strconv.FormatBool(sf.ExcludeHealthStatistics))
		if sf.IncludeSystemApplicationHealthStatistics {
			q.Set("IncludeSystemApplicationHealthStatistics", "true")
		}
	}

	var wire healthWire
	rq := request{
		method:     http.MethodGet,
		path:       paths.get,
		pathParams: healthTargetParams(query.Kind, query.Target),
		query:      q,
		result:     &wire,
	}
	if query.Policy != nil {
		rq.method = http.MethodPost
		rq.body = query.Policy
		if query.Kind == fabric.EntityCluster {
			rq.body = struct {
				ClusterHealthPolicy *fabric.HealthPolicy `json:"ClusterHealthPolicy"`
			}{query.Policy}
		}
	}

	if _, err := c.execute(ctx, timeout, rq); err != nil {
		return nil, err
	}
	return wire.toEntityHealth(query.Kind, healthTargetName(query.Kind, query.Target)), nil
}

// healthInformationWire is the ReportHealth body.
type healthInformationWire struct {
	SourceID          string             `json:"SourceId"`
	Property          string             `json:"Property"`
	HealthState       fabric.HealthState `json:"HealthState"`
	Description       string             `json:"Description,omitempty"`
	TimeToLive        string             `json:"TimeToLiveInMilliSeconds,omitempty"`
	SequenceNumber    string             `json:"SequenceNumber,omitempty"`
	RemoveWhenExpired bool               `json:"RemoveWhenExpired"`
}

// isoDuration renders d as an ISO 8601 duration in seconds, e.g. PT90S.
func isoDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return fmt.Sprintf("PT%gS", d.Seconds())
}

// ReportHealth sends a health report for one entity.
func (c *RestConnection) ReportHealth(ctx context.Context, report fabric.HealthReport, options fabric.SendOptions) error {
	paths, ok := healthPaths[report.Kind]
	if !ok {
		return fmt.Errorf("unsupported health entity kind %q", report.Kind)
	}

	info := report.Information
	body := healthInformationWire{
		SourceID:          info.SourceID,
		Property:          info.Property,
		HealthState:       info.HealthState,
		Description:       info.Description,
		TimeToLive:        isoDuration(info.TimeToLive),
		RemoveWhenExpired: info.RemoveWhenExpired,
	}
	if info.SequenceNumber != 0 {
		body.SequenceNumber = strconv.FormatInt(info.SequenceNumber, 10)
	}

	q := url.Values{}
	if options.Immediate {
		q.Set("Immediate", "true")
	}
	if report.ServiceKind != "" {
		q.Set("ServiceKind", report.ServiceKind)
	}

	_, err := c.execute(ctx, 0, request{
		method:     http.MethodPost,
		path:       paths.report,
		pathParams: healthTargetParams(report.Kind, report.Target),
		query:      q,
		body:       body,
	})
	return err
}
