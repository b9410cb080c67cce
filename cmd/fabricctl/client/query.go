package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// GetClusterVersion returns the cluster code version.
func (c *RestConnection) GetClusterVersion(ctx context.Context, timeout time.Duration) (string, error) {
	var result struct {
		Version string `json:"Version"`
	}
	_, err := c.execute(ctx, timeout, request{
		method: http.MethodGet,
		path:   "/$/GetClusterVersion",
		result: &result,
	})
	return result.Version, err
}

// GetClusterManifest returns the cluster manifest XML.
func (c *RestConnection) GetClusterManifest(ctx context.Context, timeout time.Duration) (string, error) {
	var result struct {
		Manifest string `json:"Manifest"`
	}
	_, err := c.execute(ctx, timeout, request{
		method: http.MethodGet,
		path:   "/$/GetClusterManifest",
		result: &result,
	})
	return result.Manifest, err
}

// GetNodePage lists nodes, or looks up one node when NodeName is set.
func (c *RestConnection) GetNodePage(ctx context.Context, query fabric.NodeQuery, timeout time.Duration) (*fabric.PagedList[fabric.Node], error) {
	if query.NodeName != "" {
		return getOne[fabric.Node](ctx, c, timeout, request{
			path:       "/Nodes/{nodeName}",
			pathParams: map[string]string{"nodeName": query.NodeName},
		})
	}

	q := pageQuery(query.PageQuery)
	if query.StatusFilter != "" {
		q.Set("NodeStatusFilter", string(query.StatusFilter))
	}
	return getPage[fabric.Node](ctx, c, timeout, request{
		path:  "/Nodes",
		query: q,
	})
}

// GetApplicationTypePage lists provisioned application types, optionally
// restricted to the versions of one type.
func (c *RestConnection) GetApplicationTypePage(ctx context.Context, query fabric.ApplicationTypeQuery, timeout time.Duration) (*fabric.PagedList[fabric.ApplicationType], error) {
	q := pageQuery(query.PageQuery)
	if query.ExcludeApplicationParameters {
		q.Set("ExcludeApplicationParameters", "true")
	}

	rq := request{path: "/ApplicationTypes", query: q}
	if query.TypeName != "" {
		rq.path = "/ApplicationTypes/{applicationTypeName}"
		rq.pathParams = map[string]string{"applicationTypeName": query.TypeName}
	}
	return getPage[fabric.ApplicationType](ctx, c, timeout, rq)
}

// GetApplicationPage lists applications, or looks up one application when
// ApplicationName is set.
func (c *RestConnection) GetApplicationPage(ctx context.Context, query fabric.ApplicationQuery, timeout time.Duration) (*fabric.PagedList[fabric.Application], error) {
	q := pageQuery(query.PageQuery)
	if query.ExcludeApplicationParameters {
		q.Set("ExcludeApplicationParameters", "true")
	}

	if query.ApplicationName != "" {
		return getOne[fabric.Application](ctx, c, timeout, request{
			path:       "/Applications/{applicationId}",
			pathParams: map[string]string{"applicationId": entityID(query.ApplicationName)},
			query:      q,
		})
	}

	if query.ApplicationTypeName != "" {
		q.Set("ApplicationTypeName", query.ApplicationTypeName)
	}
	return getPage[fabric.Application](ctx, c, timeout, request{
		path:       "/Applications",
		apiVersion: apiVersionPaged,
		query:      q,
	})
}

// GetServicePage lists the services of an application, or looks up one
// service when ServiceName is set.
func (c *RestConnection) GetServicePage(ctx context.Context, query fabric.ServiceQuery, timeout time.Duration) (*fabric.PagedList[fabric.Service], error) {
	params := map[string]string{"applicationId": entityID(query.ApplicationName)}

	if query.ServiceName != "" {
		params["serviceId"] = entityID(query.ServiceName)
		return getOne[fabric.Service](ctx, c, timeout, request{
			path:       "/Applications/{applicationId}/$/GetServices/{serviceId}",
			pathParams: params,
		})
	}

	q := pageQuery(query.PageQuery)
	if query.ServiceTypeName != "" {
		q.Set("ServiceTypeName", query.ServiceTypeName)
	}
	return getPage[fabric.Service](ctx, c, timeout, request{
		path:       "/Applications/{applicationId}/$/GetServices",
		pathParams: params,
		query:      q,
	})
}

// GetPartitionPage lists the partitions of a service, or looks up one
// partition by ID.
func (c *RestConnection) GetPartitionPage(ctx context.Context, query fabric.PartitionQuery, timeout time.Duration) (*fabric.PagedList[fabric.Partition], error) {
	if query.PartitionID != "" {
		return getOne[fabric.Partition](ctx, c, timeout, request{
			path:       "/Partitions/{partitionId}",
			pathParams: map[string]string{"partitionId": query.PartitionID},
		})
	}

	return getPage[fabric.Partition](ctx, c, timeout, request{
		path:       "/Services/{serviceId}/$/GetPartitions",
		pathParams: map[string]string{"serviceId": entityID(query.ServiceName)},
		query:      pageQuery(query.PageQuery),
	})
}

// GetReplicaPage lists the replicas of a partition, or looks up one replica
// when ReplicaOrInstanceID is set.
func (c *RestConnection) GetReplicaPage(ctx context.Context, query fabric.ReplicaQuery, timeout time.Duration) (*fabric.PagedList[fabric.Replica], error) {
	params := map[string]string{"partitionId": query.PartitionID}

	if query.ReplicaOrInstanceID != 0 {
		params["replicaId"] = strconv.FormatInt(query.ReplicaOrInstanceID, 10)
		return getOne[fabric.Replica](ctx, c, timeout, request{
			path:       "/Partitions/{partitionId}/$/GetReplicas/{replicaId}",
			pathParams: params,
		})
	}

	return getPage[fabric.Replica](ctx, c, timeout, request{
		path:       "/Partitions/{partitionId}/$/GetReplicas",
		pathParams: params,
		query:      pageQuery(query.PageQuery),
	})
}
