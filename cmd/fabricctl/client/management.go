package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// ActivateNode re-enables a deactivated node.
func (c *RestConnection) ActivateNode(ctx context.Context, nodeName string, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Nodes/{nodeName}/$/Activate",
		pathParams: map[string]string{"nodeName": nodeName},
	})
	return err
}

// DeactivateNode disables a node with the given intent.
func (c *RestConnection) DeactivateNode(ctx context.Context, nodeName string, intent fabric.DeactivationIntent, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Nodes/{nodeName}/$/Deactivate",
		pathParams: map[string]string{"nodeName": nodeName},
		body: struct {
			DeactivationIntent fabric.DeactivationIntent `json:"DeactivationIntent"`
		}{intent},
	})
	return err
}

// RemoveNodeState tells the cluster that a down node's state is lost.
func (c *RestConnection) RemoveNodeState(ctx context.Context, nodeName string, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Nodes/{nodeName}/$/RemoveNodeState",
		pathParams: map[string]string{"nodeName": nodeName},
	})
	return err
}

// DeleteApplication removes an application instance.
func (c *RestConnection) DeleteApplication(ctx context.Context, applicationName string, forceRemove bool, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Applications/{applicationId}/$/Delete",
		pathParams: map[string]string{"applicationId": entityID(applicationName)},
		query:      forceRemoveQuery(forceRemove),
	})
	return err
}

// DeleteService removes a service instance.
func (c *RestConnection) DeleteService(ctx context.Context, serviceName string, forceRemove bool, timeout time.Duration) error {
	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Services/{serviceId}/$/Delete",
		pathParams: map[string]string{"serviceId": entityID(serviceName)},
		query:      forceRemoveQuery(forceRemove),
	})
	return err
}

func forceRemoveQuery(forceRemove bool) url.Values {
	if !forceRemove {
		return nil
	}
	return url.Values{"ForceRemove": {"true"}}
}

// StartNodeTransition starts or stops a node under the transition's
// operation ID.
func (c *RestConnection) StartNodeTransition(ctx context.Context, transition fabric.NodeTransition, timeout time.Duration) error {
	q := url.Values{}
	q.Set("OperationId", transition.OperationID)
	q.Set("NodeTransitionType", string(transition.Type))
	q.Set("NodeInstanceId", transition.NodeInstanceID)
	if transition.Type == fabric.NodeTransitionStop {
		q.Set("StopDurationInSeconds", strconv.Itoa(int(transition.StopDuration.Seconds())))
	}

	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodPost,
		path:       "/Faults/Nodes/{nodeName}/$/StartTransition",
		pathParams: map[string]string{"nodeName": transition.NodeName},
		query:      q,
	})
	return err
}

// GetNodeTransitionProgress reports the progress of a node transition.
func (c *RestConnection) GetNodeTransitionProgress(ctx context.Context, nodeName, operationID string, timeout time.Duration) (*fabric.NodeTransitionProgress, error) {
	var result struct {
		State                string `json:"State"`
		NodeTransitionResult struct {
			ErrorCode  int64 `json:"ErrorCode"`
			NodeResult struct {
				NodeName       string `json:"NodeName"`
				NodeInstanceID string `json:"NodeInstanceId"`
			} `json:"NodeResult"`
		} `json:"NodeTransitionResult"`
	}

	_, err := c.execute(ctx, timeout, request{
		method:     http.MethodGet,
		path:       "/Faults/Nodes/{nodeName}/$/GetTransitionProgress",
		pathParams: map[string]string{"nodeName": nodeName},
		query:      url.Values{"OperationId": {operationID}},
		result:     &result,
	})
	if err != nil {
		return nil, err
	}

	progress := &fabric.NodeTransitionProgress{
		OperationID: operationID,
		NodeName:    nodeName,
		State:       result.State,
	}
	progress.Result.ErrorCode = result.NodeTransitionResult.ErrorCode
	progress.Result.NodeInstanceID = result.NodeTransitionResult.NodeResult.NodeInstanceID
	return progress, nil
}
