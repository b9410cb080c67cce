// Package mock provides testify-based test doubles for the cluster
// connection and the command output plumbing.
package mock

import (
	"context"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/stretchr/testify/mock"
)

// Connection is a mock fabric.Connection. Expectations are set with On and
// results returned positionally, nil-checked before type assertion.
type Connection struct {
	mock.Mock
	Addr string
}

// NewConnection returns a mock connection reporting addr as its endpoint.
func NewConnection(addr string) *Connection {
	return &Connection{Addr: addr}
}

func (m *Connection) Endpoint() string {
	return m.Addr
}

func (m *Connection) GetClusterVersion(ctx context.Context, timeout time.Duration) (string, error) {
	args := m.Called(ctx, timeout)
	return args.String(0), args.Error(1)
}

func (m *Connection) GetClusterManifest(ctx context.Context, timeout time.Duration) (string, error) {
	args := m.Called(ctx, timeout)
	return args.String(0), args.Error(1)
}

func (m *Connection) GetNodePage(ctx context.Context, query fabric.NodeQuery, timeout time.Duration) (*fabric.PagedList[fabric.Node], error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.PagedList[fabric.Node]), args.Error(1)
}

func (m *Connection) GetApplicationTypePage(ctx context.Context, query fabric.ApplicationTypeQuery, timeout time.Duration) (*fabric.PagedList[fabric.ApplicationType], error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.PagedList[fabric.ApplicationType]), args.Error(1)
}

func (m *Connection) GetApplicationPage(ctx context.Context, query fabric.ApplicationQuery, timeout time.Duration) (*fabric.PagedList[fabric.Application], error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.PagedList[fabric.Application]), args.Error(1)
}

func (m *Connection) GetServicePage(ctx context.Context, query fabric.ServiceQuery, timeout time.Duration) (*fabric.PagedList[fabric.Service], error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.PagedList[fabric.Service]), args.Error(1)
}

func (m *Connection) GetPartitionPage(ctx context.Context, query fabric.PartitionQuery, timeout time.Duration) (*fabric.PagedList[fabric.Partition], error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.PagedList[fabric.Partition]), args.Error(1)
}

func (m *Connection) GetReplicaPage(ctx context.Context, query fabric.ReplicaQuery, timeout time.Duration) (*fabric.PagedList[fabric.Replica], error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.PagedList[fabric.Replica]), args.Error(1)
}

func (m *Connection) ActivateNode(ctx context.Context, nodeName string, timeout time.Duration) error {
	return m.Called(ctx, nodeName, timeout).Error(0)
}

func (m *Connection) DeactivateNode(ctx context.Context, nodeName string, intent fabric.DeactivationIntent, timeout time.Duration) error {
	return m.Called(ctx, nodeName, intent, timeout).Error(0)
}

func (m *Connection) RemoveNodeState(ctx context.Context, nodeName string, timeout time.Duration) error {
	return m.Called(ctx, nodeName, timeout).Error(0)
}

func (m *Connection) DeleteApplication(ctx context.Context, applicationName string, forceRemove bool, timeout time.Duration) error {
	return m.Called(ctx, applicationName, forceRemove, timeout).Error(0)
}

func (m *Connection) DeleteService(ctx context.Context, serviceName string, forceRemove bool, timeout time.Duration) error {
	return m.Called(ctx, serviceName, forceRemove, timeout).Error(0)
}

func (m *Connection) StartNodeTransition(ctx context.Context, transition fabric.NodeTransition, timeout time.Duration) error {
	return m.Called(ctx, transition, timeout).Error(0)
}

func (m *Connection) GetNodeTransitionProgress(ctx context.Context, nodeName, operationID string, timeout time.Duration) (*fabric.NodeTransitionProgress, error) {
	args := m.Called(ctx, nodeName, operationID, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.NodeTransitionProgress), args.Error(1)
}

func (m *Connection) GetHealth(ctx context.Context, query fabric.HealthQuery, timeout time.Duration) (*fabric.EntityHealth, error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.EntityHealth), args.Error(1)
}

func (m *Connection) ReportHealth(ctx context.Context, report fabric.HealthReport, options fabric.SendOptions) error {
	return m.Called(ctx, report, options).Error(0)
}

func (m *Connection) GetRepairTaskList(ctx context.Context, query fabric.RepairTaskQuery, timeout time.Duration) ([]fabric.RepairTask, error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fabric.RepairTask), args.Error(1)
}

func (m *Connection) CreateRepairTask(ctx context.Context, task fabric.RepairTask, timeout time.Duration) (int64, error) {
	args := m.Called(ctx, task, timeout)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Connection) CancelRepairTask(ctx context.Context, taskID string, version int64, requestAbort bool, timeout time.Duration) (int64, error) {
	args := m.Called(ctx, taskID, version, requestAbort, timeout)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Connection) ForceApproveRepairTask(ctx context.Context, taskID string, version int64, timeout time.Duration) (int64, error) {
	args := m.Called(ctx, taskID, version, timeout)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Connection) DeleteRepairTask(ctx context.Context, taskID string, version int64, timeout time.Duration) error {
	return m.Called(ctx, taskID, version, timeout).Error(0)
}

func (m *Connection) UpdateRepairExecutionState(ctx context.Context, task fabric.RepairTask, timeout time.Duration) (int64, error) {
	args := m.Called(ctx, task, timeout)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Connection) StartChaos(ctx context.Context, params fabric.ChaosParameters, timeout time.Duration) error {
	return m.Called(ctx, params, timeout).Error(0)
}

func (m *Connection) StopChaos(ctx context.Context, timeout time.Duration) error {
	return m.Called(ctx, timeout).Error(0)
}

func (m *Connection) GetChaos(ctx context.Context, timeout time.Duration) (*fabric.ChaosDescription, error) {
	args := m.Called(ctx, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.ChaosDescription), args.Error(1)
}

func (m *Connection) GetChaosEventsPage(ctx context.Context, query fabric.ChaosEventsQuery, timeout time.Duration) (*fabric.PagedList[fabric.ChaosEvent], error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.PagedList[fabric.ChaosEvent]), args.Error(1)
}

func (m *Connection) GetSecrets(ctx context.Context, refs []fabric.SecretReference, includeValue bool, timeout time.Duration) ([]fabric.Secret, error) {
	args := m.Called(ctx, refs, includeValue, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fabric.Secret), args.Error(1)
}

func (m *Connection) SetSecrets(ctx context.Context, secrets []fabric.Secret, timeout time.Duration) ([]fabric.SecretReference, error) {
	args := m.Called(ctx, secrets, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fabric.SecretReference), args.Error(1)
}

func (m *Connection) RemoveSecrets(ctx context.Context, refs []fabric.SecretReference, timeout time.Duration) ([]fabric.SecretReference, error) {
	args := m.Called(ctx, refs, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fabric.SecretReference), args.Error(1)
}

func (m *Connection) GetImageStorePage(ctx context.Context, query fabric.ImageStoreQuery, timeout time.Duration) (*fabric.PagedList[fabric.ImageStoreItem], error) {
	args := m.Called(ctx, query, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabric.PagedList[fabric.ImageStoreItem]), args.Error(1)
}

func (m *Connection) DeleteImageStoreContent(ctx context.Context, path string, timeout time.Duration) error {
	return m.Called(ctx, path, timeout).Error(0)
}

var _ fabric.Connection = (*Connection)(nil)
