package health

import (
	"context"
	"strconv"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/validate"
)

var getErrorIDs = map[fabric.EntityKind]string{
	fabric.EntityCluster:     faults.GetClusterHealthErrorID,
	fabric.EntityNode:        faults.GetNodeHealthErrorID,
	fabric.EntityApplication: faults.GetApplicationHealthErrorID,
	fabric.EntityService:     faults.GetServiceHealthErrorID,
	fabric.EntityPartition:   faults.GetPartitionHealthErrorID,
	fabric.EntityReplica:     faults.GetReplicaHealthErrorID,
}

var reportErrorIDs = map[fabric.EntityKind]string{
	fabric.EntityCluster:     faults.SendClusterHealthReportErrorID,
	fabric.EntityNode:        faults.SendNodeHealthReportErrorID,
	fabric.EntityApplication: faults.SendApplicationHealthReportErrorID,
	fabric.EntityService:     faults.SendServiceHealthReportErrorID,
	fabric.EntityPartition:   faults.SendPartitionHealthReportErrorID,
	fabric.EntityReplica:     faults.SendReplicaHealthReportErrorID,
}

// Get builds the health query described by p, runs it and emits the
// resulting *fabric.EntityHealth.
func Get(ctx context.Context, inv *command.Invocation, p Params) error {
	errorID, ok := getErrorIDs[p.Kind]
	if !ok {
		return faults.Usagef("unknown health entity kind %q", p.Kind)
	}

	query, err := Build(p, inv.Out.Warn)
	if err != nil {
		return err
	}

	var result *fabric.EntityHealth
	err = inv.Call(ctx, errorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		result, err = inv.Conn.GetHealth(ctx, query, timeout)
		return err
	})
	if err != nil {
		return err
	}

	inv.Out.Emit(result)
	return nil
}

// ReportParams are the operator inputs of a health report. For replica
// reports exactly one of ReplicaID (stateful) and InstanceID (stateless)
// must be set; for other kinds both must be nil.
type ReportParams struct {
	Kind        fabric.EntityKind
	Target      fabric.HealthTarget
	Information fabric.HealthInformation
	Immediate   bool

	ReplicaID  *int64
	InstanceID *int64
}

// Report validates p and sends the health report through the connection.
func Report(ctx context.Context, inv *command.Invocation, p ReportParams) error {
	errorID, ok := reportErrorIDs[p.Kind]
	if !ok {
		return faults.Usagef("unknown health entity kind %q", p.Kind)
	}

	target := p.Target
	serviceKind := ""
	if p.Kind == fabric.EntityReplica {
		set, err := command.SelectParameterSet(
			command.ParameterSet{Name: "StatefulService", Flags: []string{"--replica-id"}, Selected: p.ReplicaID != nil},
			command.ParameterSet{Name: "StatelessService", Flags: []string{"--instance-id"}, Selected: p.InstanceID != nil},
		)
		if err != nil {
			return err
		}
		if set == "StatefulService" {
			target.ReplicaOrInstanceID = *p.ReplicaID
			serviceKind = fabric.ServiceKindStateful
		} else {
			target.ReplicaOrInstanceID = *p.InstanceID
			serviceKind = fabric.ServiceKindStateless
		}
	} else if p.ReplicaID != nil || p.InstanceID != nil {
		return faults.Usagef("--replica-id and --instance-id only apply to replica health reports")
	}

	if err := validateTarget(p.Kind, target); err != nil {
		return err
	}
	if err := validate.Struct(p.Information); err != nil {
		return faults.Usagef("invalid health report: %v", err)
	}
	if p.Information.TimeToLive < 0 {
		return faults.Usagef("--ttl cannot be negative")
	}

	report := fabric.HealthReport{Kind: p.Kind, Target: target, ServiceKind: serviceKind, Information: p.Information}
	err := inv.Call(ctx, errorID, func(ctx context.Context, _ time.Duration) error {
		return inv.Conn.ReportHealth(ctx, report, fabric.SendOptions{Immediate: p.Immediate})
	})
	if err != nil {
		return err
	}

	inv.Out.Verbose("Health report for %s %q sent (source %q, property %q)",
		p.Kind, describeTarget(p.Kind, target), p.Information.SourceID, p.Information.Property)
	return nil
}

func describeTarget(kind fabric.EntityKind, t fabric.HealthTarget) string {
	switch kind {
	case fabric.EntityNode:
		return t.NodeName
	case fabric.EntityApplication:
		return t.ApplicationName
	case fabric.EntityService:
		return t.ServiceName
	case fabric.EntityPartition:
		return t.PartitionID
	case fabric.EntityReplica:
		return t.PartitionID + "/" + strconv.FormatInt(t.ReplicaOrInstanceID, 10)
	default:
		return "cluster"
	}
}
