package display

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/cluster"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/repair"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Column widths beyond which free text is truncated in tables
const (
	maxDescriptionWidth = 60
	maxAddressWidth     = 48
)

// isRecord reports whether item is a single-record result rather than a
// listing entry.
func isRecord(item any) bool {
	switch item.(type) {
	case *fabric.EntityHealth, *fabric.ChaosDescription, *fabric.NodeTransitionProgress,
		cluster.ConnectionInfo, cluster.CodeVersion, cluster.Manifest, cluster.TransitionStarted,
		repair.Commit:
		return true
	}
	return false
}

// newTable creates a new table with standard styling
func (p *Printer) newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)
	t.Style().Color.Header = text.Colors{text.FgHiCyan, text.Bold}
	t.AppendHeader(header)
	return t
}

// renderRecord prints label/value pairs, one per line.
func (p *Printer) renderRecord(rows [][2]string) {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	for _, r := range rows {
		label := fmt.Sprintf("%-*s", width+1, r[0]+":")
		fmt.Fprintf(p.Out, "%s %s\n", labelStyle.Render(label), r[1])
	}
}

// renderGroup renders a run of items of one type.
func (p *Printer) renderGroup(group []any) error {
	switch first := group[0].(type) {
	case fabric.Node:
		p.renderNodes(collect[fabric.Node](group))
	case fabric.ApplicationType:
		p.renderApplicationTypes(collect[fabric.ApplicationType](group))
	case fabric.Application:
		p.renderApplications(collect[fabric.Application](group))
	case fabric.Service:
		p.renderServices(collect[fabric.Service](group))
	case fabric.Partition:
		p.renderPartitions(collect[fabric.Partition](group))
	case fabric.Replica:
		p.renderReplicas(collect[fabric.Replica](group))
	case fabric.RepairTask:
		p.renderRepairTasks(collect[fabric.RepairTask](group))
	case fabric.ChaosEvent:
		p.renderChaosEvents(collect[fabric.ChaosEvent](group))
	case fabric.Secret:
		p.renderSecrets(collect[fabric.Secret](group))
	case fabric.SecretReference:
		p.renderSecretReferences(collect[fabric.SecretReference](group))
	case fabric.ImageStoreItem:
		p.renderImageStore(collect[fabric.ImageStoreItem](group))
	case repair.Commit:
		t := p.newTable(table.Row{"Task ID", "Version"})
		for _, c := range collect[repair.Commit](group) {
			t.AppendRow(table.Row{c.TaskID, c.Version})
		}
		t.Render()
	case *fabric.EntityHealth:
		for _, h := range collect[*fabric.EntityHealth](group) {
			p.renderHealth(h)
		}
	case *fabric.ChaosDescription:
		for _, d := range collect[*fabric.ChaosDescription](group) {
			p.renderChaosDescription(d)
		}
	case *fabric.NodeTransitionProgress:
		for _, tp := range collect[*fabric.NodeTransitionProgress](group) {
			p.renderRecord([][2]string{
				{"Operation ID", tp.OperationID},
				{"Node", tp.NodeName},
				{"State", tp.State},
				{"Error Code", strconv.FormatInt(tp.Result.ErrorCode, 10)},
				{"Node Instance", orDash(tp.Result.NodeInstanceID)},
			})
		}
	case cluster.ConnectionInfo:
		for _, c := range collect[cluster.ConnectionInfo](group) {
			p.renderRecord([][2]string{{"Endpoint", c.Endpoint}, {"Code Version", c.CodeVersion}})
		}
	case cluster.CodeVersion:
		for _, v := range collect[cluster.CodeVersion](group) {
			fmt.Fprintln(p.Out, v.CodeVersion)
		}
	case cluster.Manifest:
		for _, m := range collect[cluster.Manifest](group) {
			fmt.Fprintln(p.Out, strings.TrimRight(m.Manifest, "\n"))
		}
	case cluster.TransitionStarted:
		for _, ts := range collect[cluster.TransitionStarted](group) {
			p.renderRecord([][2]string{
				{"Operation ID", ts.OperationID},
				{"Node", ts.NodeName},
				{"Transition", string(ts.Type)},
			})
		}
	default:
		return fmt.Errorf("no table layout for %T", first)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// since renders a timestamp relative to now, or "-" when unset.
func since(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func (p *Printer) renderNodes(nodes []fabric.Node) {
	header := table.Row{"Name", "Status", "Health", "Address", "Type", "Version", "UD/FD", "Up"}
	if p.ShowVerbose {
		header = append(header, "Instance ID", "Seed")
	}
	t := p.newTable(header)
	for _, n := range nodes {
		row := table.Row{
			n.Name, n.NodeStatus, healthCell(n.HealthState), n.IPAddressOrFQDN, n.Type,
			n.CodeVersion, fmt.Sprintf("%s/%s", n.UpgradeDomain, n.FaultDomain), since(n.NodeUpAt),
		}
		if p.ShowVerbose {
			row = append(row, n.InstanceID, n.IsSeedNode)
		}
		t.AppendRow(row)
	}
	t.Render()
}

func (p *Printer) renderApplicationTypes(types []fabric.ApplicationType) {
	header := table.Row{"Name", "Version", "Status"}
	if p.ShowVerbose {
		header = append(header, "Default Parameters")
	}
	t := p.newTable(header)
	for _, at := range types {
		row := table.Row{at.Name, at.Version, at.Status}
		if p.ShowVerbose {
			row = append(row, formatParameters(at.DefaultParameterList))
		}
		t.AppendRow(row)
	}
	t.Render()
}

func (p *Printer) renderApplications(apps []fabric.Application) {
	header := table.Row{"Name", "Type", "Version", "Status", "Health"}
	if p.ShowVerbose {
		header = append(header, "Parameters")
	}
	t := p.newTable(header)
	for _, a := range apps {
		row := table.Row{a.Name, a.TypeName, a.TypeVersion, a.Status, healthCell(a.HealthState)}
		if p.ShowVerbose {
			row = append(row, formatParameters(a.Parameters))
		}
		t.AppendRow(row)
	}
	t.Render()
}

// formatParameters renders a parameter map as sorted key=value lines.
func formatParameters(params map[string]string) string {
	if len(params) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s=%s", k, params[k]))
	}
	return strings.Join(lines, "\n")
}

func (p *Printer) renderServices(services []fabric.Service) {
	t := p.newTable(table.Row{"Name", "Kind", "Type", "Version", "Status", "Health"})
	for _, s := range services {
		t.AppendRow(table.Row{s.Name, s.ServiceKind, s.TypeName, s.ManifestVersion, s.ServiceStatus, healthCell(s.HealthState)})
	}
	t.Render()
}

func (p *Printer) renderPartitions(partitions []fabric.Partition) {
	t := p.newTable(table.Row{"Partition ID", "Kind", "Scheme", "Key", "Status", "Health"})
	for _, pt := range partitions {
		info := pt.PartitionInformation
		key := "-"
		switch {
		case info.Name != "":
			key = info.Name
		case info.LowKey != "" || info.HighKey != "":
			key = fmt.Sprintf("%s..%s", info.LowKey, info.HighKey)
		}
		t.AppendRow(table.Row{info.ID, pt.ServiceKind, info.ServicePartitionKind, key, pt.PartitionStatus, healthCell(pt.HealthState)})
	}
	t.Render()
}

func (p *Printer) renderReplicas(replicas []fabric.Replica) {
	t := p.newTable(table.Row{"ID", "Kind", "Role", "Status", "Health", "Node", "Address"})
	for _, r := range replicas {
		id := r.ReplicaID
		if id == "" {
			id = r.InstanceID
		}
		t.AppendRow(table.Row{
			id, r.ServiceKind, orDash(r.ReplicaRole), r.ReplicaStatus, healthCell(r.HealthState),
			r.NodeName, utils.Truncate(r.Address, maxAddressWidth),
		})
	}
	t.Render()
}

func (p *Printer) renderRepairTasks(tasks []fabric.RepairTask) {
	t := p.newTable(table.Row{"Task ID", "Version", "State", "Action", "Target", "Executor", "Result", "Created"})
	for _, task := range tasks {
		target := "-"
		if task.Target != nil && len(task.Target.NodeNames) > 0 {
			target = strings.Join(task.Target.NodeNames, ",")
		}
		t.AppendRow(table.Row{
			task.TaskID, task.Version, task.State, task.Action, target,
			orDash(task.Executor), orDash(string(task.ResultStatus)), since(task.History.CreatedUtcTimestamp),
		})
	}
	t.Render()
}

func (p *Printer) renderChaosEvents(events []fabric.ChaosEvent) {
	t := p.newTable(table.Row{"Time", "Kind", "Details"})
	for _, ev := range events {
		details := ev.Reason
		switch {
		case len(ev.Faults) > 0:
			details = strings.Join(ev.Faults, "\n")
		case ev.ValidationMsg != "":
			details = ev.ValidationMsg
		}
		t.AppendRow(table.Row{ev.TimeStampUtc.Format(time.RFC3339), ev.Kind, orDash(details)})
	}
	t.Render()
}

func (p *Printer) renderSecrets(secrets []fabric.Secret) {
	t := p.newTable(table.Row{"Name", "Version", "Value"})
	for _, s := range secrets {
		t.AppendRow(table.Row{s.Name, s.Version, orDash(s.Value)})
	}
	t.Render()
}

func (p *Printer) renderSecretReferences(refs []fabric.SecretReference) {
	t := p.newTable(table.Row{"Name", "Version"})
	for _, r := range refs {
		t.AppendRow(table.Row{r.Name, orDash(r.Version)})
	}
	t.Render()
}

func (p *Printer) renderImageStore(items []fabric.ImageStoreItem) {
	t := p.newTable(table.Row{"Path", "Type", "Size", "Modified"})
	for _, it := range items {
		kind, size := "file", humanize.IBytes(it.FileSize)
		if it.IsFolder {
			kind, size = "folder", fmt.Sprintf("%s files", humanize.Comma(it.FileCount))
		}
		t.AppendRow(table.Row{it.StoreRelativePath, kind, size, since(it.ModifiedDate)})
	}
	t.Render()
}

func (p *Printer) renderHealth(h *fabric.EntityHealth) {
	rows := [][2]string{{"Kind", string(h.Kind)}}
	if h.Name != "" {
		rows = append(rows, [2]string{"Name", h.Name})
	}
	rows = append(rows, [2]string{"Health", healthCell(h.AggregatedHealthState)})
	p.renderRecord(rows)

	if len(h.UnhealthyEvaluations) > 0 {
		fmt.Fprintln(p.Out, "\nUnhealthy evaluations:")
		for _, ev := range h.UnhealthyEvaluations {
			fmt.Fprintf(p.Out, "  - %s\n", ev)
		}
	}

	if len(h.HealthEvents) > 0 {
		fmt.Fprintln(p.Out, "\nEvents:")
		t := p.newTable(table.Row{"Source", "Property", "State", "Expired", "Description"})
		for _, ev := range h.HealthEvents {
			t.AppendRow(table.Row{
				ev.SourceID, ev.Property, healthCell(ev.HealthState), ev.IsExpired,
				orDash(utils.Truncate(ev.Description, maxDescriptionWidth)),
			})
		}
		t.Render()
	}

	if len(h.Children) > 0 {
		fmt.Fprintln(p.Out, "\nChildren:")
		t := p.newTable(table.Row{"Kind", "Name", "Health"})
		for _, c := range h.Children {
			t.AppendRow(table.Row{c.Kind, c.Name, healthCell(c.AggregatedHealthState)})
		}
		t.Render()
	}

	if len(h.HealthStatistics) > 0 {
		fmt.Fprintln(p.Out, "\nStatistics:")
		t := p.newTable(table.Row{"Entity", "Ok", "Warning", "Error"})
		for _, c := range h.HealthStatistics {
			t.AppendRow(table.Row{
				c.EntityKind, humanize.Comma(c.OkCount), humanize.Comma(c.WarningCount), humanize.Comma(c.ErrorCount),
			})
		}
		t.Render()
	}
}

func (p *Printer) renderChaosDescription(d *fabric.ChaosDescription) {
	rows := [][2]string{{"Status", d.Status}, {"Schedule", orDash(d.ScheduleStatus)}}
	if params := d.ChaosParameters; params != nil {
		rows = append(rows,
			[2]string{"Time To Run", utils.FormatDuration(params.TimeToRun)},
			[2]string{"Max Stabilization", utils.FormatDuration(params.MaxClusterStabilization)},
			[2]string{"Max Faults", strconv.FormatInt(params.MaxConcurrentFaults, 10)},
			[2]string{"Move Replicas", strconv.FormatBool(params.EnableMoveReplicaFaults)},
			[2]string{"Fault Wait", utils.FormatDuration(params.WaitTimeBetweenFaults)},
			[2]string{"Iteration Wait", utils.FormatDuration(params.WaitTimeBetweenIterations)},
		)
		if len(params.Context) > 0 {
			rows = append(rows, [2]string{"Context", strings.ReplaceAll(formatParameters(params.Context), "\n", ", ")})
		}
	}
	p.renderRecord(rows)
}
