package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/spf13/cobra"
)

// Health command (parent command for health operations)
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Query and report entity health",
	Long: `Commands for querying the aggregated health of cluster entities and for
sending health reports to the health store.

Event and child filters accept the typed form (--events-filter Warning,Error)
or the deprecated numeric bitmask (--events-health-state-filter 12). When
both are given the typed form wins.`,
}

// healthQueryCmds holds one health query command per entity kind
var healthQueryCmds = map[fabric.EntityKind]*cobra.Command{
	fabric.EntityCluster: {
		Use:   "cluster",
		Short: "Show the health of the cluster",
		Example: `  # Show cluster health with unhealthy nodes only
  fabricctl health cluster --nodes-filter Warning,Error

  # Evaluate with a stricter policy
  fabricctl health cluster --consider-warning-as-error --max-percent-unhealthy-nodes 10`,
		Args: cobra.NoArgs,
	},
	fabric.EntityNode: {
		Use:     "node <node-name>",
		Short:   "Show the health of a node",
		Example: `  fabricctl health node _Node_0 --events-filter Error`,
		Args:    exactArgs(1, "node name"),
	},
	fabric.EntityApplication: {
		Use:     "app <application-name>",
		Short:   "Show the health of an application",
		Example: `  fabricctl health app fabric:/Voting --services-filter Warning,Error`,
		Args:    exactArgs(1, "application name"),
	},
	fabric.EntityService: {
		Use:     "service <service-name>",
		Short:   "Show the health of a service",
		Example: `  fabricctl health service fabric:/Voting/Web`,
		Args:    exactArgs(1, "service name"),
	},
	fabric.EntityPartition: {
		Use:     "partition <partition-id>",
		Short:   "Show the health of a partition",
		Example: `  fabricctl health partition 5f2b1c7e-6a0d-4e55-9d0c-2a6a3f1f0b9e --replicas-filter All`,
		Args:    exactArgs(1, "partition ID"),
	},
	fabric.EntityReplica: {
		Use:     "replica <partition-id> <replica-or-instance-id>",
		Short:   "Show the health of a replica or instance",
		Example: `  fabricctl health replica 5f2b1c7e-6a0d-4e55-9d0c-2a6a3f1f0b9e 131945371183327045`,
		Args:    exactArgs(2, "partition ID and replica ID"),
	},
}

// healthQueryOrder is the order health query commands are registered in
var healthQueryOrder = []fabric.EntityKind{
	fabric.EntityCluster, fabric.EntityNode, fabric.EntityApplication,
	fabric.EntityService, fabric.EntityPartition, fabric.EntityReplica,
}

// Health report command
var healthReportCmd = &cobra.Command{
	Use:   "report <cluster|node|app|service|partition|replica>",
	Short: "Send a health report for an entity",
	Example: `  # Report a warning on a node that expires after five minutes
  fabricctl health report node --node _Node_0 --source-id watchdog \
    --property Disk --health-state Warning --ttl 5m

  # Report on a stateless instance and send it immediately
  fabricctl health report replica --partition-id 5f2b1c7e-6a0d-4e55-9d0c-2a6a3f1f0b9e \
    --instance-id 131945371183327045 --source-id watchdog --property Ping \
    --health-state Ok --immediate`,
	Args: exactArgs(1, "entity kind"),
	// RunE will be set by the main package that imports this
}

// ReportKinds maps the report command's kind argument to an entity kind
var ReportKinds = map[string]fabric.EntityKind{
	"cluster":   fabric.EntityCluster,
	"node":      fabric.EntityNode,
	"app":       fabric.EntityApplication,
	"service":   fabric.EntityService,
	"partition": fabric.EntityPartition,
	"replica":   fabric.EntityReplica,
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// ChildFilterFlags returns the legacy and typed flag names of a child
// filter, e.g. nodes-health-state-filter and nodes-filter.
func ChildFilterFlags(kind fabric.ChildKind) (legacy, typed string) {
	stem := strings.ToLower(camelBoundary.ReplaceAllString(string(kind), "$1-$2"))
	return stem + "-health-state-filter", stem + "-filter"
}

// childFilterVars returns the config fields backing a child filter
func childFilterVars(kind fabric.ChildKind) (*int64, *string) {
	h := &config.Health
	switch kind {
	case fabric.ChildNodes:
		return &h.NodesHealthStateFilter, &h.NodesFilter
	case fabric.ChildApplications:
		return &h.ApplicationsHealthStateFilter, &h.ApplicationsFilter
	case fabric.ChildDeployedApplications:
		return &h.DeployedApplicationsHealthStateFilter, &h.DeployedApplicationsFilter
	case fabric.ChildServices:
		return &h.ServicesHealthStateFilter, &h.ServicesFilter
	case fabric.ChildPartitions:
		return &h.PartitionsHealthStateFilter, &h.PartitionsFilter
	case fabric.ChildReplicas:
		return &h.ReplicasHealthStateFilter, &h.ReplicasFilter
	}
	panic(fmt.Sprintf("unknown child kind %q", kind))
}

// PolicyFlags lists the max-percent-unhealthy flags each entity kind accepts
var PolicyFlags = map[fabric.EntityKind][]string{
	fabric.EntityCluster: {
		"max-percent-unhealthy-nodes", "max-percent-unhealthy-applications",
	},
	fabric.EntityApplication: {
		"max-percent-unhealthy-deployed-applications", "max-percent-unhealthy-services",
		"max-percent-unhealthy-partitions-per-service", "max-percent-unhealthy-replicas-per-partition",
	},
	fabric.EntityService: {
		"max-percent-unhealthy-partitions-per-service", "max-percent-unhealthy-replicas-per-partition",
	},
	fabric.EntityPartition: {
		"max-percent-unhealthy-replicas-per-partition",
	},
}

// policyVar returns the config field backing a max-percent-unhealthy flag
func policyVar(flag string) *int {
	h := &config.Health
	switch flag {
	case "max-percent-unhealthy-nodes":
		return &h.MaxPercentUnhealthyNodes
	case "max-percent-unhealthy-applications":
		return &h.MaxPercentUnhealthyApplications
	case "max-percent-unhealthy-deployed-applications":
		return &h.MaxPercentUnhealthyDeployedApplications
	case "max-percent-unhealthy-services":
		return &h.MaxPercentUnhealthyServices
	case "max-percent-unhealthy-partitions-per-service":
		return &h.MaxPercentUnhealthyPartitionsPerService
	case "max-percent-unhealthy-replicas-per-partition":
		return &h.MaxPercentUnhealthyReplicasPerPartition
	}
	panic(fmt.Sprintf("unknown policy flag %q", flag))
}

// SetupHealthCommands initializes health commands
func SetupHealthCommands() {
	for _, kind := range healthQueryOrder {
		healthCmd.AddCommand(healthQueryCmds[kind])
	}
	healthCmd.AddCommand(healthReportCmd)
}

// GetHealthCommands returns the health query commands by entity kind and
// the report command, for handler assignment
func GetHealthCommands() (map[fabric.EntityKind]*cobra.Command, *cobra.Command) {
	return healthQueryCmds, healthReportCmd
}

// SetupHealthFlags configures flags for health commands
func SetupHealthFlags() {
	for _, kind := range healthQueryOrder {
		AddHealthQueryFlags(healthQueryCmds[kind], kind)
	}

	// Health report flags
	r := &config.HealthReport
	flags := healthReportCmd.Flags()
	flags.StringVar(&r.Node, "node", "", "Node to report on")
	flags.StringVar(&r.Application, "app", "", "Application to report on (fabric:/...)")
	flags.StringVar(&r.Service, "service", "", "Service to report on (fabric:/...)")
	flags.StringVar(&r.PartitionID, "partition-id", "", "Partition to report on")
	flags.Int64Var(&r.ReplicaID, "replica-id", 0, "Stateful replica to report on")
	flags.Int64Var(&r.InstanceID, "instance-id", 0, "Stateless instance to report on")
	flags.StringVar(&r.SourceID, "source-id", "", "Name of the reporting component")
	flags.StringVar(&r.Property, "property", "", "Health property the report is about")
	flags.StringVar(&r.HealthState, "health-state", "", "Reported state: Ok, Warning, Error")
	flags.StringVar(&r.Description, "description", "", "Free text description")
	flags.DurationVar(&r.TTL, "ttl", 0, "Time the report stays valid (0 never expires)")
	flags.Int64Var(&r.SequenceNumber, "sequence-number", 0, "Report sequence number (0 lets the client choose)")
	flags.BoolVar(&r.RemoveWhenExpired, "remove-when-expired", false, "Remove the report once it expires")
	flags.BoolVar(&r.Immediate, "immediate", false, "Send the report without batching")
}

// AddHealthQueryFlags adds the filter, policy and statistics flags of a
// health query for kind to cmd
func AddHealthQueryFlags(cmd *cobra.Command, kind fabric.EntityKind) {
	flags := cmd.Flags()

	flags.Int64Var(&config.Health.EventsHealthStateFilter, "events-health-state-filter", 0,
		"Deprecated: numeric health state bitmask for events; use --events-filter")
	flags.StringVar(&config.Health.EventsFilter, "events-filter", "",
		"Events to return: Default, None, Ok, Warning, Error, All (comma separated)")

	for _, child := range fabric.ChildKinds(kind) {
		legacyName, typedName := ChildFilterFlags(child)
		legacy, typed := childFilterVars(child)
		flags.Int64Var(legacy, legacyName, 0,
			fmt.Sprintf("Deprecated: numeric health state bitmask for %s; use --%s", strings.ToLower(string(child)), typedName))
		flags.StringVar(typed, typedName, "",
			fmt.Sprintf("%s to return: Default, None, Ok, Warning, Error, All (comma separated)", child))
	}

	flags.BoolVar(&config.Health.ConsiderWarningAsError, "consider-warning-as-error", false,
		"Treat warnings as errors when evaluating health")
	for _, name := range PolicyFlags[kind] {
		flags.IntVar(policyVar(name), name, 0,
			"Maximum percentage of unhealthy children tolerated (0-100)")
	}

	switch kind {
	case fabric.EntityCluster:
		flags.BoolVar(&config.Health.ExcludeHealthStatistics, "exclude-health-statistics", false,
			"Leave health statistics out of the result")
		flags.BoolVar(&config.Health.IncludeSystemApplicationHealthStatistics, "include-system-application-health-statistics", false,
			"Include the system application in health statistics")
	case fabric.EntityApplication, fabric.EntityService, fabric.EntityPartition:
		flags.BoolVar(&config.Health.ExcludeHealthStatistics, "exclude-health-statistics", false,
			"Leave health statistics out of the result")
	}
}
