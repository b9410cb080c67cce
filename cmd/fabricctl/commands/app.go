package commands

import (
	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/spf13/cobra"
)

// App command (parent command for application operations)
var appCmd = &cobra.Command{
	Use:     "app",
	Aliases: []string{"application"},
	Short:   "Inspect and remove applications",
}

// App types command
var appTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List provisioned application types",
	Example: `  # List all application types
  fabricctl app types

  # List the provisioned versions of one type
  fabricctl app types --type VotingType`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// App list command
var appLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List application instances",
	Example: `  # List all applications
  fabricctl app ls

  # List applications of one type
  fabricctl app ls --type VotingType

  # Show one application
  fabricctl app ls --name fabric:/Voting`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// App remove command
var appRmCmd = &cobra.Command{
	Use:   "rm <application-name>",
	Short: "Remove an application instance",
	Example: `  # Remove an application
  fabricctl app rm fabric:/Voting

  # Remove without waiting for graceful replica shutdown
  fabricctl --force app rm fabric:/Voting --force-remove`,
	Args: exactArgs(1, "application name"),
	// RunE will be set by the main package that imports this
}

// Service command (parent command for service operations)
var serviceCmd = &cobra.Command{
	Use:     "service",
	Aliases: []string{"svc"},
	Short:   "Inspect and remove services",
}

// Service list command
var serviceLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the services of an application",
	Example: `  # List services of an application
  fabricctl service ls --app fabric:/Voting

  # Show one service
  fabricctl service ls --app fabric:/Voting --name fabric:/Voting/Web`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Service remove command
var serviceRmCmd = &cobra.Command{
	Use:   "rm <service-name>",
	Short: "Remove a service instance",
	Example: `  # Remove a service
  fabricctl service rm fabric:/Voting/Web`,
	Args: exactArgs(1, "service name"),
	// RunE will be set by the main package that imports this
}

// Partition command (parent command for partition operations)
var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Inspect service partitions",
}

// Partition list command
var partitionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the partitions of a service, or one partition by ID",
	Example: `  # List partitions of a service
  fabricctl partition ls --service fabric:/Voting/Data

  # Show one partition
  fabricctl partition ls --partition-id 5f2b1c7e-6a0d-4e55-9d0c-2a6a3f1f0b9e`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Replica command (parent command for replica operations)
var replicaCmd = &cobra.Command{
	Use:   "replica",
	Short: "Inspect replicas and instances",
}

// Replica list command
var replicaLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the replicas or instances of a partition",
	Example: `  # List replicas of a partition
  fabricctl replica ls --partition-id 5f2b1c7e-6a0d-4e55-9d0c-2a6a3f1f0b9e`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// SetupAppCommands initializes application, service, partition and replica commands
func SetupAppCommands() {
	appCmd.AddCommand(appTypesCmd)
	appCmd.AddCommand(appLsCmd)
	appCmd.AddCommand(appRmCmd)

	serviceCmd.AddCommand(serviceLsCmd)
	serviceCmd.AddCommand(serviceRmCmd)

	partitionCmd.AddCommand(partitionLsCmd)
	replicaCmd.AddCommand(replicaLsCmd)
}

// GetAppCommands returns the application command structures for handler assignment
func GetAppCommands() (types, ls, rm *cobra.Command) {
	return appTypesCmd, appLsCmd, appRmCmd
}

// GetServiceCommands returns the service command structures for handler assignment
func GetServiceCommands() (ls, rm *cobra.Command) {
	return serviceLsCmd, serviceRmCmd
}

// GetPartitionCommands returns the partition and replica listing commands
func GetPartitionCommands() (partitionLs, replicaLs *cobra.Command) {
	return partitionLsCmd, replicaLsCmd
}

// SetupAppFlags configures flags for application, service, partition and replica commands
func SetupAppFlags() {
	// App types flags
	appTypesCmd.Flags().StringVar(&config.App.TypeName, "type", "",
		"Show only the versions of this application type")
	appTypesCmd.Flags().BoolVar(&config.App.ExcludeParameters, "exclude-parameters", false,
		"Leave default application parameters out of the result")
	addPagingFlags(appTypesCmd)

	// App list flags
	appLsCmd.Flags().StringVar(&config.App.Name, "name", "",
		"Show only the application with this name (fabric:/...)")
	appLsCmd.Flags().StringVar(&config.App.TypeName, "type", "",
		"Filter applications by type name")
	appLsCmd.Flags().BoolVar(&config.App.ExcludeParameters, "exclude-parameters", false,
		"Leave application parameters out of the result")
	addPagingFlags(appLsCmd)

	appRmCmd.Flags().BoolVar(&config.App.ForceRemove, "force-remove", false,
		"Remove without waiting for a graceful shutdown of replicas")

	// Service flags
	serviceLsCmd.Flags().StringVar(&config.Service.Application, "app", "",
		"Application whose services to list (fabric:/...)")
	serviceLsCmd.Flags().StringVar(&config.Service.Name, "name", "",
		"Show only the service with this name")
	serviceLsCmd.Flags().StringVar(&config.Service.TypeName, "type", "",
		"Filter services by service type name")
	addPagingFlags(serviceLsCmd)

	serviceRmCmd.Flags().BoolVar(&config.Service.ForceRemove, "force-remove", false,
		"Remove without waiting for a graceful shutdown of replicas")

	// Partition and replica flags
	partitionLsCmd.Flags().StringVar(&config.Partition.Service, "service", "",
		"Service whose partitions to list (fabric:/...)")
	partitionLsCmd.Flags().StringVar(&config.Partition.PartitionID, "partition-id", "",
		"Show only the partition with this ID")

	replicaLsCmd.Flags().StringVar(&config.Replica.PartitionID, "partition-id", "",
		"Partition whose replicas to list")
	replicaLsCmd.Flags().Int64Var(&config.Replica.ReplicaID, "replica-id", 0,
		"Show only the replica or instance with this ID")
}
