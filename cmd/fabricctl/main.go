// Package main provides the entry point for the fabricctl CLI.
//
// fabricctl manages fabric clusters through their HTTP gateway: it lists
// nodes, applications, services, partitions and replicas, composes health
// queries and reports, drives the repair task lifecycle, runs chaos and
// manages the secret and image stores.
//
// INITIALIZATION FLOW:
// 1. Command structure setup with hierarchical organization
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to operations
// 4. Configuration loading and validation before each command
// 5. Command execution with structured error output and exit codes
//
// EXIT CODES:
//   - 0: Success
//   - 1: The cluster rejected or failed the operation
//   - 2: Usage error (bad flags, arguments or configuration)
//   - 3: The addressed entity does not exist
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/commands"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/handlers"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/spf13/cobra"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Flag parsing errors exit with the usage code
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return faults.Usagef("%v", err)
	})

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupClusterCommands()
	commands.SetupNodeCommands()
	commands.SetupAppCommands()
	commands.SetupHealthCommands()
	commands.SetupRepairCommands()
	commands.SetupChaosCommands()
	commands.SetupStoreCommands()

	// Setup global and command flags
	commands.SetupGlobalFlags(rootCmd)
	commands.SetupNodeFlags()
	commands.SetupAppFlags()
	commands.SetupHealthFlags()
	commands.SetupRepairFlags()
	commands.SetupChaosFlags()
	commands.SetupStoreFlags()

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	connectCmd, versionCmd, manifestCmd := commands.GetClusterCommands()
	connectCmd.RunE = handlers.HandleClusterConnect
	versionCmd.RunE = handlers.HandleClusterVersion
	manifestCmd.RunE = handlers.HandleClusterManifest

	networkAppsCmd := commands.GetNetworkCommands()
	networkAppsCmd.RunE = handlers.HandleNetworkApps

	nodeLsCmd, nodeEnableCmd, nodeDisableCmd, nodeRemoveStateCmd, nodeStartCmd, nodeStopCmd, nodeProgressCmd := commands.GetNodeCommands()
	nodeLsCmd.RunE = handlers.HandleNodeList
	nodeEnableCmd.RunE = handlers.HandleNodeEnable
	nodeDisableCmd.RunE = handlers.HandleNodeDisable
	nodeRemoveStateCmd.RunE = handlers.HandleNodeRemoveState
	nodeStartCmd.RunE = handlers.HandleNodeStart
	nodeStopCmd.RunE = handlers.HandleNodeStop
	nodeProgressCmd.RunE = handlers.HandleNodeTransitionProgress

	appTypesCmd, appLsCmd, appRmCmd := commands.GetAppCommands()
	appTypesCmd.RunE = handlers.HandleAppTypes
	appLsCmd.RunE = handlers.HandleAppList
	appRmCmd.RunE = handlers.HandleAppRemove

	serviceLsCmd, serviceRmCmd := commands.GetServiceCommands()
	serviceLsCmd.RunE = handlers.HandleServiceList
	serviceRmCmd.RunE = handlers.HandleServiceRemove

	partitionLsCmd, replicaLsCmd := commands.GetPartitionCommands()
	partitionLsCmd.RunE = handlers.HandlePartitionList
	replicaLsCmd.RunE = handlers.HandleReplicaList

	healthQueryCmds, healthReportCmd := commands.GetHealthCommands()
	for kind, cmd := range healthQueryCmds {
		cmd.RunE = handlers.HealthHandler(kind)
	}
	healthReportCmd.RunE = handlers.HandleHealthReport

	repairLsCmd, repairStartCmd, repairCompleteCmd, repairApproveCmd, repairStopCmd, repairRmCmd := commands.GetRepairCommands()
	repairLsCmd.RunE = handlers.HandleRepairList
	repairStartCmd.RunE = handlers.HandleRepairStart
	repairCompleteCmd.RunE = handlers.HandleRepairComplete
	repairApproveCmd.RunE = handlers.HandleRepairApprove
	repairStopCmd.RunE = handlers.HandleRepairStop
	repairRmCmd.RunE = handlers.HandleRepairRemove

	chaosStartCmd, chaosStopCmd, chaosStatusCmd, chaosEventsCmd := commands.GetChaosCommands()
	chaosStartCmd.RunE = handlers.HandleChaosStart
	chaosStopCmd.RunE = handlers.HandleChaosStop
	chaosStatusCmd.RunE = handlers.HandleChaosStatus
	chaosEventsCmd.RunE = handlers.HandleChaosEvents

	secretGetCmd, secretSetCmd, secretRmCmd := commands.GetSecretCommands()
	secretGetCmd.RunE = handlers.HandleSecretGet
	secretSetCmd.RunE = handlers.HandleSecretSet
	secretRmCmd.RunE = handlers.HandleSecretRemove

	imageStoreLsCmd, imageStoreRmCmd := commands.GetImageStoreCommands()
	imageStoreLsCmd.RunE = handlers.HandleImageStoreList
	imageStoreRmCmd.RunE = handlers.HandleImageStoreRemove
}

// printError writes err to stderr, with the error ID and endpoint of
// failures reported by the cluster
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var cmdErr *faults.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.ErrorID != "" {
			fmt.Fprintf(os.Stderr, "  ErrorId:  %s\n", cmdErr.ErrorID)
		}
		if cmdErr.Endpoint != "" {
			fmt.Fprintf(os.Stderr, "  Endpoint: %s\n", cmdErr.Endpoint)
		}
	}
}

// main is the main entry point
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(err)
	}

	utils.CloseLogging()
	os.Exit(faults.ExitCode(err))
}
