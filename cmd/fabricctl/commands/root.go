// Package commands provides the complete command tree implementation for fabricctl.
//
// This package defines the hierarchical command structure for the fabricctl CLI,
// implementing a resource-based command architecture similar to kubectl. Commands
// are organized into logical groups that match the cluster's management surface.
//
// COMMAND STRUCTURE:
//   - cluster: Gateway connection and cluster metadata (connect, version, manifest)
//   - node: Node listing, activation and fault transitions (ls, enable, disable, start, stop)
//   - app: Application types and instances (types, ls, rm)
//   - service, partition, replica: Service hierarchy listings
//   - network: Network membership queries
//   - health: Health queries per entity kind and health reporting
//   - repair: Repair task lifecycle (ls, start, complete, approve, stop, rm)
//   - chaos: Chaos runs and their event history
//   - secret, imagestore: Secret store and image store content
//
// Flags are bound directly into the config package. RunE handlers are assigned
// by the main package so command definitions stay free of execution logic.
package commands

import (
	"fmt"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "fabricctl",
	Short: "CLI tool for managing fabric clusters through the HTTP gateway",
	Long: `fabricctl is a command-line tool for managing fabric clusters.

It talks to the cluster's HTTP gateway to query nodes, applications and
services, compose health queries, drive repair tasks, run chaos and manage
the secret and image stores.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Example: `  # Check the gateway and remember it for later runs
  fabricctl cluster connect 10.0.0.4:19080

  # List cluster nodes
  fabricctl node ls

  # Fetch one page of applications and print the continuation token
  fabricctl app ls --single-page --max-results 50

  # Show unhealthy nodes of the cluster
  fabricctl health cluster --nodes-filter Warning,Error

  # Output in JSON format
  fabricctl -o json repair ls --state active

  # Skip confirmation prompts
  fabricctl --force node disable _Node_0 --intent Restart`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(clusterCmd)
	RootCmd.AddCommand(nodeCmd)
	RootCmd.AddCommand(appCmd)
	RootCmd.AddCommand(serviceCmd)
	RootCmd.AddCommand(partitionCmd)
	RootCmd.AddCommand(replicaCmd)
	RootCmd.AddCommand(networkCmd)
	RootCmd.AddCommand(healthCmd)
	RootCmd.AddCommand(repairCmd)
	RootCmd.AddCommand(chaosCmd)
	RootCmd.AddCommand(secretCmd)
	RootCmd.AddCommand(imageStoreCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&config.Global.Endpoint, "endpoint", config.DefaultEndpoint,
		"Cluster gateway address (host:port)")
	flags.StringVar(&config.Global.Scheme, "scheme", config.DefaultScheme,
		"Gateway scheme: http, https")
	flags.IntVar(&config.Global.Timeout, "timeout", config.DefaultTimeout,
		"Operation timeout in seconds")
	flags.StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	flags.StringVar(&config.Global.LogFile, "log-file", "",
		"Write logs to a rotating file instead of the terminal")
	flags.StringVarP(&config.Global.Output, "output", "o", config.DefaultOutput,
		"Output format: table, json, yaml")
	flags.BoolVarP(&config.Global.Verbose, "verbose", "v", false,
		"Show verbose output")
	flags.StringVar(&config.Global.ConfigFile, "config", "",
		"Config file (default $HOME/.fabricctl/config.yaml)")
	flags.BoolVarP(&config.Global.Force, "force", "f", false,
		"Skip confirmation prompts")
	flags.BoolVar(&config.Global.WhatIf, "what-if", false,
		"Describe what a mutating command would do without doing it")
}

// addPagingFlags adds the paging flags shared by listing commands
func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&config.Paging.SinglePage, "single-page", false,
		"Fetch one page and print the continuation token for the next call")
	cmd.Flags().StringVar(&config.Paging.ContinuationToken, "continuation-token", "",
		"Resume a listing from a continuation token")
	cmd.Flags().Int64Var(&config.Paging.MaxResults, "max-results", 0,
		"Maximum number of results per page (0 lets the server decide)")
}

// exactArgs validates the positional argument count, printing help on
// mismatch
func exactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected %d %s, got %d", n, what, len(args))
			return faults.Usagef("requires exactly %d argument(s) (%s)", n, what)
		}
		return nil
	}
}

// minArgs validates that at least n positional arguments were given
func minArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected at least %d %s, got %d", n, what, len(args))
			return faults.Usagef("requires at least %d argument(s) (%s)", n, what)
		}
		return nil
	}
}
