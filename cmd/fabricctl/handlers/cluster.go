package handlers

import (
	"context"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/cluster"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/spf13/cobra"
)

// HandleClusterConnect checks that the gateway answers. With an endpoint
// argument the check runs against that endpoint, which is then saved to the
// config file for later runs.
func HandleClusterConnect(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if len(args) == 1 {
		config.Global.Endpoint = args[0]
		if err := config.ValidateEndpoint(); err != nil {
			return err
		}
	}

	logging.Info("Connecting to cluster gateway: %s", config.Global.Endpoint)
	if err := run(cmd, "", cluster.Connect); err != nil {
		return err
	}

	if len(args) == 1 {
		path := config.ConfigPath()
		if err := config.SaveEndpoint(path, config.Global.Endpoint, config.Global.Scheme); err != nil {
			// The connection itself succeeded
			logging.Warn("Failed to save endpoint to %s: %v", path, err)
		} else {
			logging.Info("Saved endpoint %s to %s", config.Global.Endpoint, path)
		}
	}

	logging.Success("Connected to %s", config.Global.Endpoint)
	return nil
}

// HandleClusterVersion shows the cluster code version
func HandleClusterVersion(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching cluster code version from gateway: %s", config.Global.Endpoint)
	return run(cmd, "", cluster.Version)
}

// HandleClusterManifest shows the cluster manifest
func HandleClusterManifest(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching cluster manifest from gateway: %s", config.Global.Endpoint)
	return run(cmd, "", cluster.GetManifest)
}

// HandleNetworkApps handles network apps. Network membership is not
// exposed by the gateway, so the operation only reports the request.
func HandleNetworkApps(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	networkName := args[0]
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return cluster.ApplicationsInNetwork(ctx, inv, networkName)
	})
}
