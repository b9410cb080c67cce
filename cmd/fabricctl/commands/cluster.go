package commands

import (
	"github.com/spf13/cobra"
)

// Cluster command (parent command for cluster operations)
var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Connect to the cluster and inspect its metadata",
	Long: `Commands for connecting to the cluster gateway and reading cluster-wide
metadata such as the code version and the cluster manifest.`,
}

// Cluster connect command
var clusterConnectCmd = &cobra.Command{
	Use:   "connect [endpoint]",
	Short: "Check the gateway and save it as the default endpoint",
	Long: `Connect to the cluster gateway and verify that it answers.

On success the endpoint and scheme are saved to the config file so later
commands use them without --endpoint.`,
	Example: `  # Connect to a local development cluster
  fabricctl cluster connect

  # Connect to a remote cluster over https
  fabricctl --scheme https cluster connect mycluster.westus.cloudapp.azure.com:19080`,
	Args: cobra.MaximumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Cluster version command
var clusterVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the cluster code version",
	Example: `  # Show the code version of the cluster
  fabricctl cluster version`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Cluster manifest command
var clusterManifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the cluster manifest",
	Example: `  # Save the cluster manifest to a file
  fabricctl cluster manifest > ClusterManifest.xml`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Network command (parent command for network operations)
var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Inspect container networks",
}

// Network apps command
var networkAppsCmd = &cobra.Command{
	Use:   "apps <network-name>",
	Short: "List the applications attached to a network",
	Long: `List the applications attached to a container network.

The gateway does not expose network membership yet; the command accepts the
request and reports nothing.`,
	Example: `  # List applications in a network
  fabricctl network apps isolatednet`,
	Args: exactArgs(1, "network name"),
	// RunE will be set by the main package that imports this
}

// SetupClusterCommands initializes cluster and network commands
func SetupClusterCommands() {
	clusterCmd.AddCommand(clusterConnectCmd)
	clusterCmd.AddCommand(clusterVersionCmd)
	clusterCmd.AddCommand(clusterManifestCmd)

	networkCmd.AddCommand(networkAppsCmd)
}

// GetClusterCommands returns the cluster command structures for handler assignment
func GetClusterCommands() (*cobra.Command, *cobra.Command, *cobra.Command) {
	return clusterConnectCmd, clusterVersionCmd, clusterManifestCmd
}

// GetNetworkCommands returns the network command structures for handler assignment
func GetNetworkCommands() *cobra.Command {
	return networkAppsCmd
}
