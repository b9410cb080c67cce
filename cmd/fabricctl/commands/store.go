package commands

import (
	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/spf13/cobra"
)

// Secret command (parent command for secret store operations)
var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage secrets in the central secret store",
	Long: `Commands for managing secrets in the central secret store.

Secrets are addressed as name or name@version. A reference without a
version means every version of the secret.`,
}

// Secret get command
var secretGetCmd = &cobra.Command{
	Use:   "get <name[@version]>...",
	Short: "Show secrets",
	Example: `  # List the versions of a secret
  fabricctl secret get dbpassword

  # Show one version with its value
  fabricctl secret get dbpassword@v2 --include-value`,
	Args: minArgs(1, "secret reference"),
	// RunE will be set by the main package that imports this
}

// Secret set command
var secretSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Store a secret value under a version",
	Example: `  # Store a value read from a file
  fabricctl secret set dbpassword --version v3 --value-file ./password.txt`,
	Args: exactArgs(1, "secret name"),
	// RunE will be set by the main package that imports this
}

// Secret remove command
var secretRmCmd = &cobra.Command{
	Use:   "rm <name[@version]>...",
	Short: "Remove secrets or secret versions",
	Example: `  # Remove one version
  fabricctl secret rm dbpassword@v1

  # Remove a secret with all its versions
  fabricctl --force secret rm dbpassword`,
	Args: minArgs(1, "secret reference"),
	// RunE will be set by the main package that imports this
}

// Image store command (parent command for image store operations)
var imageStoreCmd = &cobra.Command{
	Use:   "imagestore",
	Short: "Inspect and clean the image store",
}

// Image store list command
var imageStoreLsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List folders and files under an image store path",
	Example: `  # List the store root
  fabricctl imagestore ls

  # List an application package
  fabricctl imagestore ls VotingType`,
	Args: cobra.MaximumNArgs(1),
	// RunE will be set by the main package that imports this
}

// Image store remove command
var imageStoreRmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file or folder from the image store",
	Args:  exactArgs(1, "store path"),
	// RunE will be set by the main package that imports this
}

// SetupStoreCommands initializes secret and image store commands
func SetupStoreCommands() {
	secretCmd.AddCommand(secretGetCmd)
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretRmCmd)

	imageStoreCmd.AddCommand(imageStoreLsCmd)
	imageStoreCmd.AddCommand(imageStoreRmCmd)
}

// GetSecretCommands returns the secret command structures for handler assignment
func GetSecretCommands() (get, set, rm *cobra.Command) {
	return secretGetCmd, secretSetCmd, secretRmCmd
}

// GetImageStoreCommands returns the image store command structures for handler assignment
func GetImageStoreCommands() (ls, rm *cobra.Command) {
	return imageStoreLsCmd, imageStoreRmCmd
}

// SetupStoreFlags configures flags for secret commands
func SetupStoreFlags() {
	secretGetCmd.Flags().BoolVar(&config.Secret.IncludeValue, "include-value", false,
		"Include secret values in the output")

	secretSetCmd.Flags().StringVar(&config.Secret.Version, "version", "",
		"Version to store the value under")
	secretSetCmd.Flags().StringVar(&config.Secret.Value, "value", "",
		"Secret value")
	secretSetCmd.Flags().StringVar(&config.Secret.ValueFile, "value-file", "",
		"Read the secret value from a file")
}
