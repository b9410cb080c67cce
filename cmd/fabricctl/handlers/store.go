package handlers

import (
	"context"
	"os"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/imagestore"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/concave-dev/fabricctl/internal/secrets"
	"github.com/spf13/cobra"
)

// HandleSecretGet shows the referenced secrets
func HandleSecretGet(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Fetching %d secret reference(s) from gateway: %s", len(args), config.Global.Endpoint)
	return run(cmd, "secrets", func(ctx context.Context, inv *command.Invocation) error {
		return secrets.Get(ctx, inv, args, config.Secret.IncludeValue)
	})
}

// secretValue returns the value given by --value or read from --value-file
func secretValue(cmd *cobra.Command) (string, error) {
	fromValue := cmd.Flags().Changed("value")
	fromFile := config.Secret.ValueFile != ""
	switch {
	case fromValue && fromFile:
		return "", faults.Usagef("--value and --value-file cannot be used together")
	case fromFile:
		data, err := os.ReadFile(config.Secret.ValueFile)
		if err != nil {
			return "", faults.Usagef("read secret value: %v", err)
		}
		return string(data), nil
	default:
		return config.Secret.Value, nil
	}
}

// HandleSecretSet stores a secret value under a version
func HandleSecretSet(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	value, err := secretValue(cmd)
	if err != nil {
		return err
	}
	secret := fabric.Secret{
		SecretReference: fabric.SecretReference{Name: args[0], Version: config.Secret.Version},
		Value:           value,
	}

	logging.Info("Storing secret '%s' version '%s'", secret.Name, secret.Version)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return secrets.Set(ctx, inv, secret)
	})
}

// HandleSecretRemove removes the referenced secrets or secret versions
func HandleSecretRemove(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	logging.Info("Removing %d secret reference(s)", len(args))
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return secrets.Remove(ctx, inv, args)
	})
}

// HandleImageStoreList lists the content of an image store path
func HandleImageStoreList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	logging.Info("Listing image store path '%s' on gateway: %s", path, config.Global.Endpoint)
	return run(cmd, "image store content", func(ctx context.Context, inv *command.Invocation) error {
		return imagestore.List(ctx, inv, path)
	})
}

// HandleImageStoreRemove deletes a file or folder from the image store
func HandleImageStoreRemove(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()
	path := args[0]

	logging.Info("Deleting image store path '%s'", path)
	return run(cmd, "", func(ctx context.Context, inv *command.Invocation) error {
		return imagestore.Remove(ctx, inv, path)
	})
}
