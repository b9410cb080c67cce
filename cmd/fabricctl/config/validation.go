package config

import (
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/concave-dev/fabricctl/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags loads the layered configuration and validates all
// global settings before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := Load(cmd); err != nil {
		logging.Error("Failed to load configuration: %v", err)
		return faults.Usagef("%v", err)
	}

	if err := ValidateEndpoint(); err != nil {
		return err
	}

	if err := ValidateSettings(); err != nil {
		return err
	}

	return nil
}

// ValidateEndpoint validates the --endpoint flag
func ValidateEndpoint() error {
	if _, err := validate.ParseEndpoint(Global.Endpoint); err != nil {
		logging.Error("Invalid endpoint '%s': %v", Global.Endpoint, err)
		return faults.Usagef("invalid endpoint - expected format: host:port (e.g., %s)", DefaultEndpoint)
	}
	return nil
}

// settings mirrors the enumerated global settings for struct validation
type settings struct {
	Scheme  string `validate:"oneof=http https"`
	Output  string `validate:"oneof=table json yaml"`
	Timeout int    `validate:"min=1"`
}

// ValidateSettings validates --scheme, --output, --timeout and --log-level
func ValidateSettings() error {
	s := settings{Scheme: Global.Scheme, Output: Global.Output, Timeout: Global.Timeout}
	if err := validate.Struct(s); err != nil {
		logging.Error("Invalid global settings: %v", err)
		return faults.Usagef("invalid global settings: %v", err)
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("%v", err)
		return faults.Usagef("%v", err)
	}
	return nil
}
