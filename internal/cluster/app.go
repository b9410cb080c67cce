package cluster

import (
	"context"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/validate"
)

// RemoveApplication deletes an application instance. forceRemove skips the
// graceful close of its services.
func RemoveApplication(ctx context.Context, inv *command.Invocation, name string, forceRemove bool) error {
	if err := validate.FabricName(name, "application"); err != nil {
		return faults.Usagef("%v", err)
	}

	ok, err := inv.ShouldProcess(name, "Remove application")
	if err != nil || !ok {
		return err
	}

	err = inv.Call(ctx, faults.RemoveApplicationInstanceErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.DeleteApplication(ctx, name, forceRemove, timeout)
	})
	if err != nil {
		return err
	}
	inv.Out.Verbose("Application %q removed", name)
	return nil
}

// RemoveService deletes a service. forceRemove skips the graceful close of
// its replicas.
func RemoveService(ctx context.Context, inv *command.Invocation, name string, forceRemove bool) error {
	if err := validate.FabricName(name, "service"); err != nil {
		return faults.Usagef("%v", err)
	}

	ok, err := inv.ShouldProcess(name, "Remove service")
	if err != nil || !ok {
		return err
	}

	err = inv.Call(ctx, faults.RemoveServiceErrorID, func(ctx context.Context, timeout time.Duration) error {
		return inv.Conn.DeleteService(ctx, name, forceRemove, timeout)
	})
	if err != nil {
		return err
	}
	inv.Out.Verbose("Service %q removed", name)
	return nil
}

// ApplicationsInNetwork accepts a container network name and reports the
// request on the verbose channel. It makes no connection call and emits
// nothing.
func ApplicationsInNetwork(_ context.Context, inv *command.Invocation, networkName string) error {
	if networkName == "" {
		return faults.Usagef("network name is required")
	}
	inv.Out.Verbose("Listing applications in network %q is not supported by this cluster connection", networkName)
	return nil
}
