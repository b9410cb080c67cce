// Package cluster implements the cluster, node, application and service
// management commands: connection checks, code version and manifest
// retrieval, node activation and deactivation, node transitions, and
// removal of applications and services.
//
// Every mutating command passes through the invocation's confirmation gate
// before it touches the connection.
package cluster

import (
	"context"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/faults"
)

// ConnectionInfo is the result of a successful connection check.
type ConnectionInfo struct {
	Endpoint    string `json:"Endpoint"`
	CodeVersion string `json:"CodeVersion"`
}

// CodeVersion is the fabric code version running on the cluster.
type CodeVersion struct {
	CodeVersion string `json:"CodeVersion"`
}

// Manifest is the cluster manifest document.
type Manifest struct {
	Manifest string `json:"Manifest"`
}

// Connect verifies that the gateway answers and emits the endpoint together
// with the cluster code version.
func Connect(ctx context.Context, inv *command.Invocation) error {
	version, err := codeVersion(ctx, inv, faults.TestClusterConnectionErrorID)
	if err != nil {
		return err
	}
	inv.Out.Emit(ConnectionInfo{Endpoint: inv.Endpoint(), CodeVersion: version})
	return nil
}

// Version emits the cluster code version.
func Version(ctx context.Context, inv *command.Invocation) error {
	version, err := codeVersion(ctx, inv, faults.GetClusterCodeVersionErrorID)
	if err != nil {
		return err
	}
	inv.Out.Emit(CodeVersion{CodeVersion: version})
	return nil
}

func codeVersion(ctx context.Context, inv *command.Invocation, errorID string) (string, error) {
	var version string
	err := inv.Call(ctx, errorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		version, err = inv.Conn.GetClusterVersion(ctx, timeout)
		return err
	})
	return version, err
}

// GetManifest emits the cluster manifest.
func GetManifest(ctx context.Context, inv *command.Invocation) error {
	var manifest string
	err := inv.Call(ctx, faults.GetClusterManifestErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		manifest, err = inv.Conn.GetClusterManifest(ctx, timeout)
		return err
	})
	if err != nil {
		return err
	}
	inv.Out.Emit(Manifest{Manifest: manifest})
	return nil
}
