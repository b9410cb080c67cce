// Package secrets implements the secret store commands. Secrets are
// addressed as name or name@version; names and versions are limited to 256
// characters and values to 4 MiB, checked before anything is sent.
package secrets

import (
	"context"
	"strings"
	"time"

	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
	"github.com/concave-dev/fabricctl/internal/validate"
	mapset "github.com/deckarep/golang-set/v2"
)

// ParseReference parses name or name@version. The version is split at the
// last @ so names may contain one.
func ParseReference(s string) (fabric.SecretReference, error) {
	ref := fabric.SecretReference{Name: s}
	if i := strings.LastIndex(s, "@"); i >= 0 {
		ref = fabric.SecretReference{Name: s[:i], Version: s[i+1:]}
		if ref.Version == "" {
			return fabric.SecretReference{}, faults.Usagef("secret reference %q has an empty version", s)
		}
	}
	if err := validate.Struct(ref); err != nil {
		return fabric.SecretReference{}, faults.Usagef("invalid secret reference %q: %v", s, err)
	}
	return ref, nil
}

// ParseReferences parses every reference and rejects duplicates.
func ParseReferences(args []string) ([]fabric.SecretReference, error) {
	if len(args) == 0 {
		return nil, faults.Usagef("at least one secret reference is required")
	}

	seen := mapset.NewSet[fabric.SecretReference]()
	refs := make([]fabric.SecretReference, 0, len(args))
	for _, arg := range args {
		ref, err := ParseReference(arg)
		if err != nil {
			return nil, err
		}
		if !seen.Add(ref) {
			return nil, faults.Usagef("secret %s given more than once", ref)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Get emits the referenced secrets, with values when includeValue is set.
func Get(ctx context.Context, inv *command.Invocation, args []string, includeValue bool) error {
	refs, err := ParseReferences(args)
	if err != nil {
		return err
	}

	var secrets []fabric.Secret
	err = inv.Call(ctx, faults.GetSecretsErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		secrets, err = inv.Conn.GetSecrets(ctx, refs, includeValue, timeout)
		return err
	})
	if err != nil {
		return err
	}

	for _, s := range secrets {
		inv.Out.Emit(s)
	}
	return nil
}

// Set stores one secret value and emits the stored reference.
func Set(ctx context.Context, inv *command.Invocation, secret fabric.Secret) error {
	if secret.Version == "" {
		return faults.Usagef("--version is required")
	}
	if err := validate.Struct(secret); err != nil {
		return faults.Usagef("invalid secret: %v", err)
	}

	var stored []fabric.SecretReference
	err := inv.Call(ctx, faults.SetSecretsErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		stored, err = inv.Conn.SetSecrets(ctx, []fabric.Secret{secret}, timeout)
		return err
	})
	if err != nil {
		return err
	}

	for _, ref := range stored {
		inv.Out.Emit(ref)
	}
	return nil
}

// Remove deletes the referenced secrets and emits the removed references. A
// reference without a version removes every version.
func Remove(ctx context.Context, inv *command.Invocation, args []string) error {
	refs, err := ParseReferences(args)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.String())
	}
	ok, err := inv.ShouldProcess(strings.Join(names, ", "), "Remove secrets")
	if err != nil || !ok {
		return err
	}

	var removed []fabric.SecretReference
	err = inv.Call(ctx, faults.RemoveSecretsErrorID, func(ctx context.Context, timeout time.Duration) error {
		var err error
		removed, err = inv.Conn.RemoveSecrets(ctx, refs, timeout)
		return err
	})
	if err != nil {
		return err
	}

	for _, ref := range removed {
		inv.Out.Emit(ref)
	}
	return nil
}
