// Package command holds the invocation facade shared by every fabricctl
// operation.
//
// An Invocation bundles what one command run needs: the injected cluster
// connection, the operation timeout, the output sink and the confirmation
// settings. Operations receive it explicitly instead of reaching for
// process-wide state, so they can be exercised against a mock connection
// and a recording sink in tests.
//
// INVOCATION FLOW:
//  1. Parameters are validated and a parameter set is selected. Failures are
//     usage errors raised before any connection call.
//  2. Mutating operations pass through ShouldProcess. A declined prompt or a
//     what-if run returns false and the operation returns nil without
//     touching the connection.
//  3. The connection call runs through Call, which threads the context and
//     timeout and translates failures into the fault taxonomy.
//  4. Results are emitted to the sink in call order.
package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/faults"
)

// Sink receives the output of an operation. Emit carries primary results;
// Info, Warn and Verbose carry side-channel messages that never affect the
// result stream.
type Sink interface {
	Emit(item any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Verbose(format string, args ...any)
}

// Prompter asks the operator to confirm an action.
type Prompter interface {
	Confirm(prompt string) (bool, error)
}

// Invocation is the per-run context handed to every operation.
type Invocation struct {
	Conn     fabric.Connection
	Timeout  time.Duration
	Out      Sink
	Prompter Prompter

	// Force skips confirmation prompts.
	Force bool
	// WhatIf reports what a mutating operation would do and skips it.
	WhatIf bool
}

// OperationTimeout returns the configured timeout or the default.
func (inv *Invocation) OperationTimeout() time.Duration {
	if inv.Timeout <= 0 {
		return fabric.DefaultOperationTimeout
	}
	return inv.Timeout
}

// Endpoint returns the connection endpoint for diagnostics.
func (inv *Invocation) Endpoint() string {
	if inv.Conn == nil {
		return ""
	}
	return inv.Conn.Endpoint()
}

// Call runs one connection operation and translates its failure into the
// fault taxonomy under errorID.
func (inv *Invocation) Call(ctx context.Context, errorID string, op func(ctx context.Context, timeout time.Duration) error) error {
	return faults.Translate(op(ctx, inv.OperationTimeout()), errorID, inv.Endpoint())
}

// ShouldProcess gates a mutating action on target. It returns true when the
// action should proceed. A what-if run or a declined prompt returns false
// with a nil error; neither is a failure.
func (inv *Invocation) ShouldProcess(target, action string) (bool, error) {
	if inv.WhatIf {
		inv.Out.Info("What if: Performing the operation %q on target %q.", action, target)
		return false, nil
	}
	if inv.Force {
		return true, nil
	}
	if inv.Prompter == nil {
		return false, faults.Usagef("%s on %q requires confirmation; rerun with --force", action, target)
	}

	ok, err := inv.Prompter.Confirm(fmt.Sprintf("Are you sure you want to perform %q on target %q?", action, target))
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	if !ok {
		inv.Out.Verbose("Operation %q on target %q declined", action, target)
	}
	return ok, nil
}

// ParameterSet is one named way of selecting a command's target.
type ParameterSet struct {
	Name string
	// Flags lists the discriminator flags of the set, for error messages.
	Flags []string
	// Selected reports whether the operator supplied the set's discriminators.
	Selected bool
}

// SelectParameterSet returns the name of the single selected set. Zero or
// several selected sets is a usage error.
func SelectParameterSet(sets ...ParameterSet) (string, error) {
	var selected []ParameterSet
	for _, s := range sets {
		if s.Selected {
			selected = append(selected, s)
		}
	}

	switch len(selected) {
	case 1:
		return selected[0].Name, nil
	case 0:
		return "", faults.Usagef("one of %s is required", describeSets(sets))
	default:
		return "", faults.Usagef("%s are mutually exclusive", describeSets(selected))
	}
}

func describeSets(sets []ParameterSet) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		parts = append(parts, strings.Join(s.Flags, " "))
	}
	return strings.Join(parts, " | ")
}
