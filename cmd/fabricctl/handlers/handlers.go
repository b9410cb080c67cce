// Package handlers provides the RunE functions of the fabricctl commands.
//
// Handlers translate parsed flags into operation parameters, build an
// invocation around a fresh gateway connection and run one operation from
// the internal packages against it. The display printer is the invocation's
// output sink: results are buffered while the operation runs and rendered in
// the selected format once it returns.
//
// HANDLER FLOW:
//  1. Configure logging from the global flags
//  2. Parse flag values that need conversion (enums, filters, times)
//  3. Run the operation with the command's context
//  4. Flush buffered results, including partial results of a failed listing
//
// Parsing failures are usage errors so the process exits with the usage
// exit code, the same as validation failures raised inside operations.
package handlers

import (
	"context"
	"os"
	"time"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/client"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/display"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/command"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/concave-dev/fabricctl/internal/paging"
	"github.com/spf13/cobra"
)

// operation is one fabricctl operation bound to its parameters
type operation func(ctx context.Context, inv *command.Invocation) error

// newPrinter creates the output sink of a command run
var newPrinter = display.New

// newInvocation builds the invocation for one command run from the global
// configuration
func newInvocation(conn fabric.Connection, out command.Sink) *command.Invocation {
	return &command.Invocation{
		Conn:     conn,
		Timeout:  time.Duration(config.Global.Timeout) * time.Second,
		Out:      out,
		Prompter: &utils.Prompter{In: os.Stdin, Out: os.Stderr},
		Force:    config.Global.Force,
		WhatIf:   config.Global.WhatIf,
	}
}

// run executes op against the configured gateway and renders what it
// emitted. noun names the listed entities for the empty-listing message;
// single-record commands pass an empty noun.
func run(cmd *cobra.Command, noun string, op operation) error {
	printer := newPrinter()
	inv := newInvocation(client.CreateConnection(), printer)

	opErr := op(cmd.Context(), inv)
	if opErr != nil {
		// Keep whatever was emitted before the failure, without an empty
		// listing message
		if err := printer.Flush(""); err != nil {
			logging.Error("Failed to render partial output: %v", err)
		}
		return opErr
	}

	if err := printer.Flush(noun); err != nil {
		logging.Error("Failed to render output: %v", err)
		return err
	}
	return nil
}

// pagingOptions returns the paging flags of a listing command
func pagingOptions() paging.Options {
	return paging.Options{
		SinglePage:        config.Paging.SinglePage,
		ContinuationToken: config.Paging.ContinuationToken,
		MaxResults:        config.Paging.MaxResults,
	}
}

// changedInt64 returns a pointer to v when the flag was given on the
// command line, nil otherwise
func changedInt64(cmd *cobra.Command, flag string, v int64) *int64 {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &v
}

// changedInt is changedInt64 for int flags
func changedInt(cmd *cobra.Command, flag string, v int) *int {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &v
}

// changedBool is changedInt64 for bool flags
func changedBool(cmd *cobra.Command, flag string, v bool) *bool {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &v
}
