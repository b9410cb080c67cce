// Package display provides output formatting and display functions for fabricctl.
//
// This package handles all user-facing output formatting including table, JSON
// and YAML output for cluster entities, health, repair tasks, chaos and store
// content. Operations never print: they emit results into a Printer, which
// buffers them and renders everything at once when the command flushes.
//
// OUTPUT STREAMS:
//   - Results: emitted items, rendered to stdout in the configured format
//   - Info: progress and status notes, written to stderr
//   - Warnings: highlighted notes such as deprecations, written to stderr
//   - Verbose: diagnostics shown only with --verbose, written to stderr
//
// FORMATS:
// Tables group consecutive items of one type and render one rounded table
// per group; single-record results (health, chaos status, connection info)
// render as a key/value summary instead. JSON and YAML encode the emitted
// items as a list, or as the bare record when the command produced exactly
// one record. Empty listings print "[]" in JSON and YAML and a short
// "No ... found" note in table mode.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/internal/command"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Printer is the command.Sink used by the CLI. It is safe for concurrent
// use.
type Printer struct {
	Out         io.Writer
	Err         io.Writer
	Format      string
	ShowVerbose bool

	mu    sync.Mutex
	items []any
}

var _ command.Sink = (*Printer)(nil)

// New creates a printer configured from the global CLI flags.
func New() *Printer {
	return &Printer{
		Out:         os.Stdout,
		Err:         os.Stderr,
		Format:      config.Global.Output,
		ShowVerbose: config.Global.Verbose,
	}
}

// Emit buffers a result until Flush.
func (p *Printer) Emit(item any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, item)
}

// Info writes a status note to stderr.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.Err, fmt.Sprintf(format, args...))
}

// Warn writes a highlighted warning to stderr.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.Err, warningStyle.Render("WARNING: "+fmt.Sprintf(format, args...)))
}

// Verbose writes a diagnostic note to stderr when --verbose is set.
func (p *Printer) Verbose(format string, args ...any) {
	if !p.ShowVerbose {
		return
	}
	fmt.Fprintln(p.Err, verboseStyle.Render("VERBOSE: "+fmt.Sprintf(format, args...)))
}

// Flush renders and clears the buffered results. noun names what the
// command lists, for the empty-result note; an empty noun prints nothing
// when there are no results, which suits commands that only mutate.
func (p *Printer) Flush(noun string) error {
	p.mu.Lock()
	items := p.items
	p.items = nil
	p.mu.Unlock()

	if len(items) == 0 {
		if noun == "" {
			return nil
		}
		if p.Format == FormatJSON || p.Format == FormatYAML {
			fmt.Fprintln(p.Out, "[]")
		} else {
			fmt.Fprintf(p.Out, "No %s found\n", noun)
		}
		return nil
	}

	var doc any = items
	if len(items) == 1 && isRecord(items[0]) {
		doc = items[0]
	}

	switch p.Format {
	case FormatJSON:
		encoder := json.NewEncoder(p.Out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		return writeYAML(p.Out, doc)
	}

	for _, group := range groupByType(items) {
		if err := p.renderGroup(group); err != nil {
			return err
		}
	}
	return nil
}

// writeYAML encodes doc as YAML using its JSON field names, so both
// formats share one vocabulary.
func writeYAML(w io.Writer, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(generic); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// groupByType splits items into runs of the same dynamic type.
func groupByType(items []any) [][]any {
	var groups [][]any
	var last reflect.Type
	for _, item := range items {
		t := reflect.TypeOf(item)
		if len(groups) == 0 || t != last {
			groups = append(groups, nil)
			last = t
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], item)
	}
	return groups
}

// collect converts a group back to its concrete type.
func collect[T any](group []any) []T {
	out := make([]T, 0, len(group))
	for _, item := range group {
		out = append(out, item.(T))
	}
	return out
}
