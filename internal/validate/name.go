package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FabricURIScheme prefixes every application and service name.
const FabricURIScheme = "fabric:/"

// FabricName validates an application or service name of the form
// fabric:/App[/Service]. kind names the parameter in error messages.
func FabricName(name, kind string) error {
	if name == "" {
		return fmt.Errorf("%s name cannot be empty", kind)
	}
	if !strings.HasPrefix(name, FabricURIScheme) {
		return fmt.Errorf("%s name '%s' must start with %s", kind, name, FabricURIScheme)
	}

	rest := strings.TrimPrefix(name, FabricURIScheme)
	if rest == "" || strings.HasSuffix(rest, "/") || strings.Contains(rest, "//") {
		return fmt.Errorf("%s name '%s' has an empty path segment", kind, name)
	}
	if strings.ContainsAny(rest, " \t\n") {
		return fmt.Errorf("%s name '%s' cannot contain whitespace", kind, name)
	}

	return nil
}

// NodeName validates a node name. Node names are free-form but must be
// non-empty and cannot contain path separators or whitespace.
func NodeName(name string) error {
	if name == "" {
		return fmt.Errorf("node name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\ \t\n") {
		return fmt.Errorf("node name '%s' cannot contain slashes or whitespace", name)
	}
	return nil
}

// PartitionID validates a partition ID, which is always a UUID.
func PartitionID(id string) error {
	if id == "" {
		return fmt.Errorf("partition ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("malformed partition ID '%s': %w", id, err)
	}
	return nil
}
