// Package repair implements the repair task commands: listing in a stable
// lifecycle order, manual task creation, and the approve, complete, stop and
// remove transitions.
//
// LISTING ORDER:
// Incomplete tasks come first, oldest creation time first. Completed tasks
// follow, oldest completion time first. Ties keep the order returned by the
// repair manager.
//
// COMPLETION:
// Completing a task looks it up before mutating it. A task ID that matches
// no task is reported as not found and nothing is written.
package repair

import (
	"slices"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// Sort orders tasks in place for display.
func Sort(tasks []fabric.RepairTask) {
	slices.SortStableFunc(tasks, compareTasks)
}

func compareTasks(a, b fabric.RepairTask) int {
	ac, bc := a.IsCompleted(), b.IsCompleted()
	switch {
	case !ac && bc:
		return -1
	case ac && !bc:
		return 1
	case ac:
		return a.History.CompletedUtcTimestamp.Compare(b.History.CompletedUtcTimestamp)
	default:
		return a.History.CreatedUtcTimestamp.Compare(b.History.CreatedUtcTimestamp)
	}
}
