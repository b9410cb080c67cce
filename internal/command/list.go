package command

import (
	"context"
	"time"

	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/paging"
)

// PageFunc fetches the page starting at token.
type PageFunc[T any] func(ctx context.Context, token string, timeout time.Duration) (*fabric.PagedList[T], error)

// List runs a paged listing under policy. Every item is emitted in order and
// a single page fetch reports its continuation token as a verbose line.
// Each page fetch is translated under errorID.
func List[T any](ctx context.Context, inv *Invocation, errorID string, policy paging.Policy, page PageFunc[T]) error {
	fetch := func(ctx context.Context, token string) (*fabric.PagedList[T], error) {
		var result *fabric.PagedList[T]
		err := inv.Call(ctx, errorID, func(ctx context.Context, timeout time.Duration) error {
			var err error
			result, err = page(ctx, token, timeout)
			return err
		})
		return result, err
	}

	emit := func(item T) { inv.Out.Emit(item) }
	onToken := func(token string) { inv.Out.Verbose("ContinuationToken: %s", token) }

	_, err := paging.Run(ctx, policy, fetch, emit, onToken)
	return err
}
