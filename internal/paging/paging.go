// Package paging drives paged cluster queries.
//
// A paged query returns an ordered page of items plus an opaque continuation
// token. The driver either drains the query, following tokens until the
// server returns an empty one, or fetches exactly one page and hands the
// returned token back to the caller. Which behavior applies is a per-command
// Policy, not a global rule.
//
// The loop is strictly sequential: one fetch in flight at a time, items
// emitted in the order received, nothing de-duplicated across pages. A fetch
// error stops the loop immediately; items emitted before the failure stay
// emitted.
package paging

import (
	"context"

	"github.com/concave-dev/fabricctl/internal/fabric"
)

// Mode selects between draining a query and fetching a single page.
type Mode int

const (
	// Drain follows continuation tokens until the result set is exhausted.
	Drain Mode = iota
	// SinglePage performs exactly one fetch and surfaces the returned token.
	SinglePage
)

// Policy is the pagination behavior chosen by a command.
type Policy struct {
	Mode Mode
	// Token seeds the first fetch. Empty starts from the beginning.
	Token string
}

// Fetch retrieves the page starting at token.
type Fetch[T any] func(ctx context.Context, token string) (*fabric.PagedList[T], error)

// Result summarizes a completed run.
type Result struct {
	Pages int
	Items int
	// NextToken is the token returned by the last fetch. Always empty after
	// a successful drain.
	NextToken string
}

// Run executes fetch under policy, calling emit for every item in order.
// onToken, when non-nil, is called with the continuation token of a single
// page fetch so the caller can report it.
func Run[T any](ctx context.Context, policy Policy, fetch Fetch[T], emit func(T), onToken func(string)) (Result, error) {
	if policy.Mode == SinglePage {
		return runSinglePage(ctx, policy.Token, fetch, emit, onToken)
	}
	return runDrain(ctx, policy.Token, fetch, emit)
}

func runDrain[T any](ctx context.Context, token string, fetch Fetch[T], emit func(T)) (Result, error) {
	var res Result
	for {
		page, err := fetch(ctx, token)
		if err != nil {
			return res, err
		}
		res.Pages++
		if page == nil {
			return res, nil
		}

		for _, item := range page.Items {
			emit(item)
			res.Items++
		}

		if page.ContinuationToken == "" {
			return res, nil
		}
		token = page.ContinuationToken
	}
}

func runSinglePage[T any](ctx context.Context, token string, fetch Fetch[T], emit func(T), onToken func(string)) (Result, error) {
	page, err := fetch(ctx, token)
	if err != nil {
		return Result{}, err
	}

	res := Result{Pages: 1}
	if page == nil {
		return res, nil
	}
	for _, item := range page.Items {
		emit(item)
		res.Items++
	}

	res.NextToken = page.ContinuationToken
	if onToken != nil {
		onToken(page.ContinuationToken)
	}
	return res, nil
}
