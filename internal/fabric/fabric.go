// Package fabric defines the data model and connection contract that every
// fabricctl command is written against.
//
// The package is deliberately free of transport concerns. It describes what a
// cluster connection can do (queries, cluster management, health, repair,
// chaos, secrets and image store operations) and the shapes of the values
// that flow across that boundary. Concrete connections live elsewhere: the
// HTTP gateway connection in cmd/fabricctl/client and the testify mock in
// internal/testing/mock.
//
// CONNECTION CONTRACT:
// Every operation takes a context.Context as its first argument and an
// explicit timeout as its last. The context carries cancellation for the
// invocation (operator interrupt); the timeout is forwarded to the gateway
// unchanged so that the server-side operation is bounded by the same budget
// the operator asked for.
//
// PAGED QUERIES:
// List operations return a *PagedList[T]. A non-empty ContinuationToken means
// more pages remain; an empty token is the only end-of-results signal.
package fabric

import (
	"time"
)

// DefaultOperationTimeout is the timeout applied to connection operations
// when the operator does not pass one explicitly.
const DefaultOperationTimeout = 300 * time.Second

// PagedList is one page of a paged query result.
type PagedList[T any] struct {
	Items             []T    `json:"Items"`
	ContinuationToken string `json:"ContinuationToken,omitempty"`
}

// HasMore reports whether the server indicated that more pages remain.
func (p *PagedList[T]) HasMore() bool {
	return p != nil && p.ContinuationToken != ""
}

// PageQuery carries the cursor fields shared by all paged queries.
type PageQuery struct {
	ContinuationToken string
	MaxResults        int64
}
