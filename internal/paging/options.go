package paging

import "github.com/concave-dev/fabricctl/internal/faults"

// Options are the paging flags of a listing command.
type Options struct {
	SinglePage        bool
	ContinuationToken string
	MaxResults        int64
}

// Policy returns the policy the options select.
func (o Options) Policy() Policy {
	mode := Drain
	if o.SinglePage {
		mode = SinglePage
	}
	return Policy{Mode: mode, Token: o.ContinuationToken}
}

// Validate rejects option values the gateway would refuse.
func (o Options) Validate() error {
	if o.MaxResults < 0 {
		return faults.Usagef("--max-results cannot be negative")
	}
	return nil
}
