package paging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedSource serves n pages of m items each, chained by tokens "p1".."p{n-1}"
type pagedSource struct {
	pages  [][]string
	calls  int
	tokens []string
	failAt int // 1-based call index to fail on, 0 disables
}

func newPagedSource(n, m int) *pagedSource {
	src := &pagedSource{}
	for p := 0; p < n; p++ {
		var items []string
		for i := 0; i < m; i++ {
			items = append(items, fmt.Sprintf("page%d-item%d", p, i))
		}
		src.pages = append(src.pages, items)
	}
	return src
}

func (s *pagedSource) fetch(_ context.Context, token string) (*fabric.PagedList[string], error) {
	s.calls++
	s.tokens = append(s.tokens, token)
	if s.failAt == s.calls {
		return nil, errors.New("gateway unavailable")
	}

	idx := 0
	if token != "" {
		if _, err := fmt.Sscanf(token, "p%d", &idx); err != nil {
			return nil, fmt.Errorf("bad token %q", token)
		}
	}
	if idx >= len(s.pages) {
		return &fabric.PagedList[string]{}, nil
	}

	page := &fabric.PagedList[string]{Items: s.pages[idx]}
	if idx+1 < len(s.pages) {
		page.ContinuationToken = fmt.Sprintf("p%d", idx+1)
	}
	return page, nil
}

// TestDrain_Completeness tests that N pages of M items yield N*M items in
// order with exactly N fetch calls
func TestDrain_Completeness(t *testing.T) {
	tests := []struct {
		name  string
		pages int
		items int
	}{
		{"single page", 1, 5},
		{"three pages", 3, 4},
		{"many small pages", 10, 1},
		{"empty pages chained", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newPagedSource(tt.pages, tt.items)
			var got []string

			res, err := Run(context.Background(), Policy{Mode: Drain}, src.fetch,
				func(s string) { got = append(got, s) }, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.pages, src.calls)
			assert.Equal(t, tt.pages, res.Pages)
			assert.Equal(t, tt.pages*tt.items, res.Items)
			assert.Len(t, got, tt.pages*tt.items)
			assert.Empty(t, res.NextToken)

			var want []string
			for _, p := range src.pages {
				want = append(want, p...)
			}
			assert.Equal(t, want, got)
		})
	}
}

// TestDrain_EmptyFirstPage tests that an empty first page without a token
// yields no items and no error
func TestDrain_EmptyFirstPage(t *testing.T) {
	calls := 0
	fetch := func(context.Context, string) (*fabric.PagedList[string], error) {
		calls++
		return &fabric.PagedList[string]{}, nil
	}

	emitted := 0
	res, err := Run(context.Background(), Policy{}, fetch, func(string) { emitted++ }, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Zero(t, emitted)
	assert.Zero(t, res.Items)
}

// TestDrain_SeedToken tests that a caller-provided token seeds the first
// fetch and following tokens are passed through
func TestDrain_SeedToken(t *testing.T) {
	src := newPagedSource(4, 2)
	var got []string

	_, err := Run(context.Background(), Policy{Mode: Drain, Token: "p2"}, src.fetch,
		func(s string) { got = append(got, s) }, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p3"}, src.tokens)
	assert.Equal(t, append(append([]string{}, src.pages[2]...), src.pages[3]...), got)
}

// TestDrain_FailureKeepsEmitted tests that a failing fetch aborts the loop
// and that items from earlier pages stay emitted
func TestDrain_FailureKeepsEmitted(t *testing.T) {
	src := newPagedSource(5, 3)
	src.failAt = 3
	var got []string

	res, err := Run(context.Background(), Policy{Mode: Drain}, src.fetch,
		func(s string) { got = append(got, s) }, nil)

	require.Error(t, err)
	assert.Equal(t, 3, src.calls)
	assert.Equal(t, 2, res.Pages)
	assert.Len(t, got, 6)
	assert.Equal(t, "page1-item2", got[len(got)-1])
}

// TestSinglePage_ShortCircuit tests that single page mode fetches once and
// reports the returned token instead of following it
func TestSinglePage_ShortCircuit(t *testing.T) {
	src := newPagedSource(5, 2)
	var got []string
	var reported []string

	res, err := Run(context.Background(), Policy{Mode: SinglePage}, src.fetch,
		func(s string) { got = append(got, s) },
		func(token string) { reported = append(reported, token) })

	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, src.pages[0], got)
	assert.Equal(t, []string{"p1"}, reported)
	assert.Equal(t, "p1", res.NextToken)
}

// TestSinglePage_LastPage tests that the empty token of the final page is
// still reported
func TestSinglePage_LastPage(t *testing.T) {
	src := newPagedSource(2, 1)
	var reported []string

	_, err := Run(context.Background(), Policy{Mode: SinglePage, Token: "p1"}, src.fetch,
		func(string) {}, func(token string) { reported = append(reported, token) })

	require.NoError(t, err)
	assert.Equal(t, []string{""}, reported)
}

func TestSinglePage_Error(t *testing.T) {
	src := newPagedSource(2, 1)
	src.failAt = 1
	called := false

	_, err := Run(context.Background(), Policy{Mode: SinglePage}, src.fetch,
		func(string) {}, func(string) { called = true })

	require.Error(t, err)
	assert.False(t, called)
}
