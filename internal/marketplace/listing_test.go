package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPagination(t *testing.T) {
	l := NewListing(items(20))
	assert.Equal(t, 3, l.TotalPages())

	page := l.CurrentItems()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, page.Items)
	assert.Equal(t, "Showing 1 to 8 of 20 items", page.Summary)

	l.SetPage(3)
	page = l.CurrentItems()
	assert.Equal(t, []int{17, 18, 19, 20}, page.Items)
	assert.Equal(t, "Showing 17 to 20 of 20 items", page.Summary)

	l.SetPage(9)
	assert.Equal(t, 3, l.CurrentPage())
	l.SetPage(0)
	assert.Equal(t, 1, l.CurrentPage())
}

func TestFilterChangeResetsPage(t *testing.T) {
	l := NewListing(items(40))

	l.SetPage(4)
	l.SetStatus(StatusPassed)
	assert.Equal(t, 1, l.CurrentPage())

	l.SetPage(4)
	l.SetVoting(VotingNotVoted)
	assert.Equal(t, 1, l.CurrentPage())

	l.SetPage(4)
	l.SetSearch("villa")
	assert.Equal(t, 1, l.CurrentPage())

	l.SetPage(4)
	l.SetSearch("villa")
	assert.Equal(t, 4, l.CurrentPage())

	l.SetView(ViewGrid)
	assert.Equal(t, 4, l.CurrentPage())
}

func TestFiltersAreNotApplied(t *testing.T) {
	l := NewListing(items(10))
	l.SetStatus(StatusRejected)
	l.SetVoting(VotingVoted)
	l.SetSearch("nothing matches this")

	assert.Len(t, l.Filtered(), 10)
	assert.False(t, l.FiltersApplied())
	assert.Equal(t, StatusRejected, l.Status())
}

func TestEmptyListing(t *testing.T) {
	l := NewListing[int](nil)
	page := l.CurrentItems()
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Numbers)
}

func TestPageNumbers(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, PageNumbers(2, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 0, 10}, PageNumbers(2, 10))
	assert.Equal(t, []int{1, 0, 7, 8, 9, 10}, PageNumbers(9, 10))
	assert.Equal(t, []int{1, 0, 4, 5, 6, 0, 10}, PageNumbers(5, 10))
}

func TestParseOptions(t *testing.T) {
	v, err := ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, ViewList, v)

	s, err := ParseStatusFilter("Pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	_, err = ParseVotingFilter("maybe")
	assert.ErrorIs(t, err, ErrInvalidOption)
}
