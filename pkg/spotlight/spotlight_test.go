package spotlight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seedIndex() *Index {
	idx := New()
	idx.Replace("lead", []Item{
		{ID: "l1", Kind: "lead", Title: "Grace Hopper"},
		{ID: "l2", Kind: "lead", Title: "Alan Turing"},
	})
	idx.Replace("account", []Item{
		{ID: "a1", Kind: "account", Title: "ACME Corp"},
		{ID: "a2", Kind: "account", Title: "Globex"},
	})
	return idx
}

func TestSearch_MatchesAcrossKinds(t *testing.T) {
	idx := seedIndex()

	results := idx.Search("grace", DefaultLimit)
	require.Len(t, results, 1)
	require.Equal(t, "l1", results[0].ID)

	results = idx.Search("acme", DefaultLimit)
	require.Len(t, results, 1)
	require.Equal(t, "account", results[0].Kind)
}

func TestSearch_FuzzyAndCaseInsensitive(t *testing.T) {
	idx := seedIndex()

	results := idx.Search("GrcHpr", DefaultLimit)
	require.NotEmpty(t, results)
	require.Equal(t, "Grace Hopper", results[0].Title)
}

func TestSearch_EmptyQuery(t *testing.T) {
	idx := seedIndex()
	require.Nil(t, idx.Search("   ", DefaultLimit))
}

func TestSearch_RespectsLimit(t *testing.T) {
	idx := New()
	idx.Replace("lead", []Item{
		{ID: "1", Kind: "lead", Title: "Acme One"},
		{ID: "2", Kind: "lead", Title: "Acme Two"},
		{ID: "3", Kind: "lead", Title: "Acme Three"},
	})
	require.Len(t, idx.Search("acme", 2), 2)
}

func TestReplace_SwapsOneKind(t *testing.T) {
	idx := seedIndex()
	idx.Replace("lead", []Item{{ID: "l9", Kind: "lead", Title: "Edsger Dijkstra"}})

	require.Empty(t, idx.Search("grace", DefaultLimit))
	require.NotEmpty(t, idx.Search("dijkstra", DefaultLimit))
	require.NotEmpty(t, idx.Search("acme", DefaultLimit))
}
