// Package spotlight backs the global quick-search box: a small in-memory
// index of record titles with fuzzy matching, rebuilt per kind whenever the
// underlying records change.
package spotlight

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const DefaultLimit = 10

// Item is one searchable entry pointing back at a CRM record.
type Item struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

type Index struct {
	mu    sync.RWMutex
	kinds map[string][]Item
}

func New() *Index {
	return &Index{kinds: map[string][]Item{}}
}

// Replace swaps the full item set of one kind. Kinds update independently,
// so a lead refresh does not touch indexed meetings.
func (idx *Index) Replace(kind string, items []Item) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	copied := make([]Item, len(items))
	copy(copied, items)
	idx.kinds[kind] = copied
}

// Search ranks items whose titles fuzzily match the query, best match first.
// An empty query matches nothing.
func (idx *Index) Search(query string, limit int) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	idx.mu.RLock()
	all := make([]Item, 0)
	for _, items := range idx.kinds {
		all = append(all, items...)
	}
	idx.mu.RUnlock()

	titles := make([]string, len(all))
	for i, item := range all {
		titles[i] = item.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	out := make([]Item, 0, limit)
	for _, rank := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, all[rank.OriginalIndex])
	}
	return out
}
