package listview

import (
	"sort"
	"strings"
)

// FilterFunc reports whether a record passes one named filter for the
// selected value. The FilterAll sentinel never reaches a FilterFunc.
type FilterFunc[T any] func(record T, value string) bool

// Schema declares how a module's records plug into the pipeline: which text
// fields are searchable, which named filters exist and which columns are
// sortable with what semantics. The SortKeys table doubles as documentation
// of exactly which columns support which comparison.
type Schema[T any] struct {
	ID           func(T) string
	SearchFields []func(T) string
	Filters      map[string]FilterFunc[T]
	SortKeys     map[string]Comparator[T]
}

// IDs maps rows to their identifiers. A schema with no ID function yields
// nil rather than panicking.
func (s Schema[T]) IDs(rows []T) []string {
	if s.ID == nil {
		return nil
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.ID(row))
	}
	return out
}

// View is the computed result of one pipeline pass.
type View[T any] struct {
	Rows          []T
	TotalFiltered int
	TotalPages    int
	Page          int
}

// Compute runs the full pipeline: search, filters, sort, pagination.
// It is pure; calling it twice on unchanged inputs yields identical views.
// Data-shape irregularities degrade to empty-string matches, an unknown
// filter key passes every record and an unknown sort column leaves the
// filtered order untouched.
func Compute[T any](records []T, schema Schema[T], state State) View[T] {
	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := make([]T, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(state.Search))
	for _, rec := range records {
		if term != "" && !matchesSearch(rec, schema.SearchFields, term) {
			continue
		}
		if !passesFilters(rec, schema.Filters, state.Filters) {
			continue
		}
		filtered = append(filtered, rec)
	}

	if state.SortColumn != "" {
		if cmp, ok := schema.SortKeys[state.SortColumn]; ok && cmp != nil {
			desc := state.SortDir == SortDesc
			sort.SliceStable(filtered, func(i, j int) bool {
				c := cmp(filtered[i], filtered[j])
				if desc {
					return c > 0
				}
				return c < 0
			})
		}
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	page := state.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View[T]{
		Rows:          filtered[start:end],
		TotalFiltered: total,
		TotalPages:    totalPages,
		Page:          page,
	}
}

func matchesSearch[T any](rec T, fields []func(T) string, term string) bool {
	for _, field := range fields {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(field(rec)), term) {
			return true
		}
	}
	return false
}

func passesFilters[T any](rec T, predicates map[string]FilterFunc[T], active map[string]string) bool {
	for key, value := range active {
		if value == "" || value == FilterAll {
			continue
		}
		pred, ok := predicates[key]
		if !ok || pred == nil {
			// A filter key the schema does not know about cannot
			// exclude anything.
			continue
		}
		if !pred(rec, value) {
			return false
		}
	}
	return true
}
