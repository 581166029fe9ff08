// Package listview implements the shared table pipeline behind every CRM
// list page: substring search, AND-composed filters, column sort, pagination
// and page-scoped bulk selection. The pipeline is pure and synchronous; it
// owns no I/O and recomputes in full from the raw record set on every state
// change.
package listview

const (
	// DefaultPageSize is the fixed table page used by all list views.
	DefaultPageSize = 50

	// FilterAll is the sentinel filter value that matches every record.
	FilterAll = "all"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// State is the view state of one table instance. Values are immutable:
// every transition returns a new State, which keeps each transition testable
// in isolation.
type State struct {
	Search     string
	Filters    map[string]string
	SortColumn string
	SortDir    SortDirection
	Page       int
	PageSize   int
	Selected   map[string]struct{}
}

func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		Filters:  map[string]string{},
		SortDir:  SortAsc,
		Page:     1,
		PageSize: pageSize,
		Selected: map[string]struct{}{},
	}
}

func (s State) clone() State {
	out := s
	out.Filters = make(map[string]string, len(s.Filters))
	for k, v := range s.Filters {
		out.Filters[k] = v
	}
	out.Selected = make(map[string]struct{}, len(s.Selected))
	for id := range s.Selected {
		out.Selected[id] = struct{}{}
	}
	return out
}

// WithSearch sets the search term and resets pagination to the first page.
// The selection survives: ids selected while visible stay selected even if
// the new term filters them out of view.
func (s State) WithSearch(term string) State {
	out := s.clone()
	out.Search = term
	out.Page = 1
	return out
}

// WithFilter sets one named filter and resets pagination to the first page.
func (s State) WithFilter(key, value string) State {
	out := s.clone()
	out.Filters[key] = value
	out.Page = 1
	return out
}

// WithSort applies a sort-column click: the same column toggles direction,
// a different column resets to ascending. Either way pagination goes back to
// the first page.
func (s State) WithSort(column string) State {
	out := s.clone()
	if out.SortColumn == column {
		if out.SortDir == SortAsc {
			out.SortDir = SortDesc
		} else {
			out.SortDir = SortAsc
		}
	} else {
		out.SortColumn = column
		out.SortDir = SortAsc
	}
	out.Page = 1
	return out
}

// WithPage moves to another page and drops the selection; checked rows do
// not follow the user across pages.
func (s State) WithPage(page int) State {
	out := s.clone()
	if page < 1 {
		page = 1
	}
	out.Page = page
	out.Selected = map[string]struct{}{}
	return out
}

// ToggleSelect flips the checkbox of a single row. Selecting an already
// selected id is idempotent.
func (s State) ToggleSelect(id string) State {
	out := s.clone()
	if _, ok := out.Selected[id]; ok {
		delete(out.Selected, id)
	} else {
		out.Selected[id] = struct{}{}
	}
	return out
}

// SelectPage replaces the selection with the given page's row ids. This is
// the header "select all": page-scoped, never a global select across pages.
func (s State) SelectPage(ids []string) State {
	out := s.clone()
	out.Selected = make(map[string]struct{}, len(ids))
	limit := out.PageSize
	if limit <= 0 {
		limit = DefaultPageSize
	}
	for i, id := range ids {
		if i >= limit {
			break
		}
		out.Selected[id] = struct{}{}
	}
	return out
}

func (s State) ClearSelection() State {
	out := s.clone()
	out.Selected = map[string]struct{}{}
	return out
}

func (s State) IsSelected(id string) bool {
	_, ok := s.Selected[id]
	return ok
}

// SelectedIDs returns the selected ids in no particular order.
func (s State) SelectedIDs() []string {
	out := make([]string, 0, len(s.Selected))
	for id := range s.Selected {
		out = append(out, id)
	}
	return out
}
